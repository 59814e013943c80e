// internal/event/event.go
package event

import (
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Buffer lifecycle
	TypeBufferLoaded // Fired after a buffer is successfully loaded
	TypeBufferSaved  // Fired after a buffer is successfully saved

	// Conversion lifecycle
	TypeMatchFound  // Fired for each concatenation chain the scanner finds
	TypeEditApplied // Fired after an edit batch has been applied to the buffer
	TypeConvertDone // Fired when the scan/convert loop finishes

	// Preview UI
	TypePreviewKey // Raw key press forwarded from the preview screen
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// MatchFoundData describes one scanner match.
type MatchFoundData struct {
	Line        int
	Original    string
	Replacement string
}

// EditAppliedData summarizes one applied batch.
type EditAppliedData struct {
	Pass  int
	Edits int
}

// ConvertDoneData summarizes a whole conversion run.
type ConvertDoneData struct {
	Passes  int
	Matches int
}

// PreviewKeyData contains the raw tcell key event.
type PreviewKeyData struct {
	KeyEvent *tcell.EventKey
}
