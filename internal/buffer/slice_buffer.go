// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// SliceBuffer stores the text as a slice of lines. Good enough for the
// single-pass scan/convert workload; no rope needed.
type SliceBuffer struct {
	lines           [][]byte
	filePath        string
	modified        bool
	trailingNewline bool // whether the loaded file ended with '\n'
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines:    [][]byte{[]byte("")},
		modified: false,
	}
}

// NewSliceBufferFromString builds a buffer from in-memory content.
func NewSliceBufferFromString(content string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.Replace([]byte(content))
	sb.modified = false
	return sb
}

// Load reads a file into the buffer. Replaces existing content.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.modified = false

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file '%s' does not exist: %w", filePath, err)
		}
		return fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}

	sb.setContent(content)
	sb.filePath = filePath
	sb.modified = false
	return nil
}

func (sb *SliceBuffer) setContent(content []byte) {
	sb.trailingNewline = len(content) > 0 && content[len(content)-1] == '\n'
	if sb.trailingNewline {
		content = content[:len(content)-1]
	}

	raw := bytes.Split(content, []byte("\n"))
	newLines := make([][]byte, len(raw))
	for i, line := range raw {
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines[i] = lineCopy
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.lines = newLines
}

// Replace substitutes the entire buffer content and marks it modified.
func (sb *SliceBuffer) Replace(content []byte) {
	sb.setContent(content)
	sb.modified = true
}

// Lines returns the underlying line slice. Callers must not mutate it.
func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

// LineCount returns the number of lines in the buffer.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the line at index.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes reassembles the buffer content, restoring the trailing newline
// when the loaded file had one.
func (sb *SliceBuffer) Bytes() []byte {
	var buffer bytes.Buffer
	for i, line := range sb.lines {
		buffer.Write(line)
		if i < len(sb.lines)-1 {
			buffer.WriteByte('\n')
		}
	}
	if sb.trailingNewline {
		buffer.WriteByte('\n')
	}
	return buffer.Bytes()
}

// Save writes the buffer content to the stored filePath.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" { // Allow overriding path during save
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, sb.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

// FilePath returns the path the buffer was loaded from.
func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// IsModified reports whether the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}
