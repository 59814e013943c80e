// internal/buffer/buffer.go
package buffer

// Buffer defines the interface for text buffer operations the
// converter needs: line-wise read access for the scanner and a
// whole-content replacement sink for writing the converted text back.
type Buffer interface {
	Load(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Bytes() []byte
	// Replace substitutes the entire buffer content. This is the
	// write-back sink: the converter computes the final text once and
	// hands it over in a single call.
	Replace(content []byte)
	Save(filePath string) error
	FilePath() string
	IsModified() bool
}
