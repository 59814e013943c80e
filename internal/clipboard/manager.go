// internal/clipboard/manager.go
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/templit/internal/logger"
)

// Manager offers clipboard storage: the system clipboard when enabled
// and available, an in-process buffer otherwise. Headless environments
// (CI, containers) routinely lack a clipboard provider, so system
// write failures degrade to the internal buffer instead of failing the
// run.
type Manager struct {
	useSystem bool
	internal  []byte
}

// NewManager creates a clipboard manager.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("System clipboard unsupported on this platform, using internal clipboard")
		useSystem = false
	}
	return &Manager{useSystem: useSystem}
}

// Write stores content on the clipboard.
func (m *Manager) Write(content []byte) error {
	if m.useSystem {
		if err := clipboard.WriteAll(string(content)); err != nil {
			logger.Warnf("System clipboard write failed, falling back to internal: %v", err)
		} else {
			logger.DebugTagf("clipboard", "wrote %d bytes to system clipboard", len(content))
			return nil
		}
	}
	m.internal = append([]byte(nil), content...)
	return nil
}

// Read returns the clipboard content.
func (m *Manager) Read() ([]byte, error) {
	if m.useSystem {
		text, err := clipboard.ReadAll()
		if err == nil {
			return []byte(text), nil
		}
		logger.Warnf("System clipboard read failed, falling back to internal: %v", err)
	}
	if m.internal == nil {
		return nil, errors.New("clipboard is empty")
	}
	return append([]byte(nil), m.internal...), nil
}
