// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/bethropolis/templit/internal/buffer"
	"github.com/bethropolis/templit/internal/clipboard"
	"github.com/bethropolis/templit/internal/config"
	"github.com/bethropolis/templit/internal/event"
	"github.com/bethropolis/templit/internal/logger"
	"github.com/bethropolis/templit/internal/tui"
	"github.com/bethropolis/templit/internal/verify"
)

// Output selects where the converted text ends up.
type Output struct {
	Write    bool   // rewrite the input file in place
	OutPath  string // explicit output path, if any
	CopyOnly bool   // clipboard instead of a file/stdout
}

// App encapsulates the components and run loop of the converter.
type App struct {
	cfg          *config.Config
	buf          buffer.Buffer
	eventManager *event.Manager
	converter    *Converter
	verifier     *verify.Verifier
	clip         *clipboard.Manager
	filePath     string
	output       Output
}

// NewApp creates and initializes a new application instance.
func NewApp(cfg *config.Config, filePath string, output Output) (*App, error) {
	var buf buffer.Buffer = buffer.NewSliceBuffer()
	if err := buf.Load(filePath); err != nil {
		return nil, fmt.Errorf("loading '%s': %w", filePath, err)
	}

	eventManager := event.NewManager()
	eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath})

	var verifier *verify.Verifier
	if cfg.Convert.VerifySyntax {
		verifier = verify.New()
	}

	appInstance := &App{
		cfg:          cfg,
		buf:          buf,
		eventManager: eventManager,
		converter:    NewConverter(buf, eventManager, cfg.Convert.MaxPasses),
		verifier:     verifier,
		clip:         clipboard.NewManager(cfg.Convert.SystemClipboard),
		filePath:     filePath,
		output:       output,
	}

	appInstance.registerEventHandlers()
	return appInstance, nil
}

// registerEventHandlers wires log reporting to conversion events.
func (a *App) registerEventHandlers() {
	a.eventManager.Subscribe(event.TypeMatchFound, func(e event.Event) bool {
		if data, ok := e.Data.(event.MatchFoundData); ok {
			logger.InfoTagf("scan", "line %d: %s -> %s", data.Line+1, data.Original, data.Replacement)
		}
		return false
	})
	a.eventManager.Subscribe(event.TypeConvertDone, func(e event.Event) bool {
		if data, ok := e.Data.(event.ConvertDoneData); ok {
			logger.Infof("Converted %d chain(s) in %d pass(es)", data.Matches, data.Passes)
		}
		return false
	})
}

// Run performs the conversion and delivers the result to the selected
// sink. In preview mode each match is confirmed on a terminal screen
// first.
func (a *App) Run(ctx context.Context) error {
	before := a.buf.Bytes()

	var err error
	if a.cfg.Convert.Preview {
		err = a.runPreview()
	} else {
		err = a.converter.Convert()
	}
	if err != nil {
		return err
	}

	if a.verifier != nil && a.buf.IsModified() {
		if verr := a.verifier.CheckConversion(ctx, before, a.buf.Bytes()); verr != nil {
			return fmt.Errorf("verification of '%s' failed: %w", a.filePath, verr)
		}
	}

	return a.deliver()
}

// runPreview runs a single interactive pass: the screen must be torn
// down before anything is printed or written.
func (a *App) runPreview() error {
	t, err := tui.New()
	if err != nil {
		return fmt.Errorf("preview unavailable: %w", err)
	}

	preview := tui.NewPreview(t, a.eventManager)
	err = a.converter.ConvertInteractive(preview)
	t.Close()
	return err
}

// deliver routes the converted text to clipboard, file, or stdout.
func (a *App) deliver() error {
	content := a.buf.Bytes()

	if a.output.CopyOnly {
		if err := a.clip.Write(content); err != nil {
			return fmt.Errorf("clipboard write failed: %w", err)
		}
		logger.Infof("Converted text copied to clipboard")
		return nil
	}

	switch {
	case a.output.Write:
		if !a.buf.IsModified() {
			logger.Infof("No conversions in '%s', file left untouched", a.filePath)
			return nil
		}
		if err := a.buf.Save(""); err != nil {
			return err
		}
		a.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: a.filePath})
	case a.output.OutPath != "":
		if err := a.buf.Save(a.output.OutPath); err != nil {
			return err
		}
		a.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: a.output.OutPath})
	default:
		if _, err := os.Stdout.Write(content); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
	}
	return nil
}
