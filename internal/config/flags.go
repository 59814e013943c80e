// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/templit/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	EnableTags     *string
	DisableTags    *string

	Passes  *int
	Verify  *bool
	Preview *bool

	Write    *bool
	OutPath  *string
	CopyOnly *bool
}

// DefineFlags sets up the command-line flags and associates them with
// the Flags struct fields.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.EnableTags = flag.String("log-tags", "", "Comma-separated list of log tags to enable - Overrides config file")
	f.DisableTags = flag.String("log-disable-tags", "", "Comma-separated list of log tags to disable - Overrides config file")
	f.Passes = flag.Int("passes", 0, "Maximum scan passes per file - Overrides config file") // 0 means unset
	f.Verify = flag.Bool("verify", true, "Parse the converted output and fail on syntax errors - Overrides config file")
	f.Preview = flag.Bool("preview", false, "Confirm each conversion in a terminal UI - Overrides config file")
	f.Write = flag.Bool("write", false, "Rewrite the input file in place")
	f.OutPath = flag.String("out", "", "Write the converted text to this path instead of stdout")
	f.CopyOnly = flag.Bool("copy", false, "Copy the converted text to the clipboard instead of writing it")
}

// ParseFlags parses the defined command-line flags into the Flags
// struct. It returns the remaining non-flag arguments (the file path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config struct with values from flags *if*
// they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	// Visit only processes flags that were actually set
	flag.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil { // Empty string is valid ("-")
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "log-tags":
			if f.EnableTags != nil && *f.EnableTags != "" {
				cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
			}
		case "log-disable-tags":
			if f.DisableTags != nil && *f.DisableTags != "" {
				cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
			}
		case "passes":
			if f.Passes != nil && *f.Passes > 0 {
				cfg.Convert.MaxPasses = *f.Passes
			}
		case "verify":
			if f.Verify != nil {
				cfg.Convert.VerifySyntax = *f.Verify
			}
		case "preview":
			if f.Preview != nil {
				cfg.Convert.Preview = *f.Preview
			}
		}
	})
}

// Helper function to split comma-separated list
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
