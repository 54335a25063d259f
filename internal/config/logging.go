package config

import (
	"github.com/rshade/roster/internal/logging"
)

// ToLoggingConfig converts the logging section into a logging.Config.
//
// When the terminal is owned by the interactive page, console output would
// corrupt the screen, so interactive sessions log to File or nowhere.
// Non-interactive commands log to stderr unless File is set.
func (lc LoggingConfig) ToLoggingConfig(interactive bool) logging.Config {
	out := logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: logging.OutputStderr,
		File:   lc.File,
	}

	switch {
	case lc.File != "":
		out.Output = logging.OutputFile
	case interactive:
		out.Output = logging.OutputDiscard
	}
	return out
}
