package rmlines

import (
	"github.com/akeil/rmlines/internal/logging"
)

// LogLevels are the names accepted by SetLogLevel.
var LogLevels = []string{"debug", "info", "warning", "error", "none"}

// SetLogLevel sets the log level for all packages by name,
// one of LogLevels.
// Returns an error for unknown names and leaves the level unchanged.
func SetLogLevel(level string) error {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	logging.SetLevel(lvl)
	return nil
}
