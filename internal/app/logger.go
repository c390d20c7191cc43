package app

import (
	"os"
	"strconv"

	"github.com/guttosm/postage-comparator/internal/logger"
)

// InitializeLogger configures the global logger from LOG_LEVEL (default info)
// and LOG_PRETTY (any value strconv.ParseBool accepts as true).
func InitializeLogger() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	pretty, _ := strconv.ParseBool(os.Getenv("LOG_PRETTY"))
	logger.Init(logLevel, pretty)
}
