package bahncopilot

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process-wide logger with logfmt output.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return logger
}
