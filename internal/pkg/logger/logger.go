// internal/pkg/logger/logger.go
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/saree-storefront/internal/config"
)

// New creates a logrus logger configured from the application config
func New(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
