package observers

import log "github.com/sirupsen/logrus"

// NewDefaultLoggingObserver creates a logging observer backed by the logrus standard logger
func NewDefaultLoggingObserver() *LoggingObserver {
	return NewLoggingObserver(log.StandardLogger())
}
