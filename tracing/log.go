package tracing

import "github.com/rs/zerolog"

// LogSink emits one structured zerolog event per middleware boundary.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink returns a LogSink emitting through logger at debug level.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Inward logs the entry into name.
func (s *LogSink) Inward(name string) {
	s.logger.Debug().Str("middleware", name).Str("direction", "inward").Msg("enter")
}

// Outward logs the exit from name.
func (s *LogSink) Outward(name string) {
	s.logger.Debug().Str("middleware", name).Str("direction", "outward").Msg("leave")
}
