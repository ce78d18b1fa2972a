package trace

import (
	"go.uber.org/zap"
)

// ZapSink writes trace records as structured zap log entries.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps the logger as a Sink.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Write(r Record) {
	fields := []zap.Field{
		zap.String("team", r.Team),
		zap.Int("minute", r.Minute),
		zap.String("outcome", r.Outcome),
	}
	if r.Severity != "" {
		fields = append(fields, zap.String("severity", r.Severity))
	}
	if len(r.Inputs) > 0 {
		fields = append(fields, zap.Any("inputs", r.Inputs))
	}
	if len(r.Computed) > 0 {
		fields = append(fields, zap.Any("computed", r.Computed))
	}
	if len(r.Tags) > 0 {
		fields = append(fields, zap.Strings("tags", r.Tags))
	}
	s.logger.Debug(string(r.Type), fields...)
}
