package llm

import "go.uber.org/zap"

// CallEvent records metadata about a single LLM invocation.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// ZapObserver logs LLM call events through a structured logger.
type ZapObserver struct {
	log *zap.Logger
}

func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if event.Success {
		o.log.Info("llm call complete", fields...)
		return
	}
	o.log.Warn("llm call failed", append(fields, zap.String("error_code", event.ErrorCode))...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
