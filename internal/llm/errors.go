package llm

import "errors"

// Sentinel errors callers branch on. The extraction pipeline treats all of
// them as "fall back to rule-based parsing".
var (
	ErrUnavailable    = errors.New("llm server unavailable")
	ErrTimeout        = errors.New("llm request timed out")
	ErrInvalidOutput  = errors.New("invalid llm output format")
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
