package domain

import "time"

type ToolOutcome string

const (
	ToolOutcomeOK       ToolOutcome = "ok"
	ToolOutcomeError    ToolOutcome = "error"
	ToolOutcomeRejected ToolOutcome = "rejected"
)

// Metrics receives observations from the dispatcher and the API client.
// Implementations must be safe for concurrent use.
type Metrics interface {
	ObserveToolCall(tool string, outcome ToolOutcome, duration time.Duration)
	ObserveAuthExchange(duration time.Duration, err error)
	ObserveAuthRetry()
}
