package core

import "time"

// Metrics records business counters. Implementations must be safe for concurrent use.
type Metrics interface {
	// WalletOperation counts a wallet mutation by operation and outcome
	WalletOperation(operation, outcome string)
	// LLMRequest records one provider round trip
	LLMRequest(provider, outcome string, duration time.Duration)
	// ToolExecution counts a bridge tool call by outcome
	ToolExecution(tool, outcome string)
}
