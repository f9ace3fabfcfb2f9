package worker

// Config holds configuration for batch execution.
type Config struct {
	// Concurrency is the number of records reconciled in parallel.
	Concurrency int `mapstructure:"concurrency" default:"5"`
}
