// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). CLI runs default to console encoding; the
// serve command typically runs with json encoding.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches
// it to the log entry, so all logs for one HTTP request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
package logger
