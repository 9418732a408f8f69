// Package logging provides structured logging for the ledpanel daemon.
//
// It wraps a zap logger with convenience functions for the logging
// patterns used throughout the daemon: connection lifecycle events,
// request/response summaries, and raw byte dumps for wire debugging.
//
// # Log Levels
//
//   - Debug: raw request bytes, hex dumps, per-frame render detail
//   - Info: connections, requests, responses, state changes
//   - Warn: non-fatal issues (render errors, slow clients)
//   - Error: startup failures, listener errors
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize("info"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// When no level is given, the LEDPANEL_LOG_LEVEL environment variable
// is consulted; if that is also unset the logger is a silent nop, so
// library consumers get no unexpected output.
//
// All functions are safe for concurrent use.
package logging
