// Package logging provides structured logging for civi.
//
// The package keeps one zap logger for the whole process. It is silent by
// default: the editor owns the terminal, so nothing may be written to stdout
// while it runs. When a level is configured, entries go to a log file.
//
// # Configuration
//
//	if err := logging.Initialize("debug", "/tmp/civi.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// An empty level falls back to the CIVI_LOG_LEVEL environment variable. An
// empty path falls back to CIVI_LOG_FILE, then to stderr.
//
// # Editing Events
//
// Section models report controller transitions with LogEdit:
//
//	logging.LogEdit("academic", "submit", uid)
//
// Field values are never logged, only field names, since a résumé holds
// personal data.
package logging
