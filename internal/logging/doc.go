// Package logging provides opt-in file-based logging with rotation for
// needle. When the --debug flag is set, structured logs are written to
// ~/.needle/logs/ for debugging and troubleshooting.
//
// By default (without --debug), nothing is logged: the CLI stays silent
// except for its own output.
package logging
