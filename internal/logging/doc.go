// Package logging wraps a process-wide zap logger. Output is silent unless a
// level is passed on the command line or set in TODOLIST_LOG_LEVEL.
package logging
