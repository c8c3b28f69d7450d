//go:build !robbodebug

package sim

import "github.com/charmbracelet/log"

// contractViolation logs a broken invariant and lets the simulation continue.
func contractViolation(logger *log.Logger, msg string, keyvals ...any) {
	logger.Warn("contract violation: "+msg, keyvals...)
}
