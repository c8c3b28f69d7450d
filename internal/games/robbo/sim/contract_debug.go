//go:build robbodebug

package sim

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// contractViolation aborts on a broken invariant in debug builds.
func contractViolation(logger *log.Logger, msg string, keyvals ...any) {
	logger.Error("contract violation: "+msg, keyvals...)
	panic(fmt.Sprintf("sim: contract violation: %s %v", msg, keyvals))
}
