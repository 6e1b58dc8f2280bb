package tensor

import (
	"fmt"

	"github.com/golang/glog"
)

// fatalf logs a diagnostic and then panics, the way an "ERROR: ..."
// plus assert(0) abort does in the reference engine. Every core operation
// invoked on an element type or descriptor that cannot support it
// (casts on a non-numeric ring, min/max/abs when !IsOrdered, a pad_tsr
// accounting mismatch) goes through here rather than returning
// undefined bytes: continuing in a degraded state risks silently
// corrupting distributed state across peer processes.
func fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	glog.Errorf("tensor: fatal: %s", msg)
	panic("tensor: " + msg)
}

// assertf checks a contract invariant (e.g. pad_tsr's new_el+size ==
// pad_el, or CSR.Validate's row-pointer invariants) and fatally aborts
// when it does not hold.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		fatalf(format, args...)
	}
}
