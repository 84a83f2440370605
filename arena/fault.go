package arena

import "fmt"

// Fault is the panic payload raised when an enabled check fails. Faults
// signal programmer bugs, not runtime conditions: they terminate the
// process unless deliberately recovered, and the checks that raise them
// exist to turn silent memory corruption into an immediate, diagnosable
// crash.
type Fault struct {
	Err       error       // sentinel classifying the failure
	Allocator string      // debug name of the arena
	ID        AllocatorID // instance identity
	Offset    int         // cursor or target offset at the time of failure
	Addr      uintptr     // offending address, when one exists
	Detail    string      // human-readable specifics
}

func (f *Fault) Error() string {
	msg := fmt.Sprintf("%v [allocator=%q id=%d offset=%d", f.Err, f.Allocator, f.ID, f.Offset)
	if f.Addr != 0 {
		msg += fmt.Sprintf(" addr=%#x", f.Addr)
	}
	msg += "]"
	if f.Detail != "" {
		msg += ": " + f.Detail
	}
	return msg
}

// Unwrap exposes the sentinel so errors.Is works on recovered faults.
func (f *Fault) Unwrap() error { return f.Err }
