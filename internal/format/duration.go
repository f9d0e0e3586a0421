// Package format renders values for log output.
package format

import (
	"fmt"
	"time"
)

// Elapsed formats a duration for log output. Generation calls are usually
// far below a millisecond, so it keeps nanosecond and microsecond units for
// short durations, milliseconds below a second, and the default string
// representation otherwise.
func Elapsed(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
