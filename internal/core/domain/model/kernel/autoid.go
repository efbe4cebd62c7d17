package kernel

import (
	"fmt"
	"math/rand"
	"time"
)

// Auto ids follow the PREFIX-YYYYMMDD-NNN scheme, NNN being a per-day
// per-prefix counter. PrefixBox identifies boxes, PrefixWarehouse the
// warehouse itself.
const (
	PrefixBox       = "BOX"
	PrefixWarehouse = "BOD"

	autoIDSeqDigits = 3
)

// DateStamp formats t as the YYYYMMDD date key used to scope auto-id
// counters to a single day.
func DateStamp(t time.Time) string {
	return t.Format("20060102")
}

// FormatAutoID renders a generated identifier such as "BOX-20260901-007".
func FormatAutoID(prefix, dateStamp string, seq int) string {
	return fmt.Sprintf("%s-%s-%0*d", prefix, dateStamp, autoIDSeqDigits, seq)
}

// RandomAutoID produces an identifier with a random suffix. It is the
// fallback when the sequence generator is unavailable; collisions are
// possible but harmless for display ids.
func RandomAutoID(prefix, dateStamp string) string {
	return FormatAutoID(prefix, dateStamp, rand.Intn(999)+1) //nolint:gosec // display id, not a secret
}
