package scans

import (
	"fmt"
)

// TimestampDivisor converts logged milliseconds into seconds.
const TimestampDivisor = 1000

// NormalizeTimestamps divides every timestamp by TimestampDivisor. A table can
// only be normalized once.
func (t *EventTable) NormalizeTimestamps() error {
	if t.normalized {
		return fmt.Errorf("%w: timestamps already normalized", ErrData)
	}
	for i := range t.Events {
		t.Events[i].Timestamp = t.Events[i].Timestamp / TimestampDivisor
	}
	t.normalized = true
	return nil
}

func (t *EventTable) Normalized() bool {
	return t.normalized
}
