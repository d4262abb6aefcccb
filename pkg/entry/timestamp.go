package entry

import "time"

// Millis converts t to epoch milliseconds.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// TimeOf converts epoch milliseconds to a local time.
func TimeOf(ms int64) time.Time {
	return time.UnixMilli(ms).Local()
}

// Created returns the creation instant of the entry.
func (e Entry) Created() time.Time {
	return TimeOf(e.Timestamp)
}
