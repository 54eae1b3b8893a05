package models

import "time"

// Clock abstracts the wall clock so use-cases and tests control the
// timestamps stamped onto entities.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
