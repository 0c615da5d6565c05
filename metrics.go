package factory

import (
	"time"
)

// CreateHook observes every Create call once it has finished, successful or
// not. base is the produced type's name and ids the requested identifiers.
type CreateHook func(base string, ids []string, duration time.Duration, err error)
