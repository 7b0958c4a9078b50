package repository

import "time"

// now is a hook so tests can freeze timestamps.
var now = func() time.Time { return time.Now().UTC() }
