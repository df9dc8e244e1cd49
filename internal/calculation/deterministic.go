package calculation

import "time"

// seedFunc returns the seed used when a caller asks for a clock-seeded
// growth-curve generator (override for deterministic tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }
