package growthbench

import (
	"fmt"
	"slices"
)

// ScheduleConfig controls the three sampling regimes of a size schedule.
//
// The regimes trade resolution for coverage:
//   - Small:  linear steps, resolves constant-overhead behavior
//   - Medium: geometric steps, uniform coverage in log-space
//   - Large:  coarser geometric steps, where asymptotic behavior dominates
type ScheduleConfig struct {
	SmallStart int // First small size (default: 1)
	SmallStep  int // Linear step (default: 10)
	SmallLimit int // Exclusive upper bound of the small regime (default: 101)

	MediumStart  int     // First medium size (default: 100)
	MediumFactor float64 // Growth factor, truncated to int each step (default: 1.5)
	MediumLimit  int     // Inclusive upper bound (default: 10000)

	LargeStart  int     // First large size (default: 10000)
	LargeFactor float64 // Growth factor (default: 2)
	LargeLimit  int     // Inclusive upper bound (default: 1000000)
}

// DefaultScheduleConfig returns the fixed sampling policy.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		SmallStart: 1,
		SmallStep:  10,
		SmallLimit: 101,

		MediumStart:  100,
		MediumFactor: 1.5,
		MediumLimit:  10_000,

		LargeStart:  10_000,
		LargeFactor: 2,
		LargeLimit:  1_000_000,
	}
}

// Validate reports configurations that would loop forever or emit sizes < 1.
func (c ScheduleConfig) Validate() error {
	if c.SmallStart < 1 || c.MediumStart < 1 || c.LargeStart < 1 {
		return fmt.Errorf("schedule sizes must start at 1 or above")
	}
	if c.SmallStep < 1 {
		return fmt.Errorf("small step must be positive, got %d", c.SmallStep)
	}
	if c.MediumFactor <= 1 || c.LargeFactor <= 1 {
		return fmt.Errorf("growth factors must be greater than 1 (medium=%v, large=%v)",
			c.MediumFactor, c.LargeFactor)
	}
	// int(cur*factor) must make progress from the start value.
	if int(float64(c.MediumStart)*c.MediumFactor) <= c.MediumStart {
		return fmt.Errorf("medium factor %v does not grow from %d", c.MediumFactor, c.MediumStart)
	}
	if int(float64(c.LargeStart)*c.LargeFactor) <= c.LargeStart {
		return fmt.Errorf("large factor %v does not grow from %d", c.LargeFactor, c.LargeStart)
	}
	return nil
}

// Schedule returns the default size schedule.
//
// Deterministic: 1, 11, ..., 91, then 100, 150, 225, ... up to 10000,
// then 10000, 20000, ... up to 1000000. Each bound is checked before the
// value is emitted, so no size exceeds 1,000,000.
func Schedule() []int {
	sizes, err := ScheduleWith(DefaultScheduleConfig())
	if err != nil {
		// The default configuration is valid.
		panic(err)
	}
	return sizes
}

// ScheduleWith builds a schedule from cfg: the union of the three regimes,
// deduplicated and sorted ascending.
func ScheduleWith(cfg ScheduleConfig) ([]int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var sizes []int

	for n := cfg.SmallStart; n < cfg.SmallLimit; n += cfg.SmallStep {
		sizes = append(sizes, n)
	}

	for n := cfg.MediumStart; n <= cfg.MediumLimit; n = int(float64(n) * cfg.MediumFactor) {
		sizes = append(sizes, n)
	}

	for n := cfg.LargeStart; n <= cfg.LargeLimit; n = int(float64(n) * cfg.LargeFactor) {
		sizes = append(sizes, n)
	}

	slices.Sort(sizes)
	return slices.Compact(sizes), nil
}
