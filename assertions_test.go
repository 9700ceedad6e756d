package growthbench

import (
	"testing"
)

func TestAssertExponent(t *testing.T) {
	AssertExponent(t, synthetic(1e-9, 2), 2.0, DefaultAssertionConfig())
}

func TestAssertMaxExponent(t *testing.T) {
	AssertMaxExponent(t, synthetic(1e-9, 1), 1.0, DefaultAssertionConfig())
	AssertMaxExponent(t, synthetic(1e-9, 1), 2.0, DefaultAssertionConfig())
}

// TestAssertExponent_Mismatch verifies the assertion fails a linear dataset asserted quadratic.
func TestAssertExponent_Mismatch(t *testing.T) {
	rec := &recordingT{TB: t}
	AssertExponent(rec, synthetic(1e-9, 1), 2.0, DefaultAssertionConfig())
	if !rec.failed {
		t.Error("Expected AssertExponent to fail for O(n) data asserted as O(n^2)")
	}
}

// recordingT captures failures instead of failing the enclosing test.
type recordingT struct {
	testing.TB
	failed bool
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...any) { r.failed = true }

func (r *recordingT) Fatalf(format string, args ...any) { r.failed = true }

func (r *recordingT) Logf(format string, args ...any) {}
