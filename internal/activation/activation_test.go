package activation_test

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/perceptor-ml/perceptor/internal/activation"
)

// Helper to check if values are approximately equal.
func floatEqual(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

// TestIdentity verifies the identity activation: f(x) = x, f⁻¹(x) = x,
// f'(x) = 1 for all finite x.
func TestIdentity(t *testing.T) {
	id := activation.Identity{}

	for _, x := range []float64{-1e9, -3.5, -1, 0, 0.25, 1, 42, 1e9} {
		if got := id.Forward(x); got != x {
			t.Errorf("Forward(%v) = %v, want %v", x, got, x)
		}
		if got := id.Backward(x); got != x {
			t.Errorf("Backward(%v) = %v, want %v", x, got, x)
		}
		if got := id.Derivative(x); got != 1.0 {
			t.Errorf("Derivative(%v) = %v, want 1", x, got)
		}
	}
}

// TestSigmoid_Forward verifies the logistic function stays in (0, 1)
// and hits known values.
func TestSigmoid_Forward(t *testing.T) {
	sig := activation.Sigmoid{}

	if got := sig.Forward(0); got != 0.5 {
		t.Errorf("Forward(0) = %v, want 0.5", got)
	}
	if got := sig.Forward(1); !floatEqual(got, 0.7310585786300049, 1e-12) {
		t.Errorf("Forward(1) = %v, want 0.7310585786300049", got)
	}

	for _, x := range []float64{-700, -10, -1, 0, 1, 10, 700} {
		got := sig.Forward(x)
		if !(got > 0 && got < 1) {
			t.Errorf("Forward(%v) = %v, want value in (0, 1)", x, got)
		}
	}
}

// TestSigmoid_Derivative verifies the derivative-on-output identity
// σ'(x) = σ(x) * (1 - σ(x)).
func TestSigmoid_Derivative(t *testing.T) {
	sig := activation.Sigmoid{}

	for x := -5.0; x <= 5.0; x += 0.5 {
		out := sig.Forward(x)
		want := out * (1.0 - out)
		if got := sig.Derivative(out); got != want {
			t.Errorf("Derivative(Forward(%v)) = %v, want %v", x, got, want)
		}
	}
}

// TestSigmoid_Backward verifies the logit inverts Forward on (0, 1) and
// that out-of-domain inputs propagate as non-finite values, per the
// documented contract.
func TestSigmoid_Backward(t *testing.T) {
	sig := activation.Sigmoid{}

	for x := -4.0; x <= 4.0; x += 0.5 {
		if got := sig.Backward(sig.Forward(x)); !floatEqual(got, x, 1e-9) {
			t.Errorf("Backward(Forward(%v)) = %v, want %v", x, got, x)
		}
	}

	// Domain edges and violations: non-finite, never coerced.
	if got := sig.Backward(0); !math.IsInf(got, -1) {
		t.Errorf("Backward(0) = %v, want -Inf", got)
	}
	if got := sig.Backward(1); !math.IsInf(got, +1) {
		t.Errorf("Backward(1) = %v, want +Inf", got)
	}
	if got := sig.Backward(-0.5); !math.IsNaN(got) {
		t.Errorf("Backward(-0.5) = %v, want NaN", got)
	}
	if got := sig.Backward(1.5); !math.IsNaN(got) {
		t.Errorf("Backward(1.5) = %v, want NaN", got)
	}
}

// TestDebugPrint verifies that the wrapper never changes results and
// writes exactly one log line per call, after the wrapped computation.
func TestDebugPrint(t *testing.T) {
	var buf bytes.Buffer
	sig := activation.Sigmoid{}
	dbg := activation.NewDebugPrintTo(&buf, "hidden", sig)

	if got := dbg.Forward(0); got != sig.Forward(0) {
		t.Errorf("Forward(0) = %v, want %v", got, sig.Forward(0))
	}
	if got := buf.String(); got != "hidden; f(0) = 0.5\n" {
		t.Errorf("Forward log = %q, want %q", got, "hidden; f(0) = 0.5\n")
	}

	buf.Reset()
	out := sig.Forward(0)
	if got := dbg.Derivative(out); got != sig.Derivative(out) {
		t.Errorf("Derivative(%v) = %v, want %v", out, got, sig.Derivative(out))
	}
	if !strings.HasPrefix(buf.String(), "hidden; f'(0.5) = ") {
		t.Errorf("Derivative log = %q, want prefix %q", buf.String(), "hidden; f'(0.5) = ")
	}

	buf.Reset()
	if got := dbg.Backward(0.5); got != sig.Backward(0.5) {
		t.Errorf("Backward(0.5) = %v, want %v", got, sig.Backward(0.5))
	}
	if !strings.HasPrefix(buf.String(), "hidden; f⁻¹(0.5) = ") {
		t.Errorf("Backward log = %q, want prefix %q", buf.String(), "hidden; f⁻¹(0.5) = ")
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("Backward wrote %d lines, want 1", got)
	}
}

// TestDebugPrint_Clone verifies clones are independent and value-equal.
func TestDebugPrint_Clone(t *testing.T) {
	var buf bytes.Buffer
	dbg := activation.NewDebugPrintTo(&buf, "out", activation.Sigmoid{})
	clone := dbg.Clone()

	if got, want := clone.Forward(1), dbg.Forward(1); got != want {
		t.Errorf("clone.Forward(1) = %v, want %v", got, want)
	}
	if got, want := clone.Info(), dbg.Info(); got.Kind != want.Kind || got.Output != want.Output {
		t.Errorf("clone.Info() = %+v, want %+v", got, want)
	}
}

// TestInfo_RoundTrip verifies a nested tagged description survives JSON
// and reconstructs the same variant tree.
func TestInfo_RoundTrip(t *testing.T) {
	dbg := activation.NewDebugPrint("outer", activation.NewDebugPrint("inner", activation.Sigmoid{}))
	info := dbg.Info()

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded activation.Info
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	fn, err := decoded.Func()
	if err != nil {
		t.Fatalf("Func() failed: %v", err)
	}
	got := fn.Info()
	if got.Kind != activation.KindDebugPrint || got.Output != "outer" {
		t.Errorf("outer Info = %+v, want DebugPrint %q", got, "outer")
	}
	if got.Activation == nil || got.Activation.Kind != activation.KindDebugPrint || got.Activation.Output != "inner" {
		t.Fatalf("inner Info = %+v, want DebugPrint %q", got.Activation, "inner")
	}
	if got.Activation.Activation == nil || got.Activation.Activation.Kind != activation.KindSigmoid {
		t.Errorf("innermost Info = %+v, want Sigmoid", got.Activation.Activation)
	}
}

// TestInfo_Errors verifies malformed descriptions fail to reconstruct.
func TestInfo_Errors(t *testing.T) {
	if _, err := (activation.Info{Kind: "Swish"}).Func(); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := (activation.Info{Kind: activation.KindDebugPrint, Output: "x"}).Func(); err == nil {
		t.Error("expected error for DebugPrint with no wrapped activation")
	}
}
