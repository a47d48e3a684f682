// Package activation implements the scalar activation functions used by
// the Perceptor network engine.
//
// This package provides:
//   - Func interface: Forward, Backward (inverse), Derivative, Clone, Info
//   - Identity: f(x) = x
//   - Sigmoid: σ(x) = 1 / (1 + exp(-x))
//   - DebugPrint: wraps another Func and logs every call
//   - Info: a tagged, JSON-serializable description of any Func
//
// Activation functions are pure scalar transforms applied per neuron after
// the affine step of a layer. The Info tree is the serialized form of a
// Func: because the variant set is closed, a generic decoder can round-trip
// any activation without runtime type identity.
package activation

import (
	"fmt"
	"io"
	"math"
	"os"
)

// Func is the interface implemented by all activation functions.
//
// Implementations are deterministic and never mutated after construction.
// DebugPrint additionally writes a log line per call; the logging must not
// alter the returned value.
type Func interface {
	// Forward applies the activation to a pre-activation (net input) value.
	Forward(x float64) float64

	// Backward computes the mathematical inverse of Forward.
	//
	// It is a diagnostic operation, not part of the training path. Domain
	// restrictions are documented per variant and not enforced: inputs
	// outside the domain propagate as NaN or ±Inf.
	Backward(x float64) float64

	// Derivative computes dForward/dx expressed in terms of the
	// already-activated output, not the pre-activation input.
	//
	// Callers must pass the value Forward returned (e.g. for Sigmoid the
	// derivative is output*(1-output)). Passing the raw net input silently
	// yields the wrong gradient.
	Derivative(output float64) float64

	// Clone returns an independent, value-equal copy.
	Clone() Func

	// Info returns the tagged serializable description of this function.
	Info() Info
}

// Identity is the identity activation: f(x) = x.
//
// Its inverse is itself and its derivative is 1 everywhere.
type Identity struct{}

// Forward returns x unchanged.
func (Identity) Forward(x float64) float64 { return x }

// Backward returns x unchanged (identity is its own inverse).
func (Identity) Backward(x float64) float64 { return x }

// Derivative returns 1 for any output.
func (Identity) Derivative(_ float64) float64 { return 1.0 }

// Clone returns a copy of this activation.
func (Identity) Clone() Func { return Identity{} }

// Info returns the tagged description of this activation.
func (Identity) Info() Info { return Info{Kind: KindIdentity} }

// Sigmoid is the logistic activation: σ(x) = 1 / (1 + exp(-x)).
//
// Forward squashes any finite input into (0, 1).
type Sigmoid struct{}

// Forward applies the logistic function: σ(x) = 1 / (1 + exp(-x)).
func (Sigmoid) Forward(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

// Backward computes the logit, the inverse of Forward: -ln((1-x)/x).
//
// Defined only for x in (0, 1). Outside that interval the result is a
// non-finite float (±Inf at the endpoints, NaN beyond them); callers own
// the domain.
func (Sigmoid) Backward(x float64) float64 { return -math.Log((1.0 - x) / x) }

// Derivative computes σ'(x) = σ(x) * (1 - σ(x)) given the activated
// output σ(x).
func (Sigmoid) Derivative(output float64) float64 { return output * (1.0 - output) }

// Clone returns a copy of this activation.
func (Sigmoid) Clone() Func { return Sigmoid{} }

// Info returns the tagged description of this activation.
func (Sigmoid) Info() Info { return Info{Kind: KindSigmoid} }

// DebugPrint wraps another activation function and logs every call.
//
// Each operation delegates to the wrapped function, then writes exactly one
// line of the form "label; f(x) = y" (f⁻¹ for Backward, f' for Derivative)
// after the wrapped computation completes. The log line never changes the
// returned value.
type DebugPrint struct {
	output     string
	activation Func
	w          io.Writer
}

// NewDebugPrint wraps activation, logging every call to os.Stdout under
// the given label.
func NewDebugPrint(output string, activation Func) *DebugPrint {
	return NewDebugPrintTo(os.Stdout, output, activation)
}

// NewDebugPrintTo is NewDebugPrint with an explicit log destination.
// Useful in tests to capture the output.
func NewDebugPrintTo(w io.Writer, output string, activation Func) *DebugPrint {
	return &DebugPrint{
		output:     output,
		activation: activation,
		w:          w,
	}
}

// Forward delegates to the wrapped activation and logs the call.
func (d *DebugPrint) Forward(x float64) float64 {
	result := d.activation.Forward(x)
	fmt.Fprintf(d.w, "%s; f(%v) = %v\n", d.output, x, result)
	return result
}

// Backward delegates to the wrapped activation's inverse and logs the call.
func (d *DebugPrint) Backward(x float64) float64 {
	result := d.activation.Backward(x)
	fmt.Fprintf(d.w, "%s; f⁻¹(%v) = %v\n", d.output, x, result)
	return result
}

// Derivative delegates to the wrapped activation's derivative and logs
// the call. As with every Func, the argument is the activated output.
func (d *DebugPrint) Derivative(output float64) float64 {
	result := d.activation.Derivative(output)
	fmt.Fprintf(d.w, "%s; f'(%v) = %v\n", d.output, output, result)
	return result
}

// Clone returns an independent copy wrapping a clone of the inner
// activation. The clone logs to the same writer.
func (d *DebugPrint) Clone() Func {
	return &DebugPrint{
		output:     d.output,
		activation: d.activation.Clone(),
		w:          d.w,
	}
}

// Info returns the tagged description of this activation, including the
// nested description of the wrapped function. The log destination is
// runtime wiring, not model state, and is not part of the description.
func (d *DebugPrint) Info() Info {
	nested := d.activation.Info()
	return Info{
		Kind:       KindDebugPrint,
		Output:     d.output,
		Activation: &nested,
	}
}
