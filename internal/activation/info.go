package activation

import "fmt"

// Kind tags an activation variant in its serialized form.
type Kind string

// Recognized activation kinds.
const (
	KindIdentity   Kind = "Identity"
	KindSigmoid    Kind = "Sigmoid"
	KindDebugPrint Kind = "DebugPrint"
)

// Info is a structurally-tagged description of an activation function,
// the closed sum type over all variants.
//
// Info is directly JSON-serializable and recursively nestable (DebugPrint
// wraps another description to arbitrary depth):
//
//	{"kind": "Sigmoid"}
//	{"kind": "DebugPrint", "output": "hidden", "activation": {"kind": "Identity"}}
//
// Output and Activation are only meaningful for KindDebugPrint.
type Info struct {
	Kind       Kind   `json:"kind"`
	Output     string `json:"output,omitempty"`
	Activation *Info  `json:"activation,omitempty"`
}

// Func reconstructs the activation function this Info describes.
//
// Returns an error for an unknown kind or for a DebugPrint description
// with no wrapped activation. A reconstructed DebugPrint logs to
// os.Stdout.
func (i Info) Func() (Func, error) {
	switch i.Kind {
	case KindIdentity:
		return Identity{}, nil
	case KindSigmoid:
		return Sigmoid{}, nil
	case KindDebugPrint:
		if i.Activation == nil {
			return nil, fmt.Errorf("activation: DebugPrint %q has no wrapped activation", i.Output)
		}
		wrapped, err := i.Activation.Func()
		if err != nil {
			return nil, err
		}
		return NewDebugPrint(i.Output, wrapped), nil
	default:
		return nil, fmt.Errorf("activation: unknown activation kind %q", i.Kind)
	}
}
