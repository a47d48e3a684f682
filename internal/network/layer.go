package network

import (
	"math/rand"

	"github.com/perceptor-ml/perceptor/internal/activation"
)

// Layer is one affine transform followed by an activation function.
//
// It maps a vector of numInputs values to a vector of numNeurons values:
// for neuron i, output[i] = activation(bias[i] + Σ_j weights[i][j] * input[j]).
//
// Shape invariants (a construction-time contract, not re-checked on the
// hot path): len(weights) == len(biases) == number of neurons, and every
// row of weights has the same length, the number of inputs.
type Layer struct {
	weights    [][]float64 // [num_neurons][num_inputs]
	biases     []float64   // [num_neurons]
	activation activation.Func
}

// NewLayer creates a layer from explicit weights and biases.
//
// Shapes are the caller's contract: ragged rows or a weight/bias length
// mismatch are programmer errors, not runtime conditions. Network.New
// validates the full chain when layers are assembled into a network.
func NewLayer(weights [][]float64, biases []float64, act activation.Func) *Layer {
	return &Layer{
		weights:    weights,
		biases:     biases,
		activation: act,
	}
}

// NewZeroLayer creates a layer of the given dimensions with all weights
// and biases zero. Backpropagation uses zero layers to accumulate
// per-layer deltas before applying them.
func NewZeroLayer(numNeurons, numInputs int, act activation.Func) *Layer {
	weights := make([][]float64, numNeurons)
	for i := range weights {
		weights[i] = make([]float64, numInputs)
	}
	return &Layer{
		weights:    weights,
		biases:     make([]float64, numNeurons),
		activation: act,
	}
}

// randomLayer creates a layer with weights drawn uniformly from
// [0, 1/numInputs) and biases from [0, 1/numNeurons).
func randomLayer(numNeurons, numInputs int, act activation.Func) *Layer {
	weights := make([][]float64, numNeurons)
	for i := range weights {
		row := make([]float64, numInputs)
		for j := range row {
			//nolint:gosec // Using math/rand for weight initialization (not security-critical)
			row[j] = rand.Float64() / float64(numInputs)
		}
		weights[i] = row
	}
	biases := make([]float64, numNeurons)
	for i := range biases {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		biases[i] = rand.Float64() / float64(numNeurons)
	}
	return &Layer{
		weights:    weights,
		biases:     biases,
		activation: act,
	}
}

// Len returns the number of neurons in the layer.
func (l *Layer) Len() int {
	return len(l.biases)
}

// NumInputs returns the width of the input vector this layer consumes.
func (l *Layer) NumInputs() int {
	if len(l.weights) == 0 {
		return 0
	}
	return len(l.weights[0])
}

// Weights returns the live weight matrix, row i holding the incoming
// weights of neuron i.
func (l *Layer) Weights() [][]float64 {
	return l.weights
}

// Biases returns the live bias vector, one entry per neuron.
func (l *Layer) Biases() []float64 {
	return l.biases
}

// Activation returns the layer's activation function, shared by all
// neurons in the layer.
func (l *Layer) Activation() activation.Func {
	return l.activation
}

// Clone returns a deep copy sharing no weight or bias storage with the
// original. The activation function is cloned as well.
func (l *Layer) Clone() *Layer {
	weights := make([][]float64, len(l.weights))
	for i, row := range l.weights {
		weights[i] = append([]float64(nil), row...)
	}
	return &Layer{
		weights:    weights,
		biases:     append([]float64(nil), l.biases...),
		activation: l.activation.Clone(),
	}
}

// forward computes the layer's activated output for the given input.
func (l *Layer) forward(input []float64) []float64 {
	output := make([]float64, len(l.weights))
	for i, row := range l.weights {
		sum := l.biases[i]
		for j, w := range row {
			sum += w * input[j]
		}
		output[i] = l.activation.Forward(sum)
	}
	return output
}
