// Package network implements the Perceptor feedforward network engine.
//
// This package provides:
//   - Layer: one affine transform plus an activation function
//   - Network: an ordered stack of layers with fixed input/output width
//   - Forward / ForwardIntermediate: sequential layer evaluation
//   - Backpropagate: hand-derived squared-error gradient descent
//
// A Network is exclusively owned by the caller driving training: all
// operations are synchronous and single-threaded, and Backpropagate
// mutates layer parameters in place. Concurrent mutation of a shared
// Network is not supported.
package network

import (
	"fmt"

	"github.com/perceptor-ml/perceptor/internal/activation"
)

// Spec describes one hidden layer for Random: its neuron count and the
// activation shared by those neurons.
type Spec struct {
	Neurons    int
	Activation activation.Func
}

// Network is an ordered sequence of layers mapping a vector of numInputs
// values to a vector of numOutputs values.
//
// The declared widths are fixed for the network's lifetime. The first
// layer consumes numInputs values, each following layer consumes the
// previous layer's output, and the last layer produces numOutputs values.
type Network struct {
	numInputs  int
	numOutputs int
	layers     []*Layer
}

// New creates a network from an explicit layer list.
//
// Panics if layers is empty, if any layer's shape invariants are broken
// (ragged weight rows, weight/bias length mismatch), or if the widths do
// not chain from numInputs through every layer to numOutputs. These are
// construction-time contract violations; the forward and training paths
// do not re-validate per call.
func New(numInputs, numOutputs int, layers []*Layer) *Network {
	if len(layers) == 0 {
		panic("network.New: at least one layer is required")
	}
	prev := numInputs
	for i, layer := range layers {
		if len(layer.weights) != len(layer.biases) {
			panic(fmt.Sprintf("network.New: layer %d has %d weight rows but %d biases",
				i, len(layer.weights), len(layer.biases)))
		}
		for j, row := range layer.weights {
			if len(row) != prev {
				panic(fmt.Sprintf("network.New: layer %d row %d has %d weights, want %d",
					i, j, len(row), prev))
			}
		}
		prev = layer.Len()
	}
	if prev != numOutputs {
		panic(fmt.Sprintf("network.New: last layer has %d neurons, declared output width is %d",
			prev, numOutputs))
	}
	return &Network{
		numInputs:  numInputs,
		numOutputs: numOutputs,
		layers:     layers,
	}
}

// Random creates a randomly initialized network.
//
// One layer is built per hidden Spec, plus a final output layer of
// numOutputs neurons using outputActivation. Each layer's weights are
// drawn uniformly from [0, 1/num_inputs) and its biases from
// [0, 1/num_neurons), num_inputs being the previous layer's width.
//
// Example:
//
//	net := network.Random(2, 1,
//	    []network.Spec{
//	        {Neurons: 3, Activation: activation.Sigmoid{}},
//	        {Neurons: 2, Activation: activation.Sigmoid{}},
//	    },
//	    activation.Sigmoid{})
func Random(numInputs, numOutputs int, hidden []Spec, outputActivation activation.Func) *Network {
	layers := make([]*Layer, 0, len(hidden)+1)
	prev := numInputs
	for _, spec := range hidden {
		layers = append(layers, randomLayer(spec.Neurons, prev, spec.Activation))
		prev = spec.Neurons
	}
	layers = append(layers, randomLayer(numOutputs, prev, outputActivation))
	return New(numInputs, numOutputs, layers)
}

// Forward evaluates the network on an input vector of the declared input
// width and returns the output vector of the declared output width.
//
// Each layer is evaluated in order, its activated output becoming the
// next layer's input. No intermediate values are retained.
func (n *Network) Forward(input []float64) []float64 {
	output := input
	for _, layer := range n.layers {
		output = layer.forward(output)
	}
	return output
}

// ForwardIntermediate is Forward retaining every layer's output.
//
// The result has len(layers)+1 vectors: the raw input prepended as the
// output of a virtual zeroth layer, followed by each layer's activated
// output in order. Backpropagation needs both each layer's output (for
// the derivative-on-output trick) and the previous layer's output (the
// term multiplied into each weight's gradient).
func (n *Network) ForwardIntermediate(input []float64) [][]float64 {
	outputs := make([][]float64, 0, len(n.layers)+1)
	outputs = append(outputs, input)
	for _, layer := range n.layers {
		outputs = append(outputs, layer.forward(outputs[len(outputs)-1]))
	}
	return outputs
}

// NumInputs returns the network's declared input width.
func (n *Network) NumInputs() int {
	return n.numInputs
}

// NumOutputs returns the network's declared output width.
func (n *Network) NumOutputs() int {
	return n.numOutputs
}

// Layers returns the network's layers in evaluation order.
func (n *Network) Layers() []*Layer {
	return n.layers
}

// Clone returns a deep copy of the network. Mutating the clone's
// parameters (e.g. by training it) never affects the original.
func (n *Network) Clone() *Network {
	layers := make([]*Layer, len(n.layers))
	for i, layer := range n.layers {
		layers[i] = layer.Clone()
	}
	return &Network{
		numInputs:  n.numInputs,
		numOutputs: n.numOutputs,
		layers:     layers,
	}
}
