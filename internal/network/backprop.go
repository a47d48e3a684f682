package network

// PassResult reports the outcome of one backpropagation pass.
//
// It is produced per training call and carries no references into the
// network; callers typically only read TotalError to monitor convergence.
type PassResult struct {
	// LayerGradients holds, per layer, the gradient of the loss with
	// respect to each neuron's activated output.
	LayerGradients [][]float64

	// TotalError is the squared-error loss of the pass, summed over all
	// output neurons: Σ (output - target)² / 2.
	TotalError float64
}

// Backpropagate performs one gradient-descent training step for a single
// (input, target) example, updating every layer's weights and biases in
// place.
//
// Update rule, per weight and bias:
//
//	weight -= learningRate * ∂loss/∂weight
//	bias   -= learningRate * ∂loss/∂bias
//
// with the loss Σ (output - target)² / 2 and gradients derived by the
// chain rule through each layer's activation.
//
// The pass runs in two phases. First, layers are processed last to first:
// each layer's weight and bias deltas are accumulated into a zero-shaped
// delta layer, and the error gradient is propagated to the previous layer
// through the current weights. Only then are all deltas applied. Applying
// a layer's delta before the upstream gradient has been computed through
// it would propagate error through already-updated weights and corrupt
// the pass, so the two phases must not be fused.
func (n *Network) Backpropagate(input, target []float64, learningRate float64) PassResult {
	outputs := n.ForwardIntermediate(input)

	// Seed the output layer's gradient with the derivative of the
	// squared-error loss, dloss/doutput = output - target.
	layerGradients := make([][]float64, len(n.layers))
	totalError := 0.0
	final := outputs[len(outputs)-1]
	outputGradient := make([]float64, len(final))
	for i, output := range final {
		errorGradient := output - target[i]
		outputGradient[i] = errorGradient
		totalError += errorGradient * errorGradient / 2.0
	}
	layerGradients[len(n.layers)-1] = outputGradient

	// Phase one: walk the layers in reverse, accumulating deltas and
	// seeding the previous layer's output gradient.
	deltas := make([]*Layer, len(n.layers))
	for i := len(n.layers) - 1; i >= 0; i-- {
		layer := n.layers[i]
		delta := NewZeroLayer(layer.Len(), layer.NumInputs(), layer.activation.Clone())

		if i > 0 {
			layerGradients[i-1] = make([]float64, layer.NumInputs())
		}

		for j := 0; j < layer.Len(); j++ {
			// Chain rule through the activation, evaluated on the
			// activated output.
			output := outputs[i+1][j]
			netInputGradient := layerGradients[i][j] * layer.activation.Derivative(output)

			for k, weight := range layer.weights[j] {
				weightGradient := netInputGradient * outputs[i][k]
				delta.weights[j][k] = learningRate * weightGradient
				if i > 0 {
					// Propagate through the pre-update weight.
					layerGradients[i-1][k] += weight * netInputGradient
				}
			}
			delta.biases[j] = learningRate * netInputGradient
		}
		deltas[i] = delta
	}

	// Phase two: apply every recorded delta.
	for i, layer := range n.layers {
		delta := deltas[i]
		for j := range layer.weights {
			for k := range layer.weights[j] {
				layer.weights[j][k] -= delta.weights[j][k]
			}
			layer.biases[j] -= delta.biases[j]
		}
	}

	return PassResult{
		LayerGradients: layerGradients,
		TotalError:     totalError,
	}
}
