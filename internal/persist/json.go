package persist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/perceptor-ml/perceptor/internal/activation"
	"github.com/perceptor-ml/perceptor/internal/network"
)

// layerJSON is the text form of one layer.
type layerJSON struct {
	Weights    [][]float64     `json:"weights"`
	Biases     []float64       `json:"biases"`
	Activation activation.Info `json:"activation"`
}

// networkJSON is the text form of a network. Input and output widths
// derive from the layer shapes on decode.
type networkJSON struct {
	Layers []layerJSON `json:"layers"`
}

// EncodeJSON serializes a network into the JSON text form.
//
// Go's JSON encoder emits the shortest decimal representation that parses
// back to the same float64, so the text form round-trips weights and
// biases bit-exactly for finite values.
func EncodeJSON(n *network.Network) ([]byte, error) {
	layers := n.Layers()
	if len(layers) == 0 {
		return nil, &FormatError{Layer: -1, Field: "layers", Details: "network has no layers"}
	}
	out := networkJSON{Layers: make([]layerJSON, 0, len(layers))}
	for _, layer := range layers {
		out.Layers = append(out.Layers, layerJSON{
			Weights:    layer.Weights(),
			Biases:     layer.Biases(),
			Activation: layer.Activation().Info(),
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal network: %w", err)
	}
	return data, nil
}

// DecodeJSON reconstructs a network from the JSON text form.
//
// Unlike the binary path, the text form carries explicit nested arrays,
// so decoding validates every structural invariant: non-empty layer list,
// uniform weight rows, weight/bias length agreement, a chained width
// sequence, and known activation tags.
func DecodeJSON(data []byte) (*network.Network, error) {
	var decoded networkJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse network: %w", err)
	}
	if len(decoded.Layers) == 0 {
		return nil, &FormatError{Layer: -1, Field: "layers", Details: "network has no layers"}
	}

	layers := make([]*network.Layer, 0, len(decoded.Layers))
	prev := -1
	for i, layer := range decoded.Layers {
		if len(layer.Weights) == 0 || len(layer.Weights) != len(layer.Biases) {
			return nil, &FormatError{Layer: i, Field: "biases",
				Details: fmt.Sprintf("%d weight rows but %d biases", len(layer.Weights), len(layer.Biases))}
		}
		inputs := len(layer.Weights[0])
		if inputs == 0 {
			return nil, &FormatError{Layer: i, Field: "weights", Details: "empty weight row"}
		}
		for j, row := range layer.Weights {
			if len(row) != inputs {
				return nil, &FormatError{Layer: i, Field: "weights",
					Details: fmt.Sprintf("row %d has %d values, want %d", j, len(row), inputs)}
			}
		}
		if prev >= 0 && inputs != prev {
			return nil, &FormatError{Layer: i, Field: "weights",
				Details: fmt.Sprintf("expects %d inputs, previous layer has %d neurons", inputs, prev)}
		}

		act, err := layer.Activation.Func()
		if err != nil {
			return nil, &FormatError{Layer: i, Field: "activation", Details: err.Error()}
		}

		layers = append(layers, network.NewLayer(layer.Weights, layer.Biases, act))
		prev = len(layer.Weights)
	}

	return network.New(len(decoded.Layers[0].Weights[0]), prev, layers), nil
}

// SaveJSON writes the JSON text encoding of a network to path.
func SaveJSON(n *network.Network, path string) error {
	data, err := EncodeJSON(n)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// LoadJSON reads and decodes a JSON text file.
func LoadJSON(path string) (*network.Network, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return DecodeJSON(data)
}
