package persist

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/perceptor-ml/perceptor/internal/network"
)

// Decode reconstructs a network from the binary .ptor container.
//
// The payload checksum is always validated. A malformed stream never
// yields a partially-built network: decoding fails with ErrInvalidMagic,
// ErrUnsupportedVersion, ErrHeaderTooLarge, ErrTruncated,
// ErrChecksumMismatch, or a FormatError for structural violations.
func Decode(data []byte) (*network.Network, error) {
	if len(data) < fixedPrefixSize {
		return nil, ErrTruncated
	}
	if string(data[:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	_ = binary.LittleEndian.Uint32(data[8:12]) // flags: none defined in v1
	headerSize := binary.LittleEndian.Uint64(data[12:fixedPrefixSize])
	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}
	if uint64(len(data)-fixedPrefixSize) < headerSize {
		return nil, ErrTruncated
	}

	var header Header
	if err := json.Unmarshal(data[fixedPrefixSize:fixedPrefixSize+int(headerSize)], &header); err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	payload := data[fixedPrefixSize+int(headerSize):]
	stored, err := hex.DecodeString(header.Checksum)
	if err != nil || len(stored) != 32 {
		return nil, &FormatError{Layer: -1, Field: "checksum", Details: "malformed checksum"}
	}
	var want [32]byte
	copy(want[:], stored)
	if err := ValidateChecksum(ComputeChecksum(payload), want); err != nil {
		return nil, err
	}

	return networkFromHeader(header, payload)
}

// networkFromHeader rebuilds the layer stack described by a validated
// header from the raw payload.
func networkFromHeader(header Header, payload []byte) (*network.Network, error) {
	if len(header.Layers) == 0 {
		return nil, &FormatError{Layer: -1, Field: "layers", Details: "network has no layers"}
	}

	layers := make([]*network.Layer, 0, len(header.Layers))
	prev := header.Layers[0].Inputs
	for i, meta := range header.Layers {
		if meta.Neurons <= 0 || meta.Inputs <= 0 {
			return nil, &FormatError{Layer: i, Field: "shape",
				Details: fmt.Sprintf("invalid dimensions %dx%d", meta.Neurons, meta.Inputs)}
		}
		if meta.Inputs != prev {
			return nil, &FormatError{Layer: i, Field: "inputs",
				Details: fmt.Sprintf("expects %d inputs, previous layer has %d neurons", meta.Inputs, prev)}
		}
		if meta.Size != layerPayloadSize(meta.Neurons, meta.Inputs) {
			return nil, &FormatError{Layer: i, Field: "size",
				Details: fmt.Sprintf("payload size %d does not match dimensions %dx%d", meta.Size, meta.Neurons, meta.Inputs)}
		}
		if meta.Offset < 0 || meta.Offset+meta.Size > int64(len(payload)) {
			return nil, &FormatError{Layer: i, Field: "offset",
				Details: "layer extends beyond the payload"}
		}

		act, err := meta.Activation.Func()
		if err != nil {
			return nil, &FormatError{Layer: i, Field: "activation", Details: err.Error()}
		}

		section := payload[meta.Offset : meta.Offset+meta.Size]
		readFloat := func(idx int) float64 {
			return math.Float64frombits(binary.LittleEndian.Uint64(section[idx*floatSize:]))
		}
		weights := make([][]float64, meta.Neurons)
		for j := range weights {
			row := make([]float64, meta.Inputs)
			for k := range row {
				row[k] = readFloat(j*meta.Inputs + k)
			}
			weights[j] = row
		}
		biases := make([]float64, meta.Neurons)
		for j := range biases {
			biases[j] = readFloat(meta.Neurons*meta.Inputs + j)
		}

		layers = append(layers, network.NewLayer(weights, biases, act))
		prev = meta.Neurons
	}

	// Widths derive from the validated layer shapes.
	return network.New(header.Layers[0].Inputs, prev, layers), nil
}

// Load reads and decodes a binary .ptor file.
func Load(path string) (*network.Network, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(data)
}
