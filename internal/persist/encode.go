package persist

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/perceptor-ml/perceptor/internal/network"
)

// Encode serializes a network into the binary .ptor container.
//
// The payload stores each layer's weight matrix row-major followed by its
// bias vector, as little-endian float64 bit patterns, so Decode restores
// every value bit-exactly.
func Encode(n *network.Network) ([]byte, error) {
	layers := n.Layers()
	if len(layers) == 0 {
		return nil, &FormatError{Layer: -1, Field: "layers", Details: "network has no layers"}
	}

	// Payload and per-layer metadata.
	var payloadSize int64
	metas := make([]LayerMeta, 0, len(layers))
	for _, layer := range layers {
		size := layerPayloadSize(layer.Len(), layer.NumInputs())
		metas = append(metas, LayerMeta{
			Neurons:    layer.Len(),
			Inputs:     layer.NumInputs(),
			Activation: layer.Activation().Info(),
			Offset:     payloadSize,
			Size:       size,
		})
		payloadSize += size
	}

	payload := make([]byte, 0, payloadSize)
	var scratch [floatSize]byte
	appendFloat := func(v float64) {
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
		payload = append(payload, scratch[:]...)
	}
	for _, layer := range layers {
		for _, row := range layer.Weights() {
			for _, w := range row {
				appendFloat(w)
			}
		}
		for _, b := range layer.Biases() {
			appendFloat(b)
		}
	}

	checksum := ComputeChecksum(payload)
	header := Header{
		FormatVersion: FormatVersion,
		CreatedAt:     time.Now().UTC(),
		Checksum:      hex.EncodeToString(checksum[:]),
		Layers:        metas,
	}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal header: %w", err)
	}

	buf := make([]byte, 0, fixedPrefixSize+len(headerJSON)+len(payload))
	buf = append(buf, MagicBytes...)
	buf = binary.LittleEndian.AppendUint32(buf, FormatVersion)
	buf = binary.LittleEndian.AppendUint32(buf, 0) // flags: none defined in v1
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(headerJSON)))
	buf = append(buf, headerJSON...)
	buf = append(buf, payload...)
	return buf, nil
}

// Save writes the binary encoding of a network to path.
func Save(n *network.Network, path string) error {
	data, err := Encode(n)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
