package persist

import (
	"time"

	"github.com/perceptor-ml/perceptor/internal/activation"
)

// Format constants.
const (
	MagicBytes    = "PTOR"
	FormatVersion = 1       // v1: JSON header + float64 payload with SHA-256 checksum
	MaxHeaderSize = 1 << 20 // Refuse absurd header sizes before allocating
	floatSize     = 8       // Payload floats are 64-bit

	// fixedPrefixSize is the byte length of the fixed-size prefix before
	// the JSON header: magic + version + flags + header size.
	fixedPrefixSize = 4 + 4 + 4 + 8
)

// No flags are defined in format version 1; the field is written as zero
// and ignored on read.

// Header is the JSON header in a .ptor file.
type Header struct {
	FormatVersion int         `json:"format_version"` // Version of the .ptor format
	CreatedAt     time.Time   `json:"created_at"`     // When the file was created
	Checksum      string      `json:"checksum"`       // Hex SHA-256 of the payload
	Layers        []LayerMeta `json:"layers"`         // Per-layer metadata, in evaluation order
}

// LayerMeta describes one layer's parameters in the payload.
type LayerMeta struct {
	Neurons    int             `json:"neurons"`    // Number of neurons (weight rows / biases)
	Inputs     int             `json:"inputs"`     // Number of inputs per neuron (weight columns)
	Activation activation.Info `json:"activation"` // Tagged activation description
	Offset     int64           `json:"offset"`     // Offset in the payload (bytes)
	Size       int64           `json:"size"`       // Size in bytes: (neurons*inputs + neurons) * 8
}

// layerPayloadSize returns the byte size of one layer's payload section.
func layerPayloadSize(neurons, inputs int) int64 {
	return int64(neurons*inputs+neurons) * floatSize
}
