// Copyright 2026 Perceptor ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package persist provides the public API for saving and loading
// Perceptor networks in the binary .ptor format and the JSON text form.
package persist

import (
	"github.com/perceptor-ml/perceptor/internal/network"
	"github.com/perceptor-ml/perceptor/internal/persist"
)

// Header is the JSON header in a .ptor file.
type Header = persist.Header

// LayerMeta describes one layer's parameters in the payload.
type LayerMeta = persist.LayerMeta

// FormatError describes a structural problem with an encoded network.
type FormatError = persist.FormatError

// Common errors.
var (
	ErrInvalidMagic       = persist.ErrInvalidMagic
	ErrUnsupportedVersion = persist.ErrUnsupportedVersion
	ErrHeaderTooLarge     = persist.ErrHeaderTooLarge
	ErrChecksumMismatch   = persist.ErrChecksumMismatch
	ErrTruncated          = persist.ErrTruncated
)

// Encode serializes a network into the binary .ptor container.
func Encode(n *network.Network) ([]byte, error) {
	return persist.Encode(n)
}

// Decode reconstructs a network from the binary .ptor container.
func Decode(data []byte) (*network.Network, error) {
	return persist.Decode(data)
}

// Save writes the binary encoding of a network to path.
func Save(n *network.Network, path string) error {
	return persist.Save(n, path)
}

// Load reads and decodes a binary .ptor file.
func Load(path string) (*network.Network, error) {
	return persist.Load(path)
}

// EncodeJSON serializes a network into the JSON text form.
func EncodeJSON(n *network.Network) ([]byte, error) {
	return persist.EncodeJSON(n)
}

// DecodeJSON reconstructs a network from the JSON text form.
func DecodeJSON(data []byte) (*network.Network, error) {
	return persist.DecodeJSON(data)
}

// SaveJSON writes the JSON text encoding of a network to path.
func SaveJSON(n *network.Network, path string) error {
	return persist.SaveJSON(n, path)
}

// LoadJSON reads and decodes a JSON text file.
func LoadJSON(path string) (*network.Network, error) {
	return persist.LoadJSON(path)
}
