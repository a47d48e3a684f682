// Package persist provides the native .ptor format for saving and loading
// Perceptor networks, plus an equivalent JSON text form.
//
// The .ptor format is a simple binary container:
//
//	Format Structure:
//	  [4 bytes: Magic "PTOR"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata]
//	  [Payload: float64 bit patterns, little-endian]
//
// The header describes each layer (neuron count, input count, tagged
// activation, payload offset/size) and carries a SHA-256 checksum of the
// payload. The payload holds, per layer, the weight matrix row-major
// followed by the bias vector. Both the binary and the JSON form
// round-trip weights and biases bit-exactly.
//
// Example usage:
//
//	// Save a network
//	if err := persist.Save(net, "xor.ptor"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load it back
//	net, err := persist.Load("xor.ptor")
//	if err != nil {
//	    log.Fatal(err)
//	}
package persist
