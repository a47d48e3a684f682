// Copyright 2026 Perceptor ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides the public API for Perceptor's feedforward
// network engine.
package network

import (
	"github.com/perceptor-ml/perceptor/internal/activation"
	"github.com/perceptor-ml/perceptor/internal/network"
)

// Layer is one affine transform plus an activation function.
type Layer = network.Layer

// Spec describes one hidden layer for Random.
type Spec = network.Spec

// Network is an ordered sequence of layers with fixed input/output width.
type Network = network.Network

// PassResult reports the outcome of one backpropagation pass.
type PassResult = network.PassResult

// NewLayer creates a layer from explicit weights and biases.
func NewLayer(weights [][]float64, biases []float64, act activation.Func) *Layer {
	return network.NewLayer(weights, biases, act)
}

// NewZeroLayer creates a layer of the given dimensions with all weights
// and biases zero.
func NewZeroLayer(numNeurons, numInputs int, act activation.Func) *Layer {
	return network.NewZeroLayer(numNeurons, numInputs, act)
}

// New creates a network from an explicit layer list. It panics on
// construction-time contract violations; see the internal documentation.
func New(numInputs, numOutputs int, layers []*Layer) *Network {
	return network.New(numInputs, numOutputs, layers)
}

// Random creates a randomly initialized network.
//
// Example:
//
//	net := network.Random(2, 1,
//	    []network.Spec{{Neurons: 3, Activation: activation.Sigmoid{}}},
//	    activation.Sigmoid{})
func Random(numInputs, numOutputs int, hidden []Spec, outputActivation activation.Func) *Network {
	return network.Random(numInputs, numOutputs, hidden, outputActivation)
}
