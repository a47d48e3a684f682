// Copyright 2026 Perceptor ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the public API for Perceptor's scalar
// activation functions.
package activation

import (
	"io"

	"github.com/perceptor-ml/perceptor/internal/activation"
)

// Func is the interface implemented by all activation functions.
type Func = activation.Func

// Info is the tagged, serializable description of an activation function.
type Info = activation.Info

// Kind tags an activation variant in its serialized form.
type Kind = activation.Kind

// Recognized activation kinds.
const (
	KindIdentity   = activation.KindIdentity
	KindSigmoid    = activation.KindSigmoid
	KindDebugPrint = activation.KindDebugPrint
)

// Identity is the identity activation: f(x) = x.
type Identity = activation.Identity

// Sigmoid is the logistic activation: σ(x) = 1 / (1 + exp(-x)).
type Sigmoid = activation.Sigmoid

// DebugPrint wraps another activation function and logs every call.
type DebugPrint = activation.DebugPrint

// NewDebugPrint wraps an activation, logging every call to os.Stdout
// under the given label.
func NewDebugPrint(output string, wrapped Func) *DebugPrint {
	return activation.NewDebugPrint(output, wrapped)
}

// NewDebugPrintTo is NewDebugPrint with an explicit log destination.
func NewDebugPrintTo(w io.Writer, output string, wrapped Func) *DebugPrint {
	return activation.NewDebugPrintTo(w, output, wrapped)
}
