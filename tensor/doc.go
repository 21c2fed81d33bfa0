// Copyright 2026 The dmsim Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a dense, arbitrary-rank complex tensor with the
// two primitives the density-matrix simulator is built on: generalized
// contraction (Tensordot) and axis relocation (Moveaxis).
//
// # Overview
//
// A Tensor is a flat []complex128 buffer addressed by a multi-index under
// row-major (last axis varies fastest) mixed-radix encoding. The package has
// no notion of qubits; it is a pure reshaping and contraction device.
//
// # Basic Usage
//
//	a := tensor.New(tensor.Shape{2, 2})
//	a.Set(1, 0, 1)
//	b, err := tensor.FromSlice([]complex128{1, 0, 0, 1}, tensor.Shape{2, 2})
//	c := a.Tensordot(b, []int{1}, []int{0}) // matrix product
//	d := c.Moveaxis([]int{0}, []int{1})     // transpose
//
// # Axis ordering
//
// Tensordot places the non-contracted axes of the receiver first, in their
// original relative order, followed by the non-contracted axes of the
// argument, in their original relative order. Callers that restore axis
// order afterwards (as the evolution algorithm does) depend on this rule.
//
// # Error model
//
// Malformed external data (a flat slice whose length does not match the
// requested shape) is reported as an error. Axis and bounds violations are
// programming errors and panic.
package tensor
