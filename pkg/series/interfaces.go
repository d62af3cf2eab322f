// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package series

import (
	"math/big"

	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/util/collection/hash"
)

// Coefficient captures the arithmetic required of the coefficients of a series.
// Implementations are immutable values, and their zero value must be usable
// (and represent the additive identity).
type Coefficient[C any] interface {
	// Add returns the sum of this coefficient and another.
	Add(C) C
	// Sub returns the difference of this coefficient and another.
	Sub(C) C
	// Mul returns the product of this coefficient and another.
	Mul(C) C
	// Neg returns the negation of this coefficient.
	Neg() C
	// Scale returns this coefficient multiplied by a rational factor.
	Scale(*big.Rat) C
	// IsZero checks whether this coefficient is the additive identity.
	IsZero() bool
	// Equal checks whether this coefficient equals another.
	Equal(C) bool
	// One returns the multiplicative identity, irrespective of the receiver.
	One() C
	// String returns a human-readable representation of this coefficient.
	String() string
}

// Transcendental is implemented by coefficients which can evaluate sine and
// cosine of themselves, where such a value exists.
type Transcendental[C any] interface {
	Sin() (C, error)
	Cos() (C, error)
}

// Sign describes how the coefficient of a term must be adjusted when its key is
// brought into canonical form.
type Sign int8

const (
	// Vanish indicates the term is identically zero and must be dropped.
	Vanish Sign = 0
	// Positive indicates the coefficient is unchanged.
	Positive Sign = 1
	// Negative indicates the coefficient must be negated.
	Negative Sign = -1
)

// Product is one component of the product of two keys.  The coefficient of the
// resulting term is the product of the original coefficients, scaled by the
// given factor.
type Product[K any] struct {
	Key    K
	Factor *big.Rat
}

// Key captures the operations required of the keys of a series.  A key is
// only meaningful relative to a symbol set (e.g. the ith exponent of a
// monomial refers to the ith symbol).  Keys are immutable values.
type Key[K any] interface {
	hash.Hasher[K]
	// Cmp provides a total order over keys of the same arity, used for
	// deterministic enumeration of terms.
	Cmp(K) int
	// Unit returns the identity key for a given symbol set, irrespective of
	// the receiver.
	Unit(symbol.Set) K
	// IsUnit checks whether this key is the identity.
	IsUnit() bool
	// Extend maps this key from one symbol set into a superset.
	Extend(from symbol.Set, to symbol.Set) K
	// Multiply this key with another (over the same symbol set).
	Multiply(other K) []Product[K]
	// Canonical returns the canonical form of this key, along with the
	// adjustment required for the coefficient.
	Canonical() (K, Sign)
	// Format returns a human-readable representation of this key.
	Format(symbol.Set) string
}

// Term represents a single (coefficient, key) pair within a series.
type Term[C any, K any] struct {
	Coefficient C
	Key         K
}

// NewTerm constructs a new term.
func NewTerm[C any, K any](coefficient C, key K) Term[C, K] {
	return Term[C, K]{coefficient, key}
}
