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
package poisson

import (
	"math/big"

	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/trig"
)

// Term is a single term of a Poisson series.
type Term[C any] = series.Term[C, trig.Key]

// Series is a Poisson series, that is a sum of terms c*cos(a) or c*sin(a)
// where a is an integral linear combination of symbols.  The capabilities of
// its coefficients are determined by the given traits.  Series are immutable,
// and the zero value is the empty series.
type Series[C Coefficient[C], T Traits[C]] struct {
	terms *series.Series[C, trig.Key]
}

// New constructs an empty Poisson series over a given set of symbols.
func New[C Coefficient[C], T Traits[C]](symbols symbol.Set) Series[C, T] {
	return Series[C, T]{series.New[C, trig.Key](symbols)}
}

// FromCoefficient constructs the Poisson series c*cos(0) with no symbols.
func FromCoefficient[C Coefficient[C], T Traits[C]](c C) Series[C, T] {
	return Series[C, T]{series.FromCoefficient[C, trig.Key](c)}
}

// FromTerms constructs a Poisson series over a given set of symbols from a
// given set of terms.
func FromTerms[C Coefficient[C], T Traits[C]](symbols symbol.Set, terms ...Term[C]) Series[C, T] {
	return Series[C, T]{series.FromTerms(symbols, terms...)}
}

// Of views a given series as a Poisson series.  The series is not copied.
func Of[T Traits[C], C Coefficient[C]](base *series.Series[C, trig.Key]) Series[C, T] {
	return Series[C, T]{base}
}

// Base returns the underlying series.
func (p Series[C, T]) Base() *series.Series[C, trig.Key] {
	return p.terms
}

// Symbols returns the symbols of this series.
func (p Series[C, T]) Symbols() symbol.Set {
	return p.terms.Symbols()
}

// Terms returns the terms of this series in a deterministic order.
func (p Series[C, T]) Terms() []Term[C] {
	return p.terms.Terms()
}

// Len returns the number of terms in this series.
func (p Series[C, T]) Len() uint {
	return p.terms.Len()
}

// IsEmpty checks whether this series has no terms.
func (p Series[C, T]) IsEmpty() bool {
	return p.terms.IsEmpty()
}

// Add returns p + q.
func (p Series[C, T]) Add(q Series[C, T]) Series[C, T] {
	return Series[C, T]{p.terms.Add(q.terms)}
}

// Sub returns p - q.
func (p Series[C, T]) Sub(q Series[C, T]) Series[C, T] {
	return Series[C, T]{p.terms.Sub(q.terms)}
}

// Mul returns p * q.
func (p Series[C, T]) Mul(q Series[C, T]) Series[C, T] {
	return Series[C, T]{p.terms.Mul(q.terms)}
}

// Neg returns -p.
func (p Series[C, T]) Neg() Series[C, T] {
	return Series[C, T]{p.terms.Neg()}
}

// Scale returns p multiplied by a rational factor.
func (p Series[C, T]) Scale(factor *big.Rat) Series[C, T] {
	return Series[C, T]{p.terms.Scale(factor)}
}

// Equal checks whether p == q, irrespective of their symbol sets.
func (p Series[C, T]) Equal(q Series[C, T]) bool {
	return p.terms.Equal(q.terms)
}

func (p Series[C, T]) String() string {
	return p.terms.String()
}
