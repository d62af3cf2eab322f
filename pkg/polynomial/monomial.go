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
package polynomial

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/consensys/go-poisson/pkg/rational"
	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/util/collection/hash"
)

// Monomial is a product of symbols raised to rational powers, interpreted
// against a given symbol set with one exponent per symbol.
type Monomial struct {
	exponents []rational.Rational
}

// NewMonomial constructs a monomial from a given set of exponents, which are
// copied.
func NewMonomial(exponents ...rational.Rational) Monomial {
	return Monomial{slices.Clone(exponents)}
}

// Exponent returns the exponent at a given position.
func (p Monomial) Exponent(index uint) rational.Rational {
	return p.exponents[index]
}

// Equals implementation for the hash.Hasher interface.
func (p Monomial) Equals(other Monomial) bool {
	return slices.EqualFunc(p.exponents, other.exponents, rational.Rational.Equal)
}

// Hash implementation for the hash.Hasher interface.
func (p Monomial) Hash() uint64 {
	words := make([]uint64, len(p.exponents))
	//
	for i, e := range p.exponents {
		words[i] = e.Hash()
	}
	//
	return hash.Combine(words...)
}

// Cmp orders monomials lexicographically by exponent.
func (p Monomial) Cmp(other Monomial) int {
	return slices.CompareFunc(p.exponents, other.exponents, rational.Rational.Cmp)
}

// Unit returns the monomial whose exponents are all zero.
func (p Monomial) Unit(symbols symbol.Set) Monomial {
	return Monomial{make([]rational.Rational, symbols.Len())}
}

// IsUnit checks whether all exponents are zero.
func (p Monomial) IsUnit() bool {
	for _, e := range p.exponents {
		if !e.IsZero() {
			return false
		}
	}
	//
	return true
}

// Extend maps this monomial from one symbol set into a superset, such that
// symbols not in the original set have a zero exponent.
func (p Monomial) Extend(from symbol.Set, to symbol.Set) Monomial {
	exponents := make([]rational.Rational, to.Len())
	//
	for i := range from.Len() {
		j, ok := to.Index(from.Nth(i).Name())
		//
		if !ok {
			panic(fmt.Sprintf("symbol %s missing from %s", from.Nth(i).Name(), to.String()))
		}
		//
		exponents[j] = p.exponents[i]
	}
	//
	return Monomial{exponents}
}

// Multiply two monomials by adding their exponents.
func (p Monomial) Multiply(other Monomial) []series.Product[Monomial] {
	exponents := make([]rational.Rational, len(p.exponents))
	//
	for i := range exponents {
		exponents[i] = p.exponents[i].Add(other.exponents[i])
	}
	//
	return []series.Product[Monomial]{{Key: Monomial{exponents}, Factor: big.NewRat(1, 1)}}
}

// Canonical implementation for the series.Key interface.  Monomials are always
// canonical.
func (p Monomial) Canonical() (Monomial, series.Sign) {
	return p, series.Positive
}

// Degree returns the sum of all exponents.
func (p Monomial) Degree() rational.Rational {
	return p.PartialDegree(nil)
}

// PartialDegree returns the sum of those exponents selected by a given mask,
// or of all exponents if the mask is nil.
func (p Monomial) PartialDegree(mask []bool) rational.Rational {
	var degree rational.Rational
	//
	for i, e := range p.exponents {
		if mask == nil || mask[i] {
			degree = degree.Add(e)
		}
	}
	//
	return degree
}

// Format this monomial using the names of a given symbol set, e.g. "x^2*y".
func (p Monomial) Format(symbols symbol.Set) string {
	var parts []string
	//
	for i, e := range p.exponents {
		name := symbols.Nth(uint(i)).Name()
		//
		switch {
		case e.IsZero():
			continue
		case e.IsOne():
			parts = append(parts, name)
		case e.IsInteger():
			parts = append(parts, fmt.Sprintf("%s^%s", name, e.String()))
		default:
			parts = append(parts, fmt.Sprintf("%s^(%s)", name, e.String()))
		}
	}
	//
	if len(parts) == 0 {
		return "1"
	}
	//
	return strings.Join(parts, "*")
}

func (p Monomial) String() string {
	return fmt.Sprint(p.exponents)
}

// Set the exponent at a given position, returning a new monomial.
func (p Monomial) with(index uint, exponent rational.Rational) Monomial {
	exponents := slices.Clone(p.exponents)
	exponents[index] = exponent
	//
	return Monomial{exponents}
}

// Drop the exponent at a given position, returning a new monomial.
func (p Monomial) without(index uint) Monomial {
	exponents := slices.Clone(p.exponents)
	//
	return Monomial{slices.Delete(exponents, int(index), int(index)+1)}
}

// Determine whether this monomial is a single symbol, and if so its position.
func (p Monomial) linear() (uint, bool) {
	var (
		index uint
		found bool
	)
	//
	for i, e := range p.exponents {
		switch {
		case e.IsZero():
			continue
		case !e.IsOne() || found:
			return 0, false
		}
		//
		index, found = uint(i), true
	}
	//
	return index, found
}
