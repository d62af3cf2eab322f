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
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/util/collection/hash"
)

// Series is a sparse sum of terms over an ordered set of symbols.  A series is
// always reduced: no two terms have equal keys, no term has a zero coefficient
// and every key is in canonical form.  All arithmetic returns fresh series,
// and only Insert mutates its receiver.  A nil series is treated as empty.
type Series[C Coefficient[C], K Key[K]] struct {
	// Symbols against which keys are interpreted.
	symbols symbol.Set
	// Terms indexed by their keys.
	terms *hash.Map[K, C]
}

// New constructs an empty series over a given set of symbols.
func New[C Coefficient[C], K Key[K]](symbols symbol.Set) *Series[C, K] {
	return &Series[C, K]{symbols, hash.NewMap[K, C](0)}
}

// FromCoefficient constructs a series consisting of a single coefficient (i.e.
// with the unit key) over the empty symbol set.  A zero coefficient gives the
// empty series.
func FromCoefficient[C Coefficient[C], K Key[K]](coefficient C) *Series[C, K] {
	var (
		key    K
		empty  symbol.Set
		series = New[C, K](empty)
	)
	//
	series.Insert(coefficient, key.Unit(empty))
	//
	return series
}

// FromTerms constructs a series over a given symbol set from zero or more
// terms, whose keys must be compatible with the symbol set.
func FromTerms[C Coefficient[C], K Key[K]](symbols symbol.Set, terms ...Term[C, K]) *Series[C, K] {
	series := New[C, K](symbols)
	//
	for _, t := range terms {
		series.Insert(t.Coefficient, t.Key)
	}
	//
	return series
}

// Symbols returns the symbol set of this series.
func (p *Series[C, K]) Symbols() symbol.Set {
	if p == nil {
		return symbol.Set{}
	}
	//
	return p.symbols
}

// Len returns the number of terms in this series.
func (p *Series[C, K]) Len() uint {
	if p == nil {
		return 0
	}
	//
	return p.terms.Size()
}

// IsEmpty checks whether this series has no terms (i.e. is zero).
func (p *Series[C, K]) IsEmpty() bool {
	return p.Len() == 0
}

// IsSingleCoefficient checks whether this series is a bare coefficient.  That
// is, it is either empty or consists of exactly one term with the unit key.
func (p *Series[C, K]) IsSingleCoefficient() bool {
	switch p.Len() {
	case 0:
		return true
	case 1:
		for k := range p.terms.All() {
			return k.IsUnit()
		}
	}
	//
	return false
}

// Coefficient returns the coefficient of a single-coefficient series.  This
// panics if the series is not a single coefficient.
func (p *Series[C, K]) Coefficient() C {
	var zero C
	//
	if !p.IsSingleCoefficient() {
		panic(fmt.Sprintf("series %s is not a single coefficient", p.String()))
	}
	//
	for _, c := range p.all() {
		return c
	}
	//
	return zero
}

// Terms returns the terms of this series, ordered by key.
func (p *Series[C, K]) Terms() []Term[C, K] {
	var terms []Term[C, K]
	//
	if p == nil {
		return terms
	}
	//
	terms = make([]Term[C, K], 0, p.terms.Size())
	//
	for k, c := range p.terms.All() {
		terms = append(terms, Term[C, K]{c, k})
	}
	//
	slices.SortFunc(terms, func(l, r Term[C, K]) int {
		return l.Key.Cmp(r.Key)
	})
	//
	return terms
}

// Insert a term into this series.  The key is first brought into canonical
// form, and the term is then merged with any existing term of equal key
// (removing it if the coefficients cancel).  The key must be compatible with
// the symbol set of this series.
func (p *Series[C, K]) Insert(coefficient C, key K) {
	if coefficient.IsZero() {
		return
	}
	//
	key, sign := key.Canonical()
	//
	switch sign {
	case Vanish:
		return
	case Negative:
		coefficient = coefficient.Neg()
	}
	//
	p.terms.Update(key, func(existing C, ok bool) (C, bool) {
		if !ok {
			return coefficient, true
		}
		//
		sum := existing.Add(coefficient)
		//
		return sum, !sum.IsZero()
	})
}

// Clone returns a copy of this series.
func (p *Series[C, K]) Clone() *Series[C, K] {
	if p == nil {
		return New[C, K](symbol.Set{})
	}
	//
	return &Series[C, K]{p.symbols, p.terms.Clone()}
}

// Extend returns a copy of this series defined over a superset of its current
// symbols.
func (p *Series[C, K]) Extend(symbols symbol.Set) *Series[C, K] {
	if p.Symbols().Equals(symbols) {
		return p.Clone()
	}
	//
	res := New[C, K](symbols)
	//
	for k, c := range p.all() {
		res.Insert(c, k.Extend(p.symbols, symbols))
	}
	//
	return res
}

// Add returns the sum of this series and another.
func (p *Series[C, K]) Add(other *Series[C, K]) *Series[C, K] {
	symbols := p.Symbols().Union(other.Symbols())
	res := p.Extend(symbols)
	//
	for k, c := range other.all() {
		res.Insert(c, k.Extend(other.symbols, symbols))
	}
	//
	return res
}

// Sub returns the difference of this series and another.
func (p *Series[C, K]) Sub(other *Series[C, K]) *Series[C, K] {
	return p.Add(other.Neg())
}

// Mul returns the product of this series and another.
func (p *Series[C, K]) Mul(other *Series[C, K]) *Series[C, K] {
	var (
		symbols = p.Symbols().Union(other.Symbols())
		left    = p.Extend(symbols)
		right   = other.Extend(symbols)
		res     = New[C, K](symbols)
	)
	//
	for lk, lc := range left.all() {
		for rk, rc := range right.all() {
			c := lc.Mul(rc)
			//
			for _, prod := range lk.Multiply(rk) {
				res.Insert(scale(c, prod.Factor), prod.Key)
			}
		}
	}
	//
	return res
}

// Neg returns the negation of this series.
func (p *Series[C, K]) Neg() *Series[C, K] {
	res := New[C, K](p.Symbols())
	//
	for k, c := range p.all() {
		res.Insert(c.Neg(), k)
	}
	//
	return res
}

// Scale returns this series with every coefficient multiplied by a rational
// factor.
func (p *Series[C, K]) Scale(factor *big.Rat) *Series[C, K] {
	res := New[C, K](p.Symbols())
	//
	for k, c := range p.all() {
		res.Insert(c.Scale(factor), k)
	}
	//
	return res
}

// MulCoefficient returns this series with every coefficient multiplied by a
// given coefficient.
func (p *Series[C, K]) MulCoefficient(coefficient C) *Series[C, K] {
	res := New[C, K](p.Symbols())
	//
	for k, c := range p.all() {
		res.Insert(coefficient.Mul(c), k)
	}
	//
	return res
}

// Equal checks whether two series are equal, after aligning their symbol sets.
func (p *Series[C, K]) Equal(other *Series[C, K]) bool {
	if p.Len() != other.Len() {
		return false
	}
	//
	symbols := p.Symbols().Union(other.Symbols())
	left := p.Extend(symbols)
	right := other.Extend(symbols)
	//
	for k, c := range left.all() {
		if d, ok := right.terms.Get(k); !ok || !c.Equal(d) {
			return false
		}
	}
	//
	return true
}

func (p *Series[C, K]) String() string {
	var buf strings.Builder
	//
	if p.IsEmpty() {
		return "0"
	}
	//
	for i, t := range p.Terms() {
		var (
			cf = t.Coefficient.String()
			ks = t.Key.Format(p.symbols)
			ts string
		)
		// Various cases to improve readability
		switch {
		case t.Key.IsUnit():
			ts = cf
		case t.Coefficient.Equal(t.Coefficient.One()):
			ts = ks
		case t.Coefficient.Equal(t.Coefficient.One().Neg()):
			ts = "-" + ks
		default:
			ts = parenthesise(cf) + "*" + ks
		}
		//
		if i != 0 && !strings.HasPrefix(ts, "-") {
			buf.WriteString("+")
		}
		//
		buf.WriteString(ts)
	}
	//
	return buf.String()
}

// all iterates the terms of this series in an unspecified order.
func (p *Series[C, K]) all() func(func(K, C) bool) {
	if p == nil {
		return func(func(K, C) bool) {}
	}
	//
	return p.terms.All()
}

func scale[C Coefficient[C]](c C, factor *big.Rat) C {
	if factor == nil || (factor.IsInt() && factor.Num().IsInt64() && factor.Num().Int64() == 1) {
		return c
	}
	//
	return c.Scale(factor)
}

// Wrap a coefficient string in brackets if it is a compound expression.
func parenthesise(s string) string {
	if len(s) > 1 && strings.ContainsAny(s[1:], "+-") {
		return "(" + s + ")"
	}
	//
	return s
}
