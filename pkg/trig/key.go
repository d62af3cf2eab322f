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
package trig

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/util/collection/hash"
	"github.com/consensys/go-poisson/pkg/util/math"
)

// Key represents the trigonometric part of a Poisson term, namely cos(a) or
// sin(a) where the argument a is a linear combination n1*x1 + ... + nk*xk of
// the symbols in scope.  The multipliers are interpreted against a given symbol
// set, with one multiplier per symbol.
type Key struct {
	// Integer multipliers, one for each symbol in scope.
	multipliers []int64
	// Flavour of this key: true for cosine, false for sine.
	cosine bool
}

// NewKey constructs a key of a given flavour from a given set of multipliers.
// The multipliers are copied.
func NewKey(cosine bool, multipliers ...int64) Key {
	return Key{slices.Clone(multipliers), cosine}
}

// Cosine constructs a cosine key from a given set of multipliers.
func Cosine(multipliers ...int64) Key {
	return NewKey(true, multipliers...)
}

// Sine constructs a sine key from a given set of multipliers.
func Sine(multipliers ...int64) Key {
	return NewKey(false, multipliers...)
}

// Multipliers returns a copy of the multipliers of this key.
func (p Key) Multipliers() []int64 {
	return slices.Clone(p.multipliers)
}

// Multiplier returns the multiplier at a given position.
func (p Key) Multiplier(index uint) int64 {
	return p.multipliers[index]
}

// Flavour returns true for a cosine key, and false for a sine key.
func (p Key) Flavour() bool {
	return p.cosine
}

// SetFlavour returns a copy of this key with the given flavour.
func (p Key) SetFlavour(cosine bool) Key {
	return Key{p.multipliers, cosine}
}

// Equals implementation for the hash.Hasher interface.
func (p Key) Equals(other Key) bool {
	return p.cosine == other.cosine && slices.Equal(p.multipliers, other.multipliers)
}

// Hash implementation for the hash.Hasher interface.
func (p Key) Hash() uint64 {
	words := make([]uint64, len(p.multipliers)+1)
	//
	for i, n := range p.multipliers {
		words[i] = uint64(n)
	}
	//
	if p.cosine {
		words[len(p.multipliers)] = 1
	}
	//
	return hash.Combine(words...)
}

// Cmp orders keys first by their multipliers, and then by flavour (with cosine
// before sine).
func (p Key) Cmp(other Key) int {
	if c := slices.Compare(p.multipliers, other.multipliers); c != 0 {
		return c
	} else if p.cosine == other.cosine {
		return 0
	} else if p.cosine {
		return -1
	}
	//
	return 1
}

// Unit returns cos(0) over a given symbol set.
func (p Key) Unit(symbols symbol.Set) Key {
	return Key{make([]int64, symbols.Len()), true}
}

// IsUnit checks whether this key is cos(0).
func (p Key) IsUnit() bool {
	return p.cosine && p.isZero()
}

// Extend maps this key from one symbol set into a superset, such that symbols
// not in the original set have a zero multiplier.
func (p Key) Extend(from symbol.Set, to symbol.Set) Key {
	multipliers := make([]int64, to.Len())
	//
	for i := range from.Len() {
		j, ok := to.Index(from.Nth(i).Name())
		//
		if !ok {
			panic(fmt.Sprintf("symbol %s missing from %s", from.Nth(i).Name(), to.String()))
		}
		//
		multipliers[j] = p.multipliers[i]
	}
	//
	return Key{multipliers, p.cosine}
}

// Canonical returns the canonical form of this key, where the first non-zero
// multiplier is positive.  Since cos(-a) = cos(a) and sin(-a) = -sin(a),
// normalising a sine key requires the coefficient to be negated.  A sine key
// whose multipliers are all zero vanishes.
func (p Key) Canonical() (Key, series.Sign) {
	for _, n := range p.multipliers {
		switch {
		case n > 0:
			return p, series.Positive
		case n < 0:
			negated := Key{negate(p.multipliers), p.cosine}
			//
			if p.cosine {
				return negated, series.Positive
			}
			//
			return negated, series.Negative
		}
	}
	//
	if p.cosine {
		return p, series.Positive
	}
	//
	return p, series.Vanish
}

// Multiply two keys using the product-to-sum identities:
//
// cos(a)cos(b) = [cos(a-b) + cos(a+b)] / 2
// sin(a)sin(b) = [cos(a-b) - cos(a+b)] / 2
// sin(a)cos(b) = [sin(a+b) + sin(a-b)] / 2
// cos(a)sin(b) = [sin(a+b) - sin(a-b)] / 2
//
// Products are not necessarily canonical.
func (p Key) Multiply(other Key) []series.Product[Key] {
	switch {
	case p.IsUnit():
		return []series.Product[Key]{{Key: other, Factor: big.NewRat(1, 1)}}
	case other.IsUnit():
		return []series.Product[Key]{{Key: p, Factor: big.NewRat(1, 1)}}
	}
	//
	var (
		half      = big.NewRat(1, 2)
		minusHalf = big.NewRat(-1, 2)
		sum       = combine(p.multipliers, other.multipliers, math.AddInt64)
		diff      = combine(p.multipliers, other.multipliers, math.SubInt64)
	)
	//
	switch {
	case p.cosine && other.cosine:
		return []series.Product[Key]{{Key: Key{diff, true}, Factor: half}, {Key: Key{sum, true}, Factor: half}}
	case !p.cosine && !other.cosine:
		return []series.Product[Key]{{Key: Key{diff, true}, Factor: half}, {Key: Key{sum, true}, Factor: minusHalf}}
	case !p.cosine:
		return []series.Product[Key]{{Key: Key{sum, false}, Factor: half}, {Key: Key{diff, false}, Factor: half}}
	default:
		return []series.Product[Key]{{Key: Key{sum, false}, Factor: half}, {Key: Key{diff, false}, Factor: minusHalf}}
	}
}

// HDegree returns the harmonic degree of this key, which is the sum of the
// absolute values of its multipliers.
func (p Key) HDegree() int64 {
	return p.hdegree(nil)
}

// PartialHDegree returns the harmonic degree of this key restricted to those
// symbols selected by a given mask.
func (p Key) PartialHDegree(mask []bool) int64 {
	return p.hdegree(mask)
}

// Subs substitutes the symbol at a given position with some quantity x.
// Writing the argument of this key as n*x + r, the result is the multiplier n
// and two components such that the substituted key is the sum of factor(n*x)
// times residual over both components:
//
// cos(n*x + r) = cos(n*x)cos(r) - sin(n*x)sin(r)
// sin(n*x + r) = sin(n*x)cos(r) + cos(n*x)sin(r)
//
// Residual keys are interpreted against the symbol set with the substituted
// symbol removed.
func (p Key) Subs(index uint) (int64, [2]Component) {
	var (
		n        = p.multipliers[index]
		residual = slices.Delete(slices.Clone(p.multipliers), int(index), int(index)+1)
		rcos     = Key{residual, true}
		rsin     = Key{residual, false}
	)
	//
	if p.cosine {
		return n, [2]Component{{Sine: false, Negated: false, Residual: rcos}, {Sine: true, Negated: true, Residual: rsin}}
	}
	//
	return n, [2]Component{{Sine: true, Negated: false, Residual: rcos}, {Sine: false, Negated: false, Residual: rsin}}
}

// Integrate this key with respect to the symbol at a given position.  Writing
// the argument of this key as n*x + r, the result is the pair (n, sin(n*x+r))
// for a cosine key, and (-n, cos(n*x+r)) for a sine key, such that the
// antiderivative is the returned key divided by the returned multiplier.  A
// zero multiplier indicates this key does not depend on the symbol in
// question.
func (p Key) Integrate(index uint) (int64, Key) {
	n := p.Multiplier(index)
	//
	if n == 0 {
		return 0, Key{}
	} else if p.cosine {
		return n, p.SetFlavour(false)
	}
	//
	return neg(n), p.SetFlavour(true)
}

// Partial differentiates this key with respect to the symbol at a given
// position.  The result is a factor and key whose product is the derivative.
// A zero factor indicates this key does not depend on the symbol in question.
func (p Key) Partial(index uint) (int64, Key) {
	n := p.Multiplier(index)
	//
	if n == 0 {
		return 0, Key{}
	} else if p.cosine {
		return neg(n), p.SetFlavour(false)
	}
	//
	return n, p.SetFlavour(true)
}

// Format this key using the names of a given symbol set, e.g. "cos(2*x-y)".
func (p Key) Format(symbols symbol.Set) string {
	var buf strings.Builder
	//
	if p.cosine {
		buf.WriteString("cos(")
	} else {
		buf.WriteString("sin(")
	}
	//
	first := true
	//
	for i, n := range p.multipliers {
		if n == 0 {
			continue
		}
		//
		name := symbols.Nth(uint(i)).Name()
		//
		switch {
		case n < 0:
			buf.WriteString("-")
		case !first:
			buf.WriteString("+")
		}
		//
		if n == 1 || n == -1 {
			buf.WriteString(name)
		} else {
			fmt.Fprintf(&buf, "%s*%s", new(big.Int).Abs(big.NewInt(n)).String(), name)
		}
		//
		first = false
	}
	//
	if first {
		buf.WriteString("0")
	}
	//
	buf.WriteString(")")
	//
	return buf.String()
}

func (p Key) String() string {
	var flavour = "sin"
	//
	if p.cosine {
		flavour = "cos"
	}
	//
	return fmt.Sprintf("%s%v", flavour, p.multipliers)
}

func (p Key) isZero() bool {
	for _, n := range p.multipliers {
		if n != 0 {
			return false
		}
	}
	//
	return true
}

func (p Key) hdegree(mask []bool) int64 {
	var total int64
	//
	for i, n := range p.multipliers {
		if mask != nil && !mask[i] {
			continue
		}
		//
		abs, ok1 := math.AbsInt64(n)
		sum, ok2 := math.AddInt64(total, abs)
		//
		if !ok1 || !ok2 {
			panic("harmonic degree overflow")
		}
		//
		total = sum
	}
	//
	return total
}

// Component is one half of the result of substituting into a key.  It
// describes the term factor(n*x) * residual, where factor is either cosine or
// sine, possibly negated.
type Component struct {
	// Sine indicates the factor is sin(n*x) rather than cos(n*x).
	Sine bool
	// Negated indicates the factor is negated.
	Negated bool
	// Residual key, with the substituted symbol removed.
	Residual Key
}

func combine(lhs []int64, rhs []int64, op func(int64, int64) (int64, bool)) []int64 {
	res := make([]int64, len(lhs))
	//
	for i := range lhs {
		var ok bool
		//
		if res[i], ok = op(lhs[i], rhs[i]); !ok {
			panic("trigonometric multiplier overflow")
		}
	}
	//
	return res
}

func negate(multipliers []int64) []int64 {
	res := make([]int64, len(multipliers))
	//
	for i, n := range multipliers {
		res[i] = neg(n)
	}
	//
	return res
}

func neg(n int64) int64 {
	r, ok := math.NegInt64(n)
	//
	if !ok {
		panic("trigonometric multiplier overflow")
	}
	//
	return r
}
