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
package rational

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotEvaluable signals an attempt to evaluate a transcendental function at a
// rational for which no exact rational result exists.
var ErrNotEvaluable = errors.New("no exact rational value")

// Rational is an immutable arbitrary-precision rational number.  Observe that
// an unitialised Rational variable corresponds with zero, which means Rational
// can be used both as a series coefficient and as a degree value.
type Rational struct {
	// Underlying value, or nil for zero.  This is never mutated once
	// constructed.
	val *big.Rat
}

// Zero returns the rational zero.
func Zero() Rational {
	return Rational{}
}

// One returns the rational one.
func One() Rational {
	return FromInt64(1)
}

// FromInt64 constructs a rational from a machine integer.
func FromInt64(n int64) Rational {
	return FromRat(new(big.Rat).SetInt64(n))
}

// New constructs the rational num/den, panicking if den is zero.
func New(num, den int64) Rational {
	if den == 0 {
		panic("division by zero")
	}
	//
	return FromRat(big.NewRat(num, den))
}

// FromBigInt constructs a rational from an arbitrary-precision integer.
func FromBigInt(n *big.Int) Rational {
	return FromRat(new(big.Rat).SetInt(n))
}

// FromRat constructs a rational from a big rational, which is copied.
func FromRat(r *big.Rat) Rational {
	if r == nil || r.Sign() == 0 {
		return Rational{}
	}
	//
	return Rational{new(big.Rat).Set(r)}
}

// Parse a rational from a string of the form "n" or "n/d".
func Parse(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(s)
	//
	if !ok {
		return Rational{}, fmt.Errorf("invalid rational \"%s\"", s)
	}
	//
	return FromRat(r), nil
}

// Rat returns a fresh copy of the underlying value.
func (p Rational) Rat() *big.Rat {
	if p.val == nil {
		return new(big.Rat)
	}
	//
	return new(big.Rat).Set(p.val)
}

// Add returns p + q.
func (p Rational) Add(q Rational) Rational {
	switch {
	case p.val == nil:
		return q
	case q.val == nil:
		return p
	}
	//
	return FromRat(new(big.Rat).Add(p.val, q.val))
}

// Sub returns p - q.
func (p Rational) Sub(q Rational) Rational {
	return p.Add(q.Neg())
}

// Mul returns p * q.
func (p Rational) Mul(q Rational) Rational {
	if p.val == nil || q.val == nil {
		return Rational{}
	}
	//
	return FromRat(new(big.Rat).Mul(p.val, q.val))
}

// Quo returns p / q, panicking if q is zero.
func (p Rational) Quo(q Rational) Rational {
	if q.val == nil {
		panic("division by zero")
	} else if p.val == nil {
		return p
	}
	//
	return FromRat(new(big.Rat).Quo(p.val, q.val))
}

// Neg returns -p.
func (p Rational) Neg() Rational {
	if p.val == nil {
		return p
	}
	//
	return Rational{new(big.Rat).Neg(p.val)}
}

// Abs returns |p|.
func (p Rational) Abs() Rational {
	if p.Sign() < 0 {
		return p.Neg()
	}
	//
	return p
}

// Scale returns p multiplied by a given big rational.
func (p Rational) Scale(factor *big.Rat) Rational {
	if p.val == nil {
		return p
	}
	//
	return FromRat(new(big.Rat).Mul(p.val, factor))
}

// One returns the multiplicative identity.  This can be called on any value
// (including zero) of this type.
func (p Rational) One() Rational {
	return One()
}

// IsZero checks whether this is zero.
func (p Rational) IsZero() bool {
	return p.val == nil
}

// IsOne checks whether this is one.
func (p Rational) IsOne() bool {
	return p.val != nil && p.val.IsInt() && p.val.Num().IsInt64() && p.val.Num().Int64() == 1
}

// Sign returns -1, 0 or 1 depending on whether p is negative, zero or positive.
func (p Rational) Sign() int {
	if p.val == nil {
		return 0
	}
	//
	return p.val.Sign()
}

// Cmp returns -1 if p < q, 0 if p == q and 1 if p > q.
func (p Rational) Cmp(q Rational) int {
	return p.Rat().Cmp(q.Rat())
}

// Equal checks whether p == q.
func (p Rational) Equal(q Rational) bool {
	return p.Cmp(q) == 0
}

// Equals is a synonym for Equal, as required for hashing.
func (p Rational) Equals(q Rational) bool {
	return p.Equal(q)
}

// Hash returns a hashcode for this rational.  Equal rationals have equal
// hashcodes, since big.Rat values are kept normalised.
func (p Rational) Hash() uint64 {
	if p.val == nil {
		return 0
	}
	//
	num, den := p.val.Num(), p.val.Denom()
	h := num.Uint64()
	//
	if num.Sign() < 0 {
		h = ^h
	}
	//
	return h*1099511628211 ^ den.Uint64()
}

// IsInteger checks whether this rational has no fractional part.
func (p Rational) IsInteger() bool {
	return p.val == nil || p.val.IsInt()
}

// Integer returns this rational as an integer, provided it has no fractional
// part.  This is the exact "integral cast" of a rational.
func (p Rational) Integer() (*big.Int, bool) {
	if p.val == nil {
		return new(big.Int), true
	} else if !p.val.IsInt() {
		return nil, false
	}
	//
	return new(big.Int).Set(p.val.Num()), true
}

// Int64 returns this rational as a machine integer, provided it is integral
// and fits.
func (p Rational) Int64() (int64, bool) {
	if n, ok := p.Integer(); ok && n.IsInt64() {
		return n.Int64(), true
	}
	//
	return 0, false
}

// Sin returns sin(p), which is only rational for p = 0.
func (p Rational) Sin() (Rational, error) {
	if p.val != nil {
		return p, fmt.Errorf("sin(%s): %w", p.String(), ErrNotEvaluable)
	}
	//
	return Rational{}, nil
}

// Cos returns cos(p), which is only rational for p = 0.
func (p Rational) Cos() (Rational, error) {
	if p.val != nil {
		return p, fmt.Errorf("cos(%s): %w", p.String(), ErrNotEvaluable)
	}
	//
	return One(), nil
}

// Partial returns the partial derivative with respect to a named symbol, which
// is always zero for a constant.
func (p Rational) Partial(string) Rational {
	return Rational{}
}

// Subs substitutes a symbol with a value.  Constants contain no symbols, hence
// this is the identity.
func (p Rational) Subs(string, Rational) (Rational, error) {
	return p, nil
}

// IpowSubs substitutes an integral power of a symbol with a value.  Constants
// contain no symbols, hence this is the identity.
func (p Rational) IpowSubs(string, *big.Int, Rational) (Rational, error) {
	return p, nil
}

func (p Rational) String() string {
	if p.val == nil {
		return "0"
	}
	//
	return p.val.RatString()
}
