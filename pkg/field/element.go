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
package field

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// ErrNotEvaluable signals an attempt to evaluate a transcendental function at
// a field element for which it has no meaning.
var ErrNotEvaluable = errors.New("no field value")

// Element wraps an element of the BLS12-377 scalar field, such that it can be
// used as a series coefficient.  The zero value of Element is zero.
type Element struct {
	fr.Element
}

// FromInt64 constructs a field element from a machine integer.
func FromInt64(n int64) Element {
	var elem fr.Element
	//
	elem.SetInt64(n)
	//
	return Element{elem}
}

// FromBigInt constructs a field element from an arbitrary-precision integer,
// reducing modulo the field order.
func FromBigInt(n *big.Int) Element {
	var elem fr.Element
	//
	elem.SetBigInt(n)
	//
	return Element{elem}
}

// FromRat constructs the field element num * den^-1, panicking if the
// denominator vanishes in the field.
func FromRat(r *big.Rat) Element {
	den := FromBigInt(r.Denom())
	//
	if den.IsZero() {
		panic(fmt.Sprintf("denominator of %s vanishes in field", r.RatString()))
	}
	//
	return FromBigInt(r.Num()).Mul(den.Inverse())
}

// Parse a field element from a string of the form "n" or "n/d".
func Parse(s string) (Element, error) {
	r, ok := new(big.Rat).SetString(s)
	//
	if !ok {
		return Element{}, fmt.Errorf("invalid field element \"%s\"", s)
	}
	//
	return FromRat(r), nil
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Neg -x
func (x Element) Neg() Element {
	var elem fr.Element
	//
	elem.Neg(&x.Element)
	//
	return Element{elem}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var elem fr.Element
	//
	elem.Inverse(&x.Element)
	//
	return Element{elem}
}

// Scale x by a rational factor.
func (x Element) Scale(factor *big.Rat) Element {
	return x.Mul(FromRat(factor))
}

// One returns the multiplicative identity.
func (x Element) One() Element {
	return FromInt64(1)
}

// IsZero checks whether x = 0.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// Equal checks whether x = y.
func (x Element) Equal(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// Equals implementation for the hash.Hasher interface.
func (x Element) Equals(y Element) bool {
	return x.Equal(y)
}

// Hash implementation for the hash.Hasher interface.
func (x Element) Hash() uint64 {
	hash := fnv.New64a()
	bytes := x.Element.Bytes()
	//
	hash.Write(bytes[:])
	//
	return hash.Sum64()
}

// Sin returns sin(x), which is only defined for x = 0.
func (x Element) Sin() (Element, error) {
	if !x.IsZero() {
		return x, fmt.Errorf("sin(%s): %w", x.String(), ErrNotEvaluable)
	}
	//
	return Element{}, nil
}

// Cos returns cos(x), which is only defined for x = 0.
func (x Element) Cos() (Element, error) {
	if !x.IsZero() {
		return x, fmt.Errorf("cos(%s): %w", x.String(), ErrNotEvaluable)
	}
	//
	return x.One(), nil
}

// Partial derivative of a constant, which is always zero.
func (x Element) Partial(string) Element {
	return Element{}
}

// Subs is the identity, since constants contain no symbols.
func (x Element) Subs(string, Element) (Element, error) {
	return x, nil
}

// IpowSubs is the identity, since constants contain no symbols.
func (x Element) IpowSubs(string, *big.Int, Element) (Element, error) {
	return x, nil
}

func (x Element) String() string {
	return x.Element.String()
}
