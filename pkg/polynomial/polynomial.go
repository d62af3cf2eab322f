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
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/consensys/go-poisson/pkg/power"
	"github.com/consensys/go-poisson/pkg/rational"
	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/util"
	log "github.com/sirupsen/logrus"
)

// ErrNotIntegrable signals an attempt to integrate x^-1, whose antiderivative
// is not a polynomial.
var ErrNotIntegrable = errors.New("polynomial not integrable")

// ErrInvalidPower signals an attempt to raise a polynomial to a power which is
// not a non-negative integer.
var ErrInvalidPower = errors.New("invalid power")

// Term is a single term of a polynomial.
type Term = series.Term[rational.Rational, Monomial]

// Multiple is a named symbol scaled by an integral factor, i.e. a single term
// of a linear combination.
type Multiple struct {
	Name   string
	Factor *big.Int
}

// Combination is a linear combination of symbols with integral multipliers,
// ordered by symbol name.
type Combination = []Multiple

// Polynomial is a multivariate polynomial with rational coefficients and
// rational exponents.  Polynomials are immutable, and the zero value
// represents the zero polynomial.
type Polynomial struct {
	terms power.Series[rational.Rational, Monomial, power.KeyOnly[rational.Rational, Monomial]]
}

// New constructs a polynomial over a given set of symbols from a given set of
// terms.
func New(symbols symbol.Set, terms ...Term) Polynomial {
	return wrap(series.FromTerms(symbols, terms...))
}

// Constant constructs a polynomial with no symbols.
func Constant(value rational.Rational) Polynomial {
	return wrap(series.FromCoefficient[rational.Rational, Monomial](value))
}

// Variable constructs the polynomial consisting of a single symbol.
func Variable(name string) Polynomial {
	return New(symbol.NewSet(name), series.NewTerm(rational.One(), NewMonomial(rational.One())))
}

func wrap(s *series.Series[rational.Rational, Monomial]) Polynomial {
	return Polynomial{power.Of[power.KeyOnly[rational.Rational, Monomial]](s)}
}

// Symbols returns the symbols of this polynomial.
func (p Polynomial) Symbols() symbol.Set {
	return p.terms.Symbols()
}

// Terms returns the terms of this polynomial in a deterministic order.
func (p Polynomial) Terms() []Term {
	return p.terms.Terms()
}

// Len returns the number of terms in this polynomial.
func (p Polynomial) Len() uint {
	return p.terms.Len()
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return wrap(p.terms.Add(q.terms.Series))
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return wrap(p.terms.Sub(q.terms.Series))
}

// Mul returns p * q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	return wrap(p.terms.Mul(q.terms.Series))
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return wrap(p.terms.Neg())
}

// Scale returns p multiplied by a rational factor.
func (p Polynomial) Scale(factor *big.Rat) Polynomial {
	return wrap(p.terms.Scale(factor))
}

// IsZero checks whether this is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return p.terms.IsEmpty()
}

// Equal checks whether p == q, irrespective of their symbol sets.
func (p Polynomial) Equal(q Polynomial) bool {
	return p.terms.Equal(q.terms.Series)
}

// One returns the constant polynomial 1.
func (p Polynomial) One() Polynomial {
	return Constant(rational.One())
}

// Pow raises this polynomial to a non-negative integer power by repeated
// squaring.
func (p Polynomial) Pow(n uint) Polynomial {
	var (
		result = p.One()
		base   = p
	)
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		//
		if n > 1 {
			base = base.Mul(base)
		}
	}
	//
	return result
}

// Degree returns the maximum total degree of any term.
func (p Polynomial) Degree() rational.Rational {
	return p.terms.Degree()
}

// LDegree returns the minimum total degree of any term.
func (p Polynomial) LDegree() rational.Rational {
	return p.terms.LDegree()
}

// PartialDegree returns the maximum degree of any term, considering only the
// named symbols.
func (p Polynomial) PartialDegree(names ...string) rational.Rational {
	return p.terms.PartialDegree(names...)
}

// PartialLDegree returns the minimum degree of any term, considering only the
// named symbols.
func (p Polynomial) PartialLDegree(names ...string) rational.Rational {
	return p.terms.PartialLDegree(names...)
}

// Partial returns the partial derivative with respect to a named symbol.
func (p Polynomial) Partial(name string) Polynomial {
	var (
		symbols    = p.Symbols()
		index, ok  = symbols.Index(name)
		derivative = series.New[rational.Rational, Monomial](symbols)
	)
	//
	if !ok {
		return Polynomial{}
	}
	//
	for _, t := range p.Terms() {
		e := t.Key.Exponent(index)
		derivative.Insert(t.Coefficient.Mul(e), t.Key.with(index, e.Sub(rational.One())))
	}
	//
	return wrap(derivative)
}

// Integrate returns the antiderivative with respect to a named symbol, with
// zero integration constant.  This fails if any term has exponent -1 in that
// symbol.
func (p Polynomial) Integrate(name string) (Polynomial, error) {
	var (
		symbols  = p.Symbols().Add(name)
		index, _ = symbols.Index(name)
		integral = series.New[rational.Rational, Monomial](symbols)
	)
	//
	for _, t := range p.terms.Extend(symbols).Terms() {
		e := t.Key.Exponent(index).Add(rational.One())
		//
		if e.IsZero() {
			return Polynomial{}, fmt.Errorf("integral of %s with respect to %s: %w", p.String(), name, ErrNotIntegrable)
		}
		//
		integral.Insert(t.Coefficient.Quo(e), t.Key.with(index, e))
	}
	//
	return wrap(integral), nil
}

// Subs substitutes a named symbol with a given polynomial.  This fails if the
// symbol occurs with an exponent which is not a non-negative integer.
func (p Polynomial) Subs(name string, x Polynomial) (Polynomial, error) {
	var (
		result    Polynomial
		symbols   = p.Symbols()
		index, ok = symbols.Index(name)
		remaining = symbols.Remove(name)
	)
	//
	if !ok {
		return p, nil
	}
	//
	for _, t := range p.Terms() {
		n, err := exponentOf(t.Key.Exponent(index))
		//
		if err != nil {
			return Polynomial{}, fmt.Errorf("substituting %s in %s: %w", name, p.String(), err)
		}
		//
		rest := New(remaining, series.NewTerm(t.Coefficient, t.Key.without(index)))
		result = result.Add(rest.Mul(x.Pow(n)))
	}
	//
	return result, nil
}

// IpowSubs substitutes occurrences of name^n with a given polynomial.  For
// each term where name has exponent e >= n, the term is rewritten as
// name^(e - q*n) * x^q where q is the integral part of e/n.  This fails unless
// n is positive.
func (p Polynomial) IpowSubs(name string, n *big.Int, x Polynomial) (Polynomial, error) {
	var (
		result    Polynomial
		symbols   = p.Symbols()
		index, ok = symbols.Index(name)
		step      = rational.FromBigInt(n)
	)
	//
	if n.Sign() <= 0 {
		return Polynomial{}, fmt.Errorf("substituting %s^%s: %w", name, n.String(), ErrInvalidPower)
	} else if !ok {
		return p, nil
	}
	//
	for _, t := range p.Terms() {
		var (
			e    = t.Key.Exponent(index)
			term = New(symbols, t)
		)
		//
		if e.Cmp(step) >= 0 {
			// Exponent is positive here, hence truncation is floor.
			q := new(big.Int).Quo(e.Rat().Num(), new(big.Int).Mul(e.Rat().Denom(), n))
			//
			if !q.IsUint64() {
				return Polynomial{}, fmt.Errorf("substituting %s^%s: %w", name, n.String(), ErrInvalidPower)
			}
			//
			rem := e.Sub(step.Mul(rational.FromBigInt(q)))
			term = New(symbols, series.NewTerm(t.Coefficient, t.Key.with(index, rem)))
			term = term.Mul(x.Pow(uint(q.Uint64())))
		}
		//
		result = result.Add(term)
	}
	//
	return result, nil
}

// IntegralCombination checks whether this polynomial is a linear combination
// of symbols with integral multipliers, such as 2*x - y.  If so, the
// multipliers are returned ordered by symbol name.  The zero polynomial gives
// the empty combination.
func (p Polynomial) IntegralCombination() util.Option[Combination] {
	var (
		symbols     = p.Symbols()
		combination = make(Combination, 0, p.Len())
	)
	//
	for _, t := range p.Terms() {
		n, ok := t.Coefficient.Integer()
		index, linear := t.Key.linear()
		//
		if !ok || !linear {
			log.Debugf("polynomial %s is not an integral linear combination", p.String())
			return util.None[Combination]()
		}
		//
		combination = append(combination, Multiple{symbols.Nth(index).Name(), n})
	}
	//
	slices.SortFunc(combination, func(l, r Multiple) int {
		return strings.Compare(l.Name, r.Name)
	})
	//
	return util.Some(combination)
}

// Sin returns the sine of this polynomial, which must be a constant.
func (p Polynomial) Sin() (Polynomial, error) {
	s, err := series.Sin(p.terms.Series)
	//
	return wrap(s), err
}

// Cos returns the cosine of this polynomial, which must be a constant.
func (p Polynomial) Cos() (Polynomial, error) {
	s, err := series.Cos(p.terms.Series)
	//
	return wrap(s), err
}

func (p Polynomial) String() string {
	return p.terms.Series.String()
}

// Determine the non-negative integral value of an exponent.
func exponentOf(e rational.Rational) (uint, error) {
	n, ok := e.Int64()
	//
	if !ok || n < 0 {
		return 0, fmt.Errorf("exponent %s: %w", e.String(), ErrInvalidPower)
	}
	//
	return uint(n), nil
}
