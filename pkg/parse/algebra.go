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
package parse

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-poisson/pkg/field"
	"github.com/consensys/go-poisson/pkg/poisson"
	"github.com/consensys/go-poisson/pkg/polynomial"
	"github.com/consensys/go-poisson/pkg/rational"
	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/trig"
	"github.com/consensys/go-poisson/pkg/util/source"
	"github.com/consensys/go-poisson/pkg/util/source/sexp"
)

// ErrNotConstant signals a coefficient which cannot be converted into a field
// element, since it is not constant.
var ErrNotConstant = errors.New("coefficient not constant")

// PolySeries is a Poisson series with polynomial coefficients.
type PolySeries = poisson.Series[polynomial.Polynomial, poisson.PolynomialTraits]

// FieldSeries is a Poisson series with coefficients in the BLS12-377 scalar
// field.
type FieldSeries = poisson.Series[field.Element, poisson.PlainTraits[field.Element]]

// Polynomial parses a polynomial from a given string.
func Polynomial(text string) (polynomial.Polynomial, error) {
	return parse[polynomial.Polynomial](text, PolynomialAlgebra{})
}

// Poisson parses a Poisson series with polynomial coefficients from a given
// string.
func Poisson(text string) (PolySeries, error) {
	return parse[PolySeries](text, PoissonAlgebra{})
}

// Field parses a Poisson series with field coefficients from a given string.
// Every coefficient of the series must be constant.
func Field(text string) (FieldSeries, error) {
	s, err := Poisson(text)
	//
	if err != nil {
		return FieldSeries{}, err
	}
	//
	return ToField(s)
}

// ToField converts a Poisson series with constant polynomial coefficients into
// one with field coefficients.
func ToField(s PolySeries) (FieldSeries, error) {
	var terms []series.Term[field.Element, trig.Key]
	//
	for _, t := range s.Terms() {
		cts := t.Coefficient.Terms()
		//
		if len(cts) != 1 || !cts[0].Key.IsUnit() {
			return FieldSeries{}, fmt.Errorf("%s: %w", t.Coefficient.String(), ErrNotConstant)
		}
		//
		terms = append(terms, series.NewTerm(field.FromRat(cts[0].Coefficient.Rat()), t.Key))
	}
	//
	return poisson.FromTerms[field.Element, poisson.PlainTraits[field.Element]](s.Symbols(), terms...), nil
}

func parse[V any](text string, algebra Algebra[V]) (V, error) {
	var value V
	//
	srcfile := source.NewSourceFile("<input>", []byte(text))
	expr, srcmap, err := sexp.Parse(srcfile)
	//
	if err != nil {
		return value, err
	}
	//
	if value, err = NewParser(srcmap, algebra).Parse(expr); err != nil {
		return value, err
	}
	//
	return value, nil
}

// PolynomialAlgebra constructs polynomials.
type PolynomialAlgebra struct{}

// Constant implementation for the Algebra interface.
func (PolynomialAlgebra) Constant(r rational.Rational) polynomial.Polynomial {
	return polynomial.Constant(r)
}

// Variable implementation for the Algebra interface.
func (PolynomialAlgebra) Variable(name string) polynomial.Polynomial {
	return polynomial.Variable(name)
}

// Add implementation for the Algebra interface.
func (PolynomialAlgebra) Add(l, r polynomial.Polynomial) polynomial.Polynomial {
	return l.Add(r)
}

// Sub implementation for the Algebra interface.
func (PolynomialAlgebra) Sub(l, r polynomial.Polynomial) polynomial.Polynomial {
	return l.Sub(r)
}

// Mul implementation for the Algebra interface.
func (PolynomialAlgebra) Mul(l, r polynomial.Polynomial) polynomial.Polynomial {
	return l.Mul(r)
}

// Neg implementation for the Algebra interface.
func (PolynomialAlgebra) Neg(v polynomial.Polynomial) polynomial.Polynomial {
	return v.Neg()
}

// Pow implementation for the Algebra interface.  Arbitrary rational exponents
// are permitted for a single symbol, but otherwise the exponent must be a
// non-negative integer.
func (PolynomialAlgebra) Pow(v polynomial.Polynomial, n rational.Rational) (polynomial.Polynomial, error) {
	if k, ok := n.Int64(); ok && k >= 0 {
		return v.Pow(uint(k)), nil
	} else if name, ok := singleSymbol(v); ok {
		monomial := polynomial.NewMonomial(n)
		return polynomial.New(symbol.NewSet(name), series.NewTerm(rational.One(), monomial)), nil
	}
	//
	return polynomial.Polynomial{}, fmt.Errorf("%s^%s: %w", v.String(), n.String(), polynomial.ErrInvalidPower)
}

// Sin implementation for the Algebra interface.
func (PolynomialAlgebra) Sin(v polynomial.Polynomial) (polynomial.Polynomial, error) {
	return v.Sin()
}

// Cos implementation for the Algebra interface.
func (PolynomialAlgebra) Cos(v polynomial.Polynomial) (polynomial.Polynomial, error) {
	return v.Cos()
}

// PoissonAlgebra constructs Poisson series with polynomial coefficients.
type PoissonAlgebra struct{}

// Constant implementation for the Algebra interface.
func (PoissonAlgebra) Constant(r rational.Rational) PolySeries {
	return lift(polynomial.Constant(r))
}

// Variable implementation for the Algebra interface.
func (PoissonAlgebra) Variable(name string) PolySeries {
	return lift(polynomial.Variable(name))
}

// Add implementation for the Algebra interface.
func (PoissonAlgebra) Add(l, r PolySeries) PolySeries {
	return l.Add(r)
}

// Sub implementation for the Algebra interface.
func (PoissonAlgebra) Sub(l, r PolySeries) PolySeries {
	return l.Sub(r)
}

// Mul implementation for the Algebra interface.
func (PoissonAlgebra) Mul(l, r PolySeries) PolySeries {
	return l.Mul(r)
}

// Neg implementation for the Algebra interface.
func (PoissonAlgebra) Neg(v PolySeries) PolySeries {
	return v.Neg()
}

// Pow implementation for the Algebra interface.  Powers of single
// coefficients follow those of polynomials, but otherwise the exponent must be
// a non-negative integer.
func (PoissonAlgebra) Pow(v PolySeries, n rational.Rational) (PolySeries, error) {
	if v.Base().IsSingleCoefficient() {
		p, err := PolynomialAlgebra{}.Pow(v.Base().Coefficient(), n)
		return lift(p), err
	}
	//
	k, ok := n.Int64()
	//
	if !ok || k < 0 {
		return PolySeries{}, fmt.Errorf("(%s)^%s: %w", v.String(), n.String(), polynomial.ErrInvalidPower)
	}
	//
	result := lift(polynomial.Constant(rational.One()))
	//
	for ; k > 0; k-- {
		result = result.Mul(v)
	}
	//
	return result, nil
}

// Sin implementation for the Algebra interface.
func (PoissonAlgebra) Sin(v PolySeries) (PolySeries, error) {
	return v.Sin()
}

// Cos implementation for the Algebra interface.
func (PoissonAlgebra) Cos(v PolySeries) (PolySeries, error) {
	return v.Cos()
}

func lift(p polynomial.Polynomial) PolySeries {
	return poisson.FromCoefficient[polynomial.Polynomial, poisson.PolynomialTraits](p)
}

// Determine whether a polynomial is a single symbol and, if so, its name.
func singleSymbol(p polynomial.Polynomial) (string, bool) {
	lc, ok := p.IntegralCombination().Get()
	//
	if !ok || len(lc) != 1 || lc[0].Factor.Cmp(big.NewInt(1)) != 0 {
		return "", false
	}
	//
	return lc[0].Name, true
}
