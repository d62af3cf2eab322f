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
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/go-poisson/pkg/polynomial"
	"github.com/consensys/go-poisson/pkg/rational"
	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/trig"
)

type (
	polySeries  = Series[polynomial.Polynomial, PolynomialTraits]
	plainSeries = Series[polynomial.Polynomial, PlainTraits[polynomial.Polynomial]]
)

var (
	x = polynomial.Variable("x")
	y = polynomial.Variable("y")
	z = polynomial.Variable("z")
)

// ===================================================================
// Sine / Cosine
// ===================================================================

func Test_SinCos_01(t *testing.T) {
	arg := constant(x.Scale(big.NewRat(2, 1)).Sub(y.Scale(big.NewRat(3, 1))))
	//
	checkString(t, cos(t, arg), "cos(2*x-3*y)")
	checkString(t, sin(t, arg), "sin(2*x-3*y)")
}

func Test_SinCos_02(t *testing.T) {
	// Leading multiplier is negative
	arg := constant(y.Sub(x))
	//
	checkString(t, cos(t, arg), "cos(x-y)")
	checkString(t, sin(t, arg), "-sin(x-y)")
}

func Test_SinCos_03(t *testing.T) {
	// sin(-a) = -sin(a) and cos(-a) = cos(a)
	for _, a := range []polynomial.Polynomial{x, y.Sub(x), x.Add(y).Add(z), z.Scale(big.NewRat(-4, 1)).Add(x)} {
		pos, neg := constant(a), constant(a.Neg())
		//
		checkEqual(t, sin(t, neg), sin(t, pos).Neg())
		checkEqual(t, cos(t, neg), cos(t, pos))
	}
}

func Test_SinCos_04(t *testing.T) {
	// Empty series has sin 0 = 0 and cos 0 = 1
	var empty polySeries
	//
	checkString(t, sin(t, empty), "0")
	checkString(t, cos(t, empty), "1")
}

func Test_SinCos_05(t *testing.T) {
	// Fallback cases are not evaluable
	for _, arg := range []polySeries{constant(x.Pow(2)), constant(one()), constant(x.Scale(big.NewRat(1, 2)))} {
		if _, err := arg.Cos(); err == nil {
			t.Errorf("expected cos(%s) to fail", arg.String())
		}
	}
	//
	if _, err := constant(one()).Sin(); !errors.Is(err, rational.ErrNotEvaluable) {
		t.Errorf("expected sin(1) to be not evaluable, got %v", err)
	}
	// Multiple terms
	if _, err := cos(t, constant(x)).Cos(); !errors.Is(err, series.ErrNotEvaluable) {
		t.Errorf("expected cos(cos(x)) to be not evaluable, got %v", err)
	}
	// Rational coefficients are never linear combinations
	if _, err := FromCoefficient[rational.Rational, PlainTraits[rational.Rational]](rational.One()).Sin(); err == nil {
		t.Errorf("expected sin(1) to fail")
	}
}

func Test_SinCos_06(t *testing.T) {
	// Reduction only applies for polynomial traits
	if _, err := FromCoefficient[polynomial.Polynomial, PlainTraits[polynomial.Polynomial]](x).Cos(); err == nil {
		t.Errorf("expected cos(x) to fail without polynomial traits")
	}
}

// ===================================================================
// Substitution
// ===================================================================

func Test_Subs_01(t *testing.T) {
	// y*cos(2x+z) + x*sin(x)
	s := terms(symbol.NewSet("x", "z"), term(y, trig.Cosine(2, 1)), term(x, trig.Sine(1, 0)))
	// Substituting a symbol with itself is the identity
	checkEqual(t, subs(t, s, "x", x), s)
	checkEqual(t, subs(t, s, "z", z), s)
	// Substituting a symbol which does not occur
	checkEqual(t, subs(t, s, "w", x), s)
}

func Test_Subs_02(t *testing.T) {
	// cos(x) [x := y+z] = cos(y+z)
	s := terms(symbol.NewSet("x"), term(one(), trig.Cosine(1)))
	checkEqual(t, subs(t, s, "x", y.Add(z)), cos(t, constant(y.Add(z))))
	// 3*sin(2x) [x := y] = 3*sin(2y)
	s = terms(symbol.NewSet("x"), term(constantPoly(3), trig.Sine(2)))
	expected := terms(symbol.NewSet("y"), term(constantPoly(3), trig.Sine(2)))
	checkEqual(t, subs(t, s, "x", y), expected)
}

func Test_Subs_03(t *testing.T) {
	// x*cos(x+y) [x := z] = z*cos(z+y)
	s := terms(symbol.NewSet("x", "y"), term(x, trig.Cosine(1, 1)))
	expected := terms(symbol.NewSet("y", "z"), term(z, trig.Cosine(1, 1)))
	checkEqual(t, subs(t, s, "x", z), expected)
	// x*cos(x+y) [x := -y] = -y
	checkEqual(t, subs(t, s, "x", y.Neg()), constant(y.Neg()))
}

func Test_Subs_04(t *testing.T) {
	s := terms(symbol.NewSet("x"), term(one(), trig.Cosine(1)))
	//
	if _, err := s.Subs("x", y.Pow(2)); !errors.Is(err, series.ErrNotEvaluable) {
		t.Errorf("expected cos(y^2) to be not evaluable, got %v", err)
	}
}

func Test_IpowSubs_01(t *testing.T) {
	// x^3*cos(y) [x^2 := z] = x*z*cos(y)
	s := terms(symbol.NewSet("y"), term(x.Pow(3), trig.Cosine(1)))
	actual, err := s.IpowSubs("x", big.NewInt(2), z)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, actual, terms(symbol.NewSet("y"), term(x.Mul(z), trig.Cosine(1))))
	//
	if _, err := s.IpowSubs("x", big.NewInt(-1), z); !errors.Is(err, polynomial.ErrInvalidPower) {
		t.Errorf("expected negative power to fail, got %v", err)
	}
}

// ===================================================================
// Harmonic Degree
// ===================================================================

func Test_HDegree_01(t *testing.T) {
	s := terms(symbol.NewSet("x", "y", "z"), term(one(), trig.Cosine(2, -3, 0)))
	//
	checkInt(t, s.HDegree(), 5)
	checkInt(t, s.HLDegree(), 5)
	checkInt(t, s.PartialHDegree("y"), 3)
	checkInt(t, s.PartialHLDegree("x", "z"), 2)
}

func Test_HDegree_02(t *testing.T) {
	// cos(x) + sin(2x+3y)
	s := terms(symbol.NewSet("x", "y"), term(one(), trig.Cosine(1, 0)), term(one(), trig.Sine(2, 3)))
	//
	checkInt(t, s.HDegree(), 5)
	checkInt(t, s.HLDegree(), 1)
	checkInt(t, s.PartialHDegree("y"), 3)
	checkInt(t, s.PartialHLDegree("y"), 0)
	checkInt(t, s.PartialHDegree("w"), 0)
	//
	var empty polySeries
	//
	checkInt(t, empty.HDegree(), 0)
	checkInt(t, empty.HLDegree(), 0)
}

// ===================================================================
// Integration
// ===================================================================

func Test_Integrate_01(t *testing.T) {
	// Key only: y*cos(2x) => 1/2*y*sin(2x)
	s := terms(symbol.NewSet("x"), term(y, trig.Cosine(2)))
	checkString(t, integrate(t, s, "x"), "1/2*y*sin(2*x)")
	// sin(x) => -cos(x)
	s = terms(symbol.NewSet("x"), term(one(), trig.Sine(1)))
	checkString(t, integrate(t, s, "x"), "-cos(x)")
}

func Test_Integrate_02(t *testing.T) {
	// Coefficient only: x*cos(y) => 1/2*x^2*cos(y)
	s := terms(symbol.NewSet("y"), term(x, trig.Cosine(1)))
	expected := terms(symbol.NewSet("y"), term(x.Pow(2).Scale(big.NewRat(1, 2)), trig.Cosine(1)))
	checkEqual(t, integrate(t, s, "x"), expected)
}

func Test_Integrate_03(t *testing.T) {
	// Differentiating the integral of a term whose key does not involve the
	// symbol gives the original.
	s := terms(symbol.NewSet("y", "z"),
		term(x.Pow(3).Add(x.Mul(z)), trig.Cosine(1, 2)),
		term(x.Sub(y.Scale(big.NewRat(5, 7))), trig.Sine(0, 1)))
	//
	checkEqual(t, integrate(t, s, "x").Partial("x"), s)
}

func Test_Integrate_04(t *testing.T) {
	// x^2*cos(x) => x^2*sin(x) + 2x*cos(x) - 2*sin(x)
	s := terms(symbol.NewSet("x"), term(x.Pow(2), trig.Cosine(1)))
	expected := terms(symbol.NewSet("x"),
		term(x.Pow(2), trig.Sine(1)),
		term(x.Scale(big.NewRat(2, 1)), trig.Cosine(1)),
		term(constantPoly(-2), trig.Sine(1)))
	actual := integrate(t, s, "x")
	//
	checkEqual(t, actual, expected)
	checkEqual(t, actual.Partial("x"), s)
}

func Test_Integrate_05(t *testing.T) {
	// Multivariate: (x*y + x^3)*sin(2x+y) differentiates back
	s := terms(symbol.NewSet("x", "y"), term(x.Mul(y).Add(x.Pow(3)), trig.Sine(2, 1)),
		term(z, trig.Cosine(1, 0)))
	//
	checkEqual(t, integrate(t, s, "x").Partial("x"), s)
}

func Test_Integrate_06(t *testing.T) {
	// Coefficient not a polynomial
	var s plainSeries = Of[PlainTraits[polynomial.Polynomial]](terms(symbol.NewSet("x"), term(x, trig.Cosine(1))).Base())
	checkError(t, s, "x", ErrNotPolynomial)
	// Coefficient not integrable
	s = Of[PlainTraits[polynomial.Polynomial]](terms(symbol.NewSet("y"), term(x, trig.Cosine(1))).Base())
	checkError(t, s, "x", ErrNotIntegrable)
	//
	r := FromTerms[rational.Rational, PlainTraits[rational.Rational]](symbol.NewSet("y"),
		series.NewTerm(rational.One(), trig.Cosine(1)))
	//
	if _, err := r.Integrate("x"); !errors.Is(err, ErrNotIntegrable) {
		t.Errorf("expected integration to fail with not integrable, got %v", err)
	}
}

func Test_Integrate_07(t *testing.T) {
	xs := symbol.NewSet("x")
	// x^-1*cos(x)
	checkError(t, terms(xs, term(power(-1, 1), trig.Cosine(1))), "x", ErrNegativeDegree)
	// (x^2 + x^(1/2))*cos(x)
	checkError(t, terms(xs, term(x.Pow(2).Add(power(1, 2)), trig.Cosine(1))), "x", ErrIntegralDegree)
	// x^-1*cos(y) integrates via the coefficient
	checkError(t, terms(symbol.NewSet("y"), term(power(-1, 1), trig.Cosine(1))), "x",
		polynomial.ErrNotIntegrable)
}

func Test_Integrate_08(t *testing.T) {
	// Rational coefficients integrate via the key
	r := FromTerms[rational.Rational, PlainTraits[rational.Rational]](symbol.NewSet("x"),
		series.NewTerm(rational.FromInt64(3), trig.Cosine(2)))
	actual, err := r.Integrate("x")
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	expected := FromTerms[rational.Rational, PlainTraits[rational.Rational]](symbol.NewSet("x"),
		series.NewTerm(rational.New(3, 2), trig.Sine(2)))
	//
	if !actual.Equal(expected) {
		t.Errorf("expected %s, got %s", expected.String(), actual.String())
	}
	//
	if !actual.Partial("x").Equal(r) {
		t.Errorf("expected %s, got %s", r.String(), actual.Partial("x").String())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func one() polynomial.Polynomial {
	return constantPoly(1)
}

func constantPoly(n int64) polynomial.Polynomial {
	return polynomial.Constant(rational.FromInt64(n))
}

// x^(num/den)
func power(num, den int64) polynomial.Polynomial {
	return polynomial.New(symbol.NewSet("x"), series.NewTerm(rational.One(),
		polynomial.NewMonomial(rational.New(num, den))))
}

func constant(p polynomial.Polynomial) polySeries {
	return FromCoefficient[polynomial.Polynomial, PolynomialTraits](p)
}

func term(cf polynomial.Polynomial, key trig.Key) Term[polynomial.Polynomial] {
	return series.NewTerm(cf, key)
}

func terms(symbols symbol.Set, ts ...Term[polynomial.Polynomial]) polySeries {
	return FromTerms[polynomial.Polynomial, PolynomialTraits](symbols, ts...)
}

func sin(t *testing.T, s polySeries) polySeries {
	t.Helper()
	//
	r, err := s.Sin()
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return r
}

func cos(t *testing.T, s polySeries) polySeries {
	t.Helper()
	//
	r, err := s.Cos()
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return r
}

func subs(t *testing.T, s polySeries, name string, value polynomial.Polynomial) polySeries {
	t.Helper()
	//
	r, err := s.Subs(name, value)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return r
}

func integrate(t *testing.T, s polySeries, name string) polySeries {
	t.Helper()
	//
	r, err := s.Integrate(name)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return r
}

func checkError[T Traits[polynomial.Polynomial]](t *testing.T, s Series[polynomial.Polynomial, T], name string,
	expected error) {
	t.Helper()
	//
	if r, err := s.Integrate(name); !errors.Is(err, expected) {
		t.Errorf("expected error \"%v\", got \"%v\" (%s)", expected, err, r.String())
	}
}

func checkString(t *testing.T, s polySeries, expected string) {
	t.Helper()
	//
	if actual := s.String(); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func checkEqual(t *testing.T, actual polySeries, expected polySeries) {
	t.Helper()
	//
	if !actual.Equal(expected) {
		t.Errorf("expected %s, got %s", expected.String(), actual.String())
	}
}

func checkInt(t *testing.T, actual int64, expected int64) {
	t.Helper()
	//
	if actual != expected {
		t.Errorf("expected %d, got %d", expected, actual)
	}
}
