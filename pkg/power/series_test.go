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
package power_test

import (
	"math/big"
	"testing"

	"github.com/consensys/go-poisson/pkg/polynomial"
	"github.com/consensys/go-poisson/pkg/power"
	"github.com/consensys/go-poisson/pkg/rational"
	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/trig"
)

type (
	keyOnly  = power.KeyOnly[rational.Rational, polynomial.Monomial]
	cfOnly   = power.CoefficientOnly[polynomial.Polynomial, trig.Key]
	combined = power.Both[polynomial.Polynomial, polynomial.Monomial]
)

var (
	x = polynomial.Variable("x")
	y = polynomial.Variable("y")
	a = polynomial.Variable("a")
)

func Test_Degree_01(t *testing.T) {
	// Empty series have zero degree, irrespective of strategy
	empty1 := power.New[rational.Rational, polynomial.Monomial, keyOnly](symbol.NewSet("x"))
	empty2 := power.New[polynomial.Polynomial, trig.Key, cfOnly](symbol.NewSet("x"))
	empty3 := power.New[polynomial.Polynomial, polynomial.Monomial, combined](symbol.Set{})
	//
	for _, d := range []rational.Rational{empty1.Degree(), empty1.LDegree(), empty2.Degree(), empty2.LDegree(),
		empty3.Degree(), empty3.LDegree(), empty3.PartialDegree("x"), empty3.PartialLDegree("x")} {
		checkDegree(t, d, 0, 1)
	}
}

func Test_Degree_02(t *testing.T) {
	xy := symbol.NewSet("x", "y")
	s := power.Of[keyOnly](series.FromTerms(xy,
		series.NewTerm(rational.FromInt64(3), polynomial.NewMonomial(rational.FromInt64(2), rational.One())),
		series.NewTerm(rational.FromInt64(-1), polynomial.NewMonomial(rational.One(), rational.Zero())),
		series.NewTerm(rational.One(), polynomial.NewMonomial(rational.Zero(), rational.New(1, 2)))))
	//
	checkDegree(t, s.Degree(), 3, 1)
	checkDegree(t, s.LDegree(), 1, 2)
	checkDegree(t, s.PartialDegree("x"), 2, 1)
	checkDegree(t, s.PartialLDegree("x"), 0, 1)
	checkDegree(t, s.PartialDegree("y"), 1, 1)
	checkDegree(t, s.PartialLDegree("y", "x"), 1, 2)
}

func Test_Degree_03(t *testing.T) {
	s := power.Of[cfOnly](series.FromTerms(symbol.NewSet("x"),
		series.NewTerm(x.Pow(2).Add(y), trig.Cosine(1)),
		series.NewTerm(y, trig.Sine(1))))
	// Trigonometric keys do not contribute
	checkDegree(t, s.Degree(), 2, 1)
	checkDegree(t, s.LDegree(), 1, 1)
	checkDegree(t, s.PartialDegree("y"), 1, 1)
	checkDegree(t, s.PartialLDegree("x"), 0, 1)
}

func Test_Degree_04(t *testing.T) {
	cf := a.Pow(2).Add(a.Scale(big.NewRat(5, 1)))
	s := power.Of[combined](series.FromTerms(symbol.NewSet("x"),
		series.NewTerm(cf, polynomial.NewMonomial(rational.FromInt64(3)))))
	//
	checkDegree(t, s.Degree(), 5, 1)
	checkDegree(t, s.LDegree(), 4, 1)
	checkDegree(t, s.PartialDegree("a"), 2, 1)
	checkDegree(t, s.PartialLDegree("a"), 1, 1)
	checkDegree(t, s.PartialDegree("x"), 3, 1)
}

func Test_Degree_05(t *testing.T) {
	// Low degree never exceeds degree
	p := x.Pow(3).Add(x.Mul(y)).Add(y.Pow(5)).Sub(x)
	s := power.Of[keyOnly](series.FromTerms(p.Symbols(), p.Terms()...))
	//
	if s.LDegree().Cmp(s.Degree()) > 0 {
		t.Errorf("low degree %s exceeds degree %s", s.LDegree().String(), s.Degree().String())
	}
}

func checkDegree(t *testing.T, actual rational.Rational, num, den int64) {
	t.Helper()
	//
	if expected := rational.New(num, den); !actual.Equal(expected) {
		t.Errorf("expected degree %s, got %s", expected.String(), actual.String())
	}
}
