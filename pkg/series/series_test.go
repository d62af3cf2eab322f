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
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"testing"

	"github.com/consensys/go-poisson/pkg/rational"
	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/consensys/go-poisson/pkg/util/collection/hash"
)

type testSeries = Series[rational.Rational, testKey]

func Test_Series_01(t *testing.T) {
	s := New[rational.Rational, testKey](symbol.NewSet("x", "y"))
	s.Insert(rational.FromInt64(2), newKey(1, 0))
	s.Insert(rational.FromInt64(3), newKey(0, 1))
	s.Insert(rational.FromInt64(-2), newKey(1, 0))
	// Cancellation removes the term entirely
	checkSeries(t, s, "3*y")
	//
	if s.Len() != 1 {
		t.Errorf("expected 1 term, got %d", s.Len())
	}
}

func Test_Series_02(t *testing.T) {
	x := variable("x")
	y := variable("y")
	// (x+y)*(x-y) = x^2 - y^2
	checkSeries(t, x.Add(y).Mul(x.Sub(y)), "-y^2+x^2")
}

func Test_Series_03(t *testing.T) {
	x := variable("x")
	one := FromCoefficient[rational.Rational, testKey](rational.One())
	//
	if !one.IsSingleCoefficient() || x.IsSingleCoefficient() {
		t.Errorf("incorrect single coefficient check")
	}
	//
	var empty *testSeries
	//
	if !empty.IsEmpty() || !empty.IsSingleCoefficient() {
		t.Errorf("nil series should be empty")
	}
	//
	checkSeries(t, x.Add(one).Sub(x), "1")
	checkSeries(t, x.Add(one).Sub(x).Sub(one), "0")
}

func Test_Series_04(t *testing.T) {
	x := variable("x")
	y := variable("y")
	// Equality modulo symbol sets
	lhs := x.Mul(y).Sub(y.Mul(x)).Add(x)
	//
	if !lhs.Equal(x) {
		t.Errorf("expected %s to equal %s", lhs.String(), x.String())
	}
	//
	if lhs.Equal(y) {
		t.Errorf("expected %s to differ from %s", lhs.String(), y.String())
	}
}

func Test_Series_05(t *testing.T) {
	x := variable("x")
	// Receivers are never mutated by arithmetic
	_ = x.Add(x)
	_ = x.Mul(x)
	_ = x.Neg()
	checkSeries(t, x, "x")
	checkSeries(t, x.Scale(big.NewRat(1, 2)), "1/2*x")
	checkSeries(t, x.MulCoefficient(rational.New(-3, 1)), "-3*x")
}

func Test_Series_06(t *testing.T) {
	c, err := Cos(New[rational.Rational, testKey](symbol.NewSet("x")))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkSeries(t, c, "1")
	//
	s, err := Sin(New[rational.Rational, testKey](symbol.Set{}))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkSeries(t, s, "0")
}

func Test_Series_07(t *testing.T) {
	if _, err := Cos(variable("x")); !errors.Is(err, ErrNotEvaluable) {
		t.Errorf("expected cos(x) to be not evaluable, got %v", err)
	}
	//
	two := FromCoefficient[rational.Rational, testKey](rational.FromInt64(2))
	//
	if _, err := Sin(two); !errors.Is(err, rational.ErrNotEvaluable) {
		t.Errorf("expected sin(2) to be not evaluable, got %v", err)
	}
}

func Test_Series_08(t *testing.T) {
	x := variable("x")
	y := variable("y")
	terms := y.Add(x).Add(x.Mul(y)).Terms()
	keys := make([]string, len(terms))
	//
	for i, term := range terms {
		keys[i] = term.Key.String()
	}
	// Terms are enumerated in key order
	if !slices.Equal(keys, []string{"[0 1]", "[1 0]", "[1 1]"}) {
		t.Errorf("unexpected order %v", keys)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func variable(name string) *testSeries {
	s := New[rational.Rational, testKey](symbol.NewSet(name))
	s.Insert(rational.One(), newKey(1))
	//
	return s
}

func checkSeries(t *testing.T, s *testSeries, expected string) {
	t.Helper()
	//
	if actual := s.String(); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

// testKey is a minimal monomial with integer exponents.
type testKey struct {
	exps []int64
}

func newKey(exps ...int64) testKey {
	return testKey{exps}
}

func (p testKey) Equals(other testKey) bool {
	return slices.Equal(p.exps, other.exps)
}

func (p testKey) Hash() uint64 {
	words := make([]uint64, len(p.exps))
	//
	for i, e := range p.exps {
		words[i] = uint64(e)
	}
	//
	return hash.Combine(words...)
}

func (p testKey) Cmp(other testKey) int {
	return slices.Compare(p.exps, other.exps)
}

func (p testKey) Unit(symbols symbol.Set) testKey {
	return testKey{make([]int64, symbols.Len())}
}

func (p testKey) IsUnit() bool {
	return !slices.ContainsFunc(p.exps, func(e int64) bool { return e != 0 })
}

func (p testKey) Extend(from symbol.Set, to symbol.Set) testKey {
	exps := make([]int64, to.Len())
	//
	for i := range from.Len() {
		j, _ := to.Index(from.Nth(i).Name())
		exps[j] = p.exps[i]
	}
	//
	return testKey{exps}
}

func (p testKey) Multiply(other testKey) []Product[testKey] {
	exps := make([]int64, len(p.exps))
	//
	for i := range exps {
		exps[i] = p.exps[i] + other.exps[i]
	}
	//
	return []Product[testKey]{{testKey{exps}, big.NewRat(1, 1)}}
}

func (p testKey) Canonical() (testKey, Sign) {
	return p, Positive
}

func (p testKey) Format(symbols symbol.Set) string {
	var parts []string
	//
	for i, e := range p.exps {
		switch {
		case e == 1:
			parts = append(parts, symbols.Nth(uint(i)).Name())
		case e != 0:
			parts = append(parts, fmt.Sprintf("%s^%d", symbols.Nth(uint(i)).Name(), e))
		}
	}
	//
	return strings.Join(parts, "*")
}

func (p testKey) String() string {
	return fmt.Sprint(p.exps)
}
