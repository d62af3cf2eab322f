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
	"testing"

	"github.com/consensys/go-poisson/pkg/polynomial"
	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/util/source"
)

func Test_Polynomial_01(t *testing.T) {
	checkPolynomial(t, "x", "x")
	checkPolynomial(t, "-3/4", "-3/4")
	checkPolynomial(t, "(+ (* 2 x) (- y) 1/2)", "1/2-y+2*x")
	checkPolynomial(t, "(- x y x)", "-y")
	checkPolynomial(t, "(* (+ x 1) (- x 1))", "-1+x^2")
	checkPolynomial(t, "(^ (+ x 1) 2)", "1+2*x+x^2")
}

func Test_Polynomial_02(t *testing.T) {
	checkPolynomial(t, "(^ x 1/2)", "x^(1/2)")
	checkPolynomial(t, "(^ x -1)", "x^-1")
	checkPolynomial(t, "(* (^ x -1) x)", "1")
	checkPolynomial(t, "(^ y 0)", "1")
}

func Test_Poisson_01(t *testing.T) {
	checkPoisson(t, "(* y (cos (+ x z)))", "y*cos(x+z)")
	checkPoisson(t, "(sin (- x))", "-sin(x)")
	checkPoisson(t, "(cos (- (* 2 y) x))", "cos(x-2*y)")
	checkPoisson(t, "(^ (cos x) 2)", "1/2+1/2*cos(2*x)")
	checkPoisson(t, "(+ (^ (cos x) 2) (^ (sin x) 2))", "1")
	checkPoisson(t, "(* (- x 1) (sin x))", "(-1+x)*sin(x)")
}

func Test_Poisson_02(t *testing.T) {
	checkPoisson(t, "(^ x 1/2)", "x^(1/2)")
	checkPoisson(t, "(cos 0)", "1")
	checkPoisson(t, "(sin 0)", "0")
}

func Test_Invalid_01(t *testing.T) {
	checkInvalid(t, "")
	checkInvalid(t, "(+ x")
	checkInvalid(t, "x y")
	checkInvalid(t, "$")
	checkInvalid(t, "(foo x)")
	checkInvalid(t, "(+)")
	checkInvalid(t, "((+) x)")
	checkInvalid(t, "(^ x y)")
	checkInvalid(t, "(^ x)")
	checkInvalid(t, "(^ (+ x y) -1)")
	checkInvalid(t, "(^ (cos x) 1/2)")
	checkInvalid(t, "(cos x y)")
	checkInvalid(t, "(cos (* x x))")
	checkInvalid(t, "(sin 1)")
}

func Test_Field_01(t *testing.T) {
	s, err := Field("(+ (* 3 (cos x)) (* 1/2 (sin (+ x y))))")
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if s.Len() != 2 || s.HDegree() != 2 || s.HLDegree() != 1 {
		t.Errorf("unexpected field series %s", s.String())
	}
	//
	if _, err := Field("(* x (cos x))"); !errors.Is(err, ErrNotConstant) {
		t.Errorf("expected non-constant coefficient error, got %v", err)
	}
}

func Test_Errors_01(t *testing.T) {
	if _, err := Polynomial("(^ (+ x y) -1)"); !errors.Is(err, polynomial.ErrInvalidPower) {
		t.Errorf("expected invalid power error, got %v", err)
	}
	//
	if _, err := Poisson("(cos (* x x))"); !errors.Is(err, series.ErrNotEvaluable) {
		t.Errorf("expected not evaluable error, got %v", err)
	}
}

func Test_Errors_02(t *testing.T) {
	var serr *source.SyntaxError
	//
	_, err := Poisson("(+ x\n   (^ y z))")
	//
	if !errors.As(err, &serr) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	//
	line := serr.FirstEnclosingLine()
	//
	if line.Number() != 2 || line.String() != "   (^ y z))" {
		t.Errorf("unexpected line %d: %s", line.Number(), line.String())
	} else if err.Error() != "<input>:2:9-10: expected numeric exponent" {
		t.Errorf("unexpected message %s", err.Error())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkPolynomial(t *testing.T, input string, expected string) {
	t.Helper()
	//
	p, err := Polynomial(input)
	//
	if err != nil {
		t.Errorf("unexpected error parsing %s: %v", input, err)
	} else if actual := p.String(); actual != expected {
		t.Errorf("parsing %s: expected %s, got %s", input, expected, actual)
	}
}

func checkPoisson(t *testing.T, input string, expected string) {
	t.Helper()
	//
	s, err := Poisson(input)
	//
	if err != nil {
		t.Errorf("unexpected error parsing %s: %v", input, err)
	} else if actual := s.String(); actual != expected {
		t.Errorf("parsing %s: expected %s, got %s", input, expected, actual)
	}
}

func checkInvalid(t *testing.T, input string) {
	t.Helper()
	//
	if _, err := Poisson(input); err == nil {
		t.Errorf("expected error parsing %s", input)
	}
}
