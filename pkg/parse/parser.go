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
	"unicode"

	"github.com/consensys/go-poisson/pkg/rational"
	"github.com/consensys/go-poisson/pkg/util/source"
	"github.com/consensys/go-poisson/pkg/util/source/sexp"
)

// Algebra determines how the values of parsed expressions are constructed.
type Algebra[V any] interface {
	// Constant constructs a constant value.
	Constant(rational.Rational) V
	// Variable constructs the value of a named symbol.
	Variable(string) V
	// Add two values.
	Add(V, V) V
	// Sub two values.
	Sub(V, V) V
	// Mul two values.
	Mul(V, V) V
	// Neg a value.
	Neg(V) V
	// Pow raises a value to a given power.
	Pow(V, rational.Rational) (V, error)
	// Sin returns the sine of a value.
	Sin(V) (V, error)
	// Cos returns the cosine of a value.
	Cos(V) (V, error)
}

// Parser is responsible for parsing S-expressions into values of a given
// algebra.  The following forms are recognised: integer and rational literals
// (e.g. "2" or "1/3"); symbol names; (+ e1 ... en); (- e) and (- e1 ... en);
// (* e1 ... en); (^ e n); (cos e) and (sin e).
type Parser[V any] struct {
	// Maps S-Expressions to their spans in the original source file.  This is
	// used for reporting syntax errors.
	srcmap *source.Map[sexp.SExp]
	// Determines how values are constructed
	algebra Algebra[V]
}

// NewParser constructs a new parser for a given source map.
func NewParser[V any](srcmap *source.Map[sexp.SExp], algebra Algebra[V]) *Parser[V] {
	return &Parser[V]{srcmap, algebra}
}

// Parse a given S-expression into a value, or produce a syntax error.
func (p *Parser[V]) Parse(expr sexp.SExp) (V, *source.SyntaxError) {
	var value V
	//
	switch e := expr.(type) {
	case *sexp.Symbol:
		return p.parseSymbol(e)
	case *sexp.List:
		return p.parseList(e)
	default:
		return value, p.srcmap.SyntaxError(expr, "unknown term")
	}
}

func (p *Parser[V]) parseSymbol(symbol *sexp.Symbol) (V, *source.SyntaxError) {
	var value V
	//
	switch {
	case isNumeric(symbol.Value):
		r, err := rational.Parse(symbol.Value)
		//
		if err != nil {
			return value, p.srcmap.WrapError(symbol, err)
		}
		//
		return p.algebra.Constant(r), nil
	case isIdentifier(symbol.Value):
		return p.algebra.Variable(symbol.Value), nil
	default:
		return value, p.srcmap.SyntaxError(symbol, "invalid symbol")
	}
}

func (p *Parser[V]) parseList(list *sexp.List) (V, *source.SyntaxError) {
	var value V
	//
	if list.Len() <= 1 {
		return value, p.srcmap.SyntaxError(list, "malformed expression")
	} else if list.Get(0).AsSymbol() == nil {
		return value, p.srcmap.SyntaxError(list.Get(0), "expected operator")
	}
	//
	args := list.Elements[1:]
	//
	switch list.Head() {
	case "+":
		return p.foldList(args, p.algebra.Add)
	case "-":
		if len(args) == 1 {
			return p.parseUnary(list, p.algebra.Neg)
		}
		//
		return p.foldList(args, p.algebra.Sub)
	case "*":
		return p.foldList(args, p.algebra.Mul)
	case "^":
		return p.parsePow(list)
	case "cos":
		return p.parseFunction(list, p.algebra.Cos)
	case "sin":
		return p.parseFunction(list, p.algebra.Sin)
	default:
		return value, p.srcmap.SyntaxError(list.Get(0), "unknown operator")
	}
}

func (p *Parser[V]) parseUnary(list *sexp.List, op func(V) V) (V, *source.SyntaxError) {
	arg, err := p.Parse(list.Get(1))
	//
	if err != nil {
		return arg, err
	}
	//
	return op(arg), nil
}

func (p *Parser[V]) parseFunction(list *sexp.List, fn func(V) (V, error)) (V, *source.SyntaxError) {
	var value V
	//
	if list.Len() != 2 {
		return value, p.srcmap.SyntaxError(list, "expected exactly one argument")
	}
	//
	arg, err := p.Parse(list.Get(1))
	//
	if err != nil {
		return arg, err
	}
	//
	value, e := fn(arg)
	//
	if e != nil {
		return value, p.srcmap.WrapError(list, e)
	}
	//
	return value, nil
}

func (p *Parser[V]) parsePow(list *sexp.List) (V, *source.SyntaxError) {
	var value V
	//
	if list.Len() != 3 {
		return value, p.srcmap.SyntaxError(list, "expected exactly two arguments")
	}
	//
	base, err := p.Parse(list.Get(1))
	//
	if err != nil {
		return base, err
	}
	//
	exponent := list.Get(2).AsSymbol()
	//
	if exponent == nil || !isNumeric(exponent.Value) {
		return value, p.srcmap.SyntaxError(list.Get(2), "expected numeric exponent")
	}
	//
	n, e := rational.Parse(exponent.Value)
	//
	if e != nil {
		return value, p.srcmap.WrapError(list.Get(2), e)
	}
	//
	if value, e = p.algebra.Pow(base, n); e != nil {
		return value, p.srcmap.WrapError(list, e)
	}
	//
	return value, nil
}

func (p *Parser[V]) foldList(elements []sexp.SExp, op func(V, V) V) (V, *source.SyntaxError) {
	var res V
	// Fold over each element
	for i := 0; i < len(elements); i++ {
		if value, err := p.Parse(elements[i]); err != nil {
			return res, err
		} else if i == 0 {
			res = value
		} else {
			res = op(res, value)
		}
	}
	//
	return res, nil
}

func isNumeric(s string) bool {
	runes := []rune(s)
	//
	if len(runes) > 1 && runes[0] == '-' {
		runes = runes[1:]
	}
	//
	return len(runes) > 0 && unicode.IsDigit(runes[0])
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	//
	return len(s) > 0
}
