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
package cmd

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-poisson/pkg/field"
	"github.com/consensys/go-poisson/pkg/parse"
	"github.com/consensys/go-poisson/pkg/polynomial"
	"github.com/consensys/go-poisson/pkg/symbolic"
	"github.com/consensys/go-poisson/pkg/util/termio"
)

// errFieldDegree signals an attempt to compute the (polynomial) degree of a
// series whose coefficients are field elements.
var errFieldDegree = errors.New("degree requires polynomial coefficients")

// Parse a series, apply an operation and return its printed outcome.
func transform[S fmt.Stringer](read func(string) (S, error), text string, op func(S) (S, error)) (string, error) {
	s, err := read(text)
	if err != nil {
		return "", err
	}
	//
	r, err := op(s)
	if err != nil {
		return "", err
	}
	//
	return r.String(), nil
}

// Apply an operation either to a series with polynomial coefficients, or to
// one with field coefficients.
func apply(text string, useField bool, polyOp func(parse.PolySeries) (parse.PolySeries, error),
	fieldOp func(parse.FieldSeries) (parse.FieldSeries, error)) (string, error) {
	if useField {
		return transform(parse.Field, text, fieldOp)
	}
	//
	return transform(parse.Poisson, text, polyOp)
}

func evalTrig(text string, cosine bool, useField bool) (string, error) {
	if cosine {
		return apply(text, useField, symbolic.Cos[parse.PolySeries], symbolic.Cos[parse.FieldSeries])
	}
	//
	return apply(text, useField, symbolic.Sin[parse.PolySeries], symbolic.Sin[parse.FieldSeries])
}

func evalSubs(text string, name string, value string, useField bool) (string, error) {
	if useField {
		x, err := field.Parse(value)
		if err != nil {
			return "", err
		}
		//
		return transform(parse.Field, text, func(s parse.FieldSeries) (parse.FieldSeries, error) {
			return symbolic.Subs(s, name, x)
		})
	}
	//
	x, err := parse.Polynomial(value)
	if err != nil {
		return "", err
	}
	//
	return transform(parse.Poisson, text, func(s parse.PolySeries) (parse.PolySeries, error) {
		return symbolic.Subs(s, name, x)
	})
}

func evalIpowSubs(text string, name string, n *big.Int, value string, useField bool) (string, error) {
	if useField {
		x, err := field.Parse(value)
		if err != nil {
			return "", err
		}
		//
		return transform(parse.Field, text, func(s parse.FieldSeries) (parse.FieldSeries, error) {
			return symbolic.IpowSubs(s, name, n, x)
		})
	}
	//
	x, err := parse.Polynomial(value)
	if err != nil {
		return "", err
	}
	//
	return transform(parse.Poisson, text, func(s parse.PolySeries) (parse.PolySeries, error) {
		return symbolic.IpowSubs(s, name, n, x)
	})
}

func evalIntegrate(text string, name string, useField bool) (string, error) {
	return apply(text, useField,
		func(s parse.PolySeries) (parse.PolySeries, error) {
			return symbolic.Integrate(s, name)
		},
		func(s parse.FieldSeries) (parse.FieldSeries, error) {
			return symbolic.Integrate(s, name)
		})
}

func evalPartial(text string, name string, useField bool) (string, error) {
	return apply(text, useField,
		func(s parse.PolySeries) (parse.PolySeries, error) {
			return symbolic.Partial(s, name), nil
		},
		func(s parse.FieldSeries) (parse.FieldSeries, error) {
			return symbolic.Partial(s, name), nil
		})
}

// Determine the (polynomial) degree and low degree of a series, optionally
// restricted to a given set of symbols.
func evalDegree(text string, names []string, useField bool) (string, error) {
	if useField {
		return "", errFieldDegree
	}
	//
	s, err := parse.Poisson(text)
	if err != nil {
		return "", err
	}
	//
	view := symbolic.PolynomialDegrees(s)
	names = normalise(names)
	//
	return fmt.Sprintf("degree %s, low degree %s", symbolic.Degree(view, names...).String(),
		symbolic.LDegree(view, names...).String()), nil
}

// Determine the harmonic degree and low degree of a series, optionally
// restricted to a given set of symbols.
func evalHDegree(text string, names []string, useField bool) (string, error) {
	names = normalise(names)
	//
	if useField {
		s, err := parse.Field(text)
		if err != nil {
			return "", err
		}
		//
		return fmt.Sprintf("hdegree %d, low hdegree %d", symbolic.HDegree(s, names...),
			symbolic.HLDegree(s, names...)), nil
	}
	//
	s, err := parse.Poisson(text)
	if err != nil {
		return "", err
	}
	//
	return fmt.Sprintf("hdegree %d, low hdegree %d", symbolic.HDegree(s, names...),
		symbolic.HLDegree(s, names...)), nil
}

// Tabulate the terms of a series, with one row per term.  The coefficient
// column is limited by the given width (where zero means unbounded).
func evalTerms(text string, width uint) (*termio.TablePrinter, error) {
	s, err := parse.Poisson(text)
	if err != nil {
		return nil, err
	}
	//
	table := termio.NewTablePrinter("coefficient", "trigonometric", "degree", "hdegree")
	//
	for i, t := range s.Terms() {
		table.AddRow(t.Coefficient.String(), t.Key.Format(s.Symbols()), t.Coefficient.Degree().String(),
			fmt.Sprintf("%d", t.Key.HDegree()))
		// Distinguish sines from cosines
		colour := termio.TERM_YELLOW
		if t.Key.Flavour() {
			colour = termio.TERM_BLUE
		}
		//
		table.SetEscape(1, uint(i+1), termio.NewAnsiEscape().FgColour(colour).Build())
	}
	//
	if width != 0 {
		table.SetMaxWidth(0, width/2)
	}
	//
	return table, nil
}

// An empty list of names means no restriction, rather than restriction to the
// empty set of symbols.
func normalise(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	//
	return names
}

// Parse a power given on the command line.
func parsePower(text string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("invalid power \"%s\": %w", text, polynomial.ErrInvalidPower)
	}
	//
	return n, nil
}
