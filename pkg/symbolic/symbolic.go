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
package symbolic

import (
	"math/big"

	"github.com/consensys/go-poisson/pkg/polynomial"
	"github.com/consensys/go-poisson/pkg/power"
	"github.com/consensys/go-poisson/pkg/rational"
	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/trig"
)

// Transcendental captures values with a sine and cosine.
type Transcendental[T any] interface {
	Sin() (T, error)
	Cos() (T, error)
}

// Substitutable captures values in which a symbol can be substituted with a
// value of type X.
type Substitutable[T any, X any] interface {
	Subs(name string, x X) (T, error)
}

// PowerSubstitutable captures values in which an integral power of a symbol
// can be substituted with a value of type X.
type PowerSubstitutable[T any, X any] interface {
	IpowSubs(name string, n *big.Int, x X) (T, error)
}

// Integrable captures values which can be integrated with respect to a symbol.
type Integrable[T any] interface {
	Integrate(name string) (T, error)
}

// Differentiable captures values which can be differentiated with respect to
// a symbol.
type Differentiable[T any] interface {
	Partial(name string) T
}

// Graded captures values with a (polynomial) degree.
type Graded interface {
	Degree() rational.Rational
	LDegree() rational.Rational
	PartialDegree(names ...string) rational.Rational
	PartialLDegree(names ...string) rational.Rational
}

// Harmonic captures values with a harmonic degree, i.e. Poisson series.
type Harmonic interface {
	HDegree() int64
	HLDegree() int64
	PartialHDegree(names ...string) int64
	PartialHLDegree(names ...string) int64
}

// Sin returns the sine of a value.
func Sin[T Transcendental[T]](v T) (T, error) {
	return v.Sin()
}

// Cos returns the cosine of a value.
func Cos[T Transcendental[T]](v T) (T, error) {
	return v.Cos()
}

// Subs substitutes a named symbol with a value.
func Subs[T Substitutable[T, X], X any](v T, name string, x X) (T, error) {
	return v.Subs(name, x)
}

// IpowSubs substitutes a named symbol raised to the power n with a value.
func IpowSubs[T PowerSubstitutable[T, X], X any](v T, name string, n *big.Int, x X) (T, error) {
	return v.IpowSubs(name, n, x)
}

// Integrate a value with respect to a named symbol.
func Integrate[T Integrable[T]](v T, name string) (T, error) {
	return v.Integrate(name)
}

// Partial differentiates a value with respect to a named symbol.
func Partial[T Differentiable[T]](v T, name string) T {
	return v.Partial(name)
}

// Degree returns the degree of a value, optionally restricted to a set of
// symbols.
func Degree[T Graded](v T, names ...string) rational.Rational {
	if names == nil {
		return v.Degree()
	}
	//
	return v.PartialDegree(names...)
}

// LDegree returns the low degree of a value, optionally restricted to a set of
// symbols.
func LDegree[T Graded](v T, names ...string) rational.Rational {
	if names == nil {
		return v.LDegree()
	}
	//
	return v.PartialLDegree(names...)
}

// HDegree returns the harmonic degree of a value, optionally restricted to a
// set of symbols.
func HDegree[T Harmonic](v T, names ...string) int64 {
	if names == nil {
		return v.HDegree()
	}
	//
	return v.PartialHDegree(names...)
}

// HLDegree returns the harmonic low degree of a value, optionally restricted
// to a set of symbols.
func HLDegree[T Harmonic](v T, names ...string) int64 {
	if names == nil {
		return v.HLDegree()
	}
	//
	return v.PartialHLDegree(names...)
}

// Based captures Poisson series whose coefficients are polynomials, exposing
// their underlying series.
type Based interface {
	Base() *series.Series[polynomial.Polynomial, trig.Key]
}

// PolynomialDegrees views a Poisson series with polynomial coefficients as a
// graded value, where the degree of a term is that of its coefficient.
func PolynomialDegrees[S Based](s S) power.Series[polynomial.Polynomial, trig.Key,
	power.CoefficientOnly[polynomial.Polynomial, trig.Key]] {
	return power.Of[power.CoefficientOnly[polynomial.Polynomial, trig.Key]](s.Base())
}
