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
package power

import (
	"github.com/consensys/go-poisson/pkg/rational"
	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/symbol"
)

// Series extends a series with degree queries, where the degree of each term
// is determined by a given strategy.  All other operations are those of the
// underlying series.
type Series[C series.Coefficient[C], K series.Key[K], S Strategy[C, K]] struct {
	*series.Series[C, K]
}

// New constructs an empty degree-capable series over a given set of symbols.
func New[C series.Coefficient[C], K series.Key[K], S Strategy[C, K]](symbols symbol.Set) Series[C, K, S] {
	return Series[C, K, S]{series.New[C, K](symbols)}
}

// Of views an existing series as a degree-capable series using a given
// strategy.  The series is not copied.
func Of[S Strategy[C, K], C series.Coefficient[C], K series.Key[K]](base *series.Series[C, K]) Series[C, K, S] {
	return Series[C, K, S]{base}
}

// Base returns the underlying series.
func (p Series[C, K, S]) Base() *series.Series[C, K] {
	return p.Series
}

// Degree returns the maximum degree of any term in this series, or zero if
// the series is empty.
func (p Series[C, K, S]) Degree() rational.Rational {
	var strategy S
	//
	return p.extremum(1, strategy.TermDegree)
}

// LDegree returns the minimum low degree of any term in this series, or zero
// if the series is empty.
func (p Series[C, K, S]) LDegree() rational.Rational {
	var strategy S
	//
	return p.extremum(-1, strategy.TermLDegree)
}

// PartialDegree returns the maximum degree of any term in this series,
// considering only the named symbols.
func (p Series[C, K, S]) PartialDegree(names ...string) rational.Rational {
	var (
		strategy S
		mask     = p.Symbols().Mask(names)
	)
	//
	return p.extremum(1, func(t series.Term[C, K]) rational.Rational {
		return strategy.TermPartialDegree(t, names, mask)
	})
}

// PartialLDegree returns the minimum low degree of any term in this series,
// considering only the named symbols.
func (p Series[C, K, S]) PartialLDegree(names ...string) rational.Rational {
	var (
		strategy S
		mask     = p.Symbols().Mask(names)
	)
	//
	return p.extremum(-1, func(t series.Term[C, K]) rational.Rational {
		return strategy.TermPartialLDegree(t, names, mask)
	})
}

// Determine the extremal degree of any term, where direction 1 selects the
// maximum and -1 the minimum.
func (p Series[C, K, S]) extremum(direction int, degree func(series.Term[C, K]) rational.Rational) rational.Rational {
	var (
		result rational.Rational
		first  = true
	)
	//
	for _, t := range p.Terms() {
		d := degree(t)
		//
		if first || d.Cmp(result) == direction {
			result = d
			first = false
		}
	}
	//
	return result
}
