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
	"github.com/consensys/go-poisson/pkg/trig"
)

// HDegree returns the harmonic degree of this series, that is the maximum over
// all terms of the sum of the absolute values of their multipliers.  The empty
// series has harmonic degree zero.
func (p Series[C, T]) HDegree() int64 {
	return p.extremum(1, trig.Key.HDegree)
}

// PartialHDegree returns the harmonic degree of this series, considering only
// the named symbols.
func (p Series[C, T]) PartialHDegree(names ...string) int64 {
	mask := p.Symbols().Mask(names)
	//
	return p.extremum(1, func(k trig.Key) int64 { return k.PartialHDegree(mask) })
}

// HLDegree returns the harmonic low degree of this series, that is the minimum
// over all terms of the sum of the absolute values of their multipliers.
func (p Series[C, T]) HLDegree() int64 {
	return p.extremum(-1, trig.Key.HDegree)
}

// PartialHLDegree returns the harmonic low degree of this series, considering
// only the named symbols.
func (p Series[C, T]) PartialHLDegree(names ...string) int64 {
	mask := p.Symbols().Mask(names)
	//
	return p.extremum(-1, func(k trig.Key) int64 { return k.PartialHDegree(mask) })
}

func (p Series[C, T]) extremum(direction int64, degree func(trig.Key) int64) int64 {
	var (
		result int64
		first  = true
	)
	//
	for _, t := range p.Terms() {
		d := degree(t.Key)
		//
		if first || (direction > 0 && d > result) || (direction < 0 && d < result) {
			result = d
			first = false
		}
	}
	//
	return result
}
