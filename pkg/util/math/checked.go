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
package math

import (
	"math"
)

// AddInt64 adds two signed integers, returning false if the result overflows.
func AddInt64(x, y int64) (int64, bool) {
	r := x + y
	// Overflow happens iff both operands have the same sign, and the result a
	// different one.
	if (x >= 0) == (y >= 0) && (r >= 0) != (x >= 0) {
		return 0, false
	}
	//
	return r, true
}

// SubInt64 subtracts two signed integers, returning false if the result
// overflows.
func SubInt64(x, y int64) (int64, bool) {
	if y == math.MinInt64 {
		if x >= 0 {
			return 0, false
		}
		//
		return x - y, true
	}
	//
	return AddInt64(x, -y)
}

// NegInt64 negates a signed integer, returning false if the result overflows.
func NegInt64(x int64) (int64, bool) {
	if x == math.MinInt64 {
		return 0, false
	}
	//
	return -x, true
}

// AbsInt64 returns the absolute value of a signed integer, returning false if
// the result overflows.
func AbsInt64(x int64) (int64, bool) {
	if x < 0 {
		return NegInt64(x)
	}
	//
	return x, true
}
