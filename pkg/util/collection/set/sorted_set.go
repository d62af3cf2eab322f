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
package set

import (
	"cmp"
	"slices"
)

// SortedSet is an array of unique sorted values (i.e. no duplicates).  Sorted
// sets are persistent: operations which change a set return a fresh one,
// leaving the original untouched.
type SortedSet[T cmp.Ordered] []T

// NewSortedSet returns a sorted set initialised from zero or more elements,
// which need not be sorted or unique.
func NewSortedSet[T cmp.Ordered](elements ...T) SortedSet[T] {
	data := slices.Clone(elements)
	slices.Sort(data)
	//
	return slices.Compact(data)
}

// Find returns the index at which a given element occurs within this set, or
// should occur when it is not contained (in which case false is returned).
func (p SortedSet[T]) Find(element T) (int, bool) {
	return slices.BinarySearch(p, element)
}

// Contains returns true if a given element is in the set.
func (p SortedSet[T]) Contains(element T) bool {
	_, ok := p.Find(element)
	return ok
}

// With returns this set extended with a given element.
func (p SortedSet[T]) With(element T) SortedSet[T] {
	i, ok := p.Find(element)
	//
	if ok {
		return p
	}
	//
	return slices.Insert(slices.Clip(p), i, element)
}

// Without returns this set with a given element removed.
func (p SortedSet[T]) Without(element T) SortedSet[T] {
	i, ok := p.Find(element)
	//
	if !ok {
		return p
	}
	//
	return slices.Delete(slices.Clone(p), i, i+1)
}

// Union returns the set of elements contained in either this set or another.
func (p SortedSet[T]) Union(other SortedSet[T]) SortedSet[T] {
	var (
		result = make(SortedSet[T], 0, len(p)+len(other))
		i, j   int
	)
	// Merge overlap of both sets
	for i < len(p) && j < len(other) {
		switch c := cmp.Compare(p[i], other[j]); {
		case c < 0:
			result = append(result, p[i])
			i++
		case c > 0:
			result = append(result, other[j])
			j++
		default:
			result = append(result, p[i])
			i++
			j++
		}
	}
	// Handle anything left
	result = append(result, p[i:]...)
	//
	return append(result, other[j:]...)
}
