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
package symbol

import (
	"slices"
	"strings"

	"github.com/consensys/go-poisson/pkg/util/collection/set"
)

// Symbol is an immutable name identifying a variable.  Symbols are ordered and
// compared by name.
type Symbol string

// Name returns the name of this symbol.
func (s Symbol) Name() string {
	return string(s)
}

// Cmp implements a total order over symbols.
func (s Symbol) Cmp(other Symbol) int {
	return strings.Compare(string(s), string(other))
}

// Set is an ordered, duplicate-free sequence of symbols which defines the
// "arity context" against which the keys of a series are interpreted.  For
// example, the ith exponent of a monomial key refers to the ith symbol of the
// enclosing set.  Sets are immutable: Add and Remove return fresh sets.  The
// zero value is the empty set.
type Set struct {
	symbols set.SortedSet[Symbol]
}

// NewSet constructs a symbol set from zero or more names, which need not be
// sorted or unique.
func NewSet(names ...string) Set {
	symbols := make([]Symbol, len(names))
	//
	for i, n := range names {
		symbols[i] = Symbol(n)
	}
	//
	return Set{set.NewSortedSet(symbols...)}
}

// Len returns the number of symbols in this set.
func (p Set) Len() uint {
	return uint(len(p.symbols))
}

// Nth returns the nth symbol of this set.
func (p Set) Nth(index uint) Symbol {
	return p.symbols[index]
}

// Contains checks whether a given name is in this set.
func (p Set) Contains(name string) bool {
	return p.symbols.Contains(Symbol(name))
}

// Index returns the position of a given name within this set, or false if it
// is not contained.
func (p Set) Index(name string) (uint, bool) {
	i, ok := p.symbols.Find(Symbol(name))
	return uint(i), ok
}

// Add returns a copy of this set with the given name added.  If the name is
// already present, the returned set equals this one.
func (p Set) Add(name string) Set {
	return Set{p.symbols.With(Symbol(name))}
}

// Remove returns a copy of this set without the given name.  This is a no-op
// when the name is not present.
func (p Set) Remove(name string) Set {
	return Set{p.symbols.Without(Symbol(name))}
}

// Union returns the set of all symbols contained in either this set or the
// other.
func (p Set) Union(other Set) Set {
	return Set{p.symbols.Union(other.symbols)}
}

// Equals checks whether two sets contain exactly the same symbols.
func (p Set) Equals(other Set) bool {
	return slices.Equal(p.symbols, other.symbols)
}

// Names returns the names of all symbols in this set, in order.
func (p Set) Names() []string {
	names := make([]string, len(p.symbols))
	//
	for i, s := range p.symbols {
		names[i] = string(s)
	}
	//
	return names
}

// Mask returns, for each symbol in this set, whether or not its name is one of
// the given names.  This is used to restrict degree computations to a subset
// of symbols.
func (p Set) Mask(names []string) []bool {
	mask := make([]bool, len(p.symbols))
	//
	for _, n := range names {
		if i, ok := p.Index(n); ok {
			mask[i] = true
		}
	}
	//
	return mask
}

func (p Set) String() string {
	return "{" + strings.Join(p.Names(), ",") + "}"
}
