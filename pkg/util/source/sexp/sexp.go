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
package sexp

import (
	"strings"
)

// SExp is an S-Expression, which is either a List of zero or more
// S-Expressions, or a Symbol.
type SExp interface {
	// AsList returns this S-Expression if it is a list, or nil otherwise.
	AsList() *List
	// AsSymbol returns this S-Expression if it is a symbol, or nil otherwise.
	AsSymbol() *Symbol
	// String returns the canonical (single spaced) text of this S-Expression.
	String() string
}

var _ SExp = (*List)(nil)
var _ SExp = (*Symbol)(nil)

// List represents a list of zero or more S-Expressions, such as "(+ x 1)".
type List struct {
	Elements []SExp
}

// AsList returns the given list.
func (l *List) AsList() *List { return l }

// AsSymbol returns nil for a list.
func (l *List) AsSymbol() *Symbol { return nil }

// Len gets the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Get the ith element of this list
func (l *List) Get(i int) SExp { return l.Elements[i] }

// Head returns the leading symbol of this list (i.e. its operator), or the
// empty string if the list is empty or does not start with a symbol.
func (l *List) Head() string {
	if len(l.Elements) == 0 {
		return ""
	} else if s := l.Elements[0].AsSymbol(); s != nil {
		return s.Value
	}
	//
	return ""
}

func (l *List) String() string {
	elements := make([]string, len(l.Elements))
	//
	for i, e := range l.Elements {
		elements[i] = e.String()
	}
	//
	return "(" + strings.Join(elements, " ") + ")"
}

// Symbol represents an atom, such as an operator, a symbol name or a numeric
// literal.
type Symbol struct {
	Value string
}

// AsList returns nil for a symbol.
func (s *Symbol) AsList() *List { return nil }

// AsSymbol returns the given symbol
func (s *Symbol) AsSymbol() *Symbol { return s }

func (s *Symbol) String() string {
	return s.Value
}
