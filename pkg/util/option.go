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
package util

// Option is a value which may be absent.  The zero value is absent.  Options
// are used where absence is an expected outcome rather than an error, such as
// when checking whether a value has some particular shape.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs an option which holds a value.
func Some[T any](val T) Option[T] {
	return Option[T]{val, true}
}

// None constructs an option which doesn't hold a value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value held by this option, along with whether or not it is
// present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the value held by this option, or panics if it is absent.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("cannot unwrap an absent option")
	}
	//
	return o.value
}
