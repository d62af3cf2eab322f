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
package termio

import (
	"os"

	"golang.org/x/term"
)

// Width returns the width of the terminal attached to standard output.  If
// standard output is not a terminal (e.g. it is redirected to a file) then
// zero is returned, which signals unbounded width.
func Width() uint {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return 0
	}
	//
	w, _, err := term.GetSize(fd)
	//
	if err != nil || w <= 0 {
		return 0
	}
	//
	return uint(w)
}

// IsTerminal determines whether standard output is attached to a terminal.
// Escapes are only worth emitting when this holds.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
