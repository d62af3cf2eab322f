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
	"fmt"
	"strings"
)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_BLUE represents blue
const TERM_BLUE = uint(4)

// AnsiEscape is an ANSI "select graphic rendition" escape, represented by its
// parameter codes.
type AnsiEscape []uint

// NewAnsiEscape construct an empty escape
func NewAnsiEscape() AnsiEscape {
	return nil
}

// ResetAnsiEscape constructs an escape which resets all attributes.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{0}
}

// BoldAnsiEscape constructs an escape which enables bold text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{1}
}

// FgColour extends this escape to set the foreground colour.
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return append(p[:len(p):len(p)], 30+col)
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	codes := make([]string, len(p))
	//
	for i, c := range p {
		codes[i] = fmt.Sprint(c)
	}
	//
	return "\033[" + strings.Join(codes, ";") + "m"
}
