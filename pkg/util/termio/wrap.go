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

// Wrap splits a printed sum across lines of at most the given width.  Lines
// are only broken before a top-level "+" or "-" (i.e. one which is not nested
// within brackets, and not the sign of an exponent or factor), hence a single
// term wider than the limit occupies a line of its own.  A width of zero means
// unbounded.
func Wrap(text string, width uint) []string {
	if width == 0 || uint(len(text)) <= width {
		return []string{text}
	}
	//
	var (
		lines []string
		line  string
	)
	//
	for _, segment := range segments(text) {
		if line != "" && uint(len(line)+len(segment)) > width {
			lines = append(lines, line)
			line = ""
		}
		//
		line += segment
	}
	//
	return append(lines, line)
}

// Split a sum into its top-level summands, where each summand (except the
// first) retains its leading sign.
func segments(text string) []string {
	var (
		result []string
		depth  int
		start  int
	)
	//
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '+', '-':
			if depth == 0 && i > start && !isOperator(text[i-1]) {
				result = append(result, text[start:i])
				start = i
			}
		}
	}
	//
	return append(result, text[start:])
}

func isOperator(c byte) bool {
	return c == '^' || c == '*' || c == '/' || c == '+' || c == '-'
}
