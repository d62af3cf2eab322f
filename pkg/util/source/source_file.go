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
package source

import (
	"fmt"
)

// Line identifies a physical line of an expression, along with its number
// (counting from 1) and its span within the expression.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line (without its terminating newline).
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original string.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File represents a named piece of text being parsed, such as an expression
// given on the command line.
type File struct {
	filename string
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes))}
}

// Filename returns the name associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg, nil}
}

// WrapError constructs a syntax error over a given span of this file arising
// from a given error.  The error remains accessible through errors.Is and
// errors.As.
func (s *File) WrapError(span Span, cause error) *SyntaxError {
	return &SyntaxError{s, span, cause.Error(), cause}
}

// FindFirstEnclosingLine determines the line which encloses the start of a
// span.  A span starting beyond the end of the file is attributed to the last
// physical line.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	num, start := 1, 0
	//
	for i := 0; i < len(s.contents) && i < span.start; i++ {
		if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, findEndOfLine(start, s.contents)}, num}
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, along with an error message and (optionally)
// the error which caused it.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
	cause   error
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface, reporting the line and column range
// of the error.
func (p *SyntaxError) Error() string {
	line := p.FirstEnclosingLine()
	column := p.span.start - line.Start() + 1
	//
	return fmt.Sprintf("%s:%d:%d-%d: %s", p.srcfile.filename, line.Number(), column, column+p.span.Length(),
		p.msg)
}

// Unwrap returns the error which caused this syntax error (if any).
func (p *SyntaxError) Unwrap() error {
	return p.cause
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

// Find the end of the line containing a given index.
func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	//
	return len(text)
}
