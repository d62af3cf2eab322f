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
	"unicode"

	"github.com/consensys/go-poisson/pkg/util/source"
)

// Parse a source file holding exactly one S-expression, or return an error if
// it is malformed.  A source map is also returned, which identifies the span
// of every S-expression in the original text for error reporting.
func Parse(s *source.File) (SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(s)
	// Parse the input
	sExp, err := p.Parse()
	// Sanity check everything was parsed
	if err == nil {
		p.skipWhiteSpace()
		//
		if sExp == nil {
			return nil, nil, p.error("unexpected end-of-file")
		} else if p.index != len(p.text) {
			return nil, nil, p.error("unexpected remainder")
		}
	}
	// Done
	return sExp, p.srcmap, err
}

// Parser represents a parser in the process of parsing a given string into one
// or more S-expressions.  Comments run from ';' to the end of the line.
type Parser struct {
	srcfile *source.File
	text    []rune
	// Current position within text
	index int
	// Spans of constructed S-Expressions in the original text.
	srcmap *source.Map[SExp]
}

// NewParser constructs a new instance of Parser
func NewParser(srcfile *source.File) *Parser {
	return &Parser{
		srcfile: srcfile,
		text:    srcfile.Contents(),
		srcmap:  source.NewSourceMap[SExp](*srcfile),
	}
}

// Parse the next S-expression, returning nil at the end of the input.
func (p *Parser) Parse() (SExp, *source.SyntaxError) {
	var term SExp
	// Skip whitespace first, so the span starts at the term itself.
	p.skipWhiteSpace()
	//
	start := p.index
	//
	switch c, ok := p.peek(); {
	case !ok:
		return nil, nil
	case c == ')':
		return nil, p.error("unexpected end-of-list")
	case c == '(':
		p.index++
		//
		elements, err := p.parseSequence(')')
		if err != nil {
			return nil, err
		}
		//
		term = &List{elements}
	default:
		term = &Symbol{string(p.parseSymbol())}
	}
	// Register item in source map
	p.srcmap.Put(term, source.NewSpan(start, p.index))
	//
	return term, nil
}

// Skip over any whitespace and comments.
func (p *Parser) skipWhiteSpace() {
	for p.index < len(p.text) {
		switch c := p.text[p.index]; {
		case c == ';':
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		case unicode.IsSpace(c):
			p.index++
		default:
			return
		}
	}
}

// Peek at the next character which is not whitespace or a comment.
func (p *Parser) peek() (rune, bool) {
	p.skipWhiteSpace()
	//
	if p.index < len(p.text) {
		return p.text[p.index], true
	}
	//
	return 0, false
}

func (p *Parser) parseSymbol() []rune {
	start := p.index
	//
	for p.index < len(p.text) && isSymbolLetter(p.text[p.index]) {
		p.index++
	}
	//
	return p.text[start:p.index]
}

func (p *Parser) parseSequence(terminator rune) ([]SExp, *source.SyntaxError) {
	var elements []SExp
	//
	for {
		if c, ok := p.peek(); !ok {
			return nil, p.error("unexpected end-of-file")
		} else if c == terminator {
			p.index++
			return elements, nil
		}
		//
		element, err := p.Parse()
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
	}
}

// Construct a parser error at the current position in the input stream.
func (p *Parser) error(msg string) *source.SyntaxError {
	end := min(p.index+1, len(p.text))
	start := min(p.index, end)
	//
	return p.srcfile.SyntaxError(source.NewSpan(start, end), msg)
}

func isSymbolLetter(r rune) bool {
	return r != '(' && r != ')' && r != ';' && !unicode.IsSpace(r)
}
