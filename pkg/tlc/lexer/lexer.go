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
package lexer

import (
	"bufio"
	"errors"
	"io"
	"unicode"

	"github.com/consensys/go-tlc/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// eof is the pseudo-character returned once the input is exhausted.
const eof = -1

// States of the tokenising automaton.
type state uint

const (
	stateInitial state = iota
	// "/" seen, which is either a comment or division
	stateSlash
	stateLineComment
	stateBlockComment
	// "*" seen inside a block comment
	stateBlockCommentStar
	stateIdentifier
	stateInteger
	// integer followed by "." seen, a digit is now required
	stateFractionStart
	stateFraction
	// "=" or ">" seen, which may be followed by "="
	stateEqualsOrGreater
	// "<" seen, which may be followed by "=" or ">"
	stateLess
	stateBar
	stateAmpersand
	stateString
)

// Lexer splits a byte stream into tokens, one at a time on demand.  Each byte
// is read as a single character.  At most one character is ever pushed back
// onto the stream.
type Lexer struct {
	input *bufio.Reader
	// Current line number (counting from 1)
	line int
	// Number of characters consumed so far
	offset int
}

// NewLexer constructs a lexer reading from a given input stream.
func NewLexer(input io.Reader) *Lexer {
	return &Lexer{bufio.NewReader(input), 1, 0}
}

// Line returns the line on which the lexer is currently positioned.
func (l *Lexer) Line() int {
	return l.line
}

// Next reads the next token from the input.  Invalid input and end of input are
// reported as tokens of kind INVALID_TOKEN and END_OF_FILE respectively.  An
// error is returned only when the underlying stream cannot be read.
func (l *Lexer) Next() (Token, error) {
	var (
		st    = stateInitial
		text  []byte
		start = l.offset
	)
	//
	for {
		c, err := l.getc()
		if err != nil {
			return Token{}, err
		}
		//
		switch st {
		case stateInitial:
			start = l.offset - 1
			//
			switch {
			case c == ' ' || c == '\t' || c == '\r':
				// skip
			case c == '\n':
				l.newline()
			case c == '/':
				st = stateSlash
			case isLetter(c) || c == '_':
				text, st = append(text, byte(c)), stateIdentifier
			case isDigit(c):
				text, st = append(text, byte(c)), stateInteger
			case c == '=' || c == '>':
				text, st = append(text, byte(c)), stateEqualsOrGreater
			case c == '<':
				text, st = append(text, byte(c)), stateLess
			case c == '|':
				text, st = append(text, byte(c)), stateBar
			case c == '&':
				text, st = append(text, byte(c)), stateAmpersand
			case c == '{':
				st = stateString
			case c == eof:
				return l.token(END_OF_FILE, "", l.offset), nil
			case isSingleSymbol(c):
				return l.lookup(string(rune(c)), start), nil
			default:
				return l.token(INVALID_TOKEN, string(rune(c)), start), nil
			}
		case stateSlash:
			switch c {
			case '/':
				st = stateLineComment
			case '*':
				st = stateBlockComment
			default:
				l.ungetc(c)
				return l.lookup("/", start), nil
			}
		case stateLineComment:
			switch c {
			case '\n':
				l.newline()
				st = stateInitial
			case eof:
				return l.token(END_OF_FILE, "", l.offset), nil
			}
		case stateBlockComment, stateBlockCommentStar:
			switch {
			case c == eof:
				return l.token(END_OF_FILE, "", l.offset), nil
			case c == '*':
				st = stateBlockCommentStar
			case c == '/' && st == stateBlockCommentStar:
				st = stateInitial
			case c == '\n':
				l.newline()
				st = stateBlockComment
			default:
				st = stateBlockComment
			}
		case stateIdentifier:
			if isLetter(c) || isDigit(c) {
				text = append(text, byte(c))
			} else {
				l.ungetc(c)
				return l.lookup(string(text), start), nil
			}
		case stateInteger:
			switch {
			case isDigit(c):
				text = append(text, byte(c))
			case c == '.':
				text, st = append(text, byte(c)), stateFractionStart
			default:
				l.ungetc(c)
				return l.token(INTEGER_LITERAL, string(text), start), nil
			}
		case stateFractionStart:
			if !isDigit(c) {
				l.ungetc(c)
				return l.token(INVALID_TOKEN, string(text), start), nil
			}
			//
			text, st = append(text, byte(c)), stateFraction
		case stateFraction:
			if !isDigit(c) {
				l.ungetc(c)
				return l.token(FLOAT_LITERAL, string(text), start), nil
			}
			//
			text = append(text, byte(c))
		case stateEqualsOrGreater:
			if c == '=' {
				text = append(text, byte(c))
			} else {
				l.ungetc(c)
			}
			//
			return l.lookup(string(text), start), nil
		case stateLess:
			if c == '=' || c == '>' {
				text = append(text, byte(c))
			} else {
				l.ungetc(c)
			}
			//
			return l.lookup(string(text), start), nil
		case stateBar, stateAmpersand:
			if c == int(text[0]) {
				return l.lookup(string(append(text, byte(c))), start), nil
			}
			// A lone "|" or "&" is not part of the language
			l.ungetc(c)
			//
			return l.token(INVALID_TOKEN, string(text), start), nil
		case stateString:
			switch c {
			case '}':
				return l.token(STRING_LITERAL, string(text), start), nil
			case '\n':
				l.newline()
			case eof:
				return l.token(END_OF_FILE, "", l.offset), nil
			default:
				text = append(text, byte(c))
			}
		}
	}
}

// Collect reads all remaining tokens, stopping after the first END_OF_FILE or
// INVALID_TOKEN (which is included).
func (l *Lexer) Collect() ([]Token, error) {
	var tokens []Token
	//
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		//
		tokens = append(tokens, tok)
		//
		if tok.Kind == END_OF_FILE || tok.Kind == INVALID_TOKEN {
			return tokens, nil
		}
	}
}

func (l *Lexer) token(kind TokenKind, text string, start int) Token {
	return Token{text, kind, l.line, source.NewSpan(start, l.offset)}
}

func (l *Lexer) lookup(text string, start int) Token {
	return l.token(Lookup(text), text, start)
}

func (l *Lexer) newline() {
	l.line++
	log.Debugf("line %d", l.line)
}

// Read the next character, or eof if the input is exhausted.
func (l *Lexer) getc() (int, error) {
	c, err := l.input.ReadByte()
	//
	if errors.Is(err, io.EOF) {
		return eof, nil
	} else if err != nil {
		return eof, err
	}
	//
	l.offset++
	//
	return int(c), nil
}

// Push back the most recently read character.  Pushing back eof has no effect.
func (l *Lexer) ungetc(c int) {
	if c == eof {
		return
	}
	// Cannot fail, since a character was just read.
	if err := l.input.UnreadByte(); err != nil {
		panic(err)
	}
	//
	l.offset--
}

func isLetter(c int) bool {
	return c >= 0 && unicode.IsLetter(rune(c))
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

// Characters which always form a token on their own.
func isSingleSymbol(c int) bool {
	switch c {
	case '+', '-', '*', '(', ')', '.', ';', '!', ',', '}':
		return true
	}
	//
	return false
}
