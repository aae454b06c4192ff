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
	"fmt"

	"github.com/consensys/go-tlc/pkg/util/source"
)

// TokenKind classifies a token.  The set of kinds is closed.
type TokenKind uint

const (
	// END_OF_FILE signals that the input is exhausted.  It is also produced when
	// a block comment or string literal is left unterminated.
	END_OF_FILE TokenKind = iota
	// INVALID_TOKEN is any character sequence which is not part of the language.
	INVALID_TOKEN
	// Symbols
	OPEN_PAREN   // (
	CLOSE_PAREN  // )
	OPEN_CURLY   // {
	CLOSE_CURLY  // }
	SEMICOLON    // ;
	COMMA        // ,
	ASSIGN       // =
	DOT          // .
	EXCLAMATION  // !
	// Operators
	EQUALS        // ==
	NOT_EQUALS    // <>
	GREATER       // >
	GREATER_EQ    // >=
	LESS          // <
	LESS_EQ       // <=
	ADD           // +
	SUB           // -
	OR            // ||
	MUL           // *
	DIV           // /
	AND           // &&
	// Keywords
	KEYWORD_START
	KEYWORD_EXIT
	KEYWORD_IF
	KEYWORD_THEN
	KEYWORD_ELSE
	KEYWORD_END
	KEYWORD_DO
	KEYWORD_WHILE
	KEYWORD_SCAN
	KEYWORD_PRINT
	KEYWORD_INT
	KEYWORD_FLOAT
	KEYWORD_STRING
	// Others
	IDENTIFIER
	INTEGER_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
)

var kindNames = [...]string{
	END_OF_FILE:     "END_OF_FILE",
	INVALID_TOKEN:   "INVALID_TOKEN",
	OPEN_PAREN:      "OPEN_PAREN",
	CLOSE_PAREN:     "CLOSE_PAREN",
	OPEN_CURLY:      "OPEN_CURLY",
	CLOSE_CURLY:     "CLOSE_CURLY",
	SEMICOLON:       "SEMICOLON",
	COMMA:           "COMMA",
	ASSIGN:          "ASSIGN",
	DOT:             "DOT",
	EXCLAMATION:     "EXCLAMATION",
	EQUALS:          "EQUALS",
	NOT_EQUALS:      "NOT_EQUALS",
	GREATER:         "GREATER",
	GREATER_EQ:      "GREATER_EQ",
	LESS:            "LESS",
	LESS_EQ:         "LESS_EQ",
	ADD:             "ADD",
	SUB:             "SUB",
	OR:              "OR",
	MUL:             "MUL",
	DIV:             "DIV",
	AND:             "AND",
	KEYWORD_START:   "START",
	KEYWORD_EXIT:    "EXIT",
	KEYWORD_IF:      "IF",
	KEYWORD_THEN:    "THEN",
	KEYWORD_ELSE:    "ELSE",
	KEYWORD_END:     "END",
	KEYWORD_DO:      "DO",
	KEYWORD_WHILE:   "WHILE",
	KEYWORD_SCAN:    "SCAN",
	KEYWORD_PRINT:   "PRINT",
	KEYWORD_INT:     "INT",
	KEYWORD_FLOAT:   "FLOAT",
	KEYWORD_STRING:  "STRING",
	IDENTIFIER:      "ID",
	INTEGER_LITERAL: "INTEGER",
	FLOAT_LITERAL:   "FLOAT",
	STRING_LITERAL:  "STRING",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	//
	return fmt.Sprintf("TokenKind(%d)", uint(k))
}

// Token is a single lexeme read from the input, along with its kind and the
// line on which it ended.  For string literals, the text excludes the
// enclosing braces.
type Token struct {
	Text string
	Kind TokenKind
	Line int
	// Span of the original input covered by this token (including any braces).
	Span source.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%d\t%s\t%s", t.Line, t.Kind, t.Text)
}
