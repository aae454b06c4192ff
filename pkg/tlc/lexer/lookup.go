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

import "maps"

// Fixed mapping of symbols, operators and keywords to their kinds.  Anything
// absent is an identifier.
var lookupTable = map[string]TokenKind{
	// Symbols
	"(": OPEN_PAREN,
	")": CLOSE_PAREN,
	"{": OPEN_CURLY,
	"}": CLOSE_CURLY,
	";": SEMICOLON,
	",": COMMA,
	"=": ASSIGN,
	".": DOT,
	"!": EXCLAMATION,
	// Operators
	"==": EQUALS,
	"<>": NOT_EQUALS,
	">":  GREATER,
	">=": GREATER_EQ,
	"<":  LESS,
	"<=": LESS_EQ,
	"+":  ADD,
	"-":  SUB,
	"||": OR,
	"*":  MUL,
	"/":  DIV,
	"&&": AND,
	// Keywords
	"start":  KEYWORD_START,
	"exit":   KEYWORD_EXIT,
	"if":     KEYWORD_IF,
	"then":   KEYWORD_THEN,
	"else":   KEYWORD_ELSE,
	"end":    KEYWORD_END,
	"do":     KEYWORD_DO,
	"while":  KEYWORD_WHILE,
	"scan":   KEYWORD_SCAN,
	"print":  KEYWORD_PRINT,
	"int":    KEYWORD_INT,
	"float":  KEYWORD_FLOAT,
	"string": KEYWORD_STRING,
}

// Lookup classifies a piece of text against the fixed table of symbols,
// operators and keywords.  Text not found in the table is an identifier.
func Lookup(text string) TokenKind {
	if kind, ok := lookupTable[text]; ok {
		return kind
	}
	//
	return IDENTIFIER
}

// IsReserved checks whether the given text has a fixed kind.
func IsReserved(text string) bool {
	_, ok := lookupTable[text]
	return ok
}

// Reserved returns every entry of the fixed table.  The returned map is a copy.
func Reserved() map[string]TokenKind {
	return maps.Clone(lookupTable)
}
