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
package compiler

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/consensys/go-tlc/pkg/tlc/codegen"
	"github.com/consensys/go-tlc/pkg/tlc/lexer"
	"github.com/consensys/go-tlc/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Tokens which can begin a declaration.
var typeKeywords = []lexer.TokenKind{lexer.KEYWORD_INT, lexer.KEYWORD_FLOAT, lexer.KEYWORD_STRING}

// Tokens which can begin a statement.
var statementStarts = []lexer.TokenKind{
	lexer.IDENTIFIER, lexer.KEYWORD_IF, lexer.KEYWORD_DO, lexer.KEYWORD_SCAN, lexer.KEYWORD_PRINT,
}

// Translator recognises a program whilst simultaneously type checking it and
// generating code for it, in a single left-to-right pass with one token of
// lookahead.  There is no intermediate syntax tree: each grammar rule returns
// its synthesized attribute directly.
//
// Syntax errors are fatal, and are returned immediately from every rule.
// Semantic errors are not: the line of each failing declaration or statement is
// recorded and translation continues.
type Translator struct {
	srcfile *source.File
	lexer   *lexer.Lexer
	// Current lookahead token
	current lexer.Token
	// Declared variables
	variables *codegen.VariableTable
	// Generated instructions
	code *codegen.Buffer
	// Temporary names issued so far
	temps codegen.TempPool
	// Lines of semantic errors, in the order encountered
	errors []int
}

// NewTranslator constructs a translator for a given source file.
func NewTranslator(srcfile *source.File, config Config) *Translator {
	return &Translator{
		srcfile:   srcfile,
		lexer:     lexer.NewLexer(bytes.NewReader(srcfile.Contents())),
		variables: codegen.NewVariableTable(),
		code:      codegen.NewBuffer(config.BaseAddress),
	}
}

// Translate the entire source file, returning the type of the program as a
// whole.  This is VOID if no semantic error was found, and ERROR otherwise.
func (p *Translator) Translate() (codegen.Type, []source.SyntaxError) {
	// Initialise lookahead
	if errs := p.advance(); len(errs) > 0 {
		return codegen.ERROR, errs
	}
	//
	kind, errs := p.parseProgram()
	if len(errs) > 0 {
		return codegen.ERROR, errs
	} else if _, errs = p.expect(lexer.END_OF_FILE); len(errs) > 0 {
		return codegen.ERROR, errs
	}
	//
	log.Debugf("translated %d instructions, %d temporaries, frame size %d", p.code.Len(), p.temps.Count(),
		p.variables.Frame())
	//
	return kind, nil
}

// Code returns the instructions generated so far.
func (p *Translator) Code() *codegen.Buffer {
	return p.code
}

// Variables returns the variables declared so far.
func (p *Translator) Variables() *codegen.VariableTable {
	return p.variables
}

// ErrorLines returns the line of every semantic error found so far.
func (p *Translator) ErrorLines() []int {
	return p.errors
}

// program ::= START decl-list? stmt-list EXIT
func (p *Translator) parseProgram() (codegen.Type, []source.SyntaxError) {
	var (
		decls = codegen.VOID
		stmts codegen.Attribute
		errs  []source.SyntaxError
	)
	//
	if _, errs = p.expect(lexer.KEYWORD_START); len(errs) > 0 {
		return codegen.ERROR, errs
	}
	// Declarations are optional
	if p.follows(typeKeywords...) {
		if decls, errs = p.parseDeclarationList(); len(errs) > 0 {
			return codegen.ERROR, errs
		}
	}
	//
	if stmts, errs = p.parseStatementList(); len(errs) > 0 {
		return codegen.ERROR, errs
	} else if _, errs = p.expect(lexer.KEYWORD_EXIT); len(errs) > 0 {
		return codegen.ERROR, errs
	}
	// Whatever follows the final statement is the end of the program.
	p.backpatch(stmts.NextList(), p.code.NextAddress())
	//
	return join(decls, stmts.Type()), nil
}

// decl-list ::= decl {decl}
func (p *Translator) parseDeclarationList() (codegen.Type, []source.SyntaxError) {
	var kind = codegen.VOID
	//
	for first := true; first || p.follows(typeKeywords...); first = false {
		line := p.current.Line
		//
		decl, errs := p.parseDeclaration()
		if len(errs) > 0 {
			return codegen.ERROR, errs
		}
		//
		kind = join(kind, p.check(line, decl))
	}
	//
	return kind, nil
}

// decl ::= type ident-list ";"
func (p *Translator) parseDeclaration() (codegen.Type, []source.SyntaxError) {
	var (
		result = codegen.VOID
		kind   codegen.Type
		ids    []string
		errs   []source.SyntaxError
	)
	//
	if kind, errs = p.parseType(); len(errs) > 0 {
		return codegen.ERROR, errs
	} else if ids, errs = p.parseIdentifierList(); len(errs) > 0 {
		return codegen.ERROR, errs
	}
	//
	for _, id := range ids {
		if p.variables.Declare(id, kind) {
			p.code.Emit(fmt.Sprintf("%s %s", kind, id))
		} else {
			log.Debugf("variable %s already declared", id)
			//
			result = codegen.ERROR
		}
	}
	//
	if _, errs = p.expect(lexer.SEMICOLON); len(errs) > 0 {
		return codegen.ERROR, errs
	}
	//
	return result, nil
}

// type ::= "int" | "float" | "string"
func (p *Translator) parseType() (codegen.Type, []source.SyntaxError) {
	var kind codegen.Type
	//
	switch p.current.Kind {
	case lexer.KEYWORD_INT:
		kind = codegen.INTEGER
	case lexer.KEYWORD_FLOAT:
		kind = codegen.FLOAT
	case lexer.KEYWORD_STRING:
		kind = codegen.STRING
	default:
		return codegen.ERROR, p.unexpected()
	}
	//
	return kind, p.advance()
}

// ident-list ::= ID {"," ID}
func (p *Translator) parseIdentifierList() ([]string, []source.SyntaxError) {
	var ids []string
	//
	for first := true; first || p.follows(lexer.COMMA); first = false {
		if !first {
			if errs := p.advance(); len(errs) > 0 {
				return nil, errs
			}
		}
		//
		id, errs := p.parseIdentifier()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		ids = append(ids, id)
	}
	//
	return ids, nil
}

func (p *Translator) parseIdentifier() (string, []source.SyntaxError) {
	tok, errs := p.expect(lexer.IDENTIFIER)
	//
	return tok.Text, errs
}

// ============================================================================
// Helpers
// ============================================================================

// Record a semantic error on the given line, if the given type indicates one.
func (p *Translator) check(line int, kind codegen.Type) codegen.Type {
	if kind != codegen.VOID {
		log.Debugf("semantic error on line %d", line)
		//
		p.errors = append(p.errors, line)
	}
	//
	return kind
}

// Emit a conditional jump on the given condition followed immediately by an
// unconditional jump, both with targets to be backpatched.  The former is added
// to the true list and the latter to the false list of the returned attribute.
func (p *Translator) emitJumps(cond codegen.Attribute, result codegen.Attribute) codegen.Attribute {
	m := p.emitIncomplete(fmt.Sprintf("if %s goto %s", cond.Value(), codegen.PLACEHOLDER))
	n := p.emitIncomplete(fmt.Sprintf("goto %s", codegen.PLACEHOLDER))
	//
	result.AddToTrueList(m)
	result.AddToFalseList(n)
	//
	return result
}

// Emit an incomplete instruction.  Failure here is an internal error.
func (p *Translator) emitIncomplete(text string) uint {
	addr, err := p.code.EmitIncomplete(text, codegen.PLACEHOLDER)
	if err != nil {
		panic(err)
	}
	//
	return addr
}

// Backpatch the given instructions to jump to a given target.  Failure here is
// an internal error.
func (p *Translator) backpatch(addrs []uint, target uint) {
	if err := p.code.Backpatch(addrs, target); err != nil {
		panic(err)
	}
}

// Advance to the next token.
func (p *Translator) advance() []source.SyntaxError {
	tok, err := p.lexer.Next()
	//
	if err != nil {
		span := source.NewSpan(p.current.Span.End(), p.current.Span.End())
		msg := fmt.Sprintf("unable to read source (%s)", err)
		//
		return []source.SyntaxError{*p.srcfile.SyntaxError(span, p.lexer.Line(), msg)}
	}
	//
	p.current = tok
	//
	return nil
}

// Expect returns an error if the current token is not what was expected,
// otherwise it consumes it.
func (p *Translator) expect(kind lexer.TokenKind) (lexer.Token, []source.SyntaxError) {
	tok := p.current
	//
	if tok.Kind != kind {
		return tok, p.unexpected()
	} else if kind == lexer.END_OF_FILE {
		// Nothing further to read
		return tok, nil
	}
	//
	return tok, p.advance()
}

// Match consumes the current token if it has the given kind.
func (p *Translator) match(kind lexer.TokenKind) (bool, []source.SyntaxError) {
	if p.current.Kind == kind {
		return true, p.advance()
	}
	//
	return false, nil
}

// Follows checks whether the current token has one of the given kinds.
func (p *Translator) follows(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.current.Kind)
}

// Report the current token as being unexpected.
func (p *Translator) unexpected() []source.SyntaxError {
	var msg string
	//
	switch p.current.Kind {
	case lexer.INVALID_TOKEN:
		msg = fmt.Sprintf("invalid lexeme [%s]", p.current.Text)
	case lexer.END_OF_FILE:
		msg = "unexpected end of file"
	default:
		msg = fmt.Sprintf("unexpected lexeme [%s]", p.current.Text)
	}
	//
	return []source.SyntaxError{*p.srcfile.SyntaxError(p.current.Span, p.current.Line, msg)}
}

// A sequence of constructs is VOID only when each of them is.
func join(lhs codegen.Type, rhs codegen.Type) codegen.Type {
	if lhs == codegen.VOID && rhs == codegen.VOID {
		return codegen.VOID
	}
	//
	return codegen.ERROR
}
