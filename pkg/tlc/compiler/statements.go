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
	"fmt"

	"github.com/consensys/go-tlc/pkg/tlc/codegen"
	"github.com/consensys/go-tlc/pkg/tlc/lexer"
	"github.com/consensys/go-tlc/pkg/util/source"
)

// stmt-list ::= stmt {stmt}
//
// The line of every failing statement is recorded.  Pending jumps out of one
// statement are resolved to the start of the next, whilst those of the final
// statement are passed on in the next list of the result.
func (p *Translator) parseStatementList() (codegen.Attribute, []source.SyntaxError) {
	var (
		failed  bool
		pending []uint
	)
	//
	for first := true; first || p.follows(statementStarts...); first = false {
		line := p.current.Line
		// Control leaving the previous statement arrives here
		p.backpatch(pending, p.code.NextAddress())
		//
		stmt, errs := p.parseStatement()
		if len(errs) > 0 {
			return codegen.ErrorAttribute(), errs
		}
		//
		if p.check(line, stmt.Type()) != codegen.VOID {
			failed = true
		}
		//
		pending = stmt.NextList()
	}
	//
	result := codegen.StatementAttribute(failed)
	result.AddToNextList(pending...)
	//
	return result, nil
}

// stmt ::= assign ";" | if-stmt | while-stmt | read ";" | write ";"
func (p *Translator) parseStatement() (codegen.Attribute, []source.SyntaxError) {
	var (
		stmt       codegen.Attribute
		errs       []source.SyntaxError
		terminated = true
	)
	//
	switch p.current.Kind {
	case lexer.IDENTIFIER:
		stmt, errs = p.parseAssignment()
	case lexer.KEYWORD_IF:
		stmt, errs = p.parseIf()
		terminated = false
	case lexer.KEYWORD_DO:
		stmt, errs = p.parseWhile()
		terminated = false
	case lexer.KEYWORD_SCAN:
		stmt, errs = p.parseRead()
	case lexer.KEYWORD_PRINT:
		stmt, errs = p.parseWrite()
	default:
		return codegen.ErrorAttribute(), p.unexpected()
	}
	//
	if len(errs) > 0 {
		return stmt, errs
	} else if terminated {
		_, errs = p.expect(lexer.SEMICOLON)
	}
	//
	return stmt, errs
}

// assign ::= ID "=" simple-expr
//
// The right-hand side must have exactly the declared type of the target,
// otherwise no code is generated.
func (p *Translator) parseAssignment() (codegen.Attribute, []source.SyntaxError) {
	var (
		id   string
		rhs  codegen.Attribute
		errs []source.SyntaxError
	)
	//
	if id, errs = p.parseIdentifier(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if _, errs = p.expect(lexer.ASSIGN); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if rhs, errs = p.parseSimpleExpr(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	target := p.variables.Lookup(id)
	//
	if target.IsEmpty() || target.Unwrap().Type() != rhs.Type() {
		return codegen.ErrorAttribute(), nil
	}
	//
	p.code.Emit(fmt.Sprintf("%s = %s", target.Unwrap().Value(), rhs.Value()))
	//
	return codegen.VoidAttribute(), nil
}

// if-stmt ::= "if" expr "then" stmt-list ("end" | "else" stmt-list "end")
func (p *Translator) parseIf() (codegen.Attribute, []source.SyntaxError) {
	var (
		cond, body, alt codegen.Attribute
		errs            []source.SyntaxError
		hasElse         bool
	)
	//
	if _, errs = p.expect(lexer.KEYWORD_IF); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if cond, errs = p.parseExpr(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	// Jump to the then branch, or otherwise skip it
	jumps := p.emitJumps(cond, codegen.VoidAttribute())
	//
	if _, errs = p.expect(lexer.KEYWORD_THEN); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	thenStart := p.code.NextAddress()
	//
	if body, errs = p.parseStatementList(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	p.backpatch(jumps.TrueList(), thenStart)
	//
	if hasElse, errs = p.match(lexer.KEYWORD_ELSE); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if !hasElse {
		if _, errs = p.expect(lexer.KEYWORD_END); len(errs) > 0 {
			return codegen.ErrorAttribute(), errs
		}
		//
		afterThen := p.code.NextAddress()
		p.backpatch(jumps.FalseList(), afterThen)
		p.backpatch(body.NextList(), afterThen)
		//
		failed := cond.Type() != codegen.INTEGER || body.Type() != codegen.VOID
		//
		return codegen.StatementAttribute(failed), nil
	}
	// Once the then branch is done, skip over the else branch
	skip := p.emitIncomplete(fmt.Sprintf("goto %s", codegen.PLACEHOLDER))
	p.backpatch(body.NextList(), skip)
	p.backpatch(jumps.FalseList(), p.code.NextAddress())
	//
	if alt, errs = p.parseStatementList(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if _, errs = p.expect(lexer.KEYWORD_END); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	afterElse := p.code.NextAddress()
	p.backpatch([]uint{skip}, afterElse)
	p.backpatch(alt.NextList(), afterElse)
	//
	failed := cond.Type() != codegen.INTEGER || body.Type() != codegen.VOID || alt.Type() != codegen.VOID
	//
	return codegen.StatementAttribute(failed), nil
}

// while-stmt ::= "do" stmt-list "while" expr "end"
//
// The loop exit is left pending in the next list of the result, to be resolved
// by the enclosing statement list.
func (p *Translator) parseWhile() (codegen.Attribute, []source.SyntaxError) {
	var (
		body, suffix codegen.Attribute
		errs         []source.SyntaxError
	)
	//
	if _, errs = p.expect(lexer.KEYWORD_DO); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	bodyStart := p.code.NextAddress()
	//
	if body, errs = p.parseStatementList(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	// Control leaving the body falls into the condition
	p.backpatch(body.NextList(), p.code.NextAddress())
	//
	if suffix, errs = p.parseWhileSuffix(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	p.backpatch(suffix.TrueList(), bodyStart)
	//
	result := codegen.StatementAttribute(body.Type() != codegen.VOID || suffix.Type() != codegen.VOID)
	result.AddToNextList(suffix.FalseList()...)
	//
	return result, nil
}

// "while" expr "end"
func (p *Translator) parseWhileSuffix() (codegen.Attribute, []source.SyntaxError) {
	var (
		cond codegen.Attribute
		errs []source.SyntaxError
	)
	//
	if _, errs = p.expect(lexer.KEYWORD_WHILE); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if cond, errs = p.parseExpr(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	result := p.emitJumps(cond, codegen.StatementAttribute(cond.Type() != codegen.INTEGER))
	//
	if _, errs = p.expect(lexer.KEYWORD_END); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	return result, nil
}

// read ::= "scan" "(" ID ")"
func (p *Translator) parseRead() (codegen.Attribute, []source.SyntaxError) {
	var (
		id   string
		errs []source.SyntaxError
	)
	//
	if _, errs = p.expect(lexer.KEYWORD_SCAN); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if _, errs = p.expect(lexer.OPEN_PAREN); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if id, errs = p.parseIdentifier(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if _, errs = p.expect(lexer.CLOSE_PAREN); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	if !p.variables.Contains(id) {
		return codegen.ErrorAttribute(), nil
	}
	//
	p.code.Emit(fmt.Sprintf("scan %s", id))
	//
	return codegen.VoidAttribute(), nil
}

// write ::= "print" "(" writable ")"
func (p *Translator) parseWrite() (codegen.Attribute, []source.SyntaxError) {
	var (
		arg  codegen.Attribute
		errs []source.SyntaxError
	)
	//
	if _, errs = p.expect(lexer.KEYWORD_PRINT); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if _, errs = p.expect(lexer.OPEN_PAREN); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if arg, errs = p.parseWritable(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if _, errs = p.expect(lexer.CLOSE_PAREN); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	if arg.Type() == codegen.ERROR {
		return codegen.ErrorAttribute(), nil
	}
	//
	p.code.Emit(fmt.Sprintf("out %s", arg.Value()))
	//
	return codegen.VoidAttribute(), nil
}

// writable ::= STRING | simple-expr
func (p *Translator) parseWritable() (codegen.Attribute, []source.SyntaxError) {
	if p.follows(lexer.STRING_LITERAL) {
		return p.parseLiteral()
	}
	//
	return p.parseSimpleExpr()
}
