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

var (
	relationalOperators     = []lexer.TokenKind{lexer.EQUALS, lexer.NOT_EQUALS, lexer.GREATER, lexer.GREATER_EQ, lexer.LESS, lexer.LESS_EQ}
	additiveOperators       = []lexer.TokenKind{lexer.ADD, lexer.SUB, lexer.OR}
	multiplicativeOperators = []lexer.TokenKind{lexer.MUL, lexer.DIV, lexer.AND}
)

// expr ::= simple-expr {relop simple-expr}
func (p *Translator) parseExpr() (codegen.Attribute, []source.SyntaxError) {
	lhs, errs := p.parseSimpleExpr()
	//
	for len(errs) == 0 && p.follows(relationalOperators...) {
		var rhs codegen.Attribute
		//
		op := p.current
		//
		if errs = p.advance(); len(errs) > 0 {
			break
		} else if rhs, errs = p.parseSimpleExpr(); len(errs) > 0 {
			break
		}
		//
		lhs = p.binary(op, lhs, rhs)
	}
	//
	return lhs, errs
}

// simple-expr ::= term {addop term}
func (p *Translator) parseSimpleExpr() (codegen.Attribute, []source.SyntaxError) {
	lhs, errs := p.parseTerm()
	//
	for len(errs) == 0 && p.follows(additiveOperators...) {
		var rhs codegen.Attribute
		//
		op := p.current
		//
		if errs = p.advance(); len(errs) > 0 {
			break
		} else if rhs, errs = p.parseTerm(); len(errs) > 0 {
			break
		}
		//
		lhs = p.binary(op, lhs, rhs)
	}
	//
	return lhs, errs
}

// term ::= factor-act {mulop term}
//
// Since the right operand is itself a term, a chain of multiplicative operators
// groups to the right.
func (p *Translator) parseTerm() (codegen.Attribute, []source.SyntaxError) {
	var rhs codegen.Attribute
	//
	lhs, errs := p.parseFactorAct()
	if len(errs) > 0 || !p.follows(multiplicativeOperators...) {
		return lhs, errs
	}
	//
	op := p.current
	//
	if errs = p.advance(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	} else if rhs, errs = p.parseTerm(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	return p.binary(op, lhs, rhs), nil
}

// factor-act ::= factor | "!" factor | "-" factor
func (p *Translator) parseFactorAct() (codegen.Attribute, []source.SyntaxError) {
	if !p.follows(lexer.EXCLAMATION, lexer.SUB) {
		return p.parseFactor()
	}
	//
	op := p.current
	//
	if errs := p.advance(); len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	arg, errs := p.parseFactor()
	if len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	return p.unary(op, arg), nil
}

// factor ::= ID | INT | FLOAT | STRING | "(" expr ")"
func (p *Translator) parseFactor() (codegen.Attribute, []source.SyntaxError) {
	switch p.current.Kind {
	case lexer.IDENTIFIER:
		return p.parseVariable()
	case lexer.INTEGER_LITERAL, lexer.FLOAT_LITERAL, lexer.STRING_LITERAL:
		return p.parseLiteral()
	case lexer.OPEN_PAREN:
		var (
			expr codegen.Attribute
			errs []source.SyntaxError
		)
		//
		if errs = p.advance(); len(errs) > 0 {
			return codegen.ErrorAttribute(), errs
		} else if expr, errs = p.parseExpr(); len(errs) > 0 {
			return codegen.ErrorAttribute(), errs
		} else if _, errs = p.expect(lexer.CLOSE_PAREN); len(errs) > 0 {
			return codegen.ErrorAttribute(), errs
		}
		//
		return expr, nil
	default:
		return codegen.ErrorAttribute(), p.unexpected()
	}
}

// Use of a variable, which must have been declared.
func (p *Translator) parseVariable() (codegen.Attribute, []source.SyntaxError) {
	id, errs := p.parseIdentifier()
	if len(errs) > 0 {
		return codegen.ErrorAttribute(), errs
	}
	//
	if v := p.variables.Lookup(id); v.HasValue() {
		return codegen.NewAttribute(v.Unwrap()), nil
	}
	//
	return codegen.ErrorAttribute(), nil
}

func (p *Translator) parseLiteral() (codegen.Attribute, []source.SyntaxError) {
	var kind codegen.Type
	//
	switch p.current.Kind {
	case lexer.INTEGER_LITERAL:
		kind = codegen.INTEGER
	case lexer.FLOAT_LITERAL:
		kind = codegen.FLOAT
	case lexer.STRING_LITERAL:
		kind = codegen.STRING
	default:
		return codegen.ErrorAttribute(), p.unexpected()
	}
	//
	constant := codegen.NewConstAddress(p.current.Text, kind)
	//
	return codegen.NewAttribute(constant), p.advance()
}

// Apply a binary operator, storing its result in a fresh temporary.  Code is
// generated regardless of whether the operands are well typed.
func (p *Translator) binary(op lexer.Token, lhs codegen.Attribute, rhs codegen.Attribute) codegen.Attribute {
	tmp := p.temps.Fresh(binaryType(op.Kind, lhs.Type(), rhs.Type()))
	//
	p.code.Emit(fmt.Sprintf("%s = %s %s %s", tmp.Value(), lhs.Value(), op.Text, rhs.Value()))
	//
	return codegen.NewAttribute(tmp)
}

// Apply a unary operator, storing its result in a fresh temporary.
func (p *Translator) unary(op lexer.Token, arg codegen.Attribute) codegen.Attribute {
	tmp := p.temps.Fresh(unaryType(op.Kind, arg.Type()))
	//
	p.code.Emit(fmt.Sprintf("%s = %s%s", tmp.Value(), op.Text, arg.Value()))
	//
	return codegen.NewAttribute(tmp)
}

// Determine the result type of a binary operator applied to operands of the
// given types.  ERROR operands always produce ERROR.
func binaryType(op lexer.TokenKind, lhs codegen.Type, rhs codegen.Type) codegen.Type {
	numeric := lhs.IsNumeric() && rhs.IsNumeric()
	strings := lhs == codegen.STRING && rhs == codegen.STRING
	//
	switch op {
	case lexer.EQUALS, lexer.NOT_EQUALS, lexer.GREATER, lexer.GREATER_EQ, lexer.LESS, lexer.LESS_EQ:
		if numeric || strings {
			return codegen.INTEGER
		}
	case lexer.ADD:
		if numeric {
			return promote(lhs, rhs)
		} else if strings {
			return codegen.STRING
		}
	case lexer.SUB, lexer.MUL, lexer.DIV:
		if numeric {
			return promote(lhs, rhs)
		}
	case lexer.OR, lexer.AND:
		if lhs == codegen.INTEGER && rhs == codegen.INTEGER {
			return codegen.INTEGER
		}
	default:
		panic(fmt.Sprintf("unknown binary operator %s", op))
	}
	//
	return codegen.ERROR
}

func unaryType(op lexer.TokenKind, arg codegen.Type) codegen.Type {
	switch op {
	case lexer.EXCLAMATION:
		if arg == codegen.INTEGER {
			return codegen.INTEGER
		}
	case lexer.SUB:
		if arg.IsNumeric() {
			return arg
		}
	default:
		panic(fmt.Sprintf("unknown unary operator %s", op))
	}
	//
	return codegen.ERROR
}

// INTEGER if both operands are, otherwise FLOAT.
func promote(lhs codegen.Type, rhs codegen.Type) codegen.Type {
	if lhs == codegen.INTEGER && rhs == codegen.INTEGER {
		return codegen.INTEGER
	}
	//
	return codegen.FLOAT
}
