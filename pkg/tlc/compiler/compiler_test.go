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
	"errors"
	"strings"
	"testing"

	"github.com/consensys/go-tlc/pkg/tlc/codegen"
	"github.com/consensys/go-tlc/pkg/util/assert"
	"github.com/consensys/go-tlc/pkg/util/source"
)

// ============================================================================
// Listings
// ============================================================================

func TestCompile_Empty(t *testing.T) {
	checkListing(t, "start print({hello world}); exit", "100\tout hello world")
}

func TestCompile_Declarations(t *testing.T) {
	checkListing(t, "start int a, b; float c; string s; scan(a); exit",
		"100\tINTEGER a",
		"101\tINTEGER b",
		"102\tFLOAT c",
		"103\tSTRING s",
		"104\tscan a")
}

func TestCompile_Assignment(t *testing.T) {
	checkListing(t, "start int a; a = 1; a = a; exit",
		"100\tINTEGER a",
		"101\ta = 1",
		"102\ta = a")
}

func TestCompile_TypePromotion(t *testing.T) {
	program := checkListing(t, "start int a; float b; a=1; b=2.0; print(a+b); exit",
		"100\tINTEGER a",
		"101\tFLOAT b",
		"102\ta = 1",
		"103\tb = 2.0",
		"104\tt = a + b",
		"105\tout t")
	//
	assert.Equal(t, 12, program.Variables.Frame())
}

func TestCompile_LeftAssociative(t *testing.T) {
	checkListing(t, "start int a; a = 1 - 2 - 3; exit",
		"100\tINTEGER a",
		"101\tt = 1 - 2",
		"102\tt1 = t - 3",
		"103\ta = t1")
}

func TestCompile_RightRecursive(t *testing.T) {
	checkListing(t, "start int a; a = 2 * 3 * 4; exit",
		"100\tINTEGER a",
		"101\tt = 3 * 4",
		"102\tt1 = 2 * t",
		"103\ta = t1")
}

func TestCompile_Precedence(t *testing.T) {
	checkListing(t, "start int a; a = 1 + 2 * (3 - a); exit",
		"100\tINTEGER a",
		"101\tt = 3 - a",
		"102\tt1 = 2 * t",
		"103\tt2 = 1 + t1",
		"104\ta = t2")
}

func TestCompile_Unary(t *testing.T) {
	checkListing(t, "start int a; float b; a = !a; b = -b; exit",
		"100\tINTEGER a",
		"101\tFLOAT b",
		"102\tt = !a",
		"103\ta = t",
		"104\tt1 = -b",
		"105\tb = t1")
}

func TestCompile_Logical(t *testing.T) {
	checkListing(t, "start int a; a = a || 1 && 0; exit",
		"100\tINTEGER a",
		"101\tt = 1 && 0",
		"102\tt1 = a || t",
		"103\ta = t1")
}

func TestCompile_Concatenation(t *testing.T) {
	checkListing(t, "start string s; s = {ab} + {cd}; print(s); exit",
		"100\tSTRING s",
		"101\tt = ab + cd",
		"102\ts = t",
		"103\tout s")
}

func TestCompile_StringComparison(t *testing.T) {
	checkListing(t, "start string s; scan(s); if s == {yes} then print(1); end exit",
		"100\tSTRING s",
		"101\tscan s",
		"102\tt = s == yes",
		"103\tif t goto 105",
		"104\tgoto 106",
		"105\tout 1")
}

func TestCompile_If(t *testing.T) {
	checkListing(t, "start int a; scan(a); if a == 1 then print({one}); end exit",
		"100\tINTEGER a",
		"101\tscan a",
		"102\tt = a == 1",
		"103\tif t goto 105",
		"104\tgoto 106",
		"105\tout one")
}

func TestCompile_IfElse(t *testing.T) {
	checkListing(t, "start int a; a = 1; if a > 0 then print(a); else print(0); end exit",
		"100\tINTEGER a",
		"101\ta = 1",
		"102\tt = a > 0",
		"103\tif t goto 105",
		"104\tgoto 107",
		"105\tout a",
		"106\tgoto 108",
		"107\tout 0")
}

func TestCompile_IfElseFollowed(t *testing.T) {
	checkListing(t, "start int a; if a <> 0 then a = 0; else a = 1; end print(a); exit",
		"100\tINTEGER a",
		"101\tt = a <> 0",
		"102\tif t goto 104",
		"103\tgoto 106",
		"104\ta = 0",
		"105\tgoto 107",
		"106\ta = 1",
		"107\tout a")
}

func TestCompile_While(t *testing.T) {
	checkListing(t, "start int x; x = 0; do x = x + 1; while x < 10 end print(x); exit",
		"100\tINTEGER x",
		"101\tx = 0",
		"102\tt = x + 1",
		"103\tx = t",
		"104\tt1 = x < 10",
		"105\tif t1 goto 102",
		"106\tgoto 107",
		"107\tout x")
}

func TestCompile_WhileLast(t *testing.T) {
	checkListing(t, "start int x; do x = x + 1; while x < 10 end exit",
		"100\tINTEGER x",
		"101\tt = x + 1",
		"102\tx = t",
		"103\tt1 = x < 10",
		"104\tif t1 goto 101",
		"105\tgoto 106")
}

func TestCompile_NestedWhile(t *testing.T) {
	checkListing(t, "start int i, j; do do j = j + 1; while j < 3 end i = i + 1; while i < 3 end exit",
		"100\tINTEGER i",
		"101\tINTEGER j",
		"102\tt = j + 1",
		"103\tj = t",
		"104\tt1 = j < 3",
		"105\tif t1 goto 102",
		"106\tgoto 107",
		"107\tt2 = i + 1",
		"108\ti = t2",
		"109\tt3 = i < 3",
		"110\tif t3 goto 102",
		"111\tgoto 112")
}

func TestCompile_WhileInsideIf(t *testing.T) {
	checkListing(t, "start int x; if x then do x = x - 1; while x end end exit",
		"100\tINTEGER x",
		"101\tif x goto 103",
		"102\tgoto 107",
		"103\tt = x - 1",
		"104\tx = t",
		"105\tif x goto 103",
		"106\tgoto 107")
}

func TestCompile_BaseAddress(t *testing.T) {
	srcfile := source.NewSourceFile("test.tlc", []byte("start int a; a = 1; exit"))
	program, err := Compile(srcfile, Config{BaseAddress: 0})
	//
	assert.Equal(t, nil, err)
	assert.Equal(t, "0\tINTEGER a\n1\ta = 1\n", program.Code.String())
}

// ============================================================================
// Properties
// ============================================================================

func TestCompile_CommentTransparency(t *testing.T) {
	plain := "start int x; x = 0; do x = x + 1; while x < 10 end print({done}); exit"
	commented := "start /* counter */ int x; // declared\n x = 0; do /* body\n */ x = x + 1;" +
		" while x < 10 end // loop\n print({done}); /**/ exit // end"
	//
	lhs := compile(t, plain, DefaultConfig())
	rhs := compile(t, commented, DefaultConfig())
	//
	assert.Equal(t, lhs.Code.String(), rhs.Code.String())
}

func TestCompile_Contiguity(t *testing.T) {
	srcfile := source.NewSourceFile("test.tlc", []byte("start int a; if a < 1 then a = 1; end exit"))
	translator := NewTranslator(srcfile, DefaultConfig())
	_, errs := translator.Translate()
	//
	assert.Equal(t, 0, len(errs))
	//
	cond, _ := translator.Code().Instruction(102)
	skip, _ := translator.Code().Instruction(103)
	//
	assert.Equal(t, "if t goto 104", cond)
	assert.Equal(t, "goto 105", skip)
}

func TestCompile_BackpatchClosure(t *testing.T) {
	inputs := []string{
		"start int a; if a then a = 1; else a = 2; end exit",
		"start int a; if a then if a then a = 1; end else do a = 2; while a end end exit",
		"start int a; do if a then a = 1; end while a end exit",
		"start int a; do do a = a; while a end while a end exit",
	}
	//
	for _, input := range inputs {
		program := compile(t, input, DefaultConfig())
		assert.Equal(t, 0, len(program.Code.Incomplete()))
	}
}

// ============================================================================
// Semantic errors
// ============================================================================

func TestCompile_ErrorAccumulation(t *testing.T) {
	program, err := compileSemantic(t, "start\nint a;\nx = 1;\na = y;\nexit")
	//
	assert.Equal(t, []int{3, 4}, err.Lines)
	assert.Equal(t, "semantic error!\nerror on line 3\nerror on line 4", err.Error())
	assert.Equal(t, codegen.ERROR, program.Type)
	assert.Equal(t, "100\tINTEGER a\n", program.Code.String())
}

func TestCompile_AssignmentMismatch(t *testing.T) {
	_, err := compileSemantic(t, "start\nint a;\na = 1.5;\nexit")
	//
	assert.Equal(t, []int{3}, err.Lines)
}

func TestCompile_NoWidening(t *testing.T) {
	program, err := compileSemantic(t, "start\nfloat f;\nf = 1;\nf = 1.0;\nexit")
	//
	assert.Equal(t, []int{3}, err.Lines)
	assert.Equal(t, "100\tFLOAT f\n101\tf = 1.0\n", program.Code.String())
}

func TestCompile_Redeclaration(t *testing.T) {
	program, err := compileSemantic(t, "start\nint a;\nint a;\na = 1;\nexit")
	//
	assert.Equal(t, []int{3}, err.Lines)
	assert.Equal(t, 1, len(program.Variables.Variables()))
	assert.Equal(t, 4, program.Variables.Frame())
	assert.Equal(t, "100\tINTEGER a\n101\ta = 1\n", program.Code.String())
}

func TestCompile_RedeclarationOtherType(t *testing.T) {
	program, err := compileSemantic(t, "start\nint a;\nfloat b, a;\na = 1;\nexit")
	//
	assert.Equal(t, []int{3}, err.Lines)
	// The first declaration remains in force
	assert.Equal(t, codegen.INTEGER, program.Variables.Lookup("a").Unwrap().Type())
	assert.Equal(t, "100\tINTEGER a\n101\tFLOAT b\n102\ta = 1\n", program.Code.String())
}

func TestCompile_OperatorMismatch(t *testing.T) {
	program, err := compileSemantic(t, "start\nint a;\nstring s;\nprint(a + s);\nprint(a);\nexit")
	// Code is generated regardless
	assert.Equal(t, []int{4}, err.Lines)
	assert.Equal(t, "100\tINTEGER a\n101\tSTRING s\n102\tt = a + s\n103\tout a\n", program.Code.String())
}

func TestCompile_UndeclaredOperand(t *testing.T) {
	program, err := compileSemantic(t, "start\nint a;\na = b + 1;\nexit")
	//
	assert.Equal(t, []int{3}, err.Lines)
	assert.Equal(t, "100\tINTEGER a\n101\tt = none + 1\n", program.Code.String())
}

func TestCompile_UndeclaredScan(t *testing.T) {
	program, err := compileSemantic(t, "start\nscan(z);\nprint(1);\nexit")
	//
	assert.Equal(t, []int{2}, err.Lines)
	assert.Equal(t, "100\tout 1\n", program.Code.String())
}

func TestCompile_ErrorIsContagious(t *testing.T) {
	// Only the statement is reported, not each operator touching the error
	_, err := compileSemantic(t, "start\nint a;\nprint(-(a + {x}) * 2 - 1);\nexit")
	//
	assert.Equal(t, []int{3}, err.Lines)
}

func TestCompile_Conditions(t *testing.T) {
	_, err := compileSemantic(t, "start\nfloat f;\nif f then\nprint(1);\nend\ndo print(2); while {s}\nend\nexit")
	//
	assert.Equal(t, []int{3, 6}, err.Lines)
}

func TestCompile_NestedFailure(t *testing.T) {
	program, err := compileSemantic(t, "start\nint a;\nif a then\n  a = 1.5;\nend\nexit")
	//
	assert.Equal(t, []int{4, 3}, err.Lines)
	assert.Equal(t, "100\tINTEGER a\n101\tif a goto 103\n102\tgoto 103\n", program.Code.String())
}

func TestCompile_ErrorsDoNotStopCode(t *testing.T) {
	program, err := compileSemantic(t, "start\nint a;\na = {s};\na = 2;\nprint(a);\nexit")
	//
	assert.Equal(t, []int{3}, err.Lines)
	assert.Equal(t, "100\tINTEGER a\n101\ta = 2\n102\tout a\n", program.Code.String())
}

// ============================================================================
// Syntax errors
// ============================================================================

func TestCompile_MissingSemicolon(t *testing.T) {
	checkSyntaxError(t, "start\nint a;\na = 1\nexit", 4, "unexpected lexeme [exit]")
}

func TestCompile_SyntaxBeforeSemantic(t *testing.T) {
	// The type mismatch on line 3 is never reported
	checkSyntaxError(t, "start\nint a;\na = 1.5;\nprint(a)\nexit", 5, "unexpected lexeme [exit]")
}

func TestCompile_InvalidLexeme(t *testing.T) {
	checkSyntaxError(t, "start int a; a = 1 @ 2; exit", 1, "invalid lexeme [@]")
	checkSyntaxError(t, "start int a; a = 1 | 2; exit", 1, "invalid lexeme [|]")
}

func TestCompile_UnexpectedEnd(t *testing.T) {
	checkSyntaxError(t, "start int a;\na = 1;\n", 3, "unexpected end of file")
	checkSyntaxError(t, "start print({unterminated); exit", 1, "unexpected end of file")
}

func TestCompile_MissingStart(t *testing.T) {
	checkSyntaxError(t, "int a; exit", 1, "unexpected lexeme [int]")
}

func TestCompile_EmptyStatementList(t *testing.T) {
	checkSyntaxError(t, "start int a; exit", 1, "unexpected lexeme [exit]")
}

func TestCompile_TrailingInput(t *testing.T) {
	checkSyntaxError(t, "start print(1); exit\nprint(2);", 2, "unexpected lexeme [print]")
}

func TestCompile_StrayBrace(t *testing.T) {
	checkSyntaxError(t, "start print(1); } exit", 1, "unexpected lexeme [}]")
}

func TestCompile_DeclarationAfterStatement(t *testing.T) {
	checkSyntaxError(t, "start print(1); int a; exit", 1, "unexpected lexeme [int]")
}

// ============================================================================
// Internal errors
// ============================================================================

func TestCompile_InternalErrorRecovered(t *testing.T) {
	var (
		program = Program{Type: codegen.VOID}
		err     error
	)
	//
	func() {
		defer recoverInternalError(&program, &err)
		//
		translator := NewTranslator(source.NewSourceFile("test.tlc", nil), DefaultConfig())
		translator.backpatch([]uint{123}, 100)
	}()
	//
	var ierr *codegen.InternalError
	//
	assert.True(t, errors.As(err, &ierr))
	assert.Equal(t, "backpatch of unknown instruction 123", ierr.Message())
	assert.True(t, program.Code == nil)
}

func TestCompile_OtherPanicPropagated(t *testing.T) {
	defer func() {
		assert.Equal(t, "boom", recover())
	}()
	//
	func() {
		var (
			program Program
			err     error
		)
		//
		defer recoverInternalError(&program, &err)
		//
		panic("boom")
	}()
}

// ============================================================================
// Helpers
// ============================================================================

func compile(t *testing.T, input string, config Config) Program {
	t.Helper()
	//
	program, err := Compile(source.NewSourceFile("test.tlc", []byte(input)), config)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	//
	return program
}

func checkListing(t *testing.T, input string, lines ...string) Program {
	t.Helper()
	//
	program := compile(t, input, DefaultConfig())
	expected := strings.Join(lines, "\n") + "\n"
	//
	assert.Equal(t, codegen.VOID, program.Type)
	assert.Equal(t, expected, program.Code.String())
	assert.Equal(t, 0, len(program.Code.Incomplete()))
	//
	return program
}

func compileSemantic(t *testing.T, input string) (Program, *SemanticError) {
	t.Helper()
	//
	var serr *SemanticError
	//
	program, err := Compile(source.NewSourceFile("test.tlc", []byte(input)), DefaultConfig())
	if !errors.As(err, &serr) {
		t.Fatalf("expected semantic error, got %v", err)
	}
	//
	return program, serr
}

func checkSyntaxError(t *testing.T, input string, line int, msg string) {
	t.Helper()
	//
	var serr *source.SyntaxError
	//
	_, err := Compile(source.NewSourceFile("test.tlc", []byte(input)), DefaultConfig())
	if !errors.As(err, &serr) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	//
	assert.Equal(t, line, serr.Line())
	assert.Equal(t, msg, serr.Message())
}
