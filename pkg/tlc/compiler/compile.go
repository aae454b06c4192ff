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
	"strings"

	"github.com/consensys/go-tlc/pkg/tlc/codegen"
	"github.com/consensys/go-tlc/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Config holds settings which affect code generation.
type Config struct {
	// Address of the first generated instruction.
	BaseAddress uint
}

// DefaultConfig returns the configuration used when nothing else is specified.
func DefaultConfig() Config {
	return Config{BaseAddress: codegen.DEFAULT_BASE_ADDRESS}
}

// Program is the outcome of translating a source file which is syntactically
// well formed.
type Program struct {
	// Generated instruction listing.
	Code *codegen.Buffer
	// Variables declared by the program.
	Variables *codegen.VariableTable
	// Overall type, which is VOID for a well-typed program.
	Type codegen.Type
	// Lines on which semantic errors were found (if any).
	ErrorLines []int
}

// SemanticError reports every line on which a type error, undeclared variable
// or duplicate declaration was found.
type SemanticError struct {
	Lines []int
}

func (p *SemanticError) Error() string {
	var builder strings.Builder
	//
	builder.WriteString("semantic error!")
	//
	for _, line := range p.Lines {
		builder.WriteString(fmt.Sprintf("\nerror on line %d", line))
	}
	//
	return builder.String()
}

// Compile a given source file into a listing of pseudo-instructions.  There are
// three kinds of failure:
//
// (1) a syntax error is returned as a *source.SyntaxError, and no program is
// produced;
//
// (2) semantic errors are returned together as a *SemanticError alongside the
// (partial) program;
//
// (3) an internal inconsistency in code generation is returned as a
// *codegen.InternalError, and no program is produced.
func Compile(srcfile *source.File, config Config) (program Program, err error) {
	defer recoverInternalError(&program, &err)
	//
	log.Debugf("compiling %s (base address %d)", srcfile.Filename(), config.BaseAddress)
	//
	translator := NewTranslator(srcfile, config)
	//
	kind, errs := translator.Translate()
	if len(errs) > 0 {
		return Program{}, &errs[0]
	}
	//
	program = Program{translator.Code(), translator.Variables(), kind, translator.ErrorLines()}
	//
	if kind != codegen.VOID {
		return program, &SemanticError{translator.ErrorLines()}
	}
	//
	return program, nil
}

// Convert a panic arising from an internal error back into an ordinary error.
// Any other panic is propagated.
func recoverInternalError(program *Program, err *error) {
	if r := recover(); r != nil {
		ierr, ok := r.(*codegen.InternalError)
		if !ok {
			panic(r)
		}
		//
		log.Debugf("recovered from %s", ierr.Error())
		//
		*program, *err = Program{}, ierr
	}
}
