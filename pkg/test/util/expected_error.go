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
package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-tlc/pkg/util/source"
)

// ExpectedError describes an error which a test program should produce.  This
// is either a syntax error (with a message) reported on a given line, or a
// semantic error recorded against a given line.
type ExpectedError struct {
	// Indicates whether this is a syntax error or a semantic error.
	Syntax bool
	// Line on which the error is reported.
	Line int
	// Message of a syntax error (empty for semantic errors).
	Message string
}

func (p ExpectedError) String() string {
	if p.Syntax {
		return fmt.Sprintf("syntax error on line %d: %s", p.Line, p.Message)
	}
	//
	return fmt.Sprintf("semantic error on line %d", p.Line)
}

// Extract an expected syntax error from a line of the form
// "//error:LINE:MESSAGE".
func extractSyntaxError(lineno int, lines []source.Line, _ *source.File) (bool, ExpectedError, error) {
	var contents = lines[lineno].String()
	//
	if !strings.HasPrefix(contents, "//error") {
		return false, ExpectedError{}, nil
	}
	//
	splits := strings.SplitN(contents, ":", 3)
	//
	if len(splits) != 3 {
		return true, ExpectedError{}, fmt.Errorf("malformed expected error \"%s\", should be e.g. \"//error:X:msg\"",
			contents)
	}
	//
	line, err := parseLineNumber(splits[1])
	//
	return true, ExpectedError{true, line, splits[2]}, err
}

// Extract an expected semantic error from a line of the form
// "//semantic:LINE".
func extractSemanticError(lineno int, lines []source.Line, _ *source.File) (bool, ExpectedError, error) {
	var contents = lines[lineno].String()
	//
	if !strings.HasPrefix(contents, "//semantic") {
		return false, ExpectedError{}, nil
	}
	//
	splits := strings.Split(contents, ":")
	//
	if len(splits) != 2 {
		return true, ExpectedError{}, fmt.Errorf("malformed expected error \"%s\", should be e.g. \"//semantic:X\"",
			contents)
	}
	//
	line, err := parseLineNumber(splits[1])
	//
	return true, ExpectedError{false, line, ""}, err
}

func parseLineNumber(str string) (int, error) {
	line, err := strconv.Atoi(strings.TrimSpace(str))
	//
	if err != nil {
		return 0, fmt.Errorf("invalid line \"%s\" (%s)", str, err.Error())
	} else if line <= 0 {
		return 0, fmt.Errorf("invalid line \"%s\" (lines numbered from 1)", str)
	}
	//
	return line, nil
}
