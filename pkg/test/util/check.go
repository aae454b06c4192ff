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
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/consensys/go-tlc/pkg/tlc/compiler"
	"github.com/consensys/go-tlc/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the test programs and their expected listings are found.
const TestDir = "../../testdata"

// CheckValid checks that a given test program compiles without error, and
// produces exactly the listing found alongside it.
func CheckValid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/valid/%s.tlc", TestDir, test)
		listing  = fmt.Sprintf("%s/valid/%s.lst", TestDir, test)
	)
	// Enable testing each program in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	expected := readFile(t, listing)
	// Compile source file
	program, err := compiler.Compile(srcfile, compiler.DefaultConfig())
	//
	if err != nil {
		t.Fatalf("Error %s should have compiled (%s)", filename, err)
	} else if incomplete := program.Code.Incomplete(); len(incomplete) > 0 {
		t.Fatalf("Error %s has incomplete instructions %v", filename, incomplete)
	} else if actual := program.Code.String(); actual != expected {
		t.Fatalf("Error %s produced listing:\n%s\nexpected:\n%s", filename, actual, expected)
	}
}

// CheckInvalid checks that a given test program fails to compile, producing
// exactly the errors described at the start of the file.
func CheckInvalid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/invalid/%s.tlc", TestDir, test)
	// Enable testing each program in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Extract expected errors for comparison
	expected, errs := ExtractAttributes(srcfile, extractSyntaxError, extractSemanticError)
	//
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	} else if len(expected) == 0 {
		t.Fatalf("Error %s describes no expected errors", filename)
	}
	// Compile source file to produce errors
	_, err := compiler.Compile(srcfile, compiler.DefaultConfig())
	//
	checkExpectedErrors(t, filename, actualErrors(t, filename, err), expected)
}

// Convert the outcome of compilation into a list of errors, so that it can be
// compared with those expected.
func actualErrors(t *testing.T, filename string, err error) []ExpectedError {
	var (
		syntaxErr   *source.SyntaxError
		semanticErr *compiler.SemanticError
		actual      []ExpectedError
	)
	//
	switch {
	case err == nil:
		t.Fatalf("Error %s should not have compiled", filename)
	case errors.As(err, &syntaxErr):
		actual = append(actual, ExpectedError{true, syntaxErr.Line(), syntaxErr.Message()})
	case errors.As(err, &semanticErr):
		for _, line := range semanticErr.Lines {
			actual = append(actual, ExpectedError{false, line, ""})
		}
	default:
		t.Fatalf("Error %s failed unexpectedly (%s)", filename, err)
	}
	//
	return actual
}

func checkExpectedErrors(t *testing.T, filename string, actual, expected []ExpectedError) {
	var (
		failed = false
		// Construct initial message
		msg = fmt.Sprintf("Error %s\n", filename)
	)
	// Pad out with what received
	for i := 0; i < max(len(actual), len(expected)); i++ {
		if i < len(actual) && i < len(expected) && actual[i] == expected[i] {
			continue
		}
		// Indicate error arose
		failed = true
		// actual
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected %s\n", msg, actual[i])
		}
		// expected
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected %s\n", msg, expected[i])
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}

func readSourceFile(t *testing.T, filename string) *source.File {
	srcfile, err := source.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	//
	return srcfile
}

func readFile(t *testing.T, filename string) string {
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Normalise line endings
	return strings.ReplaceAll(string(bytes), "\r\n", "\n")
}
