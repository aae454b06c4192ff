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
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-tlc/pkg/util/source"
	"github.com/consensys/go-tlc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes used by the various commands.
const (
	// EXIT_USAGE indicates incorrect usage of a command.
	EXIT_USAGE = 1
	// EXIT_SYNTAX indicates the source file was not syntactically well formed.
	EXIT_SYNTAX = 2
	// EXIT_SEMANTIC indicates the source file was not well typed.
	EXIT_SEMANTIC = 3
	// EXIT_IO indicates a file could not be read or written.
	EXIT_IO = 4
	// EXIT_INTERNAL indicates a fault within the compiler itself.
	EXIT_INTERNAL = 5
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// Read a given source file, or exit if this is not possible.
func readSourceFile(filename string) *source.File {
	log.Debug(fmt.Sprintf("reading source file %s", filename))
	//
	srcfile, err := source.ReadFile(filename)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_IO)
	}
	//
	return srcfile
}

// Construct a highlighter for diagnostics written to stdout.  Colour is only
// used when writing to a terminal, and has not been disabled.
func newHighlighter(cmd *cobra.Command) termio.Highlighter {
	return termio.NewHighlighter(!GetFlag(cmd, "no-color") && termio.IsTerminal(os.Stdout))
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(w io.Writer, err *source.SyntaxError, hl termio.Highlighter) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(0, min(line.Length()-lineOffset, span.Length()))
	red := termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	// Print error + line number
	fmt.Fprintf(w, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		err.Line(), 1+lineOffset, 1+lineOffset+length, hl.Apply(red, err.Message()))
	// Print separator line
	fmt.Fprintln(w)
	// Print line
	fmt.Fprintln(w, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(w, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(w, hl.Apply(red, strings.Repeat("^", max(1, length))))
}
