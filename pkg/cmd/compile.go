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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-tlc/pkg/tlc/codegen"
	"github.com/consensys/go-tlc/pkg/tlc/compiler"
	"github.com/consensys/go-tlc/pkg/util"
	"github.com/consensys/go-tlc/pkg/util/source"
	"github.com/consensys/go-tlc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] file.tlc",
	Short: "compile a source file into a listing of pseudo-instructions.",
	Long: `Type check a given source file and, if it is well typed, translate it into a
listing of pseudo-instructions.  Syntax errors are reported immediately, whilst
semantic errors are reported together once the whole file has been read.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		config := compiler.DefaultConfig()
		config.BaseAddress = GetUint(cmd, "base")
		output := GetString(cmd, "output")
		frame := GetFlag(cmd, "frame")
		hl := newHighlighter(cmd)
		// Compile source file, or print errors
		srcfile := readSourceFile(args[0])
		stats := util.NewPerfStats()
		program, err := compiler.Compile(srcfile, config)
		//
		stats.Log("compilation")
		//
		if code := reportCompileError(os.Stdout, err, hl); code != 0 {
			os.Exit(code)
		}
		//
		if frame {
			log.Infof("frame size %d bytes (%d variables)", program.Variables.Frame(),
				len(program.Variables.Variables()))
		}
		//
		if err := writeListing(program.Code, output); err != nil {
			fmt.Println(err)
			os.Exit(EXIT_IO)
		}
	},
}

// Report the outcome of a failed compilation, returning the exit code to use.
// A nil error gives exit code 0, and nothing is reported.
func reportCompileError(w io.Writer, err error, hl termio.Highlighter) int {
	var (
		syntaxErr   *source.SyntaxError
		semanticErr *compiler.SemanticError
		internalErr *codegen.InternalError
	)
	//
	switch {
	case err == nil:
		return 0
	case errors.As(err, &syntaxErr):
		printSyntaxError(w, syntaxErr, hl)
		return EXIT_SYNTAX
	case errors.As(err, &semanticErr):
		fmt.Fprintln(w, semanticErr.Error())
		return EXIT_SEMANTIC
	case errors.As(err, &internalErr):
		fmt.Fprintln(w, internalErr.Error())
		return EXIT_INTERNAL
	default:
		fmt.Fprintln(w, err)
		return EXIT_INTERNAL
	}
}

// Write the listing either to a given file or, if no file is given, to stdout.
func writeListing(code *codegen.Buffer, output string) error {
	if output == "" {
		_, err := code.WriteTo(os.Stdout)
		return err
	}
	//
	log.Debug(fmt.Sprintf("writing listing to %s", output))
	//
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	//
	if _, err = code.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	//
	return file.Close()
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("output", "o", "", "write listing to file (rather than stdout)")
	compileCmd.Flags().Uint("base", codegen.DEFAULT_BASE_ADDRESS, "address of first instruction")
	compileCmd.Flags().Bool("frame", false, "report frame size of declared variables")
}
