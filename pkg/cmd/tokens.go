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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-tlc/pkg/tlc/lexer"
	"github.com/consensys/go-tlc/pkg/util/source"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file.tlc",
	Short: "print the tokens of a source file.",
	Long: `Print the tokens of a given source file, one per line, up to and including
the end of the file or the first invalid token.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		srcfile := readSourceFile(args[0])
		//
		if code := dumpTokens(os.Stdout, srcfile); code != 0 {
			os.Exit(code)
		}
	},
}

// Write every token of a given file, returning the exit code to use.
func dumpTokens(w io.Writer, srcfile *source.File) int {
	lex := lexer.NewLexer(bytes.NewReader(srcfile.Contents()))
	tokens, err := lex.Collect()
	//
	for _, tok := range tokens {
		fmt.Fprintln(w, tok.String())
	}
	//
	switch {
	case err != nil:
		fmt.Fprintln(w, err)
		return EXIT_IO
	case len(tokens) > 0 && tokens[len(tokens)-1].Kind == lexer.INVALID_TOKEN:
		return EXIT_SYNTAX
	default:
		return 0
	}
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
