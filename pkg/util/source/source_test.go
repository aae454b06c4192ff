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
package source

import (
	"testing"

	"github.com/consensys/go-tlc/pkg/util/assert"
)

func TestSpan_Basic(t *testing.T) {
	span := NewSpan(3, 7)
	//
	assert.Equal(t, 3, span.Start())
	assert.Equal(t, 7, span.End())
	assert.Equal(t, 4, span.Length())
}

func TestSpan_Invalid(t *testing.T) {
	defer func() {
		assert.Equal(t, "invalid span", recover())
	}()
	//
	NewSpan(2, 1)
}

func TestSourceFile_Lines(t *testing.T) {
	srcfile := NewSourceFile("test.tlc", []byte("start\n\nprint(1);\nexit\n"))
	lines := srcfile.Lines()
	//
	assert.Equal(t, 4, len(lines))
	assert.Equal(t, "start", lines[0].String())
	assert.Equal(t, "", lines[1].String())
	assert.Equal(t, "print(1);", lines[2].String())
	assert.Equal(t, 3, lines[2].Number())
	assert.Equal(t, 7, lines[2].Start())
	assert.Equal(t, 9, lines[2].Length())
	assert.Equal(t, "exit", lines[3].String())
}

func TestSourceFile_NoTrailingNewline(t *testing.T) {
	srcfile := NewSourceFile("test.tlc", []byte("a\nb"))
	lines := srcfile.Lines()
	//
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "b", lines[1].String())
	assert.Equal(t, 0, len(NewSourceFile("empty.tlc", nil).Lines()))
}

func TestSourceFile_EnclosingLine(t *testing.T) {
	srcfile := NewSourceFile("test.tlc", []byte("start\n  a = 1;\nexit"))
	line := srcfile.FindFirstEnclosingLine(NewSpan(10, 11))
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "  a = 1;", line.String())
	// Beyond the end of the file
	line = srcfile.FindFirstEnclosingLine(NewSpan(20, 20))
	assert.Equal(t, 3, line.Number())
	assert.Equal(t, "exit", line.String())
}

func TestSyntaxError_Basic(t *testing.T) {
	srcfile := NewSourceFile("test.tlc", []byte("start\nexit"))
	err := srcfile.SyntaxError(NewSpan(6, 10), 2, "unexpected lexeme [exit]")
	//
	assert.Equal(t, "test.tlc", err.SourceFile().Filename())
	assert.Equal(t, 2, err.Line())
	assert.Equal(t, "unexpected lexeme [exit]", err.Message())
	assert.Equal(t, "02: unexpected lexeme [exit]", err.Error())
	//
	span := err.Span()
	line := err.FirstEnclosingLine()
	//
	assert.Equal(t, 6, span.Start())
	assert.Equal(t, 6, line.Start())
	assert.Equal(t, "exit", line.String())
}
