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
	"fmt"
	"os"
)

// ReadFile reads a single source file from disk, or produces an error.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return NewSourceFile(filename, bytes), nil
}

// Line provides information about a given line within the original text.
// This includes the line number (counting from 1), and the span of the line
// within the original text.
type Line struct {
	// Original text
	text []byte
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a file
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original text.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File represents a given source file (typically stored on disk).  Contents
// are held as raw bytes, with each byte read as one character.
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []byte
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, bytes}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []byte {
	return s.contents
}

// SyntaxError constructs a syntax error over a given span of this file, which
// was reported on a given line.
func (s *File) SyntaxError(span Span, line int, msg string) *SyntaxError {
	return &SyntaxError{s, span, line, msg}
}

// Lines splits this file into its physical lines.  A trailing newline does not
// start a further (empty) line.
func (s *File) Lines() []Line {
	var (
		lines []Line
		start = 0
		num   = 1
	)
	//
	for i, c := range s.contents {
		if c == '\n' {
			lines = append(lines, Line{s.contents, Span{start, i}, num})
			start = i + 1
			num++
		}
	}
	//
	if start < len(s.contents) {
		lines = append(lines, Line{s.contents, Span{start, len(s.contents)}, num})
	}
	//
	return lines
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span.  Observe that, if the position is beyond the
// bounds of the source file then the last physical line is returned.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	var (
		index = span.start
		num   = 1
		start = 0
	)
	//
	for i := 0; i < len(s.contents); i++ {
		if i == index {
			end := findEndOfLine(index, s.contents)
			return Line{s.contents, Span{start, end}, num}
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, len(s.contents)}, num}
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, the line on which it was reported, and an error
// message.
type SyntaxError struct {
	srcfile *File
	// Character span of the offending token.
	span Span
	// Line number on which the error was reported (counting from 1).
	line int
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Line returns the line number on which this error was reported.
func (p *SyntaxError) Line() int {
	return p.line
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%02d: %s", p.line, p.msg)
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

// Find the end of the enclosing line
func findEndOfLine(index int, text []byte) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
