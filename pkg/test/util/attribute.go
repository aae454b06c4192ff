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
	"github.com/consensys/go-tlc/pkg/util/source"
)

// Attribute provides a generic mechanism for extracting attributes from the
// beginning of a file.  It parses a given line producing an item (if the line
// matched) or an error (if the line matched but was malformed).
type Attribute[T any] func(int, []source.Line, *source.File) (bool, T, error)

// ExtractAttributes extracts any matching attributes at the beginning of a
// source file.  Extraction stops at the first line which no attribute matches.
func ExtractAttributes[T any](srcfile *source.File, attributes ...Attribute[T]) ([]T, []error) {
	var (
		lines = srcfile.Lines()
		// Now construct items
		items []T
		//
		errors []error
		//
		matched = true
	)
	// scan file line-by-line until no more matches found
	for i := 0; i < len(lines) && matched; i++ {
		matched = false
		//
		for _, attribute := range attributes {
			ok, item, err := attribute(i, lines, srcfile)
			//
			if err != nil {
				errors = append(errors, err)
			} else if ok {
				items = append(items, item)
			}
			//
			matched = matched || ok
		}
	}
	//
	return items, errors
}
