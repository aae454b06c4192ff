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
package codegen

// Type is the semantic type of a value, or of a statement.
type Type uint

const (
	// VOID is the type of a well-formed statement, which has no value.
	VOID Type = iota
	// INTEGER values (also used for booleans)
	INTEGER
	// FLOAT values
	FLOAT
	// STRING values
	STRING
	// ERROR marks a construct which failed to type check.  It is contagious:
	// anything built from an ERROR is itself an ERROR.
	ERROR
)

func (t Type) String() string {
	switch t {
	case VOID:
		return "VOID"
	case INTEGER:
		return "INTEGER"
	case FLOAT:
		return "FLOAT"
	case STRING:
		return "STRING"
	default:
		return "ERROR"
	}
}

// IsNumeric checks whether this is either INTEGER or FLOAT.
func (t Type) IsNumeric() bool {
	return t == INTEGER || t == FLOAT
}

// Width returns the storage width (in bytes) reserved for a value of the given
// type.  Types without storage have width 0.
func Width(t Type) uint {
	switch t {
	case INTEGER:
		return 4
	case FLOAT:
		return 8
	case STRING:
		return 40
	default:
		return 0
	}
}
