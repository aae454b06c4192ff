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

import (
	"github.com/consensys/go-tlc/pkg/util"
	log "github.com/sirupsen/logrus"
)

// VariableTable records every declared variable of a program.  There is a
// single flat namespace, so variables are never removed.
type VariableTable struct {
	// Declared variables, in declaration order.
	variables []NameAddress
	// Maps names to their index in variables
	index map[string]int
	// Running total of the width of all declared variables.
	frame uint
}

// NewVariableTable constructs an empty table.
func NewVariableTable() *VariableTable {
	return &VariableTable{nil, make(map[string]int), 0}
}

// Declare a variable with the given name and type.  This returns false (and
// leaves the table untouched) if a variable of that name already exists.
func (p *VariableTable) Declare(id string, kind Type) bool {
	if p.Contains(id) {
		return false
	}
	//
	addr := NewNameAddress(id, kind)
	p.index[id] = len(p.variables)
	p.variables = append(p.variables, addr)
	p.frame += addr.Width()
	//
	log.Debugf("declared %s (frame %d)", Describe(addr), p.frame)
	//
	return true
}

// Contains checks whether a variable of the given name has been declared.
func (p *VariableTable) Contains(id string) bool {
	_, ok := p.index[id]
	return ok
}

// Lookup returns the declared variable of the given name, if it exists.
func (p *VariableTable) Lookup(id string) util.Option[NameAddress] {
	if i, ok := p.index[id]; ok {
		return util.Some(p.variables[i])
	}
	//
	return util.None[NameAddress]()
}

// Variables returns all declared variables in declaration order.
func (p *VariableTable) Variables() []NameAddress {
	return p.variables
}

// Frame returns the total width of all declared variables.
func (p *VariableTable) Frame() uint {
	return p.frame
}
