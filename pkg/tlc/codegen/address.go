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

import "fmt"

// Address identifies where a computed value lives: a declared variable
// (NameAddress), a compiler-generated temporary (TempAddress) or an inlined
// literal (ConstAddress).  No other implementations exist.
type Address interface {
	// Type returns the semantic type of the value held at this address.
	Type() Type
	// Value returns the text used for this address within an instruction.
	Value() string
	// Prevents implementations outside this package.
	address()
}

// Describe renders an address together with its kind and type, for use in
// diagnostics and debug output.
func Describe(addr Address) string {
	switch a := addr.(type) {
	case NameAddress:
		return fmt.Sprintf("name %s:%s (width %d)", a.id, a.kind, a.width)
	case TempAddress:
		return fmt.Sprintf("temp %s:%s", a.name, a.kind)
	case ConstAddress:
		return fmt.Sprintf("const %s:%s", a.text, a.kind)
	case nil:
		return "none"
	default:
		panic(fmt.Sprintf("unknown address %v", addr))
	}
}

// ============================================================================
// Name Address
// ============================================================================

// NameAddress is a declared variable.
type NameAddress struct {
	id    string
	kind  Type
	width uint
}

// NewNameAddress constructs the address of a variable with the given name and
// type.
func NewNameAddress(id string, kind Type) NameAddress {
	return NameAddress{id, kind, Width(kind)}
}

// Name returns the declared name of this variable.
func (a NameAddress) Name() string {
	return a.id
}

// Type implementation for the Address interface.
func (a NameAddress) Type() Type {
	return a.kind
}

// Value implementation for the Address interface.
func (a NameAddress) Value() string {
	return a.id
}

// Width returns the storage width of this variable.
func (a NameAddress) Width() uint {
	return a.width
}

func (a NameAddress) address() {}

// ============================================================================
// Temp Address
// ============================================================================

// TempAddress is a compiler-generated location holding an intermediate result.
type TempAddress struct {
	name string
	kind Type
}

// Type implementation for the Address interface.
func (a TempAddress) Type() Type {
	return a.kind
}

// Value implementation for the Address interface.
func (a TempAddress) Value() string {
	return a.name
}

// Width returns the storage width of this temporary.
func (a TempAddress) Width() uint {
	return Width(a.kind)
}

func (a TempAddress) address() {}

// TempPool hands out fresh temporaries.  The first is named "t", and those
// after it "t1", "t2", etc.  Each compilation owns its own pool.
type TempPool struct {
	count uint
}

// Fresh allocates a new temporary of the given type.
func (p *TempPool) Fresh(kind Type) TempAddress {
	var name = "t"
	//
	if p.count > 0 {
		name = fmt.Sprintf("t%d", p.count)
	}
	//
	p.count++
	//
	return TempAddress{name, kind}
}

// Count returns the number of temporaries allocated so far.
func (p *TempPool) Count() uint {
	return p.count
}

// ============================================================================
// Const Address
// ============================================================================

// ConstAddress is a literal value inlined into an instruction.
type ConstAddress struct {
	text string
	kind Type
}

// NewConstAddress wraps the text of a literal of the given type.
func NewConstAddress(text string, kind Type) ConstAddress {
	return ConstAddress{text, kind}
}

// Type implementation for the Address interface.
func (a ConstAddress) Type() Type {
	return a.kind
}

// Value implementation for the Address interface.
func (a ConstAddress) Value() string {
	return a.text
}

func (a ConstAddress) address() {}
