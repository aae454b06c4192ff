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

import "github.com/consensys/go-tlc/pkg/util"

// Attribute is the synthesized result of recognising a grammar rule.  This
// comprises the address holding its value (if any), its type and three lists of
// instructions whose jump targets remain to be backpatched.  Lists are
// append-only and may contain duplicates.
type Attribute struct {
	address Address
	kind    Type
	// Jumps to the instruction following this construct
	next []uint
	// Jumps taken when this construct holds
	truelist []uint
	// Jumps taken when this construct does not hold
	falselist []uint
}

// NewAttribute constructs an attribute for a value held at the given address.
// The attribute's type is that of the address, or VOID if there is none.
func NewAttribute(addr Address) Attribute {
	if addr == nil {
		return Attribute{kind: VOID}
	}
	//
	return Attribute{address: addr, kind: addr.Type()}
}

// VoidAttribute constructs the attribute of a well-formed statement.
func VoidAttribute() Attribute {
	return Attribute{kind: VOID}
}

// ErrorAttribute constructs an attribute marking a construct which failed to
// type check.
func ErrorAttribute() Attribute {
	return Attribute{kind: ERROR}
}

// StatementAttribute constructs a VOID attribute, or an ERROR attribute when
// the statement failed.
func StatementAttribute(failed bool) Attribute {
	if failed {
		return ErrorAttribute()
	}
	//
	return VoidAttribute()
}

// Type returns the type of this attribute.
func (p *Attribute) Type() Type {
	return p.kind
}

// Address returns the address holding the value of this attribute, if any.
func (p *Attribute) Address() util.Option[Address] {
	if p.address == nil {
		return util.None[Address]()
	}
	//
	return util.Some(p.address)
}

// Value returns the text of this attribute's address as used in instructions,
// or "none" when there is no address.
func (p *Attribute) Value() string {
	if p.address == nil {
		return "none"
	}
	//
	return p.address.Value()
}

// NextList returns the pending jumps to whatever follows this construct.
func (p *Attribute) NextList() []uint {
	return p.next
}

// TrueList returns the pending jumps taken when this construct holds.
func (p *Attribute) TrueList() []uint {
	return p.truelist
}

// FalseList returns the pending jumps taken when this construct does not hold.
func (p *Attribute) FalseList() []uint {
	return p.falselist
}

// AddToNextList appends instruction addresses to the next list.
func (p *Attribute) AddToNextList(addrs ...uint) {
	p.next = append(p.next, addrs...)
}

// AddToTrueList appends instruction addresses to the true list.
func (p *Attribute) AddToTrueList(addrs ...uint) {
	p.truelist = append(p.truelist, addrs...)
}

// AddToFalseList appends instruction addresses to the false list.
func (p *Attribute) AddToFalseList(addrs ...uint) {
	p.falselist = append(p.falselist, addrs...)
}

// Merge appends the jump lists of the given attributes onto those of this
// attribute, preserving order.  The given attributes are left unchanged.
func (p *Attribute) Merge(others ...Attribute) {
	for _, o := range others {
		p.AddToNextList(o.next...)
		p.AddToTrueList(o.truelist...)
		p.AddToFalseList(o.falselist...)
	}
}
