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
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DEFAULT_BASE_ADDRESS is the address of the first instruction in a buffer,
// unless otherwise configured.
const DEFAULT_BASE_ADDRESS uint = 100

// PLACEHOLDER marks the jump target of an instruction awaiting backpatching.
const PLACEHOLDER = "@@@"

// instruction is a single entry in the buffer.  An instruction is incomplete
// whilst its placeholder is non-empty.
type instruction struct {
	text        string
	placeholder string
}

func (p *instruction) complete() bool {
	return p.placeholder == ""
}

// Buffer is an ordered log of instructions, indexed by consecutive addresses
// starting from a given base.  Instructions are only ever appended, and each
// incomplete instruction is completed (in place) by backpatching.
type Buffer struct {
	base  uint
	insns []instruction
}

// NewBuffer constructs an empty buffer whose first instruction will be at the
// given address.
func NewBuffer(base uint) *Buffer {
	return &Buffer{base, nil}
}

// Base returns the address of the first instruction in this buffer.
func (p *Buffer) Base() uint {
	return p.base
}

// Len returns the number of instructions in this buffer.
func (p *Buffer) Len() uint {
	return uint(len(p.insns))
}

// NextAddress returns the address that the next instruction emitted will be
// given.
func (p *Buffer) NextAddress() uint {
	return p.base + uint(len(p.insns))
}

// Emit appends a complete instruction, returning its address.
func (p *Buffer) Emit(text string) uint {
	return p.append(instruction{text, ""})
}

// EmitIncomplete appends an instruction containing a placeholder which will be
// replaced by a concrete address when backpatched.  The placeholder must occur
// in the text.
func (p *Buffer) EmitIncomplete(text string, placeholder string) (uint, error) {
	if placeholder == "" || !strings.Contains(text, placeholder) {
		return 0, internalErrorf("placeholder \"%s\" missing from instruction \"%s\"", placeholder, text)
	}
	//
	return p.append(instruction{text, placeholder}), nil
}

// Backpatch replaces the placeholder of each instruction at the given addresses
// with the target address.  Instructions which are already complete are left
// as they are, so an address may safely appear more than once.  Every address
// must refer to an instruction already emitted.
func (p *Buffer) Backpatch(addrs []uint, target uint) error {
	for _, addr := range addrs {
		if !p.Contains(addr) {
			return internalErrorf("backpatch of unknown instruction %d", addr)
		}
		//
		insn := &p.insns[addr-p.base]
		//
		if !insn.complete() {
			log.Debugf("backpatch %d -> %d", addr, target)
			insn.text = strings.Replace(insn.text, insn.placeholder, strconv.FormatUint(uint64(target), 10), 1)
			insn.placeholder = ""
		}
	}
	//
	return nil
}

// Contains checks whether an instruction exists at the given address.
func (p *Buffer) Contains(addr uint) bool {
	return addr >= p.base && addr < p.NextAddress()
}

// Instruction returns the text of the instruction at the given address, and
// whether or not it is complete.  This panics if no such instruction exists.
func (p *Buffer) Instruction(addr uint) (string, bool) {
	if !p.Contains(addr) {
		panic(fmt.Sprintf("invalid instruction address %d", addr))
	}
	//
	insn := p.insns[addr-p.base]
	//
	return insn.text, insn.complete()
}

// Incomplete returns the addresses of all instructions still awaiting a
// backpatch, in ascending order.
func (p *Buffer) Incomplete() []uint {
	var addrs []uint
	//
	for i, insn := range p.insns {
		if !insn.complete() {
			addrs = append(addrs, p.base+uint(i))
		}
	}
	//
	return addrs
}

// WriteTo renders the listing, one instruction per line as its address and text
// separated by a tab.
func (p *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	//
	for i, insn := range p.insns {
		n, err := fmt.Fprintf(w, "%d\t%s\n", p.base+uint(i), insn.text)
		total += int64(n)
		//
		if err != nil {
			return total, err
		}
	}
	//
	return total, nil
}

func (p *Buffer) String() string {
	var builder strings.Builder
	// Writing to a strings.Builder cannot fail
	_, _ = p.WriteTo(&builder)
	//
	return builder.String()
}

func (p *Buffer) append(insn instruction) uint {
	addr := p.NextAddress()
	//
	log.Debugf("emit %d: %s", addr, insn.text)
	//
	p.insns = append(p.insns, insn)
	//
	return addr
}
