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
	"testing"

	"github.com/consensys/go-tlc/pkg/util/assert"
)

func TestAddress_Width(t *testing.T) {
	assert.Equal(t, 4, NewNameAddress("a", INTEGER).Width())
	assert.Equal(t, 8, NewNameAddress("a", FLOAT).Width())
	assert.Equal(t, 40, NewNameAddress("a", STRING).Width())
	assert.Equal(t, 0, NewNameAddress("a", ERROR).Width())
	assert.Equal(t, 0, Width(VOID))
}

func TestAddress_Temps(t *testing.T) {
	var pool TempPool
	//
	names := []string{}
	for i := 0; i < 4; i++ {
		names = append(names, pool.Fresh(INTEGER).Value())
	}
	//
	assert.Equal(t, []string{"t", "t1", "t2", "t3"}, names)
	assert.Equal(t, 4, pool.Count())
	// Separate pools are independent
	var other TempPool
	assert.Equal(t, "t", other.Fresh(FLOAT).Value())
}

func TestAddress_Const(t *testing.T) {
	c := NewConstAddress("2.50", FLOAT)
	//
	assert.Equal(t, "2.50", c.Value())
	assert.Equal(t, FLOAT, c.Type())
}

func TestAddress_Describe(t *testing.T) {
	var pool TempPool
	//
	assert.Equal(t, "name x:INTEGER (width 4)", Describe(NewNameAddress("x", INTEGER)))
	assert.Equal(t, "temp t:ERROR", Describe(pool.Fresh(ERROR)))
	assert.Equal(t, "const hi:STRING", Describe(NewConstAddress("hi", STRING)))
	assert.Equal(t, "none", Describe(nil))
}

func TestAttribute_Construct(t *testing.T) {
	attr := NewAttribute(NewConstAddress("1", INTEGER))
	assert.Equal(t, INTEGER, attr.Type())
	assert.Equal(t, "1", attr.Value())
	assert.True(t, attr.Address().HasValue())
	//
	void := NewAttribute(nil)
	assert.Equal(t, VOID, void.Type())
	assert.Equal(t, "none", void.Value())
	assert.True(t, void.Address().IsEmpty())
	//
	err := StatementAttribute(true)
	assert.Equal(t, ERROR, err.Type())
	ok := StatementAttribute(false)
	assert.Equal(t, VOID, ok.Type())
}

func TestAttribute_Merge(t *testing.T) {
	a := VoidAttribute()
	a.AddToNextList(100)
	a.AddToTrueList(101)
	//
	b := VoidAttribute()
	b.AddToNextList(100, 102)
	b.AddToFalseList(103)
	//
	a.Merge(b)
	// Order preserved, duplicates kept
	assert.Equal(t, []uint{100, 100, 102}, a.NextList())
	assert.Equal(t, []uint{101}, a.TrueList())
	assert.Equal(t, []uint{103}, a.FalseList())
	// Source untouched
	assert.Equal(t, []uint{100, 102}, b.NextList())
}

func TestType_Numeric(t *testing.T) {
	assert.True(t, INTEGER.IsNumeric())
	assert.True(t, FLOAT.IsNumeric())
	assert.False(t, STRING.IsNumeric())
	assert.False(t, ERROR.IsNumeric())
	assert.Equal(t, "FLOAT", FLOAT.String())
}
