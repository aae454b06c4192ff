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
package test

import (
	"testing"

	"github.com/consensys/go-tlc/pkg/test/util"
)

// ===================================================================
// Syntax Errors
// ===================================================================

func Test_Invalid_Syntax_01(t *testing.T) {
	util.CheckInvalid(t, "syntax_01")
}

func Test_Invalid_Syntax_02(t *testing.T) {
	util.CheckInvalid(t, "syntax_02")
}

func Test_Invalid_Syntax_03(t *testing.T) {
	util.CheckInvalid(t, "syntax_03")
}

func Test_Invalid_Syntax_04(t *testing.T) {
	util.CheckInvalid(t, "syntax_04")
}

func Test_Invalid_Syntax_05(t *testing.T) {
	util.CheckInvalid(t, "syntax_05")
}

func Test_Invalid_Syntax_06(t *testing.T) {
	util.CheckInvalid(t, "syntax_06")
}

func Test_Invalid_Syntax_07(t *testing.T) {
	util.CheckInvalid(t, "syntax_07")
}

func Test_Invalid_Syntax_08(t *testing.T) {
	util.CheckInvalid(t, "syntax_08")
}

func Test_Invalid_Syntax_09(t *testing.T) {
	util.CheckInvalid(t, "syntax_09")
}

// ===================================================================
// Semantic Errors
// ===================================================================

func Test_Invalid_Semantic_01(t *testing.T) {
	util.CheckInvalid(t, "semantic_01")
}

func Test_Invalid_Semantic_02(t *testing.T) {
	util.CheckInvalid(t, "semantic_02")
}

func Test_Invalid_Semantic_03(t *testing.T) {
	util.CheckInvalid(t, "semantic_03")
}

func Test_Invalid_Semantic_04(t *testing.T) {
	util.CheckInvalid(t, "semantic_04")
}

func Test_Invalid_Semantic_05(t *testing.T) {
	util.CheckInvalid(t, "semantic_05")
}
