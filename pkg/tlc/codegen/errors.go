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

// InternalError signals a broken invariant of the code generator, rather than a
// fault in the program being compiled.
type InternalError struct {
	msg string
}

func internalErrorf(format string, args ...any) *InternalError {
	return &InternalError{fmt.Sprintf(format, args...)}
}

// Message returns the message to be reported.
func (p *InternalError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", p.msg)
}
