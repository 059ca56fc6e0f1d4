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

// SyntaxError is a structured error which retains the span of the original
// string where the error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Span of the original string where this error arose.
	span Span
	// Error message being reported.
	msg string
}

// NewSyntaxError constructs a syntax error over a given span of a source file
// with a given message.
func NewSyntaxError(srcfile *File, span Span, msg string) *SyntaxError {
	return &SyntaxError{srcfile, span, msg}
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implementation for error interface.
func (p *SyntaxError) Error() string {
	return p.msg
}

// FirstEnclosingLine determines the first line in the source file which
// encloses the start of this error's span.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
