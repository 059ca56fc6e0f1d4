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
package compiler

import (
	"fmt"

	"github.com/mewlang/go-mew/pkg/mew/ast"
	"github.com/mewlang/go-mew/pkg/util/source"
)

// SymbolNotFound is the sole recoverable error a compiler pass produces: a
// path which could not be resolved against the scope in force at its point of
// use.  A pass fails fast on the first unresolved name, and the tree may be
// left partially mutated; callers must discard it.
type SymbolNotFound struct {
	// Path which failed to resolve.
	path []ast.PathPart
	// Span of the offending path in the original source file.
	span source.Span
}

// NewSymbolNotFound constructs a symbol-not-found error for a given path.
func NewSymbolNotFound(path []ast.PathPart, span source.Span) *SymbolNotFound {
	return &SymbolNotFound{path, span}
}

// Path returns the path which failed to resolve.
func (p *SymbolNotFound) Path() []ast.PathPart {
	return p.path
}

// Span returns the span of the offending path in the original source file.
func (p *SymbolNotFound) Span() source.Span {
	return p.span
}

// Error implementation for error interface.
func (p *SymbolNotFound) Error() string {
	return fmt.Sprintf("symbol \"%s\" not found", ast.FormatPathParts(p.path))
}

// SyntaxError converts this error into a syntax error over the source file
// the translation unit was parsed from, through which the offending line can
// be located for highlighting.
func (p *SymbolNotFound) SyntaxError(srcfile *source.File) *source.SyntaxError {
	return source.NewSyntaxError(srcfile, p.span, p.Error())
}
