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

// Package compiler implements the compiler passes which transform a parsed
// translation unit.  At this time the only pass is name resolution, which
// rewrites every identifier reference to its fully-qualified absolute path.
package compiler

import (
	"time"

	"github.com/mewlang/go-mew/pkg/mew/ast"
	"github.com/mewlang/go-mew/pkg/mew/builtins"
	log "github.com/sirupsen/logrus"
)

// Pass is a transformation of a translation unit, applied in place.  A pass
// either succeeds, or fails on the first error leaving the tree in an
// unspecified (partially mutated) state.
type Pass interface {
	// Name returns a short name for this pass, for logging purposes.
	Name() string
	// Apply runs this pass over the given translation unit, mutating it in
	// place.
	Apply(unit *ast.TranslationUnit) error
}

// Run applies a sequence of passes to a translation unit, stopping at the
// first failing pass.
func Run(unit *ast.TranslationUnit, passes ...Pass) error {
	for _, pass := range passes {
		start := time.Now()
		//
		if err := pass.Apply(unit); err != nil {
			return err
		}
		//
		log.Debugf("pass %s took %s", pass.Name(), time.Since(start))
	}
	//
	return nil
}

// Resolver is the name-resolution pass.  It rewrites every identifier
// reference so that it carries a fully-qualified absolute path, renames every
// template parameter to a collision-free mangled form, and desugars extend
// directives into sets of alias members.
type Resolver struct {
	catalog *builtins.Catalog
}

// NewResolver constructs a resolver using the default builtin catalog.
func NewResolver() *Resolver {
	return &Resolver{builtins.Default()}
}

// NewResolverWithCatalog constructs a resolver against a specific builtin
// catalog.
func NewResolverWithCatalog(catalog *builtins.Catalog) *Resolver {
	return &Resolver{catalog}
}

// Name implementation for Pass interface.
func (p *Resolver) Name() string {
	return "resolve"
}

// Apply implementation for Pass interface.  On failure the returned error is
// a *SymbolNotFound and the tree must be discarded.
func (p *Resolver) Apply(unit *ast.TranslationUnit) error {
	return resolveTranslationUnit(unit, p.catalog)
}
