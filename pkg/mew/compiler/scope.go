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
	"github.com/mewlang/go-mew/pkg/mew/ast"
)

// ModulePath is the absolute path of a module, given as a sequence of path
// parts.  Parts can carry template arguments, since entering a templated
// module records arguments for its parameters.  A module path is treated as
// immutable: Extend copies rather than appending in place, so values can be
// shared freely across recursive frames.
type ModulePath []ast.PathPart

// Clone returns a deep copy of this module path.
func (p ModulePath) Clone() ModulePath {
	return ModulePath(ast.ClonePathParts(p))
}

// Extend returns a copy of this module path with one further part appended.
func (p ModulePath) Extend(part ast.PathPart) ModulePath {
	npath := make(ModulePath, 0, len(p)+1)
	npath = append(npath, ast.ClonePathParts(p)...)
	npath = append(npath, part)
	//
	return npath
}

// Last returns the innermost part of this module path, or nil for the root.
func (p ModulePath) Last() *ast.PathPart {
	if len(p) == 0 {
		return nil
	}
	//
	return &p[len(p)-1]
}

func (p ModulePath) String() string {
	return ast.FormatPathParts(p)
}

// ScopeMember describes what a simple name refers to at a given syntactic
// point, and thereby how a path led by that name must be rewritten.
type ScopeMember interface {
	scopeMember()
}

// LocalDeclaration marks a name bound by a declaration statement in the
// current block or function.  References require no rewriting.
type LocalDeclaration struct{}

// FormalFunctionParameter marks a name bound as a function parameter.
// References require no rewriting.
type FormalFunctionParameter struct{}

// BuiltIn marks a name belonging to the builtin catalog.  References require
// no rewriting.
type BuiltIn struct{}

// TemplateParam marks a name bound as a template parameter.  A reference's
// leading segment is renamed to the parameter's mangled name.
type TemplateParam struct {
	// NewName is the mangled name of the parameter.
	NewName string
}

// GlobalDeclaration marks a name declared at the translation-unit root.
// References are already absolute and require no rewriting.
type GlobalDeclaration struct {
	// Decl is a snapshot of the declaration, taken when it was indexed.
	Decl ast.Decl
}

// ModuleMemberDeclaration marks a name declared as a member of the module at
// the given path.  References are rewritten by prepending that path.
type ModuleMemberDeclaration struct {
	// Module is the absolute path of the declaring module.
	Module ModulePath
	// Decl is a snapshot of the declaration, taken when it was indexed.
	Decl ast.Decl
}

// UseDeclaration marks a name bound by a use import.  A reference's leading
// segment is replaced by the imported path and, if the import carried
// template arguments, they are attached to the leading retained segment.
type UseDeclaration struct {
	// Target is the fully-qualified path of the imported symbol.
	Target ModulePath
	// TemplateArgs carried by the import, or nil if there are none.
	TemplateArgs []ast.TemplateArg
}

// Inline marks a name bound by an inline template-args expansion to a
// synthetic submodule.  A reference's leading segment is replaced by the
// synthetic module's path.
type Inline struct {
	// Target is the absolute path of the synthetic submodule.
	Target ModulePath
}

func (LocalDeclaration) scopeMember()        {}
func (FormalFunctionParameter) scopeMember() {}
func (BuiltIn) scopeMember()                 {}
func (TemplateParam) scopeMember()           {}
func (GlobalDeclaration) scopeMember()       {}
func (ModuleMemberDeclaration) scopeMember() {}
func (UseDeclaration) scopeMember()          {}
func (Inline) scopeMember()                  {}

// Scope is a single frame of the lexical environment: a mapping from simple
// names to scope members.  A frame is derived from its parent by Clone, after
// which bindings made in it are invisible to the parent; shadowing is by
// insertion order (last insert wins).  This gives the persistent-environment
// contract the resolver relies on: parent frames are never mutated by
// children.
type Scope struct {
	members map[string]ScopeMember
}

// NewScope constructs an empty root frame.
func NewScope() Scope {
	return Scope{make(map[string]ScopeMember)}
}

// Clone derives a child frame containing the same bindings as this one.
func (p Scope) Clone() Scope {
	members := make(map[string]ScopeMember, len(p.members))
	//
	for name, member := range p.members {
		members[name] = member
	}
	//
	return Scope{members}
}

// Bind inserts a binding into this frame, replacing any previous binding of
// the same name.
func (p Scope) Bind(name string, member ScopeMember) {
	p.members[name] = member
}

// Lookup returns the binding of a given name in this frame, if any.
func (p Scope) Lookup(name string) (ScopeMember, bool) {
	member, ok := p.members[name]
	return member, ok
}

// Size returns the number of bindings in this frame.
func (p Scope) Size() uint {
	return uint(len(p.members))
}
