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
package ast

import (
	"github.com/mewlang/go-mew/pkg/util/source"
)

// Decl is implemented by every declaration which can appear as a member of a
// module, or at the root of a translation unit.
type Decl interface {
	// Name returns the declared name, or nil for anonymous declarations
	// (i.e. const-asserts).  The returned identifier aliases the declaration
	// and can be renamed in place.
	Name() *Ident
	// TemplateParams returns the declaration's template parameters.
	TemplateParams() []*TemplateParameter
	// CloneDecl returns a deep copy of this declaration.
	CloneDecl() Decl
	//
	declNode()
}

// CloneDecls returns a deep copy of a sequence of declarations.
func CloneDecls(decls []Decl) []Decl {
	if decls == nil {
		return nil
	}
	//
	ndecls := make([]Decl, len(decls))
	//
	for i, d := range decls {
		ndecls[i] = d.CloneDecl()
	}
	//
	return ndecls
}

// TemplateParameter is a named parameter of a module, function, struct,
// alias, declaration or const-assert, optionally with a default value.
type TemplateParameter struct {
	Name Ident
	// DefaultValue for this parameter, or nil if there is none.
	DefaultValue Expr
	Span         source.Span
}

// Clone returns a deep copy of this template parameter.
func (p *TemplateParameter) Clone() *TemplateParameter {
	return &TemplateParameter{p.Name, CloneExpr(p.DefaultValue), p.Span}
}

// CloneTemplateParams returns a deep copy of a sequence of template
// parameters.
func CloneTemplateParams(params []*TemplateParameter) []*TemplateParameter {
	if params == nil {
		return nil
	}
	//
	nparams := make([]*TemplateParameter, len(params))
	//
	for i, p := range params {
		nparams[i] = p.Clone()
	}
	//
	return nparams
}

// Declaration is a variable or constant declaration ("var", "let", "const" or
// "override"), either at module level or local to a function.
type Declaration struct {
	// Kind distinguishes "var", "let", "const" and "override".
	Kind               string
	DeclName           Ident
	TemplateParameters []*TemplateParameter
	// Type of this declaration, or nil when inferred.
	Type *TypeExpr
	// Initializer for this declaration, or nil when absent.
	Initializer Expr
	Span        source.Span
}

// Clone returns a deep copy of this declaration.
func (p *Declaration) Clone() Declaration {
	return Declaration{
		p.Kind,
		p.DeclName,
		CloneTemplateParams(p.TemplateParameters),
		p.Type.Clone(),
		CloneExpr(p.Initializer),
		p.Span,
	}
}

// Alias declares a name for a type.
type Alias struct {
	DeclName           Ident
	TemplateParameters []*TemplateParameter
	Type               TypeExpr
	Span               source.Span
}

// Clone returns a deep copy of this alias.
func (p *Alias) Clone() Alias {
	return Alias{p.DeclName, CloneTemplateParams(p.TemplateParameters), *p.Type.Clone(), p.Span}
}

// StructMember is a single named, typed member of a struct.
type StructMember struct {
	Name Ident
	Type TypeExpr
	Span source.Span
}

// Struct declares a structure type.
type Struct struct {
	DeclName           Ident
	TemplateParameters []*TemplateParameter
	Members            []StructMember
	Span               source.Span
}

// FunctionParameter is a single formal parameter of a function.
type FunctionParameter struct {
	Name Ident
	Type TypeExpr
	Span source.Span
}

// Function declares a function.
type Function struct {
	DeclName           Ident
	TemplateParameters []*TemplateParameter
	Parameters         []FunctionParameter
	// ReturnType of this function, or nil if it returns nothing.
	ReturnType *TypeExpr
	Body       CompoundStmt
	Span       source.Span
}

// ConstAssert is a compile-time assertion.  Const-asserts are anonymous and,
// unlike every other declaration kind, their template parameters are not
// mangled since they cannot be referenced from outside.
type ConstAssert struct {
	TemplateParameters []*TemplateParameter
	Assertion          Expr
	Span               source.Span
}

// Clone returns a deep copy of this const-assert.
func (p *ConstAssert) Clone() ConstAssert {
	return ConstAssert{CloneTemplateParams(p.TemplateParameters), CloneExpr(p.Assertion), p.Span}
}

// Module is a named, nestable namespace with its own template parameters,
// directives and members.
type Module struct {
	DeclName           Ident
	TemplateParameters []*TemplateParameter
	Directives         []Directive
	Members            []Decl
	Span               source.Span
}

// Clone returns a deep copy of this module.
func (p *Module) Clone() *Module {
	return &Module{
		p.DeclName,
		CloneTemplateParams(p.TemplateParameters),
		CloneDirectives(p.Directives),
		CloneDecls(p.Members),
		p.Span,
	}
}

// Name implementation for Decl interface.
func (p *Declaration) Name() *Ident { return &p.DeclName }

// Name implementation for Decl interface.
func (p *Alias) Name() *Ident { return &p.DeclName }

// Name implementation for Decl interface.
func (p *Struct) Name() *Ident { return &p.DeclName }

// Name implementation for Decl interface.
func (p *Function) Name() *Ident { return &p.DeclName }

// Name implementation for Decl interface.
func (p *ConstAssert) Name() *Ident { return nil }

// Name implementation for Decl interface.
func (p *Module) Name() *Ident { return &p.DeclName }

// TemplateParams implementation for Decl interface.
func (p *Declaration) TemplateParams() []*TemplateParameter { return p.TemplateParameters }

// TemplateParams implementation for Decl interface.
func (p *Alias) TemplateParams() []*TemplateParameter { return p.TemplateParameters }

// TemplateParams implementation for Decl interface.
func (p *Struct) TemplateParams() []*TemplateParameter { return p.TemplateParameters }

// TemplateParams implementation for Decl interface.
func (p *Function) TemplateParams() []*TemplateParameter { return p.TemplateParameters }

// TemplateParams implementation for Decl interface.
func (p *ConstAssert) TemplateParams() []*TemplateParameter { return p.TemplateParameters }

// TemplateParams implementation for Decl interface.
func (p *Module) TemplateParams() []*TemplateParameter { return p.TemplateParameters }

// CloneDecl implementation for Decl interface.
func (p *Declaration) CloneDecl() Decl {
	decl := p.Clone()
	return &decl
}

// CloneDecl implementation for Decl interface.
func (p *Alias) CloneDecl() Decl {
	alias := p.Clone()
	return &alias
}

// CloneDecl implementation for Decl interface.
func (p *Struct) CloneDecl() Decl {
	var members []StructMember
	//
	if p.Members != nil {
		members = make([]StructMember, len(p.Members))
		//
		for i := range p.Members {
			members[i] = StructMember{p.Members[i].Name, *p.Members[i].Type.Clone(), p.Members[i].Span}
		}
	}
	//
	return &Struct{p.DeclName, CloneTemplateParams(p.TemplateParameters), members, p.Span}
}

// CloneDecl implementation for Decl interface.
func (p *Function) CloneDecl() Decl {
	var params []FunctionParameter
	//
	if p.Parameters != nil {
		params = make([]FunctionParameter, len(p.Parameters))
		//
		for i := range p.Parameters {
			params[i] = FunctionParameter{p.Parameters[i].Name, *p.Parameters[i].Type.Clone(), p.Parameters[i].Span}
		}
	}
	//
	return &Function{
		p.DeclName,
		CloneTemplateParams(p.TemplateParameters),
		params,
		p.ReturnType.Clone(),
		p.Body.Clone(),
		p.Span,
	}
}

// CloneDecl implementation for Decl interface.
func (p *ConstAssert) CloneDecl() Decl {
	assert := p.Clone()
	return &assert
}

// CloneDecl implementation for Decl interface.
func (p *Module) CloneDecl() Decl {
	return p.Clone()
}

func (p *Declaration) declNode() {}
func (p *Alias) declNode()       {}
func (p *Struct) declNode()      {}
func (p *Function) declNode()    {}
func (p *ConstAssert) declNode() {}
func (p *Module) declNode()      {}
