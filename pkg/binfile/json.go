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

// Package binfile implements the interchange format for parsed translation
// units.  The parser stage dumps its tree as kind-tagged JSON; this package
// reads such dumps back into syntax trees and writes trees out again, so
// that individual compiler stages can be run in isolation.
package binfile

import (
	"encoding/json"
	"fmt"

	"github.com/mewlang/go-mew/pkg/mew/ast"
	"github.com/mewlang/go-mew/pkg/util/source"
)

// ReadTranslationUnit parses a JSON-encoded translation unit.
func ReadTranslationUnit(data []byte) (*ast.TranslationUnit, error) {
	var unit jsonTranslationUnit
	//
	if err := json.Unmarshal(data, &unit); err != nil {
		return nil, err
	}
	//
	return unit.to()
}

// WriteTranslationUnit encodes a translation unit as JSON.
func WriteTranslationUnit(unit *ast.TranslationUnit) ([]byte, error) {
	return json.MarshalIndent(fromTranslationUnit(unit), "", "  ")
}

// =============================================================================
// JSON schema
// =============================================================================

type jsonSpan [2]int

type jsonTranslationUnit struct {
	Directives   []jsonDirective `json:"directives,omitempty"`
	Declarations []jsonDecl      `json:"declarations,omitempty"`
}

type jsonIdent struct {
	Name string   `json:"name"`
	Span jsonSpan `json:"span"`
}

type jsonPathPart struct {
	Name               jsonIdent         `json:"name"`
	TemplateArgs       []jsonTemplateArg `json:"template_args,omitempty"`
	InlineTemplateArgs *jsonInlineArgs   `json:"inline_template_args,omitempty"`
}

type jsonPath struct {
	Parts []jsonPathPart `json:"parts"`
	Span  jsonSpan       `json:"span"`
}

type jsonTemplateArg struct {
	Expression jsonExpr   `json:"expression"`
	ArgName    *jsonIdent `json:"arg_name,omitempty"`
	Span       jsonSpan   `json:"span"`
}

type jsonInlineArgs struct {
	Directives []jsonDirective `json:"directives,omitempty"`
	Members    []jsonDecl      `json:"members,omitempty"`
	Span       jsonSpan        `json:"span"`
}

type jsonTemplateParam struct {
	Name         jsonIdent `json:"name"`
	DefaultValue *jsonExpr `json:"default_value,omitempty"`
	Span         jsonSpan  `json:"span"`
}

type jsonDirective struct {
	Kind    string          `json:"kind"`
	Path    *jsonPath       `json:"path,omitempty"`
	Content *jsonUseContent `json:"content,omitempty"`
	Span    jsonSpan        `json:"span"`
}

type jsonUseContent struct {
	Kind               string            `json:"kind"`
	Name               *jsonIdent        `json:"name,omitempty"`
	Rename             *jsonIdent        `json:"rename,omitempty"`
	TemplateArgs       []jsonTemplateArg `json:"template_args,omitempty"`
	InlineTemplateArgs *jsonInlineArgs   `json:"inline_template_args,omitempty"`
	Uses               []jsonDirective   `json:"uses,omitempty"`
	Span               jsonSpan          `json:"span"`
}

type jsonDecl struct {
	Kind               string              `json:"kind"`
	DeclKind           string              `json:"decl_kind,omitempty"`
	Name               *jsonIdent          `json:"name,omitempty"`
	TemplateParameters []jsonTemplateParam `json:"template_parameters,omitempty"`
	Type               *jsonType           `json:"type,omitempty"`
	Initializer        *jsonExpr           `json:"initializer,omitempty"`
	Members            []jsonStructMember  `json:"members,omitempty"`
	Parameters         []jsonFuncParam     `json:"parameters,omitempty"`
	ReturnType         *jsonType           `json:"return_type,omitempty"`
	Body               *jsonCompound       `json:"body,omitempty"`
	Assertion          *jsonExpr           `json:"assertion,omitempty"`
	Directives         []jsonDirective     `json:"directives,omitempty"`
	ModuleMembers      []jsonDecl          `json:"module_members,omitempty"`
	Span               jsonSpan            `json:"span"`
}

type jsonType struct {
	Path jsonPath `json:"path"`
	Span jsonSpan `json:"span"`
}

type jsonStructMember struct {
	Name jsonIdent `json:"name"`
	Type jsonType  `json:"type"`
	Span jsonSpan  `json:"span"`
}

type jsonFuncParam struct {
	Name jsonIdent `json:"name"`
	Type jsonType  `json:"type"`
	Span jsonSpan  `json:"span"`
}

type jsonExpr struct {
	Kind      string     `json:"kind"`
	Value     string     `json:"value,omitempty"`
	Inner     *jsonExpr  `json:"inner,omitempty"`
	Base      *jsonExpr  `json:"base,omitempty"`
	Component *jsonIdent `json:"component,omitempty"`
	Index     *jsonExpr  `json:"index,omitempty"`
	Operator  string     `json:"operator,omitempty"`
	Operand   *jsonExpr  `json:"operand,omitempty"`
	Left      *jsonExpr  `json:"left,omitempty"`
	Right     *jsonExpr  `json:"right,omitempty"`
	Path      *jsonPath  `json:"path,omitempty"`
	Arguments []jsonExpr `json:"arguments,omitempty"`
	Span      jsonSpan   `json:"span"`
}

type jsonCompound struct {
	Directives []jsonDirective `json:"directives,omitempty"`
	Statements []jsonStmt      `json:"statements,omitempty"`
	Span       jsonSpan        `json:"span"`
}

type jsonStmt struct {
	Kind        string              `json:"kind"`
	Block       *jsonCompound       `json:"block,omitempty"`
	Lhs         *jsonExpr           `json:"lhs,omitempty"`
	Operator    string              `json:"operator,omitempty"`
	Rhs         *jsonExpr           `json:"rhs,omitempty"`
	Target      *jsonExpr           `json:"target,omitempty"`
	Condition   *jsonExpr           `json:"condition,omitempty"`
	Body        *jsonCompound       `json:"body,omitempty"`
	ElseIfs     []jsonElseIf        `json:"else_ifs,omitempty"`
	Else        *jsonCompound       `json:"else,omitempty"`
	Selector    *jsonExpr           `json:"selector,omitempty"`
	Clauses     []jsonSwitchClause  `json:"clauses,omitempty"`
	Continuing  *jsonContinuing     `json:"continuing,omitempty"`
	Initializer *jsonStmt           `json:"initializer,omitempty"`
	Update      *jsonStmt           `json:"update,omitempty"`
	Value       *jsonExpr           `json:"value,omitempty"`
	Call        *jsonExpr           `json:"call,omitempty"`
	Assertion   *jsonExpr           `json:"assertion,omitempty"`
	Params      []jsonTemplateParam `json:"template_parameters,omitempty"`
	Declaration *jsonDecl           `json:"declaration,omitempty"`
	Statements  []jsonStmt          `json:"statements,omitempty"`
	Span        jsonSpan            `json:"span"`
}

type jsonElseIf struct {
	Condition jsonExpr     `json:"condition"`
	Body      jsonCompound `json:"body"`
}

type jsonSwitchClause struct {
	Selectors []jsonCaseSelector `json:"selectors"`
	Body      jsonCompound       `json:"body"`
}

type jsonCaseSelector struct {
	// Expression is absent for the default selector.
	Expression *jsonExpr `json:"expression,omitempty"`
	Span       jsonSpan  `json:"span"`
}

type jsonContinuing struct {
	Body    jsonCompound `json:"body"`
	BreakIf *jsonExpr    `json:"break_if,omitempty"`
	Span    jsonSpan     `json:"span"`
}

// =============================================================================
// Decoding
// =============================================================================

func (p jsonSpan) to() source.Span {
	return source.NewSpan(p[0], p[1])
}

func (p *jsonTranslationUnit) to() (*ast.TranslationUnit, error) {
	directives, err := toDirectives(p.Directives)
	if err != nil {
		return nil, err
	}
	//
	decls, err := toDecls(p.Declarations)
	if err != nil {
		return nil, err
	}
	//
	return &ast.TranslationUnit{Directives: directives, Declarations: decls}, nil
}

func (p *jsonIdent) to() ast.Ident {
	return ast.NewIdent(p.Name, p.Span.to())
}

func (p *jsonIdent) toPtr() *ast.Ident {
	if p == nil {
		return nil
	}
	//
	ident := p.to()
	//
	return &ident
}

func (p *jsonPath) to() (ast.Path, error) {
	parts := make([]ast.PathPart, len(p.Parts))
	//
	for i := range p.Parts {
		part, err := p.Parts[i].to()
		if err != nil {
			return ast.Path{}, err
		}
		//
		parts[i] = part
	}
	//
	return ast.Path{Parts: parts, Span: p.Span.to()}, nil
}

func (p *jsonPathPart) to() (ast.PathPart, error) {
	args, err := toTemplateArgs(p.TemplateArgs)
	if err != nil {
		return ast.PathPart{}, err
	}
	//
	inline, err := p.InlineTemplateArgs.to()
	if err != nil {
		return ast.PathPart{}, err
	}
	//
	return ast.PathPart{Name: p.Name.to(), TemplateArgs: args, InlineTemplateArgs: inline}, nil
}

func toTemplateArgs(args []jsonTemplateArg) ([]ast.TemplateArg, error) {
	if args == nil {
		return nil, nil
	}
	//
	nargs := make([]ast.TemplateArg, len(args))
	//
	for i := range args {
		expr, err := args[i].Expression.to()
		if err != nil {
			return nil, err
		}
		//
		nargs[i] = ast.TemplateArg{Expression: expr, ArgName: args[i].ArgName.toPtr(), Span: args[i].Span.to()}
	}
	//
	return nargs, nil
}

func (p *jsonInlineArgs) to() (*ast.InlineTemplateArgs, error) {
	if p == nil {
		return nil, nil
	}
	//
	directives, err := toDirectives(p.Directives)
	if err != nil {
		return nil, err
	}
	//
	members, err := toDecls(p.Members)
	if err != nil {
		return nil, err
	}
	//
	return &ast.InlineTemplateArgs{Directives: directives, Members: members, Span: p.Span.to()}, nil
}

func toTemplateParams(params []jsonTemplateParam) ([]*ast.TemplateParameter, error) {
	if params == nil {
		return nil, nil
	}
	//
	nparams := make([]*ast.TemplateParameter, len(params))
	//
	for i := range params {
		value, err := params[i].DefaultValue.toPtr()
		if err != nil {
			return nil, err
		}
		//
		nparams[i] = &ast.TemplateParameter{Name: params[i].Name.to(), DefaultValue: value, Span: params[i].Span.to()}
	}
	//
	return nparams, nil
}

func toDirectives(directives []jsonDirective) ([]ast.Directive, error) {
	if directives == nil {
		return nil, nil
	}
	//
	ndirectives := make([]ast.Directive, len(directives))
	//
	for i := range directives {
		directive, err := directives[i].to()
		if err != nil {
			return nil, err
		}
		//
		ndirectives[i] = directive
	}
	//
	return ndirectives, nil
}

func (p *jsonDirective) to() (ast.Directive, error) {
	switch p.Kind {
	case "use":
		return p.toUse()
	case "extend":
		if p.Path == nil {
			return nil, fmt.Errorf("extend directive missing path")
		}
		//
		path, err := p.Path.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.Extend{Path: path, Span: p.Span.to()}, nil
	default:
		return nil, fmt.Errorf("unknown directive kind \"%s\"", p.Kind)
	}
}

func (p *jsonDirective) toUse() (*ast.Use, error) {
	var path ast.Path
	//
	if p.Path != nil {
		npath, err := p.Path.to()
		if err != nil {
			return nil, err
		}
		//
		path = npath
	}
	//
	if p.Content == nil {
		return nil, fmt.Errorf("use directive missing content")
	}
	//
	content, err := p.Content.to()
	if err != nil {
		return nil, err
	}
	//
	return &ast.Use{Path: path, Content: content, Span: p.Span.to()}, nil
}

func (p *jsonUseContent) to() (ast.UseContent, error) {
	switch p.Kind {
	case "item":
		if p.Name == nil {
			return nil, fmt.Errorf("use item missing name")
		}
		//
		args, err := toTemplateArgs(p.TemplateArgs)
		if err != nil {
			return nil, err
		}
		//
		inline, err := p.InlineTemplateArgs.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.UseItem{
			Name:               p.Name.to(),
			Rename:             p.Rename.toPtr(),
			TemplateArgs:       args,
			InlineTemplateArgs: inline,
			Span:               p.Span.to(),
		}, nil
	case "collection":
		uses := make([]*ast.Use, len(p.Uses))
		//
		for i := range p.Uses {
			use, err := p.Uses[i].toUse()
			if err != nil {
				return nil, err
			}
			//
			uses[i] = use
		}
		//
		return &ast.UseCollection{Uses: uses, Span: p.Span.to()}, nil
	default:
		return nil, fmt.Errorf("unknown use content kind \"%s\"", p.Kind)
	}
}

func toDecls(decls []jsonDecl) ([]ast.Decl, error) {
	if decls == nil {
		return nil, nil
	}
	//
	ndecls := make([]ast.Decl, len(decls))
	//
	for i := range decls {
		decl, err := decls[i].to()
		if err != nil {
			return nil, err
		}
		//
		ndecls[i] = decl
	}
	//
	return ndecls, nil
}

//nolint:gocyclo
func (p *jsonDecl) to() (ast.Decl, error) {
	params, err := toTemplateParams(p.TemplateParameters)
	if err != nil {
		return nil, err
	}
	//
	switch p.Kind {
	case "declaration":
		typ, err := p.Type.toPtr()
		if err != nil {
			return nil, err
		}
		//
		init, err := p.Initializer.toPtr()
		if err != nil {
			return nil, err
		}
		//
		return &ast.Declaration{
			Kind:               p.DeclKind,
			DeclName:           p.Name.to(),
			TemplateParameters: params,
			Type:               typ,
			Initializer:        init,
			Span:               p.Span.to(),
		}, nil
	case "alias":
		typ, err := p.Type.toPtr()
		if err != nil {
			return nil, err
		} else if typ == nil {
			return nil, fmt.Errorf("alias missing type")
		}
		//
		return &ast.Alias{DeclName: p.Name.to(), TemplateParameters: params, Type: *typ, Span: p.Span.to()}, nil
	case "struct":
		members := make([]ast.StructMember, len(p.Members))
		//
		for i := range p.Members {
			typ, err := p.Members[i].Type.to()
			if err != nil {
				return nil, err
			}
			//
			members[i] = ast.StructMember{Name: p.Members[i].Name.to(), Type: typ, Span: p.Members[i].Span.to()}
		}
		//
		return &ast.Struct{DeclName: p.Name.to(), TemplateParameters: params, Members: members, Span: p.Span.to()}, nil
	case "function":
		return p.toFunction(params)
	case "const_assert":
		assertion, err := p.Assertion.toPtr()
		if err != nil {
			return nil, err
		}
		//
		return &ast.ConstAssert{TemplateParameters: params, Assertion: assertion, Span: p.Span.to()}, nil
	case "module":
		directives, err := toDirectives(p.Directives)
		if err != nil {
			return nil, err
		}
		//
		members, err := toDecls(p.ModuleMembers)
		if err != nil {
			return nil, err
		}
		//
		return &ast.Module{
			DeclName:           p.Name.to(),
			TemplateParameters: params,
			Directives:         directives,
			Members:            members,
			Span:               p.Span.to(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown declaration kind \"%s\"", p.Kind)
	}
}

func (p *jsonDecl) toFunction(params []*ast.TemplateParameter) (ast.Decl, error) {
	fparams := make([]ast.FunctionParameter, len(p.Parameters))
	//
	for i := range p.Parameters {
		typ, err := p.Parameters[i].Type.to()
		if err != nil {
			return nil, err
		}
		//
		fparams[i] = ast.FunctionParameter{Name: p.Parameters[i].Name.to(), Type: typ, Span: p.Parameters[i].Span.to()}
	}
	//
	ret, err := p.ReturnType.toPtr()
	if err != nil {
		return nil, err
	}
	//
	var body ast.CompoundStmt
	//
	if p.Body != nil {
		nbody, err := p.Body.to()
		if err != nil {
			return nil, err
		}
		//
		body = nbody
	}
	//
	return &ast.Function{
		DeclName:           p.Name.to(),
		TemplateParameters: params,
		Parameters:         fparams,
		ReturnType:         ret,
		Body:               body,
		Span:               p.Span.to(),
	}, nil
}

func (p *jsonType) to() (ast.TypeExpr, error) {
	path, err := p.Path.to()
	if err != nil {
		return ast.TypeExpr{}, err
	}
	//
	return ast.TypeExpr{Path: path, Span: p.Span.to()}, nil
}

func (p *jsonType) toPtr() (*ast.TypeExpr, error) {
	if p == nil {
		return nil, nil
	}
	//
	typ, err := p.to()
	if err != nil {
		return nil, err
	}
	//
	return &typ, nil
}

func (p *jsonExpr) toPtr() (ast.Expr, error) {
	if p == nil {
		return nil, nil
	}
	//
	return p.to()
}

//nolint:gocyclo
func (p *jsonExpr) to() (ast.Expr, error) {
	span := p.Span.to()
	//
	switch p.Kind {
	case "literal":
		return &ast.LiteralExpr{Value: p.Value, Span: span}, nil
	case "paren":
		inner, err := p.Inner.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.ParenExpr{Inner: inner, Span: span}, nil
	case "named_component":
		base, err := p.Base.to()
		if err != nil {
			return nil, err
		}
		//
		if p.Component == nil {
			return nil, fmt.Errorf("named component missing component")
		}
		//
		return &ast.NamedComponentExpr{Base: base, Component: p.Component.to(), Span: span}, nil
	case "index":
		base, err := p.Base.to()
		if err != nil {
			return nil, err
		}
		//
		index, err := p.Index.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.IndexExpr{Base: base, Index: index, Span: span}, nil
	case "unary":
		operand, err := p.Operand.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.UnaryExpr{Operator: p.Operator, Operand: operand, Span: span}, nil
	case "binary":
		left, err := p.Left.to()
		if err != nil {
			return nil, err
		}
		//
		right, err := p.Right.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.BinaryExpr{Operator: p.Operator, Left: left, Right: right, Span: span}, nil
	case "call":
		if p.Path == nil {
			return nil, fmt.Errorf("call missing path")
		}
		//
		path, err := p.Path.to()
		if err != nil {
			return nil, err
		}
		//
		args, err := toExprs(p.Arguments)
		if err != nil {
			return nil, err
		}
		//
		return &ast.CallExpr{Path: path, Arguments: args, Span: span}, nil
	case "identifier":
		if p.Path == nil {
			return nil, fmt.Errorf("identifier missing path")
		}
		//
		path, err := p.Path.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.IdentifierExpr{Path: path, Span: span}, nil
	case "type":
		if p.Path == nil {
			return nil, fmt.Errorf("type missing path")
		}
		//
		path, err := p.Path.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.TypeExpr{Path: path, Span: span}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind \"%s\"", p.Kind)
	}
}

func toExprs(exprs []jsonExpr) ([]ast.Expr, error) {
	if exprs == nil {
		return nil, nil
	}
	//
	nexprs := make([]ast.Expr, len(exprs))
	//
	for i := range exprs {
		expr, err := exprs[i].to()
		if err != nil {
			return nil, err
		}
		//
		nexprs[i] = expr
	}
	//
	return nexprs, nil
}

func (p *jsonCompound) to() (ast.CompoundStmt, error) {
	var directives []*ast.Use
	//
	for i := range p.Directives {
		use, err := p.Directives[i].toUse()
		if err != nil {
			return ast.CompoundStmt{}, err
		}
		//
		directives = append(directives, use)
	}
	//
	stmts, err := toStmts(p.Statements)
	if err != nil {
		return ast.CompoundStmt{}, err
	}
	//
	return ast.CompoundStmt{Directives: directives, Statements: stmts, Span: p.Span.to()}, nil
}

func toStmts(stmts []jsonStmt) ([]ast.Stmt, error) {
	if stmts == nil {
		return nil, nil
	}
	//
	nstmts := make([]ast.Stmt, len(stmts))
	//
	for i := range stmts {
		stmt, err := stmts[i].to()
		if err != nil {
			return nil, err
		}
		//
		nstmts[i] = stmt
	}
	//
	return nstmts, nil
}

//nolint:gocyclo
func (p *jsonStmt) to() (ast.Stmt, error) {
	span := p.Span.to()
	//
	switch p.Kind {
	case "void":
		return &ast.VoidStmt{Span: span}, nil
	case "compound":
		if p.Block == nil {
			return nil, fmt.Errorf("compound statement missing block")
		}
		//
		block, err := p.Block.to()
		if err != nil {
			return nil, err
		}
		//
		return &block, nil
	case "assign":
		lhs, err := p.Lhs.to()
		if err != nil {
			return nil, err
		}
		//
		rhs, err := p.Rhs.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.AssignStmt{Lhs: lhs, Operator: p.Operator, Rhs: rhs, Span: span}, nil
	case "increment":
		target, err := p.Target.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.IncrementStmt{Target: target, Span: span}, nil
	case "decrement":
		target, err := p.Target.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.DecrementStmt{Target: target, Span: span}, nil
	case "if":
		return p.toIf(span)
	case "switch":
		return p.toSwitch(span)
	case "loop":
		return p.toLoop(span)
	case "for":
		return p.toFor(span)
	case "while":
		condition, err := p.Condition.to()
		if err != nil {
			return nil, err
		}
		//
		body, err := p.Body.to()
		if err != nil {
			return nil, err
		}
		//
		return &ast.WhileStmt{Condition: condition, Body: body, Span: span}, nil
	case "break":
		return &ast.BreakStmt{Span: span}, nil
	case "continue":
		return &ast.ContinueStmt{Span: span}, nil
	case "return":
		value, err := p.Value.toPtr()
		if err != nil {
			return nil, err
		}
		//
		return &ast.ReturnStmt{Value: value, Span: span}, nil
	case "discard":
		return &ast.DiscardStmt{Span: span}, nil
	case "call":
		call, err := p.Call.to()
		if err != nil {
			return nil, err
		}
		//
		ncall, ok := call.(*ast.CallExpr)
		if !ok {
			return nil, fmt.Errorf("call statement requires a call expression")
		}
		//
		return &ast.CallStmt{Call: *ncall, Span: span}, nil
	case "const_assert":
		params, err := toTemplateParams(p.Params)
		if err != nil {
			return nil, err
		}
		//
		assertion, err := p.Assertion.to()
		if err != nil {
			return nil, err
		}
		//
		assert := ast.ConstAssert{TemplateParameters: params, Assertion: assertion, Span: span}
		//
		return &ast.ConstAssertStmt{Assertion: assert, Span: span}, nil
	case "declaration":
		if p.Declaration == nil {
			return nil, fmt.Errorf("declaration statement missing declaration")
		}
		//
		decl, err := p.Declaration.to()
		if err != nil {
			return nil, err
		}
		//
		ndecl, ok := decl.(*ast.Declaration)
		if !ok {
			return nil, fmt.Errorf("declaration statement requires a variable declaration")
		}
		//
		trailing, err := toStmts(p.Statements)
		if err != nil {
			return nil, err
		}
		//
		return &ast.DeclStmt{Declaration: *ndecl, Statements: trailing, Span: span}, nil
	default:
		return nil, fmt.Errorf("unknown statement kind \"%s\"", p.Kind)
	}
}

func (p *jsonStmt) toIf(span source.Span) (ast.Stmt, error) {
	condition, err := p.Condition.to()
	if err != nil {
		return nil, err
	}
	//
	if p.Body == nil {
		return nil, fmt.Errorf("if statement missing body")
	}
	//
	body, err := p.Body.to()
	if err != nil {
		return nil, err
	}
	//
	var elseifs []ast.ElseIf
	//
	for i := range p.ElseIfs {
		cond, err := p.ElseIfs[i].Condition.to()
		if err != nil {
			return nil, err
		}
		//
		block, err := p.ElseIfs[i].Body.to()
		if err != nil {
			return nil, err
		}
		//
		elseifs = append(elseifs, ast.ElseIf{Condition: cond, Body: block})
	}
	//
	var elseBlock *ast.CompoundStmt
	//
	if p.Else != nil {
		block, err := p.Else.to()
		if err != nil {
			return nil, err
		}
		//
		elseBlock = &block
	}
	//
	return &ast.IfStmt{Condition: condition, Body: body, ElseIfs: elseifs, Else: elseBlock, Span: span}, nil
}

func (p *jsonStmt) toSwitch(span source.Span) (ast.Stmt, error) {
	selector, err := p.Selector.to()
	if err != nil {
		return nil, err
	}
	//
	var clauses []ast.SwitchClause
	//
	for i := range p.Clauses {
		var selectors []ast.CaseSelector
		//
		for j := range p.Clauses[i].Selectors {
			expr, err := p.Clauses[i].Selectors[j].Expression.toPtr()
			if err != nil {
				return nil, err
			}
			//
			selectors = append(selectors, ast.CaseSelector{Expression: expr, Span: p.Clauses[i].Selectors[j].Span.to()})
		}
		//
		body, err := p.Clauses[i].Body.to()
		if err != nil {
			return nil, err
		}
		//
		clauses = append(clauses, ast.SwitchClause{Selectors: selectors, Body: body})
	}
	//
	return &ast.SwitchStmt{Selector: selector, Clauses: clauses, Span: span}, nil
}

func (p *jsonStmt) toLoop(span source.Span) (ast.Stmt, error) {
	if p.Body == nil {
		return nil, fmt.Errorf("loop statement missing body")
	}
	//
	body, err := p.Body.to()
	if err != nil {
		return nil, err
	}
	//
	var continuing *ast.ContinuingStmt
	//
	if p.Continuing != nil {
		block, err := p.Continuing.Body.to()
		if err != nil {
			return nil, err
		}
		//
		breakIf, err := p.Continuing.BreakIf.toPtr()
		if err != nil {
			return nil, err
		}
		//
		continuing = &ast.ContinuingStmt{Body: block, BreakIf: breakIf, Span: p.Continuing.Span.to()}
	}
	//
	return &ast.LoopStmt{Body: body, Continuing: continuing, Span: span}, nil
}

func (p *jsonStmt) toFor(span source.Span) (ast.Stmt, error) {
	var (
		initializer ast.Stmt
		update      ast.Stmt
	)
	//
	if p.Initializer != nil {
		stmt, err := p.Initializer.to()
		if err != nil {
			return nil, err
		}
		//
		initializer = stmt
	}
	//
	condition, err := p.Condition.toPtr()
	if err != nil {
		return nil, err
	}
	//
	if p.Update != nil {
		stmt, err := p.Update.to()
		if err != nil {
			return nil, err
		}
		//
		update = stmt
	}
	//
	if p.Body == nil {
		return nil, fmt.Errorf("for statement missing body")
	}
	//
	body, err := p.Body.to()
	if err != nil {
		return nil, err
	}
	//
	return &ast.ForStmt{Initializer: initializer, Condition: condition, Update: update, Body: body, Span: span}, nil
}
