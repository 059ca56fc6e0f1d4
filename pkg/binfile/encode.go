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
package binfile

import (
	"fmt"

	"github.com/mewlang/go-mew/pkg/mew/ast"
	"github.com/mewlang/go-mew/pkg/util/source"
)

func fromSpan(span source.Span) jsonSpan {
	return jsonSpan{span.Start(), span.End()}
}

func fromTranslationUnit(unit *ast.TranslationUnit) jsonTranslationUnit {
	return jsonTranslationUnit{
		Directives:   fromDirectives(unit.Directives),
		Declarations: fromDecls(unit.Declarations),
	}
}

func fromIdent(ident ast.Ident) jsonIdent {
	return jsonIdent{ident.Value, fromSpan(ident.Span)}
}

func fromIdentPtr(ident *ast.Ident) *jsonIdent {
	if ident == nil {
		return nil
	}
	//
	nident := fromIdent(*ident)
	//
	return &nident
}

func fromPath(path ast.Path) jsonPath {
	parts := make([]jsonPathPart, len(path.Parts))
	//
	for i := range path.Parts {
		parts[i] = fromPathPart(path.Parts[i])
	}
	//
	return jsonPath{parts, fromSpan(path.Span)}
}

func fromPathPtr(path *ast.Path) *jsonPath {
	if path == nil {
		return nil
	}
	//
	npath := fromPath(*path)
	//
	return &npath
}

func fromPathPart(part ast.PathPart) jsonPathPart {
	return jsonPathPart{
		Name:               fromIdent(part.Name),
		TemplateArgs:       fromTemplateArgs(part.TemplateArgs),
		InlineTemplateArgs: fromInlineArgs(part.InlineTemplateArgs),
	}
}

func fromTemplateArgs(args []ast.TemplateArg) []jsonTemplateArg {
	if args == nil {
		return nil
	}
	//
	nargs := make([]jsonTemplateArg, len(args))
	//
	for i := range args {
		nargs[i] = jsonTemplateArg{
			Expression: fromExpr(args[i].Expression),
			ArgName:    fromIdentPtr(args[i].ArgName),
			Span:       fromSpan(args[i].Span),
		}
	}
	//
	return nargs
}

func fromInlineArgs(inline *ast.InlineTemplateArgs) *jsonInlineArgs {
	if inline == nil {
		return nil
	}
	//
	return &jsonInlineArgs{
		Directives: fromDirectives(inline.Directives),
		Members:    fromDecls(inline.Members),
		Span:       fromSpan(inline.Span),
	}
}

func fromTemplateParams(params []*ast.TemplateParameter) []jsonTemplateParam {
	if params == nil {
		return nil
	}
	//
	nparams := make([]jsonTemplateParam, len(params))
	//
	for i, param := range params {
		nparams[i] = jsonTemplateParam{
			Name:         fromIdent(param.Name),
			DefaultValue: fromExprPtr(param.DefaultValue),
			Span:         fromSpan(param.Span),
		}
	}
	//
	return nparams
}

func fromDirectives(directives []ast.Directive) []jsonDirective {
	if directives == nil {
		return nil
	}
	//
	ndirectives := make([]jsonDirective, len(directives))
	//
	for i, d := range directives {
		ndirectives[i] = fromDirective(d)
	}
	//
	return ndirectives
}

func fromDirective(directive ast.Directive) jsonDirective {
	switch d := directive.(type) {
	case *ast.Use:
		return fromUse(d)
	case *ast.Extend:
		path := fromPath(d.Path)
		return jsonDirective{Kind: "extend", Path: &path, Span: fromSpan(d.Span)}
	default:
		panic(fmt.Sprintf("unknown directive (%T)", directive))
	}
}

func fromUse(use *ast.Use) jsonDirective {
	var path *jsonPath
	//
	if !use.Path.IsEmpty() {
		npath := fromPath(use.Path)
		path = &npath
	}
	//
	content := fromUseContent(use.Content)
	//
	return jsonDirective{Kind: "use", Path: path, Content: &content, Span: fromSpan(use.Span)}
}

func fromUseContent(content ast.UseContent) jsonUseContent {
	switch c := content.(type) {
	case *ast.UseItem:
		name := fromIdent(c.Name)
		//
		return jsonUseContent{
			Kind:               "item",
			Name:               &name,
			Rename:             fromIdentPtr(c.Rename),
			TemplateArgs:       fromTemplateArgs(c.TemplateArgs),
			InlineTemplateArgs: fromInlineArgs(c.InlineTemplateArgs),
			Span:               fromSpan(c.Span),
		}
	case *ast.UseCollection:
		uses := make([]jsonDirective, len(c.Uses))
		//
		for i, u := range c.Uses {
			uses[i] = fromUse(u)
		}
		//
		return jsonUseContent{Kind: "collection", Uses: uses, Span: fromSpan(c.Span)}
	default:
		panic(fmt.Sprintf("unknown use content (%T)", content))
	}
}

func fromDecls(decls []ast.Decl) []jsonDecl {
	if decls == nil {
		return nil
	}
	//
	ndecls := make([]jsonDecl, len(decls))
	//
	for i, d := range decls {
		ndecls[i] = fromDecl(d)
	}
	//
	return ndecls
}

func fromDecl(decl ast.Decl) jsonDecl {
	switch d := decl.(type) {
	case *ast.Declaration:
		name := fromIdent(d.DeclName)
		//
		return jsonDecl{
			Kind:               "declaration",
			DeclKind:           d.Kind,
			Name:               &name,
			TemplateParameters: fromTemplateParams(d.TemplateParameters),
			Type:               fromTypePtr(d.Type),
			Initializer:        fromExprPtr(d.Initializer),
			Span:               fromSpan(d.Span),
		}
	case *ast.Alias:
		name := fromIdent(d.DeclName)
		typ := fromType(d.Type)
		//
		return jsonDecl{
			Kind:               "alias",
			Name:               &name,
			TemplateParameters: fromTemplateParams(d.TemplateParameters),
			Type:               &typ,
			Span:               fromSpan(d.Span),
		}
	case *ast.Struct:
		name := fromIdent(d.DeclName)
		members := make([]jsonStructMember, len(d.Members))
		//
		for i := range d.Members {
			members[i] = jsonStructMember{
				Name: fromIdent(d.Members[i].Name),
				Type: fromType(d.Members[i].Type),
				Span: fromSpan(d.Members[i].Span),
			}
		}
		//
		return jsonDecl{
			Kind:               "struct",
			Name:               &name,
			TemplateParameters: fromTemplateParams(d.TemplateParameters),
			Members:            members,
			Span:               fromSpan(d.Span),
		}
	case *ast.Function:
		name := fromIdent(d.DeclName)
		params := make([]jsonFuncParam, len(d.Parameters))
		//
		for i := range d.Parameters {
			params[i] = jsonFuncParam{
				Name: fromIdent(d.Parameters[i].Name),
				Type: fromType(d.Parameters[i].Type),
				Span: fromSpan(d.Parameters[i].Span),
			}
		}
		//
		body := fromCompound(d.Body)
		//
		return jsonDecl{
			Kind:               "function",
			Name:               &name,
			TemplateParameters: fromTemplateParams(d.TemplateParameters),
			Parameters:         params,
			ReturnType:         fromTypePtr(d.ReturnType),
			Body:               &body,
			Span:               fromSpan(d.Span),
		}
	case *ast.ConstAssert:
		return jsonDecl{
			Kind:               "const_assert",
			TemplateParameters: fromTemplateParams(d.TemplateParameters),
			Assertion:          fromExprPtr(d.Assertion),
			Span:               fromSpan(d.Span),
		}
	case *ast.Module:
		name := fromIdent(d.DeclName)
		//
		return jsonDecl{
			Kind:               "module",
			Name:               &name,
			TemplateParameters: fromTemplateParams(d.TemplateParameters),
			Directives:         fromDirectives(d.Directives),
			ModuleMembers:      fromDecls(d.Members),
			Span:               fromSpan(d.Span),
		}
	default:
		panic(fmt.Sprintf("unknown declaration (%T)", decl))
	}
}

func fromType(typ ast.TypeExpr) jsonType {
	return jsonType{fromPath(typ.Path), fromSpan(typ.Span)}
}

func fromTypePtr(typ *ast.TypeExpr) *jsonType {
	if typ == nil {
		return nil
	}
	//
	ntyp := fromType(*typ)
	//
	return &ntyp
}

func fromExprPtr(expr ast.Expr) *jsonExpr {
	if expr == nil {
		return nil
	}
	//
	nexpr := fromExpr(expr)
	//
	return &nexpr
}

func fromExpr(expr ast.Expr) jsonExpr {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return jsonExpr{Kind: "literal", Value: e.Value, Span: fromSpan(e.Span)}
	case *ast.ParenExpr:
		return jsonExpr{Kind: "paren", Inner: fromExprPtr(e.Inner), Span: fromSpan(e.Span)}
	case *ast.NamedComponentExpr:
		component := fromIdent(e.Component)
		//
		return jsonExpr{Kind: "named_component", Base: fromExprPtr(e.Base), Component: &component, Span: fromSpan(e.Span)}
	case *ast.IndexExpr:
		return jsonExpr{Kind: "index", Base: fromExprPtr(e.Base), Index: fromExprPtr(e.Index), Span: fromSpan(e.Span)}
	case *ast.UnaryExpr:
		return jsonExpr{Kind: "unary", Operator: e.Operator, Operand: fromExprPtr(e.Operand), Span: fromSpan(e.Span)}
	case *ast.BinaryExpr:
		return jsonExpr{
			Kind:     "binary",
			Operator: e.Operator,
			Left:     fromExprPtr(e.Left),
			Right:    fromExprPtr(e.Right),
			Span:     fromSpan(e.Span),
		}
	case *ast.CallExpr:
		path := fromPath(e.Path)
		args := make([]jsonExpr, len(e.Arguments))
		//
		for i, a := range e.Arguments {
			args[i] = fromExpr(a)
		}
		//
		return jsonExpr{Kind: "call", Path: &path, Arguments: args, Span: fromSpan(e.Span)}
	case *ast.IdentifierExpr:
		path := fromPath(e.Path)
		//
		return jsonExpr{Kind: "identifier", Path: &path, Span: fromSpan(e.Span)}
	case *ast.TypeExpr:
		path := fromPath(e.Path)
		//
		return jsonExpr{Kind: "type", Path: &path, Span: fromSpan(e.Span)}
	default:
		panic(fmt.Sprintf("unknown expression (%T)", expr))
	}
}

func fromCompound(block ast.CompoundStmt) jsonCompound {
	var directives []jsonDirective
	//
	for _, u := range block.Directives {
		directives = append(directives, fromUse(u))
	}
	//
	return jsonCompound{
		Directives: directives,
		Statements: fromStmts(block.Statements),
		Span:       fromSpan(block.Span),
	}
}

func fromCompoundPtr(block *ast.CompoundStmt) *jsonCompound {
	if block == nil {
		return nil
	}
	//
	nblock := fromCompound(*block)
	//
	return &nblock
}

func fromStmts(stmts []ast.Stmt) []jsonStmt {
	if stmts == nil {
		return nil
	}
	//
	nstmts := make([]jsonStmt, len(stmts))
	//
	for i, s := range stmts {
		nstmts[i] = fromStmt(s)
	}
	//
	return nstmts
}

//nolint:gocyclo
func fromStmt(stmt ast.Stmt) jsonStmt {
	switch s := stmt.(type) {
	case *ast.VoidStmt:
		return jsonStmt{Kind: "void", Span: fromSpan(s.Span)}
	case *ast.CompoundStmt:
		block := fromCompound(*s)
		//
		return jsonStmt{Kind: "compound", Block: &block, Span: fromSpan(s.Span)}
	case *ast.AssignStmt:
		return jsonStmt{
			Kind:     "assign",
			Lhs:      fromExprPtr(s.Lhs),
			Operator: s.Operator,
			Rhs:      fromExprPtr(s.Rhs),
			Span:     fromSpan(s.Span),
		}
	case *ast.IncrementStmt:
		return jsonStmt{Kind: "increment", Target: fromExprPtr(s.Target), Span: fromSpan(s.Span)}
	case *ast.DecrementStmt:
		return jsonStmt{Kind: "decrement", Target: fromExprPtr(s.Target), Span: fromSpan(s.Span)}
	case *ast.IfStmt:
		var elseifs []jsonElseIf
		//
		for i := range s.ElseIfs {
			elseifs = append(elseifs, jsonElseIf{fromExpr(s.ElseIfs[i].Condition), fromCompound(s.ElseIfs[i].Body)})
		}
		//
		body := fromCompound(s.Body)
		//
		return jsonStmt{
			Kind:      "if",
			Condition: fromExprPtr(s.Condition),
			Body:      &body,
			ElseIfs:   elseifs,
			Else:      fromCompoundPtr(s.Else),
			Span:      fromSpan(s.Span),
		}
	case *ast.SwitchStmt:
		var clauses []jsonSwitchClause
		//
		for i := range s.Clauses {
			var selectors []jsonCaseSelector
			//
			for j := range s.Clauses[i].Selectors {
				selectors = append(selectors, jsonCaseSelector{
					Expression: fromExprPtr(s.Clauses[i].Selectors[j].Expression),
					Span:       fromSpan(s.Clauses[i].Selectors[j].Span),
				})
			}
			//
			clauses = append(clauses, jsonSwitchClause{selectors, fromCompound(s.Clauses[i].Body)})
		}
		//
		return jsonStmt{Kind: "switch", Selector: fromExprPtr(s.Selector), Clauses: clauses, Span: fromSpan(s.Span)}
	case *ast.LoopStmt:
		body := fromCompound(s.Body)
		//
		var continuing *jsonContinuing
		//
		if s.Continuing != nil {
			continuing = &jsonContinuing{
				Body:    fromCompound(s.Continuing.Body),
				BreakIf: fromExprPtr(s.Continuing.BreakIf),
				Span:    fromSpan(s.Continuing.Span),
			}
		}
		//
		return jsonStmt{Kind: "loop", Body: &body, Continuing: continuing, Span: fromSpan(s.Span)}
	case *ast.ForStmt:
		body := fromCompound(s.Body)
		//
		return jsonStmt{
			Kind:        "for",
			Initializer: fromStmtPtr(s.Initializer),
			Condition:   fromExprPtr(s.Condition),
			Update:      fromStmtPtr(s.Update),
			Body:        &body,
			Span:        fromSpan(s.Span),
		}
	case *ast.WhileStmt:
		body := fromCompound(s.Body)
		//
		return jsonStmt{Kind: "while", Condition: fromExprPtr(s.Condition), Body: &body, Span: fromSpan(s.Span)}
	case *ast.BreakStmt:
		return jsonStmt{Kind: "break", Span: fromSpan(s.Span)}
	case *ast.ContinueStmt:
		return jsonStmt{Kind: "continue", Span: fromSpan(s.Span)}
	case *ast.ReturnStmt:
		return jsonStmt{Kind: "return", Value: fromExprPtr(s.Value), Span: fromSpan(s.Span)}
	case *ast.DiscardStmt:
		return jsonStmt{Kind: "discard", Span: fromSpan(s.Span)}
	case *ast.CallStmt:
		call := fromExpr(&s.Call)
		//
		return jsonStmt{Kind: "call", Call: &call, Span: fromSpan(s.Span)}
	case *ast.ConstAssertStmt:
		return jsonStmt{
			Kind:      "const_assert",
			Params:    fromTemplateParams(s.Assertion.TemplateParameters),
			Assertion: fromExprPtr(s.Assertion.Assertion),
			Span:      fromSpan(s.Span),
		}
	case *ast.DeclStmt:
		decl := fromDecl(&s.Declaration)
		//
		return jsonStmt{
			Kind:        "declaration",
			Declaration: &decl,
			Statements:  fromStmts(s.Statements),
			Span:        fromSpan(s.Span),
		}
	default:
		panic(fmt.Sprintf("unknown statement (%T)", stmt))
	}
}

func fromStmtPtr(stmt ast.Stmt) *jsonStmt {
	if stmt == nil {
		return nil
	}
	//
	nstmt := fromStmt(stmt)
	//
	return &nstmt
}
