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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mewlang/go-mew/pkg/mew/ast"
	"github.com/mewlang/go-mew/pkg/util/source"
)

// Simple module reference: a call A::f() at translation-unit scope stays
// anchored at the root.
func Test_Resolve_01(t *testing.T) {
	stmt := &ast.CallStmt{Call: *callExpr("A", "f")}
	unit := newUnit(
		newModule("A", newFunction("f", newReturn(litExpr("0")))),
		newFunction("main", stmt),
	)
	//
	checkResolves(t, unit)
	checkPath(t, stmt.Call.Path, "A::f")
}

// Use-import with rename: "use A::f as g;" followed by g().
func Test_Resolve_02(t *testing.T) {
	stmt := &ast.CallStmt{Call: *callExpr("g")}
	unit := newUnit(
		newModule("A", newFunction("f")),
		newFunction("main", stmt),
	)
	unit.Directives = []ast.Directive{newUseRename("g", "A", "f")}
	//
	checkResolves(t, unit)
	checkPath(t, stmt.Call.Path, "A::f")
}

// Template parameter mangling: the parameter T of M::h is renamed M_h_T, and
// references within the signature follow.
func Test_Resolve_03(t *testing.T) {
	var (
		param = &ast.TemplateParameter{Name: ident("T")}
		ptype = typeExpr("T")
		rtype = typeExpr("T")
		fn    = &ast.Function{
			DeclName:           ident("h"),
			TemplateParameters: []*ast.TemplateParameter{param},
			Parameters:         []ast.FunctionParameter{{Name: ident("x"), Type: *ptype}},
			ReturnType:         rtype,
			Body:               ast.CompoundStmt{Statements: []ast.Stmt{newReturn(identExpr("x"))}},
		}
	)
	//
	unit := newUnit(newModule("M", fn))
	//
	checkResolves(t, unit)
	//
	if param.Name.Value != "M_h_T" {
		t.Errorf("expected parameter M_h_T, got %s", param.Name.Value)
	}
	//
	checkPath(t, fn.Parameters[0].Type.Path, "M_h_T")
	checkPath(t, fn.ReturnType.Path, "M_h_T")
}

// Extend desugaring: B gains one alias per member of A.
func Test_Resolve_04(t *testing.T) {
	modB := newModule("B")
	modB.Directives = []ast.Directive{&ast.Extend{Path: newPath("A")}}
	unit := newUnit(
		newModule("A", newFunction("f"), newFunction("g")),
		modB,
	)
	//
	checkResolves(t, unit)
	checkAliases(t, modB.Members, map[string]string{"f": "A::f", "g": "A::g"})
}

// Loop-continuing scope: a local declared in the loop body remains visible to
// the break_if expression of the continuing block.
func Test_Resolve_05(t *testing.T) {
	var (
		breakIf = &ast.BinaryExpr{Operator: ">", Left: identExpr("n"), Right: litExpr("0")}
		loop    = &ast.LoopStmt{
			Body: ast.CompoundStmt{Statements: []ast.Stmt{
				newDeclStmt("n", litExpr("1")),
			}},
			Continuing: &ast.ContinuingStmt{BreakIf: breakIf},
		}
	)
	//
	unit := newUnit(newFunction("main", loop))
	//
	checkResolves(t, unit)
	checkPath(t, breakIf.Left.(*ast.IdentifierExpr).Path, "n")
}

// Unresolved name: the pass fails with SymbolNotFound carrying the path and
// its span.
func Test_Resolve_06(t *testing.T) {
	var (
		span = source.NewSpan(3, 17)
		ref  = &ast.IdentifierExpr{Path: ast.NewPath(span, ast.NewPathPart(ident("does_not_exist")))}
		unit = newUnit(newFunction("main", newDeclStmt("x", ref)))
	)
	//
	err := NewResolver().Apply(unit)
	if err == nil {
		t.Fatal("expected resolution to fail")
	}
	//
	var notFound *SymbolNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SymbolNotFound, got %v", err)
	}
	//
	if got := ast.FormatPathParts(notFound.Path()); got != "does_not_exist" {
		t.Errorf("expected path does_not_exist, got %s", got)
	}
	//
	if notFound.Span() != span {
		t.Errorf("expected span %s, got %s", span.String(), notFound.Span().String())
	}
}

// Builtin-only input is a structural identity.
func Test_Resolve_07(t *testing.T) {
	unit := newUnit(newFunction("main",
		newDeclStmt("x", callExpr("clamp")),
		&ast.CallStmt{Call: *callExpr("workgroupBarrier")},
	))
	expected := unit.Clone()
	//
	checkResolves(t, unit)
	//
	if diff := cmp.Diff(expected, unit, cmp.AllowUnexported(source.Span{})); diff != "" {
		t.Errorf("unexpected mutation (-want +got):\n%s", diff)
	}
}

// Resolution is idempotent on template-free programs: a second run leaves the
// tree untouched and emits no further aliases.
func Test_Resolve_08(t *testing.T) {
	build := func() *ast.TranslationUnit {
		call := callExpr("g")
		modB := newModule("B")
		modB.Directives = []ast.Directive{&ast.Extend{Path: newPath("A")}}
		unit := newUnit(
			newModule("A", newFunction("f")),
			modB,
			newFunction("main", &ast.CallStmt{Call: *call}),
		)
		unit.Directives = []ast.Directive{newUseRename("g", "A", "f")}
		//
		return unit
	}
	//
	unit := build()
	checkResolves(t, unit)
	//
	expected := unit.Clone()
	checkResolves(t, unit)
	//
	if diff := cmp.Diff(expected, unit, cmp.AllowUnexported(source.Span{})); diff != "" {
		t.Errorf("second run was not a no-op (-want +got):\n%s", diff)
	}
}

// Forward references: sibling members are pre-indexed, so a member can call a
// member declared after it.
func Test_Resolve_09(t *testing.T) {
	stmt := &ast.CallStmt{Call: *callExpr("f")}
	unit := newUnit(newModule("A",
		newFunction("g", stmt),
		newFunction("f"),
	))
	//
	checkResolves(t, unit)
	checkPath(t, stmt.Call.Path, "A::f")
}

// Declaration statements: the initializer sees the scope before the declared
// name is bound, whilst trailing statements see it afterwards.
func Test_Resolve_10(t *testing.T) {
	var (
		outer = identExpr("c")
		inner = identExpr("c")
		first = newDeclStmt("c", outer, newDeclStmt("d", inner))
	)
	//
	unit := newUnit(newModule("M",
		&ast.Declaration{Kind: "const", DeclName: ident("c"), Initializer: litExpr("1")},
		newFunction("f", first),
	))
	//
	checkResolves(t, unit)
	// Initializer resolves to the module member
	checkPath(t, outer.Path, "M::c")
	// Trailing statement resolves to the new local
	checkPath(t, inner.Path, "c")
}

// Module template parameters: paths into a templated module carry the
// synthesized arguments for its parameters.
func Test_Resolve_11(t *testing.T) {
	var (
		stmt  = &ast.CallStmt{Call: *callExpr("h")}
		param = &ast.TemplateParameter{Name: ident("T")}
		mod   = &ast.Module{
			DeclName:           ident("M"),
			TemplateParameters: []*ast.TemplateParameter{param},
			Members: []ast.Decl{
				newFunction("u", stmt),
				newFunction("h"),
			},
		}
	)
	//
	checkResolves(t, newUnit(mod))
	//
	if param.Name.Value != "M_T" {
		t.Errorf("expected parameter M_T, got %s", param.Name.Value)
	}
	//
	checkPath(t, stmt.Call.Path, "M<M_T>::h")
}

// Use collections: "use A::{f, g}" binds both names.
func Test_Resolve_12(t *testing.T) {
	var (
		stmtF = &ast.CallStmt{Call: *callExpr("f")}
		stmtG = &ast.CallStmt{Call: *callExpr("g")}
	)
	//
	usage := &ast.Use{
		Path: newPath("A"),
		Content: &ast.UseCollection{Uses: []*ast.Use{
			{Content: &ast.UseItem{Name: ident("f")}},
			{Content: &ast.UseItem{Name: ident("g")}},
		}},
	}
	unit := newUnit(
		newModule("A", newFunction("f"), newFunction("g")),
		newFunction("main", stmtF, stmtG),
	)
	unit.Directives = []ast.Directive{usage}
	//
	checkResolves(t, unit)
	checkPath(t, stmtF.Call.Path, "A::f")
	checkPath(t, stmtG.Call.Path, "A::g")
}

// Use imports carrying template arguments: the arguments are attached to the
// leading retained segment of rewritten references.
func Test_Resolve_13(t *testing.T) {
	var (
		ref   = identExpr("g")
		param = &ast.TemplateParameter{Name: ident("T")}
	)
	//
	usage := &ast.Use{
		Path: newPath("A"),
		Content: &ast.UseItem{
			Name:         ident("s"),
			Rename:       identPtr("g"),
			TemplateArgs: []ast.TemplateArg{{Expression: identExpr("i32")}},
		},
	}
	unit := newUnit(
		newModule("A", &ast.Struct{
			DeclName:           ident("s"),
			TemplateParameters: []*ast.TemplateParameter{param},
		}),
		&ast.Declaration{Kind: "var", DeclName: ident("v"), Initializer: ref},
	)
	unit.Directives = []ast.Directive{usage}
	//
	checkResolves(t, unit)
	//
	path := ref.Path
	if len(path.Parts) != 2 {
		t.Fatalf("expected two segments, got %s", path.String())
	}
	//
	if len(path.Parts[0].TemplateArgs) != 1 {
		t.Errorf("expected carried arguments on leading segment, got %s", path.String())
	}
	//
	if path.Parts[0].Name.Value != "A" || path.Parts[1].Name.Value != "s" {
		t.Errorf("expected A::s, got %s", path.String())
	}
}

// Block-local use directives do not escape their block.
func Test_Resolve_14(t *testing.T) {
	var (
		inner = callExpr("g")
		after = callExpr("g")
	)
	//
	block := &ast.CompoundStmt{
		Directives: []*ast.Use{newUseRename("g", "A", "f")},
		Statements: []ast.Stmt{&ast.CallStmt{Call: *inner}},
	}
	unit := newUnit(
		newModule("A", newFunction("f")),
		newFunction("main", block, &ast.CallStmt{Call: *after}),
	)
	//
	err := NewResolver().Apply(unit)
	if err == nil {
		t.Fatal("expected g to be unbound outside the block")
	}
	//
	var notFound *SymbolNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SymbolNotFound, got %v", err)
	}
}

// For statements: an initializer declaration covers the condition, update and
// body.
func Test_Resolve_15(t *testing.T) {
	var (
		cond   = &ast.BinaryExpr{Operator: "<", Left: identExpr("i"), Right: litExpr("10")}
		update = &ast.IncrementStmt{Target: identExpr("i")}
		body   = identExpr("i")
	)
	//
	loop := &ast.ForStmt{
		Initializer: newDeclStmt("i", litExpr("0")),
		Condition:   cond,
		Update:      update,
		Body:        ast.CompoundStmt{Statements: []ast.Stmt{newDeclStmt("x", body)}},
	}
	//
	checkResolves(t, newUnit(newFunction("main", loop)))
	checkPath(t, body.Path, "i")
}

// Const-assert parameters are not mangled.
func Test_Resolve_16(t *testing.T) {
	var (
		param  = &ast.TemplateParameter{Name: ident("N")}
		ref    = identExpr("N")
		assert = &ast.ConstAssert{
			TemplateParameters: []*ast.TemplateParameter{param},
			Assertion:          &ast.BinaryExpr{Operator: ">", Left: ref, Right: litExpr("0")},
		}
	)
	//
	checkResolves(t, newUnit(assert))
	//
	if param.Name.Value != "N" {
		t.Errorf("expected parameter N to be unmangled, got %s", param.Name.Value)
	}
	//
	checkPath(t, ref.Path, "N")
}

// Extend of a module which itself extends another reaches a fixed point,
// aliasing transitively.
func Test_Resolve_17(t *testing.T) {
	modB := newModule("B")
	modB.Directives = []ast.Directive{&ast.Extend{Path: newPath("A")}}
	modC := newModule("C")
	modC.Directives = []ast.Directive{&ast.Extend{Path: newPath("B")}}
	//
	unit := newUnit(newModule("A", newFunction("f")), modB, modC)
	//
	checkResolves(t, unit)
	checkAliases(t, modB.Members, map[string]string{"f": "A::f"})
	checkAliases(t, modC.Members, map[string]string{"f": "B::f"})
}

// Extending an unknown module fails with SymbolNotFound.
func Test_Resolve_18(t *testing.T) {
	mod := newModule("B")
	mod.Directives = []ast.Directive{&ast.Extend{Path: newPath("Missing")}}
	//
	err := NewResolver().Apply(newUnit(mod))
	//
	var notFound *SymbolNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SymbolNotFound, got %v", err)
	}
}

// Inline template arguments: the block is expanded into a synthetic
// submodule, the member is renamed to its inline-mangled name, and a named
// argument is appended to the carrying segment.
func Test_Resolve_19(t *testing.T) {
	var (
		member = &ast.Alias{DeclName: ident("V"), Type: *typeExpr("i32")}
		ref    = identExpr("A", "f")
	)
	//
	ref.Path.Parts[1].InlineTemplateArgs = &ast.InlineTemplateArgs{Members: []ast.Decl{member}}
	//
	fn := &ast.Function{
		DeclName:           ident("f"),
		TemplateParameters: []*ast.TemplateParameter{{Name: ident("V")}},
	}
	unit := newUnit(
		newModule("A", fn),
		&ast.Declaration{Kind: "var", DeclName: ident("v"), Initializer: ref},
	)
	//
	checkResolves(t, unit)
	//
	args := ref.Path.Parts[1].TemplateArgs
	if len(args) != 1 {
		t.Fatalf("expected one synthesized argument, got %s", ref.Path.String())
	}
	//
	if args[0].ArgName == nil || args[0].ArgName.Value != "A_f_V" {
		t.Errorf("unexpected argument name in %s", ref.Path.String())
	}
	// The member itself was renamed to the inline name the argument points at
	inlineName := member.DeclName.Value
	if inlineName == "V" {
		t.Errorf("expected inline member to be renamed, got %s", inlineName)
	}
	//
	expr := args[0].Expression.(*ast.IdentifierExpr)
	if got := expr.Path.String(); got != inlineName {
		t.Errorf("expected argument to reference %s, got %s", inlineName, got)
	}
}

// Shadowing: a local declaration shadows a global of the same name for
// subsequent statements.
func Test_Resolve_20(t *testing.T) {
	var (
		before = identExpr("x")
		after  = identExpr("x")
	)
	//
	unit := newUnit(
		&ast.Declaration{Kind: "const", DeclName: ident("x"), Initializer: litExpr("1")},
		newModule("M", newFunction("f",
			newDeclStmt("a", before),
			// Trailing statements live inside the declaration statement
		)),
	)
	// Give the declaration statement a shadowing declaration plus a use of it
	decl := unit.Declarations[1].(*ast.Module).Members[0].(*ast.Function).Body.Statements[0].(*ast.DeclStmt)
	decl.Statements = []ast.Stmt{newDeclStmt("x", litExpr("2"), newDeclStmt("b", after))}
	//
	checkResolves(t, unit)
	checkPath(t, before.Path, "x")
	checkPath(t, after.Path, "x")
}

// =============================================================================
// Test Helpers
// =============================================================================

func ident(name string) ast.Ident {
	return ast.NewIdent(name, source.NewSpan(0, 0))
}

func identPtr(name string) *ast.Ident {
	id := ident(name)
	return &id
}

func newPath(names ...string) ast.Path {
	parts := make([]ast.PathPart, len(names))
	//
	for i, n := range names {
		parts[i] = ast.NewPathPart(ident(n))
	}
	//
	return ast.NewPath(source.NewSpan(0, 0), parts...)
}

func identExpr(names ...string) *ast.IdentifierExpr {
	return &ast.IdentifierExpr{Path: newPath(names...)}
}

func typeExpr(names ...string) *ast.TypeExpr {
	return &ast.TypeExpr{Path: newPath(names...)}
}

func callExpr(names ...string) *ast.CallExpr {
	return &ast.CallExpr{Path: newPath(names...)}
}

func litExpr(value string) ast.Expr {
	return &ast.LiteralExpr{Value: value}
}

func newReturn(value ast.Expr) ast.Stmt {
	return &ast.ReturnStmt{Value: value}
}

func newDeclStmt(name string, init ast.Expr, trailing ...ast.Stmt) *ast.DeclStmt {
	return &ast.DeclStmt{
		Declaration: ast.Declaration{Kind: "let", DeclName: ident(name), Initializer: init},
		Statements:  trailing,
	}
}

func newFunction(name string, stmts ...ast.Stmt) *ast.Function {
	return &ast.Function{
		DeclName: ident(name),
		Body:     ast.CompoundStmt{Statements: stmts},
	}
}

func newModule(name string, members ...ast.Decl) *ast.Module {
	return &ast.Module{DeclName: ident(name), Members: members}
}

func newUnit(decls ...ast.Decl) *ast.TranslationUnit {
	return &ast.TranslationUnit{Declarations: decls}
}

func newUseRename(rename string, base string, name string) *ast.Use {
	return &ast.Use{
		Path:    newPath(base),
		Content: &ast.UseItem{Name: ident(name), Rename: identPtr(rename)},
	}
}

func checkResolves(t *testing.T, unit *ast.TranslationUnit) {
	t.Helper()
	//
	if err := NewResolver().Apply(unit); err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
}

func checkPath(t *testing.T, path ast.Path, expected string) {
	t.Helper()
	//
	if got := path.String(); got != expected {
		t.Errorf("expected path %s, got %s", expected, got)
	}
}

// Check that a member list contains exactly the given aliases (alongside any
// non-alias members), mapping alias name to the expected type path.
func checkAliases(t *testing.T, members []ast.Decl, expected map[string]string) {
	t.Helper()
	//
	found := make(map[string]string)
	//
	for _, m := range members {
		if alias, ok := m.(*ast.Alias); ok {
			found[alias.DeclName.Value] = alias.Type.Path.String()
		}
	}
	//
	if len(found) != len(expected) {
		t.Errorf("expected %d aliases, found %d", len(expected), len(found))
	}
	//
	for name, typ := range expected {
		if found[name] != typ {
			t.Errorf("expected alias %s -> %s, got %s", name, typ, found[name])
		}
	}
}
