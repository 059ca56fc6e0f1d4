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
	"github.com/mewlang/go-mew/pkg/mew/builtins"
	"github.com/mewlang/go-mew/pkg/mew/mangle"
)

// Scope discipline used throughout this file: a function taking a Scope owns
// that frame and is free to bind into it.  Callers which need their frame
// unchanged afterwards pass scope.Clone(); callers which are done with a
// frame pass it directly.  Thus bindings never leak upwards, only onwards.

// Resolve a complete translation unit.  Globals are pre-indexed into scope
// before anything is walked, so declaration order never constrains reference
// order; use directives are bound next, then extend directives are desugared
// into alias declarations, and finally every global declaration is walked.
func resolveTranslationUnit(unit *ast.TranslationUnit, catalog *builtins.Catalog) error {
	var (
		mp      ModulePath
		scope   = NewScope()
		others  []ast.Directive
		extends []*ast.Extend
	)
	// Install the builtin catalog
	for _, name := range catalog.Names() {
		scope.Bind(name, BuiltIn{})
	}
	// Pre-index global declarations
	for _, decl := range unit.Declarations {
		if name := decl.Name(); name != nil {
			scope.Bind(name.Value, GlobalDeclaration{decl.CloneDecl()})
		}
	}
	// Bind use directives, holding back extends
	for _, dir := range unit.Directives {
		switch d := dir.(type) {
		case *ast.Use:
			if err := addUseToScope(d, mp, scope); err != nil {
				return err
			}
			//
			others = append(others, d)
		case *ast.Extend:
			extends = append(extends, d)
		default:
			panic(fmt.Sprintf("unknown global directive (%T)", dir))
		}
	}
	//
	unit.Directives = others
	// Desugar extend directives into alias declarations
	for _, ext := range extends {
		aliases, err := expandExtend(ext, mp, scope, declaredNames(unit.Declarations))
		if err != nil {
			return err
		}
		//
		for i := range aliases {
			unit.Declarations = append(unit.Declarations, &aliases[i])
		}
		//
		if err := resolvePath(scope.Clone(), mp, &ext.Path); err != nil {
			return err
		}
		//
		unit.Directives = append(unit.Directives, ext)
	}
	// Walk every global declaration (including generated aliases)
	for _, decl := range unit.Declarations {
		if err := resolveDecl(decl, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	return nil
}

// Resolve a single declaration of any kind, dispatching on its form.
func resolveDecl(decl ast.Decl, mp ModulePath, scope Scope) error {
	switch d := decl.(type) {
	case *ast.Declaration:
		return resolveDeclaration(d, mp, scope)
	case *ast.Alias:
		return resolveAlias(d, mp, scope)
	case *ast.Struct:
		return resolveStruct(d, mp, scope)
	case *ast.Function:
		return resolveFunction(d, mp, scope)
	case *ast.ConstAssert:
		return resolveConstAssert(d, mp, scope)
	case *ast.Module:
		return resolveModule(d, mp, scope)
	default:
		panic(fmt.Sprintf("unknown declaration (%T)", decl))
	}
}

// =============================================================================
// Modules
// =============================================================================

// Resolve a nested module.  The module's template parameters are mangled and
// its own name (carrying synthesized arguments for those parameters) is
// pushed onto the module path; its members are then pre-indexed into scope so
// siblings can forward-reference each other; directives are processed; and
// finally each member is walked.
func resolveModule(module *ast.Module, mp ModulePath, scope Scope) error {
	mp, err := indexModuleScope(mp, module, scope)
	if err != nil {
		return err
	}
	//
	if err := processDirectives(mp, &module.Directives, &module.Members, scope); err != nil {
		return err
	}
	//
	for _, decl := range module.Members {
		if err := resolveDecl(decl, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	return nil
}

// Mangle a module's template parameters, extend the module path with the
// module's own name, and pre-index its members into scope.  The extended
// module path is returned.  Synthesized template arguments referencing the
// mangled parameters are attached to the pushed path part, so that any path
// rewritten against this module carries the arguments explicitly.
func indexModuleScope(mp ModulePath, module *ast.Module, scope Scope) (ModulePath, error) {
	var targs []ast.TemplateArg
	// Mangle template parameters, synthesizing an argument per parameter
	for _, param := range module.TemplateParameters {
		oldName := param.Name.Value
		newName := mangle.TemplateParamName(mp, module.DeclName.Value, oldName)
		param.Name.Value = newName
		//
		targ := ast.TemplateArg{
			Expression: &ast.IdentifierExpr{
				Path: ast.NewPath(param.Span, ast.NewPathPart(ast.NewIdent(newName, param.Name.Span))),
				Span: param.Span,
			},
			Span: param.Span,
		}
		// Only defaulted parameters are passed by name
		if param.DefaultValue != nil {
			name := param.Name
			targ.ArgName = &name
		}
		//
		targs = append(targs, targ)
		scope.Bind(newName, TemplateParam{newName})
		scope.Bind(oldName, TemplateParam{newName})
	}
	// Push the module name itself
	if module.DeclName.Value != "" {
		mp = mp.Extend(ast.PathPart{Name: module.DeclName, TemplateArgs: targs})
	}
	// Defaults are walked under the extended path
	for _, param := range module.TemplateParameters {
		if param.DefaultValue != nil {
			if err := resolveExpr(param.DefaultValue, mp, scope.Clone()); err != nil {
				return mp, err
			}
		}
	}
	// Pre-index members, snapshotting each declaration
	for _, decl := range module.Members {
		if name := decl.Name(); name != nil {
			scope.Bind(name.Value, ModuleMemberDeclaration{mp.Clone(), decl.CloneDecl()})
		}
	}
	//
	return mp, nil
}

// Process the directives of a module (or synthetic module): use directives
// are bound into scope first, then extend directives are desugared, each
// appending its generated alias members.  Both complete before any member is
// walked.
func processDirectives(mp ModulePath, directives *[]ast.Directive, members *[]ast.Decl, scope Scope) error {
	var (
		others  []ast.Directive
		extends []*ast.Extend
	)
	//
	for _, dir := range *directives {
		switch d := dir.(type) {
		case *ast.Use:
			if err := addUseToScope(d, mp, scope); err != nil {
				return err
			}
			//
			others = append(others, d)
		case *ast.Extend:
			extends = append(extends, d)
		default:
			panic(fmt.Sprintf("unknown module directive (%T)", dir))
		}
	}
	//
	*directives = nil
	//
	for _, ext := range extends {
		aliases, err := expandExtend(ext, mp, scope, declaredNames(*members))
		if err != nil {
			return err
		}
		//
		for i := range aliases {
			*members = append(*members, &aliases[i])
		}
		//
		if err := resolvePath(scope.Clone(), mp, &ext.Path); err != nil {
			return err
		}
		//
		*directives = append(*directives, ext)
	}
	//
	*directives = append(*directives, others...)
	//
	return nil
}

// =============================================================================
// Use and extend processing
// =============================================================================

// Bind the names imported by a use directive into scope.  The base path is
// rewritten first; a leaf item then binds its (possibly renamed) name to the
// fully-qualified path of the imported symbol, whilst a collection recurses
// on a copy of each child whose base is prefixed with this directive's base.
func addUseToScope(usage *ast.Use, mp ModulePath, scope Scope) error {
	if !usage.Path.IsEmpty() {
		if err := resolvePath(scope.Clone(), mp, &usage.Path); err != nil {
			return err
		}
	}
	//
	switch content := usage.Content.(type) {
	case *ast.UseItem:
		usagePath := usage.Path.Clone()
		usagePath.Push(ast.PathPart{
			Name:               content.Name,
			TemplateArgs:       ast.CloneTemplateArgs(content.TemplateArgs),
			InlineTemplateArgs: content.InlineTemplateArgs.Clone(),
		})
		//
		if err := resolvePath(scope.Clone(), mp, &usagePath); err != nil {
			return err
		}
		//
		bound := content.Name
		//
		if content.Rename != nil {
			bound = *content.Rename
		}
		//
		scope.Bind(bound.Value, UseDeclaration{
			ModulePath(usagePath.Parts),
			ast.CloneTemplateArgs(content.TemplateArgs),
		})
	case *ast.UseCollection:
		for _, child := range content.Uses {
			// Process a copy, leaving the child's own base in the tree as written
			nchild := &ast.Use{Path: child.Path.Clone(), Content: child.Content, Span: child.Span}
			nchild.Path.Parts = append(ast.ClonePathParts(usage.Path.Parts), nchild.Path.Parts...)
			//
			if err := addUseToScope(nchild, mp, scope); err != nil {
				return err
			}
		}
	default:
		panic(fmt.Sprintf("unknown use content (%T)", usage.Content))
	}
	//
	return nil
}

// Collect the declared names of a member list.  Used to keep extend
// expansion a fixed point: a member the extending container already has is
// never aliased again.
func declaredNames(decls []ast.Decl) map[string]bool {
	names := make(map[string]bool, len(decls))
	//
	for _, decl := range decls {
		if name := decl.Name(); name != nil {
			names[name.Value] = true
		}
	}
	//
	return names
}

// Desugar a single extend directive: locate the extended module by walking
// the scope through the path's segments, normalize a copy of it under its
// resolved absolute path, and emit one alias per named member, with template
// parameters re-mangled in the extending container's namespace.  Members the
// extending container already declares (including aliases generated by an
// earlier run or an earlier extend) are skipped, making expansion a fixed
// point.
func expandExtend(ext *ast.Extend, mp ModulePath, scope Scope, existing map[string]bool) ([]ast.Alias, error) {
	module, moduleScope, err := findModuleAndScope(scope.Clone(), &ext.Path)
	if err != nil {
		return nil, err
	}
	// Normalize the extended module under its absolute path
	extendPath := ext.Path.Clone()
	//
	if err := resolvePath(scope.Clone(), mp, &extendPath); err != nil {
		return nil, err
	}
	//
	if err := resolveModule(module, ModulePath(extendPath.Parts), moduleScope); err != nil {
		return nil, err
	}
	// Construct the base path all aliases point through
	path := ext.Path.Clone()
	//
	if err := resolvePath(scope.Clone(), mp, &path); err != nil {
		return nil, err
	}
	//
	for i := range path.Parts {
		path.Parts[i].InlineTemplateArgs = nil
	}
	//
	var aliases []ast.Alias
	//
	for _, member := range module.Members {
		name := member.Name()
		if name == nil || existing[name.Value] {
			continue
		}
		//
		existing[name.Value] = true
		apath := path.Clone()
		apath.Push(ast.NewPathPart(*name))
		// Re-mangle the member's parameters for the extending container
		params := ast.CloneTemplateParams(member.TemplateParams())
		//
		for _, param := range params {
			param.Name.Value = mangle.TemplateParamName(mp, name.Value, param.Name.Value)
		}
		//
		alias := ast.Alias{
			DeclName:           *name,
			TemplateParameters: params,
			Type:               ast.TypeExpr{Path: apath, Span: ext.Span},
			Span:               ext.Span,
		}
		//
		scope.Bind(name.Value, ModuleMemberDeclaration{mp.Clone(), alias.CloneDecl()})
		aliases = append(aliases, alias)
	}
	//
	return aliases, nil
}

// Locate the module named by an extend path, walking the scope through each
// segment.  Hops are walked on copies, so the tree itself is untouched; the
// scope accumulated over the hops is returned alongside the module for use
// when normalizing it.  Encountering a non-module binding here means a prior
// stage produced a malformed tree.
func findModuleAndScope(scope Scope, path *ast.Path) (*ast.Module, Scope, error) {
	if path.IsEmpty() {
		panic("empty extend path")
	}
	//
	var (
		mp        ModulePath
		module    *ast.Module
		remaining = path.Parts[1:]
	)
	//
	member, ok := scope.Lookup(path.Parts[0].Name.Value)
	if !ok {
		return nil, scope, NewSymbolNotFound(ast.ClonePathParts(path.Parts), path.Span)
	}
	//
	switch m := member.(type) {
	case ModuleMemberDeclaration:
		module, ok = m.Decl.(*ast.Module)
	case GlobalDeclaration:
		module, ok = m.Decl.(*ast.Module)
	default:
		ok = false
	}
	//
	if !ok {
		panic(fmt.Sprintf("non-module binding in extend path \"%s\"", path.String()))
	}
	//
	module = module.Clone()
	//
outer:
	for len(remaining) > 0 {
		nmp, err := indexModuleScope(mp, module, scope)
		if err != nil {
			return nil, scope, err
		}
		//
		mp = nmp
		//
		if err := processDirectives(mp, &module.Directives, &module.Members, scope); err != nil {
			return nil, scope, err
		}
		//
		for _, decl := range module.Members {
			if m, ok := decl.(*ast.Module); ok && m.DeclName.Value == remaining[0].Name.Value {
				remaining = remaining[1:]
				module = m.Clone()
				//
				continue outer
			}
		}
		//
		return nil, scope, NewSymbolNotFound(ast.ClonePathParts(path.Parts), path.Span)
	}
	//
	return module, scope, nil
}

// =============================================================================
// Path rewriting
// =============================================================================

// Rewrite a path so that it is absolute: any inline template-argument blocks
// are expanded first, then the binding of the leading segment determines the
// rewrite.
func resolvePath(scope Scope, mp ModulePath, path *ast.Path) error {
	if err := expandInlineArgs(mp, path, scope); err != nil {
		return err
	}
	//
	return applyScopeToPath(scope, path)
}

// Apply the binding of a path's leading segment, rewriting the path in place.
// Unknown names fail with SymbolNotFound.
func applyScopeToPath(scope Scope, path *ast.Path) error {
	if path.IsEmpty() {
		return nil
	}
	//
	member, ok := scope.Lookup(path.First().Name.Value)
	if !ok {
		return NewSymbolNotFound(ast.ClonePathParts(path.Parts), path.Span)
	}
	//
	switch m := member.(type) {
	case LocalDeclaration, FormalFunctionParameter, BuiltIn, GlobalDeclaration:
		// Already resolvable from the root; no rewriting required.
	case TemplateParam:
		path.First().Name.Value = m.NewName
	case ModuleMemberDeclaration:
		nparts := ast.ClonePathParts(m.Module)
		path.Parts = append(nparts, path.Parts...)
	case UseDeclaration:
		nparts := ast.ClonePathParts(m.Target)
		//
		if len(m.TemplateArgs) > 0 {
			nparts[0].TemplateArgs = ast.CloneTemplateArgs(m.TemplateArgs)
		}
		//
		path.Parts = append(nparts, path.Parts[1:]...)
	case Inline:
		nparts := ast.ClonePathParts(m.Target)
		path.Parts = append(nparts, path.Parts[1:]...)
	default:
		panic(fmt.Sprintf("unknown scope member (%T)", member))
	}
	//
	return nil
}

// Expand any inline template-argument blocks carried by a path's parts.  Each
// inline block becomes a synthetic submodule whose members are renamed to
// their inline-mangled names; the enclosing scope gains a TemplateParam
// binding under the argument name and an Inline binding under the inline
// name, and a synthesized named argument per member is appended to the
// carrying part's template arguments.
func expandInlineArgs(mp ModulePath, path *ast.Path, scope Scope) error {
	var current []ast.PathPart
	// Snapshot the scope as it stood before any expansion bindings
	innerScope := scope.Clone()
	// Determine the path of the container enclosing the first segment
	fullPath := ast.Path{Parts: ast.ClonePathParts(path.Parts[:min(1, len(path.Parts))]), Span: path.Span}
	//
	if err := applyScopeToPath(scope.Clone(), &fullPath); err != nil {
		return err
	}
	//
	if !fullPath.IsEmpty() {
		fullPath.Parts = fullPath.Parts[:len(fullPath.Parts)-1]
	}
	//
	for i := range path.Parts {
		part := &path.Parts[i]
		current = append(current, part.Clone())
		// Detach explicit arguments whilst expanding
		templateArgs := part.TemplateArgs
		part.TemplateArgs = nil
		//
		if inline := part.InlineTemplateArgs; inline != nil {
			derived := &ast.Module{Span: inline.Span}
			//
			if last := mp.Last(); last != nil {
				derived.DeclName = last.Name
			}
			//
			inner := innerScope.Clone()
			//
			if err := processDirectives(mp, &inline.Directives, &derived.Members, inner); err != nil {
				return err
			}
			//
			derived.Directives = inline.Directives
			inline.Directives = nil
			members := inline.Members
			inline.Members = nil
			//
			for _, member := range members {
				if name := member.Name(); name != nil {
					argName := mangle.TemplateParamName(ModulePath(fullPath.Parts), part.Name.Value, name.Value)
					inlineName := mangle.InlineArgName(mp, current, name.Value)
					childPath := mp.Extend(ast.NewPathPart(ast.NewIdent(inlineName, name.Span)))
					//
					scope.Bind(argName, TemplateParam{inlineName})
					scope.Bind(inlineName, Inline{childPath})
					//
					boundName := ast.NewIdent(argName, name.Span)
					templateArgs = append(templateArgs, ast.TemplateArg{
						Expression: &ast.IdentifierExpr{
							Path: ast.Path{Parts: ast.ClonePathParts(childPath), Span: name.Span},
							Span: name.Span,
						},
						ArgName: &boundName,
						Span:    name.Span,
					})
					// Rename the member itself to its inline name
					name.Value = inlineName
				}
				//
				derived.Members = append(derived.Members, member)
			}
			//
			if err := resolveModule(derived, mp, inner); err != nil {
				return err
			}
			// Reattach the normalized synthetic body
			inline.Directives = append(inline.Directives, derived.Directives...)
			inline.Members = append(inline.Members, derived.Members...)
		}
		//
		if len(templateArgs) > 0 {
			for j := range templateArgs {
				if err := resolveExpr(templateArgs[j].Expression, mp, scope.Clone()); err != nil {
					return err
				}
			}
			//
			part.TemplateArgs = templateArgs
		}
		//
		fullPath.Parts = append(fullPath.Parts, part.Clone())
	}
	//
	return nil
}

// =============================================================================
// Declarations
// =============================================================================

// Mangle the template parameters of a declaration-like entity.  Each default
// value is walked before its parameter is added to scope; the parameter is
// then bound under both its original and its mangled name, so that already
// rewritten references remain resolvable across re-entries.
func mangleTemplateParams(mp ModulePath, containing string, params []*ast.TemplateParameter, scope Scope) error {
	for _, param := range params {
		if param.DefaultValue != nil {
			if err := resolveExpr(param.DefaultValue, mp, scope.Clone()); err != nil {
				return err
			}
		}
		//
		oldName := param.Name.Value
		newName := mangle.TemplateParamName(mp, containing, oldName)
		param.Name.Value = newName
		scope.Bind(newName, TemplateParam{newName})
		scope.Bind(oldName, TemplateParam{newName})
	}
	//
	return nil
}

// Resolve a variable or constant declaration.
func resolveDeclaration(decl *ast.Declaration, mp ModulePath, scope Scope) error {
	if err := mangleTemplateParams(mp, decl.DeclName.Value, decl.TemplateParameters, scope); err != nil {
		return err
	}
	//
	if decl.Initializer != nil {
		if err := resolveExpr(decl.Initializer, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	if decl.Type != nil {
		if err := resolveType(decl.Type, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	return nil
}

// Resolve a type alias declaration.
func resolveAlias(alias *ast.Alias, mp ModulePath, scope Scope) error {
	if err := mangleTemplateParams(mp, alias.DeclName.Value, alias.TemplateParameters, scope); err != nil {
		return err
	}
	//
	return resolveType(&alias.Type, mp, scope)
}

// Resolve a struct declaration.
func resolveStruct(strct *ast.Struct, mp ModulePath, scope Scope) error {
	if err := mangleTemplateParams(mp, strct.DeclName.Value, strct.TemplateParameters, scope); err != nil {
		return err
	}
	//
	for i := range strct.Members {
		if err := resolveType(&strct.Members[i].Type, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	return nil
}

// Resolve a function declaration.  The return type is rewritten under the
// scope holding the mangled template parameters; each parameter's type is
// walked before the parameter name itself becomes visible.
func resolveFunction(fn *ast.Function, mp ModulePath, scope Scope) error {
	if err := mangleTemplateParams(mp, fn.DeclName.Value, fn.TemplateParameters, scope); err != nil {
		return err
	}
	//
	if fn.ReturnType != nil {
		if err := resolvePath(scope.Clone(), mp, &fn.ReturnType.Path); err != nil {
			return err
		}
	}
	//
	for i := range fn.Parameters {
		if err := resolveType(&fn.Parameters[i].Type, mp, scope.Clone()); err != nil {
			return err
		}
		//
		scope.Bind(fn.Parameters[i].Name.Value, FormalFunctionParameter{})
	}
	//
	return resolveCompound(&fn.Body, mp, scope)
}

// Resolve a const-assert declaration.  Const-assert template parameters are
// not mangled: they are scope-local and cannot be referenced from outside.
func resolveConstAssert(assert *ast.ConstAssert, mp ModulePath, scope Scope) error {
	for _, param := range assert.TemplateParameters {
		if param.DefaultValue != nil {
			if err := resolveExpr(param.DefaultValue, mp, scope.Clone()); err != nil {
				return err
			}
		}
		//
		scope.Bind(param.Name.Value, TemplateParam{param.Name.Value})
	}
	//
	return resolveExpr(assert.Assertion, mp, scope)
}

// =============================================================================
// Statements
// =============================================================================

// Resolve a compound block: block-local use directives are absorbed into the
// block's own frame first, then statements are walked in order.  The parent
// frame is unaffected on return.
func resolveCompound(block *ast.CompoundStmt, mp ModulePath, scope Scope) error {
	for _, usage := range block.Directives {
		if err := addUseToScope(usage, mp, scope); err != nil {
			return err
		}
	}
	//
	for _, stmt := range block.Statements {
		if err := resolveStmt(stmt, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	return nil
}

// Resolve a single statement, dispatching on its form.
//
//nolint:gocyclo
func resolveStmt(stmt ast.Stmt, mp ModulePath, scope Scope) error {
	switch s := stmt.(type) {
	case *ast.VoidStmt, *ast.BreakStmt, *ast.ContinueStmt, *ast.DiscardStmt:
		// No action required
		return nil
	case *ast.CompoundStmt:
		return resolveCompound(s, mp, scope)
	case *ast.AssignStmt:
		if err := resolveExpr(s.Lhs, mp, scope.Clone()); err != nil {
			return err
		}
		//
		return resolveExpr(s.Rhs, mp, scope)
	case *ast.IncrementStmt:
		return resolveExpr(s.Target, mp, scope)
	case *ast.DecrementStmt:
		return resolveExpr(s.Target, mp, scope)
	case *ast.IfStmt:
		return resolveIf(s, mp, scope)
	case *ast.SwitchStmt:
		return resolveSwitch(s, mp, scope)
	case *ast.LoopStmt:
		return resolveLoop(s, mp, scope)
	case *ast.ForStmt:
		return resolveFor(s, mp, scope)
	case *ast.WhileStmt:
		if err := resolveExpr(s.Condition, mp, scope.Clone()); err != nil {
			return err
		}
		//
		return resolveCompound(&s.Body, mp, scope)
	case *ast.ReturnStmt:
		if s.Value != nil {
			return resolveExpr(s.Value, mp, scope)
		}
		//
		return nil
	case *ast.CallStmt:
		if err := resolvePath(scope.Clone(), mp, &s.Call.Path); err != nil {
			return err
		}
		//
		for _, arg := range s.Call.Arguments {
			if err := resolveExpr(arg, mp, scope.Clone()); err != nil {
				return err
			}
		}
		//
		return nil
	case *ast.ConstAssertStmt:
		return resolveExpr(s.Assertion.Assertion, mp, scope)
	case *ast.DeclStmt:
		return resolveDeclStmt(s, mp, scope)
	default:
		panic(fmt.Sprintf("unknown statement (%T)", stmt))
	}
}

// Resolve an if statement.  The condition and each clause body get their own
// derived frames.
func resolveIf(stmt *ast.IfStmt, mp ModulePath, scope Scope) error {
	if err := resolveExpr(stmt.Condition, mp, scope.Clone()); err != nil {
		return err
	}
	//
	if err := resolveCompound(&stmt.Body, mp, scope.Clone()); err != nil {
		return err
	}
	//
	for i := range stmt.ElseIfs {
		if err := resolveExpr(stmt.ElseIfs[i].Condition, mp, scope.Clone()); err != nil {
			return err
		}
		//
		if err := resolveCompound(&stmt.ElseIfs[i].Body, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	if stmt.Else != nil {
		return resolveCompound(stmt.Else, mp, scope)
	}
	//
	return nil
}

// Resolve a switch statement.  The selector is walked in the enclosing
// frame; each clause gets its own derived frame.
func resolveSwitch(stmt *ast.SwitchStmt, mp ModulePath, scope Scope) error {
	if err := resolveExpr(stmt.Selector, mp, scope.Clone()); err != nil {
		return err
	}
	//
	for i := range stmt.Clauses {
		for j := range stmt.Clauses[i].Selectors {
			// A nil expression is the default selector
			if e := stmt.Clauses[i].Selectors[j].Expression; e != nil {
				if err := resolveExpr(e, mp, scope.Clone()); err != nil {
					return err
				}
			}
		}
		//
		if err := resolveCompound(&stmt.Clauses[i].Body, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	return nil
}

// Resolve a loop statement.  The continuing block and its break-if
// expression share the loop body's scope, including use directives absorbed
// by the body and any local declarations made there (transitively, through
// the trailing statements of declaration statements).  The body is walked
// once in a derived frame; the names it declares are then bound into the
// loop's own frame, under which the continuing block and break-if are walked.
func resolveLoop(stmt *ast.LoopStmt, mp ModulePath, scope Scope) error {
	for _, usage := range stmt.Body.Directives {
		if err := addUseToScope(usage, mp, scope); err != nil {
			return err
		}
	}
	//
	if err := resolveCompound(&stmt.Body, mp, scope.Clone()); err != nil {
		return err
	}
	// Locals declared in the body remain visible to the continuing block
	for _, s := range stmt.Body.Statements {
		if decl, ok := s.(*ast.DeclStmt); ok {
			bindLoopLocals(decl, scope)
		}
	}
	//
	if cont := stmt.Continuing; cont != nil {
		for _, usage := range cont.Body.Directives {
			if err := addUseToScope(usage, mp, scope); err != nil {
				return err
			}
		}
		//
		if err := resolveCompound(&cont.Body, mp, scope.Clone()); err != nil {
			return err
		}
		//
		for _, s := range cont.Body.Statements {
			if decl, ok := s.(*ast.DeclStmt); ok {
				bindLoopLocals(decl, scope)
			}
		}
		//
		if cont.BreakIf != nil {
			return resolveExpr(cont.BreakIf, mp, scope)
		}
	}
	//
	return nil
}

// Bind a declaration statement's name, and those of every declaration
// statement nested in its trailing statements, into the given frame.  Only
// loop bodies need this: their locals remain visible to the continuing block.
func bindLoopLocals(decl *ast.DeclStmt, scope Scope) {
	scope.Bind(decl.Declaration.DeclName.Value, LocalDeclaration{})
	//
	for _, s := range decl.Statements {
		if d, ok := s.(*ast.DeclStmt); ok {
			bindLoopLocals(d, scope)
		}
	}
}

// Resolve a for statement.  An initializer declaration binds into the header
// frame, which covers the condition, update and body.
func resolveFor(stmt *ast.ForStmt, mp ModulePath, scope Scope) error {
	if stmt.Initializer != nil {
		if err := resolveStmt(stmt.Initializer, mp, scope.Clone()); err != nil {
			return err
		}
		//
		if decl, ok := stmt.Initializer.(*ast.DeclStmt); ok {
			scope.Bind(decl.Declaration.DeclName.Value, LocalDeclaration{})
		}
	}
	//
	if stmt.Condition != nil {
		if err := resolveExpr(stmt.Condition, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	if stmt.Update != nil {
		if err := resolveStmt(stmt.Update, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	return resolveCompound(&stmt.Body, mp, scope)
}

// Resolve a declaration statement.  The initializer and type are walked with
// the frame as it stood before the declaration; the declared name is then
// bound, and the trailing statements are walked under the extended frame.
func resolveDeclStmt(stmt *ast.DeclStmt, mp ModulePath, scope Scope) error {
	if stmt.Declaration.Initializer != nil {
		if err := resolveExpr(stmt.Declaration.Initializer, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	if stmt.Declaration.Type != nil {
		if err := resolveType(stmt.Declaration.Type, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	scope.Bind(stmt.Declaration.DeclName.Value, LocalDeclaration{})
	//
	for _, s := range stmt.Statements {
		if err := resolveStmt(s, mp, scope.Clone()); err != nil {
			return err
		}
	}
	//
	return nil
}

// =============================================================================
// Expressions
// =============================================================================

// Resolve an expression, rewriting the path of every path-bearing node.
func resolveExpr(expr ast.Expr, mp ModulePath, scope Scope) error {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// No action required
		return nil
	case *ast.ParenExpr:
		return resolveExpr(e.Inner, mp, scope)
	case *ast.NamedComponentExpr:
		return resolveExpr(e.Base, mp, scope)
	case *ast.IndexExpr:
		if err := resolveExpr(e.Base, mp, scope.Clone()); err != nil {
			return err
		}
		//
		return resolveExpr(e.Index, mp, scope)
	case *ast.UnaryExpr:
		return resolveExpr(e.Operand, mp, scope)
	case *ast.BinaryExpr:
		if err := resolveExpr(e.Left, mp, scope.Clone()); err != nil {
			return err
		}
		//
		return resolveExpr(e.Right, mp, scope)
	case *ast.CallExpr:
		if err := resolvePath(scope.Clone(), mp, &e.Path); err != nil {
			return err
		}
		//
		for _, arg := range e.Arguments {
			if err := resolveExpr(arg, mp, scope.Clone()); err != nil {
				return err
			}
		}
		//
		return nil
	case *ast.IdentifierExpr:
		return resolvePath(scope, mp, &e.Path)
	case *ast.TypeExpr:
		return resolveType(e, mp, scope)
	default:
		panic(fmt.Sprintf("unknown expression (%T)", expr))
	}
}

// Resolve a type reference.
func resolveType(typ *ast.TypeExpr, mp ModulePath, scope Scope) error {
	return resolvePath(scope, mp, &typ.Path)
}
