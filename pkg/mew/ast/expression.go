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
	"fmt"
	"strings"

	"github.com/mewlang/go-mew/pkg/util/source"
)

// Expr is implemented by all expression forms of the source language.  The
// resolver mutates expressions in place, hence all forms are pointer types.
type Expr interface {
	// CloneExpr returns a deep copy of this expression.
	CloneExpr() Expr
	//
	exprNode()
}

// CloneExpr returns a deep copy of an expression, where nil maps to nil.
func CloneExpr(expr Expr) Expr {
	if expr == nil {
		return nil
	}
	//
	return expr.CloneExpr()
}

// CloneExprs returns a deep copy of a sequence of expressions.
func CloneExprs(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	//
	nexprs := make([]Expr, len(exprs))
	//
	for i, e := range exprs {
		nexprs[i] = CloneExpr(e)
	}
	//
	return nexprs
}

// ExprString returns a human-readable rendering of an expression, primarily
// for diagnostics and tests.
func ExprString(expr Expr) string {
	switch e := expr.(type) {
	case nil:
		return "?"
	case *LiteralExpr:
		return e.Value
	case *ParenExpr:
		return fmt.Sprintf("(%s)", ExprString(e.Inner))
	case *NamedComponentExpr:
		return fmt.Sprintf("%s.%s", ExprString(e.Base), e.Component.Value)
	case *IndexExpr:
		return fmt.Sprintf("%s[%s]", ExprString(e.Base), ExprString(e.Index))
	case *UnaryExpr:
		return fmt.Sprintf("%s%s", e.Operator, ExprString(e.Operand))
	case *BinaryExpr:
		return fmt.Sprintf("%s %s %s", ExprString(e.Left), e.Operator, ExprString(e.Right))
	case *CallExpr:
		args := make([]string, len(e.Arguments))
		for i, a := range e.Arguments {
			args[i] = ExprString(a)
		}
		//
		return fmt.Sprintf("%s(%s)", e.Path.String(), strings.Join(args, ", "))
	case *IdentifierExpr:
		return e.Path.String()
	case *TypeExpr:
		return e.Path.String()
	default:
		panic(fmt.Sprintf("unknown expression (%T)", expr))
	}
}

// LiteralExpr is a literal token (boolean, integer or floating point),
// retained verbatim as it appeared in the source.
type LiteralExpr struct {
	Value string
	Span  source.Span
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	Inner Expr
	Span  source.Span
}

// NamedComponentExpr accesses a named component of a composite value, such as
// "v.xyz".
type NamedComponentExpr struct {
	Base      Expr
	Component Ident
	Span      source.Span
}

// IndexExpr accesses an element of an indexable value, such as "a[i]".
type IndexExpr struct {
	Base  Expr
	Index Expr
	Span  source.Span
}

// UnaryExpr applies a prefix operator to an operand.
type UnaryExpr struct {
	Operator string
	Operand  Expr
	Span     source.Span
}

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	Operator string
	Left     Expr
	Right    Expr
	Span     source.Span
}

// CallExpr invokes a function identified by a path.
type CallExpr struct {
	Path      Path
	Arguments []Expr
	Span      source.Span
}

// IdentifierExpr references a value identified by a path.
type IdentifierExpr struct {
	Path Path
	Span source.Span
}

// TypeExpr references a type identified by a path.  Types also occur outside
// expressions (e.g. as the declared type of a variable).
type TypeExpr struct {
	Path Path
	Span source.Span
}

// CloneExpr implementation for Expr interface.
func (p *LiteralExpr) CloneExpr() Expr {
	return &LiteralExpr{p.Value, p.Span}
}

// CloneExpr implementation for Expr interface.
func (p *ParenExpr) CloneExpr() Expr {
	return &ParenExpr{CloneExpr(p.Inner), p.Span}
}

// CloneExpr implementation for Expr interface.
func (p *NamedComponentExpr) CloneExpr() Expr {
	return &NamedComponentExpr{CloneExpr(p.Base), p.Component, p.Span}
}

// CloneExpr implementation for Expr interface.
func (p *IndexExpr) CloneExpr() Expr {
	return &IndexExpr{CloneExpr(p.Base), CloneExpr(p.Index), p.Span}
}

// CloneExpr implementation for Expr interface.
func (p *UnaryExpr) CloneExpr() Expr {
	return &UnaryExpr{p.Operator, CloneExpr(p.Operand), p.Span}
}

// CloneExpr implementation for Expr interface.
func (p *BinaryExpr) CloneExpr() Expr {
	return &BinaryExpr{p.Operator, CloneExpr(p.Left), CloneExpr(p.Right), p.Span}
}

// CloneExpr implementation for Expr interface.
func (p *CallExpr) CloneExpr() Expr {
	return &CallExpr{p.Path.Clone(), CloneExprs(p.Arguments), p.Span}
}

// CloneExpr implementation for Expr interface.
func (p *IdentifierExpr) CloneExpr() Expr {
	return &IdentifierExpr{p.Path.Clone(), p.Span}
}

// CloneExpr implementation for Expr interface.
func (p *TypeExpr) CloneExpr() Expr {
	return &TypeExpr{p.Path.Clone(), p.Span}
}

// Clone returns a deep copy of this type expression, where nil maps to nil.
func (p *TypeExpr) Clone() *TypeExpr {
	if p == nil {
		return nil
	}
	//
	return &TypeExpr{p.Path.Clone(), p.Span}
}

func (p *LiteralExpr) exprNode()        {}
func (p *ParenExpr) exprNode()          {}
func (p *NamedComponentExpr) exprNode() {}
func (p *IndexExpr) exprNode()          {}
func (p *UnaryExpr) exprNode()          {}
func (p *BinaryExpr) exprNode()         {}
func (p *CallExpr) exprNode()           {}
func (p *IdentifierExpr) exprNode()     {}
func (p *TypeExpr) exprNode()           {}
