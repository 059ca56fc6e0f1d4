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

// Stmt is implemented by all statement forms of the source language.
type Stmt interface {
	// CloneStmt returns a deep copy of this statement.
	CloneStmt() Stmt
	//
	stmtNode()
}

// CloneStmt returns a deep copy of a statement, where nil maps to nil.
func CloneStmt(stmt Stmt) Stmt {
	if stmt == nil {
		return nil
	}
	//
	return stmt.CloneStmt()
}

// CloneStmts returns a deep copy of a sequence of statements.
func CloneStmts(stmts []Stmt) []Stmt {
	if stmts == nil {
		return nil
	}
	//
	nstmts := make([]Stmt, len(stmts))
	//
	for i, s := range stmts {
		nstmts[i] = CloneStmt(s)
	}
	//
	return nstmts
}

// VoidStmt is an empty statement (e.g. a stray semicolon).
type VoidStmt struct {
	Span source.Span
}

// CompoundStmt is a braced block of statements.  A block can open with its own
// use directives, whose bindings are visible to the block only.
type CompoundStmt struct {
	// Directives holds the block-local use directives.
	Directives []*Use
	Statements []Stmt
	Span       source.Span
}

// Clone returns a deep copy of this block.
func (p *CompoundStmt) Clone() CompoundStmt {
	var directives []*Use
	//
	if p.Directives != nil {
		directives = make([]*Use, len(p.Directives))
		//
		for i, d := range p.Directives {
			directives[i] = d.CloneUse()
		}
	}
	//
	return CompoundStmt{directives, CloneStmts(p.Statements), p.Span}
}

// AssignStmt assigns the value of Rhs to the place identified by Lhs.  The
// operator records compound forms such as "+=".
type AssignStmt struct {
	Lhs      Expr
	Operator string
	Rhs      Expr
	Span     source.Span
}

// IncrementStmt is the "x++" statement form.
type IncrementStmt struct {
	Target Expr
	Span   source.Span
}

// DecrementStmt is the "x--" statement form.
type DecrementStmt struct {
	Target Expr
	Span   source.Span
}

// ElseIf is a single "else if" clause of an if statement.
type ElseIf struct {
	Condition Expr
	Body      CompoundStmt
}

// IfStmt is a conditional with optional else-if clauses and else block.
type IfStmt struct {
	Condition Expr
	Body      CompoundStmt
	ElseIfs   []ElseIf
	Else      *CompoundStmt
	Span      source.Span
}

// CaseSelector selects the values matched by a switch clause.  A nil
// expression denotes the default selector.
type CaseSelector struct {
	Expression Expr
	Span       source.Span
}

// SwitchClause is a single clause of a switch statement.
type SwitchClause struct {
	Selectors []CaseSelector
	Body      CompoundStmt
}

// SwitchStmt selects between clauses based on a selector expression.
type SwitchStmt struct {
	Selector Expr
	Clauses  []SwitchClause
	Span     source.Span
}

// ContinuingStmt is the trailing block of a loop, executed between
// iterations.  Its body and break-if expression share the scope of the loop
// body, including local declarations made there.
type ContinuingStmt struct {
	Body    CompoundStmt
	BreakIf Expr
	Span    source.Span
}

// LoopStmt is an unconditional loop with an optional continuing block.
type LoopStmt struct {
	Body       CompoundStmt
	Continuing *ContinuingStmt
	Span       source.Span
}

// ForStmt is a counted loop.  An initializer declaration binds into the loop
// header scope, covering the condition, update and body.
type ForStmt struct {
	// Initializer statement, or nil if there is none.
	Initializer Stmt
	// Condition expression, or nil if there is none.
	Condition Expr
	// Update statement, or nil if there is none.
	Update Stmt
	Body   CompoundStmt
	Span   source.Span
}

// WhileStmt is a conditional loop.
type WhileStmt struct {
	Condition Expr
	Body      CompoundStmt
	Span      source.Span
}

// BreakStmt exits the enclosing loop or switch.
type BreakStmt struct {
	Span source.Span
}

// ContinueStmt continues the enclosing loop.
type ContinueStmt struct {
	Span source.Span
}

// ReturnStmt returns from the enclosing function, optionally with a value.
type ReturnStmt struct {
	// Value being returned, or nil if there is none.
	Value Expr
	Span  source.Span
}

// DiscardStmt terminates the current fragment invocation.
type DiscardStmt struct {
	Span source.Span
}

// CallStmt invokes a function for its effect, discarding any result.
type CallStmt struct {
	Call CallExpr
	Span source.Span
}

// ConstAssertStmt is a statement-level constant assertion.
type ConstAssertStmt struct {
	Assertion ConstAssert
	Span      source.Span
}

// DeclStmt declares a local binding.  A peculiarity of the source language is
// that the declaration carries its trailing statements: every statement of
// the enclosing block following the declaration lives inside it, in the same
// scope frame.
type DeclStmt struct {
	Declaration Declaration
	Statements  []Stmt
	Span        source.Span
}

// CloneStmt implementation for Stmt interface.
func (p *VoidStmt) CloneStmt() Stmt {
	return &VoidStmt{p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *CompoundStmt) CloneStmt() Stmt {
	stmt := p.Clone()
	return &stmt
}

// CloneStmt implementation for Stmt interface.
func (p *AssignStmt) CloneStmt() Stmt {
	return &AssignStmt{CloneExpr(p.Lhs), p.Operator, CloneExpr(p.Rhs), p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *IncrementStmt) CloneStmt() Stmt {
	return &IncrementStmt{CloneExpr(p.Target), p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *DecrementStmt) CloneStmt() Stmt {
	return &DecrementStmt{CloneExpr(p.Target), p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *IfStmt) CloneStmt() Stmt {
	var elseifs []ElseIf
	//
	if p.ElseIfs != nil {
		elseifs = make([]ElseIf, len(p.ElseIfs))
		//
		for i := range p.ElseIfs {
			elseifs[i] = ElseIf{CloneExpr(p.ElseIfs[i].Condition), p.ElseIfs[i].Body.Clone()}
		}
	}
	//
	var elseBlock *CompoundStmt
	//
	if p.Else != nil {
		block := p.Else.Clone()
		elseBlock = &block
	}
	//
	return &IfStmt{CloneExpr(p.Condition), p.Body.Clone(), elseifs, elseBlock, p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *SwitchStmt) CloneStmt() Stmt {
	var clauses []SwitchClause
	//
	if p.Clauses != nil {
		clauses = make([]SwitchClause, len(p.Clauses))
		//
		for i := range p.Clauses {
			selectors := make([]CaseSelector, len(p.Clauses[i].Selectors))
			//
			for j := range p.Clauses[i].Selectors {
				selectors[j] = CaseSelector{
					CloneExpr(p.Clauses[i].Selectors[j].Expression),
					p.Clauses[i].Selectors[j].Span,
				}
			}
			//
			clauses[i] = SwitchClause{selectors, p.Clauses[i].Body.Clone()}
		}
	}
	//
	return &SwitchStmt{CloneExpr(p.Selector), clauses, p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *LoopStmt) CloneStmt() Stmt {
	var continuing *ContinuingStmt
	//
	if p.Continuing != nil {
		continuing = &ContinuingStmt{
			p.Continuing.Body.Clone(),
			CloneExpr(p.Continuing.BreakIf),
			p.Continuing.Span,
		}
	}
	//
	return &LoopStmt{p.Body.Clone(), continuing, p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *ForStmt) CloneStmt() Stmt {
	return &ForStmt{
		CloneStmt(p.Initializer),
		CloneExpr(p.Condition),
		CloneStmt(p.Update),
		p.Body.Clone(),
		p.Span,
	}
}

// CloneStmt implementation for Stmt interface.
func (p *WhileStmt) CloneStmt() Stmt {
	return &WhileStmt{CloneExpr(p.Condition), p.Body.Clone(), p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *BreakStmt) CloneStmt() Stmt {
	return &BreakStmt{p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *ContinueStmt) CloneStmt() Stmt {
	return &ContinueStmt{p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *ReturnStmt) CloneStmt() Stmt {
	return &ReturnStmt{CloneExpr(p.Value), p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *DiscardStmt) CloneStmt() Stmt {
	return &DiscardStmt{p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *CallStmt) CloneStmt() Stmt {
	call := p.Call.CloneExpr().(*CallExpr)
	return &CallStmt{*call, p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *ConstAssertStmt) CloneStmt() Stmt {
	assertion := p.Assertion.Clone()
	return &ConstAssertStmt{assertion, p.Span}
}

// CloneStmt implementation for Stmt interface.
func (p *DeclStmt) CloneStmt() Stmt {
	return &DeclStmt{p.Declaration.Clone(), CloneStmts(p.Statements), p.Span}
}

func (p *VoidStmt) stmtNode()        {}
func (p *CompoundStmt) stmtNode()    {}
func (p *AssignStmt) stmtNode()      {}
func (p *IncrementStmt) stmtNode()   {}
func (p *DecrementStmt) stmtNode()   {}
func (p *IfStmt) stmtNode()          {}
func (p *SwitchStmt) stmtNode()      {}
func (p *LoopStmt) stmtNode()        {}
func (p *ForStmt) stmtNode()         {}
func (p *WhileStmt) stmtNode()       {}
func (p *BreakStmt) stmtNode()       {}
func (p *ContinueStmt) stmtNode()    {}
func (p *ReturnStmt) stmtNode()      {}
func (p *DiscardStmt) stmtNode()     {}
func (p *CallStmt) stmtNode()        {}
func (p *ConstAssertStmt) stmtNode() {}
func (p *DeclStmt) stmtNode()        {}
