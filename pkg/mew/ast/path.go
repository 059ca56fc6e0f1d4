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
	"strings"

	"github.com/mewlang/go-mew/pkg/util/source"
)

// Ident is a simple name along with the span it occupies in the original
// source file.
type Ident struct {
	Value string
	Span  source.Span
}

// NewIdent constructs an identifier with a given name and span.
func NewIdent(value string, span source.Span) Ident {
	return Ident{value, span}
}

func (p Ident) String() string {
	return p.Value
}

// PathPart is a single segment of a path.  A segment names a module, a
// declaration or a builtin and can, additionally, carry explicit template
// arguments (e.g. "vec<f32>") along with an inline template-argument block
// (a miniature module body providing arguments by definition).
type PathPart struct {
	Name Ident
	// TemplateArgs are the explicit template arguments attached to this
	// segment, or nil if there are none.
	TemplateArgs []TemplateArg
	// InlineTemplateArgs is the inline template-argument block attached to
	// this segment, or nil if there is none.
	InlineTemplateArgs *InlineTemplateArgs
}

// NewPathPart constructs a path part with a given name and no template
// arguments.
func NewPathPart(name Ident) PathPart {
	return PathPart{name, nil, nil}
}

// Clone returns a deep copy of this path part.
func (p *PathPart) Clone() PathPart {
	return PathPart{p.Name, CloneTemplateArgs(p.TemplateArgs), p.InlineTemplateArgs.Clone()}
}

func (p *PathPart) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Name.Value)
	//
	if p.TemplateArgs != nil {
		builder.WriteString("<")
		//
		for i, arg := range p.TemplateArgs {
			if i != 0 {
				builder.WriteString(", ")
			}
			//
			builder.WriteString(arg.String())
		}
		//
		builder.WriteString(">")
	}
	//
	return builder.String()
}

// Path is a non-empty ordered sequence of path parts, together with the span
// the whole path occupies in the original source file.  Before resolution a
// path is relative to the scope in which it occurs; afterwards it is absolute
// from the translation-unit root (or names a local, parameter, builtin or
// template parameter).
type Path struct {
	Parts []PathPart
	Span  source.Span
}

// NewPath constructs a path from the given parts.
func NewPath(span source.Span, parts ...PathPart) Path {
	return Path{parts, span}
}

// IsEmpty determines whether this path has any parts at all.  Empty paths
// arise only as the base of certain use directives.
func (p *Path) IsEmpty() bool {
	return len(p.Parts) == 0
}

// Depth returns the number of segments in this path.
func (p *Path) Depth() uint {
	return uint(len(p.Parts))
}

// First returns the first (i.e. outermost) segment of this path.
func (p *Path) First() *PathPart {
	return &p.Parts[0]
}

// Push appends a new innermost segment to this path.
func (p *Path) Push(part PathPart) {
	p.Parts = append(p.Parts, part)
}

// Clone returns a deep copy of this path.
func (p *Path) Clone() Path {
	return Path{ClonePathParts(p.Parts), p.Span}
}

func (p *Path) String() string {
	return FormatPathParts(p.Parts)
}

// ClonePathParts returns a deep copy of a sequence of path parts.
func ClonePathParts(parts []PathPart) []PathPart {
	if parts == nil {
		return nil
	}
	//
	nparts := make([]PathPart, len(parts))
	//
	for i := range parts {
		nparts[i] = parts[i].Clone()
	}
	//
	return nparts
}

// FormatPathParts returns the usual "a::b::c" rendering of a part sequence.
func FormatPathParts(parts []PathPart) string {
	var builder strings.Builder
	//
	for i := range parts {
		if i != 0 {
			builder.WriteString("::")
		}
		//
		builder.WriteString(parts[i].String())
	}
	//
	return builder.String()
}

// TemplateArg is a single template argument, such as "f32" in "vec<f32>".  An
// argument can be named (e.g. "vec<T = f32>"), in which case ArgName is set.
type TemplateArg struct {
	Expression Expr
	// ArgName identifies the template parameter being bound, or is nil for a
	// positional argument.
	ArgName *Ident
	Span    source.Span
}

// Clone returns a deep copy of this template argument.
func (p *TemplateArg) Clone() TemplateArg {
	var name *Ident
	//
	if p.ArgName != nil {
		n := *p.ArgName
		name = &n
	}
	//
	return TemplateArg{CloneExpr(p.Expression), name, p.Span}
}

func (p *TemplateArg) String() string {
	if p.ArgName != nil {
		return p.ArgName.Value + " = " + ExprString(p.Expression)
	}
	//
	return ExprString(p.Expression)
}

// CloneTemplateArgs returns a deep copy of a sequence of template arguments.
func CloneTemplateArgs(args []TemplateArg) []TemplateArg {
	if args == nil {
		return nil
	}
	//
	nargs := make([]TemplateArg, len(args))
	//
	for i := range args {
		nargs[i] = args[i].Clone()
	}
	//
	return nargs
}

// InlineTemplateArgs is a miniature module body attached to a path segment.
// Its members provide template arguments by definition, rather than by
// reference, and are expanded by the resolver into a synthetic submodule.
type InlineTemplateArgs struct {
	Directives []Directive
	Members    []Decl
	Span       source.Span
}

// Clone returns a deep copy of this block, or nil if the receiver is nil.
func (p *InlineTemplateArgs) Clone() *InlineTemplateArgs {
	if p == nil {
		return nil
	}
	//
	return &InlineTemplateArgs{CloneDirectives(p.Directives), CloneDecls(p.Members), p.Span}
}
