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

// Directive is implemented by the directive forms which can appear at the
// head of a translation unit or module: use imports and extend aggregates.
// Compound blocks only admit use directives and hold them directly.
type Directive interface {
	// CloneDirective returns a deep copy of this directive.
	CloneDirective() Directive
	//
	directiveNode()
}

// CloneDirectives returns a deep copy of a sequence of directives.
func CloneDirectives(directives []Directive) []Directive {
	if directives == nil {
		return nil
	}
	//
	ndirectives := make([]Directive, len(directives))
	//
	for i, d := range directives {
		ndirectives[i] = d.CloneDirective()
	}
	//
	return ndirectives
}

// Use is a lexically scoped import.  It binds one or more names to
// fully-qualified paths: the base path is shared, whilst the content selects
// what is imported underneath it (a single item, or a nested collection).
type Use struct {
	// Path is the shared base path.  It may be empty, in which case the
	// content alone determines what is imported.
	Path    Path
	Content UseContent
	Span    source.Span
}

// CloneUse returns a deep copy of this use directive.
func (p *Use) CloneUse() *Use {
	return &Use{p.Path.Clone(), p.Content.CloneContent(), p.Span}
}

// CloneDirective implementation for Directive interface.
func (p *Use) CloneDirective() Directive {
	return p.CloneUse()
}

// UseContent is the payload of a use directive: either a single item, or a
// collection of nested use subtrees.
type UseContent interface {
	// CloneContent returns a deep copy of this content.
	CloneContent() UseContent
	//
	useContentNode()
}

// UseItem imports a single name, optionally renaming it and optionally
// attaching template arguments (explicit or inline).
type UseItem struct {
	Name Ident
	// Rename for the imported name, or nil to import it as is.
	Rename *Ident
	// TemplateArgs attached to the import, or nil if there are none.
	TemplateArgs []TemplateArg
	// InlineTemplateArgs attached to the import, or nil if there is none.
	InlineTemplateArgs *InlineTemplateArgs
	Span               source.Span
}

// CloneContent implementation for UseContent interface.
func (p *UseItem) CloneContent() UseContent {
	var rename *Ident
	//
	if p.Rename != nil {
		r := *p.Rename
		rename = &r
	}
	//
	return &UseItem{p.Name, rename, CloneTemplateArgs(p.TemplateArgs), p.InlineTemplateArgs.Clone(), p.Span}
}

// UseCollection imports several subtrees sharing the enclosing base path,
// such as "use A::{f, g::h};".
type UseCollection struct {
	Uses []*Use
	Span source.Span
}

// CloneContent implementation for UseContent interface.
func (p *UseCollection) CloneContent() UseContent {
	uses := make([]*Use, len(p.Uses))
	//
	for i, u := range p.Uses {
		uses[i] = u.CloneUse()
	}
	//
	return &UseCollection{uses, p.Span}
}

// Extend requests that all public members of the named module be re-exported
// from the enclosing container.  The resolver desugars an extend into one
// alias member per member of the extended module.
type Extend struct {
	Path Path
	Span source.Span
}

// CloneDirective implementation for Directive interface.
func (p *Extend) CloneDirective() Directive {
	return &Extend{p.Path.Clone(), p.Span}
}

func (p *Use) directiveNode()    {}
func (p *Extend) directiveNode() {}

func (p *UseItem) useContentNode()       {}
func (p *UseCollection) useContentNode() {}
