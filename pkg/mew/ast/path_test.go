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
	"testing"

	"github.com/mewlang/go-mew/pkg/util/source"
)

func Test_Path_01(t *testing.T) {
	path := newTestPath("A", "B", "f")
	//
	if got := path.String(); got != "A::B::f" {
		t.Errorf("expected A::B::f, got %s", got)
	}
}

func Test_Path_02(t *testing.T) {
	part := NewPathPart(NewIdent("vec", source.NewSpan(0, 3)))
	part.TemplateArgs = []TemplateArg{
		{Expression: &IdentifierExpr{Path: newTestPath("f32")}},
	}
	//
	if got := part.String(); got != "vec<f32>" {
		t.Errorf("expected vec<f32>, got %s", got)
	}
}

func Test_Path_03(t *testing.T) {
	name := NewIdent("T", source.NewSpan(0, 1))
	part := NewPathPart(NewIdent("vec", source.NewSpan(0, 3)))
	part.TemplateArgs = []TemplateArg{
		{Expression: &IdentifierExpr{Path: newTestPath("f32")}, ArgName: &name},
	}
	//
	if got := part.String(); got != "vec<T = f32>" {
		t.Errorf("expected vec<T = f32>, got %s", got)
	}
}

// Cloning a path severs all sharing with the original.
func Test_Path_04(t *testing.T) {
	path := newTestPath("A", "f")
	path.Parts[1].TemplateArgs = []TemplateArg{
		{Expression: &IdentifierExpr{Path: newTestPath("i32")}},
	}
	//
	clone := path.Clone()
	clone.Parts[0].Name.Value = "B"
	clone.Parts[1].TemplateArgs[0].Expression.(*IdentifierExpr).Path.Parts[0].Name.Value = "u32"
	//
	if got := path.String(); got != "A::f<i32>" {
		t.Errorf("expected original untouched, got %s", got)
	}
	//
	if got := clone.String(); got != "B::f<u32>" {
		t.Errorf("expected clone mutated, got %s", got)
	}
}

// Cloning a module deep-copies members, so walking the clone never disturbs
// the original.
func Test_Clone_01(t *testing.T) {
	fn := &Function{DeclName: NewIdent("f", source.NewSpan(0, 1))}
	module := &Module{DeclName: NewIdent("M", source.NewSpan(0, 1)), Members: []Decl{fn}}
	//
	clone := module.Clone()
	clone.Members[0].(*Function).DeclName.Value = "g"
	//
	if fn.DeclName.Value != "f" {
		t.Errorf("expected original untouched, got %s", fn.DeclName.Value)
	}
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestPath(names ...string) Path {
	parts := make([]PathPart, len(names))
	//
	for i, n := range names {
		parts[i] = NewPathPart(NewIdent(n, source.NewSpan(0, len(n))))
	}
	//
	return NewPath(source.NewSpan(0, 1), parts...)
}
