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
	"testing"
)

func Test_Scope_01(t *testing.T) {
	scope := NewScope()
	scope.Bind("x", LocalDeclaration{})
	//
	if _, ok := scope.Lookup("x"); !ok {
		t.Error("expected x to be bound")
	}
	//
	if _, ok := scope.Lookup("y"); ok {
		t.Error("expected y to be unbound")
	}
}

// Bindings made in a child frame are invisible to the parent.
func Test_Scope_02(t *testing.T) {
	parent := NewScope()
	parent.Bind("x", LocalDeclaration{})
	//
	child := parent.Clone()
	child.Bind("y", FormalFunctionParameter{})
	//
	if _, ok := child.Lookup("x"); !ok {
		t.Error("expected x to be visible in child")
	}
	//
	if _, ok := parent.Lookup("y"); ok {
		t.Error("expected y to be invisible in parent")
	}
}

// Last insert wins.
func Test_Scope_03(t *testing.T) {
	scope := NewScope()
	scope.Bind("x", LocalDeclaration{})
	scope.Bind("x", TemplateParam{"M_x"})
	//
	member, _ := scope.Lookup("x")
	//
	if tp, ok := member.(TemplateParam); !ok || tp.NewName != "M_x" {
		t.Errorf("expected shadowing binding, got %v", member)
	}
}

// Rebinding in a child does not disturb the parent's binding.
func Test_Scope_04(t *testing.T) {
	parent := NewScope()
	parent.Bind("x", BuiltIn{})
	//
	child := parent.Clone()
	child.Bind("x", LocalDeclaration{})
	//
	if member, _ := parent.Lookup("x"); member != (BuiltIn{}) {
		t.Errorf("expected parent binding intact, got %v", member)
	}
	//
	if member, _ := child.Lookup("x"); member != (LocalDeclaration{}) {
		t.Errorf("expected child binding shadowed, got %v", member)
	}
}

// Extending a module path never aliases the original.
func Test_ModulePath_01(t *testing.T) {
	var base ModulePath
	//
	a := base.Extend(newPath("A").Parts[0])
	b := base.Extend(newPath("B").Parts[0])
	//
	if a.String() != "A" || b.String() != "B" {
		t.Errorf("expected distinct extensions, got %s and %s", a.String(), b.String())
	}
	//
	ab := a.Extend(newPath("x").Parts[0])
	ac := a.Extend(newPath("y").Parts[0])
	//
	if ab.String() != "A::x" || ac.String() != "A::y" {
		t.Errorf("expected distinct extensions, got %s and %s", ab.String(), ac.String())
	}
	//
	if a.String() != "A" {
		t.Errorf("expected original path untouched, got %s", a.String())
	}
}
