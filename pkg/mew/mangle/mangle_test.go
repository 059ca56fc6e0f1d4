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
package mangle

import (
	"testing"

	"github.com/mewlang/go-mew/pkg/mew/ast"
	"github.com/mewlang/go-mew/pkg/util/source"
)

func Test_Mangle_01(t *testing.T) {
	checkMangle(t, parts(), "h", "T", "h_T")
}

func Test_Mangle_02(t *testing.T) {
	checkMangle(t, parts("M"), "h", "T", "M_h_T")
}

func Test_Mangle_03(t *testing.T) {
	checkMangle(t, parts("A", "B"), "f", "T", "A_B_f_T")
}

// Underscores within segments are doubled, keeping the encoding injective.
func Test_Mangle_04(t *testing.T) {
	checkMangle(t, parts("my_mod"), "f", "a_b", "my__mod_f_a__b")
}

// Distinct triples never collide, even when their joined renderings would.
func Test_Mangle_05(t *testing.T) {
	lhs := TemplateParamName(parts("a_b"), "f", "T")
	rhs := TemplateParamName(parts("a", "b"), "f", "T")
	//
	if lhs == rhs {
		t.Errorf("expected distinct manglings, both gave %s", lhs)
	}
}

func Test_InlineArgName_01(t *testing.T) {
	lhs := InlineArgName(parts("M"), parts("f"), "V")
	rhs := InlineArgName(parts(), parts("M", "f"), "V")
	//
	if lhs == rhs {
		t.Errorf("expected distinct manglings, both gave %s", lhs)
	}
}

func Test_InlineArgName_02(t *testing.T) {
	lhs := InlineArgName(parts("M"), parts("f"), "V")
	rhs := InlineArgName(parts("M"), parts("f"), "V")
	//
	if lhs != rhs {
		t.Errorf("expected deterministic mangling, got %s and %s", lhs, rhs)
	}
}

// =============================================================================
// Test Helpers
// =============================================================================

func parts(names ...string) []ast.PathPart {
	nparts := make([]ast.PathPart, len(names))
	//
	for i, n := range names {
		nparts[i] = ast.NewPathPart(ast.NewIdent(n, source.NewSpan(0, 0)))
	}
	//
	return nparts
}

func checkMangle(t *testing.T, modulePath []ast.PathPart, containing string, old string, expected string) {
	t.Helper()
	//
	if got := TemplateParamName(modulePath, containing, old); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}
