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
package builtins

import (
	"testing"
)

func Test_Builtins_01(t *testing.T) {
	catalog := Default()
	//
	if len(catalog.PrimitiveTypes) == 0 || len(catalog.TypeAliases) == 0 ||
		len(catalog.PredeclaredValues) == 0 || len(catalog.Functions) == 0 {
		t.Error("expected all four groups to be populated")
	}
}

func Test_Builtins_02(t *testing.T) {
	catalog := Default()
	//
	for _, name := range []string{"f32", "vec4f", "read_write", "clamp"} {
		if !catalog.Contains(name) {
			t.Errorf("expected %s to be predeclared", name)
		}
	}
	//
	if catalog.Contains("definitely_not_builtin") {
		t.Error("unexpected builtin")
	}
}

func Test_Builtins_03(t *testing.T) {
	catalog := Default()
	names := catalog.Names()
	//
	expected := len(catalog.PrimitiveTypes) + len(catalog.TypeAliases) +
		len(catalog.PredeclaredValues) + len(catalog.Functions)
	//
	if len(names) != expected {
		t.Errorf("expected %d names, got %d", expected, len(names))
	}
	// Names must be pairwise distinct across the catalog
	seen := make(map[string]bool)
	//
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate builtin %s", n)
		}
		//
		seen[n] = true
	}
}
