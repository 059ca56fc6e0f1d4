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

// Package builtins exposes the read-only catalog of names predeclared by the
// source language: primitive types, type aliases, predeclared values and
// builtin functions.  The catalog is compiled in as a YAML table, so that it
// can be regenerated from the language specification without touching code.
package builtins

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYaml []byte

// Catalog is the set of names predeclared by the language, partitioned into
// the four groups the compiler distinguishes.
type Catalog struct {
	// PrimitiveTypes holds the names of primitive types (e.g. "f32").
	PrimitiveTypes []string `yaml:"primitive-types"`
	// TypeAliases holds the names of predeclared type aliases (e.g. "vec4f").
	TypeAliases []string `yaml:"type-aliases"`
	// PredeclaredValues holds the names of predeclared values (e.g. "read").
	PredeclaredValues []string `yaml:"predeclared-values"`
	// Functions holds the names of builtin functions (e.g. "clamp").
	Functions []string `yaml:"functions"`
}

var (
	defaultCatalog     Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the builtin catalog of the language.  The catalog is
// parsed from its embedded table exactly once.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		if err := yaml.Unmarshal(catalogYaml, &defaultCatalog); err != nil {
			// Unreachable for a well-formed embedded table.
			panic(err)
		}
	})
	//
	return &defaultCatalog
}

// Names enumerates every name in the catalog, across all four groups.
func (p *Catalog) Names() []string {
	names := make([]string, 0, len(p.PrimitiveTypes)+len(p.TypeAliases)+len(p.PredeclaredValues)+len(p.Functions))
	names = append(names, p.PrimitiveTypes...)
	names = append(names, p.TypeAliases...)
	names = append(names, p.PredeclaredValues...)
	names = append(names, p.Functions...)
	//
	return names
}

// Contains checks whether a given name is predeclared by the language.
func (p *Catalog) Contains(name string) bool {
	for _, n := range p.Names() {
		if n == name {
			return true
		}
	}
	//
	return false
}
