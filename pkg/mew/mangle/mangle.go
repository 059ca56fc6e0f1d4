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

// Package mangle implements the deterministic renaming schemes shared by the
// compiler passes.  Both schemes double any underscore occurring within a
// segment before joining segments with single underscores; since no escaped
// segment contains an isolated underscore, the segment sequence can be
// recovered from the joined string and the encoding is injective.
package mangle

import (
	"strconv"
	"strings"

	"github.com/mewlang/go-mew/pkg/mew/ast"
)

// TemplateParamName mangles a template parameter declared inside the entity
// containing, located at modulePath.  The result is unique over the
// (modulePath, containing, old) triple.
func TemplateParamName(modulePath []ast.PathPart, containing string, old string) string {
	var builder strings.Builder
	//
	for _, part := range modulePath {
		builder.WriteString(escape(part.Name.Value))
		builder.WriteString("_")
	}
	//
	builder.WriteString(escape(containing))
	builder.WriteString("_")
	builder.WriteString(escape(old))
	//
	return builder.String()
}

// InlineArgName mangles the name of an inline template-argument member
// declared on the path segment sequence path, within the module at
// modulePath.  The trailing length marker disambiguates where modulePath
// ends and path begins, keeping the encoding unique over the triple.
func InlineArgName(modulePath []ast.PathPart, path []ast.PathPart, name string) string {
	var builder strings.Builder
	//
	builder.WriteString("_")
	//
	for _, part := range modulePath {
		builder.WriteString(escape(part.Name.Value))
		builder.WriteString("_")
	}
	//
	for _, part := range path {
		builder.WriteString(escape(part.Name.Value))
		builder.WriteString("_")
	}
	//
	builder.WriteString(strconv.Itoa(len(path)))
	builder.WriteString("_")
	builder.WriteString(escape(name))
	//
	return builder.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "_", "__")
}
