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
package source

import (
	"testing"
)

func Test_Span_01(t *testing.T) {
	span := NewSpan(2, 7)
	//
	if span.Start() != 2 || span.End() != 7 || span.Length() != 5 {
		t.Errorf("unexpected span %s", span.String())
	}
}

func Test_Span_02(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected invalid span to panic")
		}
	}()
	//
	NewSpan(3, 1)
}

func Test_Span_03(t *testing.T) {
	union := NewSpan(2, 5).Union(NewSpan(4, 9))
	//
	if union.Start() != 2 || union.End() != 9 {
		t.Errorf("unexpected union %s", union.String())
	}
}

func Test_SourceFile_01(t *testing.T) {
	file := NewFile("test.mew", []byte("fn f() {}\nfn g() {}\n"))
	line := file.FindFirstEnclosingLine(NewSpan(13, 14))
	//
	if line.Number() != 2 {
		t.Errorf("expected line 2, got %d", line.Number())
	}
	//
	if line.String() != "fn g() {}" {
		t.Errorf("unexpected line \"%s\"", line.String())
	}
	//
	if line.Start() != 10 {
		t.Errorf("expected line start 10, got %d", line.Start())
	}
}

func Test_SourceFile_02(t *testing.T) {
	file := NewFile("test.mew", []byte("let x = 1;"))
	err := NewSyntaxError(file, NewSpan(4, 5), "symbol \"x\" not found")
	line := err.FirstEnclosingLine()
	//
	if line.Number() != 1 {
		t.Errorf("expected line 1, got %d", line.Number())
	}
	//
	if err.Message() != err.Error() {
		t.Error("expected message and error to agree")
	}
	//
	if err.SourceFile().Filename() != "test.mew" {
		t.Errorf("unexpected filename %s", err.SourceFile().Filename())
	}
}
