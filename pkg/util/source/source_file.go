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
	"os"
	"sort"
)

// File represents a given source file (typically stored on disk).  Line
// boundaries are indexed up front, so that mapping a span back to its line is
// a binary search rather than a scan of the whole file.
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
	// Offsets of the first character of each line, in ascending order.  The
	// first entry is always zero.
	lineOffsets []int
}

// NewFile constructs a new source file from a given byte array.
func NewFile(filename string, bytes []byte) *File {
	// Convert bytes into runes for easier slicing
	contents := []rune(string(bytes))
	offsets := []int{0}
	//
	for i, c := range contents {
		if c == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	//
	return &File{filename, contents, offsets}
}

// ReadFile reads a source file from disk, or produces an error.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return NewFile(filename, bytes), nil
}

// Filename returns the filename associated with this source file.
func (p *File) Filename() string {
	return p.filename
}

// Contents returns the contents of this source file.
func (p *File) Contents() []rune {
	return p.contents
}

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// String returns the text of this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original string.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span, by binary search over the line-offset index.
// A position beyond the bounds of the file maps to the last physical line,
// and the returned line is not guaranteed to enclose the entire span, as
// these can cross multiple lines.
func (p *File) FindFirstEnclosingLine(span Span) Line {
	// Index of first line starting strictly after the span
	n := sort.SearchInts(p.lineOffsets, span.start+1)
	// Enclosing line runs from its own offset to the next (or EOF)
	begin := p.lineOffsets[n-1]
	end := len(p.contents)
	//
	if n < len(p.lineOffsets) {
		// Exclude the newline terminating the line
		end = p.lineOffsets[n] - 1
	}
	//
	return Line{p.contents, Span{begin, end}, n}
}
