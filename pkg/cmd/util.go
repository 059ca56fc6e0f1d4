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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mewlang/go-mew/pkg/util/source"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}

	return r
}

// Print a syntax error as a location header followed by the offending line
// with its highlight underneath.  When stdout is an interactive terminal, the
// highlight is rendered in red.
func printSyntaxError(err *source.SyntaxError) {
	var (
		line   = err.FirstEnclosingLine()
		column = err.Span().Start() - line.Start()
		// Highlight cannot extend past the end of the line
		width = min(err.Span().Length(), line.Length()-column)
	)
	//
	fmt.Printf("%s:%d:%d-%d %s\n\n", err.SourceFile().Filename(),
		line.Number(), 1+column, 1+column+width, err.Message())
	fmt.Println(line.String())
	fmt.Println(strings.Repeat(" ", column) + highlight(width))
}

// Construct the highlight marker for a span of the given width, colouring it
// when stdout is an interactive terminal.
func highlight(width int) string {
	marker := strings.Repeat("^", width)
	//
	if term.IsTerminal(int(os.Stdout.Fd())) {
		marker = "\033[31m" + marker + "\033[0m"
	}
	//
	return marker
}
