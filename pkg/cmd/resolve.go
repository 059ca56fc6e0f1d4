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
	"errors"
	"fmt"
	"os"

	"github.com/mewlang/go-mew/pkg/binfile"
	"github.com/mewlang/go-mew/pkg/mew/compiler"
	"github.com/mewlang/go-mew/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// resolveCmd runs the name-resolution pass over a parsed translation unit.
var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] unit_file",
	Short: "resolve all names within a parsed translation unit.",
	Long: `Resolve every identifier reference within a parsed translation unit (as dumped
	 by the parser stage) to its fully-qualified absolute path, writing the
	 resolved unit back out as JSON.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			srcfilename = GetString(cmd, "source")
			output      = GetString(cmd, "output")
		)
		//
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		unit, err := binfile.ReadTranslationUnit(data)
		if err != nil {
			fmt.Printf("%s: %s\n", args[0], err)
			os.Exit(1)
		}
		//
		log.Debugf("read %s (%d bytes)", args[0], len(data))
		//
		if err := compiler.Run(unit, compiler.NewResolver()); err != nil {
			reportPassError(err, srcfilename)
			os.Exit(2)
		}
		//
		data, err = binfile.WriteTranslationUnit(unit)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if output == "" {
			fmt.Println(string(data))
		} else if err := os.WriteFile(output, data, 0644); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Report a failed pass, rendering a source highlight when the original
// source file is available.
func reportPassError(err error, srcfilename string) {
	var notFound *compiler.SymbolNotFound
	//
	if errors.As(err, &notFound) && srcfilename != "" {
		srcfile, ferr := source.ReadFile(srcfilename)
		if ferr != nil {
			fmt.Println(ferr)
			fmt.Println(err)
			//
			return
		}
		//
		printSyntaxError(notFound.SyntaxError(srcfile))
		//
		return
	}
	//
	fmt.Println(err)
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("source", "", "original source file, for error reporting")
	resolveCmd.Flags().StringP("output", "o", "", "write the resolved unit to a given file")
}
