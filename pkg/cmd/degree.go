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

	"github.com/consensys/go-poisson/pkg/util/termio"
	"github.com/spf13/cobra"
)

// degreeCmd represents the degree command
var degreeCmd = &cobra.Command{
	Use:   "degree [flags] expression",
	Short: "Report the degree of a Poisson series.",
	Long: `Report the degree and low degree of a Poisson series, as determined by its
polynomial coefficients.  The degree can be restricted to a subset of symbols
using --symbols.`,
	Run: func(cmd *cobra.Command, args []string) {
		text, err := evalDegree(expressionArg(cmd, args), GetStringArray(cmd, "symbols"), GetFlag(cmd, "field"))
		printResult(cmd, text, err)
	},
}

// hdegreeCmd represents the hdegree command
var hdegreeCmd = &cobra.Command{
	Use:   "hdegree [flags] expression",
	Short: "Report the harmonic degree of a Poisson series.",
	Long: `Report the harmonic degree and low harmonic degree of a Poisson series, as
determined by the sum of the absolute values of its trigonometric multipliers.
The degree can be restricted to a subset of symbols using --symbols.`,
	Run: func(cmd *cobra.Command, args []string) {
		text, err := evalHDegree(expressionArg(cmd, args), GetStringArray(cmd, "symbols"), GetFlag(cmd, "field"))
		printResult(cmd, text, err)
	},
}

// termsCmd represents the terms command
var termsCmd = &cobra.Command{
	Use:   "terms [flags] expression",
	Short: "Tabulate the terms of a Poisson series.",
	Run: func(cmd *cobra.Command, args []string) {
		table, err := evalTerms(expressionArg(cmd, args), outputWidth(cmd))
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		//
		table.AnsiEscapes(termio.IsTerminal())
		table.Print(os.Stdout)
		fmt.Printf("%d term(s)\n", table.Height()-1)
	},
}

func init() {
	rootCmd.AddCommand(degreeCmd)
	rootCmd.AddCommand(hdegreeCmd)
	rootCmd.AddCommand(termsCmd)
	degreeCmd.Flags().StringArray("symbols", []string{}, "restrict degree to given symbols")
	hdegreeCmd.Flags().StringArray("symbols", []string{}, "restrict harmonic degree to given symbols")
}
