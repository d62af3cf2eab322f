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
	"github.com/spf13/cobra"
)

// integrateCmd represents the integrate command
var integrateCmd = &cobra.Command{
	Use:   "integrate [flags] expression",
	Short: "Integrate a Poisson series with respect to a symbol.",
	Long: `Integrate a Poisson series with respect to a symbol.  Terms whose trigonometric
argument involves the symbol and whose coefficient depends upon it are
integrated by parts, which requires the coefficient to be a polynomial of
non-negative integral degree in that symbol.`,
	Run: func(cmd *cobra.Command, args []string) {
		text, err := evalIntegrate(expressionArg(cmd, args), GetString(cmd, "name"), GetFlag(cmd, "field"))
		printResult(cmd, text, err)
	},
}

// partialCmd represents the partial command
var partialCmd = &cobra.Command{
	Use:   "partial [flags] expression",
	Short: "Differentiate a Poisson series with respect to a symbol.",
	Run: func(cmd *cobra.Command, args []string) {
		text, err := evalPartial(expressionArg(cmd, args), GetString(cmd, "name"), GetFlag(cmd, "field"))
		printResult(cmd, text, err)
	},
}

func init() {
	rootCmd.AddCommand(integrateCmd)
	rootCmd.AddCommand(partialCmd)
	integrateCmd.Flags().String("name", "", "symbol of integration")
	partialCmd.Flags().String("name", "", "symbol of differentiation")
	_ = integrateCmd.MarkFlagRequired("name")
	_ = partialCmd.MarkFlagRequired("name")
}
