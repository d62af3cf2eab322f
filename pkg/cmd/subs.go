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

// subsCmd represents the subs command
var subsCmd = &cobra.Command{
	Use:   "subs [flags] expression",
	Short: "Substitute a symbol in a Poisson series.",
	Long: `Substitute a symbol in a Poisson series with a value.  Both polynomial
coefficients and trigonometric arguments are affected, where the latter are
expanded using the angle addition formulas.`,
	Run: func(cmd *cobra.Command, args []string) {
		text := expressionArg(cmd, args)
		name := GetString(cmd, "name")
		value := GetString(cmd, "value")
		//
		result, err := evalSubs(text, name, value, GetFlag(cmd, "field"))
		printResult(cmd, result, err)
	},
}

// ipowSubsCmd represents the ipow-subs command
var ipowSubsCmd = &cobra.Command{
	Use:   "ipow-subs [flags] expression",
	Short: "Substitute an integral power of a symbol in a Poisson series.",
	Long: `Substitute an integral power of a symbol in a Poisson series with a value.
For example, substituting x^2 with y in x^5 gives x*y^2.  Trigonometric
arguments are unaffected.`,
	Run: func(cmd *cobra.Command, args []string) {
		text := expressionArg(cmd, args)
		name := GetString(cmd, "name")
		value := GetString(cmd, "value")
		//
		n, err := parsePower(GetString(cmd, "power"))
		if err != nil {
			printResult(cmd, "", err)
		}
		//
		result, err := evalIpowSubs(text, name, n, value, GetFlag(cmd, "field"))
		printResult(cmd, result, err)
	},
}

func init() {
	rootCmd.AddCommand(subsCmd)
	rootCmd.AddCommand(ipowSubsCmd)
	subsCmd.Flags().String("name", "", "symbol to substitute")
	subsCmd.Flags().String("value", "0", "value to substitute")
	ipowSubsCmd.Flags().String("name", "", "symbol whose power is substituted")
	ipowSubsCmd.Flags().String("power", "1", "power of symbol to substitute")
	ipowSubsCmd.Flags().String("value", "0", "value to substitute")
	_ = subsCmd.MarkFlagRequired("name")
	_ = ipowSubsCmd.MarkFlagRequired("name")
}
