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

// sinCmd represents the sin command
var sinCmd = &cobra.Command{
	Use:   "sin [flags] expression",
	Short: "Compute the sine of a Poisson series.",
	Long: `Compute the sine of a Poisson series.  This succeeds when the series is an
integral linear combination of symbols (e.g. "(- (* 2 x) y)"), or a constant
whose sine is known.`,
	Run: func(cmd *cobra.Command, args []string) {
		text, err := evalTrig(expressionArg(cmd, args), false, GetFlag(cmd, "field"))
		printResult(cmd, text, err)
	},
}

// cosCmd represents the cos command
var cosCmd = &cobra.Command{
	Use:   "cos [flags] expression",
	Short: "Compute the cosine of a Poisson series.",
	Long: `Compute the cosine of a Poisson series.  This succeeds when the series is an
integral linear combination of symbols (e.g. "(- (* 2 x) y)"), or a constant
whose cosine is known.`,
	Run: func(cmd *cobra.Command, args []string) {
		text, err := evalTrig(expressionArg(cmd, args), true, GetFlag(cmd, "field"))
		printResult(cmd, text, err)
	},
}

func init() {
	rootCmd.AddCommand(sinCmd)
	rootCmd.AddCommand(cosCmd)
}
