// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rulegen/internal/describe"
)

var describeCmd = &cobra.Command{
	Use:   "describe <base-dir> <file>",
	Short: "Print the generated description for a document",
	Long: `Describe prints the description rulegen would generate for a document,
derived from its path relative to the base directory. Useful for checking
what a conversion will put in the description field without running it.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(describe.Describe(args[0], args[1]))
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
