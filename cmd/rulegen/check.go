// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rulegen/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate the metadata of converted rule documents",
	Long: `Check walks a converted tree and verifies every rule document: the
frontmatter must parse, carry a non-empty description, and keep
alwaysApply false. Invalid documents are listed and the command exits
non-zero when any are found.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	targetExt, _ := cmd.Flags().GetString("target-ext")

	issues, err := check.Dir(args[0], targetExt)
	if err != nil {
		return err
	}

	for _, issue := range issues {
		fmt.Fprintf(os.Stdout, "invalid: %s (%s)\n", issue.Path, issue.Problem)
	}
	if len(issues) > 0 {
		return fmt.Errorf("%d invalid document(s)", len(issues))
	}

	fmt.Println("all documents valid")
	return nil
}

func init() {
	checkCmd.Flags().String("target-ext", ".mdc", "extension of converted documents")

	rootCmd.AddCommand(checkCmd)
}
