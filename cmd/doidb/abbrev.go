// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAbbrevCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "abbrev TITLE...",
		Short: "Look up the ISO abbreviation of a journal title",
		Long: `Abbrev looks up a journal in the Web of Science abbreviation lists and
prints its abbreviated title, e.g.

  doidb abbrev journal of chemical physics
  J CHEM PHYS`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abbrev, err := a.newFetcher().Abbreviation(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), abbrev)
			return nil
		},
	}
}
