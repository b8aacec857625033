// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doidb/internal/store"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE DOI",
		Short: "Print the cached citation for a DOI",
		Long: `Get prints the BibTeX citation cached for DOI in FILE. It fails if the
DOI is not cached; use "set" to fetch it first.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDOI(args[1])
			if err != nil {
				return err
			}
			s, err := store.Load(args[0])
			if err != nil {
				return err
			}
			text, err := s.Get(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
