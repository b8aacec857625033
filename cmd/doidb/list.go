// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doidb/internal/store"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE",
		Short: "Print every cached DOI, one per line",
		Long: `List prints the DOIs held in FILE, one per line. A missing FILE is
created empty.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range s.List() {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
}
