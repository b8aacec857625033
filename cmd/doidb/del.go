// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doidb/internal/store"
)

func newDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "del FILE DOI",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove a cached citation",
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDOI(args[1])
			if err != nil {
				return err
			}
			s, err := store.Load(args[0])
			if err != nil {
				return err
			}
			if err := s.Delete(id); err != nil {
				return err
			}
			slog.Debug("deleted citation", "doi", id, "path", s.Path())
			return nil
		},
	}
}
