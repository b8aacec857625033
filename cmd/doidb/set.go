// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doidb/internal/store"
)

func newSetCmd(a *app) *cobra.Command {
	var skipCached bool

	cmd := &cobra.Command{
		Use:   "set FILE DOI",
		Short: "Fetch the citation for a DOI and cache it",
		Long: `Set asks the DOI resolver for the BibTeX citation of DOI, prints the
response, and stores it in FILE, replacing any cached copy.

When the resolver has no record the response is printed but nothing is
stored and FILE is left unchanged.`,
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
			out := cmd.OutOrStdout()

			if skipCached && s.Has(id) {
				text, err := s.Get(id)
				if err != nil {
					return err
				}
				slog.Debug("citation already cached", "doi", id)
				fmt.Fprintln(out, text)
				return nil
			}

			slog.Debug("fetching citation", "doi", id)
			text, err := a.newFetcher().Citation(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)

			if err := s.Set(id, text); err != nil {
				if errors.Is(err, store.ErrInvalidCitation) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: no citation returned, not stored\n", id)
					return nil
				}
				return err
			}
			slog.Debug("stored citation", "doi", id, "path", s.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipCached, "skip-cached", false, "print the cached citation instead of fetching when the DOI is already stored")

	return cmd
}
