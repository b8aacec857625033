// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doidb/internal/doi"
	"github.com/pdiddy/doidb/internal/fetch"
	"github.com/pdiddy/doidb/internal/httputil"
	"github.com/pdiddy/doidb/internal/secrets"
	"github.com/pdiddy/doidb/pkg/types"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	secrets secrets.Secrets
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "doidb",
		Short: "Cache BibTeX citations for DOIs in a local JSON file",
		Long: `doidb keeps a JSON file mapping DOIs to BibTeX citations. Citations are
fetched from the DOI resolver on demand with "set" and read back offline
with "get" and "list".

DOIs may be given bare (10.1145/1234567) or as resolver URLs
(http://dx.doi.org/10.1145/1234567); both address the same entry.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation, errors are runtime failures and
			// should not print usage.
			cmd.SilenceUsage = true
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./doidb.yaml or ~/.config/doidb/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.Duration("timeout", 0, "HTTP request timeout (default 30s)")
	flags.String("base-url", "", "DOI resolver base URL (default https://doi.org/)")
	flags.String("abbrev-base-url", "", "journal abbreviation list base URL")

	a.v.SetDefault("timeout", httputil.DefaultTimeout)
	a.v.SetDefault("base_url", fetch.DefaultBaseURL)
	a.v.SetDefault("abbrev_base_url", fetch.DefaultAbbrevBaseURL)
	a.v.SetDefault("user_agent", "doidb/"+version)
	a.v.SetDefault("secrets_dir", ".secrets/")
	_ = a.v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = a.v.BindPFlag("abbrev_base_url", flags.Lookup("abbrev-base-url"))

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd(a))
	cmd.AddCommand(newDelCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newAbbrevCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// init sets up logging, reads configuration, and loads secrets.
func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("doidb")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "doidb"))
		}
	}

	a.v.SetEnvPrefix("DOIDB")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return usageError(fmt.Errorf("reading config: %w", err))
		}
	} else {
		slog.Debug("using config file", "path", a.v.ConfigFileUsed())
	}

	s, err := secrets.Load(a.v.GetString("secrets_dir"))
	if err != nil {
		return err
	}
	a.secrets = s
	if len(s) > 0 {
		slog.Debug("loaded secrets", "keys", s.Keys())
	}
	return nil
}

func (a *app) fetchConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   a.v.GetDuration("timeout"),
			UserAgent: httputil.UserAgent(a.v.GetString("user_agent"), a.secrets.Get(secrets.CrossrefMailto)),
		},
		BaseURL:       a.v.GetString("base_url"),
		AbbrevBaseURL: a.v.GetString("abbrev_base_url"),
	}
}

func (a *app) newFetcher() *fetch.Fetcher {
	cfg := a.fetchConfig()
	slog.Debug("remote lookups", "base_url", cfg.BaseURL, "timeout", cfg.Timeout, "user_agent", cfg.UserAgent)
	return fetch.New(httputil.NewClient(cfg.HTTPConfig), cfg)
}

// parseDOI normalizes a DOI argument and rejects anything that is not
// shaped like a DOI.
func parseDOI(raw string) (string, error) {
	id := doi.Normalize(raw)
	if !doi.Valid(id) {
		return "", usageError(fmt.Errorf("invalid DOI %q", raw))
	}
	return id, nil
}
