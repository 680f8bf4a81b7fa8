package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/suparena/attrindex"
	"github.com/suparena/attrindex/config"
	"github.com/suparena/attrindex/logging"
	"github.com/suparena/attrindex/schema"
)

func newRootCmd() *cobra.Command {
	var showVersion bool
	var envFiles []string

	root := &cobra.Command{
		Use:           "attrindex",
		Short:         "Inspect and validate attribute index schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				return printVersion(cmd.OutOrStdout(), false)
			}
			return cmd.Help()
		},
	}
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Load environment from these files (default .env if present)")

	root.AddCommand(newCheckCmd(&envFiles), newVersionCmd())
	return root
}

func newCheckCmd(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "check [schema-file]",
		Short: "Validate a schema file and list the attributes it binds",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFiles...)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.Log)

			path := cfg.SchemaFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no schema file given and %s is not set", config.EnvSchemaFile)
			}

			return runCheck(cmd.OutOrStdout(), logger, path)
		},
	}
}

func runCheck(out io.Writer, logger zerolog.Logger, path string) error {
	s, err := schema.Load(path)
	if err != nil {
		logger.Error().Err(err).Str("schema", path).Msg("schema rejected")
		return err
	}

	index := attrindex.New(attrindex.WithLogger(logger))
	bound := s.Apply(index)
	logger.Info().Str("schema", path).Int("bound", bound).Msg("schema applied")

	for _, name := range index.Bound() {
		fmt.Fprintln(out, name)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVersion(cmd.OutOrStdout(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func printVersion(out io.Writer, asJSON bool) error {
	info := attrindex.GetVersionInfo()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	_, err := fmt.Fprintln(out, info)
	return err
}
