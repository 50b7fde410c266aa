// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/infrep/cmd/infrep/commands"
	"github.com/walteh/infrep/cmd/infrep/opts"
	"github.com/walteh/infrep/pkg/log"
	"github.com/walteh/infrep/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func newRootCmd(ro *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "infrep",
		Short: "Interactive find and replace across files",
		Long: `infrep finds text in a set of files and asks before replacing each match.
Nothing is written until every match has been decided and the run is confirmed.

infrep mv moves files and rewrites every reference to their paths first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, ro)
		},
	}

	addRootFlags(rootCmd, ro)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Errorf("%w: %s", operation.ErrValidation, err)
	})

	rootCmd.AddCommand(
		commands.NewReplaceCmd(ro),
		commands.NewMoveCmd(ro),
		commands.NewPlanCmd(ro),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, ro *opts.RootOpts) {
	cmd.PersistentFlags().BoolVar(&ro.Debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&ro.Yes, "yes", "y", false, "accept every match and the final confirmation")
}

// setupLogging configures zerolog based on flags and puts it on the command context
func setupLogging(cmd *cobra.Command, ro *opts.RootOpts) {
	level := zerolog.WarnLevel
	if ro.Debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: ro.ErrOut, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	ro.Console = log.New(ro.Out, logger)
	ro.UserLogger = log.NewUserLogger(ctx, ro.ErrOut)
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := GetVersionInfo()
			if !asJSON {
				fmt.Fprint(cmd.OutOrStdout(), FormatVersion(info))
				return nil
			}
			out, err := FormatVersionJSON(info)
			if err != nil {
				return errors.Errorf("encoding version info: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
