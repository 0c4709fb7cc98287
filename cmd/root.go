// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package cmd provides the root command for the cubebuddies CLI.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/defenseunicorns/cubebuddies"
	"github.com/defenseunicorns/cubebuddies/config"
	configv0 "github.com/defenseunicorns/cubebuddies/config/v0"
	"github.com/defenseunicorns/cubebuddies/schema"
)

const modulePath = "github.com/defenseunicorns/cubebuddies"

// positional argument names, in order
var argNames = []string{"<json filename>", "<dest filename>"}

// NewRootCmd creates the root command for the cubebuddies CLI.
func NewRootCmd() *cobra.Command {
	var (
		level       string
		ver         bool
		dry         bool
		explain     bool
		dir         string
		configPath  string
		generatedBy string
		filter      string
		policy      = config.DefaultEnumPolicy // VarP does not allow you to set a default value
	)

	var cfg *configv0.Config // cfg is not set via CLI flag

	// closure initializer
	loadConfig := func(cmd *cobra.Command, fsys afero.Fs) error {
		if cmd.Flags().Changed("config") {
			f, err := fsys.Open(os.ExpandEnv(configPath))
			if err != nil {
				return fmt.Errorf("failed to open config file: %w", err)
			}
			defer f.Close()
			cfg, err = configv0.LoadConfig(f)
			if err != nil {
				return fmt.Errorf("failed to load config file: %w", err)
			}
		} else {
			var err error
			cfg, err = configv0.LoadDefaultConfig(fsys)
			if err != nil {
				return err
			}
		}

		// default < cfg < flags
		if !cmd.Flags().Changed("unknown-enums") && cfg.UnknownEnums != "" {
			if err := policy.Set(cfg.UnknownEnums.String()); err != nil {
				return err
			}
		}

		return nil
	}

	root := &cobra.Command{
		Use:   "cubebuddies <json filename> <dest filename>",
		Short: "Convert CubeBuddies puzzles into a C++ header",
		Long: `Convert a CubeBuddies puzzle document (JSON, schema version 1) into a C++ header
of static arrays that is compiled into the game.

The destination is only replaced once the whole header has been generated.`,
		Example: `
cubebuddies puzzles.json PuzzleData.h

cubebuddies --explain puzzles.json

cubebuddies --dry-run --unknown-enums passthrough puzzles.json

cubebuddies --filter 'book == 2 && hasBuddy("orbo")' puzzles.json Book2.h

cubebuddies schema > cubebuddies.schema.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if ver {
				return nil
			}
			need := len(argNames)
			if dry || explain {
				need = 1
			}
			if len(args) < need {
				return &cubebuddies.MissingArgumentError{Missing: argNames[len(args):need]}
			}
			if err := cobra.MaximumNArgs(len(argNames))(cmd, args); err != nil {
				return &cubebuddies.UsageError{Err: err}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if dir != "" {
				if err := os.Chdir(dir); err != nil {
					return err
				}
			}

			l, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			logger := log.FromContext(cmd.Context())
			logger.SetLevel(l)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			if ver {
				bi, ok := debug.ReadBuildInfo()
				if !ok {
					return fmt.Errorf("version information not available")
				}
				switch bi.Main.Path {
				case modulePath:
					fmt.Fprintln(cmd.OutOrStdout(), bi.Main.Version)
				default:
					for _, dep := range bi.Deps {
						if dep.Path == modulePath {
							fmt.Fprintln(cmd.OutOrStdout(), dep.Version)
							break
						}
					}
				}
				return nil
			}

			fs := afero.NewOsFs()

			if err := loadConfig(cmd, fs); err != nil {
				return err
			}

			enums := cfg.EnumSet()
			opts := cubebuddies.ConvertOptions{
				Enums:       &enums,
				EnumPolicy:  policy,
				GeneratedBy: generatedBy,
				Filter:      cubebuddies.Filter(filter),
			}

			src := args[0]

			if dry || explain {
				if len(args) > 1 {
					logger.Warn("destination is ignored", "dst", args[1], "dry-run", dry, "explain", explain)
				}

				doc, err := cubebuddies.Load(ctx, fs, src, opts)
				if err != nil {
					return err
				}

				if explain {
					out, err := renderMarkdown(cubebuddies.Explain(doc))
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), out)
				}

				if dry {
					var buf bytes.Buffer
					if err := cubebuddies.Render(&buf, doc, cubebuddies.RenderOptions{GeneratedBy: generatedBy}); err != nil {
						return err
					}
					cubebuddies.PrintHeader(logger, cmd.OutOrStdout(), buf.String())
				}

				return nil
			}

			dst := args[1]
			if err := cubebuddies.Convert(ctx, fs, src, dst, opts); err != nil {
				return err
			}

			logger.Info("converted puzzles", "src", src, "dst", dst)

			return nil
		},
	}

	root.Flags().StringVarP(&level, "log-level", "l", "info", "Set log level")
	_ = root.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{log.DebugLevel.String(), log.InfoLevel.String(), log.WarnLevel.String(), log.ErrorLevel.String(), log.FatalLevel.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	root.Flags().BoolVarP(&ver, "version", "V", false, "Print version number and exit")
	root.Flags().BoolVar(&dry, "dry-run", false, "Validate and print the header to stdout instead of writing it")
	root.Flags().BoolVar(&explain, "explain", false, "Print a summary of the puzzles and exit")
	root.Flags().StringVarP(&dir, "directory", "C", "", "Change to directory before doing anything")
	_ = root.MarkFlagDirname("directory")
	root.Flags().StringVar(&configPath, "config", "${HOME}/.cubebuddies/config.yaml", "Path to cubebuddies config file, $CUBEBUDDIES_HOME/config.yaml when that is set") // mirrors config.DefaultPath
	_ = root.MarkFlagFilename("config", "yaml", "yml")
	root.Flags().StringVar(&generatedBy, "generated-by", cubebuddies.DefaultGeneratedBy, "Generator name written in the header comment")
	root.Flags().StringVar(&filter, "filter", "", "Only emit puzzles matching this expression (e.g. 'book == 2')")
	root.Flags().Var(&policy, "unknown-enums", fmt.Sprintf(`Behavior for unknown enum values ("%s")`, strings.Join(config.AvailableEnumPolicies(), `", "`)))
	_ = root.RegisterFlagCompletionFunc("unknown-enums", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.AvailableEnumPolicies(), cobra.ShellCompDirectiveNoFileComp
	})

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cubebuddies.UsageError{Err: err}
	})

	root.AddCommand(newSchemaCmd())

	return root
}

// Main executes the root command for the cubebuddies CLI.
//
// It returns 0 on success, a non-zero code per failure kind (see ParseExitCode) and logs any errors.
func Main() int {
	cli := NewRootCmd()

	ctx := context.Background()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	logger.SetStyles(DefaultStyles())

	ctx = log.WithContext(ctx, logger)
	_, err := cli.ExecuteContextC(ctx)
	if err != nil {
		logger.Error(err)

		if ParseExitCode(err) == ExitUsage {
			fmt.Fprintf(os.Stderr, "Usage: %s %s\n", cli.Name(), strings.Join(argNames, " "))
		}
	}
	return ParseExitCode(err)
}

// Exit codes returned by Main
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitUsage         = 2
	ExitSchemaVersion = 3
	ExitInputParse    = 4
	ExitUnknownEnum   = 5
	ExitFileIO        = 6
)

// ParseExitCode calculates the exit code from a given error
//
// When several kinds are joined together, the first matching kind in the order below wins:
// usage, schema version, input parse, unknown enum, file I/O.
func ParseExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		mErr  *cubebuddies.MissingArgumentError
		usErr *cubebuddies.UsageError
		vErr  *schema.SchemaVersionError
		pErr  *schema.InputParseError
		uErr  *schema.UnknownEnumValueError
		ioErr *cubebuddies.FileIOError
	)

	switch {
	case errors.As(err, &mErr), errors.As(err, &usErr):
		return ExitUsage
	case errors.As(err, &vErr):
		return ExitSchemaVersion
	case errors.As(err, &pErr):
		return ExitInputParse
	case errors.As(err, &uErr):
		return ExitUnknownEnum
	case errors.As(err, &ioErr):
		return ExitFileIO
	default:
		return ExitFailure
	}
}
