//go:build linux || darwin

package dircolors

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dircolors/internal/version"
	"github.com/arthur-debert/dircolors/pkg/classifier"
	"github.com/arthur-debert/dircolors/pkg/colordb"
	"github.com/arthur-debert/dircolors/pkg/commands"
	"github.com/arthur-debert/dircolors/pkg/config"
	"github.com/arthur-debert/dircolors/pkg/errors"
	"github.com/arthur-debert/dircolors/pkg/filesystem"
	"github.com/arthur-debert/dircolors/pkg/logging"
	"github.com/arthur-debert/dircolors/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootState is shared by every subcommand once flags are parsed
type rootState struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	state := &rootState{}

	rootCmd := &cobra.Command{
		Use:     "dircolors",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(state.verbosity)
			logging.LogCommand(cmd.Name(), args)

			cfg, err := config.Load(state.configPath)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			state.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&state.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&state.configPath, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newLsCmd(state))
	rootCmd.AddCommand(newExportCmd(state))
	rootCmd.AddCommand(newPrintDatabaseCmd())
	rootCmd.AddCommand(newConfigCmd(state))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newLsCmd(state *rootState) *cobra.Command {
	var (
		color       string
		dereference bool
		noTargets   bool
	)

	cmd := &cobra.Command{
		Use:     "ls [FILE...]",
		Short:   MsgLsShort,
		Long:    MsgLsLong,
		Example: MsgLsExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := state.cfg
			mode := cfg.Display.Color
			if cmd.Flags().Changed("color") {
				if !config.ValidColorMode(color) {
					return errors.Newf(errors.ErrInvalidInput, MsgErrColorMode, color)
				}
				mode = color
			}

			out := cmd.OutOrStdout()
			loaded, err := commands.LoadDatabase(commands.LoadDatabaseOptions{
				File:     cfg.Database.File,
				Strict:   cfg.Database.Strict,
				Variable: cfg.Database.Variable,
				Disabled: !style.ShouldColor(mode, out),
			})
			if err != nil {
				return fmt.Errorf(MsgErrLoadDatabase, err)
			}
			log.Info().
				Str("source", string(loaded.Source)).
				Str("color", mode).
				Msg("Listing paths")

			fsys := filesystem.NewOS()
			result, err := commands.ListPaths(commands.ListPathsOptions{
				Paths:       args,
				Classifier:  classifier.New(loaded.Database, fsys),
				FS:          fsys,
				Dereference: cfg.Display.Dereference || dereference,
				ShowTargets: cfg.Display.Targets && !noTargets,
				Out:         out,
				ErrOut:      cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			if len(result.Failed) > 0 {
				return errors.Newf(errors.ErrDirList, MsgErrListFailed, len(result.Failed)).
					WithDetail("paths", result.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", MsgFlagColor)
	cmd.Flags().BoolVarP(&dereference, "dereference", "L", false, MsgFlagDereference)
	cmd.Flags().BoolVar(&noTargets, "no-targets", false, MsgFlagNoTargets)
	return cmd
}

func newExportCmd(state *rootState) *cobra.Command {
	var (
		shell   string
		lenient bool
	)

	cmd := &cobra.Command{
		Use:     "export [FILE]",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExportExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.LoadDatabaseOptions{
				File:   state.cfg.Database.File,
				Strict: state.cfg.Database.Strict && !lenient,
			}
			if len(args) == 1 {
				opts.File = args[0]
				opts.Strict = !lenient
			}

			loaded, err := commands.LoadDatabase(opts)
			if err != nil {
				return fmt.Errorf(MsgErrLoadDatabase, err)
			}

			text, err := commands.Export(commands.ExportOptions{
				Database:  loaded.Database,
				Shell:     shell,
				ShellPath: os.Getenv("SHELL"),
			})
			if err != nil {
				return fmt.Errorf(MsgErrExport, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVar(&shell, "shell", "auto", MsgFlagShell)
	cmd.Flags().BoolVar(&lenient, "lenient", false, MsgFlagLenient)
	return cmd
}

func newPrintDatabaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "print-database",
		Short:   MsgPrintDatabaseShort,
		Long:    MsgPrintDatabaseLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), colordb.DefaultDatabase())
			return err
		},
	}
}

func newConfigCmd(state *rootState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Marshal(state.cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatTOML, MsgFlagFormat)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
