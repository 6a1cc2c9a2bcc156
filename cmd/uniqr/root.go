package uniqr

import (
	"fmt"

	"github.com/arthur-debert/uniqr/internal/version"
	"github.com/arthur-debert/uniqr/pkg/config"
	"github.com/arthur-debert/uniqr/pkg/errors"
	"github.com/arthur-debert/uniqr/pkg/logging"
	"github.com/arthur-debert/uniqr/pkg/uniq"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		count      bool
		configFile string
		showConfig bool
	)

	rootCmd := &cobra.Command{
		Use:     "uniqr [IN_FILE [OUT_FILE]]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    maxArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			// IN_FILE and OUT_FILE complete as paths
			if len(args) < 2 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := make(map[string]interface{})
			if len(args) > 0 {
				overrides[config.KeyInput] = args[0]
			}
			if len(args) > 1 {
				overrides[config.KeyOutput] = args[1]
			}
			if cmd.Flags().Changed("count") {
				overrides[config.KeyCount] = count
			}

			cfg, err := config.Resolve(config.Options{
				ConfigFile: configFile,
				Overrides:  overrides,
			})
			if err != nil {
				return err
			}

			if showConfig {
				data, err := config.Encode(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return errors.Wrap(err, errors.ErrWrite, "failed to print configuration")
			}

			log.Info().
				Str("input", cfg.InFile).
				Str("output", cfg.OutFile).
				Bool("count", cfg.Count).
				Msg("Starting uniqr")

			return uniq.Run(cfg)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.Flags().BoolVarP(&count, "count", "c", false, MsgFlagCount)
	rootCmd.Flags().BoolVar(&showConfig, "show-config", false, MsgFlagShowConfig)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidInput, MsgErrUsage)
	})

	return rootCmd
}

// maxArgs is cobra.MaximumNArgs with the error tagged as invalid input
func maxArgs(n int) cobra.PositionalArgs {
	check := cobra.MaximumNArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		return errors.Wrap(check(cmd, args), errors.ErrInvalidInput, MsgErrUsage)
	}
}
