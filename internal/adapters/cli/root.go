package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
	"github.com/Halasue/endfield-aic-calculator/internal/infrastructure/config"
)

var (
	// Global flags
	configPath   string
	outputFormat string
	localeFlag   string
	noColor      bool
)

// Runtime is what commands need once configuration has been loaded
type Runtime struct {
	Config   *config.Config
	Mediator common.Mediator
	Logger   common.Logger

	// Close releases the runtime's resources; may be nil
	Close func() error
}

// Bootstrap builds the runtime for a config file path ("" searches the default locations)
type Bootstrap func(ctx context.Context, configPath string) (*Runtime, error)

// session holds the runtime of the executing command
type session struct {
	bootstrap Bootstrap
	runtime   *Runtime
}

func (s *session) open(cmd *cobra.Command) error {
	runtime, err := s.bootstrap(cmd.Context(), configPath)
	if err != nil {
		return err
	}
	s.runtime = runtime

	if runtime.Logger != nil {
		cmd.SetContext(common.WithLogger(cmd.Context(), runtime.Logger))
	}
	return nil
}

func (s *session) close() error {
	if s.runtime == nil || s.runtime.Close == nil {
		return nil
	}
	err := s.runtime.Close()
	s.runtime = nil
	return err
}

// locale is the --locale flag, or the configured display locale
func (s *session) locale() production.Locale {
	if localeFlag != "" {
		return production.ParseLocale(localeFlag)
	}
	return production.ParseLocale(s.runtime.Config.Display.Locale)
}

func (s *session) formatter() *TreeFormatter {
	display := s.runtime.Config.Display
	return NewTreeFormatter(display.Colors && !noColor, display.RatePrecision)
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand(bootstrap Bootstrap) *cobra.Command {
	state := &session{bootstrap: bootstrap}

	rootCmd := &cobra.Command{
		Use:   "aic-calculator",
		Short: "Endfield AIC production calculator",
		Long: `Calculates the equipment and raw material rates needed to produce an item
at a target rate, by expanding every recipe back to seed items.

Examples:
  aic-calculator tree iron_plate --quantity 600 --minutes 60
  aic-calculator tree iron_plate -q 30 -m 1 --format json
  aic-calculator total iron_plate -q 600 -m 60
  aic-calculator items list --locale en
  aic-calculator catalog import data/data.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat != "text" && outputFormat != "json" {
				return fmt.Errorf("unsupported output format %q (use text or json)", outputFormat)
			}
			return state.open(cmd)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/aic-calculator)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text",
		"Output format: text or json")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "",
		"Name language: ja or en (default from config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable ANSI colors")

	rootCmd.AddCommand(newTreeCommand(state))
	rootCmd.AddCommand(newTotalCommand(state))
	rootCmd.AddCommand(newItemsCommand(state))
	rootCmd.AddCommand(newCatalogCommand(state))

	closeAfterRun(rootCmd, state)

	return rootCmd
}

// closeAfterRun wraps every RunE so the runtime is closed whether or not the command
// fails. PersistentPostRunE is skipped by cobra when RunE returns an error.
func closeAfterRun(cmd *cobra.Command, state *session) {
	for _, child := range cmd.Commands() {
		closeAfterRun(child, state)
	}
	if cmd.RunE == nil {
		return
	}

	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if closeErr := state.close(); closeErr != nil && err == nil {
			err = closeErr
		}
		return err
	}
}

// Execute runs the root command
func Execute(ctx context.Context, bootstrap Bootstrap) {
	rootCmd := NewRootCommand(bootstrap)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
