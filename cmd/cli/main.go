package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/pocketledger/internal/adapter/console"
	"github.com/iho/pocketledger/internal/adapter/repository/csvfile"
	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/infrastructure/config"
	"github.com/iho/pocketledger/internal/infrastructure/logger"
	"github.com/iho/pocketledger/internal/usecase"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once the root has been prepared.
type app struct {
	file      string
	variant   string
	log       zerolog.Logger
	ledger    *usecase.LedgerUseCase
	formatter console.Formatter
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "pocketledger",
		Short:         "Personal income and expense ledger",
		Long:          `Record income and expenses, view the balance and keep the ledger in a CSV file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.file, "file", "f", "", "ledger CSV file (default $LEDGER_FILE or ledger.csv); empty string keeps the ledger in memory")
	rootCmd.PersistentFlags().StringVar(&a.variant, "variant", "", "ledger variant: signed or expense (default $LEDGER_VARIANT or signed)")

	rootCmd.AddCommand(
		addCmd(a),
		listCmd(a),
		deleteCmd(a),
		balanceCmd(a),
		summaryCmd(a),
		checkCmd(a),
		shellCmd(a),
	)

	return rootCmd
}

// execute runs the command tree and prints any error to stderr.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func (a *app) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("file") {
		a.file = cfg.LedgerFile
	}
	if flags.Changed("variant") {
		cfg.LedgerVariant = a.variant
	}

	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	a.log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	a.formatter = console.NewFormatter(cfg.DisplayCurrency)
	a.ledger = usecase.NewLedgerUseCase(policy, csvfile.NewStore(csvfile.NewULIDGenerator()), a.log, nil)

	return nil
}

// load reads the ledger file when one is configured. A missing file is an
// empty ledger.
func (a *app) load(ctx context.Context) error {
	if a.file == "" {
		return nil
	}

	err := a.ledger.LoadFromFile(ctx, a.file)
	if errors.Is(err, domain.ErrFileNotFound) {
		a.log.Debug().Str("path", a.file).Msg("ledger file does not exist yet, starting empty")
		return nil
	}
	return err
}

// save writes the ledger back when a file is configured.
func (a *app) save(ctx context.Context) error {
	if a.file == "" {
		return nil
	}
	return a.ledger.SaveToFile(ctx, a.file)
}

func (a *app) noun() string {
	return a.ledger.Policy().Variant.Noun()
}

func (a *app) printRecords(w io.Writer, records []domain.Record) {
	console.PrintRecords(w, records, a.formatter)
}
