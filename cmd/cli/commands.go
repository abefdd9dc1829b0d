package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iho/pocketledger/internal/adapter/console"
	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/usecase"
)

func addCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add <label> <amount>",
		Short: "Add a record and save the ledger",
		Example: `  pocketledger add Salary 2000 --kind income
  pocketledger add Coffee 4.50 --kind expense
  pocketledger --variant expense add Lunch 12.25`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			k, err := domain.ParseKind(kind)
			if err != nil {
				return err
			}
			if err := a.load(ctx); err != nil {
				return err
			}

			record, err := a.ledger.Add(ctx, usecase.AddInput{
				Label:  args[0],
				Amount: args[1],
				Kind:   k,
			})
			if err != nil {
				return err
			}
			if err := a.save(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s added: %s: %s\n", a.noun(), record.Label, a.formatter.Amount(record.Amount))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "income or expense; with a kind the amount is a magnitude")

	return cmd
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List records with the balance",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.load(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			records := a.ledger.List(ctx)
			if len(records) == 0 {
				fmt.Fprintf(out, "No %ss found.\n", strings.ToLower(a.noun()))
				return nil
			}

			a.printRecords(out, records)
			console.PrintTotal(out, a.ledger.Policy().Variant, a.ledger.Balance(ctx), a.formatter)
			return nil
		},
	}
}

func deleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <number>",
		Aliases: []string{"rm"},
		Short:   "Delete the record with the 1-based number shown by list",
		Long: "Delete the record with the 1-based number shown by list.\n" +
			"Anything that is not the number of a listed record is an invalid selection.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid selection %q: not a record number", args[0])
			}
			if err := a.load(ctx); err != nil {
				return err
			}

			removed, err := a.ledger.DeleteAt(ctx, number-1)
			if err != nil {
				return fmt.Errorf("invalid selection %q: %w", args[0], err)
			}
			if err := a.save(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s deleted: %s: %s\n", a.noun(), removed.Label, a.formatter.Amount(removed.Amount))
			return nil
		},
	}
}

func balanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.load(ctx); err != nil {
				return err
			}

			console.PrintTotal(cmd.OutOrStdout(), a.ledger.Policy().Variant, a.ledger.Balance(ctx), a.formatter)
			return nil
		},
	}
}

func summaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print income, expense and balance totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.load(ctx); err != nil {
				return err
			}

			console.PrintSummary(cmd.OutOrStdout(), a.ledger.Summary(ctx), a.formatter)
			return nil
		},
	}
}

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report records that would be rejected if added today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.load(ctx); err != nil {
				return err
			}

			violations := a.ledger.Check(ctx)
			console.PrintViolations(cmd.OutOrStdout(), violations, a.formatter)
			if len(violations) > 0 {
				return fmt.Errorf("%d invalid record(s)", len(violations))
			}
			return nil
		},
	}
}

func shellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Long: `Start the interactive menu. The ledger file is loaded at start and saved on exit.
Pass --file "" to work in memory only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.load(ctx); err != nil {
				return err
			}

			shell := console.NewShell(a.ledger, cmd.InOrStdin(), cmd.OutOrStdout(), a.formatter)
			if err := shell.Run(ctx); err != nil {
				return err
			}

			return a.save(ctx)
		},
	}
}
