package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lottogen/internal/lotto"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		count     int
		noFilters bool
	)
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate combinations and add them to the archive",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if noFilters {
				s.generator.SetSmartFilters(false)
			}
			for _, c := range s.generator.GenerateAndSave(cmd.Context(), count) {
				fmt.Fprintln(cmd.OutOrStdout(), s.generator.FormatCombination(c))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of combinations to generate")
	cmd.Flags().BoolVar(&noFilters, "no-filters", false, "accept the first draw even if it looks common")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List archived combinations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			out, err := renderArchive(s.generator)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a combination by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if s.generator.DeleteCombination(cmd.Context(), id) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no combination with id %d\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d\n", id)
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every archived combination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			n := len(s.generator.AllCombinations())
			s.generator.ClearCombinations(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %d combinations\n", n)
			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <number>...",
		Short: "Show which common-pattern checks a set of numbers trips",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			lottoCfg := cfg.LottoConfig()
			if err := lottoCfg.Validate(); err != nil {
				return err
			}

			numbers := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", arg, err)
				}
				numbers = append(numbers, n)
			}
			if err := lottoCfg.ValidateNumbers(numbers); err != nil {
				return err
			}

			out, err := renderReport(lotto.Analyze(numbers, lottoCfg.MaxNumber))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
