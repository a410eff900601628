package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/plantcheck/internal/questionbank"
	"github.com/abhisek/plantcheck/internal/report"
	"github.com/abhisek/plantcheck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved evaluations",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		limit, _ := cmd.Flags().GetInt("limit")
		kindFlag, _ := cmd.Flags().GetString("kind")

		opts := store.QueryOpts{Limit: limit}
		if kindFlag != "" {
			kind, err := questionbank.ParseKind(kindFlag)
			if err != nil {
				return err
			}
			opts.Kind = kind
		}

		s, err := openStore(env)
		if err != nil {
			return err
		}
		defer s.Close()

		subs, err := s.SubmissionRepo().List(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query submissions: %w", err)
		}

		w := stdout(cmd)
		if len(subs) == 0 {
			fmt.Fprintln(w, "No evaluations found.")
			return nil
		}
		for _, sub := range subs {
			fmt.Fprintln(w, report.Line(sub))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Max number of evaluations to show (0 = all)")
	historyCmd.Flags().String("kind", "", "Filter by evaluation kind (personal, equipo, operacion)")
}
