package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/plantcheck/internal/report"
	"github.com/abhisek/plantcheck/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a saved evaluation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(env)
		if err != nil {
			return err
		}
		defer s.Close()

		sub, err := s.SubmissionRepo().Get(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no evaluation with ID %s", args[0])
		}
		if err != nil {
			return err
		}

		if asJSON {
			return report.JSON(cmd.OutOrStdout(), sub)
		}

		scfg, err := env.cfg.ScoringConfig()
		if err != nil {
			return err
		}
		fmt.Fprint(stdout(cmd), report.Text(sub, report.Options{
			PassThreshold:    scfg.PassThreshold,
			TrapFailureLimit: scfg.TrapFailureLimit,
		}))
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "Print the stored payload as JSON")
}
