package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved evaluations",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		keep, _ := cmd.Flags().GetInt("keep")
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			return errors.New("refusing to delete evaluations without --yes")
		}

		s, err := openStore(env)
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := s.SubmissionRepo().Prune(cmd.Context(), keep)
		if err != nil {
			return err
		}
		env.log.Info("evaluations deleted", zap.Int64("removed", removed), zap.Int("kept", keep))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d evaluation(s).\n", removed)
		return nil
	},
}

func init() {
	resetCmd.Flags().Int("keep", 0, "Keep the N most recent evaluations")
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
