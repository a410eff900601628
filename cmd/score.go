package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/plantcheck/internal/questionbank"
	"github.com/abhisek/plantcheck/internal/report"
	"github.com/abhisek/plantcheck/internal/scoring"
	"github.com/abhisek/plantcheck/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answer sheet against a question bank",
	Example: `  plantcheck score --bank operador.json --answers respuestas.json
  plantcheck score --bank revolvedora.json --answers r12.json --save --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		bankPath, _ := cmd.Flags().GetString("bank")
		answersPath, _ := cmd.Flags().GetString("answers")
		asJSON, _ := cmd.Flags().GetBool("json")
		save, _ := cmd.Flags().GetBool("save")
		live, _ := cmd.Flags().GetBool("live")

		eval, err := questionbank.LoadBank(bankPath)
		if err != nil {
			return err
		}
		sheet, err := questionbank.LoadAnswers(answersPath)
		if err != nil {
			return err
		}

		if eval.Role == "" {
			eval.Role = sheet.Role
		} else if sheet.Role != "" && sheet.Role != eval.Role {
			env.log.Warn("answer sheet role differs from question bank",
				zap.String("bank_role", eval.Role),
				zap.String("sheet_role", sheet.Role))
		}

		scfg, err := env.cfg.ScoringConfig()
		if err != nil {
			return err
		}
		engine := scoring.New(scfg)

		if live {
			printLive(stdout(cmd), engine, eval, sheet.Answers)
			return nil
		}

		res := engine.ScoreEvaluation(eval, sheet.Answers)
		for _, sk := range res.Skipped {
			env.log.Warn("answer ignored",
				zap.Stringer("key", sk.Key),
				zap.String("answer", string(sk.Answer)),
				zap.String("reason", string(sk.Reason)))
		}

		sub := &store.Submission{
			Kind:    eval.Kind,
			Role:    eval.Role,
			Result:  *res,
			Answers: questionbank.Entries(sheet.Answers),
		}

		if save {
			s, err := openStore(env)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.SubmissionRepo().Save(cmd.Context(), sub); err != nil {
				return err
			}
			env.log.Info("submission saved",
				zap.String("id", sub.ID),
				zap.Int("overall_score", res.OverallScore),
				zap.Bool("passed", res.Passed))
		}

		if asJSON {
			return report.JSON(cmd.OutOrStdout(), sub)
		}
		fmt.Fprint(stdout(cmd), report.Text(sub, report.Options{
			PassThreshold:    scfg.PassThreshold,
			TrapFailureLimit: scfg.TrapFailureLimit,
		}))
		return nil
	},
}

// printLive shows per-section progress using answered-so-far denominators.
func printLive(w io.Writer, engine *scoring.Engine, eval *scoring.Evaluation, answers scoring.AnswerMap) {
	answered, total := scoring.Progress(eval, answers)
	fmt.Fprintf(w, "Answered %d of %d questions\n", answered, total)
	for i, sec := range eval.Sections {
		s := engine.ScoreSection(eval, i, answers, scoring.Live)
		fmt.Fprintf(w, "  %-28s %5.1f%%  (%d/%d so far)\n", sec.Name, s.Percentage, s.CorrectCount, s.TotalCount)
	}
}

func init() {
	scoreCmd.Flags().String("bank", "", "Question bank JSON file")
	scoreCmd.Flags().String("answers", "", "Answer sheet JSON file")
	scoreCmd.Flags().Bool("json", false, "Print the submission payload as JSON")
	scoreCmd.Flags().Bool("save", false, "Store the submission in the local database")
	scoreCmd.Flags().Bool("live", false, "Show in-progress section percentages instead of a final result")
	_ = scoreCmd.MarkFlagRequired("bank")
	_ = scoreCmd.MarkFlagRequired("answers")
}
