package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linwei/studymap/internal/llm"
	"github.com/linwei/studymap/internal/practicegen"
	"github.com/linwei/studymap/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <point-id>",
	Short: "Generate a practice sheet for one knowledge point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		ks, err := loadKnowledge(cmd)
		if err != nil {
			return err
		}
		pt, ok := ks.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown point %q", args[0])
		}

		// The store is optional; without it the sheet is only printed.
		var st *store.Store
		if dbPath, derr := resolveDBPath(cmd); derr == nil {
			if s, serr := store.Open(dbPath); serr == nil {
				st = s
				defer st.Close()
			}
		}

		var recorder llm.RequestRecorder
		if st != nil {
			recorder = st
		}
		provider, err := llm.NewProviderFromEnv(ctx, recorder)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		cfg := practicegen.DefaultConfig()
		if count, _ := cmd.Flags().GetInt("count"); count > 0 {
			cfg.Count = count
		}

		sheet, err := practicegen.New(provider, cfg).Generate(ctx, pt)
		if err != nil {
			return fmt.Errorf("generate practice sheet: %w", err)
		}

		showAnswers, _ := cmd.Flags().GetBool("answers")
		printSheet(sheet, showAnswers)

		if st != nil {
			student, _ := cmd.Flags().GetString("student")
			if _, err := st.PracticeRepo().Append(ctx, student, *sheet); err != nil {
				fmt.Fprintln(os.Stderr, "warning: could not save sheet:", err)
			}
		}
		return nil
	},
}

func init() {
	practiceCmd.Flags().IntP("count", "c", 0, "Number of questions (default 5)")
	practiceCmd.Flags().Bool("answers", false, "Print answers and explanations")
}

func printSheet(sheet *practicegen.Sheet, showAnswers bool) {
	fmt.Printf("Practice: %s (grade %d)\n\n", sheet.PointName, sheet.Grade)
	for _, q := range sheet.Questions {
		fmt.Printf("%d. [%s] %s\n", q.Number, q.Type, q.Content)
		if showAnswers {
			fmt.Printf("   Answer: %s\n", q.Answer)
			if q.Explanation != "" {
				fmt.Printf("   %s\n", q.Explanation)
			}
		}
		fmt.Println()
	}
}
