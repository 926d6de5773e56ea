package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linwei/studymap/internal/diagnosis"
	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/store"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Run a learning diagnosis and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, err := loadKnowledge(cmd)
		if err != nil {
			return err
		}
		p, err := loadProfile(cmd)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		subject, grade, err := subjectGrade(cmd)
		if err != nil {
			return err
		}

		report, err := diagnosis.NewService(ks).Diagnose(p, subject, grade)
		if err != nil {
			if errors.Is(err, diagnosis.ErrNoProfile) {
				fmt.Println("No practice data recorded for this student yet.")
				return nil
			}
			return err
		}

		printReport(report)

		if save, _ := cmd.Flags().GetBool("save"); save {
			if err := saveRun(cmd, report); err != nil {
				fmt.Fprintln(os.Stderr, "warning: could not save run:", err)
			}
		}
		return nil
	},
}

func init() {
	diagnoseCmd.Flags().Bool("save", true, "Persist the run to the history database")
}

func saveRun(cmd *cobra.Command, report *diagnosis.Report) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	runID, err := st.DiagnosisRepo().Append(context.Background(), *report)
	if err != nil {
		return err
	}
	fmt.Printf("\nSaved as run %s\n", runID)
	return nil
}

func printReport(r *diagnosis.Report) {
	sep := strings.Repeat("─", 64)

	fmt.Println(sep)
	fmt.Printf("Diagnosis — %s, %s grade %d\n",
		r.StudentName, knowledge.SubjectDisplayName(r.Subject), r.TargetGrade)
	fmt.Println(sep)
	fmt.Printf("Estimated level:  %.1f\n", r.ActualGradeLevel)
	fmt.Printf("Mastered points:  %d\n", r.MasteredCount)
	fmt.Printf("Weak points:      %d\n", r.WeakCount)

	if len(r.RootCauses) > 0 {
		fmt.Println("\nRoot causes:")
		for _, rc := range r.RootCauses {
			fmt.Printf("  • %s (grade %d, %s)\n", rc.Name, rc.Grade, rc.Difficulty.Label())
		}
	}

	if len(r.WeakPoints) > 0 {
		fmt.Println("\nWeak points:")
		for _, wp := range r.WeakPoints {
			fmt.Printf("  %-24s %5.1f%% over %d attempts\n",
				wp.Point.Name, wp.Accuracy, wp.Attempts)
		}
	}

	if len(r.Recommendations) > 0 {
		fmt.Println("\nAdvice:")
		for _, adv := range r.Recommendations {
			fmt.Printf("  [%s] %s\n", adv.Priority, adv.Title)
			fmt.Printf("         %s\n", adv.Action)
		}
	}
}
