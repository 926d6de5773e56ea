package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past diagnosis runs for a student",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		student, _ := cmd.Flags().GetString("student")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		runs, err := st.DiagnosisRepo().ListByStudent(context.Background(), student, limit)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No diagnosis runs recorded.")
			return nil
		}

		fmt.Printf("%-10s  %-16s  %-8s  %5s  %5s  %4s  %s\n",
			"Run", "Timestamp", "Subject", "Grade", "Level", "Weak", "Root cause")
		fmt.Println(strings.Repeat("─", 80))
		for _, run := range runs {
			rootCause := "-"
			if len(run.Report.RootCauses) > 0 {
				rootCause = run.Report.RootCauses[0].Name
			}
			fmt.Printf("%-10s  %-16s  %-8s  %5d  %5.1f  %4d  %s\n",
				run.RunID[:8],
				run.Timestamp.Local().Format("2006-01-02 15:04"),
				knowledge.SubjectDisplayName(knowledge.Subject(run.Subject)),
				run.TargetGrade,
				run.GradeLevel,
				run.Report.WeakCount,
				rootCause,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "l", 20, "Number of runs to show")
}
