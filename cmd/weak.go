package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linwei/studymap/internal/mastery"
)

var weakCmd = &cobra.Command{
	Use:   "weak",
	Short: "List the student's weak knowledge points",
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

		weak := mastery.NewClassifier(ks).ListWeakPoints(p, subject, grade)
		if len(weak) == 0 {
			fmt.Println("No weak points found. Nice work!")
			return nil
		}

		fmt.Printf("%-12s  %-24s  %5s  %8s  %s\n", "ID", "Name", "Grade", "Accuracy", "Attempts")
		for _, wp := range weak {
			fmt.Printf("%-12s  %-24s  %5d  %7.1f%%  %d\n",
				wp.Point.ID, wp.Point.Name, wp.Point.Grade, wp.Accuracy, wp.Attempts)
		}
		return nil
	},
}
