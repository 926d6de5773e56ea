package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linwei/studymap/internal/recommend"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Print today's recommended study plans",
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

		for i, plan := range recommend.New(ks).DailyPlans(p, subject, grade) {
			if i > 0 {
				fmt.Println()
			}
			printPlan(plan)
		}
		return nil
	},
}

func printPlan(plan recommend.Plan) {
	marker := ""
	if plan.Remedial {
		marker = "  ⚑ remedial"
	}
	fmt.Printf("%s [%s]%s\n", plan.Name, strings.ToUpper(string(plan.Priority)), marker)
	fmt.Printf("  %s\n", plan.Description)
	fmt.Printf("  %d questions · %d min · %s\n", plan.TotalQuestions, plan.EstimatedMins, plan.Difficulty)
	for _, pt := range plan.Points {
		line := fmt.Sprintf("    – %s (grade %d, %d questions", pt.Name, pt.Grade, pt.Questions)
		if pt.CurrentAccuracy > 0 {
			line += fmt.Sprintf(", now %.0f%%", pt.CurrentAccuracy)
		}
		fmt.Println(line + ")")
	}
	if plan.Remedial && plan.MissingPrereqs > 0 {
		fmt.Printf("    note: %d prerequisites of this point are themselves unmastered\n", plan.MissingPrereqs)
	}
	fmt.Printf("  Goal: %s\n", plan.Goal)
}
