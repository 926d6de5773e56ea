package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linwei/studymap/internal/knowledge"
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Inspect the curriculum knowledge graph",
}

var pointsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the knowledge points for a subject and grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, err := loadKnowledge(cmd)
		if err != nil {
			return err
		}
		subject, grade, err := subjectGrade(cmd)
		if err != nil {
			return err
		}

		points := ks.ByGradeSubject(subject, grade)
		if len(points) == 0 {
			fmt.Printf("No points loaded for %s grade %d.\n", subject, grade)
			return nil
		}

		fmt.Printf("%-12s  %-24s  %-14s  %s\n", "ID", "Name", "Category", "Difficulty")
		for _, pt := range points {
			fmt.Printf("%-12s  %-24s  %-14s  %s\n",
				pt.ID, pt.Name, pt.Category, pt.Difficulty.Label())
		}
		return nil
	},
}

var pointsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one knowledge point with its prerequisite chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, err := loadKnowledge(cmd)
		if err != nil {
			return err
		}

		pt, ok := ks.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown point %q", args[0])
		}

		fmt.Printf("%s — %s\n", pt.ID, pt.Name)
		fmt.Printf("  %s grade %d · %s · %s\n",
			knowledge.SubjectDisplayName(pt.Subject), pt.Grade, pt.Category, pt.Difficulty.Label())
		if pt.Description != "" {
			fmt.Printf("  %s\n", pt.Description)
		}
		if len(pt.Keywords) > 0 {
			fmt.Printf("  Keywords: %s\n", strings.Join(pt.Keywords, ", "))
		}

		if prereqs := ks.AllPrerequisites(pt.ID); len(prereqs) > 0 {
			fmt.Println("\nPrerequisite chain (most foundational first):")
			for _, pre := range prereqs {
				fmt.Printf("  %s (grade %d) %s\n", pre.ID, pre.Grade, pre.Name)
			}
		} else {
			fmt.Println("\nNo prerequisites.")
		}
		return nil
	},
}

var pointsPathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Show the learning path between two points",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, err := loadKnowledge(cmd)
		if err != nil {
			return err
		}

		path := ks.LearningPath(args[0], args[1])
		if len(path) == 0 {
			fmt.Println("No path found.")
			return nil
		}
		for i, pt := range path {
			fmt.Printf("%d. %s (grade %d) %s\n", i+1, pt.ID, pt.Grade, pt.Name)
		}
		return nil
	},
}

func init() {
	pointsCmd.AddCommand(pointsListCmd)
	pointsCmd.AddCommand(pointsShowCmd)
	pointsCmd.AddCommand(pointsPathCmd)
}
