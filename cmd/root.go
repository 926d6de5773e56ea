// Package cmd holds the studymap CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/profile"
	"github.com/linwei/studymap/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studymap",
	Short: "Knowledge-graph learning diagnosis for elementary students",
	Long: "StudyMap maps a student's exam history onto the curriculum knowledge graph,\n" +
		"finds the prerequisite gaps behind weak points, and recommends daily study plans.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYMAP_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Path to curriculum data directory (overrides STUDYMAP_DATA env var)")
	rootCmd.PersistentFlags().String("profiles", "", "Path to student profiles directory (overrides STUDYMAP_PROFILES env var)")
	rootCmd.PersistentFlags().StringP("student", "n", "student", "Student name")
	rootCmd.PersistentFlags().StringP("subject", "s", "math", "Subject: math, chinese, english")
	rootCmd.PersistentFlags().IntP("grade", "g", 3, "Target grade (1-6)")

	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(weakCmd)
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYMAP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadKnowledge loads the curriculum store from --data or the default dir.
func loadKnowledge(cmd *cobra.Command) (*knowledge.Store, error) {
	dir, _ := cmd.Flags().GetString("data")
	if dir == "" {
		var err error
		dir, err = knowledge.DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}
	ks, err := knowledge.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load curriculum from %s: %w", dir, err)
	}
	return ks, nil
}

// loadProfile loads the named student's profile, falling back to an empty
// profile when no file exists.
func loadProfile(cmd *cobra.Command) (*profile.Profile, error) {
	dir, _ := cmd.Flags().GetString("profiles")
	if dir == "" {
		var err error
		dir, err = profile.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	student, _ := cmd.Flags().GetString("student")
	return profile.LoadOrEmpty(dir, student)
}

// subjectGrade parses the --subject and --grade flags.
func subjectGrade(cmd *cobra.Command) (knowledge.Subject, int, error) {
	raw, _ := cmd.Flags().GetString("subject")
	subject, ok := knowledge.ParseSubject(strings.ToLower(raw))
	if !ok {
		return "", 0, fmt.Errorf("unknown subject %q (want math, chinese, or english)", raw)
	}
	grade, _ := cmd.Flags().GetInt("grade")
	if grade < knowledge.MinGrade || grade > knowledge.MaxGrade {
		return "", 0, fmt.Errorf("grade %d out of range %d-%d", grade, knowledge.MinGrade, knowledge.MaxGrade)
	}
	return subject, grade, nil
}
