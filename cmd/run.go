package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linwei/studymap/internal/app"
	"github.com/linwei/studymap/internal/diagnosis"
	"github.com/linwei/studymap/internal/recommend"
	"github.com/linwei/studymap/internal/screens/home"
	"github.com/linwei/studymap/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	deps := home.Deps{
		Knowledge:   ks,
		Diagnosis:   diagnosis.NewService(ks),
		Recommender: recommend.New(ks),
		Profile:     p,
		Student:     p.StudentName,
		Subject:     subject,
		TargetGrade: grade,
	}

	// The TUI works without a database; history and run persistence are
	// simply unavailable then.
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		if st, serr := store.Open(dbPath); serr == nil {
			defer st.Close()
			deps.Store = st
		} else {
			fmt.Fprintln(os.Stderr, "warning: store unavailable:", serr)
		}
	}

	return app.Run(deps)
}
