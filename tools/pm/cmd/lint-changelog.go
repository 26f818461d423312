package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-email-compose/tools/pm/changes"
	"github.com/zostay/go-email-compose/tools/pm/release"
)

var (
	lintChangelogCmd = &cobra.Command{
		Use:   "lint-changelog",
		Short: "Check the changelog file for problems",
		Args:  cobra.NoArgs,
		Run:   LintChangelog,
	}

	isRelease bool
)

func init() {
	lintChangelogCmd.Flags().BoolVarP(&isRelease, "release", "r", false, "verify the changelog is ready for release")
}

func LintChangelog(_ *cobra.Command, _ []string) {
	changelog, err := os.Open(release.GoEmailConfig.Changelog)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "unable to open Changes file: %v", err)
		os.Exit(1)
	}

	mode := changes.CheckStandard
	if isRelease {
		mode = changes.CheckRelease
	}
	linter := changes.NewLinter(changelog, mode)
	err = linter.Check()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
