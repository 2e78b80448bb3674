package build

import (
	"flag"
	"os"
	"strings"
)

var (
	// CommitHashFlag overrides the commit read from git
	CommitHashFlag = flag.String("git-commit", "", `Overrides git commit hash embedded into executables`)
	// CommitDateFlag overrides the commit date read from git
	CommitDateFlag = flag.String("git-date", "", `Overrides git commit date embedded into executables`)
)

// Environment is the version information embedded into xrptools.
type Environment struct {
	Commit string
	Date   string
}

func (env Environment) String() string {
	return "commit=" + env.Commit + " date=" + env.Date
}

// Env returns the build environment: flags first, then GIT_COMMIT /
// GIT_DATE, then the local git checkout.
func Env() *Environment {
	env := &Environment{
		Commit: firstNonEmpty(*CommitHashFlag, os.Getenv("GIT_COMMIT")),
		Date:   firstNonEmpty(*CommitDateFlag, os.Getenv("GIT_DATE")),
	}
	if env.Commit == "" {
		env.Commit = localCommit()
	}
	if env.Commit != "" && env.Date == "" {
		env.Date = RunGit("show", "-s", "--format=%cd", "--date=format:%Y%m%d", env.Commit)
	}
	return env
}

func localCommit() string {
	head := readGitFile("HEAD")
	if !strings.HasPrefix(head, "ref: ") {
		return head
	}
	if commit := readGitFile(strings.TrimPrefix(head, "ref: ")); commit != "" {
		return commit
	}
	return RunGit("rev-parse", "HEAD")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
