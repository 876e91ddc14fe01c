package dvctool

import (
	"os"
	"path/filepath"
)

// Git stages and commits the scaffold's own files. Only the handful of
// subcommands the setup sequence needs are exposed.
type Git struct {
	Runner Runner
}

func (g *Git) runner() Runner {
	if g.Runner != nil {
		return g.Runner
	}
	return ExecRunner{}
}

func (g *Git) run(dir string, args ...string) Result {
	out, err := g.runner().Run(dir, "git", args...)
	return classify(out, err, "git", args...)
}

// Init initializes a repository at root.
func (g *Git) Init(root string) Result {
	return g.run(root, "init")
}

// InitIfMissing initializes a repository unless root/.git already exists.
func (g *Git) InitIfMissing(root string) Result {
	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		return Result{State: Succeeded, Command: "git init", Output: "already initialized"}
	}
	return g.Init(root)
}

// Add stages path.
func (g *Git) Add(root, path string) Result {
	return g.run(root, "add", path)
}

// Commit records staged changes with message.
func (g *Git) Commit(root, message string) Result {
	return g.run(root, "commit", "-m", message)
}
