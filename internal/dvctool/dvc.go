package dvctool

// DVC invokes the dvc CLI with fixed argument shapes. The working
// directory of every call is the workspace root.
type DVC struct {
	Runner Runner
}

func (d *DVC) runner() Runner {
	if d.Runner != nil {
		return d.Runner
	}
	return ExecRunner{}
}

func (d *DVC) run(dir string, args ...string) Result {
	out, err := d.runner().Run(dir, "dvc", args...)
	return classify(out, err, "dvc", args...)
}

// Init initializes tracking in root without SCM coupling.
func (d *DVC) Init(root string) Result {
	return d.run(root, "init", "--no-scm")
}

// AddRemote registers path as the default remote named name, then pins
// it as the default. The first failing step is returned.
func (d *DVC) AddRemote(root, name, path string) Result {
	if res := d.run(root, "remote", "add", "-d", name, path); !res.Success() {
		return res
	}
	return d.run(root, "remote", "default", name)
}

// Track adds the file at rel (relative to root) to tracking, producing
// a <rel>.dvc pointer file.
func (d *DVC) Track(root, rel string) Result {
	return d.run(root, "add", rel)
}

// Push uploads tracked data to the configured remote.
func (d *DVC) Push(root string) Result {
	return d.run(root, "push")
}

// Version probes the installed tool. An Unavailable state means the
// binary is not on the search path.
func (d *DVC) Version() Result {
	return d.run("", "--version")
}
