// Package toolchain probes the external tools a generated project depends
// on. The scaffolder itself never needs them; the doctor command uses these
// checks so users find out about a missing node or git before npm install
// does.
package toolchain

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tool describes one external dependency of generated projects.
type Tool struct {
	Name       string
	MinVersion string // lowest version known to work, empty accepts any
}

// Status is the outcome of probing one tool on the current system.
type Status struct {
	Tool      Tool
	Path      string // resolved binary path, empty when missing
	Version   string // parsed version, empty when unknown
	Installed bool
	Supported bool // version meets the minimum; true when the version is unknown
}

// Required lists the tools generated projects use, in report order.
func Required() []Tool {
	return []Tool{
		{Name: "node", MinVersion: "20.0.0"},
		{Name: "npm", MinVersion: "9.0.0"},
		{Name: "git", MinVersion: "2.13.0"},
	}
}

var versionRe = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ParseVersion extracts the first dotted version number from raw tool
// output. Tolerates prefixes like "v20.11.1" and "git version 2.39.2".
func ParseVersion(output string) (*semver.Version, error) {
	m := versionRe.FindString(output)
	if m == "" {
		return nil, fmt.Errorf("no version number in %q", strings.TrimSpace(output))
	}
	return semver.NewVersion(m)
}

// Meets reports whether v satisfies the tool's minimum version.
func (t Tool) Meets(v *semver.Version) bool {
	if t.MinVersion == "" || v == nil {
		return true
	}
	minimum, err := semver.NewVersion(t.MinVersion)
	if err != nil {
		return true
	}
	return !v.LessThan(minimum)
}

// Probe resolves the tool on PATH and parses its reported version. A tool
// that is present but reports an unparseable version counts as supported;
// only a confirmed-old version clears the flag.
func Probe(t Tool) Status {
	st := Status{Tool: t}

	path, err := exec.LookPath(t.Name)
	if err != nil {
		return st
	}
	st.Path = path
	st.Installed = true
	st.Supported = true

	out, err := exec.Command(path, "--version").CombinedOutput()
	if err != nil {
		return st
	}
	v, err := ParseVersion(string(out))
	if err != nil {
		return st
	}
	st.Version = v.String()
	st.Supported = t.Meets(v)
	return st
}

// ProbeAll probes every required tool in report order.
func ProbeAll() []Status {
	tools := Required()
	statuses := make([]Status, len(tools))
	for i, t := range tools {
		statuses[i] = Probe(t)
	}
	return statuses
}
