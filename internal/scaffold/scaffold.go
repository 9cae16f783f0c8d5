package scaffold

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/fhevm-labs/create-fhevm/internal/manifest"
	"github.com/fhevm-labs/create-fhevm/internal/registry"
	"github.com/fhevm-labs/create-fhevm/internal/render"
	"github.com/fhevm-labs/create-fhevm/internal/vcs"
)

// Scaffolder generates projects. The zero value writes to the real
// filesystem, shells out to git, and stamps docs with the current date;
// tests swap in an in-memory filesystem, a stub git runner, and a fixed
// clock.
type Scaffolder struct {
	Fs  afero.Fs
	Git vcs.Runner
	Now func() time.Time
}

// Options tunes a single generation run.
type Options struct {
	SkipGit bool // skip git repository initialization
}

// Result holds the outcome of a generation run. Files are project-relative,
// slash-separated paths in write order. Warnings are non-fatal problems the
// caller should surface, such as a failed git init.
type Result struct {
	Dir      string
	Keys     []string
	Files    []string
	Warnings []string
}

// UnknownKeyError reports a key that is not in the registry. Kind is
// "example" or "category".
type UnknownKeyError struct {
	Kind string
	Key  string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown %s key %q", e.Kind, e.Key)
}

// Example generates a standalone project for a single registry example.
func (s *Scaffolder) Example(key, dest string, opts Options) (*Result, error) {
	ex, ok := registry.LookupExample(key)
	if !ok {
		return nil, &UnknownKeyError{Kind: "example", Key: key}
	}

	project := render.NewExampleProject(ex, s.date())
	return s.materialize(project, dest, []string{ex.Key}, opts)
}

// Category generates a bundle project containing every member of a registry
// category. Members are resolved up front, in declared order; an unresolved
// member aborts the run before anything touches the filesystem.
func (s *Scaffolder) Category(key, dest string, opts Options) (*Result, error) {
	cat, ok := registry.LookupCategory(key)
	if !ok {
		return nil, &UnknownKeyError{Kind: "category", Key: key}
	}

	members := make([]registry.Example, 0, len(cat.Examples))
	keys := make([]string, 0, len(cat.Examples))
	for _, memberKey := range cat.Examples {
		ex, ok := registry.LookupExample(memberKey)
		if !ok {
			return nil, fmt.Errorf("resolving category %q member: %w",
				key, &UnknownKeyError{Kind: "example", Key: memberKey})
		}
		members = append(members, ex)
		keys = append(keys, ex.Key)
	}

	project := render.NewCategoryProject(cat, members, s.date())
	return s.materialize(project, dest, keys, opts)
}

// materialize writes a rendered project under dest: configuration artifacts
// first, then per-example sources, then documentation and the deploy script.
// Existing files at managed paths are overwritten; everything else in dest is
// left untouched.
func (s *Scaffolder) materialize(project render.ProjectData, dest string, keys []string, opts Options) (*Result, error) {
	fs := s.fs()

	for _, dir := range projectDirs(project) {
		if err := fs.MkdirAll(filepath.Join(dest, filepath.FromSlash(dir)), 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	result := &Result{Dir: dest, Keys: keys}

	write := func(relPath string, renderFn func() (string, error)) error {
		content, err := renderFn()
		if err != nil {
			return err
		}
		outPath := filepath.Join(dest, filepath.FromSlash(relPath))
		if err := afero.WriteFile(fs, outPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", relPath, err)
		}
		result.Files = append(result.Files, relPath)
		return nil
	}

	projectFiles := []struct {
		path string
		fn   func() (string, error)
	}{
		{"package.json", func() (string, error) { return render.PackageManifest(project) }},
		{"hardhat.config.ts", func() (string, error) { return render.HardhatConfig(project) }},
		{".env.example", func() (string, error) { return render.EnvTemplate(project) }},
		{".gitignore", func() (string, error) { return render.Gitignore(project) }},
	}
	for _, f := range projectFiles {
		if err := write(f.path, f.fn); err != nil {
			return nil, err
		}
	}

	for _, ex := range project.Examples {
		if err := write(ex.ContractPath, func() (string, error) { return render.Contract(ex) }); err != nil {
			return nil, err
		}
	}
	for _, ex := range project.Examples {
		if err := write(ex.TestPath, func() (string, error) { return render.TestSuite(ex) }); err != nil {
			return nil, err
		}
	}
	for _, ex := range project.Examples {
		if err := write(ex.DocPath, func() (string, error) { return render.ExampleDoc(ex) }); err != nil {
			return nil, err
		}
	}

	if err := write("README.md", func() (string, error) { return render.Readme(project) }); err != nil {
		return nil, err
	}
	if err := write("scripts/deploy.ts", func() (string, error) { return render.DeployScript(project) }); err != nil {
		return nil, err
	}

	s.validateManifest(fs, dest, result)

	if !opts.SkipGit {
		if err := vcs.Init(s.Git, dest); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not initialize git repository: %v", err))
		}
	}

	return result, nil
}

// validateManifest checks the generated package.json against the embedded
// schema. A generation that produced an invalid manifest is a bug worth
// surfacing, but never worth failing the run over.
func (s *Scaffolder) validateManifest(fs afero.Fs, dest string, result *Result) {
	data, err := afero.ReadFile(fs, filepath.Join(dest, "package.json"))
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", err))
		return
	}

	valResult, err := manifest.Validate(data)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", err))
		return
	}
	if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, "package.json: "+msg)
		}
	}
}

// projectDirs returns the directory skeleton for a project, slash-separated.
func projectDirs(project render.ProjectData) []string {
	dirs := []string{"contracts", "test", "scripts", "docs"}
	if project.Category != "" {
		dirs = append(dirs, "contracts/examples", "test/examples")
	}
	return dirs
}

func (s *Scaffolder) fs() afero.Fs {
	if s.Fs != nil {
		return s.Fs
	}
	return afero.NewOsFs()
}

func (s *Scaffolder) date() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().Format("2006-01-02")
}
