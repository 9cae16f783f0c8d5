package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

type gitCall struct {
	dir  string
	name string
	args []string
}

// newTestScaffolder returns a scaffolder wired to an in-memory filesystem,
// a git runner that records calls, and a fixed clock.
func newTestScaffolder(fs afero.Fs, calls *[]gitCall, gitErr error) *Scaffolder {
	return &Scaffolder{
		Fs: fs,
		Git: func(dir, name string, args ...string) ([]byte, error) {
			*calls = append(*calls, gitCall{dir: dir, name: name, args: args})
			if gitErr != nil {
				return []byte("fatal: boom"), gitErr
			}
			return nil, nil
		},
		Now: func() time.Time {
			return time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
		},
	}
}

func readGenerated(t *testing.T, fs afero.Fs, dir, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("reading generated file %s: %v", name, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, want string) {
	t.Helper()
	if !strings.Contains(content, want) {
		t.Errorf("content missing %q\ngot:\n%s", want, content)
	}
}

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	got := append([]string(nil), result.Files...)
	sort.Strings(got)
	want := append([]string(nil), expected...)
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("generated files = %v, want %v", got, want)
	}
}

func TestExampleGeneratesProject(t *testing.T) {
	fs := afero.NewMemMapFs()
	var calls []gitCall
	s := newTestScaffolder(fs, &calls, nil)

	result, err := s.Example("fhe-counter", "out", Options{})
	if err != nil {
		t.Fatalf("Example() error: %v", err)
	}

	wantOrder := []string{
		"package.json",
		"hardhat.config.ts",
		".env.example",
		".gitignore",
		"contracts/FheCounter.sol",
		"test/FheCounter.test.ts",
		"docs/FheCounter.md",
		"README.md",
		"scripts/deploy.ts",
	}
	if !reflect.DeepEqual(result.Files, wantOrder) {
		t.Errorf("file write order = %v, want %v", result.Files, wantOrder)
	}
	if !reflect.DeepEqual(result.Keys, []string{"fhe-counter"}) {
		t.Errorf("result keys = %v, want [fhe-counter]", result.Keys)
	}
	if result.Dir != "out" {
		t.Errorf("result dir = %q, want %q", result.Dir, "out")
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	manifest := readGenerated(t, fs, "out", "package.json")
	assertContains(t, manifest, `"name": "fhe-counter"`)
	assertContains(t, manifest, `"@fhevm/solidity"`)

	contract := readGenerated(t, fs, "out", "contracts/FheCounter.sol")
	assertContains(t, contract, "contract FheCounter is SepoliaConfig")
	assertContains(t, contract, "pragma solidity ^0.8.24;")

	testSuite := readGenerated(t, fs, "out", "test/FheCounter.test.ts")
	assertContains(t, testSuite, `describe("FheCounter"`)

	deploy := readGenerated(t, fs, "out", "scripts/deploy.ts")
	assertContains(t, deploy, `getContractFactory("FheCounter")`)

	readme := readGenerated(t, fs, "out", "README.md")
	assertContains(t, readme, "# FHE Counter")
	assertContains(t, readme, "Generated on 2025-03-14 with create-fhevm.")

	if len(calls) != 1 {
		t.Fatalf("git calls = %d, want 1", len(calls))
	}
	if calls[0].dir != "out" || calls[0].name != "git" || !reflect.DeepEqual(calls[0].args, []string{"init"}) {
		t.Errorf("git call = %+v, want git init in out", calls[0])
	}
}

func TestExampleUnknownKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	var calls []gitCall
	s := newTestScaffolder(fs, &calls, nil)

	_, err := s.Example("fhe-missing", "out", Options{})
	if err == nil {
		t.Fatal("expected error for unknown example key")
	}

	var unknownErr *UnknownKeyError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error type = %T, want *UnknownKeyError", err)
	}
	if unknownErr.Kind != "example" || unknownErr.Key != "fhe-missing" {
		t.Errorf("UnknownKeyError = %+v, want kind example, key fhe-missing", unknownErr)
	}

	exists, _ := afero.DirExists(fs, "out")
	if exists {
		t.Error("unknown key should not create the destination directory")
	}
	if len(calls) != 0 {
		t.Errorf("unknown key should not run git, got %d calls", len(calls))
	}
}

func TestCategoryGeneratesBundle(t *testing.T) {
	fs := afero.NewMemMapFs()
	var calls []gitCall
	s := newTestScaffolder(fs, &calls, nil)

	result, err := s.Category("decryption", "bundle", Options{})
	if err != nil {
		t.Fatalf("Category() error: %v", err)
	}

	expectedFiles := []string{
		"package.json",
		"hardhat.config.ts",
		".env.example",
		".gitignore",
		"contracts/examples/DecryptSingleValue.sol",
		"contracts/examples/DecryptMultipleValues.sol",
		"test/examples/DecryptSingleValue.test.ts",
		"test/examples/DecryptMultipleValues.test.ts",
		"docs/DecryptSingleValue.md",
		"docs/DecryptMultipleValues.md",
		"README.md",
		"scripts/deploy.ts",
	}
	assertFiles(t, result, expectedFiles)

	wantKeys := []string{"decrypt-single-value", "decrypt-multiple-values"}
	if !reflect.DeepEqual(result.Keys, wantKeys) {
		t.Errorf("result keys = %v, want %v", result.Keys, wantKeys)
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	manifest := readGenerated(t, fs, "bundle", "package.json")
	assertContains(t, manifest, `"name": "fhevm-examples-decryption"`)

	readme := readGenerated(t, fs, "bundle", "README.md")
	assertContains(t, readme, "## Included examples")
	assertContains(t, readme, "**Decrypt Single Value** (`decrypt-single-value`)")
	assertContains(t, readme, "**Decrypt Multiple Values** (`decrypt-multiple-values`)")

	// The deploy script handles members in the category's declared order.
	deploy := readGenerated(t, fs, "bundle", "scripts/deploy.ts")
	first := strings.Index(deploy, `getContractFactory("DecryptSingleValue")`)
	second := strings.Index(deploy, `getContractFactory("DecryptMultipleValues")`)
	if first < 0 || second < 0 {
		t.Fatalf("deploy script missing member factories:\n%s", deploy)
	}
	if first > second {
		t.Error("deploy script members out of declared order")
	}
}

func TestCategoryUnknownKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	var calls []gitCall
	s := newTestScaffolder(fs, &calls, nil)

	_, err := s.Category("enterprise", "bundle", Options{})
	if err == nil {
		t.Fatal("expected error for unknown category key")
	}

	var unknownErr *UnknownKeyError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error type = %T, want *UnknownKeyError", err)
	}
	if unknownErr.Kind != "category" || unknownErr.Key != "enterprise" {
		t.Errorf("UnknownKeyError = %+v, want kind category, key enterprise", unknownErr)
	}

	exists, _ := afero.DirExists(fs, "bundle")
	if exists {
		t.Error("unknown key should not create the destination directory")
	}
}

func TestExampleOverwritesManagedFilesOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	var calls []gitCall
	s := newTestScaffolder(fs, &calls, nil)

	// Simulate a previous run plus user edits living in the destination.
	if err := afero.WriteFile(fs, "out/package.json", []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "out/NOTES.md", []byte("my notes"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Example("fhe-add", "out", Options{}); err != nil {
		t.Fatalf("Example() error: %v", err)
	}

	manifest := readGenerated(t, fs, "out", "package.json")
	if strings.Contains(manifest, "stale") {
		t.Error("managed file should be overwritten, found stale content")
	}
	assertContains(t, manifest, `"name": "fhe-add"`)

	notes := readGenerated(t, fs, "out", "NOTES.md")
	if notes != "my notes" {
		t.Errorf("unmanaged file changed: %q", notes)
	}
}

func TestRegenerationIsDeterministic(t *testing.T) {
	fs := afero.NewMemMapFs()
	var calls []gitCall
	s := newTestScaffolder(fs, &calls, nil)

	first, err := s.Example("blind-auction", "out", Options{SkipGit: true})
	if err != nil {
		t.Fatalf("first run error: %v", err)
	}
	snapshot := make(map[string]string, len(first.Files))
	for _, name := range first.Files {
		snapshot[name] = readGenerated(t, fs, "out", name)
	}

	second, err := s.Example("blind-auction", "out", Options{SkipGit: true})
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}
	if !reflect.DeepEqual(first.Files, second.Files) {
		t.Errorf("file lists differ across runs: %v vs %v", first.Files, second.Files)
	}
	for _, name := range second.Files {
		if got := readGenerated(t, fs, "out", name); got != snapshot[name] {
			t.Errorf("%s changed across identical runs", name)
		}
	}
}

func TestSkipGit(t *testing.T) {
	fs := afero.NewMemMapFs()
	var calls []gitCall
	s := newTestScaffolder(fs, &calls, nil)

	result, err := s.Example("private-voting", "out", Options{SkipGit: true})
	if err != nil {
		t.Fatalf("Example() error: %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("git should not run with SkipGit, got %d calls", len(calls))
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestGitFailureIsWarning(t *testing.T) {
	fs := afero.NewMemMapFs()
	var calls []gitCall
	s := newTestScaffolder(fs, &calls, errors.New("exit status 128"))

	result, err := s.Example("fhe-random", "out", Options{})
	if err != nil {
		t.Fatalf("git failure must not fail the run: %v", err)
	}
	if len(result.Files) == 0 {
		t.Fatal("files should be written despite git failure")
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Could not initialize git repository") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want git init warning", result.Warnings)
	}
}

// flakyFs fails every open of one named file, letting tests exercise a
// mid-run write failure.
type flakyFs struct {
	afero.Fs
	failBase string
}

func (f *flakyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == f.failBase {
		return nil, fmt.Errorf("open %s: disk full", name)
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestWriteFailureAbortsWithoutCleanup(t *testing.T) {
	mem := afero.NewMemMapFs()
	fs := &flakyFs{Fs: mem, failBase: "hardhat.config.ts"}
	var calls []gitCall
	s := newTestScaffolder(fs, &calls, nil)

	_, err := s.Example("fhe-counter", "out", Options{})
	if err == nil {
		t.Fatal("expected error for failed write")
	}
	assertContains(t, err.Error(), "hardhat.config.ts")

	// Files written before the failure stay on disk.
	exists, _ := afero.Exists(mem, "out/package.json")
	if !exists {
		t.Error("earlier files should survive a later write failure")
	}
	if len(calls) != 0 {
		t.Errorf("git should not run after a failed write, got %d calls", len(calls))
	}
}

func TestReadOnlyDestination(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	var calls []gitCall
	s := newTestScaffolder(fs, &calls, nil)

	_, err := s.Example("fhe-counter", "out", Options{})
	if err == nil {
		t.Fatal("expected error on read-only filesystem")
	}
	assertContains(t, err.Error(), "creating directory")
}

func TestZeroValueScaffolderWritesToDisk(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "fhe-counter")

	var s Scaffolder
	result, err := s.Example("fhe-counter", outDir, Options{SkipGit: true})
	if err != nil {
		t.Fatalf("Example() error: %v", err)
	}
	for _, name := range result.Files {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing generated file %s: %v", name, err)
		}
	}
}

func TestUnknownKeyErrorMessage(t *testing.T) {
	tests := []struct {
		kind string
		key  string
		want string
	}{
		{"example", "nope", `unknown example key "nope"`},
		{"category", "misc", `unknown category key "misc"`},
	}
	for _, tt := range tests {
		err := &UnknownKeyError{Kind: tt.kind, Key: tt.key}
		if got := err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
