package render

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var (
	parseOnce sync.Once
	parsed    *template.Template
	parseErr  error
)

// load parses the embedded template set once. The templates ship inside the
// binary, so a parse failure is a build defect and panics at first use; the
// package tests render every template to keep the panic unreachable.
func load() *template.Template {
	parseOnce.Do(func() {
		parsed, parseErr = template.ParseFS(templatesFS, "templates/*.tmpl")
	})
	if parseErr != nil {
		panic(fmt.Sprintf("embedded templates: %v", parseErr))
	}
	return parsed
}

func execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := load().ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Contract renders the Solidity stub for one example.
func Contract(ex ExampleData) (string, error) {
	return execute("contract.sol.tmpl", ex)
}

// TestSuite renders the Hardhat test stub for one example.
func TestSuite(ex ExampleData) (string, error) {
	return execute("test.ts.tmpl", ex)
}

// ExampleDoc renders the walkthrough page for one example.
func ExampleDoc(ex ExampleData) (string, error) {
	return execute("doc.md.tmpl", ex)
}

// DeployScript renders scripts/deploy.ts: one deployment block per example
// in order, plus a summary log in category mode.
func DeployScript(p ProjectData) (string, error) {
	return execute("deploy.ts.tmpl", p)
}

// Readme renders the project README. Category bundles get an extra section
// enumerating every included example.
func Readme(p ProjectData) (string, error) {
	return execute("readme.md.tmpl", p)
}

// PackageManifest renders package.json.
func PackageManifest(p ProjectData) (string, error) {
	return execute("package.json.tmpl", p)
}

// HardhatConfig renders hardhat.config.ts.
func HardhatConfig(p ProjectData) (string, error) {
	return execute("hardhat.config.ts.tmpl", p)
}

// EnvTemplate renders .env.example, which names every environment variable
// the build configuration reads.
func EnvTemplate(p ProjectData) (string, error) {
	return execute("env.example.tmpl", p)
}

// Gitignore renders .gitignore.
func Gitignore(p ProjectData) (string, error) {
	return execute("gitignore.tmpl", p)
}
