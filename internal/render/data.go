package render

import (
	"github.com/fhevm-labs/create-fhevm/internal/naming"
	"github.com/fhevm-labs/create-fhevm/internal/registry"
)

// ExampleData holds the template variables for one example, including the
// project-relative paths its files are written to. The paths computed here
// are the single source of truth: templates reference them and the
// scaffolder writes to them.
type ExampleData struct {
	Key          string // registry key, e.g., "fhe-counter"
	Title        string
	Description  string
	Difficulty   string
	Tags         []string
	Identifier   string // derived contract name, e.g., "FheCounter"
	LocalName    string // derived script variable, e.g., "fheCounter"
	ContractPath string // e.g., "contracts/FheCounter.sol"
	TestPath     string // e.g., "test/FheCounter.test.ts"
	DocPath      string // e.g., "docs/FheCounter.md"
}

// ProjectData holds the template variables for project-wide files.
// Category is empty when scaffolding a single example; templates use it to
// switch between single and bundle renderings.
type ProjectData struct {
	Name        string // manifest name
	Title       string
	Description string
	Keywords    []string
	Category    string // category key, empty in example mode
	Examples    []ExampleData
	Date        string // generation date, documentation only
}

// NewExampleProject builds the render payload for a single-example project.
func NewExampleProject(ex registry.Example, date string) ProjectData {
	return ProjectData{
		Name:        ex.Key,
		Title:       ex.Title,
		Description: ex.Description,
		Keywords:    append([]string(nil), ex.Tags...),
		Examples:    []ExampleData{newExampleData(ex, false)},
		Date:        date,
	}
}

// NewCategoryProject builds the render payload for a category bundle.
// Members must already be resolved, in the category's declared order.
func NewCategoryProject(cat registry.Category, members []registry.Example, date string) ProjectData {
	examples := make([]ExampleData, len(members))
	for i, ex := range members {
		examples[i] = newExampleData(ex, true)
	}
	return ProjectData{
		Name:        "fhevm-examples-" + cat.Key,
		Title:       cat.Title,
		Description: cat.Description,
		Keywords:    keywordUnion(members),
		Category:    cat.Key,
		Examples:    examples,
		Date:        date,
	}
}

// newExampleData derives identifiers and file paths for one example.
// Category bundles nest per-example sources one level deeper so the project
// root stays tidy.
func newExampleData(ex registry.Example, nested bool) ExampleData {
	id := naming.Identifier(ex.Key)
	contractDir := "contracts"
	testDir := "test"
	if nested {
		contractDir = "contracts/examples"
		testDir = "test/examples"
	}
	return ExampleData{
		Key:          ex.Key,
		Title:        ex.Title,
		Description:  ex.Description,
		Difficulty:   ex.Difficulty,
		Tags:         append([]string(nil), ex.Tags...),
		Identifier:   id,
		LocalName:    naming.LocalName(ex.Key),
		ContractPath: contractDir + "/" + id + ".sol",
		TestPath:     testDir + "/" + id + ".test.ts",
		DocPath:      "docs/" + id + ".md",
	}
}

// keywordUnion merges member tags, first occurrence wins, order preserved.
func keywordUnion(members []registry.Example) []string {
	seen := make(map[string]bool)
	var out []string
	for _, ex := range members {
		for _, tag := range ex.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out
}
