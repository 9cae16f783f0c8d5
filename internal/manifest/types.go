package manifest

// PackageManifest models the package.json of a generated project.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description,omitempty"`
	License         string            `json:"license,omitempty"`
	Keywords        []string          `json:"keywords,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// RequiredScripts lists the script entry points every generated project
// declares, in the order they appear in the manifest.
var RequiredScripts = []string{
	"compile",
	"test",
	"lint",
	"format",
	"typecheck",
	"gas-report",
	"deploy:sepolia",
	"deploy:mainnet",
}
