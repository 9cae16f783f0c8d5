package manifest

import (
	"encoding/json"
	"fmt"
)

// Parse unmarshals package.json bytes into a PackageManifest.
func Parse(data []byte) (*PackageManifest, error) {
	var m PackageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing package manifest: %w", err)
	}
	return &m, nil
}

// MissingScripts returns the entries from RequiredScripts that the manifest
// does not declare, in RequiredScripts order.
func (m *PackageManifest) MissingScripts() []string {
	var missing []string
	for _, name := range RequiredScripts {
		if _, ok := m.Scripts[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
