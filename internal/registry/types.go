package registry

// Example describes a single scaffoldable FHEVM example contract.
type Example struct {
	Key         string   `yaml:"key" json:"key"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Difficulty  string   `yaml:"difficulty" json:"difficulty"`
	Tags        []string `yaml:"tags" json:"tags"`
}

// Category describes a themed bundle of examples. Examples holds member
// keys in presentation order; the order is preserved everywhere the
// category is rendered.
type Category struct {
	Key         string   `yaml:"key" json:"key"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Examples    []string `yaml:"examples" json:"examples"`
}

// Difficulty values for the Example.Difficulty field.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)
