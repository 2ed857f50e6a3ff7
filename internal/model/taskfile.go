package model

// Taskfile is the top-level declarative document loaded at startup
type Taskfile struct {
	APIVersion string            `yaml:"apiVersion" json:"apiVersion"`
	Kind       string            `yaml:"kind" json:"kind"`
	Metadata   Metadata          `yaml:"metadata" json:"metadata"`
	Vars       map[string]string `yaml:"vars" json:"vars"`
	Tasks      []TaskSpec        `yaml:"tasks" json:"tasks"`
	Default    string            `yaml:"default" json:"default"`
}

// Metadata holds standard object metadata
type Metadata struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// TaskSpec is the raw declaration of a single task before variable
// substitution. Deps and Commands keep their declaration order; that
// order is significant for planning.
type TaskSpec struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Deps        []string `yaml:"deps" json:"deps"`
	Commands    []string `yaml:"commands" json:"commands"`
	WorkDir     string   `yaml:"workdir,omitempty" json:"workdir,omitempty"`
}
