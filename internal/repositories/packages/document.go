package packages

// document is the on-disk layout of a package file
type document struct {
	Name     string            `yaml:"name"`
	Skills   []skillDocument   `yaml:"skills"`
	Generals []generalDocument `yaml:"generals"`
}

// skillDocument defines a skill. A skill with events is a trigger skill.
type skillDocument struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Hidden      bool     `yaml:"hidden"`
	Events      []string `yaml:"events"`
	Priority    int      `yaml:"priority"`
}

// generalDocument defines a general. Name may carry the lord marker.
type generalDocument struct {
	Name       string   `yaml:"name"`
	Kingdom    string   `yaml:"kingdom"`
	HP         int      `yaml:"hp"`
	Gender     string   `yaml:"gender"`
	Hidden     bool     `yaml:"hidden"`
	NeverShown bool     `yaml:"never_shown"`
	Skills     []string `yaml:"skills"`
	References []string `yaml:"references"`
	Related    []string `yaml:"related"`
}
