package domain

// PillarParser turns a textual chart notation into FourPillars.
type PillarParser interface {
	Parse(input string, n Notation) (FourPillars, error)
}

// ConfigLoader loads project configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (ProjectConfig, error)
}
