package config

// NewEngineWithPath builds an Engine pointed at a config file for tests
func NewEngineWithPath(path string) *Engine {
	return &Engine{path: path}
}
