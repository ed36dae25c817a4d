package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseConfigYAML decodes a Config from YAML source, in the shape
// Config's struct tags describe (literals/types/axioms). A config file
// that omits a section simply leaves it empty — there is no merging
// with DefaultPeanoConfig here; callers that want the defaults plus a
// few extra axioms should use Load's extraAxiomSources parameter
// instead of a custom Config.
func ParseConfigYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a Config from a YAML file on disk.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfigYAML(data)
}
