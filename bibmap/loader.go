package bibmap

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed profiles/dublincore.yaml
var defaultProfileYAML []byte

// Default returns the embedded Dublin Core citation profile.
func Default() *Profile {
	p, err := parseProfile(defaultProfileYAML)
	if err != nil {
		// The embedded profile is part of the build; a parse failure
		// is a packaging defect, not a runtime condition.
		panic(fmt.Sprintf("embedded citation profile is invalid: %v", err))
	}
	return p
}

// Load reads a citation profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading citation profile: %w", err)
	}
	p, err := parseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func parseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing citation profile YAML: %w", err)
	}
	if len(p.Fields) == 0 {
		return nil, fmt.Errorf("citation profile has no field mappings")
	}
	// Type keys are normalized once at load so request-time lookups
	// stay a plain map access.
	if len(p.Types) > 0 {
		normalized := make(map[string]string, len(p.Types))
		for k, v := range p.Types {
			normalized[NormalizeType(k)] = v
		}
		p.Types = normalized
	}
	return &p, nil
}
