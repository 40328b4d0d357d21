package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfigYAML []byte

// Default returns the built-in configuration, mirroring the stock
// citation-page defaults of the host platform.
func Default() *Config {
	var c Config
	if err := yaml.Unmarshal(defaultConfigYAML, &c); err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return &c
}

// Load builds the effective configuration: embedded defaults, then the
// optional YAML file at path, then environment overrides. The result
// is validated and normalized; callers treat it as immutable.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parsing environment overrides: %w", err)
	}

	normalize(c)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func normalize(c *Config) {
	if c.Renderer == "" {
		c.Renderer = RendererDraw
	}
	if c.Label == "" {
		c.Label = "Citation Page"
	}
	if c.AuthorEllipsis == "" {
		c.AuthorEllipsis = "et al."
	}
	switch c.PageFormat {
	case "", PageFormatLetter:
		c.PageFormat = PageFormatLetter
	case PageFormatA4:
	default:
		slog.Warn("unknown page format, using LETTER", "page_format", c.PageFormat)
		c.PageFormat = PageFormatLetter
	}
	if len(c.Styles) == 0 {
		c.Styles = []string{"apa"}
	}
}
