package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	"acss/atomizer"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	SourcesConfig struct {
		Extensions []string `yaml:"extensions" validate:"required,dive,startswith=."`
		Mode       ScanMode `yaml:"mode" validate:"gte=0"`
		Attributes []string `yaml:"attributes" validate:"dive,required"`
		MaxSize    string   `yaml:"max_size" validate:"required"`
	}

	OutputConfig struct {
		Name      string `yaml:"name" validate:"required"`
		Minify    bool   `yaml:"minify"`
		Overwrite bool   `yaml:"overwrite"`
	}

	Config struct {
		Version   int                 `yaml:"version" validate:"eq=1"`
		Atomizer  atomizer.Config     `yaml:"atomizer"`
		CSS       atomizer.CSSOptions `yaml:"css"`
		RulesPath string              `yaml:"rules_path" sanitize:"assure_file_access"`
		Sources   SourcesConfig       `yaml:"sources"`
		Output    OutputConfig        `yaml:"output"`
		Verbose   bool                `yaml:"verbose"`
		Logging   LoggingConfig       `yaml:"logging"`
		Reporting ReporterConfig      `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	BannerFieldName TemplateFieldName = "banner"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(BannerFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
		if err := cfg.check(); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// MaxSourceSize returns sources.max_size in bytes.
func (c *Config) MaxSourceSize() int64 {
	n, err := humanize.ParseBytes(c.Sources.MaxSize)
	if err != nil || n == 0 {
		return 0
	}
	return int64(n)
}

// check covers what validation tags cannot express.
func (c *Config) check() error {
	for _, bp := range c.Atomizer.BreakPoints {
		if !strings.HasPrefix(bp.Query, "@media") {
			return &atomizer.BreakpointError{Name: bp.Name, Query: bp.Query}
		}
	}
	if _, err := humanize.ParseBytes(c.Sources.MaxSize); err != nil {
		return fmt.Errorf("sources.max_size: %w", err)
	}
	for i, ext := range c.Sources.Extensions {
		c.Sources.Extensions[i] = strings.ToLower(ext)
	}
	for i, attr := range c.Sources.Attributes {
		// markup lexer reports attribute names in lower case
		c.Sources.Attributes[i] = strings.ToLower(attr)
	}
	slices.Sort(c.Sources.Extensions)
	c.Sources.Extensions = slices.Compact(c.Sources.Extensions)
	return nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
