// Package config loads the optional .pathy.yml project configuration.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andyballingall/pathy"
	"github.com/andyballingall/pathy/internal/fs"
	"github.com/andyballingall/pathy/internal/validator"
)

const (
	// ConfigFile is the name of the project configuration file.
	ConfigFile = ".pathy.yml"
	// ConfigEnvVar names an explicit configuration file, overriding discovery.
	ConfigEnvVar = "PATHY_CONFIG"
	// SchemaID is the $id of the embedded configuration schema.
	SchemaID = "https://pathy.dev/schemas/config.schema.json"
)

//go:embed config.schema.json
var schemaJSON []byte

const DefaultConfigContent = `# pathy configuration

# MARKERS
#
# Wildcards identifying the root of a project. 'pathy project-root' walks up
# from the working directory and stops at the first directory directly
# containing a file matching any of them. * and ? are supported and case is
# ignored.
markers:
  - go.mod
  - "*.sln"
  - package.json
  - .pathy.yml

# PATTERNS
#
# Glob patterns used by 'pathy glob' when none are given. ** matches any
# number of directories.
patterns:
  - "**/*"

# FORMAT
#
# Default output format: text or json.
format: text

# DEBOUNCE
#
# How long 'pathy glob --watch' waits for changes to settle before re-running
# the patterns.
debounce: 100ms
`

const (
	defaultFormat   = "text"
	defaultDebounce = 100 * time.Millisecond
)

func defaultMarkers() []string {
	return []string{"go.mod", "*.sln", "package.json", ConfigFile}
}

func defaultPatterns() []string {
	return []string{"**/*"}
}

// Config is the decoded contents of a .pathy.yml file.
type Config struct {
	Markers  []string `yaml:"markers"`
	Patterns []string `yaml:"patterns"`
	Format   string   `yaml:"format"`
	Debounce string   `yaml:"debounce"`

	path     pathy.ChainablePath
	debounce time.Duration
}

// Default returns the configuration used when no .pathy.yml is found.
func Default() *Config {
	c := &Config{path: pathy.Null}
	c.applyDefaults()
	return c
}

// Path returns the file the configuration was loaded from, or Null for the
// built-in defaults.
func (c *Config) Path() pathy.ChainablePath {
	return c.path
}

// Dir returns the directory containing the configuration file, or Null.
func (c *Config) Dir() pathy.ChainablePath {
	if c.path.IsNull() || c.path.IsEmpty() {
		return pathy.Null
	}
	return c.path.Parent()
}

// DebounceInterval returns the parsed debounce duration.
func (c *Config) DebounceInterval() time.Duration {
	return c.debounce
}

func (c *Config) applyDefaults() {
	if len(c.Markers) == 0 {
		c.Markers = defaultMarkers()
	}
	if len(c.Patterns) == 0 {
		c.Patterns = defaultPatterns()
	}
	if c.Format == "" {
		c.Format = defaultFormat
	}
	if c.Debounce == "" {
		c.Debounce = defaultDebounce.String()
		c.debounce = defaultDebounce
	}
}

// Load reads, validates and decodes the configuration file at path. Relative
// paths are resolved against the locator's environment.
func Load(l *pathy.Locator, path pathy.ChainablePath, compiler validator.Compiler) (*Config, error) {
	abs, err := path.ToAbsoluteOf(l.Environment())
	if err != nil {
		return nil, err
	}
	if !l.IsFile(abs) {
		return nil, &MissingConfigError{Path: abs.String()}
	}

	data, err := os.ReadFile(abs.String())
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", abs, err)
	}

	if vErr := validate(abs, data, compiler); vErr != nil {
		return nil, vErr
	}

	cfg := &Config{path: abs}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, &InvalidYAMLError{Path: abs.String(), Wrapped: err}
	}
	if cfg.Debounce != "" {
		d, dErr := time.ParseDuration(cfg.Debounce)
		if dErr != nil {
			return nil, &InvalidDebounceError{Value: cfg.Debounce, Wrapped: dErr}
		}
		cfg.debounce = d
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Discover finds the configuration for a command started in start. An explicit
// path wins, then the PATHY_CONFIG environment variable, then the closest
// .pathy.yml at or above start. Built-in defaults are returned when none of
// these yield a file.
func Discover(
	l *pathy.Locator,
	env fs.EnvProvider,
	start pathy.ChainablePath,
	explicit string,
	compiler validator.Compiler,
) (*Config, error) {
	if explicit == "" {
		explicit = env.Get(ConfigEnvVar)
	}
	if explicit != "" {
		p, err := pathy.From(explicit)
		if err != nil {
			return nil, err
		}
		return Load(l, p, compiler)
	}

	dir, err := l.FindParentWithFileMatching(start, ConfigFile)
	if err != nil {
		return nil, err
	}
	if dir.IsNull() {
		return Default(), nil
	}
	file, err := l.ResolveFile(dir, ConfigFile)
	if err != nil {
		return nil, err
	}
	return Load(l, file, compiler)
}

// WriteDefault creates a .pathy.yml containing DefaultConfigContent in dir and
// returns its path.
func WriteDefault(l *pathy.Locator, dir pathy.ChainablePath) (pathy.ChainablePath, error) {
	abs, err := dir.ToAbsoluteOf(l.Environment())
	if err != nil {
		return pathy.Empty, err
	}
	target := abs.Chain(ConfigFile)
	if l.Exists(target) {
		return pathy.Empty, &ExistsError{Path: target.String()}
	}
	if err = l.CreateDirectoryRecursively(abs); err != nil {
		return pathy.Empty, err
	}
	if err = os.WriteFile(target.String(), []byte(DefaultConfigContent), 0o600); err != nil {
		return pathy.Empty, fmt.Errorf("cannot write %s: %w", target, err)
	}
	return target, nil
}

func validate(path pathy.ChainablePath, data []byte, compiler validator.Compiler) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &InvalidYAMLError{Path: path.String(), Wrapped: err}
	}
	if raw == nil {
		raw = map[string]any{}
	}

	v, err := compileSchema(compiler)
	if err != nil {
		return err
	}
	doc, err := validator.ToDocument(raw)
	if err != nil {
		return &InvalidYAMLError{Path: path.String(), Wrapped: err}
	}
	if err = v.Validate(doc); err != nil {
		return &InvalidConfigError{Path: path.String(), Wrapped: err}
	}
	return nil
}

func compileSchema(compiler validator.Compiler) (validator.Validator, error) {
	if v, err := compiler.Compile(SchemaID); err == nil {
		return v, nil
	}

	doc, err := validator.ParseJSON(schemaJSON)
	if err != nil {
		return nil, &SchemaError{Wrapped: err}
	}
	if err = compiler.AddSchema(SchemaID, doc); err != nil {
		return nil, &SchemaError{Wrapped: err}
	}
	v, err := compiler.Compile(SchemaID)
	if err != nil {
		return nil, &SchemaError{Wrapped: err}
	}
	return v, nil
}
