package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenPeeDeeP/xdg"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/imdario/mergo"
	"github.com/joho/godotenv"
	"github.com/loopcontext/fehtpl"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"gopkg.in/yaml.v2"
)

// Environment variables applied over the config file.
const (
	EnvDataDir    = "FEHTPL_DATA_DIR"
	EnvOut        = "FEHTPL_OUT"
	EnvCollisions = "FEHTPL_COLLISIONS"
	EnvIndent     = "FEHTPL_INDENT"
)

// Config holds the settings of a fehtpl run.
type Config struct {
	DataDir    string                 `yaml:"data_dir" toml:"data_dir" default:"data" validate:"required"`
	Out        string                 `yaml:"out" toml:"out" default:"lang/template.json" validate:"required"`
	Structured bool                   `yaml:"structured" toml:"structured"`
	Collisions fehtpl.CollisionPolicy `yaml:"collisions" toml:"collisions" default:"warn" validate:"oneof=warn fail"`
	Atomic     bool                   `yaml:"atomic" toml:"atomic"`
	Indent     Indent                 `yaml:"indent" toml:"-" default:"4"`
	LogFile    string                 `yaml:"log_file" toml:"log_file"`
}

// Candidates are looked up in the working directory when no file is named.
var Candidates = []string{"fehtpl.yaml", "fehtpl.yml", "fehtpl.toml"}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic("failed to set config defaults: " + err.Error())
	}
	return cfg
}

// Find returns the first config file that exists: the working directory candidates,
// then the user config directory. Empty when there is none.
func Find() string {
	if path, ok := lo.Find(Candidates, fileExists); ok {
		return path
	}
	user := xdg.New("loopcontext", "fehtpl")
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		if path := user.QueryConfig(name); path != "" {
			return path
		}
	}
	return ""
}

// Load builds the configuration from defaults, the config file at path (or the one Find
// returns when path is empty), an optional .env file and FEHTPL_* variables.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = Find()
	} else {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, "", err
		}
		path = expanded
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, "", err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, "", err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func (c *Config) readFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := c.decodeTOML(content); err != nil {
			return fmt.Errorf("parse config TOML %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("parse config YAML %s: %w", path, err)
	}
	return nil
}

// decodeTOML reads indent separately since TOML gives it as int64 or string.
func (c *Config) decodeTOML(content []byte) error {
	raw := struct {
		Config
		Indent interface{} `toml:"indent"`
	}{Config: *c}
	if err := toml.Unmarshal(content, &raw); err != nil {
		return err
	}
	*c = raw.Config
	if raw.Indent != nil {
		indent, err := ParseIndent(raw.Indent)
		if err != nil {
			return err
		}
		c.Indent = indent
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvOut); v != "" {
		c.Out = v
	}
	if v := os.Getenv(EnvCollisions); v != "" {
		c.Collisions = fehtpl.CollisionPolicy(v)
	}
	if v := os.Getenv(EnvIndent); v != "" {
		c.Indent = Indent(v)
	}
	return nil
}

// Override layers the non-zero fields of flags over c. Zero values cannot unset a
// setting from the file: a false flag never turns off structured or atomic.
func (c *Config) Override(flags Config) error {
	if err := mergo.Merge(c, flags, mergo.WithOverride); err != nil {
		return err
	}
	return c.Finalize()
}

// Finalize expands ~ in paths and validates the result.
func (c *Config) Finalize() error {
	var err error
	for _, p := range []*string{&c.DataDir, &c.Out, &c.LogFile} {
		if *p == "" {
			continue
		}
		if *p, err = homedir.Expand(*p); err != nil {
			return err
		}
	}
	if c.Indent != "" {
		if _, err := ParseIndent(string(c.Indent)); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return Validate(c)
}

func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
