package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"todoList/internal/validator"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvMaxProjects    = "MAX_NUMBER_OF_PROJECT"
	EnvMaxTasks       = "MAX_NUMBER_OF_TASK"
	EnvLogDevelopment = "TODOLIST_LOG_DEVELOPMENT"
	EnvLogLevel       = "TODOLIST_LOG_LEVEL"

	DotenvFile = ".env"
)

type Config struct {
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
}

type LimitsConfig struct {
	MaxProjects int `yaml:"max_projects"`
	MaxTasks    int `yaml:"max_tasks"`
}

type LoggingConfig struct {
	Development bool   `yaml:"development"`
	Level       string `yaml:"level"`
	OutputPath  string `yaml:"output_path"`
}

func Default() *Config {
	limits := validator.DefaultLimits()
	return &Config{
		Limits: LimitsConfig{
			MaxProjects: limits.MaxProjects,
			MaxTasks:    limits.MaxTasks,
		},
		Logging: LoggingConfig{
			Level:      "warn",
			OutputPath: "stderr",
		},
	}
}

// Load is LoadWithDotenv with the .env file of the working directory.
func Load(path string) (*Config, error) {
	return LoadWithDotenv(path, DotenvFile)
}

// LoadWithDotenv builds the config from defaults, then the YAML file at path,
// then the environment. Variables missing from the process environment are
// looked up in the dotenv file. Missing files are skipped. Limits that end up
// malformed or below 1 fall back to the defaults.
func LoadWithDotenv(path, dotenvPath string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	dotenv, err := readDotenv(dotenvPath)
	if err != nil {
		return nil, err
	}

	cfg.loadEnv(dotenv)
	cfg.sanitize()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// readDotenv parses the file without touching the process environment.
func readDotenv(path string) (gotenv.Env, error) {
	if path == "" {
		return gotenv.Env{}, nil
	}
	env, err := gotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return gotenv.Env{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return env, nil
}

func (c *Config) loadEnv(dotenv gotenv.Env) {
	v := viper.New()
	keys := map[string]string{
		"max_projects":    EnvMaxProjects,
		"max_tasks":       EnvMaxTasks,
		"log_development": EnvLogDevelopment,
		"log_level":       EnvLogLevel,
	}
	for key, env := range keys {
		_ = v.BindEnv(key, env)
	}
	lookup := func(key string) string {
		if raw := v.GetString(key); raw != "" {
			return raw
		}
		return dotenv[keys[key]]
	}

	if n, ok := parseLimit(lookup("max_projects")); ok {
		c.Limits.MaxProjects = n
	}
	if n, ok := parseLimit(lookup("max_tasks")); ok {
		c.Limits.MaxTasks = n
	}
	if raw := lookup("log_development"); raw != "" {
		if dev, err := cast.ToBoolE(raw); err == nil {
			c.Logging.Development = dev
		}
	}
	if level := lookup("log_level"); level != "" {
		c.Logging.Level = level
	}
}

// parseLimit accepts a base 10 integer, surrounding spaces allowed, above 0.
func parseLimit(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func (c *Config) sanitize() {
	def := validator.DefaultLimits()
	if c.Limits.MaxProjects < 1 {
		c.Limits.MaxProjects = def.MaxProjects
	}
	if c.Limits.MaxTasks < 1 {
		c.Limits.MaxTasks = def.MaxTasks
	}
}
