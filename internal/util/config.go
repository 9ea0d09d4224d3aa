package util

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"moss/internal/evaluator"
)

type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`

	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
	MaxEvalDepth int    `toml:"max_eval_depth"`
	Prompt       string `toml:"prompt"`
	DebugJsonAST bool   `toml:"debug_json_ast"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		LogLevel:     "error",
		MaxEvalDepth: evaluator.DefaultMaxDepth,
		Prompt:       ">> ",
	}
}

// LoadConfiguration reads a TOML file over the defaults. Keys absent from
// the file keep their default values.
func LoadConfiguration(path string) (Configuration, error) {
	cfg := DefaultConfiguration()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
