package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds skslc.toml settings. Command-line flags override the file.
//
//	[output]
//	dialect = "metal"   # or "glsl"
//	entry = "main"
type config struct {
	Output outputConfig `toml:"output"`
}

type outputConfig struct {
	Dialect string `toml:"dialect"`
	Entry   string `toml:"entry"`
}

// loadConfig reads the config file at path, or, when path is empty, the
// skslc.toml next to the input file if one exists. A missing implicit config
// is not an error.
func loadConfig(path, inputPath string) (config, error) {
	var cfg config
	implicit := false
	if path == "" {
		path = filepath.Join(filepath.Dir(inputPath), "skslc.toml")
		implicit = true
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if implicit && os.IsNotExist(err) {
			return config{}, nil
		}
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
