package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/yongjiguan/repESP/gausslog"
)

// RawConf is the on-disk shape of an optional repesp.toml next to the
// logs being processed.
type RawConf struct {
	Format string
	Scheme string
	Strict bool
}

type Config struct {
	Format string
	Scheme gausslog.ChargeScheme
	Strict bool
}

func (rc RawConf) ToConfig() Config {
	return Config{
		Format: rc.Format,
		Scheme: gausslog.ChargeScheme(rc.Scheme),
		Strict: rc.Strict,
	}
}

// LoadConfig reads a TOML config file, falling back to defaults when
// the file does not exist.
func LoadConfig(filename string) (Config, error) {
	rc := RawConf{
		Format: "json",
		Scheme: string(gausslog.Mulliken),
	}
	cont, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return rc.ToConfig(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(cont, &rc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return rc.ToConfig(), nil
}
