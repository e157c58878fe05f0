package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/msft-mirror-aosp/platform.tools.metalava-sub008/model"
)

// config holds the optional apisig.toml settings. All fields default
// to off: no nullability suffixes, no annotations, every package kept
// as the input document marked it.
type config struct {
	KotlinStyleNulls bool     `toml:"kotlin_style_nulls"`
	TypeAnnotations  bool     `toml:"type_annotations"`
	APIPackages      []string `toml:"api_packages"`
}

func loadConfig(path string) (*config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *config) typeStringOptions() []model.TypeStringOption {
	var opts []model.TypeStringOption
	if c.KotlinStyleNulls {
		opts = append(opts, model.WithKotlinStyleNulls())
	}
	if c.TypeAnnotations {
		opts = append(opts, model.WithTypeAnnotations())
	}
	return opts
}

// packageFilter compiles the configured api_packages patterns, or
// returns nil when none are set.
func (c *config) packageFilter() (*model.PackageFilter, error) {
	if len(c.APIPackages) == 0 {
		return nil, nil
	}
	return model.NewPackageFilter(c.APIPackages...)
}
