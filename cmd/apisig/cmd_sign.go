package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msft-mirror-aosp/platform.tools.metalava-sub008/format"
	"github.com/msft-mirror-aosp/platform.tools.metalava-sub008/model"
)

func newSignCmd() *cobra.Command {
	var configPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "sign <codebase.json>",
		Short: "Write the signature file for a codebase model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cb, err := decodeCodebaseFile(args[0])
			if err != nil {
				return err
			}

			// A configured package filter overrides the emit flags
			// carried by the document.
			filter, err := cfg.packageFilter()
			if err != nil {
				return err
			}
			if filter != nil {
				for _, pkg := range cb.Packages() {
					pkg.SetEmit(filter.Match(pkg.Name()))
				}
			}
			cb.FreezeAll()

			var out io.Writer = os.Stdout
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			sw, err := format.NewSignatureWriter(out, cfg.typeStringOptions()...)
			if err != nil {
				return err
			}
			return sw.Write(cb)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "apisig.toml", "config file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")

	return cmd
}

func decodeCodebaseFile(path string) (*model.Codebase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	cb, err := format.NewJSONDecoder(f).Decode()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cb, nil
}
