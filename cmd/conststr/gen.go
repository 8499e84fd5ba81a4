package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tsatke/conststr/internal/gen"
	"github.com/tsatke/conststr/internal/manifest"
)

func newGenCmd(fs afero.Fs) *cobra.Command {
	var (
		manifestPath string
		outputPath   string
		headerPath   string
		importPath   string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go declarations from a manifest",
		Long: `Generate Go declarations from a manifest.

Typically invoked from a go:generate directive:

	//go:generate conststr gen -f constants.yaml -o zz_generated_conststr.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(fs, manifestPath)
			if err != nil {
				return err
			}
			log.Debugf("loaded %s: package %s, %d constants, %d bounded", manifestPath, m.Package, len(m.Constants), len(m.Bounded))

			opts := []gen.Option{
				gen.WithFs(fs),
				gen.WithImportPath(importPath),
			}
			if headerPath != "" {
				header, err := afero.ReadFile(fs, headerPath)
				if err != nil {
					return err
				}
				opts = append(opts, gen.WithHeader(strings.TrimSpace(string(header))))
			}

			if err := gen.New(opts...).WriteFile(m, outputPath); err != nil {
				return err
			}
			log.Infof("wrote %s", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "constants.yaml", "Manifest to generate from (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "zz_generated_conststr.go", "Go file to write")
	cmd.Flags().StringVar(&headerPath, "header", "", "File whose content is placed at the top of the generated file")
	cmd.Flags().StringVar(&importPath, "import-path", gen.DefaultImportPath, "Import path of the conststr package")

	return cmd
}
