package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tsatke/conststr"
	"github.com/tsatke/conststr/internal/manifest"
	"gopkg.in/yaml.v3"
)

// componentsDocument is the part of an OpenAPI document that holds
// reusable schemas.
type componentsDocument struct {
	Components struct {
		Schemas map[string]conststr.Schema `json:"schemas" yaml:"schemas"`
	} `json:"components" yaml:"components"`
}

func newSchemaCmd(fs afero.Fs) *cobra.Command {
	var (
		manifestPath string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI schemas of the types declared in a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(fs, manifestPath)
			if err != nil {
				return err
			}

			doc := buildComponents(m)
			log.Debugf("built %d schemas", len(doc.Components.Schemas))

			var out []byte
			switch format {
			case "yaml":
				out, err = yaml.Marshal(doc)
			case "json":
				out, err = json.MarshalIndent(doc, "", "  ")
				out = append(out, '\n')
			default:
				return errors.Errorf("unknown format %q, must be yaml or json", format)
			}
			if err != nil {
				return errors.Wrap(err, "marshal schemas")
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "constants.yaml", "Manifest to describe (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format, yaml or json")

	return cmd
}

func buildComponents(m *manifest.Manifest) componentsDocument {
	var doc componentsDocument
	doc.Components.Schemas = make(map[string]conststr.Schema)
	for _, c := range m.Constants {
		doc.Components.Schemas[c.Name] = conststr.LiteralSchema(c.Value).WithDescription(description(c.Doc))
	}
	for _, b := range m.Bounded {
		doc.Components.Schemas[b.Name] = conststr.CapacitySchema(b.Capacity).WithDescription(description(b.Doc))
	}
	return doc
}

func description(doc string) string {
	return strings.Join(strings.Fields(doc), " ")
}
