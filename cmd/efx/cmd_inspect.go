/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/builder"
	"dirpx.dev/efx/source"
)

// inspection is one row of the inspect report.
type inspection struct {
	Name      string    `yaml:"name"`
	Flags     bool      `yaml:"flags"`
	Members   int       `yaml:"members"`
	Kind      apis.Kind `yaml:"kind"`
	TableSize int       `yaml:"table_size"`
}

func newInspectCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect [patterns...]",
		Short: "Show the lookup strategy chosen for each enumeration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			descs, err := source.Load(cmd.Context(), opts.dir, args...)
			if err != nil {
				return err
			}

			rows, err := inspect(opts.cfg, descs)
			if err != nil {
				return err
			}

			switch output {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()
				return enc.Encode(rows)
			case "text":
				return writeTable(cmd.OutOrStdout(), rows)
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or yaml")
	return cmd
}

func inspect(cfg apis.Config, descs []apis.Descriptor) ([]inspection, error) {
	b := builder.New()
	c := b.BuildCache(cfg, nil)

	rows := make([]inspection, 0, len(descs))
	for _, d := range descs {
		res, err := b.BuildResolver(cfg, d, c)
		if err != nil {
			return nil, err
		}
		nd := res.Descriptor()
		rows = append(rows, inspection{
			Name:      nd.Name,
			Flags:     nd.Flags,
			Members:   len(nd.Members),
			Kind:      res.Lookup().Kind(),
			TableSize: res.Lookup().Len(),
		})
	}
	return rows, nil
}

// writeTable renders rows as aligned columns.
func writeTable(w io.Writer, rows []inspection) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFLAGS\tMEMBERS\tKIND\tTABLE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%s\t%d\n", r.Name, r.Flags, r.Members, r.Kind, r.TableSize)
	}
	return tw.Flush()
}
