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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/builder"
	"dirpx.dev/efx/source"
)

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <pattern> <Type> <value>...",
		Short: "Print the canonical names of values of an enumeration",
		Long: "Resolve loads <pattern>, finds the enumeration <Type> (bare or fully\n" +
			"qualified name) and prints one line per value. Put -- before negative values.",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			descs, err := source.Load(cmd.Context(), opts.dir, args[0])
			if err != nil {
				return err
			}
			d, err := findDescriptor(descs, args[1])
			if err != nil {
				return err
			}

			b := builder.New()
			res, err := b.BuildResolver(opts.cfg, d, b.BuildCache(opts.cfg, nil))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, raw := range args[2:] {
				v, err := parseValue(raw, d.Signed)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", raw, res.Resolve(v))
			}
			return nil
		},
	}
}

// findDescriptor matches either the full "path.Type" name or the bare type name.
func findDescriptor(descs []apis.Descriptor, typ string) (apis.Descriptor, error) {
	var found []apis.Descriptor
	for _, d := range descs {
		if d.Name == typ || strings.HasSuffix(d.Name, "."+typ) {
			found = append(found, d)
		}
	}
	switch len(found) {
	case 0:
		return apis.Descriptor{}, fmt.Errorf("enumeration %q not found", typ)
	case 1:
		return found[0], nil
	default:
		return apis.Descriptor{}, fmt.Errorf("enumeration %q is ambiguous (%d matches)", typ, len(found))
	}
}

// parseValue accepts decimal, hex (0x), octal (0o) and binary (0b) literals.
func parseValue(raw string, signed bool) (uint64, error) {
	if signed {
		i, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid value %q: %w", raw, err)
		}
		return uint64(i), nil
	}
	u, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	return u, nil
}
