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
	"github.com/spf13/cobra"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/config"
	"dirpx.dev/efx/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// options holds the persistent flags shared by all subcommands.
type options struct {
	configPath string
	dir        string
	logLevel   string
	logFormat  string

	cfg apis.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "efx",
		Short: "Inspect and resolve Go enumeration names",
		Long: "efx loads Go packages, extracts their integer enumerations and shows\n" +
			"how each one is resolved to its canonical name.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	pf.StringVarP(&opts.dir, "dir", "C", "", "Directory to load packages from")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(newInspectCmd(opts))
	root.AddCommand(newResolveCmd(opts))
	root.Version = version
	return root
}

// setup configures logging and loads the config file, if any.
func (o *options) setup(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	if err := logging.Setup(logging.Options{
		Level:  level,
		Format: o.logFormat,
		Output: cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}

	o.cfg = config.DefaultConfig()
	if o.configPath != "" {
		cfg, err := config.LoadFile(o.configPath)
		if err != nil {
			return err
		}
		o.cfg = cfg
		logging.New(logging.ComponentCLI).Debug("loaded config", "path", o.configPath)
	}
	return nil
}
