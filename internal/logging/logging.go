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

// Package logging configures log/slog for the efx command and hands out
// component-scoped loggers to the library packages (cache, builder, source).
//
// Library packages only ever call New; the handler is installed by the
// binary through Setup. Until then records go to the slog default.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Component names used across efx.
const (
	ComponentCache   = "cache"
	ComponentBuilder = "builder"
	ComponentSource  = "source"
	ComponentCLI     = "cli"
)

// Options selects the handler installed by Setup.
type Options struct {
	// Level is the minimum record level.
	Level slog.Level
	// Format is "text" (also the empty string) or "json".
	Format string
	// Output receives the records; nil means os.Stderr.
	Output io.Writer
}

// Setup installs the efx handler as the slog default. Every record carries
// an "app=efx" attribute. An unknown format is an error and leaves the
// current default untouched.
func Setup(o Options) error {
	out := o.Output
	if out == nil {
		out = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: o.Level}

	var h slog.Handler
	switch strings.ToLower(o.Format) {
	case "", "text":
		h = slog.NewTextHandler(out, ho)
	case "json":
		h = slog.NewJSONHandler(out, ho)
	default:
		return fmt.Errorf("logging: unknown format %q", o.Format)
	}
	slog.SetDefault(slog.New(h).With(slog.String("app", "efx")))
	return nil
}

// New returns the default logger tagged with component.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}
