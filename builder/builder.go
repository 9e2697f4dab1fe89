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

package builder

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/cache"
	"dirpx.dev/efx/internal/logging"
	"dirpx.dev/efx/registry"
	"dirpx.dev/efx/resolver"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildCache returns prev when it already has the configured capacity,
// so entries survive unrelated config changes. Otherwise a fresh cache is built.
func (b *builder) BuildCache(cfg apis.Config, prev apis.Cache) apis.Cache {
	if prev != nil && prev.Cap() == cfg.MaxCacheEntries {
		return prev
	}
	return cache.New(cfg.MaxCacheEntries)
}

// BuildResolver builds the resolver for d.
func (b *builder) BuildResolver(cfg apis.Config, d apis.Descriptor, c apis.Cache) (apis.Resolver, error) {
	return resolver.New(d, c, cfg)
}

// BuildRegistry builds a new registry and, if prev is given, rebuilds each of
// its resolvers against cfg and c. Rebuilds run in parallel; an entry that
// fails to rebuild is logged and left out.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, c apis.Cache) apis.Registry {
	nreg := registry.New()
	if prev == nil {
		return nreg
	}

	entries := prev.Entries()
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, e := range entries {
		g.Go(func() error {
			res, err := b.BuildResolver(cfg, e.Resolver.Descriptor(), c)
			if err != nil {
				return fmt.Errorf("rebuild %s: %w", e.Name, err)
			}
			return nreg.Register(res)
		})
	}

	log := logging.New(logging.ComponentBuilder)
	if err := g.Wait(); err != nil {
		log.Warn("registry rebuild incomplete", "error", err, "kept", nreg.Count(), "total", len(entries))
	} else {
		log.Debug("registry rebuilt", "entries", len(entries))
	}
	return nreg
}
