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

package resolver

import (
	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/descriptor"
	"dirpx.dev/efx/strategy"
)

// New builds the resolver for d: it normalizes the descriptor, selects the
// static lookup and chains static -> cache -> fallback strategies.
// It fails with descriptor.ErrInvalidDescriptor for malformed input.
// A nil cache disables fallback caching.
//
// The returned resolver is immutable and safe for concurrent use provided
// the cache is.
func New(d apis.Descriptor, c apis.Cache, cfg apis.Config) (apis.Resolver, error) {
	nd, err := descriptor.Normalize(d)
	if err != nil {
		return nil, err
	}

	lookup := strategy.Select(nd, cfg)
	return &chain{
		d:      nd,
		lookup: lookup,
		strats: []apis.Strategy{
			strategy.NewStaticStrategy(lookup),
			strategy.NewCacheStrategy(c, nd.Name),
			strategy.NewFallbackStrategy(nd, c),
		},
	}, nil
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	d      apis.Descriptor
	lookup apis.Lookup
	strats []apis.Strategy
}

// Ensure chain implements apis.Resolver.
var _ apis.Resolver = (*chain)(nil)

// Resolve runs strategies in order until one handles the value.
func (r *chain) Resolve(value uint64) string {
	for _, s := range r.strats {
		if name, ok := s.TryResolve(value); ok {
			return name
		}
	}
	// Unreachable: the fallback strategy handles every value.
	return strategy.Fallback(r.d, value)
}

// Descriptor returns the normalized descriptor.
func (r *chain) Descriptor() apis.Descriptor {
	return r.d
}

// Lookup returns the selected static table.
func (r *chain) Lookup() apis.Lookup {
	return r.lookup
}
