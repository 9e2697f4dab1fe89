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

package apis

// Builder composes caches, resolvers and registries from a Config.
// Implementations may migrate state from previous instances (prev), or ignore them.
type Builder interface {
	// BuildCache constructs the shared fallback cache. May reuse prev.
	BuildCache(cfg Config, prev Cache) Cache
	// BuildResolver constructs a Resolver for d backed by c.
	BuildResolver(cfg Config, d Descriptor, c Cache) (Resolver, error)
	// BuildRegistry constructs a Registry for cfg. Resolvers found in prev
	// are rebuilt from their descriptors against cfg and c.
	BuildRegistry(cfg Config, prev Registry, c Cache) Registry
}
