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

package strategy

import (
	"dirpx.dev/efx/apis"
)

// NewCacheStrategy creates an apis.Strategy that consults the shared cache
// for names previously computed for enum.
func NewCacheStrategy(c apis.Cache, enum string) apis.Strategy {
	return &cacheStrategy{c: c, enum: enum}
}

// cacheStrategy is a read-only view of one enumeration's cache entries.
type cacheStrategy struct {
	c    apis.Cache
	enum string
}

// Ensure cacheStrategy implements apis.Strategy.
var _ apis.Strategy = (*cacheStrategy)(nil)

// TryResolve looks value up in the cache.
func (s *cacheStrategy) TryResolve(value uint64) (string, bool) {
	if s.c == nil {
		return "", false
	}
	return s.c.Load(s.enum, value)
}
