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

// Config carries read-only knobs that influence strategy selection and caching.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// ArrayLookupThreshold is the largest value range that is still
	// materialized as a direct-indexed array.
	ArrayLookupThreshold uint64

	// MaxSparsePercent bounds the fraction (in percent of the member count)
	// of unused slots a gap-filled array may carry before a dictionary is
	// preferred.
	MaxSparsePercent uint64

	// MaxCacheEntries caps the growth of the shared fallback cache.
	// The cap is approximate under concurrent inserts.
	MaxCacheEntries int
}
