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

// Cache stores fallback-computed names shared by many resolvers.
// Implementations must be safe for concurrent Load and Offer calls.
type Cache interface {
	// Load returns the cached name for (enum, value), if present.
	Load(enum string, value uint64) (name string, ok bool)
	// Offer proposes a name for (enum, value). It reports whether the entry
	// was accepted; a full cache silently declines.
	Offer(enum string, value uint64, name string) bool
	// Len returns the number of stored entries.
	Len() int
	// Cap returns the configured maximum number of entries.
	Cap() int
}
