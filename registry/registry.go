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

package registry

import (
	"errors"
	"sync"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/descriptor"
)

var (
	// ErrNilResolver is returned when a nil resolver is provided.
	ErrNilResolver = errors.New("efx(registry): nil resolver provided")
	// ErrEmptyName is returned when the resolver's descriptor has no name.
	ErrEmptyName = errors.New("efx(registry): empty enum name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// an enum name with a different descriptor.
	ErrConflictingRegistration = errors.New("efx(registry): conflicting enum registration")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps enum name to its resolver.
	m sync.Map // map[string]apis.Resolver
	// count tracks the number of registered entries.
	count int
}

// Register stores res under its descriptor name.
// It is idempotent for an equivalent descriptor.
func (r *registry) Register(res apis.Resolver) error {
	// Validate inputs early.
	if res == nil {
		return ErrNilResolver
	}
	d := res.Descriptor()
	if d.Name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(d.Name); ok {
		return sameOrConflict(old.(apis.Resolver), d)
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(d.Name); ok {
		return sameOrConflict(old.(apis.Resolver), d)
	}

	r.m.Store(d.Name, res)
	r.count++
	return nil
}

func sameOrConflict(old apis.Resolver, d apis.Descriptor) error {
	if descriptor.Equal(old.Descriptor(), d) {
		return nil // idempotent re-registration
	}
	return ErrConflictingRegistration
}

// Lookup returns the resolver registered for name.
func (r *registry) Lookup(name string) (apis.Resolver, bool) {
	if v, ok := r.m.Load(name); ok {
		return v.(apis.Resolver), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Name:     key.(string),
			Resolver: value.(apis.Resolver),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
