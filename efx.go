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

package efx

import (
	"errors"
	"reflect"
	"strconv"
	"sync"
	"sync/atomic"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/builder"
	"dirpx.dev/efx/config"
	uref "dirpx.dev/efx/utils/reflect"
)

// init initializes the global efx state.
func init() {
	// Initialize state with default cfg, cache and reg.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.cache = b.BuildCache(s.cfg, nil)
	s.reg = b.BuildRegistry(s.cfg, nil, s.cache)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("efx: builder returned nil registry")
	// ErrNilCache is returned when a builder returns a nil cache.
	ErrNilCache = errors.New("efx: builder returned nil cache")
)

// Integer is the set of types an enumeration can be declared on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Resolve returns the name of value for the enumeration registered as name.
//
// value is the enumeration value widened to uint64, sign-extended for signed
// types. A registered enumeration formats undeclared values with its own
// signedness. An unknown name carries no type information, so value prints
// as an unsigned decimal: Resolve("x.Unknown", uint64(int64(-3))) returns
// "18446744073709551613" where Of would return "-3". Use Of when the Go type
// is at hand.
func Resolve(name string, value uint64) string {
	if res, ok := st.Load().reg.Lookup(name); ok {
		return res.Resolve(value)
	}
	return strconv.FormatUint(value, 10)
}

// Of returns the canonical name of v. E must have been registered with
// Define (or Register under the same type key); otherwise v prints as a
// decimal number.
func Of[E Integer](v E) string {
	info, err := typeInfo(reflect.TypeFor[E]())
	if err == nil {
		if res, ok := st.Load().reg.Lookup(info.Name); ok {
			return res.Resolve(uint64(v))
		}
	}
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// Member widens a typed constant into an apis.Member.
func Member[E Integer](name string, v E) apis.Member {
	return apis.Member{Name: name, Value: uint64(v)}
}

// Define registers the enumeration E with the given members, listed in
// declaration order. The descriptor name, signedness and width come from E.
func Define[E Integer](isFlags bool, members ...apis.Member) error {
	info, err := typeInfo(reflect.TypeFor[E]())
	if err != nil {
		return err
	}
	return Register(apis.Descriptor{
		Name:    info.Name,
		Members: members,
		Flags:   isFlags,
		Wide:    info.Wide,
		Signed:  info.Signed,
	})
}

// Register builds a resolver for d with the current builder, config and
// cache, and adds it to the global registry.
func Register(d apis.Descriptor) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	s := st.Load()
	res, err := s.bld.BuildResolver(s.cfg, d, s.cache)
	if err != nil {
		return err
	}
	return s.reg.Register(res)
}

// typeInfos memoizes uref.Inspect per type.
var typeInfos sync.Map // map[reflect.Type]uref.Info

func typeInfo(t reflect.Type) (uref.Info, error) {
	if v, ok := typeInfos.Load(t); ok {
		return v.(uref.Info), nil
	}
	info, err := uref.Inspect(t)
	if err != nil {
		return uref.Info{}, err
	}
	typeInfos.Store(t, info)
	return info, nil
}

// SetAll explicitly sets all global efx state components.
//
// Nil arguments leave the corresponding component unchanged, except that a
// nil reg rebuilds the registry from the previous one and unpins it.
// This is mainly used by tests to get a clean deterministic state.
func SetAll(cfg *apis.Config, c apis.Cache, reg apis.Registry, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	nc := c
	if nc == nil {
		nc = nbld.BuildCache(ncfg, old.cache)
	}

	nreg := reg
	npreg := true
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, nc)
		npreg = false
	}

	publish(&state{cfg: ncfg, cache: nc, reg: nreg, bld: nbld, preg: npreg})
}

// Config returns the global efx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds the cache and the
// (unpinned) registry so every resolver re-selects its lookup under cfg.
//
// While the registry is pinned the cache is kept as well, since the pinned
// resolvers write to it; a new MaxCacheEntries takes effect on the first
// rebuild after UnpinRegistry.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	b := old.bld

	nc := old.cache
	nreg := old.reg
	if !old.preg {
		nc = b.BuildCache(cfg, old.cache)
		nreg = b.BuildRegistry(cfg, old.reg, nc)
	}

	publish(&state{cfg: cfg, cache: nc, reg: nreg, bld: b, preg: old.preg})
}

// Cache returns the global fallback cache.
func Cache() apis.Cache {
	return st.Load().cache
}

// SetCache replaces the global fallback cache and rebuilds the unpinned
// registry so resolvers write to the new cache. A pinned registry is not
// rebuilt: its resolvers keep the cache they were built with, so Cache().Len()
// no longer counts their fallbacks.
func SetCache(c apis.Cache) {
	if c == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nreg := old.reg
	if !old.preg {
		nreg = old.bld.BuildRegistry(old.cfg, old.reg, c)
	}

	publish(&state{cfg: old.cfg, cache: c, reg: nreg, bld: old.bld, preg: old.preg})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global registry to reg and pins it: further config,
// cache or builder changes will not rebuild it until UnpinRegistry.
// SetConfig and SetBuilder also keep the current cache while pinned, so the
// cache returned by Cache stays the one the pinned resolvers write to unless
// SetCache replaces it explicitly.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, cache: old.cache, reg: reg, bld: old.bld, preg: true})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds the cache and the
// registry with it. Both are kept while the registry is pinned.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nc := old.cache
	nreg := old.reg
	if !old.preg {
		nc = b.BuildCache(old.cfg, old.cache)
		nreg = b.BuildRegistry(old.cfg, old.reg, nc)
	}

	publish(&state{cfg: old.cfg, cache: nc, reg: nreg, bld: b, preg: old.preg})
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops automatic rebuilds of the global registry.
func PinRegistry() {
	setPinned(true)
}

// UnpinRegistry allows automatic rebuilds of the global registry again.
func UnpinRegistry() {
	setPinned(false)
}

func setPinned(pinned bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, cache: old.cache, reg: old.reg, bld: old.bld, preg: pinned})
}

// publish validates s and stores it. Callers must hold buildMu.
func publish(s *state) {
	// Ensure non-nil reg and cache.
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.cache == nil {
		panic(ErrNilCache)
	}
	st.Store(s)
}

// buildMu serializes writers (reconfigurations/swaps/registrations) so we
// never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global efx state.
var st atomic.Pointer[state]

// state is the global efx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// cache is the shared fallback cache.
	cache apis.Cache
	// reg is the global registry.
	reg apis.Registry
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether the reg is pinned.
	preg bool
}
