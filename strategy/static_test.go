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

package strategy_test

import (
	"testing"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/cache"
	"dirpx.dev/efx/strategy"
)

func TestStaticStrategy(t *testing.T) {
	tests := []struct {
		name   string
		lookup apis.Lookup
		hits   map[uint64]string
		misses []uint64
	}{
		{
			name:   "conditionals",
			lookup: apis.Conditionals{Members: []apis.Member{{Name: "A", Value: 3}, {Name: "B", Value: 70}}},
			hits:   map[uint64]string{3: "A", 70: "B"},
			misses: []uint64{0, 4, 69},
		},
		{
			name:   "array",
			lookup: apis.Array{Base: 10, Entries: []string{"X", "11", "Z"}},
			hits:   map[uint64]string{10: "X", 11: "11", 12: "Z"},
			misses: []uint64{0, 9, 13, ^uint64(0)},
		},
		{
			name:   "dictionary",
			lookup: apis.Dictionary{Entries: map[uint64]string{1: "one", 1 << 40: "big"}},
			hits:   map[uint64]string{1: "one", 1 << 40: "big"},
			misses: []uint64{0, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := strategy.NewStaticStrategy(tt.lookup)
			for v, want := range tt.hits {
				if got, ok := s.TryResolve(v); !ok || got != want {
					t.Fatalf("TryResolve(%d) = (%q,%v), want (%q,true)", v, got, ok, want)
				}
			}
			for _, v := range tt.misses {
				if got, ok := s.TryResolve(v); ok {
					t.Fatalf("TryResolve(%d) = (%q,true), want miss", v, got)
				}
			}
		})
	}
}

func TestCacheStrategy(t *testing.T) {
	c := cache.New(8)
	s := strategy.NewCacheStrategy(c, "test.E")

	if _, ok := s.TryResolve(42); ok {
		t.Fatal("TryResolve on empty cache: ok = true")
	}
	c.Offer("test.E", 42, "42")
	if got, ok := s.TryResolve(42); !ok || got != "42" {
		t.Fatalf("TryResolve(42) = (%q,%v), want (42,true)", got, ok)
	}

	if _, ok := strategy.NewCacheStrategy(nil, "test.E").TryResolve(42); ok {
		t.Fatal("nil cache must fall through")
	}
}

func TestFallbackStrategy_OffersToCache(t *testing.T) {
	c := cache.New(8)
	d := normalized(t, true, 1, 2, 4)
	s := strategy.NewFallbackStrategy(d, c)

	got, ok := s.TryResolve(6)
	if !ok || got != "M2, M4" {
		t.Fatalf("TryResolve(6) = (%q,%v), want (%q,true)", got, ok, "M2, M4")
	}
	if cached, ok := c.Load("test.E", 6); !ok || cached != "M2, M4" {
		t.Fatalf("cache Load(6) = (%q,%v), want written back", cached, ok)
	}
}

func TestFallback(t *testing.T) {
	plain := normalized(t, false, 0, 1, 2)
	if got := strategy.Fallback(plain, 1); got != "M1" {
		t.Fatalf("Fallback(1) = %q, want M1", got)
	}
	if got := strategy.Fallback(plain, 9); got != "9" {
		t.Fatalf("Fallback(9) = %q, want 9", got)
	}

	signed := plain
	signed.Signed = true
	if got := strategy.Fallback(signed, ^uint64(0)); got != "-1" {
		t.Fatalf("Fallback(-1) = %q, want -1", got)
	}

	fl := normalized(t, true, 1, 2)
	if got := strategy.Fallback(fl, 3); got != "M1, M2" {
		t.Fatalf("Fallback(3) = %q, want %q", got, "M1, M2")
	}
}
