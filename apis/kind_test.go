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

package apis_test

import (
	"testing"

	"dirpx.dev/efx/apis"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		name string
		kind apis.Kind
		want string
	}{
		{"Conditionals", apis.KindConditionals, "Conditionals"},
		{"Array", apis.KindArray, "Array"},
		{"Dictionary", apis.KindDictionary, "Dictionary"},
		{"Unknown", apis.Kind(42), "Unknown(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseKind verifies case-insensitive, whitespace-tolerant parsing.
func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  apis.Kind
	}{
		{"Conditionals", apis.KindConditionals},
		{"conditionals", apis.KindConditionals},
		{"ARRAY", apis.KindArray},
		{"  array  ", apis.KindArray},
		{"Dictionary", apis.KindDictionary},
		{"dictionary", apis.KindDictionary},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := apis.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v, want nil", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKindInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "map", "Array1", "!!"} {
		t.Run(input, func(t *testing.T) {
			got, err := apis.Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) error = nil, want non-nil", input)
			}
			if got != apis.KindConditionals {
				t.Fatalf("Parse(%q) = %v, want KindConditionals on error", input, got)
			}
		})
	}
}

func TestMustParseKindPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustParse did not panic on invalid input")
		}
	}()
	_ = apis.MustParse("hash")
}

func TestKindMarshalTextUnknown(t *testing.T) {
	got, err := apis.Kind(7).MarshalText()
	if err == nil {
		t.Fatal("MarshalText error = nil, want non-nil for unknown kind")
	}
	if len(got) != 0 {
		t.Fatalf("MarshalText = %q, want empty on error", string(got))
	}
}

// TestKindUnmarshalTextInvalid verifies that the receiver is untouched on error.
func TestKindUnmarshalTextInvalid(t *testing.T) {
	for _, input := range []string{"", "  ", "tree"} {
		k := apis.KindDictionary
		if err := k.UnmarshalText([]byte(input)); err == nil {
			t.Fatalf("UnmarshalText(%q) error = nil, want non-nil", input)
		}
		if k != apis.KindDictionary {
			t.Fatalf("UnmarshalText(%q) modified receiver to %v", input, k)
		}
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, original := range []apis.Kind{apis.KindConditionals, apis.KindArray, apis.KindDictionary} {
		t.Run(original.String(), func(t *testing.T) {
			data, err := original.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText(%v) error = %v", original, err)
			}
			var decoded apis.Kind
			if err := decoded.UnmarshalText(data); err != nil {
				t.Fatalf("UnmarshalText(%q) error = %v", string(data), err)
			}
			if decoded != original {
				t.Fatalf("round-trip: got %v, want %v", decoded, original)
			}
		})
	}
}

// TestLookupKinds checks that each lookup shape reports its kind and size.
func TestLookupKinds(t *testing.T) {
	tests := []struct {
		lookup apis.Lookup
		kind   apis.Kind
		size   int
	}{
		{apis.Conditionals{Members: []apis.Member{{Name: "A", Value: 1}}}, apis.KindConditionals, 1},
		{apis.Array{Base: 3, Entries: []string{"x", "y"}}, apis.KindArray, 2},
		{apis.Dictionary{Entries: map[uint64]string{1: "a", 9: "b", 20: "c"}}, apis.KindDictionary, 3},
	}
	for _, tt := range tests {
		if got := tt.lookup.Kind(); got != tt.kind {
			t.Fatalf("Kind() = %v, want %v", got, tt.kind)
		}
		if got := tt.lookup.Len(); got != tt.size {
			t.Fatalf("%v Len() = %d, want %d", tt.kind, got, tt.size)
		}
	}
}
