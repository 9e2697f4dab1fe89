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

import (
	"fmt"
	"strings"
)

// Kind names the shape of a Lookup.
//
// # Overview
//
// Kind is a small enumerated type that describes how a resolver stores the
// names of an enumeration for its static fast path. It is chosen once per
// enumeration by the strategy selector and never changes afterwards.
//
// # Values
//
//   - KindConditionals: linear equality tests over the declared members.
//   - KindArray:        direct-indexed table over a bounded value range.
//   - KindDictionary:   hash map keyed by value.
//
// # Contract
//
//   - Kind values are plain integers and safe to share across goroutines.
//   - String, MarshalText and Parse round-trip for every defined value.
type Kind int

const (
	// KindConditionals selects linear comparisons. Used for tiny
	// enumerations where building a table costs more than it saves.
	KindConditionals Kind = iota

	// KindArray selects a direct-indexed table. Slots that correspond to
	// undeclared values hold the same string the fallback path would produce.
	KindArray

	// KindDictionary selects a map keyed by the widened value.
	KindDictionary
)

// String returns the stable token for k ("Conditionals", "Array",
// "Dictionary") or "Unknown(<n>)" for out-of-range values.
func (k Kind) String() string {
	switch k {
	case KindConditionals:
		return "Conditionals"
	case KindArray:
		return "Array"
	case KindDictionary:
		return "Dictionary"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Parse converts a textual token into a Kind.
//
// Matching is case-insensitive and ignores surrounding whitespace.
// Unknown tokens yield an error and KindConditionals.
func Parse(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CONDITIONALS":
		return KindConditionals, nil
	case "ARRAY":
		return KindArray, nil
	case "DICTIONARY":
		return KindDictionary, nil
	default:
		return KindConditionals, fmt.Errorf("efx: unknown lookup kind %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
// Intended for tests and hard-coded tokens only.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
// Unknown values are rejected instead of being serialized as "Unknown(n)".
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindConditionals, KindArray, KindDictionary:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("efx: cannot marshal unknown lookup kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// On failure *k is left unchanged.
func (k *Kind) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("efx: empty lookup kind")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*k = value
	return nil
}
