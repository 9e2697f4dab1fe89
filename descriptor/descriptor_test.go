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

package descriptor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/descriptor"
)

func members(pairs ...any) []apis.Member {
	out := make([]apis.Member, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, apis.Member{Name: pairs[i].(string), Value: uint64(pairs[i+1].(int))})
	}
	return out
}

func TestNormalize_SortsAscending(t *testing.T) {
	d, err := descriptor.Normalize(apis.Descriptor{
		Name:    "test.Color",
		Members: members("Blue", 2, "Red", 0, "Green", 1),
	})
	require.NoError(t, err)
	require.Equal(t, members("Red", 0, "Green", 1, "Blue", 2), d.Members)
}

func TestNormalize_DuplicateNonFlagsKeepsFirst(t *testing.T) {
	d, err := descriptor.Normalize(apis.Descriptor{
		Name:    "test.Dup",
		Members: members("X", 1, "Z", 0, "Y", 1),
	})
	require.NoError(t, err)
	require.Equal(t, members("Z", 0, "X", 1), d.Members)
}

func TestNormalize_DuplicateFlagsKeepsLast(t *testing.T) {
	d, err := descriptor.Normalize(apis.Descriptor{
		Name:    "test.Dup",
		Flags:   true,
		Members: members("X", 1, "Z", 0, "Y", 1, "W", 1),
	})
	require.NoError(t, err)
	require.Equal(t, members("Z", 0, "W", 1), d.Members)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := members("B", 2, "A", 1, "A2", 1)
	_, err := descriptor.Normalize(apis.Descriptor{Name: "test.E", Members: in})
	require.NoError(t, err)
	require.Equal(t, members("B", 2, "A", 1, "A2", 1), in)
}

func TestNormalize_Idempotent(t *testing.T) {
	once, err := descriptor.Normalize(apis.Descriptor{
		Name:    "test.E",
		Flags:   true,
		Members: members("C", 4, "A", 1, "B", 2, "AA", 1),
	})
	require.NoError(t, err)

	twice, err := descriptor.Normalize(once)
	require.NoError(t, err)
	require.True(t, descriptor.Equal(once, twice))
}

func TestNormalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		d    apis.Descriptor
	}{
		{"no members", apis.Descriptor{Name: "test.Empty"}},
		{"no name", apis.Descriptor{Members: members("A", 1)}},
		{"empty member name", apis.Descriptor{Name: "test.E", Members: members("A", 1, "", 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := descriptor.Normalize(tt.d)
			require.ErrorIs(t, err, descriptor.ErrInvalidDescriptor)
		})
	}
}

func TestDecimal(t *testing.T) {
	require.Equal(t, "9", descriptor.Decimal(apis.Descriptor{}, 9))
	require.Equal(t, "18446744073709551613", descriptor.Decimal(apis.Descriptor{}, ^uint64(2)))
	require.Equal(t, "-3", descriptor.Decimal(apis.Descriptor{Signed: true}, ^uint64(2)))
	require.Equal(t, "0", descriptor.Decimal(apis.Descriptor{Signed: true}, 0))
}

func TestEqualAndBounds(t *testing.T) {
	a := apis.Descriptor{Name: "test.E", Members: members("A", 3, "B", 7)}
	b := apis.Descriptor{Name: "test.E", Members: members("A", 3, "B", 7)}
	require.True(t, descriptor.Equal(a, b))

	b.Flags = true
	require.False(t, descriptor.Equal(a, b))

	lo, hi := descriptor.Bounds(a)
	require.Equal(t, uint64(3), lo)
	require.Equal(t, uint64(7), hi)
}
