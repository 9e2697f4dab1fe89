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

package source_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/source"
)

func TestLoad(t *testing.T) {
	got, err := source.Load(context.Background(), filepath.Join("testdata", "enums"), ".")
	require.NoError(t, err)

	want := []apis.Descriptor{
		{
			Name: "example.com/enums.Color",
			Members: []apis.Member{
				{Name: "Red", Value: 0},
				{Name: "Green", Value: 1},
				{Name: "Blue", Value: 2},
			},
		},
		{
			Name:   "example.com/enums.Level",
			Signed: true,
			Wide:   true,
			Members: []apis.Member{
				{Name: "Low", Value: ^uint64(0)},
				{Name: "Default", Value: 0},
				{Name: "Normal", Value: 0},
				{Name: "High", Value: 10},
			},
		},
		{
			Name:  "example.com/enums.Mask",
			Flags: true,
			Wide:  true,
			Members: []apis.Member{
				{Name: "Bit0", Value: 1},
				{Name: "Bit63", Value: 1 << 63},
			},
		},
		{
			Name:   "example.com/enums.Perm",
			Flags:  true,
			Signed: true,
			Members: []apis.Member{
				{Name: "None", Value: 0},
				{Name: "Read", Value: 1},
				{Name: "Write", Value: 2},
				{Name: "Exec", Value: 4},
				{Name: "All", Value: 7},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_BadPattern(t *testing.T) {
	_, err := source.Load(context.Background(), filepath.Join("testdata", "enums"), "./missing")
	require.Error(t, err)
}
