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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

var enumsDir = filepath.Join("..", "..", "source", "testdata", "enums")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--dir", enumsDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect_Text(t *testing.T) {
	out, err := run(t, "inspect", ".")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"NAME", "example.com/enums.Color", "example.com/enums.Perm", "Array", "Dictionary"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestInspect_YAML(t *testing.T) {
	out, err := run(t, "inspect", "-o", "yaml")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	var rows []struct {
		Name      string `yaml:"name"`
		Kind      string `yaml:"kind"`
		Members   int    `yaml:"members"`
		TableSize int    `yaml:"table_size"`
	}
	if err := yaml.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	// Level has a duplicate value: four constants, three members.
	// -1 widens to the top of the uint64 range, far from the others.
	if rows[1].Name != "example.com/enums.Level" || rows[1].Members != 3 || rows[1].Kind != "Dictionary" {
		t.Fatalf("Level row = %+v", rows[1])
	}
	if rows[3].Kind != "Array" || rows[3].TableSize != 8 {
		t.Fatalf("Perm row = %+v, want Array of 8", rows[3])
	}
}

func TestUnknownLogFormat(t *testing.T) {
	if _, err := run(t, "--log-format", "xml", "inspect"); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestInspect_UnknownOutput(t *testing.T) {
	if _, err := run(t, "inspect", "-o", "xml"); err == nil {
		t.Fatal("expected error for unknown output format")
	}
}

func TestResolve(t *testing.T) {
	out, err := run(t, "resolve", ".", "Perm", "0", "3", "0x5", "8", "--", "-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := "0\tNone\n3\tRead, Write\n0x5\tRead, Exec\n8\t8\n-1\t-1\n"
	if out != want {
		t.Fatalf("resolve output = %q, want %q", out, want)
	}
}

func TestResolve_Errors(t *testing.T) {
	if _, err := run(t, "resolve", ".", "Nope", "1"); err == nil {
		t.Fatal("expected error for unknown enumeration")
	}
	if _, err := run(t, "resolve", ".", "Color", "abc"); err == nil {
		t.Fatal("expected error for invalid value")
	}
	if _, err := run(t, "resolve", ".", "Color"); err == nil {
		t.Fatal("expected error for missing values")
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "efx.yaml")
	if err := os.WriteFile(path, []byte("array_lookup_threshold: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "--config", path, "inspect", "-o", "yaml")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out, "name: example.com/enums.Perm") {
		t.Fatalf("missing Perm row:\n%s", out)
	}
	// Perm's OR-range (7) no longer fits the array threshold.
	idx := strings.Index(out, "name: example.com/enums.Perm")
	if !strings.Contains(out[idx:], "kind: Dictionary") {
		t.Fatalf("Perm should use a dictionary under threshold 4:\n%s", out[idx:])
	}

	if _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "inspect"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
