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

// Package source extracts enumeration descriptors from Go packages.
//
// Every named type whose underlying type is an integer and which has at least
// one package-level constant becomes an apis.Descriptor. Members keep the
// declaration order of their constants. A type is a flags enumeration when
// its doc comment carries the FlagsDirective line:
//
//	//efx:flags
//	type Perm uint8
package source

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/internal/logging"
)

// FlagsDirective marks a flags enumeration in a type's doc comment.
const FlagsDirective = "efx:flags"

// ErrPackageErrors is returned when a loaded package does not type-check.
var ErrPackageErrors = errors.New("efx(source): package has errors")

// loadMode is what extraction needs: syntax for doc comments, types for
// constant values and sizes.
const loadMode = packages.NeedName |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedTypesSizes

// Load loads the packages matching patterns, relative to dir (empty for the
// current directory), and returns their enumeration descriptors sorted by name.
func Load(ctx context.Context, dir string, patterns ...string) ([]apis.Descriptor, error) {
	log := logging.New(logging.ComponentSource)

	cfg := &packages.Config{
		Mode:    loadMode,
		Context: ctx,
		Dir:     dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("efx(source): load %v: %w", patterns, err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrPackageErrors, pkg.PkgPath, e))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	results := make([][]apis.Descriptor, len(pkgs))
	g, gctx := errgroup.WithContext(ctx)
	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Extract(pkg)
			log.Debug("extracted enums", "package", pkg.PkgPath, "count", len(results[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := slices.Concat(results...)
	slices.SortFunc(out, func(a, b apis.Descriptor) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out, nil
}

// Extract returns the descriptors declared in a loaded package.
// The package must have been loaded with syntax, types and type info.
func Extract(pkg *packages.Package) []apis.Descriptor {
	if pkg.Types == nil {
		return nil
	}
	flagged := flaggedTypes(pkg)

	consts := make(map[*types.TypeName][]*types.Const)
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}
		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg.Types || !isInteger(named) {
			continue
		}
		consts[named.Obj()] = append(consts[named.Obj()], c)
	}

	out := make([]apis.Descriptor, 0, len(consts))
	for obj, cs := range consts {
		slices.SortFunc(cs, func(a, b *types.Const) int {
			return cmp.Compare(a.Pos(), b.Pos())
		})

		basic := obj.Type().Underlying().(*types.Basic)
		signed := basic.Info()&types.IsUnsigned == 0
		d := apis.Descriptor{
			Name:    pkg.Types.Path() + "." + obj.Name(),
			Members: make([]apis.Member, 0, len(cs)),
			Flags:   flagged[obj],
			Signed:  signed,
			Wide:    pkg.TypesSizes != nil && pkg.TypesSizes.Sizeof(basic) == 8,
		}
		for _, c := range cs {
			d.Members = append(d.Members, apis.Member{Name: c.Name(), Value: widen(c.Val(), signed)})
		}
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b apis.Descriptor) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

func isInteger(named *types.Named) bool {
	basic, ok := named.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsInteger != 0
}

// widen converts a typed integer constant to its uint64 bit pattern.
// Constants always fit their declared type, so the conversion is exact.
func widen(v constant.Value, signed bool) uint64 {
	if signed {
		i, _ := constant.Int64Val(v)
		return uint64(i)
	}
	u, _ := constant.Uint64Val(v)
	return u
}

// flaggedTypes collects the types whose doc comment holds FlagsDirective.
func flaggedTypes(pkg *packages.Package) map[*types.TypeName]bool {
	out := make(map[*types.TypeName]bool)
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && !gd.Lparen.IsValid() {
					doc = gd.Doc
				}
				if !hasDirective(doc) {
					continue
				}
				if obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName); ok {
					out[obj] = true
				}
			}
		}
	}
	return out
}

// hasDirective scans raw comment lines: CommentGroup.Text drops
// directive-style lines such as "//efx:flags".
func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if text == FlagsDirective {
			return true
		}
	}
	return false
}
