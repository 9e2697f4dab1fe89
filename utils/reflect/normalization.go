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

package reflect

import (
	"errors"
	"reflect"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// pointers) is not a named type declared in a package.
	ErrReflectTypeNotNamed = errors.New("reflect: type is not a named package type")
	// ErrReflectNotInteger indicates that the underlying kind is not an integer.
	ErrReflectNotInteger = errors.New("reflect: underlying type is not an integer")
)

// maxUnwrap bounds pointer unwrapping (*E, **E, ...).
const maxUnwrap = 8

// Info describes an enumeration type as seen through reflection.
type Info struct {
	// Name is the stable key "import/path.TypeName".
	Name string
	// Signed reports a signed underlying integer kind.
	Signed bool
	// Wide reports a 64-bit underlying representation.
	Wide bool
}

// Inspect unwraps pointers and returns the enumeration info of t.
//
// The key matches what the source front-end derives from go/types for the
// same declaration, so descriptors loaded from source and values seen at
// runtime meet in the same registry slot. Generic instantiation suffixes are
// kept: E[int] and E[string] are different enumerations.
func Inspect(t reflect.Type) (Info, error) {
	if t == nil {
		return Info{}, ErrReflectNilType
	}
	for i := 0; t.Kind() == reflect.Ptr && i < maxUnwrap; i++ {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return Info{}, ErrReflectTypeNotNamed
	}

	info := Info{Name: t.PkgPath() + "." + t.Name()}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		info.Signed = true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
	default:
		return Info{}, ErrReflectNotInteger
	}
	info.Wide = t.Size() == 8
	return info, nil
}
