// Package enums holds declarations used by the source extraction tests.
package enums

// Color is a plain enumeration.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

// Perm is a flags enumeration.
//
//efx:flags
type Perm int16

const (
	None Perm = 0
	Read Perm = 1 << (iota - 1)
	Write
	Exec
	All = Read | Write | Exec
)

// Level declares a duplicate value and a negative one.
type Level int64

const (
	Low     Level = -1
	Default Level = 0
	Normal  Level = 0
	High    Level = 10
)

type (
	// Mask is declared inside a grouped type declaration.
	//
	//efx:flags
	Mask uint64

	// Label is not an integer type.
	Label string
)

const (
	Bit0  Mask = 1
	Bit63 Mask = 1 << 63
)

const Greeting Label = "hi"

// Untyped constants never form an enumeration.
const Answer = 42
