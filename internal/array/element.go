// Package array implements the strided-array indexing core: reference-counted
// or borrowed byte buffers, dope-vector layouts, the shared offset engine,
// and the runtime-rank and fixed-rank views built on top of them.
package array

import "unsafe"

// Element is a constraint for supported array element types.
type Element interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// Kind represents runtime type information for array elements.
type Kind int

// Supported element kinds.
const (
	Float32 Kind = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the byte size of the element kind.
func (k Kind) Size() int64 {
	switch k {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	default:
		panic("unknown element kind")
	}
}

// String returns a human-readable name for the element kind.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// KindByName maps an element kind name back to its Kind.
// The second result is false for an unrecognized name.
func KindByName(name string) (Kind, bool) {
	for _, k := range []Kind{Float32, Float64, Int32, Int64, Uint8, Bool} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// KindOf infers the element kind for a generic type T.
func KindOf[T Element]() Kind {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		panic("unsupported element type")
	}
}

// sizeOf returns the in-memory size of T in bytes.
func sizeOf[T Element]() int64 {
	var dummy T
	return int64(unsafe.Sizeof(dummy))
}
