// Package registry declares the process-wide table of node types: their
// sockets, default values and link flags. It is the Socket & Node Type
// Registry of the shader graph compiler (spec 4.A).
package registry

// SocketKind is the semantic category of a socket value.
type SocketKind int

const (
	Float SocketKind = iota
	Int
	Color
	Vector
	Point
	Normal
	String
	Closure
)

func (k SocketKind) String() string {
	switch k {
	case Float:
		return "Float"
	case Int:
		return "Int"
	case Color:
		return "Color"
	case Vector:
		return "Vector"
	case Point:
		return "Point"
	case Normal:
		return "Normal"
	case String:
		return "String"
	case Closure:
		return "Closure"
	default:
		return "Unknown"
	}
}

// IsFloat3 is true for the four socket kinds that share float3 stack layout.
// A link between two different float3 kinds still goes through a Convert
// node, which passes the three channels through unchanged.
func (k SocketKind) IsFloat3() bool {
	switch k {
	case Color, Vector, Point, Normal:
		return true
	default:
		return false
	}
}

// StackWidth is the number of stack slots a value of this kind occupies.
func (k SocketKind) StackWidth() int {
	switch k {
	case Float, Int:
		return 1
	case Color, Vector, Point, Normal:
		return 3
	case Closure:
		return 0
	default:
		return 0
	}
}

// LinkFlags are bit flags describing how a socket may be linked and, for
// inputs, what it should be wired to by default when left unlinked.
type LinkFlags uint32

const (
	Linkable LinkFlags = 1 << iota
	OSLInternal
	SVMInternal
	LinkTextureGenerated
	LinkTextureUV
	LinkTextureNormal
	LinkPosition
	LinkNormal
	LinkIncoming
	LinkTangent
)

// HasDefaultLink is true when flags name one of the default-input hints
// consumed by the optimizer's default-inputs pass (spec 4.D step 3).
func (f LinkFlags) HasDefaultLink() bool {
	const mask = LinkTextureGenerated | LinkTextureUV | LinkTextureNormal |
		LinkPosition | LinkNormal | LinkIncoming | LinkTangent
	return f&mask != 0
}

// Value is a socket's runtime value: at most one of the fields is
// meaningful, selected by the socket's Kind.
type Value struct {
	Float  float32
	Float3 [3]float32 // Color/Vector/Point/Normal
	Int    int32
	Str    string
}

func FloatValue(f float32) Value              { return Value{Float: f} }
func Float3Value(x, y, z float32) Value        { return Value{Float3: [3]float32{x, y, z}} }
func IntValue(i int32) Value                   { return Value{Int: i} }
func StringValue(s string) Value               { return Value{Str: s} }

// IsZero reports whether v is the zero value for kind k.
func (v Value) IsZero(k SocketKind) bool {
	switch {
	case k.IsFloat3():
		return v.Float3 == [3]float32{0, 0, 0}
	case k == Float:
		return v.Float == 0
	case k == Int:
		return v.Int == 0
	default:
		return false
	}
}

// IsOne reports whether v is the multiplicative identity for kind k.
func (v Value) IsOne(k SocketKind) bool {
	switch {
	case k.IsFloat3():
		return v.Float3 == [3]float32{1, 1, 1}
	case k == Float:
		return v.Float == 1
	case k == Int:
		return v.Int == 1
	default:
		return false
	}
}

// ScalarFromFloat3 implements the float3->float conversion rule: a
// luminance weighting for Color, an arithmetic average for Vector/Point/
// Normal (spec 3, SocketType paragraph).
func ScalarFromFloat3(k SocketKind, v [3]float32) float32 {
	if k == Color {
		return 0.2126*v[0] + 0.7152*v[1] + 0.0722*v[2]
	}
	return (v[0] + v[1] + v[2]) / 3
}
