package registry

import "fmt"

// InputDecl is a declared input socket on a NodeType: name, kind, default
// value and link flags. Order within a NodeType fixes evaluation order.
type InputDecl struct {
	Name    string
	Kind    SocketKind
	Default Value
	Flags   LinkFlags
}

// OutputDecl is a declared output socket on a NodeType.
type OutputDecl struct {
	Name string
	Kind SocketKind
}

// NodeType is a registered, immutable node schema (spec 3, NodeType).
type NodeType struct {
	Name    string
	Inputs  []InputDecl
	Outputs []OutputDecl

	Special      SpecialType
	Combine      ClosureCombineKind // meaningful iff Special == SpecialClosureCombine
	ClosureCost  ClosureCost        // meaningful iff Special == SpecialClosure
	HasVolume    bool               // true iff this node type declares has_volume_support()
}

// InputIndex returns the declared index of the named input, or -1.
func (t *NodeType) InputIndex(name string) int {
	for i, in := range t.Inputs {
		if in.Name == name {
			return i
		}
	}
	return -1
}

// OutputIndex returns the declared index of the named output, or -1.
func (t *NodeType) OutputIndex(name string) int {
	for i, out := range t.Outputs {
		if out.Name == name {
			return i
		}
	}
	return -1
}

// ConvertCategory names one of the 8 socket categories used to index the
// built-in Convert table (spec 4.A).
type ConvertCategory = SocketKind

// Registry is a process-wide, append-only map from node name to NodeType.
// Registration is not safe for concurrent use; it must complete before any
// Graph is constructed (spec 4.A).
type Registry struct {
	types   map[string]*NodeType
	convert [8][8]*NodeType // indexed by [from][to]
}

// NewRegistry creates an empty registry and registers the built-in Convert
// node family (one NodeType per (from,to) pair, including the same-to-same
// Proxy case).
func NewRegistry() *Registry {
	r := &Registry{types: map[string]*NodeType{}}
	for from := Float; from <= Closure; from++ {
		for to := Float; to <= Closure; to++ {
			name := fmt.Sprintf("Convert<%s,%s>", from, to)
			nt := &NodeType{
				Name: name,
				Inputs: []InputDecl{
					{Name: "Value", Kind: from, Flags: Linkable},
				},
				Outputs: []OutputDecl{
					{Name: "Value", Kind: to},
				},
			}
			r.types[name] = nt
			r.convert[from][to] = nt
		}
	}
	return r
}

// Register adds a new NodeType. It panics on duplicate registration, the
// same fail-fast contract the teacher's own process-start registries use.
func (r *Registry) Register(nt *NodeType) *NodeType {
	if _, exists := r.types[nt.Name]; exists {
		panic(fmt.Sprintf("registry: node type %q already registered", nt.Name))
	}
	r.types[nt.Name] = nt
	return nt
}

// Lookup returns the NodeType for name, or nil.
func (r *Registry) Lookup(name string) *NodeType {
	return r.types[name]
}

// ConvertType returns the built-in Convert NodeType for (from,to). The
// from==to case is the Proxy node.
func (r *Registry) ConvertType(from, to SocketKind) *NodeType {
	return r.convert[from][to]
}
