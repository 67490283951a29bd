package graph

// cloner tracks already-cloned nodes so that a link with both endpoints in
// the set being copied is recreated between the *clones*, including when
// the set contains cycles — the same back-reference problem the teacher's
// core/data.Cloner solves for arbitrary interface{} graphs, specialized
// here to *Node (spec 4.B copy_nodes).
type cloner struct {
	g     *Graph
	clone map[*Node]*Node
}

func newCloner(g *Graph) *cloner {
	return &cloner{g: g, clone: map[*Node]*Node{}}
}

func (c *cloner) get(n *Node) (*Node, bool) {
	clone, ok := c.clone[n]
	return clone, ok
}

func (c *cloner) add(n, clone *Node) {
	c.clone[n] = clone
}

// CopyNodes deep-clones each node in set into a freshly-owned node with a
// new id, then rewires links so that every link with both endpoints in set
// is re-created between the clones. Cloned nodes retain their NodeType,
// input default values and Bump tag; callers typically overwrite the tag
// immediately (spec 4.B copy_nodes).
func (g *Graph) CopyNodes(set map[*Node]bool) map[*Node]*Node {
	c := newCloner(g)

	// First pass: create every clone so link rewiring (which may visit
	// nodes in any order) always finds its target already present.
	for n := range set {
		clone := g.Add(n.Type)
		clone.Bump = n.Bump
		clone.Special = n.Special
		for i, in := range n.Inputs {
			clone.Inputs[i].Value = in.Value
		}
		c.add(n, clone)
	}

	// Second pass: rewire. A link whose producer is outside set is left
	// unlinked on the clone (its default value was already copied); a
	// link whose producer is inside set is recreated between clones,
	// including self/cyclic references since both sides of the map are
	// fully populated before any rewiring happens.
	for n := range set {
		clone, _ := c.get(n)
		for i, in := range n.Inputs {
			if in.Link == nil {
				continue
			}
			producer := in.Link.Node
			if !set[producer] {
				continue
			}
			producerClone, _ := c.get(producer)
			g.link(producerClone.Outputs[in.Link.Index], clone.Inputs[i])
		}
	}

	return c.clone
}
