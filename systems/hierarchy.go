package systems

import (
	"sort"

	"github.com/automoto/tickinterp/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// maxHierarchyDepth bounds parent walks. Deeper chains are treated as cycles.
const maxHierarchyDepth = 64

var transformQuery = donburi.NewQuery(filter.Contains(
	components.Transform,
	components.GlobalTransform,
))

// TransformNode is one entry of the transform pass. HasParent is false for
// roots and for entries whose parent cannot be resolved.
type TransformNode struct {
	Entry     *donburi.Entry
	Parent    donburi.Entity
	HasParent bool
	depth     int
}

// TransformOrder returns every entry with a transform, parents before
// children.
func TransformOrder(w donburi.World) []TransformNode {
	var nodes []TransformNode
	transformQuery.Each(w, func(e *donburi.Entry) {
		nodes = append(nodes, TransformNode{Entry: e})
	})

	depths := make(map[donburi.Entity]int, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		n.Parent, n.HasParent = parentOf(w, n.Entry)
		n.depth = depthOf(w, n.Entry.Entity(), depths)
		if n.depth == 0 {
			n.HasParent = false
		}
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].depth < nodes[j].depth
	})
	return nodes
}

// parentOf returns the parent of e if it exists and carries a transform.
func parentOf(w donburi.World, e *donburi.Entry) (donburi.Entity, bool) {
	if !e.HasComponent(components.Parent) {
		return donburi.Null, false
	}
	parent := components.Parent.Get(e).Entity
	if parent == e.Entity() || !w.Valid(parent) {
		return donburi.Null, false
	}
	if !w.Entry(parent).HasComponent(components.Transform) {
		return donburi.Null, false
	}
	return parent, true
}

// depthOf walks up from entity and memoizes the depth of every entity on the
// way. Members of a cycle get depth 0 so they are treated as roots; entities
// hanging off a cycle stay parented to it. Chains deeper than
// maxHierarchyDepth are flattened to roots.
func depthOf(w donburi.World, entity donburi.Entity, memo map[donburi.Entity]int) int {
	if d, ok := memo[entity]; ok {
		return d
	}

	chain := []donburi.Entity{entity}
	index := map[donburi.Entity]int{entity: 0}
	base := -1
	for cur := entity; ; {
		parent, ok := parentOf(w, w.Entry(cur))
		if !ok {
			break
		}
		if d, known := memo[parent]; known {
			base = d
			break
		}
		if i, seen := index[parent]; seen {
			for _, e := range chain[i:] {
				memo[e] = 0
			}
			chain, base = chain[:i], 0
			break
		}
		if len(chain) > maxHierarchyDepth {
			for _, e := range chain {
				memo[e] = 0
			}
			return 0
		}
		index[parent] = len(chain)
		chain = append(chain, parent)
		cur = parent
	}

	for i := len(chain) - 1; i >= 0; i-- {
		base++
		memo[chain[i]] = base
	}
	return memo[entity]
}

// SetParent attaches child's transform to parent's. It refuses links that
// would make parent a descendant of child.
func SetParent(child, parent *donburi.Entry) bool {
	if !child.Valid() || !parent.Valid() || child.Entity() == parent.Entity() {
		return false
	}
	w := child.World
	for cur, steps := parent, 0; steps <= maxHierarchyDepth; steps++ {
		up, ok := parentOf(w, cur)
		if !ok {
			break
		}
		if up == child.Entity() {
			return false
		}
		cur = w.Entry(up)
	}

	link := &components.ParentData{Entity: parent.Entity()}
	if child.HasComponent(components.Parent) {
		components.Parent.Set(child, link)
	} else {
		donburi.Add(child, components.Parent, link)
	}
	return true
}

// RemoveParent detaches child's transform from its parent.
func RemoveParent(child *donburi.Entry) {
	if child.Valid() && child.HasComponent(components.Parent) {
		child.RemoveComponent(components.Parent)
	}
}
