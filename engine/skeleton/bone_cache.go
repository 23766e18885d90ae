package skeleton

import (
	"sort"

	"github.com/Carmen-Shannon/oxy-mw/engine/transform"
)

// boneCacheEntry records where a named bone lives in the transform hierarchy.
type boneCacheEntry struct {
	// path lists the handles from the hierarchy root to the bone, inclusive.
	path []transform.Handle

	// node is the bone's own transform.
	node transform.Handle
}

// boneCache maps bone names to their hierarchy location.
type boneCache map[string]boneCacheEntry

// buildBoneCache traverses the whole hierarchy once and records every bone-capable node by name.
// Traversal continues below every node so bones nested under groups, attachments or other bones
// are all found. Duplicate names resolve to the last node visited.
func buildBoneCache(h transform.Hierarchy) boneCache {
	cache := make(boneCache)
	h.Traverse(func(node transform.Handle, path []transform.Handle) {
		if !h.Kind(node).BoneCapable() {
			return
		}
		cache[h.Name(node)] = boneCacheEntry{
			path: append([]transform.Handle(nil), path...),
			node: node,
		}
	})
	return cache
}

// names returns the cached bone names in sorted order.
func (c boneCache) names() []string {
	out := make([]string, 0, len(c))
	for name := range c {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
