package fuse

import "hash/fnv"

// stableIno returns a stable inode number for a path within the mount, given
// as its components. The root is stableIno().
func stableIno(parts ...string) uint64 {
	h := fnv.New64a()
	h.Write([]byte{'/'})
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{'/'})
		}
		h.Write([]byte(p))
	}
	return h.Sum64()
}
