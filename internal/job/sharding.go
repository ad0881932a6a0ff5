package job

import (
	"fmt"
	"hash/fnv"
)

// ShardLabel hashes a dispatch key to a stable small-cardinality label
// (0-31), keeping per-shard metric series bounded.
func ShardLabel(key string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return fmt.Sprintf("%d", h.Sum32()%32)
}
