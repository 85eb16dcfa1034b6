package sqlgen

import (
	"fmt"

	"github.com/segmentio/fasthash/fnv1a"
	"github.com/sqlcraft/sqlcraft/internal/cache"
)

func addToHash(h uint64, value interface{}) uint64 {
	switch v := value.(type) {
	case string:
		h = fnv1a.AddString64(h, v)
	case int:
		h = fnv1a.AddUint64(h, uint64(v))
	case bool:
		if v {
			h = fnv1a.AddUint64(h, 1)
		} else {
			h = fnv1a.AddUint64(h, 2)
		}
	case uint8:
		h = fnv1a.AddUint64(h, uint64(v))
	case uint64:
		h = fnv1a.AddUint64(h, v)
	case cache.Hashable:
		h = fnv1a.AddUint64(h, v.Hash())
	case nil:
		h = fnv1a.AddUint64(h, uint64(FragmentType_Nil))
	default:
		panic(fmt.Sprintf("hash: unexpected type %T", value))
	}
	return h
}

func quickHash(t FragmentType, values ...interface{}) uint64 {
	h := fnv1a.Init64
	h = fnv1a.AddUint64(h, uint64(t))
	for i := range values {
		h = addToHash(h, values[i])
	}
	return h
}
