package loader

// DeepMerge combines two configuration trees, with values from override
// taking precedence over base. When both sides hold a map for the same key
// the maps are merged recursively; any other override value, including
// lists and explicit nulls, replaces the base value wholesale.
//
// Neither input is modified. The result is a new map at every level where
// a merge took place; untouched subtrees are shared with the inputs, so
// callers must treat resolved documents as read-only.
func DeepMerge(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, ov := range override {
		if bm, ok := merged[k].(map[string]any); ok {
			if om, ok := ov.(map[string]any); ok {
				merged[k] = DeepMerge(bm, om)
				continue
			}
		}
		merged[k] = ov
	}
	return merged
}
