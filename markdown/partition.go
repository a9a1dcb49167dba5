package markdown

import (
	"strings"

	"github.com/DOIDFoundation/rpcdoc/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SubgroupName returns the module a method tagged with subdoc is moved to.
func SubgroupName(group, subdoc string) string {
	return group + "_" + subdoc
}

// Partition moves every method carrying a subdoc out of its group into the
// `{group}_{subdoc}` group. The input schema is left untouched.
func Partition(schema types.Schema) types.Schema {
	out := schema.Clone()
	for _, group := range schema.Names() {
		g := schema[group]
		if g == nil {
			continue
		}
		keys := maps.Keys(g.Methods)
		slices.Sort(keys)
		for _, key := range keys {
			m := g.Methods[key]
			if m == nil || m.Subdoc == "" {
				continue
			}
			if strings.HasSuffix(group, "_"+m.Subdoc) {
				// already in its subgroup
				continue
			}
			sub := SubgroupName(group, m.Subdoc)
			if out[sub] == nil {
				out[sub] = &types.Group{}
			}
			if out[sub].Methods == nil {
				out[sub].Methods = map[string]*types.Method{}
			}
			out[sub].Methods[key] = m
			delete(out[group].Methods, key)
		}
	}
	return out
}
