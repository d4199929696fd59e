package assemble

import "github.com/fortuna/gridiron/internal/dataset"

// coalescePrefixes are the columns every category repeats. After a
// multi-category join, the suffixed duplicates fill gaps in the unsuffixed
// column and are then dropped.
var coalescePrefixes = []string{
	"player", "team", "year", "age", "pos", "g", "gs", "pro_bowl", "all_pro",
}

// mergeCategories outer-joins the per-category datasets on the identity key.
// Overlapping columns of each later dataset are suffixed with its category
// name, then the shared identity columns are coalesced back into one.
func mergeCategories(sets []*dataset.Dataset, cats []string) *dataset.Dataset {
	out := sets[0]
	for i := 1; i < len(sets); i++ {
		out = out.OuterJoin(sets[i], "_"+cats[i])
	}
	if len(sets) == 1 {
		return out
	}

	for _, prefix := range coalescePrefixes {
		variants := make([]string, 0, len(cats)-1)
		for _, cat := range cats[1:] {
			variants = append(variants, prefix+"_"+cat)
		}
		out.Coalesce(prefix, variants)
	}
	return out
}
