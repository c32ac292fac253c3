package catalog

import (
	"slices"

	"pocketshelf/types"
)

// FilterState holds the two filter dimensions. At most one of them is not "all".
type FilterState struct {
	Status string
	Tag    string
}

// NewFilterState returns the unfiltered state.
func NewFilterState() FilterState {
	return FilterState{Status: types.FilterAll, Tag: types.FilterAll}
}

// SetStatus filters by status and clears the tag filter.
func (f FilterState) SetStatus(status string) FilterState {
	return FilterState{Status: orAll(status), Tag: types.FilterAll}
}

// SetTag filters by tag and clears the status filter.
func (f FilterState) SetTag(tag string) FilterState {
	return FilterState{Status: types.FilterAll, Tag: orAll(tag)}
}

// IsAll reports whether neither dimension filters.
func (f FilterState) IsAll() bool {
	return f.Status == types.FilterAll && f.Tag == types.FilterAll
}

// Matches reports whether r passes both dimensions.
func (f FilterState) Matches(r types.Record) bool {
	statusMatch := f.Status == types.FilterAll || r.Status == f.Status
	tagMatch := f.Tag == types.FilterAll || slices.Contains(SplitTags(r.Tags), f.Tag)
	return statusMatch && tagMatch
}

// Select returns the records matching f in catalog order.
func Select(c *Catalog, f FilterState) []types.Record {
	out := make([]types.Record, 0)
	for _, r := range c.records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func orAll(v string) string {
	if v == "" {
		return types.FilterAll
	}
	return v
}
