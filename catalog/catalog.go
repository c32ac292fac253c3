// Package catalog loads a saved-links document once and selects records by
// status or tag for display.
package catalog

import (
	"sort"
	"strings"

	"pocketshelf/types"
)

// Catalog is an ordered, read-only set of records. It is never mutated after load.
type Catalog struct {
	records []types.Record
}

// New creates a Catalog holding a copy of records.
func New(records []types.Record) *Catalog {
	return &Catalog{records: append([]types.Record(nil), records...)}
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// Records returns a copy of all records in their original order.
func (c *Catalog) Records() []types.Record {
	return append([]types.Record(nil), c.records...)
}

// Snapshot is a catalog together with the values derived from it at load time.
type Snapshot struct {
	Catalog  *Catalog
	Tags     []string
	Statuses []string
}

// Derive computes the tag set and statuses of c once.
func Derive(c *Catalog) *Snapshot {
	return &Snapshot{Catalog: c, Tags: DeriveTags(c), Statuses: DeriveStatuses(c)}
}

// SplitTags splits a semicolon-separated tag list into trimmed, non-empty tags.
func SplitTags(tags string) []string {
	var out []string
	for _, t := range strings.Split(tags, ";") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DeriveTags returns every distinct tag in the catalog, sorted.
func DeriveTags(c *Catalog) []string {
	return distinct(c, func(r types.Record) []string { return SplitTags(r.Tags) })
}

// DeriveStatuses returns every distinct non-empty status in the catalog, sorted.
func DeriveStatuses(c *Catalog) []string {
	return distinct(c, func(r types.Record) []string {
		if s := strings.TrimSpace(r.Status); s != "" {
			return []string{r.Status}
		}
		return nil
	})
}

func distinct(c *Catalog, values func(types.Record) []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range c.records {
		for _, v := range values(r) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Strings(out)
	return out
}
