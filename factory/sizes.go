package factory

import (
	"fmt"
	"sort"

	"github.com/automoto/citygen/citydata"
)

// SizeRegistry assigns one short id per distinct box size, in first-seen order.
type SizeRegistry struct {
	ids   map[citydata.Dimensions]string
	order []citydata.Dimensions
}

// CollectSizes scans buildings, then decorations, and gives each new
// (w, h, d) triple the id prefix + two-digit sequence number starting at 1.
func CollectSizes(layout *citydata.Layout, prefix string) *SizeRegistry {
	r := &SizeRegistry{ids: make(map[citydata.Dimensions]string)}
	for _, b := range layout.Boxes() {
		if _, ok := r.ids[b.Size]; ok {
			continue
		}
		r.order = append(r.order, b.Size)
		r.ids[b.Size] = fmt.Sprintf("%s%02d", prefix, len(r.order))
	}
	return r
}

// ID returns the id of a size seen during collection.
func (r *SizeRegistry) ID(size citydata.Dimensions) (string, bool) {
	id, ok := r.ids[size]
	return id, ok
}

// MustID is ID for sizes that are known to come from the collected layout.
func (r *SizeRegistry) MustID(size citydata.Dimensions) string {
	id, ok := r.ids[size]
	if !ok {
		panic(fmt.Sprintf("size %v was not collected", size))
	}
	return id
}

// Len is the number of distinct sizes.
func (r *SizeRegistry) Len() int {
	return len(r.order)
}

// SizeEntry pairs an id with its dimensions.
type SizeEntry struct {
	ID   string
	Size citydata.Dimensions
}

// Sorted returns every entry ordered by id string.
func (r *SizeRegistry) Sorted() []SizeEntry {
	entries := make([]SizeEntry, 0, len(r.order))
	for _, size := range r.order {
		entries = append(entries, SizeEntry{ID: r.ids[size], Size: size})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}
