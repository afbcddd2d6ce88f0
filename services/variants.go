package services

import (
	"errors"
	"fmt"

	"orderportal/catalog"
)

// Variant resolution failures. Both are data-integrity conditions: the
// resolver never guesses a row to sell.
var (
	ErrNoVariant        = errors.New("no variant matches the selected attributes")
	ErrAmbiguousVariant = errors.New("more than one variant matches the selected attributes")
)

// VariantResolver narrows a category's variant table to a single row
// through a sequence of dependent attribute choices. It is rebuilt from
// the request parameters on every interaction, so it carries no state
// between requests.
//
// An attribute is active only if it still has options under the earlier
// selections; wire-gauge materials carry no length value, which drops
// the length step and makes those chains two-level.
type VariantResolver struct {
	rows       []catalog.Variant
	attrs      []string
	selections map[string]string
}

// NewVariantResolver creates a resolver over rows with the category's
// attribute resolution order.
func NewVariantResolver(rows []catalog.Variant, attrs []string) *VariantResolver {
	return &VariantResolver{
		rows:       rows,
		attrs:      attrs,
		selections: make(map[string]string, len(attrs)),
	}
}

// Attributes returns the resolution order the resolver was built with.
func (r *VariantResolver) Attributes() []string {
	return r.attrs
}

// Selected returns the chosen value for an attribute, if any.
func (r *VariantResolver) Selected(attr string) (string, bool) {
	v, ok := r.selections[attr]
	return v, ok
}

// Select records a choice for an attribute. Re-choosing an earlier
// attribute discards every selection that depends on it.
func (r *VariantResolver) Select(attr, value string) error {
	idx := r.attrIndex(attr)
	if idx < 0 {
		return fmt.Errorf("unknown attribute %q", attr)
	}
	for _, later := range r.attrs[idx+1:] {
		delete(r.selections, later)
	}
	if value == "" {
		delete(r.selections, attr)
		return nil
	}
	r.selections[attr] = value
	return nil
}

// Options returns the distinct values still available for an attribute,
// given the selections on all earlier attributes. Values appear in row
// order, so repeated calls on unchanged data are deterministic.
func (r *VariantResolver) Options(attr string) []string {
	idx := r.attrIndex(attr)
	if idx < 0 {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, row := range r.matchingUpTo(idx) {
		v := row.Attrs[attr]
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// NextAttribute returns the first active attribute that has no selection
// yet. ok is false once every active attribute is chosen.
func (r *VariantResolver) NextAttribute() (attr string, ok bool) {
	for _, a := range r.attrs {
		if _, chosen := r.selections[a]; chosen {
			continue
		}
		// No remaining options means the attribute does not apply to
		// this chain (e.g. length on a two-level material).
		if len(r.Options(a)) == 0 {
			continue
		}
		return a, true
	}
	return "", false
}

// Resolved reports whether every active attribute has been selected.
func (r *VariantResolver) Resolved() bool {
	_, more := r.NextAttribute()
	return !more
}

// Resolve returns the single variant row identified by the full
// selection. Zero matching rows or duplicates are reported as errors.
func (r *VariantResolver) Resolve() (catalog.Variant, error) {
	if !r.Resolved() {
		return catalog.Variant{}, fmt.Errorf("selection incomplete: %w", ErrNoVariant)
	}
	matches := r.matchingUpTo(len(r.attrs))
	switch len(matches) {
	case 0:
		return catalog.Variant{}, ErrNoVariant
	case 1:
		return matches[0], nil
	default:
		return catalog.Variant{}, ErrAmbiguousVariant
	}
}

func (r *VariantResolver) attrIndex(attr string) int {
	for i, a := range r.attrs {
		if a == attr {
			return i
		}
	}
	return -1
}

// matchingUpTo filters rows by the selections on attributes before
// position idx in the resolution order.
func (r *VariantResolver) matchingUpTo(idx int) []catalog.Variant {
	var out []catalog.Variant
	for _, row := range r.rows {
		ok := true
		for _, a := range r.attrs[:idx] {
			want, chosen := r.selections[a]
			if chosen && row.Attrs[a] != want {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, row)
		}
	}
	return out
}
