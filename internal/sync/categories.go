package sync

import (
	"context"
	"log"
	"strings"

	"preorder-sync/internal/domain"
)

// CategoryResolver maps free-text category names from the CSV onto remote
// category ids. The remote list is fetched on first use and cached for the
// run; a fetch failure degrades to "no categories", never aborts.
type CategoryResolver struct {
	store  Store
	loaded bool
	cats   []domain.CategoryRef
}

func NewCategoryResolver(store Store) *CategoryResolver {
	return &CategoryResolver{store: store}
}

// Resolve returns the matching category, trying in order: exact
// case-insensitive, whitespace-stripped, then substring in either direction.
func (r *CategoryResolver) Resolve(ctx context.Context, name string) (domain.CategoryRef, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.CategoryRef{}, false
	}

	if !r.loaded {
		r.loaded = true
		cats, err := r.store.ListCategories(ctx)
		if err != nil {
			log.Printf("WARN: category list fetch failed, continuing without categories: %v", err)
		} else {
			r.cats = cats
			log.Printf("categories loaded: %d", len(cats))
		}
	}

	want := strings.ToLower(name)

	// 1) exact, case-insensitive
	for _, c := range r.cats {
		if strings.ToLower(c.Name) == want {
			return c, true
		}
	}

	// 2) sin espacios (el CSV suele traer espacios colados)
	wantFlat := stripSpace(want)
	for _, c := range r.cats {
		if stripSpace(strings.ToLower(c.Name)) == wantFlat {
			return c, true
		}
	}

	// 3) substring en cualquiera de las dos direcciones
	for _, c := range r.cats {
		have := strings.ToLower(c.Name)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return c, true
		}
	}

	return domain.CategoryRef{}, false
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
