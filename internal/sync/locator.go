package sync

import (
	"context"
	"log"
	"strings"

	"preorder-sync/internal/domain"
)

// lookupStrategy is one way of asking the remote for a SKU. The accepted
// filter shape varies across backend versions, so the locator walks an
// ordered list instead of trusting any single one.
type lookupStrategy struct {
	name string
	find func(ctx context.Context, sku string) (*domain.RemoteProductRef, error)
}

// Locator finds an existing remote product for a SKU. With a prefetched
// index it answers from memory; otherwise it runs the strategy chain,
// ending in the full paginated scan.
type Locator struct {
	store Store
	index map[string]domain.RemoteProductRef // lowercased sku -> ref, nil until prefetched
}

func NewLocator(store Store) *Locator {
	return &Locator{store: store}
}

func (l *Locator) strategies() []lookupStrategy {
	return []lookupStrategy{
		{"filter-eq", l.store.FindBySKUEq},
		{"filter-loose", l.store.FindBySKULoose},
		{"scan", l.store.FindBySKUScan},
	}
}

// PrefetchIndex builds the SKU index in one catalog scan. Worth it for big
// CSVs: afterwards Locate costs zero round trips per row.
func (l *Locator) PrefetchIndex(ctx context.Context) error {
	all, err := l.store.AllProducts(ctx)
	if err != nil {
		return err
	}
	idx := make(map[string]domain.RemoteProductRef, len(all))
	for _, p := range all {
		key := normSKU(p.SKU)
		if key == "" {
			continue
		}
		idx[key] = p
	}
	l.index = idx
	log.Printf("locator: prefetched %d products", len(idx))
	return nil
}

// Locate returns the remote product for sku, or nil when nothing matches.
// A strategy erroring out (transport, rejected filter shape) means "try the
// next one", never a fatal error.
func (l *Locator) Locate(ctx context.Context, sku string) *domain.RemoteProductRef {
	if l.index != nil {
		if ref, ok := l.index[normSKU(sku)]; ok {
			return &ref
		}
		return nil
	}
	return l.locate(ctx, sku)
}

// Relocate always goes to the remote, skipping the prefetched index.
// Used after a duplicate-SKU create failure, where the index is stale by
// definition (someone else just created the product).
func (l *Locator) Relocate(ctx context.Context, sku string) *domain.RemoteProductRef {
	return l.locate(ctx, sku)
}

func (l *Locator) locate(ctx context.Context, sku string) *domain.RemoteProductRef {
	for _, s := range l.strategies() {
		ref, err := s.find(ctx, sku)
		if err != nil {
			log.Printf("WARN: locate %s: strategy %q failed: %v", sku, s.name, err)
			continue
		}
		if ref != nil {
			return ref
		}
	}
	return nil
}

func normSKU(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
