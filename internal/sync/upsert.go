package sync

import (
	"context"
	"errors"
	"log"

	"preorder-sync/internal/domain"
	"preorder-sync/internal/mappers"
)

// Engine drives one CSV row to a terminal SyncResult: locate, create or
// update, force the payment options, apply the derived variant prices, then
// the best-effort extras (preorder flag, category membership).
type Engine struct {
	Store      Store
	Locator    *Locator
	Categories *CategoryResolver
	Rule       mappers.PriceRule
	DryRun     bool
}

func NewEngine(store Store, rule mappers.PriceRule) *Engine {
	return &Engine{
		Store:      store,
		Locator:    NewLocator(store),
		Categories: NewCategoryResolver(store),
		Rule:       rule,
	}
}

// SyncRow never returns an error: everything that can go wrong inside a row
// is folded into the SyncResult and the batch moves on.
func (e *Engine) SyncRow(ctx context.Context, item domain.SourceItem) domain.SyncResult {
	var categoryID string
	if item.CategoryName != "" {
		if cat, ok := e.Categories.Resolve(ctx, item.CategoryName); ok {
			categoryID = cat.RemoteID
		} else {
			log.Printf("WARN: line %d: category %q not found, continuing without it", item.Line, item.CategoryName)
		}
	}

	draft := domain.ProductDraft{
		Name:        item.Name,
		SKU:         item.SKU,
		Price:       item.BasePrice,
		Description: mappers.ComposeDescription(item.Deadline, item.ETA, item.DescriptionBody),
		Brand:       item.Brand,
		CategoryID:  categoryID,
	}

	existing := e.Locator.Locate(ctx, item.SKU)

	if e.DryRun {
		if existing != nil {
			log.Printf("[DRY-RUN] would update %s (id=%s)", item.SKU, existing.ID)
		} else {
			log.Printf("[DRY-RUN] would create %s", item.SKU)
		}
		return domain.Skipped("dry-run")
	}

	if existing != nil {
		return e.updatePath(ctx, existing.ID, item, draft, categoryID)
	}

	id, err := e.Store.Create(ctx, draft)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSKU) {
			// carrera: otro proceso lo creó entre el locate y el create.
			// Un solo re-check, nunca un loop.
			log.Printf("WARN: line %d: duplicate sku %s on create, re-locating once", item.Line, item.SKU)
			found := e.Locator.Relocate(ctx, item.SKU)
			if found == nil {
				return domain.Failed("duplicate sku but not found on re-check: " + item.SKU)
			}
			return e.updatePath(ctx, found.ID, item, draft, categoryID)
		}
		return domain.Failed("create failed: " + err.Error())
	}

	if err := e.applyVariantsStep(ctx, id, item); err != nil {
		return domain.Failed("variants failed after create: " + err.Error())
	}
	e.bestEffortExtras(ctx, id, categoryID)
	return domain.Created(id)
}

func (e *Engine) updatePath(ctx context.Context, id string, item domain.SourceItem, draft domain.ProductDraft, categoryID string) domain.SyncResult {
	if err := e.Store.Update(ctx, id, draft); err != nil {
		return domain.Failed("update failed: " + err.Error())
	}
	if err := e.Store.ForcePaymentOptions(ctx, id); err != nil {
		return domain.Failed("force options failed: " + err.Error())
	}
	if err := e.applyVariantsStep(ctx, id, item); err != nil {
		return domain.Failed("variants failed after update: " + err.Error())
	}
	e.bestEffortExtras(ctx, id, categoryID)
	return domain.Updated(id)
}

func (e *Engine) applyVariantsStep(ctx context.Context, id string, item domain.SourceItem) error {
	deposit, prepay := e.Rule.Derive(item.BasePrice)
	return applyVariants(ctx, e.Store, id, deposit, prepay, item.SKU)
}

// bestEffortExtras never fails the row: a product without the preorder flag
// or outside its collection is inspectable and fixable by hand.
func (e *Engine) bestEffortExtras(ctx context.Context, id, categoryID string) {
	if err := enablePreorder(ctx, e.Store, id); err != nil {
		log.Printf("WARN: could not enable preorder on %s: %v", id, err)
	}
	if categoryID != "" {
		if err := e.Store.AddToCategory(ctx, categoryID, id); err != nil {
			log.Printf("WARN: could not add %s to collection %s: %v", id, categoryID, err)
		}
	}
}
