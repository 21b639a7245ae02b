package sync

import (
	"context"

	"preorder-sync/internal/domain"
)

// variantEncoder builds one wire shape for the "selected choice" part of a
// variants patch. The platform has accepted at least three incompatible
// shapes over time, so the applier keeps them as an explicitly ordered list.
type variantEncoder struct {
	name   string
	choice func(label string) any
}

var variantEncoders = []variantEncoder{
	{
		// {"choices": {"OPTION": "CHOICE"}}
		name: "choices-map",
		choice: func(label string) any {
			return map[string]any{domain.PaymentOptionName: label}
		},
	},
	{
		// {"choices": [{"optionName": ..., "value": ...}]}
		name: "option-value-list",
		choice: func(label string) any {
			return []map[string]any{{"optionName": domain.PaymentOptionName, "value": label}}
		},
	},
	{
		// {"choices": [{"optionName": ..., "description": ...}]}
		name: "option-description-list",
		choice: func(label string) any {
			return []map[string]any{{"optionName": domain.PaymentOptionName, "description": label}}
		},
	},
}

func variantsPayload(enc variantEncoder, deposit, prepay domain.VariantSpec, baseSKU string) map[string]any {
	prepayPrice := map[string]any{"price": prepay.Price.InexactFloat64()}
	if prepay.CompareAt.Sign() > 0 {
		prepayPrice["compareAtPrice"] = prepay.CompareAt.InexactFloat64()
	}
	return map[string]any{
		"variants": []map[string]any{
			{
				"choices":   enc.choice(deposit.ChoiceLabel),
				"priceData": map[string]any{"price": deposit.Price.InexactFloat64()},
				"sku":       baseSKU + "-DEP",
			},
			{
				"choices":   enc.choice(prepay.ChoiceLabel),
				"priceData": prepayPrice,
				"sku":       baseSKU + "-PREPAY",
			},
		},
	}
}

// applyVariants pushes the two derived prices onto the product, trying each
// encoder until one is accepted. Exhaustion fails the row, but the already
// committed product mutation stays (no rollback, the partial state is the
// recoverable one).
func applyVariants(ctx context.Context, store Store, productID string, deposit, prepay domain.VariantSpec, baseSKU string) error {
	steps := make([]fallbackStep, 0, len(variantEncoders))
	for _, enc := range variantEncoders {
		payload := variantsPayload(enc, deposit, prepay, baseSKU)
		steps = append(steps, fallbackStep{
			name: enc.name,
			run: func(ctx context.Context) error {
				return store.PatchVariants(ctx, productID, payload)
			},
		})
	}
	_, err := runFirstAccepted(ctx, "variants "+baseSKU, steps)
	return err
}

// preorderPatches are the candidate payloads for flipping the preorder flag.
// Best-effort: the flag lives in different places depending on the catalog
// version, and none of them working is only a warning.
var preorderPatches = []struct {
	name  string
	patch map[string]any
}{
	{"isPreOrder", map[string]any{"product": map[string]any{"isPreOrder": true}}},
	{"preorderInfo", map[string]any{"product": map[string]any{"preorderInfo": map[string]any{"isPreOrder": true}}}},
	{"preOrder", map[string]any{"product": map[string]any{"preOrder": true}}},
}

func enablePreorder(ctx context.Context, store Store, productID string) error {
	steps := make([]fallbackStep, 0, len(preorderPatches))
	for _, c := range preorderPatches {
		patch := c.patch
		steps = append(steps, fallbackStep{
			name: c.name,
			run: func(ctx context.Context) error {
				return store.PatchProduct(ctx, productID, patch)
			},
		})
	}
	_, err := runFirstAccepted(ctx, "preorder flag "+productID, steps)
	return err
}
