package sync

import (
	"context"

	"preorder-sync/internal/domain"
)

// Store is the slice of the remote catalog API the reconciliation core needs.
// The wix client satisfies it; tests plug in fakes.
type Store interface {
	// lookup
	FindBySKUEq(ctx context.Context, sku string) (*domain.RemoteProductRef, error)
	FindBySKULoose(ctx context.Context, sku string) (*domain.RemoteProductRef, error)
	FindBySKUScan(ctx context.Context, sku string) (*domain.RemoteProductRef, error)
	AllProducts(ctx context.Context) ([]domain.RemoteProductRef, error)

	// mutation
	Create(ctx context.Context, draft domain.ProductDraft) (string, error)
	Update(ctx context.Context, id string, draft domain.ProductDraft) error
	ForcePaymentOptions(ctx context.Context, id string) error
	PatchVariants(ctx context.Context, id string, payload any) error
	PatchProduct(ctx context.Context, id string, patch any) error

	// categories
	ListCategories(ctx context.Context) ([]domain.CategoryRef, error)
	AddToCategory(ctx context.Context, categoryID, productID string) error
}
