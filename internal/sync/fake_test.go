package sync

import (
	"context"
	"errors"

	"preorder-sync/internal/domain"
)

// fakeStore lets each test plug in only the behavior it cares about.
// Nil hooks mean "not found" for lookups and "accepted" for mutations.
type fakeStore struct {
	findEq    func(sku string) (*domain.RemoteProductRef, error)
	findLoose func(sku string) (*domain.RemoteProductRef, error)
	findScan  func(sku string) (*domain.RemoteProductRef, error)
	all       func() ([]domain.RemoteProductRef, error)

	create        func(draft domain.ProductDraft) (string, error)
	update        func(id string, draft domain.ProductDraft) error
	forceOpts     func(id string) error
	patchVariants func(id string, payload any) error
	patchProduct  func(id string, patch any) error

	listCats func() ([]domain.CategoryRef, error)
	addToCat func(categoryID, productID string) error

	eqCalls, looseCalls, scanCalls   int
	createCalls, updateCalls         int
	forceOptsCalls, variantsCalls    int
	patchProductCalls, listCatsCalls int
	addToCatCalls                    int
}

func (f *fakeStore) FindBySKUEq(_ context.Context, sku string) (*domain.RemoteProductRef, error) {
	f.eqCalls++
	if f.findEq == nil {
		return nil, nil
	}
	return f.findEq(sku)
}

func (f *fakeStore) FindBySKULoose(_ context.Context, sku string) (*domain.RemoteProductRef, error) {
	f.looseCalls++
	if f.findLoose == nil {
		return nil, nil
	}
	return f.findLoose(sku)
}

func (f *fakeStore) FindBySKUScan(_ context.Context, sku string) (*domain.RemoteProductRef, error) {
	f.scanCalls++
	if f.findScan == nil {
		return nil, nil
	}
	return f.findScan(sku)
}

func (f *fakeStore) AllProducts(_ context.Context) ([]domain.RemoteProductRef, error) {
	if f.all == nil {
		return nil, nil
	}
	return f.all()
}

func (f *fakeStore) Create(_ context.Context, draft domain.ProductDraft) (string, error) {
	f.createCalls++
	if f.create == nil {
		return "created-id", nil
	}
	return f.create(draft)
}

func (f *fakeStore) Update(_ context.Context, id string, draft domain.ProductDraft) error {
	f.updateCalls++
	if f.update == nil {
		return nil
	}
	return f.update(id, draft)
}

func (f *fakeStore) ForcePaymentOptions(_ context.Context, id string) error {
	f.forceOptsCalls++
	if f.forceOpts == nil {
		return nil
	}
	return f.forceOpts(id)
}

func (f *fakeStore) PatchVariants(_ context.Context, id string, payload any) error {
	f.variantsCalls++
	if f.patchVariants == nil {
		return nil
	}
	return f.patchVariants(id, payload)
}

func (f *fakeStore) PatchProduct(_ context.Context, id string, patch any) error {
	f.patchProductCalls++
	if f.patchProduct == nil {
		return nil
	}
	return f.patchProduct(id, patch)
}

func (f *fakeStore) ListCategories(_ context.Context) ([]domain.CategoryRef, error) {
	f.listCatsCalls++
	if f.listCats == nil {
		return nil, nil
	}
	return f.listCats()
}

func (f *fakeStore) AddToCategory(_ context.Context, categoryID, productID string) error {
	f.addToCatCalls++
	if f.addToCat == nil {
		return nil
	}
	return f.addToCat(categoryID, productID)
}

var errRemote = errors.New("remote says no")
