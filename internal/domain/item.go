package domain

import "github.com/shopspring/decimal"

// Payment option forced on every preorder product. The labels are part of the
// store contract (they show up verbatim in the storefront), so they stay in Italian.
const (
	PaymentOptionName = "PREORDER PAYMENTS OPTIONS*"
	ChoiceDeposit     = "ANTICIPO/SALDO"
	ChoicePrepay      = "PAGAMENTO ANTICIPATO"

	PreorderRibbon = "PREORDER"
)

// SourceItem is one validated CSV row. Built only by the csvsource normalizer;
// discarded after the row reaches a terminal SyncResult.
type SourceItem struct {
	Line int // CSV line, for log messages

	Name      string
	SKU       string
	BasePrice decimal.Decimal

	Brand           string
	CategoryName    string
	DescriptionBody string
	Deadline        string
	ETA             string
}

// VariantSpec is one derived payment choice with its price.
// CompareAt is zero except for the prepay choice, where it keeps the base price.
type VariantSpec struct {
	ChoiceLabel string
	Price       decimal.Decimal
	CompareAt   decimal.Decimal
}

// RemoteProductRef points at a product that already exists in the remote store.
// Only the locator produces these; holding one means the update path applies.
type RemoteProductRef struct {
	ID  string
	SKU string
}

// CategoryRef is a resolved remote category (Wix collection).
type CategoryRef struct {
	Name     string
	RemoteID string
}

// ProductDraft is the desired remote state derived from one SourceItem.
// The wix client turns it into whatever payload the endpoint wants.
type ProductDraft struct {
	Name        string
	SKU         string
	Price       decimal.Decimal
	Description string
	Brand       string
	CategoryID  string
}
