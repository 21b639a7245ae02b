package csvsource

import (
	"errors"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"preorder-sync/internal/domain"
)

const maxNameLen = 80

// Normalize validates one raw row and builds the SourceItem.
// ok=false means the row is skipped with the returned reason; a bad row never
// stops the run.
func Normalize(row map[string]string, line int) (item domain.SourceItem, reason string, ok bool) {
	name := strings.TrimSpace(row[ColName])
	sku := strings.TrimSpace(row[ColSKU])
	rawPrice := strings.TrimSpace(row[ColPrice])

	if name == "" || sku == "" || rawPrice == "" {
		return domain.SourceItem{}, "missing name/sku/price", false
	}

	price, err := ParsePrice(rawPrice)
	if err != nil {
		return domain.SourceItem{}, "invalid price " + strings.TrimSpace(rawPrice), false
	}

	if len([]rune(name)) > maxNameLen {
		log.Printf("WARN: line %d: name longer than %d chars, truncating", line, maxNameLen)
		name = string([]rune(name)[:maxNameLen])
	}

	return domain.SourceItem{
		Line:            line,
		Name:            name,
		SKU:             sku,
		BasePrice:       price,
		Brand:           strings.TrimSpace(row[ColBrand]),
		CategoryName:    strings.TrimSpace(row[ColCategory]),
		DescriptionBody: strings.TrimSpace(row[ColBody]),
		Deadline:        strings.TrimSpace(row[ColDeadline]),
		ETA:             strings.TrimSpace(row[ColETA]),
	}, "", true
}

// ParsePrice accepts both "12,50" and "12.50" and rounds to two decimals.
// Zero or negative prices are rejected (a free preorder is always a data error).
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d = d.Round(2)
	if d.Sign() <= 0 {
		return decimal.Decimal{}, errNonPositivePrice
	}
	return d, nil
}

var errNonPositivePrice = errors.New("price must be positive")
