package wix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"preorder-sync/internal/domain"
	"preorder-sync/internal/httpx"
)

const contentTypeJSON = "application/json"

type Client struct {
	BaseURL string
	APIKey  string
	SiteID  string
	HTTP    *http.Client
}

func New(baseURL, apiKey, siteID string) *Client {
	tr := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		SiteID:  siteID,
		HTTP: &http.Client{
			Timeout:   60 * time.Second, // por-request
			Transport: tr,
		},
	}
}

func (c *Client) buildReq(method, path string, body []byte) func(context.Context) (*http.Request, error) {
	return func(ctx context.Context) (*http.Request, error) {
		var rd *bytes.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		} else {
			rd = bytes.NewReader(nil)
		}
		r, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
		if err != nil {
			return nil, err
		}
		r.Header.Set("Content-Type", contentTypeJSON)
		r.Header.Set("Accept", contentTypeJSON)
		r.Header.Set("Authorization", c.APIKey)
		r.Header.Set("wix-site-id", c.SiteID)
		return r, nil
	}
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any, cfg httpx.RetryConfig) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return httpx.DoJSON(ctx, c.HTTP, c.buildReq(http.MethodPost, path, b), out, cfg)
}

func (c *Client) patchJSON(ctx context.Context, path string, payload any, cfg httpx.RetryConfig) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, _, err = httpx.DoWithRetry(ctx, c.HTTP, c.buildReq(http.MethodPatch, path, b), cfg)
	return err
}

/* -------- products: lookup -------- */

type product struct {
	ID   string `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

type productsQueryResponse struct {
	Products []product `json:"products"`
	Paging   struct {
		NextCursor string `json:"nextCursor"`
	} `json:"paging"`
}

// FindBySKUEq uses the structured equality filter ({"sku":{"$eq":...}}).
// Queries run without retries: the locator's fallback chain decides what to
// try next, so a failed shape should surface fast.
func (c *Client) FindBySKUEq(ctx context.Context, sku string) (*domain.RemoteProductRef, error) {
	payload := map[string]any{
		"query": map[string]any{
			"filter": map[string]any{"sku": map[string]any{"$eq": sku}},
			"paging": map[string]any{"limit": 1},
		},
	}
	return c.findOne(ctx, payload)
}

// FindBySKULoose uses the untyped filter ({"sku": "..."}) that some backend
// versions want instead of the structured form.
func (c *Client) FindBySKULoose(ctx context.Context, sku string) (*domain.RemoteProductRef, error) {
	payload := map[string]any{
		"query": map[string]any{
			"filter": map[string]any{"sku": sku},
			"paging": map[string]any{"limit": 1},
		},
	}
	return c.findOne(ctx, payload)
}

func (c *Client) findOne(ctx context.Context, payload any) (*domain.RemoteProductRef, error) {
	var out productsQueryResponse
	if err := c.postJSON(ctx, "/products/query", payload, &out, httpx.NoRetryConfig()); err != nil {
		return nil, fmt.Errorf("wix: products query failed: %w", err)
	}
	if len(out.Products) == 0 {
		return nil, nil
	}
	p := out.Products[0]
	return &domain.RemoteProductRef{ID: p.ID, SKU: p.SKU}, nil
}

// FindBySKUScan pages the whole catalog and compares SKUs client-side,
// case-insensitively. Last resort when both filter shapes are rejected.
func (c *Client) FindBySKUScan(ctx context.Context, sku string) (*domain.RemoteProductRef, error) {
	want := strings.ToLower(strings.TrimSpace(sku))
	var ref *domain.RemoteProductRef
	err := c.scanProducts(ctx, func(p product) bool {
		if strings.ToLower(strings.TrimSpace(p.SKU)) == want {
			ref = &domain.RemoteProductRef{ID: p.ID, SKU: p.SKU}
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// AllProducts pages the full catalog once. Used by the optional SKU index
// prefetch when the CSV is large.
func (c *Client) AllProducts(ctx context.Context) ([]domain.RemoteProductRef, error) {
	var all []domain.RemoteProductRef
	err := c.scanProducts(ctx, func(p product) bool {
		all = append(all, domain.RemoteProductRef{ID: p.ID, SKU: p.SKU})
		return true
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

func (c *Client) scanProducts(ctx context.Context, visit func(product) bool) error {
	cursor := ""
	for {
		paging := map[string]any{"limit": 100}
		if cursor != "" {
			paging["cursor"] = cursor
		}
		payload := map[string]any{"query": map[string]any{"paging": paging}}

		var out productsQueryResponse
		if err := c.postJSON(ctx, "/products/query", payload, &out, httpx.NoRetryConfig()); err != nil {
			return fmt.Errorf("wix: products scan failed: %w", err)
		}

		for _, p := range out.Products {
			if !visit(p) {
				return nil
			}
		}

		cursor = out.Paging.NextCursor
		if cursor == "" {
			return nil
		}
	}
}

/* -------- products: create / update -------- */

func paymentOptionsPayload() []map[string]any {
	return []map[string]any{{
		"name": domain.PaymentOptionName,
		"choices": []map[string]any{
			{"value": domain.ChoiceDeposit, "description": domain.ChoiceDeposit},
			{"value": domain.ChoicePrepay, "description": domain.ChoicePrepay},
		},
	}}
}

type createProductResponse struct {
	Product struct {
		ID string `json:"id"`
	} `json:"product"`
}

// Create posts the full desired state, payment option included.
// A duplicate natural key comes back as ErrDuplicateSKU so the orchestrator
// can re-locate and switch to the update path.
func (c *Client) Create(ctx context.Context, draft domain.ProductDraft) (string, error) {
	p := map[string]any{
		"name":           draft.Name,
		"sku":            draft.SKU,
		"productType":    "physical",
		"priceData":      map[string]any{"price": draft.Price.InexactFloat64()},
		"description":    draft.Description,
		"brand":          draft.Brand,
		"ribbon":         domain.PreorderRibbon,
		"tags":           []string{domain.PreorderRibbon},
		"productOptions": paymentOptionsPayload(),
	}
	if draft.CategoryID != "" {
		p["collectionIds"] = []string{draft.CategoryID}
	}
	pruneEmpty(p)

	var out createProductResponse
	err := c.postJSON(ctx, "/products", map[string]any{"product": p}, &out, httpx.DefaultRetryConfig())
	if err != nil {
		if isDuplicateSKU(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrDuplicateSKU, draft.SKU)
		}
		return "", fmt.Errorf("wix: create product failed: %w", err)
	}
	if out.Product.ID == "" {
		return "", errors.New("wix: create product: no id in response")
	}
	return out.Product.ID, nil
}

// Update patches the main product fields on an existing id.
func (c *Client) Update(ctx context.Context, id string, draft domain.ProductDraft) error {
	p := map[string]any{
		"id":          id,
		"name":        draft.Name,
		"description": draft.Description,
		"brand":       draft.Brand,
		"priceData":   map[string]any{"price": draft.Price.InexactFloat64()},
		"ribbon":      domain.PreorderRibbon,
		"tags":        []string{domain.PreorderRibbon},
	}
	if draft.CategoryID != "" {
		p["collectionIds"] = []string{draft.CategoryID}
	}

	err := c.patchJSON(ctx, "/products/"+id, map[string]any{"product": p}, httpx.DefaultRetryConfig())
	if err != nil {
		return fmt.Errorf("wix: update product %s failed: %w", id, err)
	}
	return nil
}

// ForcePaymentOptions rewrites the canonical option/choice structure.
// The update path always re-forces it, manual edits in the dashboard drift.
func (c *Client) ForcePaymentOptions(ctx context.Context, id string) error {
	patch := map[string]any{"product": map[string]any{
		"id":             id,
		"productOptions": paymentOptionsPayload(),
	}}
	if err := c.patchJSON(ctx, "/products/"+id, patch, httpx.DefaultRetryConfig()); err != nil {
		return fmt.Errorf("wix: force options on %s failed: %w", id, err)
	}
	return nil
}

// PatchVariants sends a caller-built variants payload. The payload shape is
// owned by the applier's encoder list, not by this client.
func (c *Client) PatchVariants(ctx context.Context, id string, payload any) error {
	if err := c.patchJSON(ctx, "/products/"+id+"/variants", payload, httpx.NoRetryConfig()); err != nil {
		return fmt.Errorf("wix: patch variants on %s failed: %w", id, err)
	}
	return nil
}

// PatchProduct sends a caller-built product patch (preorder flag candidates).
func (c *Client) PatchProduct(ctx context.Context, id string, patch any) error {
	if err := c.patchJSON(ctx, "/products/"+id, patch, httpx.NoRetryConfig()); err != nil {
		return fmt.Errorf("wix: patch product %s failed: %w", id, err)
	}
	return nil
}

/* -------- collections -------- */

type collectionsQueryResponse struct {
	Collections []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"collections"`
	Paging struct {
		NextCursor string `json:"nextCursor"`
	} `json:"paging"`
}

// ListCategories pages /collections/query once. Empty names are dropped.
func (c *Client) ListCategories(ctx context.Context) ([]domain.CategoryRef, error) {
	var all []domain.CategoryRef
	cursor := ""
	for {
		paging := map[string]any{"limit": 100}
		if cursor != "" {
			paging["cursor"] = cursor
		}
		payload := map[string]any{"query": map[string]any{"paging": paging}}

		var out collectionsQueryResponse
		if err := c.postJSON(ctx, "/collections/query", payload, &out, httpx.DefaultRetryConfig()); err != nil {
			return nil, fmt.Errorf("wix: collections query failed: %w", err)
		}

		for _, col := range out.Collections {
			name := strings.TrimSpace(col.Name)
			if name == "" || col.ID == "" {
				continue
			}
			all = append(all, domain.CategoryRef{Name: name, RemoteID: col.ID})
		}

		cursor = out.Paging.NextCursor
		if cursor == "" {
			return all, nil
		}
	}
}

func (c *Client) AddToCategory(ctx context.Context, categoryID, productID string) error {
	payload := map[string]any{"productIds": []string{productID}}
	err := c.postJSON(ctx, "/collections/"+categoryID+"/products/add", payload, nil, httpx.NoRetryConfig())
	if err != nil {
		return fmt.Errorf("wix: add to collection %s failed: %w", categoryID, err)
	}
	return nil
}

/* -------- helpers -------- */

func isDuplicateSKU(err error) bool {
	var herr *httpx.HTTPError
	if !errors.As(err, &herr) {
		return false
	}
	return strings.Contains(strings.ToLower(string(herr.Body)), "sku is not unique")
}

// pruneEmpty drops nil/empty values so the API never sees "brand": "".
func pruneEmpty(m map[string]any) {
	for k, v := range m {
		switch t := v.(type) {
		case nil:
			delete(m, k)
		case string:
			if t == "" {
				delete(m, k)
			}
		case []string:
			if len(t) == 0 {
				delete(m, k)
			}
		}
	}
}
