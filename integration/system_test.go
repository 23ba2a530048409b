//go:build integration
// +build integration

package integration

import (
	"context"
	"net/http"
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	"ShopCatalog/internal/catalog"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8082")

func TestSystem_E2E_Catalog(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	c := catalog.NewClient(baseURL)

	products, err := c.ListProducts(ctx, "", "")
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) == 0 {
		t.Fatalf("expected non-empty products")
	}

	categories, err := c.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if !slices.IsSorted(categories) {
		t.Fatalf("categories not sorted: %v", categories)
	}

	first := products[0]
	filtered, err := c.ListProducts(ctx, strings.ToUpper(first.Category), "")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	for _, p := range filtered {
		if !strings.EqualFold(p.Category, first.Category) {
			t.Fatalf("category filter leaked %q", p.Category)
		}
	}

	got, err := c.GetProduct(ctx, first.ProductID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.ArticleNumber != first.ArticleNumber {
		t.Fatalf("articleNumber=%s want=%s", got.ArticleNumber, first.ArticleNumber)
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == http.StatusOK {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
