package catalog

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ProductID     int      `json:"productId"`
	ArticleNumber string   `json:"articleNumber"`
	ArticleName   string   `json:"articleName"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
}

// clone returns p with its own Tags backing array.
func (p Product) clone() Product {
	p.Tags = slices.Clone(p.Tags)
	return p
}

// Snapshot is an immutable view of the whole catalog.
type Snapshot struct {
	Version  string
	LoadedAt time.Time
	Source   string

	products   []Product
	categories []string
	byID       map[int]int
}

// NewSnapshot validates products and builds the category and id indexes.
// The input slice is copied.
func NewSnapshot(source string, products []Product) (*Snapshot, error) {
	s := &Snapshot{
		Version:  uuid.NewString(),
		LoadedAt: time.Now().UTC(),
		Source:   source,
		products: make([]Product, len(products)),
		byID:     make(map[int]int, len(products)),
	}

	seen := make(map[string]struct{})
	for i, p := range products {
		if _, dup := s.byID[p.ProductID]; dup {
			return nil, fmt.Errorf("%w: %w: productID=%d", ErrDatasetMalformed, ErrDuplicateProductID, p.ProductID)
		}
		s.byID[p.ProductID] = i

		p = p.clone()
		if p.Tags == nil {
			p.Tags = []string{}
		}
		s.products[i] = p

		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			s.categories = append(s.categories, p.Category)
		}
	}

	// byte-wise ordering: "Kitchen" sorts before "cleaning".
	slices.Sort(s.categories)
	return s, nil
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.products)
}

func (s *Snapshot) CategoryCount() int {
	if s == nil {
		return 0
	}
	return len(s.categories)
}
