package catalog

import (
	"slices"
	"strings"
)

// Filter narrows ListProducts. Zero values mean "no filter".
type Filter struct {
	Category string
	Text     string
}

// NewFilter trims both values so blank input means no filter.
func NewFilter(category, text string) Filter {
	return Filter{
		Category: strings.TrimSpace(category),
		Text:     strings.TrimSpace(text),
	}
}

// ListProducts returns the products matching f in snapshot order.
//
// Category matches the whole value case-insensitively. Text is a
// case-insensitive substring of the article name, article number or
// description. Both apply when set. Case is compared on the upper-cased
// value, so folding-only equivalences such as the Kelvin sign and "k" do
// not match.
func ListProducts(s *Snapshot, f Filter) []Product {
	out := make([]Product, 0)
	if s == nil {
		return out
	}

	category := strings.ToUpper(f.Category)
	text := strings.ToUpper(f.Text)
	for _, p := range s.products {
		if category != "" && strings.ToUpper(p.Category) != category {
			continue
		}
		if text != "" && !matchesText(p, text) {
			continue
		}
		out = append(out, p.clone())
	}
	return out
}

func matchesText(p Product, upper string) bool {
	return strings.Contains(strings.ToUpper(p.ArticleName), upper) ||
		strings.Contains(strings.ToUpper(p.ArticleNumber), upper) ||
		strings.Contains(strings.ToUpper(p.Description), upper)
}

// ListCategories returns the distinct categories sorted byte-wise. Values
// differing only in case are separate entries.
func ListCategories(s *Snapshot) []string {
	if s == nil {
		return []string{}
	}
	out := slices.Clone(s.categories)
	if out == nil {
		out = []string{}
	}
	return out
}

func FindProduct(s *Snapshot, id int) (Product, bool) {
	if s == nil {
		return Product{}, false
	}
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i].clone(), true
}
