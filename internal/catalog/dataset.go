package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// datasetFile mirrors the on-disk JSON. Pointers tell a missing field apart
// from a zero value; encoding/json matches keys case-insensitively.
type datasetFile struct {
	Products *[]productRecord `json:"products"`
}

type productRecord struct {
	ProductID     *int     `json:"productID"`
	ArticleNumber *string  `json:"articleNumber"`
	ArticleName   *string  `json:"articleName"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Tags          []string `json:"tags"`
}

// DecodeDataset parses a catalog dataset. Every failure wraps
// ErrDatasetMalformed.
func DecodeDataset(r io.Reader) ([]Product, error) {
	dec := json.NewDecoder(r)

	var f datasetFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetMalformed, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: extra data after json object", ErrDatasetMalformed)
	}
	if f.Products == nil {
		return nil, fmt.Errorf("%w: products array missing", ErrDatasetMalformed)
	}

	out := make([]Product, 0, len(*f.Products))
	for i, rec := range *f.Products {
		p, err := rec.toProduct()
		if err != nil {
			return nil, fmt.Errorf("%w: products[%d]: %w", ErrDatasetMalformed, i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (rec productRecord) toProduct() (Product, error) {
	var missing []string
	if rec.ProductID == nil {
		missing = append(missing, "productID")
	}
	if rec.ArticleNumber == nil {
		missing = append(missing, "articleNumber")
	}
	if rec.ArticleName == nil {
		missing = append(missing, "articleName")
	}
	if rec.Description == nil {
		missing = append(missing, "description")
	}
	if rec.Category == nil {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return Product{}, fmt.Errorf("missing required field(s) %s", strings.Join(missing, ", "))
	}

	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}

	return Product{
		ProductID:     *rec.ProductID,
		ArticleNumber: *rec.ArticleNumber,
		ArticleName:   *rec.ArticleName,
		Description:   *rec.Description,
		Category:      *rec.Category,
		Tags:          tags,
	}, nil
}
