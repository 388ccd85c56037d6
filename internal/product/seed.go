package product

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
	// Price keeps the literal text so it reaches decimal without a float.
	Price *string `yaml:"price"`
}

// ParseSeed decodes a catalog seed document and runs every entry through the
// same rules as the create endpoint.
func ParseSeed(r io.Reader) ([]Product, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	out := make([]Product, 0, len(f.Products))
	for i, sp := range f.Products {
		req := CreateProductRequest{Type: Kind(sp.Type), Name: sp.Name}
		if sp.Price != nil {
			d, err := decimal.NewFromString(*sp.Price)
			if err != nil {
				return nil, fmt.Errorf("seed entry %d (%s): price %q: %w", i, sp.Name, *sp.Price, err)
			}
			req.Price = &d
		}
		p, err := NewFromRequest(req)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d (%s): %w", i, sp.Name, err)
		}
		out = append(out, *p)
	}
	return out, nil
}

// SeedIfEmpty loads path into an empty catalog. A non-empty catalog is left alone.
func SeedIfEmpty(ctx context.Context, repo Repository, path string) (int, error) {
	existing, err := repo.List(ctx, Query{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	products, err := ParseSeed(f)
	if err != nil {
		return 0, err
	}
	for i := range products {
		products[i].ID = uuid.NewString()
		if err := repo.Create(ctx, &products[i]); err != nil {
			return i, fmt.Errorf("seed %s: %w", products[i].Name, err)
		}
	}
	log.Printf("[catalog] seeded %d products from %s", len(products), path)
	return len(products), nil
}
