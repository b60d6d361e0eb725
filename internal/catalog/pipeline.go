package catalog

import (
	"iter"
	"slices"
	"strings"

	"dalarosa-be/internal/product"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

type predicate func(p product.Product) bool

// fold normalizes s for case-insensitive comparison.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

func predicates(opts Options) []predicate {
	var preds []predicate

	if opts.Category != "" {
		preds = append(preds, func(p product.Product) bool { return p.Category == opts.Category })
	}
	if opts.OnSaleOnly {
		preds = append(preds, func(p product.Product) bool { return p.IsOnSale })
	}
	if q := strings.TrimSpace(opts.Query); q != "" {
		needle := fold(q)
		preds = append(preds, func(p product.Product) bool {
			return strings.Contains(fold(p.Name), needle)
		})
	}
	if opts.MaxPrice.Valid {
		ceiling := opts.MaxPrice.Decimal
		preds = append(preds, func(p product.Product) bool {
			return p.EffectivePrice().LessThanOrEqual(ceiling)
		})
	}
	return preds
}

func matches(p product.Product, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

// Apply filters, sorts and limits products. The returned sequence re-runs
// the pipeline every time it is ranged over and never mutates products.
func Apply(products []product.Product, opts Options) iter.Seq[product.Product] {
	preds := predicates(opts)

	return func(yield func(product.Product) bool) {
		emitted := 0
		emit := func(p product.Product) bool {
			if opts.Limit > 0 && emitted >= opts.Limit {
				return false
			}
			emitted++
			return yield(p)
		}

		if opts.Sort == "" || opts.Sort == SortNone {
			for _, p := range products {
				if matches(p, preds) && !emit(p) {
					return
				}
			}
			return
		}

		matched := make([]product.Product, 0, len(products))
		for _, p := range products {
			if matches(p, preds) {
				matched = append(matched, p)
			}
		}
		slices.SortStableFunc(matched, func(a, b product.Product) int {
			c := a.EffectivePrice().Cmp(b.EffectivePrice())
			if opts.Sort == SortDesc {
				return -c
			}
			return c
		})
		for _, p := range matched {
			if !emit(p) {
				return
			}
		}
	}
}
