package catalog

import (
	"context"
	"iter"
	"slices"

	"dalarosa-be/internal/backend"
	"dalarosa-be/internal/logger"
	"dalarosa-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, opts Options) (iter.Seq[product.Product], error)
	Featured(ctx context.Context) ([]product.Product, error)
	Categories() []product.Category
}

type service struct {
	backend backend.Backend
}

func NewService(b backend.Backend) Service {
	return &service{backend: b}
}

// remoteFilter pushes the equality predicates down. The limit is only pushed
// when nothing local could drop or reorder rows.
func remoteFilter(opts Options) product.Filter {
	f := product.Filter{Category: opts.Category}
	if opts.OnSaleOnly {
		onSale := true
		f.OnSale = &onSale
	}
	if opts.Query == "" && !opts.MaxPrice.Valid && (opts.Sort == "" || opts.Sort == SortNone) {
		f.Limit = opts.Limit
	}
	return f
}

func (s *service) List(ctx context.Context, opts Options) (iter.Seq[product.Product], error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListCatalog"),
	)

	products, err := s.backend.FetchProducts(ctx, remoteFilter(opts))
	if err != nil {
		log.Error("failed to fetch products", zap.Error(err))
		return nil, err
	}

	log.Debug("products fetched",
		zap.Int("fetched", len(products)),
		zap.String("category", string(opts.Category)),
		zap.Bool("on_sale_only", opts.OnSaleOnly),
		zap.String("sort", string(opts.Sort)),
	)
	return Apply(products, opts), nil
}

func (s *service) Featured(ctx context.Context) ([]product.Product, error) {
	seq, err := s.List(ctx, Options{OnSaleOnly: true, Limit: FeaturedLimit})
	if err != nil {
		return nil, err
	}
	out := slices.Collect(seq)
	if out == nil {
		out = []product.Product{}
	}
	return out, nil
}

func (s *service) Categories() []product.Category {
	return slices.Clone(product.StorefrontCategories)
}
