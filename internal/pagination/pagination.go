// Package pagination runs a pipeline spec under a page window and counts the
// unwindowed total alongside it.
package pagination

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"vidtube/internal/pipeline"
)

// Source is the part of *mongo.Collection the pagination layer needs.
type Source interface {
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type Params struct {
	Page  int64
	Limit int64
}

func (p Params) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// Page is the listing envelope returned to clients.
type Page[T any] struct {
	Docs          []T    `json:"docs"`
	TotalDocs     int64  `json:"totalDocs"`
	Limit         int64  `json:"limit"`
	Page          int64  `json:"page"`
	TotalPages    int64  `json:"totalPages"`
	PagingCounter int64  `json:"pagingCounter"`
	HasPrevPage   bool   `json:"hasPrevPage"`
	HasNextPage   bool   `json:"hasNextPage"`
	PrevPage      *int64 `json:"prevPage"`
	NextPage      *int64 `json:"nextPage"`
}

// Empty reports a page with no rows, either because the collection is empty
// or because the page lies past the end.
func (p *Page[T]) Empty() bool {
	return len(p.Docs) == 0
}

// NewPage fills in the navigation fields for docs fetched under params out
// of total matching rows.
func NewPage[T any](docs []T, total int64, params Params) *Page[T] {
	if docs == nil {
		docs = []T{}
	}

	totalPages := int64(1)
	if params.Limit > 0 && total > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	page := &Page[T]{
		Docs:          docs,
		TotalDocs:     total,
		Limit:         params.Limit,
		Page:          params.Page,
		TotalPages:    totalPages,
		PagingCounter: params.Skip() + 1,
		HasPrevPage:   params.Page > 1,
		HasNextPage:   params.Page < totalPages,
	}
	if page.HasPrevPage {
		prev := params.Page - 1
		page.PrevPage = &prev
	}
	if page.HasNextPage {
		next := params.Page + 1
		page.NextPage = &next
	}
	return page
}

// Aggregate runs spec windowed by params and, concurrently, counts the
// documents matching spec's filter. The count ignores joins, which never
// change the number of base rows.
func Aggregate[T any](ctx context.Context, source Source, spec pipeline.Spec, params Params) (*Page[T], error) {
	stages, err := spec.Stages()
	if err != nil {
		return nil, err
	}
	stages = append(stages,
		bson.D{{Key: "$skip", Value: params.Skip()}},
		bson.D{{Key: "$limit", Value: params.Limit}},
	)

	var (
		docs  []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := source.Aggregate(gctx, stages)
		if err != nil {
			return fmt.Errorf("%s: aggregate: %w", spec.Name, err)
		}
		if err := cursor.All(gctx, &docs); err != nil {
			return fmt.Errorf("%s: decode: %w", spec.Name, err)
		}
		return nil
	})
	g.Go(func() error {
		n, err := source.CountDocuments(gctx, spec.Filter())
		if err != nil {
			return fmt.Errorf("%s: count: %w", spec.Name, err)
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewPage(docs, total, params), nil
}

// First runs spec unwindowed and decodes its first row. ok is false when the
// pipeline produced nothing.
func First[T any](ctx context.Context, source Source, spec pipeline.Spec) (row T, ok bool, err error) {
	stages, err := spec.Stages()
	if err != nil {
		return row, false, err
	}
	stages = append(stages, bson.D{{Key: "$limit", Value: 1}})

	cursor, err := source.Aggregate(ctx, stages)
	if err != nil {
		return row, false, fmt.Errorf("%s: aggregate: %w", spec.Name, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return row, false, cursor.Err()
	}
	if err := cursor.Decode(&row); err != nil {
		return row, false, fmt.Errorf("%s: decode: %w", spec.Name, err)
	}
	return row, true, nil
}
