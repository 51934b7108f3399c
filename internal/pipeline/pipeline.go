// Package pipeline renders declarative listing specs into MongoDB
// aggregation pipelines. Stage order is fixed: match, lookup, addFields,
// project, sort.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrCredentialField is returned when a projection would expose a
	// password or refresh token, directly or through a whole users join.
	ErrCredentialField = errors.New("pipeline: projection exposes credential field")
	ErrNoProjection    = errors.New("pipeline: projection allow-list is empty")
	ErrInvalidJoin     = errors.New("pipeline: join is incomplete")
)

var credentialFields = map[string]bool{
	"password":     true,
	"refreshtoken": true,
}

const usersCollection = "users"

type SortKey struct {
	Field string
	Desc  bool
}

// Join resolves LocalField against ForeignField in From. Single joins keep
// only the first match, leaving the field absent when nothing matched.
// Pipeline, when set, shapes the joined documents.
type Join struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
	Single       bool
	Pipeline     *Spec
}

// Field is a computed field added after all joins have resolved.
type Field struct {
	Name string
	Expr interface{}
}

// Spec describes one listing use case.
type Spec struct {
	Name    string
	Match   bson.D
	Joins   []Join
	Derive  []Field
	Project []string
	Sort    []SortKey
}

// Filter is the match predicate the total count runs against.
func (s Spec) Filter() bson.D {
	if s.Match == nil {
		return bson.D{}
	}
	return s.Match
}

// Stages validates the spec and renders the full pipeline. The sort always
// ends with createdAt then _id so equal keys keep a stable order.
func (s Spec) Stages() (mongo.Pipeline, error) {
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	return s.render(true), nil
}

func (s Spec) validate() error {
	if len(s.Project) == 0 {
		return ErrNoProjection
	}

	shaped := make(map[string]bool, len(s.Joins))
	for _, j := range s.Joins {
		if j.From == "" || j.LocalField == "" || j.ForeignField == "" || j.As == "" {
			return ErrInvalidJoin
		}
		if j.Pipeline != nil {
			if err := j.Pipeline.validate(); err != nil {
				return fmt.Errorf("join %s: %w", j.As, err)
			}
		}
		shaped[j.As] = j.From != usersCollection || j.Pipeline != nil
	}

	for _, path := range s.Project {
		if isCredentialPath(path) {
			return fmt.Errorf("%w: %s", ErrCredentialField, path)
		}
		if safe, ok := shaped[path]; ok && !safe {
			return fmt.Errorf("%w: whole users join %s", ErrCredentialField, path)
		}
	}
	return nil
}

func isCredentialPath(path string) bool {
	last := path
	if i := strings.LastIndex(path, "."); i >= 0 {
		last = path[i+1:]
	}
	return credentialFields[strings.ToLower(last)]
}

func (s Spec) render(top bool) mongo.Pipeline {
	var stages mongo.Pipeline

	if top || len(s.Match) > 0 {
		stages = append(stages, bson.D{{Key: "$match", Value: s.Filter()}})
	}

	for _, j := range s.Joins {
		lookup := bson.D{
			{Key: "from", Value: j.From},
			{Key: "localField", Value: j.LocalField},
			{Key: "foreignField", Value: j.ForeignField},
		}
		if j.Pipeline != nil {
			lookup = append(lookup, bson.E{Key: "pipeline", Value: j.Pipeline.render(false)})
		}
		lookup = append(lookup, bson.E{Key: "as", Value: j.As})
		stages = append(stages, bson.D{{Key: "$lookup", Value: lookup}})
	}

	var collapse bson.D
	for _, j := range s.Joins {
		if j.Single {
			collapse = append(collapse, bson.E{Key: j.As, Value: bson.M{"$arrayElemAt": bson.A{"$" + j.As, 0}}})
		}
	}
	if len(collapse) > 0 {
		stages = append(stages, bson.D{{Key: "$addFields", Value: collapse}})
	}

	if len(s.Derive) > 0 {
		derived := make(bson.D, 0, len(s.Derive))
		for _, f := range s.Derive {
			derived = append(derived, bson.E{Key: f.Name, Value: f.Expr})
		}
		stages = append(stages, bson.D{{Key: "$addFields", Value: derived}})
	}

	sortKeys := s.Sort
	if top {
		sortKeys = withTieBreakers(s.Sort)
	}

	stages = append(stages, bson.D{{Key: "$project", Value: projection(s.Project, sortKeys)}})

	if len(sortKeys) > 0 {
		order := make(bson.D, 0, len(sortKeys))
		for _, k := range sortKeys {
			dir := 1
			if k.Desc {
				dir = -1
			}
			order = append(order, bson.E{Key: k.Field, Value: dir})
		}
		stages = append(stages, bson.D{{Key: "$sort", Value: order}})
	}
	return stages
}

// withTieBreakers appends createdAt and _id in the direction of the primary
// key unless they are already present.
func withTieBreakers(keys []SortKey) []SortKey {
	desc := true
	if len(keys) > 0 {
		desc = keys[0].Desc
	}

	out := append([]SortKey(nil), keys...)
	seen := make(map[string]bool, len(keys)+2)
	for _, k := range keys {
		seen[k.Field] = true
	}
	for _, field := range []string{"createdAt", "_id"} {
		if !seen[field] {
			out = append(out, SortKey{Field: field, Desc: desc})
		}
	}
	return out
}

func projection(fields []string, sortKeys []SortKey) bson.D {
	out := make(bson.D, 0, len(fields)+len(sortKeys))
	seen := make(map[string]bool, len(fields)+len(sortKeys))
	add := func(path string) {
		if path == "_id" || seen[path] || coveredByParent(path, seen) {
			return
		}
		seen[path] = true
		out = append(out, bson.E{Key: path, Value: 1})
	}
	for _, f := range fields {
		add(f)
	}
	for _, k := range sortKeys {
		add(k.Field)
	}
	return out
}

// coveredByParent reports whether a dotted path is already included through
// one of its parents; Mongo rejects projections that name both.
func coveredByParent(path string, seen map[string]bool) bool {
	for i := strings.Index(path, "."); i >= 0; {
		if seen[path[:i]] {
			return true
		}
		next := strings.Index(path[i+1:], ".")
		if next < 0 {
			break
		}
		i += next + 1
	}
	return false
}
