// Package query turns raw request parameters into validated match
// predicates, sort keys and page windows.
package query

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/pagination"
	"vidtube/internal/pipeline"
)

const (
	DefaultLimit     = 10
	DefaultLikeLimit = 20
	MaxLimit         = 100
	MaxSearchLength  = 50
)

// ParsePage reads page and limit. Both default when absent and must be
// positive integers when present. A limit above MaxLimit, or a page whose
// skip would overflow int64, is a validation error.
func ParsePage(values url.Values, defaultLimit int) (pagination.Params, error) {
	page, err := positiveInt(values.Get("page"), 1, "Page")
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := positiveInt(values.Get("limit"), int64(defaultLimit), "Limit")
	if err != nil {
		return pagination.Params{}, err
	}
	if limit > MaxLimit {
		return pagination.Params{}, common.ErrValidation(fmt.Sprintf("Limit must be at most %d", MaxLimit))
	}
	if page-1 > math.MaxInt64/limit {
		return pagination.Params{}, common.ErrValidation("Page is out of range")
	}
	return pagination.Params{Page: page, Limit: limit}, nil
}

func positiveInt(raw string, def int64, label string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, common.ErrValidation(label + " is out of range")
	}
	if err != nil {
		return 0, common.ErrValidation(label + " must be a number")
	}
	if n < 1 {
		return 0, common.ErrValidation(label + " must be 1 or higher")
	}
	return n, nil
}

// ParseObjectID validates an id-shaped parameter before it reaches the store.
func ParseObjectID(raw, label string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, common.ErrValidation(label + " is required")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.ErrValidation("Invalid " + label)
	}
	return id, nil
}

// TextSearch matches q case-insensitively against any of fields. A blank q
// yields no predicate.
func TextSearch(q string, fields ...string) (bson.E, bool, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return bson.E{}, false, nil
	}
	if len([]rune(q)) > MaxSearchLength {
		return bson.E{}, false, common.ErrValidation("Query must be at most 50 characters")
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.D{{Key: f, Value: pattern}})
	}
	return bson.E{Key: "$or", Value: or}, true, nil
}

// SortRule describes the sort options a listing exposes.
type SortRule struct {
	Allowed      []string
	DefaultField string
	DefaultDesc  bool
	// DirectionRequired makes sortType mandatory even without sortBy.
	DirectionRequired bool
}

// ParseSort validates sortBy against the rule's allow-list and sortType
// against asc/desc. A sortBy without a direction is always an error.
func ParseSort(sortBy, sortType string, rule SortRule) ([]pipeline.SortKey, error) {
	sortBy = strings.TrimSpace(sortBy)
	sortType = strings.ToLower(strings.TrimSpace(sortType))

	if sortType == "" && (rule.DirectionRequired || sortBy != "") {
		return nil, common.ErrValidation("sortType is required", "sortType must be asc or desc")
	}

	desc := rule.DefaultDesc
	switch sortType {
	case "":
	case "asc":
		desc = false
	case "desc":
		desc = true
	default:
		return nil, common.ErrValidation("Invalid sortType", "sortType must be asc or desc")
	}

	field := rule.DefaultField
	if sortBy != "" {
		if !contains(rule.Allowed, sortBy) {
			return nil, common.ErrValidation("Invalid sortBy", "sortBy must be one of "+strings.Join(rule.Allowed, ", "))
		}
		field = sortBy
	}
	return []pipeline.SortKey{{Field: field, Desc: desc}}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
