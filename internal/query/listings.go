package query

import (
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/pagination"
	"vidtube/internal/pipeline"
)

var videoSortFields = []string{"createdAt", "views", "duration", "title"}

// Listing is a validated listing request ready for a pipeline spec.
type Listing struct {
	Match bson.D
	Sort  []pipeline.SortKey
	Page  pagination.Params
}

// VideoListing validates GET /videos: published videos, optional owner and
// free-text filters, mandatory sort direction.
func VideoListing(values url.Values) (Listing, error) {
	page, err := ParsePage(values, DefaultLimit)
	if err != nil {
		return Listing{}, err
	}

	match := bson.D{{Key: "isPublished", Value: true}}

	if owner := strings.TrimSpace(values.Get("userId")); owner != "" {
		id, err := ParseObjectID(owner, "userId")
		if err != nil {
			return Listing{}, err
		}
		match = append(match, bson.E{Key: "owner", Value: id})
	}

	search, ok, err := TextSearch(values.Get("query"), "title", "description")
	if err != nil {
		return Listing{}, err
	}
	if ok {
		match = append(match, search)
	}

	sort, err := ParseSort(values.Get("sortBy"), values.Get("sortType"), SortRule{
		Allowed:           videoSortFields,
		DefaultField:      "createdAt",
		DefaultDesc:       true,
		DirectionRequired: true,
	})
	if err != nil {
		return Listing{}, err
	}

	return Listing{Match: match, Sort: sort, Page: page}, nil
}

// ChannelVideoListing validates GET /dashboard?channelId=: one channel's
// published videos, oldest first unless a sort is given.
func ChannelVideoListing(values url.Values) (Listing, primitive.ObjectID, error) {
	channelID, err := ParseObjectID(values.Get("channelId"), "channelId")
	if err != nil {
		return Listing{}, primitive.NilObjectID, err
	}

	page, err := ParsePage(values, DefaultLimit)
	if err != nil {
		return Listing{}, primitive.NilObjectID, err
	}

	match := bson.D{
		{Key: "owner", Value: channelID},
		{Key: "isPublished", Value: true},
	}

	search, ok, err := TextSearch(values.Get("query"), "title", "description")
	if err != nil {
		return Listing{}, primitive.NilObjectID, err
	}
	if ok {
		match = append(match, search)
	}

	sort, err := ParseSort(values.Get("sortBy"), values.Get("sortType"), SortRule{
		Allowed:      videoSortFields,
		DefaultField: "createdAt",
	})
	if err != nil {
		return Listing{}, primitive.NilObjectID, err
	}

	return Listing{Match: match, Sort: sort, Page: page}, channelID, nil
}
