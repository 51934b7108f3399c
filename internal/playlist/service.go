package playlist

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
)

type CreateInput struct {
	Name        string
	Description string
	// Videos holds raw ids. Malformed, unknown and repeated ids are dropped.
	Videos []string
}

type PlaylistService interface {
	Create(ctx context.Context, owner primitive.ObjectID, in CreateInput) (*dbmongo.Playlist, error)
	ListForUser(ctx context.Context, userID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.PlaylistRow], error)
	Get(ctx context.Context, id primitive.ObjectID) (*dbmongo.PlaylistRow, error)
	Update(ctx context.Context, id, owner primitive.ObjectID, name, description string) (*dbmongo.Playlist, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
	AddVideo(ctx context.Context, id, videoID, owner primitive.ObjectID) (*dbmongo.Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID, owner primitive.ObjectID) (*dbmongo.Playlist, error)
	CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error
}

type playlistService struct {
	playlistRepo PlaylistRepository
}

func NewPlaylistService(playlistRepo PlaylistRepository) PlaylistService {
	return &playlistService{playlistRepo: playlistRepo}
}

func validDetails(name, description string) (string, string, error) {
	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	if name == "" || description == "" {
		return "", "", common.ErrValidation("Both name and description of the playlist are required")
	}
	return name, description, nil
}

// candidateIDs parses raw in order, skipping malformed ids and repeats.
func candidateIDs(raw []string) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(raw))
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, r := range raw {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(r))
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (s *playlistService) Create(ctx context.Context, owner primitive.ObjectID, in CreateInput) (*dbmongo.Playlist, error) {
	name, description, err := validDetails(in.Name, in.Description)
	if err != nil {
		return nil, err
	}

	candidates := candidateIDs(in.Videos)
	existing, err := s.playlistRepo.ExistingVideos(ctx, candidates)
	if err != nil {
		return nil, common.ErrInternal("Failed to load videos", err)
	}

	found := make(map[primitive.ObjectID]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}
	videos := make([]primitive.ObjectID, 0, len(existing))
	for _, id := range candidates {
		if _, ok := found[id]; ok {
			videos = append(videos, id)
		}
	}
	if len(videos) == 0 {
		return nil, common.ErrValidation("Playlist must consist of at least one video")
	}

	playlist := &dbmongo.Playlist{Name: name, Description: description, Videos: videos, Owner: owner}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, common.ErrInternal("Failed to create playlist", err)
	}
	return playlist, nil
}

func (s *playlistService) ListForUser(ctx context.Context, userID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.PlaylistRow], error) {
	ok, err := s.playlistRepo.UserExists(ctx, userID)
	if err != nil {
		return nil, common.ErrInternal("Failed to load user", err)
	}
	if !ok {
		return nil, common.ErrNotFound("User not found")
	}

	page, err := s.playlistRepo.ListForUser(ctx, userID, params)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch playlists", err)
	}
	return page, nil
}

func (s *playlistService) Get(ctx context.Context, id primitive.ObjectID) (*dbmongo.PlaylistRow, error) {
	row, err := s.playlistRepo.FindRow(ctx, id)
	if err != nil {
		return nil, lookupError(err)
	}
	return row, nil
}

func (s *playlistService) Update(ctx context.Context, id, owner primitive.ObjectID, name, description string) (*dbmongo.Playlist, error) {
	if _, err := s.ownedPlaylist(ctx, id, owner); err != nil {
		return nil, err
	}
	name, description, err := validDetails(name, description)
	if err != nil {
		return nil, err
	}

	playlist, err := s.playlistRepo.UpdateDetails(ctx, id, name, description)
	if err != nil {
		return nil, lookupError(err)
	}
	return playlist, nil
}

func (s *playlistService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if _, err := s.ownedPlaylist(ctx, id, owner); err != nil {
		return err
	}
	if err := s.playlistRepo.Delete(ctx, id); err != nil {
		return lookupError(err)
	}
	return nil
}

func (s *playlistService) AddVideo(ctx context.Context, id, videoID, owner primitive.ObjectID) (*dbmongo.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if contains(playlist.Videos, videoID) {
		return nil, common.ErrConflict("Video is already present in the playlist")
	}

	existing, err := s.playlistRepo.ExistingVideos(ctx, []primitive.ObjectID{videoID})
	if err != nil {
		return nil, common.ErrInternal("Failed to load video", err)
	}
	if len(existing) == 0 {
		return nil, common.ErrNotFound("Video not found")
	}

	updated, added, err := s.playlistRepo.AddVideo(ctx, id, videoID)
	if err != nil {
		return nil, lookupError(err)
	}
	if !added {
		return nil, common.ErrConflict("Video is already present in the playlist")
	}
	return updated, nil
}

func (s *playlistService) RemoveVideo(ctx context.Context, id, videoID, owner primitive.ObjectID) (*dbmongo.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if !contains(playlist.Videos, videoID) {
		return nil, common.ErrNotFound("Video not present in the playlist")
	}

	updated, removed, err := s.playlistRepo.RemoveVideo(ctx, id, videoID)
	if err != nil {
		return nil, lookupError(err)
	}
	if !removed {
		return nil, common.ErrNotFound("Video not present in the playlist")
	}
	return updated, nil
}

func (s *playlistService) CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error {
	_, err := s.ownedPlaylist(ctx, id, owner)
	return err
}

func (s *playlistService) ownedPlaylist(ctx context.Context, id, owner primitive.ObjectID) (*dbmongo.Playlist, error) {
	playlist, err := s.playlistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err)
	}
	if playlist.Owner != owner {
		return nil, common.ErrForbidden("You are not the owner of this playlist")
	}
	return playlist, nil
}

func contains(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func lookupError(err error) error {
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.ErrNotFound("Playlist not found")
	}
	return common.ErrInternal("Failed to access playlist", err)
}
