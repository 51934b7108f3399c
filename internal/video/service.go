package video

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/logging"
	"vidtube/internal/media"
	"vidtube/internal/pagination"
	"vidtube/internal/query"
)

type PublishInput struct {
	Title       string
	Description string
	VideoFile   *common.LocalFile
	Thumbnail   *common.LocalFile
}

type UpdateInput struct {
	Title       *string
	Description *string
	Thumbnail   *common.LocalFile
}

type VideoService interface {
	List(ctx context.Context, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error)
	Publish(ctx context.Context, owner primitive.ObjectID, in PublishInput) (*dbmongo.Video, error)
	Get(ctx context.Context, id, viewer primitive.ObjectID) (*dbmongo.VideoRow, error)
	Update(ctx context.Context, id, owner primitive.ObjectID, in UpdateInput) (*dbmongo.Video, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
	TogglePublish(ctx context.Context, id, owner primitive.ObjectID) (*dbmongo.Video, error)
	CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error
}

type videoService struct {
	videoRepo VideoRepository
	storage   common.ObjectStorage
	prober    common.DurationProber
}

func NewVideoService(videoRepo VideoRepository, storage common.ObjectStorage, prober common.DurationProber) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		storage:   storage,
		prober:    prober,
	}
}

func (s *videoService) List(ctx context.Context, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error) {
	page, err := s.videoRepo.List(ctx, listing)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch videos", err)
	}
	return page, nil
}

func (s *videoService) Publish(ctx context.Context, owner primitive.ObjectID, in PublishInput) (*dbmongo.Video, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return nil, common.ErrValidation("Title and description are required")
	}
	if in.VideoFile == nil {
		return nil, common.ErrValidation("Video file is required")
	}
	if in.Thumbnail == nil {
		return nil, common.ErrValidation("Thumbnail is required")
	}
	if common.DetectFileType(in.VideoFile.ContentType) != common.MediaFileTypeVideo {
		return nil, common.ErrValidation("Video file must be a video")
	}

	duration, err := s.prober.Duration(ctx, in.VideoFile.Path)
	if err != nil {
		logging.FromContext(ctx).Warn("duration probe failed", "file", in.VideoFile.Filename, "error", err)
		return nil, common.ErrValidation("Could not read video duration")
	}

	videoURL, err := media.Forward(ctx, s.storage, in.VideoFile)
	if err != nil {
		return nil, common.ErrInternal("Failed to upload video", err)
	}
	thumbnailURL, err := media.Forward(ctx, s.storage, in.Thumbnail)
	if err != nil {
		s.deleteMedia(ctx, videoURL)
		return nil, common.ErrInternal("Failed to upload thumbnail", err)
	}

	video := &dbmongo.Video{
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       title,
		Description: description,
		Duration:    duration,
		IsPublished: true,
		Owner:       owner,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		s.deleteMedia(ctx, videoURL, thumbnailURL)
		return nil, common.ErrInternal("Failed to publish video", err)
	}

	logging.FromContext(ctx).Info("video published", "video_id", video.ID.Hex(), "owner", owner.Hex(), "duration", duration)
	return video, nil
}

// Get returns a published video, or an unpublished one to its owner, and
// counts the view.
func (s *videoService) Get(ctx context.Context, id, viewer primitive.ObjectID) (*dbmongo.VideoRow, error) {
	video, err := s.videoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err)
	}
	if !video.IsPublished && video.Owner != viewer {
		return nil, common.ErrNotFound("Video not found")
	}

	if err := s.videoRepo.RecordView(ctx, id, viewer); err != nil {
		if errors.Is(err, dbmongo.ErrNotFound) {
			return nil, common.ErrNotFound("Video not found")
		}
		logging.FromContext(ctx).Warn("failed to record view", "video_id", id.Hex(), "error", err)
	}

	row, err := s.videoRepo.FindRow(ctx, id)
	if err != nil {
		return nil, lookupError(err)
	}
	return row, nil
}

func (s *videoService) Update(ctx context.Context, id, owner primitive.ObjectID, in UpdateInput) (*dbmongo.Video, error) {
	video, err := s.ownedVideo(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	patch := Patch{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, common.ErrValidation("Title cannot be empty")
		}
		patch.Title = &title
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, common.ErrValidation("Description cannot be empty")
		}
		patch.Description = &description
	}
	if patch.Empty() && in.Thumbnail == nil {
		return nil, common.ErrValidation("Nothing to update", "provide title, description or thumbnail")
	}

	if in.Thumbnail != nil {
		url, err := media.Forward(ctx, s.storage, in.Thumbnail)
		if err != nil {
			return nil, common.ErrInternal("Failed to upload thumbnail", err)
		}
		patch.Thumbnail = url
	}

	updated, err := s.videoRepo.Update(ctx, id, patch)
	if err != nil {
		s.deleteMedia(ctx, patch.Thumbnail)
		return nil, lookupError(err)
	}
	if patch.Thumbnail != "" {
		s.deleteMedia(ctx, video.Thumbnail)
	}
	return updated, nil
}

func (s *videoService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	video, err := s.ownedVideo(ctx, id, owner)
	if err != nil {
		return err
	}

	if err := s.videoRepo.Delete(ctx, id); err != nil {
		return lookupError(err)
	}
	s.deleteMedia(ctx, video.VideoFile, video.Thumbnail)

	logging.FromContext(ctx).Info("video deleted", "video_id", id.Hex(), "owner", owner.Hex())
	return nil
}

func (s *videoService) TogglePublish(ctx context.Context, id, owner primitive.ObjectID) (*dbmongo.Video, error) {
	if _, err := s.ownedVideo(ctx, id, owner); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.TogglePublish(ctx, id)
	if err != nil {
		return nil, lookupError(err)
	}
	return video, nil
}

// ownedVideo loads the video and checks that owner may modify it.
func (s *videoService) CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error {
	_, err := s.ownedVideo(ctx, id, owner)
	return err
}

func (s *videoService) ownedVideo(ctx context.Context, id, owner primitive.ObjectID) (*dbmongo.Video, error) {
	video, err := s.videoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err)
	}
	if video.Owner != owner {
		return nil, common.ErrForbidden("You are not the owner of this video")
	}
	return video, nil
}

func (s *videoService) deleteMedia(ctx context.Context, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := s.storage.Delete(ctx, url); err != nil {
			logging.FromContext(ctx).Warn("failed to delete media", "url", url, "error", err)
		}
	}
}

func lookupError(err error) error {
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.ErrNotFound("Video not found")
	}
	return common.ErrInternal("Failed to access video", err)
}
