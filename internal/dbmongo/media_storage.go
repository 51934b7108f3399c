package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/common"
)

// MediaStorage keeps uploads in the GridFS bucket and serves them back
// through media.HTTPServer at {baseURL}/media/{fileId}.
type MediaStorage struct {
	gridFS  *gridfs.Bucket
	baseURL string
}

func NewMediaStorage(mongoClient *MongoClient, baseURL string) *MediaStorage {
	return &MediaStorage{
		gridFS:  mongoClient.GridFS,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type MediaFile struct {
	ID          string               `json:"id"`
	Filename    string               `json:"filename"`
	ContentType string               `json:"content_type"`
	Size        int64                `json:"size"`
	FileType    common.MediaFileType `json:"file_type"`
	UploadedAt  time.Time            `json:"uploaded_at"`
}

func (ms *MediaStorage) UploadFile(ctx context.Context, filename, mimeType string, content io.Reader) (*MediaFile, error) {
	fileType := common.DetectFileType(mimeType)

	metadata := bson.M{
		"file_type":   fileType.String(),
		"mime_type":   mimeType,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("upload finalize failed: %w", err)
	}

	return &MediaFile{
		ID:          stream.FileID.(primitive.ObjectID).Hex(),
		Filename:    filename,
		ContentType: mimeType,
		Size:        size,
		FileType:    fileType,
		UploadedAt:  time.Now(),
	}, nil
}

func (ms *MediaStorage) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *MediaFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := ms.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	mediaFile := &MediaFile{
		ID:          fileID,
		Filename:    fileInfo.Name,
		ContentType: getStringFromMap(metadata, "mime_type"),
		Size:        fileInfo.Length,
		FileType:    common.MediaFileType(getStringFromMap(metadata, "file_type")),
		UploadedAt:  fileInfo.UploadDate,
	}

	return stream, mediaFile, nil
}

func (ms *MediaStorage) DeleteFile(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	if err := ms.gridFS.Delete(objectID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
		return err
	}
	return nil
}

// Store uploads a spooled file and returns its public URL.
func (ms *MediaStorage) Store(ctx context.Context, file *common.LocalFile) (string, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = common.ContentTypeFor(file.Filename)
	}

	uploaded, err := ms.UploadFile(ctx, file.Filename, contentType, f)
	if err != nil {
		return "", err
	}
	return ms.URLFor(uploaded.ID), nil
}

// Delete removes the file behind a URL produced by Store. URLs that do not
// point into this bucket are ignored.
func (ms *MediaStorage) Delete(ctx context.Context, url string) error {
	fileID, ok := ms.FileIDFromURL(url)
	if !ok {
		return nil
	}
	return ms.DeleteFile(ctx, fileID)
}

func (ms *MediaStorage) URLFor(fileID string) string {
	return fmt.Sprintf("%s/media/%s", ms.baseURL, fileID)
}

func (ms *MediaStorage) FileIDFromURL(url string) (string, bool) {
	if url == "" || !strings.HasPrefix(url, ms.baseURL+"/media/") {
		return "", false
	}
	id := path.Base(url)
	if !primitive.IsValidObjectID(id) {
		return "", false
	}
	return id, true
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
