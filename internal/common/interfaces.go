package common

import (
	"context"
)

// LocalFile is an upload spooled to local disk, waiting to be forwarded to
// object storage.
type LocalFile struct {
	Path        string
	Filename    string
	ContentType string
	Size        int64
}

// ObjectStorage keeps uploaded media and hands back a public URL.
type ObjectStorage interface {
	Store(ctx context.Context, file *LocalFile) (string, error)
	Delete(ctx context.Context, url string) error
}

// DurationProber reports the playback length of a media file in seconds.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}
