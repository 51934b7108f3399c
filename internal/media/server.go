package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/logging"
)

// FileSource is the read side of the GridFS media bucket.
type FileSource interface {
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.MediaFile, error)
}

// HTTPServer streams stored media back to clients at /media/{fileId}.
type HTTPServer struct {
	files FileSource
}

func NewHTTPServer(files FileSource) *HTTPServer {
	return &HTTPServer{files: files}
}

func (s *HTTPServer) Register(router *mux.Router) {
	router.HandleFunc("/media/{fileId}", s.serveFile).Methods(http.MethodGet, http.MethodHead)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	reader, mediaFile, err := s.files.DownloadFile(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, dbmongo.ErrNotFound) {
			common.WriteError(w, r, common.ErrNotFound("File not found"))
			return
		}
		common.WriteError(w, r, common.ErrValidation("Invalid file id"))
		return
	}
	defer reader.Close()

	contentType := mediaFile.ContentType
	if contentType == "" {
		contentType = common.ContentTypeFor(mediaFile.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", mediaFile.Size))
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, reader); err != nil {
		logging.FromContext(r.Context()).Warn("media stream interrupted", "file_id", fileID, "error", err)
	}
}
