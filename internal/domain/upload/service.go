package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// MaxFileSize caps a single upload at 50MB.
const MaxFileSize = 50 << 20

var (
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrUnsupportedType = errors.New("unsupported file type")
)

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".pdf":  "application/pdf",
}

// Service streams media files into a Cloud Storage bucket
type Service struct {
	client *storage.Client
	bucket string
}

// NewService creates upload service
func NewService(client *storage.Client, bucket string) *Service {
	return &Service{client: client, bucket: bucket}
}

// UploadedFile describes a stored object
type UploadedFile struct {
	URL         string `json:"url"`
	ObjectName  string `json:"object_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Upload writes the file under uploads/YYYY/MM/DD with a random prefix so
// repeated uploads of the same filename never collide.
func (s *Service) Upload(ctx context.Context, header *multipart.FileHeader) (*UploadedFile, error) {
	if header.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return nil, ErrUnsupportedType
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := sanitizeFilename(header.Filename)
	objectName := fmt.Sprintf("uploads/%s/%s_%s", time.Now().UTC().Format("2006/01/02"), uuid.NewString(), name)

	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return nil, fmt.Errorf("write object %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close object %s: %w", objectName, err)
	}

	return &UploadedFile{
		URL:         fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName),
		ObjectName:  objectName,
		ContentType: contentType,
		Size:        header.Size,
	}, nil
}

// Delete removes a previously uploaded object
func (s *Service) Delete(ctx context.Context, objectName string) error {
	err := s.client.Bucket(s.bucket).Object(objectName).Delete(ctx)
	if err == storage.ErrObjectNotExist {
		return nil
	}
	return err
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "-")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
