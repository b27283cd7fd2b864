package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"portfolio-service/internal/metrics"
)

// Storage categories map one-to-one onto object storage folders.
const (
	CategoryProjects     = "projects"
	CategoryCertificates = "certificates"
	CategoryResume       = "resume"
)

// UploadFile is one raw file taken from a multipart request.
type UploadFile struct {
	Name string
	Data []byte
}

// Uploader stores a byte buffer under a key and returns a durable public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// UploadService fans a batch of files out to object storage. Within one
// batch all uploads run concurrently and the result slice preserves input
// order; if any upload fails the whole batch fails.
type UploadService struct {
	Uploader Uploader
	Metrics  *metrics.UploadMetrics
}

// NewUploadService creates a new UploadService with the given storage client.
// Metrics may be nil.
func NewUploadService(uploader Uploader, m *metrics.UploadMetrics) *UploadService {
	return &UploadService{Uploader: uploader, Metrics: m}
}

// imageContentTypes maps supported image extensions to their content type.
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// UploadBatch uploads all files concurrently under the given category.
// Position i of the returned slice is the URL of files[i] regardless of
// completion order. On any failure the batch returns an *UploadError and
// no URLs; objects already stored by sibling uploads are left behind.
func (s *UploadService) UploadBatch(ctx context.Context, category string, files []UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, &ValidationError{Field: "files"}
	}
	s.Metrics.ObserveBatch(len(files))

	// Resolve keys and content types up front so a bad file fails the
	// batch before any network call.
	keys := make([]string, len(files))
	contentTypes := make([]string, len(files))
	for i, f := range files {
		key, contentType, err := s.objectKey(category, f.Name)
		if err != nil {
			return nil, err
		}
		keys[i] = key
		contentTypes[i] = contentType
	}

	urls := make([]string, len(files))
	errChan := make(chan error, len(files))
	var wg sync.WaitGroup

	for i, f := range files {
		wg.Add(1)
		go func(i int, f UploadFile) {
			defer wg.Done()
			start := time.Now()
			url, err := s.Uploader.Upload(ctx, keys[i], contentTypes[i], f.Data)
			s.Metrics.ObserveUpload(category, time.Since(start), err)
			if err != nil {
				errChan <- errors.Wrapf(err, "upload of %s failed", f.Name)
				return
			}
			urls[i] = url
		}(i, f)
	}

	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return nil, &UploadError{Cause: err}
	}
	return urls, nil
}

// UploadAndMerge uploads new files and appends their URLs to the retained
// set. The cap is checked against retained+new before any upload starts,
// so an oversized request performs zero network calls.
func (s *UploadService) UploadAndMerge(ctx context.Context, category string, retained []string, files []UploadFile) ([]string, error) {
	set := ImageSet(retained)
	if err := set.CanAccept(len(files)); err != nil {
		return nil, err
	}
	urls, err := s.UploadBatch(ctx, category, files)
	if err != nil {
		return nil, err
	}
	merged, err := set.Merge(urls)
	if err != nil {
		return nil, err
	}
	return []string(merged), nil
}

// UploadOne uploads a single file and returns its URL.
func (s *UploadService) UploadOne(ctx context.Context, category string, file UploadFile) (string, error) {
	urls, err := s.UploadBatch(ctx, category, []UploadFile{file})
	if err != nil {
		return "", err
	}
	return urls[0], nil
}

// objectKey builds a unique storage key for a file. Image categories accept
// the supported image formats; the resume category only accepts PDF and
// keys its objects by upload time so versions sort naturally in the bucket.
func (s *UploadService) objectKey(category, filename string) (key, contentType string, err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if category == CategoryResume {
		if ext != ".pdf" {
			return "", "", &ValidationError{Field: "file (PDF required)"}
		}
		key = fmt.Sprintf("%s/resume_%d_%s.pdf", category, time.Now().UnixMilli(), shortID())
		return key, "application/pdf", nil
	}
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", "", &ValidationError{Field: fmt.Sprintf("file (unsupported format %s)", ext)}
	}
	key = fmt.Sprintf("%s/%s%s", category, uuid.New().String(), ext)
	return key, contentType, nil
}

func shortID() string {
	return uuid.New().String()[:8]
}
