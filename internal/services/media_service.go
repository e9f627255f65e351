package services

import (
	"context"
	"io"
	"log"
	"path"

	"github.com/google/uuid"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/models"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

// UploadInput carries one panel submission. Title and Description are only
// meaningful for panels constructed with metadata required.
type UploadInput struct {
	Title       string
	Description string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadProgress mirrors repository.UploadEvent one level up: progress
// events followed by one terminal event carrying either the registered
// asset or the failure.
type UploadProgress struct {
	Percent float64
	Asset   *models.MediaAsset
	Err     error
	Done    bool
}

// MediaService drives one upload panel. Both panels share the logic; they
// differ in collection, key prefix and validation strictness.
type MediaService struct {
	docs         repository.MediaRepository
	blobs        repository.BlobStore
	keyPrefix    string
	requireMeta  bool
	allowedTypes []string
}

func NewLogoPanel(docs repository.MediaRepository, blobs repository.BlobStore) *MediaService {
	return &MediaService{docs: docs, blobs: blobs, keyPrefix: "logos/"}
}

func NewScreenshotPanel(docs repository.MediaRepository, blobs repository.BlobStore) *MediaService {
	return &MediaService{
		docs:         docs,
		blobs:        blobs,
		keyPrefix:    "screenshots/",
		requireMeta:  true,
		allowedTypes: []string{"image/jpeg", "image/png", "image/gif"},
	}
}

func (s *MediaService) List(ctx context.Context) ([]models.MediaAsset, error) {
	return s.docs.List(ctx)
}

// Upload runs the two-phase create: blob first, then the referencing
// document. Progress is relayed monotonically; exactly one terminal event
// ends the sequence. A phase-two failure leaves the blob orphaned, which
// is accepted and logged, never rolled back.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (<-chan UploadProgress, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	key := s.keyPrefix + uuid.NewString() + path.Ext(in.Filename)
	out := make(chan UploadProgress)

	go func() {
		defer close(out)

		highWater := 0.0
		for ev := range s.blobs.Upload(ctx, key, in.Body, in.Size) {
			if ev.Done {
				if ev.Err != nil {
					out <- UploadProgress{Percent: highWater, Err: ev.Err, Done: true}
					return
				}
				asset, err := s.docs.Create(ctx, models.MediaAsset{
					Title:       in.Title,
					Description: in.Description,
					AssetURL:    ev.URL,
					ObjectKey:   key,
				})
				if err != nil {
					log.Printf("⚠️ Asset register failed after upload; orphan blob at %s", key)
					out <- UploadProgress{Percent: highWater, Err: err, Done: true}
					return
				}
				out <- UploadProgress{Percent: 100, Asset: asset, Done: true}
				return
			}
			if ev.Percent > highWater {
				highWater = ev.Percent
				out <- UploadProgress{Percent: highWater}
			}
		}
		// The blob store closed without a terminal event; treat as failure
		// so the sequence still ends exactly once.
		out <- UploadProgress{Percent: highWater, Err: common.NewError(common.CodeUpload, "upload ended without result", nil), Done: true}
	}()

	return out, nil
}

// Delete removes the document first, then the blob. Not transactional: if
// either step fails the whole operation reports failure and the caller
// keeps the item visible for retry.
func (s *MediaService) Delete(ctx context.Context, id string) error {
	asset, err := s.docs.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.docs.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, asset.ObjectKey); err != nil {
		log.Printf("⚠️ Blob delete failed after document delete; orphan blob at %s", asset.ObjectKey)
		return err
	}
	return nil
}

func (s *MediaService) validate(in UploadInput) error {
	fields := map[string]string{}
	if in.Filename == "" || in.Body == nil {
		fields["file"] = "a file is required"
	}
	if s.requireMeta {
		if in.Title == "" {
			fields["title"] = "title is required"
		}
		if in.Description == "" {
			fields["description"] = "description is required"
		}
	}
	if len(s.allowedTypes) > 0 && !contains(s.allowedTypes, in.ContentType) {
		fields["file"] = "file must be a jpeg, png or gif image"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid upload", fields)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
