// Package repository declares the persistence surface the services depend
// on. The document store and the blob store are external collaborators;
// everything here is a thin collection binding, no business rules.
package repository

import (
	"context"
	"io"

	"github.com/zensolve/jobportal-admin/internal/models"
)

// Collection names as they exist in the shared deployment. The public site
// writes jobApplications, users and contactMessages; this service owns the
// rest.
const (
	CollectionJobs         = "jobs"
	CollectionUsers        = "users"
	CollectionApplications = "jobApplications"
	CollectionLogos        = "companyLogos"
	CollectionScreenshots  = "images"
	CollectionTestimonials = "testimonials"
	CollectionSettings     = "settings"
	CollectionMessages     = "contactMessages"
)

type JobRepository interface {
	List(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, job models.Job) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

type ApplicationRepository interface {
	List(ctx context.Context) ([]models.Application, error)
	Get(ctx context.Context, id string) (*models.Application, error)
	SetStatus(ctx context.Context, id string, status models.ApplicationStatus) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepository interface {
	// ContactSettings returns CodeNotFound when the singleton has never
	// been written; callers treat that as the empty shape, not an error.
	ContactSettings(ctx context.Context) (*models.ContactSettings, error)
	SaveContactSettings(ctx context.Context, settings models.ContactSettings) error
}

type TestimonialRepository interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	UpdateReview(ctx context.Context, id, review string) error
	Delete(ctx context.Context, id string) error
}

type MediaRepository interface {
	List(ctx context.Context) ([]models.MediaAsset, error)
	Create(ctx context.Context, asset models.MediaAsset) (*models.MediaAsset, error)
	Get(ctx context.Context, id string) (*models.MediaAsset, error)
	Delete(ctx context.Context, id string) error
}

type MessageRepository interface {
	List(ctx context.Context) ([]models.HelpMessage, error)
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
}

// UploadEvent is one element of the finite, ordered sequence an upload
// produces: zero or more progress events followed by exactly one terminal
// event (Done set, carrying either URL or Err). The channel is closed
// after the terminal event.
type UploadEvent struct {
	Percent float64
	URL     string
	Err     error
	Done    bool
}

type BlobStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64) <-chan UploadEvent
	PublicURL(key string) string
	Download(ctx context.Context, key string, w io.Writer) error
	Delete(ctx context.Context, key string) error
}
