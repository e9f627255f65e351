package services

import (
	"context"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/dtos"
	"github.com/zensolve/jobportal-admin/internal/models"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

type ContentService struct {
	settings     repository.SettingsRepository
	testimonials repository.TestimonialRepository
}

func NewContentService(settings repository.SettingsRepository, testimonials repository.TestimonialRepository) *ContentService {
	return &ContentService{settings: settings, testimonials: testimonials}
}

// ContactSettings returns the singleton, or the all-empty shape when it
// has never been written. Absence is normal, not an error.
func (s *ContentService) ContactSettings(ctx context.Context) (*models.ContactSettings, error) {
	settings, err := s.settings.ContactSettings(ctx)
	if common.Is(err, common.CodeNotFound) {
		return &models.ContactSettings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// SaveContactSettings is a full-document replace; the DTO guarantees every
// field is present in the payload even when blank.
func (s *ContentService) SaveContactSettings(ctx context.Context, req *dtos.ContactSettingsRequest) (*models.ContactSettings, error) {
	settings := models.ContactSettings{
		Address:  req.Address,
		Email:    req.Email,
		Phone:    req.Phone,
		LinkedIn: req.LinkedIn,
		Facebook: req.Facebook,
		Twitter:  req.Twitter,
	}
	if err := s.settings.SaveContactSettings(ctx, settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *ContentService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.testimonials.List(ctx)
}

// UpdateTestimonial patches the review text. The caller only sees the new
// text after the remote write confirms; there is no optimistic apply.
func (s *ContentService) UpdateTestimonial(ctx context.Context, id, review string) error {
	if review == "" {
		return common.NewValidationError("invalid testimonial", map[string]string{"review": "review text is required"})
	}
	return s.testimonials.UpdateReview(ctx, id, review)
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	return s.testimonials.Delete(ctx, id)
}
