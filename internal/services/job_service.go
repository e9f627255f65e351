package services

import (
	"context"
	"io"
	"log"
	"path"

	"github.com/google/uuid"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/dtos"
	"github.com/zensolve/jobportal-admin/internal/models"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

// LogoFile is the optional company logo riding along with a job create.
type LogoFile struct {
	Name   string
	Size   int64
	Reader io.Reader
}

type JobService struct {
	repo  repository.JobRepository
	blobs repository.BlobStore
}

func NewJobService(repo repository.JobRepository, blobs repository.BlobStore) *JobService {
	return &JobService{repo: repo, blobs: blobs}
}

func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	return s.repo.List(ctx)
}

// Create validates the draft before any remote call, uploads the logo
// first when present, then writes the job document. A document-create
// failure after a successful upload leaves the blob orphaned; that is a
// known limitation, logged and not reconciled.
func (s *JobService) Create(ctx context.Context, req *dtos.JobCreationRequest, logo *LogoFile) (*models.Job, error) {
	if err := validateJobDraft(req); err != nil {
		return nil, err
	}

	var logoURL string
	if logo != nil {
		url, err := s.uploadLogo(ctx, logo)
		if err != nil {
			return nil, err
		}
		logoURL = url
	}

	job := models.Job{
		CompanyName: req.CompanyName,
		Position:    req.Position,
		Vacancies:   req.Vacancies,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		Location:    req.Location,
		LogoURL:     logoURL,
		Category:    req.Category,
	}
	created, err := s.repo.Create(ctx, job)
	if err != nil {
		if logoURL != "" {
			log.Printf("⚠️ Job create failed after logo upload; orphan blob at %s", logoURL)
		}
		return nil, err
	}
	return created, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *JobService) uploadLogo(ctx context.Context, logo *LogoFile) (string, error) {
	key := "logos/" + uuid.NewString() + path.Ext(logo.Name)
	var url string
	for ev := range s.blobs.Upload(ctx, key, logo.Reader, logo.Size) {
		if !ev.Done {
			continue
		}
		if ev.Err != nil {
			return "", ev.Err
		}
		url = ev.URL
	}
	return url, nil
}

func validateJobDraft(req *dtos.JobCreationRequest) error {
	fields := map[string]string{}
	if req.CompanyName == "" {
		fields["companyName"] = "company name is required"
	}
	if req.Position == "" {
		fields["position"] = "position is required"
	}
	if req.Vacancies <= 0 {
		fields["vacancies"] = "vacancies must be at least 1"
	}
	if req.SalaryFrom <= 0 {
		fields["salaryFrom"] = "salary from is required"
	}
	if req.SalaryTo <= 0 {
		fields["salaryTo"] = "salary to is required"
	}
	if req.Location == "" {
		fields["location"] = "location is required"
	}
	// Category stays optional; the public form ships a blank option.
	if req.Category != "" && !models.ValidCategory(req.Category) {
		fields["category"] = "category must be one of the fixed set"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job posting", fields)
	}
	return nil
}

// CategoryDistribution counts jobs per fixed category. Every category is
// present in the output, zero or not, in the fixed order the chart
// expects; jobs with an empty or unknown category are left uncounted.
func CategoryDistribution(jobs []models.Job) []models.CategoryCount {
	counts := make([]models.CategoryCount, len(models.Categories))
	for i, name := range models.Categories {
		counts[i] = models.CategoryCount{Name: name}
	}
	index := make(map[string]int, len(models.Categories))
	for i, name := range models.Categories {
		index[name] = i
	}
	for _, job := range jobs {
		if i, ok := index[job.Category]; ok {
			counts[i].Value++
		}
	}
	return counts
}
