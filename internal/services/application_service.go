package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/config"
	"github.com/zensolve/jobportal-admin/internal/models"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

const rosterSheet = "Applications"

var rosterHeader = []string{"Name", "Email", "Applied for", "Resume Link"}

type ApplicationService struct {
	repo repository.ApplicationRepository
	org  config.Organization
}

func NewApplicationService(repo repository.ApplicationRepository, org config.Organization) *ApplicationService {
	return &ApplicationService{repo: repo, org: org}
}

func (s *ApplicationService) List(ctx context.Context) ([]models.Application, error) {
	return s.repo.List(ctx)
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	return s.repo.Get(ctx, id)
}

// Accept overwrites the status field and then re-reads the whole list
// rather than patching locally: costs a read, but stays honest about any
// concurrent out-of-band change. Re-applying is a no-op in effect.
func (s *ApplicationService) Accept(ctx context.Context, id string) ([]models.Application, error) {
	return s.setStatus(ctx, id, models.StatusAccepted)
}

func (s *ApplicationService) Reject(ctx context.Context, id string) ([]models.Application, error) {
	return s.setStatus(ctx, id, models.StatusRejected)
}

func (s *ApplicationService) setStatus(ctx context.Context, id string, status models.ApplicationStatus) ([]models.Application, error) {
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Remove deletes a reviewed application outright. Permanent.
func (s *ApplicationService) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ApplicationService) Notices(app models.Application) (accept, reject Notice) {
	return AcceptanceNotice(app, s.org), RejectionNotice(app, s.org)
}

// RosterRows flattens the application list into the export record set, one
// row per application regardless of status. Pure; an empty list yields
// zero rows, not an error.
func RosterRows(apps []models.Application) [][]string {
	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		resume := app.ResumeURL
		if resume == "" {
			resume = "No Resume"
		}
		rows = append(rows, []string{
			app.ApplicantName,
			app.ApplicantEmail,
			app.JobPosition + " at " + app.CompanyName,
			resume,
		})
	}
	return rows
}

// RosterWorkbook renders the roster as a spreadsheet: a header row plus
// one row per application.
func RosterWorkbook(apps []models.Application) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		return nil, common.NewError(common.CodeInternal, "preparing roster sheet failed", err)
	}

	writeRow := func(rowNum int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(rosterSheet, cell, &row)
	}

	if err := writeRow(1, rosterHeader); err != nil {
		return nil, common.NewError(common.CodeInternal, "writing roster header failed", err)
	}
	for i, row := range RosterRows(apps) {
		if err := writeRow(i+2, row); err != nil {
			return nil, common.NewError(common.CodeInternal, "writing roster row failed", err)
		}
	}
	return f, nil
}

// ApplicationsPerPosition counts applications grouped by job position, in
// order of first appearance. Backs the per-job bar chart.
func ApplicationsPerPosition(apps []models.Application) []models.PositionCount {
	var counts []models.PositionCount
	index := make(map[string]int)
	for _, app := range apps {
		if i, ok := index[app.JobPosition]; ok {
			counts[i].Value++
			continue
		}
		index[app.JobPosition] = len(counts)
		counts = append(counts, models.PositionCount{Position: app.JobPosition, Value: 1})
	}
	return counts
}
