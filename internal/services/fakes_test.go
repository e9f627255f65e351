package services

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/models"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

type fakeJobRepo struct {
	jobs      []models.Job
	listErr   error
	createErr error
	deleteErr error
}

func (f *fakeJobRepo) List(ctx context.Context) ([]models.Job, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Job, len(f.jobs))
	copy(out, f.jobs)
	return out, nil
}

func (f *fakeJobRepo) Create(ctx context.Context, job models.Job) (*models.Job, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	job.ID = primitive.NewObjectID()
	f.jobs = append(f.jobs, job)
	return &job, nil
}

func (f *fakeJobRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, job := range f.jobs {
		if job.ID.Hex() == id {
			f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "job not found", nil)
}

type fakeApplicationRepo struct {
	apps         []models.Application
	listErr      error
	setStatusErr error
}

func (f *fakeApplicationRepo) List(ctx context.Context) ([]models.Application, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Application, len(f.apps))
	copy(out, f.apps)
	return out, nil
}

func (f *fakeApplicationRepo) Get(ctx context.Context, id string) (*models.Application, error) {
	for _, app := range f.apps {
		if app.ID.Hex() == id {
			found := app
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (f *fakeApplicationRepo) SetStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	if f.setStatusErr != nil {
		return f.setStatusErr
	}
	for i := range f.apps {
		if f.apps[i].ID.Hex() == id {
			f.apps[i].Status = status
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "application not found", nil)
}

func (f *fakeApplicationRepo) Delete(ctx context.Context, id string) error {
	for i, app := range f.apps {
		if app.ID.Hex() == id {
			f.apps = append(f.apps[:i], f.apps[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "application not found", nil)
}

type fakeSettingsRepo struct {
	saved   *models.ContactSettings
	saveErr error
}

func (f *fakeSettingsRepo) ContactSettings(ctx context.Context) (*models.ContactSettings, error) {
	if f.saved == nil {
		return nil, common.NewError(common.CodeNotFound, "contact settings not written yet", nil)
	}
	found := *f.saved
	return &found, nil
}

func (f *fakeSettingsRepo) SaveContactSettings(ctx context.Context, settings models.ContactSettings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &settings
	return nil
}

type fakeTestimonialRepo struct {
	reviews   []models.Testimonial
	updateErr error
}

func (f *fakeTestimonialRepo) List(ctx context.Context) ([]models.Testimonial, error) {
	out := make([]models.Testimonial, len(f.reviews))
	copy(out, f.reviews)
	return out, nil
}

func (f *fakeTestimonialRepo) UpdateReview(ctx context.Context, id, review string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.reviews {
		if f.reviews[i].ID.Hex() == id {
			f.reviews[i].Review = review
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "testimonial not found", nil)
}

func (f *fakeTestimonialRepo) Delete(ctx context.Context, id string) error {
	for i, review := range f.reviews {
		if review.ID.Hex() == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "testimonial not found", nil)
}

type fakeMediaRepo struct {
	assets    []models.MediaAsset
	createErr error
	deleteErr error
}

func (f *fakeMediaRepo) List(ctx context.Context) ([]models.MediaAsset, error) {
	out := make([]models.MediaAsset, len(f.assets))
	copy(out, f.assets)
	return out, nil
}

func (f *fakeMediaRepo) Create(ctx context.Context, asset models.MediaAsset) (*models.MediaAsset, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	asset.ID = primitive.NewObjectID()
	f.assets = append(f.assets, asset)
	return &asset, nil
}

func (f *fakeMediaRepo) Get(ctx context.Context, id string) (*models.MediaAsset, error) {
	for _, asset := range f.assets {
		if asset.ID.Hex() == id {
			found := asset
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "asset not found", nil)
}

func (f *fakeMediaRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, asset := range f.assets {
		if asset.ID.Hex() == id {
			f.assets = append(f.assets[:i], f.assets[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "asset not found", nil)
}

type fakeMessageRepo struct {
	messages []models.HelpMessage
	listErr  error
}

func (f *fakeMessageRepo) List(ctx context.Context) ([]models.HelpMessage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.HelpMessage, len(f.messages))
	copy(out, f.messages)
	return out, nil
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id string) error {
	for i, msg := range f.messages {
		if msg.ID.Hex() == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "message not found", nil)
}

// fakeBlobStore keeps objects in a map and replays a scripted progress
// sequence before the terminal event.
type fakeBlobStore struct {
	objects   map[string][]byte
	progress  []float64
	uploadErr error
	deleteErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (f *fakeBlobStore) Upload(ctx context.Context, key string, r io.Reader, size int64) <-chan repository.UploadEvent {
	events := make(chan repository.UploadEvent)
	go func() {
		defer close(events)
		for _, p := range f.progress {
			events <- repository.UploadEvent{Percent: p}
		}
		if f.uploadErr != nil {
			events <- repository.UploadEvent{Err: f.uploadErr, Done: true}
			return
		}
		data, err := io.ReadAll(r)
		if err != nil {
			events <- repository.UploadEvent{Err: err, Done: true}
			return
		}
		f.objects[key] = data
		events <- repository.UploadEvent{Percent: 100, URL: f.PublicURL(key), Done: true}
	}()
	return events
}

func (f *fakeBlobStore) PublicURL(key string) string {
	return "/api/v1/files/" + key
}

func (f *fakeBlobStore) Download(ctx context.Context, key string, w io.Writer) error {
	data, ok := f.objects[key]
	if !ok {
		return common.NewError(common.CodeNotFound, "blob not found", nil)
	}
	_, err := w.Write(data)
	return err
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.objects[key]; !ok {
		return common.NewError(common.CodeNotFound, "blob not found", nil)
	}
	delete(f.objects, key)
	return nil
}
