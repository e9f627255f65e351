package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/models"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(repository.CollectionJobs)}
}

func (r *JobRepository) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := listAll(ctx, r.col, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) Create(ctx context.Context, job models.Job) (*models.Job, error) {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, job)
	if err != nil {
		return nil, common.NewError(common.CodeRemoteWrite, "creating job failed", err)
	}
	job.ID = res.InsertedID.(primitive.ObjectID)
	return &job, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
