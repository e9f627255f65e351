package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/models"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(repository.CollectionApplications)}
}

func (r *ApplicationRepository) List(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := listAll(ctx, r.col, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepository) Get(ctx context.Context, id string) (*models.Application, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var app models.Application
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&app); err != nil {
		return nil, decodeOne(err, r.col.Name())
	}
	return &app, nil
}

// SetStatus is a single-field overwrite; the store does not validate the
// previous value, which is what makes the review actions idempotent.
func (r *ApplicationRepository) SetStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return common.NewError(common.CodeRemoteWrite, "updating application status failed", err)
	}
	if res.MatchedCount == 0 {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
