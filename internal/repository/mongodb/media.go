package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/models"
)

// MediaRepository binds one of the two parallel asset collections
// (companyLogos or images); the panels differ only in collection name.
type MediaRepository struct {
	col *mongo.Collection
}

func NewMediaRepository(db *mongo.Database, collection string) *MediaRepository {
	return &MediaRepository{col: db.Collection(collection)}
}

func (r *MediaRepository) List(ctx context.Context) ([]models.MediaAsset, error) {
	var assets []models.MediaAsset
	if err := listAll(ctx, r.col, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *MediaRepository) Create(ctx context.Context, asset models.MediaAsset) (*models.MediaAsset, error) {
	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, asset)
	if err != nil {
		return nil, common.NewError(common.CodeRemoteWrite, "registering asset failed", err)
	}
	asset.ID = res.InsertedID.(primitive.ObjectID)
	return &asset, nil
}

func (r *MediaRepository) Get(ctx context.Context, id string) (*models.MediaAsset, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var asset models.MediaAsset
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&asset); err != nil {
		return nil, decodeOne(err, r.col.Name())
	}
	return &asset, nil
}

func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
