package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/models"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

// settingsDocID is the fixed key of the contact-settings singleton inside
// the settings collection.
const settingsDocID = "contactData"

type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(repository.CollectionSettings)}
}

func (r *SettingsRepository) ContactSettings(ctx context.Context) (*models.ContactSettings, error) {
	var settings models.ContactSettings
	err := r.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewError(common.CodeNotFound, "contact settings not written yet", nil)
	}
	if err != nil {
		return nil, common.NewError(common.CodeRemoteRead, "reading contact settings failed", err)
	}
	return &settings, nil
}

// SaveContactSettings replaces the whole document (upsert). Merge-patching
// would resurrect stale fields, so it is deliberately a full overwrite.
func (r *SettingsRepository) SaveContactSettings(ctx context.Context, settings models.ContactSettings) error {
	doc := bson.M{
		"_id":      settingsDocID,
		"address":  settings.Address,
		"email":    settings.Email,
		"phone":    settings.Phone,
		"linkedin": settings.LinkedIn,
		"facebook": settings.Facebook,
		"twitter":  settings.Twitter,
	}
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return common.NewError(common.CodeRemoteWrite, "saving contact settings failed", err)
	}
	return nil
}

type TestimonialRepository struct {
	col *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return &TestimonialRepository{col: db.Collection(repository.CollectionTestimonials)}
}

func (r *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	var reviews []models.Testimonial
	if err := listAll(ctx, r.col, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *TestimonialRepository) UpdateReview(ctx context.Context, id, review string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"review": review}})
	if err != nil {
		return common.NewError(common.CodeRemoteWrite, "updating testimonial failed", err)
	}
	if res.MatchedCount == 0 {
		return common.NewError(common.CodeNotFound, "testimonial not found", nil)
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
