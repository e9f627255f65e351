// Package mongodb implements the repository interfaces against MongoDB
// collections. Read failures map to remote_read, write failures to
// remote_write, and decode failures to schema_mismatch so a malformed
// document never propagates as silently-empty fields.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zensolve/jobportal-admin/internal/common"
)

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewValidationError("invalid document id", map[string]string{"id": "must be a 24-character hex id"})
	}
	return oid, nil
}

// listAll drains a whole collection into out (a *[]T), oldest first.
func listAll(ctx context.Context, col *mongo.Collection, out any) error {
	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return common.NewError(common.CodeRemoteRead, "listing "+col.Name()+" failed", err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return common.NewError(common.CodeSchemaMismatch, "decoding "+col.Name()+" documents failed", err)
	}
	return nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return common.NewError(common.CodeRemoteWrite, "deleting from "+col.Name()+" failed", err)
	}
	if res.DeletedCount == 0 {
		return common.NewError(common.CodeNotFound, "document not found in "+col.Name(), nil)
	}
	return nil
}

func decodeOne(err error, col string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.NewError(common.CodeNotFound, "document not found in "+col, nil)
	}
	return common.NewError(common.CodeRemoteRead, "reading "+col+" failed", err)
}
