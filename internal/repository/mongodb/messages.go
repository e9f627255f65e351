package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zensolve/jobportal-admin/internal/models"
	"github.com/zensolve/jobportal-admin/internal/repository"
)

type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{col: db.Collection(repository.CollectionMessages)}
}

// List returns oldest first, so the newest message is always the last
// element; the helpdesk watcher relies on that ordering.
func (r *MessageRepository) List(ctx context.Context) ([]models.HelpMessage, error) {
	var messages []models.HelpMessage
	if err := listAll(ctx, r.col, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(repository.CollectionUsers)}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := listAll(ctx, r.col, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
