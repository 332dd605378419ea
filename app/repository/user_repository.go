package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/yourmove-ai/admin-dashboard/app/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(client *firestore.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(models.CollectionUsers)
}

// FindByEmail returns every document matching the email. Email is not a
// storage-level key, so callers must be prepared for multiple matches.
func (r *userRepository) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	docs, err := r.collection().Where("email", "==", email).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		var u models.User
		if err := doc.DataTo(&u); err != nil {
			return nil, err
		}
		u.ID = doc.Ref.ID
		users = append(users, u)
	}
	return users, nil
}

// SetSubscription updates the subscription flag, and the expiry when one is
// given, on a single document.
func (r *userRepository) SetSubscription(ctx context.Context, id string, subscribed bool, expiry *time.Time, updatedAt string) error {
	updates := []firestore.Update{
		{Path: "isSubscribed", Value: subscribed},
		{Path: "updatedAt", Value: updatedAt},
	}
	if expiry != nil {
		updates = append(updates, firestore.Update{Path: "subscriptionExpiry", Value: expiry.UTC()})
	}
	_, err := r.collection().Doc(id).Update(ctx, updates)
	return err
}

// SetExpiry writes only the subscription expiry, as a native timestamp.
func (r *userRepository) SetExpiry(ctx context.Context, id string, expiry time.Time) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "subscriptionExpiry", Value: expiry.UTC()},
	})
	return err
}

// Grant force-enables the subscription flag and writes the new expiry.
func (r *userRepository) Grant(ctx context.Context, id string, expiry time.Time, updatedAt string) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "isSubscribed", Value: true},
		{Path: "subscriptionExpiry", Value: expiry.UTC()},
		{Path: "updatedAt", Value: updatedAt},
	})
	return err
}

// MarkCreator tags a document as a creator account.
func (r *userRepository) MarkCreator(ctx context.Context, id string, updatedAt string) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "isCreator", Value: true},
		{Path: "updatedAt", Value: updatedAt},
	})
	return err
}
