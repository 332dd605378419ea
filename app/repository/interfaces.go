package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/yourmove-ai/admin-dashboard/app/models"
)

// EntitlementRepository defines the database operations over the
// purchasedProducts collection.
type EntitlementRepository interface {
	FindByEmailAndProduct(ctx context.Context, email, product string) ([]models.Entitlement, error)
	Create(ctx context.Context, entitlement *models.Entitlement) error
	// DeleteAll removes the given documents in a single atomic batch commit.
	DeleteAll(ctx context.Context, ids []string) error
}

// UserRepository defines the database operations over the produsers
// collection. Lookups go through equality filters on email, so they can
// return more than one document; mutations address a single document by ID.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) ([]models.User, error)
	SetSubscription(ctx context.Context, id string, subscribed bool, expiry *time.Time, updatedAt string) error
	SetExpiry(ctx context.Context, id string, expiry time.Time) error
	Grant(ctx context.Context, id string, expiry time.Time, updatedAt string) error
	MarkCreator(ctx context.Context, id string, updatedAt string) error
}

// ReportRepository reads the pass-through reporting collections.
type ReportRepository interface {
	CollectByEmail(ctx context.Context, collection, email string) ([]map[string]interface{}, error)
}

// Repositories bundles all repository instances for injection.
type Repositories struct {
	Entitlement EntitlementRepository
	User        UserRepository
	Report      ReportRepository
}

// NewRepositories creates all Firestore-backed repository instances.
func NewRepositories(client *firestore.Client) *Repositories {
	return &Repositories{
		Entitlement: NewEntitlementRepository(client),
		User:        NewUserRepository(client),
		Report:      NewReportRepository(client),
	}
}
