package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/yourmove-ai/admin-dashboard/app/models"
)

// entitlementRepository implements the EntitlementRepository interface
type entitlementRepository struct {
	client *firestore.Client
}

// NewEntitlementRepository creates a new entitlement repository instance
func NewEntitlementRepository(client *firestore.Client) EntitlementRepository {
	return &entitlementRepository{client: client}
}

func (r *entitlementRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(models.CollectionPurchasedProducts)
}

// FindByEmailAndProduct returns all documents matching both fields exactly.
func (r *entitlementRepository) FindByEmailAndProduct(ctx context.Context, email, product string) ([]models.Entitlement, error) {
	docs, err := r.collection().
		Where("email", "==", email).
		Where("product", "==", product).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	entitlements := make([]models.Entitlement, 0, len(docs))
	for _, doc := range docs {
		var e models.Entitlement
		if err := doc.DataTo(&e); err != nil {
			return nil, err
		}
		e.ID = doc.Ref.ID
		entitlements = append(entitlements, e)
	}
	return entitlements, nil
}

// Create inserts a new entitlement document, generating its ID when unset.
func (r *entitlementRepository) Create(ctx context.Context, entitlement *models.Entitlement) error {
	if entitlement.ID == "" {
		entitlement.ID = uuid.NewString()
	}
	_, err := r.collection().Doc(entitlement.ID).Set(ctx, entitlement)
	return err
}

// DeleteAll removes the given documents in one batch. The commit is
// all-or-nothing; a partial failure deletes nothing.
func (r *entitlementRepository) DeleteAll(ctx context.Context, ids []string) error {
	batch := r.client.Batch()
	for _, id := range ids {
		batch.Delete(r.collection().Doc(id))
	}
	_, err := batch.Commit(ctx)
	return err
}
