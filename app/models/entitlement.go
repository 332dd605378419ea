package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Known product identifiers. The set is open ended; these are the ones the
// dashboard offers in its select box.
const (
	ProductProfileWriter = "profile_writer"
	ProductProfileReview = "profile_review"
	ProductAIPhotos      = "ai_photos"
)

// KnownProducts lists the products offered by the dashboard UI.
var KnownProducts = []string{ProductProfileWriter, ProductProfileReview, ProductAIPhotos}

// Entitlement is a document in the purchasedProducts collection. Uniqueness
// per (email, product) pair is enforced by the add operation, not by the
// storage layer.
type Entitlement struct {
	ID        string  `firestore:"-" json:"id"`
	Email     string  `firestore:"email" json:"email" validate:"required,email"`
	Product   string  `firestore:"product" json:"product" validate:"required,min=1,max=100"`
	StripeID  *string `firestore:"stripe_id" json:"stripe_id"`
	CreatedAt string  `firestore:"createdAt" json:"created_at"`
	UpdatedAt string  `firestore:"updatedAt" json:"updated_at"`
}

func (e *Entitlement) Validate() error {
	v := validator.New()

	return v.Struct(e)
}

// NewEntitlement builds an unsaved entitlement with both timestamps set to
// now. stripe_id stays null until a payment integration fills it in.
func NewEntitlement(email, product string, now time.Time) *Entitlement {
	ts := now.UTC().Format(time.RFC3339)

	return &Entitlement{
		Email:     email,
		Product:   product,
		StripeID:  nil,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}
