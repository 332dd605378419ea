package models

import (
	"time"
)

// Collection names in Firestore. The produsers collection predates this tool
// and is written by the signup flow; this tool only mutates it.
const (
	CollectionUsers             = "produsers"
	CollectionPurchasedProducts = "purchasedProducts"
)

// User is a document in the produsers collection. Email is looked up via
// equality filter, not used as the document ID, so multiple documents can
// match one address.
type User struct {
	ID                 string      `firestore:"-" json:"id"`
	Email              string      `firestore:"email" json:"email"`
	IsSubscribed       *bool       `firestore:"isSubscribed" json:"is_subscribed"`
	IsCreator          bool        `firestore:"isCreator" json:"is_creator"`
	SubscriptionExpiry interface{} `firestore:"subscriptionExpiry" json:"subscription_expiry"`
	UpdatedAt          interface{} `firestore:"updatedAt" json:"updated_at"`
}

// Subscribed reports the isSubscribed flag, treating an absent field as false.
func (u *User) Subscribed() bool {
	return u.IsSubscribed != nil && *u.IsSubscribed
}

// HasSubscribedField reports whether the document carries an isSubscribed
// field at all.
func (u *User) HasSubscribedField() bool {
	return u.IsSubscribed != nil
}

// NormalizeExpiry converts a stored subscriptionExpiry value into a UTC
// instant. Legacy documents store the expiry as epoch milliseconds (written
// by an older backend), newer ones as a native Firestore timestamp. Returns
// false when the value is absent or has an unusable type.
func NormalizeExpiry(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), true
	case int64:
		return time.UnixMilli(t).UTC(), true
	case int:
		return time.UnixMilli(int64(t)).UTC(), true
	case float64:
		return time.UnixMilli(int64(t)).UTC(), true
	}
	return time.Time{}, false
}
