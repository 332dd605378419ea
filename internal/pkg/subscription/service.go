package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yourmove-ai/admin-dashboard/app/models"
	"github.com/yourmove-ai/admin-dashboard/app/repository"
)

// CreatorGrantDays is the subscription length granted when tagging a creator
// account.
const CreatorGrantDays = 365

const daySeconds = 86400

// Service implements the subscription lifecycle and entitlement operations.
// It holds no state of its own; the database is the sole source of truth.
// Read-then-write sequences are deliberately not transactional — the tool is
// operated by a single person at a time and concurrent operators can lose
// updates to each other.
type Service struct {
	repos *repository.Repositories
	now   func() time.Time
}

// NewService creates a subscription service from injected repositories.
func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos, now: time.Now}
}

// AddEntitlement grants a product to a user unless an entitlement for the
// same (email, product) pair already exists. The existence check and the
// insert are two round trips, not an atomic constraint.
func (s *Service) AddEntitlement(ctx context.Context, email, product string) OpResult {
	email = strings.TrimSpace(email)
	product = strings.TrimSpace(product)

	entitlement := models.NewEntitlement(email, product, s.now())
	if err := entitlement.Validate(); err != nil {
		return fail(KindInvalid, fmt.Sprintf("Invalid input: %v", err), nil)
	}

	existing, err := s.repos.Entitlement.FindByEmailAndProduct(ctx, email, product)
	if err != nil {
		return fail(KindStorage, fmt.Sprintf("Failed to add product '%s' for user '%s'. Error: %v", product, email, err), err)
	}
	if len(existing) > 0 {
		return fail(KindDuplicate, fmt.Sprintf("Product '%s' already exists for user '%s'.", product, email), nil)
	}

	if err := s.repos.Entitlement.Create(ctx, entitlement); err != nil {
		return fail(KindStorage, fmt.Sprintf("Failed to add product '%s' for user '%s'. Error: %v", product, email, err), err)
	}
	return ok(fmt.Sprintf("Product '%s' added to user '%s'.", product, email))
}

// RemoveEntitlement deletes every entitlement document for the (email,
// product) pair in one atomic batch commit.
func (s *Service) RemoveEntitlement(ctx context.Context, email, product string) OpResult {
	email = strings.TrimSpace(email)
	product = strings.TrimSpace(product)

	existing, err := s.repos.Entitlement.FindByEmailAndProduct(ctx, email, product)
	if err != nil {
		return fail(KindStorage, fmt.Sprintf("Failed to remove product '%s' from user '%s'. Error: %v", product, email, err), err)
	}
	if len(existing) == 0 {
		return fail(KindNotFound, fmt.Sprintf("Product '%s' not found for user '%s'.", product, email), nil)
	}

	ids := make([]string, 0, len(existing))
	for _, e := range existing {
		ids = append(ids, e.ID)
	}
	if err := s.repos.Entitlement.DeleteAll(ctx, ids); err != nil {
		return fail(KindStorage, fmt.Sprintf("Failed to remove product '%s' from user '%s'. Error: %v", product, email, err), err)
	}
	return ok(fmt.Sprintf("Product '%s' removed from user '%s'.", product, email))
}

// IsSubscribed returns the isSubscribed flag of the first matching document
// that carries the field. No match, or no document with the field, reads as
// not subscribed. A lookup failure is returned separately instead of being
// folded into false.
func (s *Service) IsSubscribed(ctx context.Context, email string) (bool, error) {
	users, err := s.repos.User.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.HasSubscribedField() {
			return u.Subscribed(), nil
		}
	}
	return false, nil
}

// SetSubscription sets the subscription flag, and the expiry when given, on
// every document matching the email. Duplicate documents for one address do
// exist in the wild, so all of them are kept in step. The first write error
// aborts without rolling back documents already processed.
func (s *Service) SetSubscription(ctx context.Context, email string, subscribed bool, expiry *time.Time) OpResult {
	users, err := s.repos.User.FindByEmail(ctx, email)
	if err != nil {
		return fail(KindStorage, fmt.Sprintf("Failed to update subscription status for user with email %s. Error: %v", email, err), err)
	}
	if len(users) == 0 {
		return fail(KindNotFound, fmt.Sprintf("User with email %s not found.", email), nil)
	}

	updatedAt := s.now().UTC().Format(time.RFC3339)
	for _, u := range users {
		if err := s.repos.User.SetSubscription(ctx, u.ID, subscribed, expiry, updatedAt); err != nil {
			return fail(KindStorage, fmt.Sprintf("Failed to update subscription status for user with email %s. Error: %v", email, err), err)
		}
	}
	return ok(fmt.Sprintf("Subscription status updated for user with email %s.", email))
}

// ExtendSubscription pushes an existing expiry further out by the given
// number of days. A user without a stored expiry cannot be extended; use
// GrantSubscription for that.
func (s *Service) ExtendSubscription(ctx context.Context, email string, additionalDays int) OpResult {
	if additionalDays < 1 {
		return fail(KindInvalid, "Day count must be a positive number.", nil)
	}

	users, err := s.repos.User.FindByEmail(ctx, email)
	if err != nil {
		return fail(KindStorage, fmt.Sprintf("Failed to extend subscription for user with email %s. Error: %v", email, err), err)
	}
	if len(users) == 0 {
		return fail(KindNotFound, fmt.Sprintf("User with email %s not found.", email), nil)
	}

	user := users[0]
	current, hasExpiry := models.NormalizeExpiry(user.SubscriptionExpiry)
	if !hasExpiry {
		return fail(KindMissingExpiry, fmt.Sprintf("User with email %s does not have a subscription expiry date.", email), nil)
	}

	newExpiry := current.Add(time.Duration(additionalDays) * daySeconds * time.Second)
	if err := s.repos.User.SetExpiry(ctx, user.ID, newExpiry); err != nil {
		return fail(KindStorage, fmt.Sprintf("Failed to extend subscription for user with email %s. Error: %v", email, err), err)
	}
	return ok(fmt.Sprintf("Subscription extended for user with email %s from %s to %s",
		email, current.Format(time.RFC3339), newExpiry.Format(time.RFC3339)))
}

// GrantSubscription gives a user accessDays of subscription and force-enables
// the flag. A still-valid expiry is extended from its current value; an
// absent or already-passed expiry starts counting from now, so a lapsed user
// neither loses days nor stacks them on a stale past date.
func (s *Service) GrantSubscription(ctx context.Context, email string, accessDays int) OpResult {
	if accessDays < 1 {
		return fail(KindInvalid, "Day count must be a positive number.", nil)
	}

	users, err := s.repos.User.FindByEmail(ctx, email)
	if err != nil {
		return fail(KindStorage, fmt.Sprintf("Failed to grant subscription to user with email %s. Error: %v", email, err), err)
	}
	if len(users) == 0 {
		return fail(KindNotFound, fmt.Sprintf("User with email %s not found.", email), nil)
	}

	user := users[0]
	now := s.now().UTC()

	base := now
	if current, hasExpiry := models.NormalizeExpiry(user.SubscriptionExpiry); hasExpiry && current.After(now) {
		base = current
	}
	newExpiry := base.Add(time.Duration(accessDays) * daySeconds * time.Second)

	if err := s.repos.User.Grant(ctx, user.ID, newExpiry, now.Format(time.RFC3339)); err != nil {
		return fail(KindStorage, fmt.Sprintf("Failed to grant subscription to user with email %s. Error: %v", email, err), err)
	}
	return ok(fmt.Sprintf("Subscription granted to user with email %s until %s", email, newExpiry.Format(time.RFC3339)))
}

// TagCreatorAccount grants a one-year subscription and then tags the account
// as a creator. A failed grant is propagated verbatim. A failed creator tag
// leaves the grant in place and reports the partial success; the two writes
// are not wrapped in a transaction.
func (s *Service) TagCreatorAccount(ctx context.Context, email string) OpResult {
	granted := s.GrantSubscription(ctx, email, CreatorGrantDays)
	if !granted.OK {
		return granted
	}

	users, err := s.repos.User.FindByEmail(ctx, email)
	if err != nil {
		return fail(KindStorage, fmt.Sprintf("Granted subscription but failed to reload user with email %s. Error: %v", email, err), err)
	}
	if len(users) == 0 {
		// Cannot normally happen between the grant and this re-query.
		return fail(KindNotFound, fmt.Sprintf("Granted subscription but user with email %s no longer exists.", email), nil)
	}

	updatedAt := s.now().UTC().Format(time.RFC3339)
	if err := s.repos.User.MarkCreator(ctx, users[0].ID, updatedAt); err != nil {
		return fail(KindStorage, fmt.Sprintf("Granted subscription but failed to tag user with email %s as creator. Error: %v", email, err), err)
	}
	return ok(fmt.Sprintf("Tagged user with email %s as creator. %s", email, granted.Message))
}

// PullReport reads the four reporting collections for the email. Collection
// reads are independent; a failed read leaves its sequence empty and records
// the error so the rest of the bundle still comes back.
func (s *Service) PullReport(ctx context.Context, email string) *models.Report {
	report := models.NewReport(email)
	for _, collection := range models.ReportCollections {
		rows, err := s.repos.Report.CollectByEmail(ctx, collection, email)
		if err != nil {
			report.RecordError(collection, err)
			continue
		}
		report.Set(collection, rows)
	}
	return report
}
