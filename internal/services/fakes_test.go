package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"papermint/internal/models/db_models"
	"papermint/internal/repositories"
)

// In-memory stand-ins for the gorm repositories, matching their nil-on-miss
// contract.

type fakeBillingRepo struct {
	accounts  map[string]*db_models.Account // keyed by billing customer id
	events    []db_models.SubscriptionEvent
	findErr   error
	applyErr  error
	findCalls int
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeBillingRepo) FindAccountByCustomerID(ctx context.Context, customerID string) (*db_models.Account, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	account, ok := f.accounts[customerID]
	if !ok {
		return nil, nil
	}
	return account, nil
}

func (f *fakeBillingRepo) ApplySnapshot(ctx context.Context, accountID uuid.UUID, snap repositories.SubscriptionSnapshot, event *db_models.SubscriptionEvent) error {
	if f.applyErr != nil {
		return f.applyErr
	}

	if event != nil {
		duplicate := false
		for _, existing := range f.events {
			if existing.Provider == event.Provider && existing.ProviderEventID == event.ProviderEventID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			event.AccountID = accountID
			f.events = append(f.events, *event)
		}
	}

	for _, account := range f.accounts {
		if account.ID == accountID {
			account.SubscriptionStatus = snap.Status
			account.PlanType = snap.PlanType
			account.SubscriptionEndsAt = snap.EndsAt
			return nil
		}
	}

	return errors.New("account not found in fake")
}

type fakeAccountRepo struct {
	byID map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) add(account *db_models.Account) {
	f.byID[account.ID.String()] = account
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.byID[account.ID.String()] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return f.byID[id], nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, account := range f.byID {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdateBillingCustomer(ctx context.Context, accountID uuid.UUID, customerID string) error {
	account, ok := f.byID[accountID.String()]
	if !ok {
		return errors.New("account not found in fake")
	}
	account.BillingCustomerID = customerID
	return nil
}

type fakeContentRepo struct {
	byID map[string]*db_models.Content
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{byID: map[string]*db_models.Content{}}
}

func (f *fakeContentRepo) Insert(ctx context.Context, content *db_models.Content) error {
	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}
	f.byID[content.ID.String()] = content
	return nil
}

func (f *fakeContentRepo) FindById(ctx context.Context, id string) (*db_models.Content, error) {
	return f.byID[id], nil
}

func (f *fakeContentRepo) ListByOwner(ctx context.Context, ownerID string, page int, pageSize int) ([]db_models.Content, error) {
	var contents []db_models.Content
	for _, content := range f.byID {
		if content.OwnerID.String() == ownerID {
			contents = append(contents, *content)
		}
	}
	return contents, nil
}

func (f *fakeContentRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	content, ok := f.byID[id]
	if !ok {
		return errors.New("content not found in fake")
	}
	if title, ok := fields["title"].(string); ok {
		content.Title = title
	}
	if body, ok := fields["body"].(string); ok {
		content.Body = body
	}
	if published, ok := fields["published"].(bool); ok {
		content.Published = published
	}
	if price, ok := fields["price_cents"].(int64); ok {
		content.PriceCents = price
	}
	return nil
}

func (f *fakeContentRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateContentJSON(ctx context.Context, sourceText string, contentType string, titleHint string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
