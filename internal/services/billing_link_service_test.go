package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"papermint/internal/models/db_models"
	"papermint/pkg/utils"
)

func linkFixture(t *testing.T, tokenHandler http.HandlerFunc) (BillingLinkServiceInterface, *fakeAccountRepo, *db_models.Account, func()) {
	t.Helper()

	server := httptest.NewServer(tokenHandler)

	accountRepo := newFakeAccountRepo()
	account := &db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Email:     "creator@example.com",
	}
	accountRepo.add(account)

	config := &oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "https://app.example.com/billing/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:  server.URL + "/authorize",
			TokenURL: server.URL + "/token",
		},
	}

	return NewBillingLinkService(accountRepo, config), accountRepo, account, server.Close
}

func TestAuthorizeURL_CarriesAccountIDAsState(t *testing.T) {
	svc, _, account, cleanup := linkFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	defer cleanup()

	url := svc.AuthorizeURL(account.ID.String())

	assert.Contains(t, url, "state="+account.ID.String())
	assert.Contains(t, url, "client_id=client-id")
}

func TestHandleCallback_StateMismatchAbortsBeforeExchange(t *testing.T) {
	exchanged := false
	svc, _, account, cleanup := linkFixture(t, func(w http.ResponseWriter, r *http.Request) {
		exchanged = true
	})
	defer cleanup()

	err := svc.HandleCallback(context.Background(), account.ID.String(), uuid.New().String(), "code-123")

	assert.ErrorIs(t, err, utils.ErrOAuthStateMismatch)
	assert.False(t, exchanged, "token endpoint must not be called on a forged state")
	assert.Empty(t, account.BillingCustomerID)
}

func TestHandleCallback_ExchangeFailureStoresNothing(t *testing.T) {
	svc, _, account, cleanup := linkFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	})
	defer cleanup()

	err := svc.HandleCallback(context.Background(), account.ID.String(), account.ID.String(), "bad-code")

	assert.ErrorIs(t, err, utils.ErrOAuthExchangeFailed)
	assert.Empty(t, account.BillingCustomerID)
}

func TestHandleCallback_SuccessLinksCustomer(t *testing.T) {
	svc, _, account, cleanup := linkFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "at-123",
			"token_type": "bearer",
			"customer_id": "cus_linked"
		}`))
	})
	defer cleanup()

	err := svc.HandleCallback(context.Background(), account.ID.String(), account.ID.String(), "good-code")

	require.NoError(t, err)
	assert.Equal(t, "cus_linked", account.BillingCustomerID)
}

func TestHandleCallback_MissingCustomerIDInResponse(t *testing.T) {
	svc, _, account, cleanup := linkFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "at-123", "token_type": "bearer"}`))
	})
	defer cleanup()

	err := svc.HandleCallback(context.Background(), account.ID.String(), account.ID.String(), "good-code")

	assert.ErrorIs(t, err, utils.ErrOAuthExchangeFailed)
	assert.Empty(t, account.BillingCustomerID)
}
