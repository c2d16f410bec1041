package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"papermint/internal/models/db_models"
)

func testContent(ownerID uuid.UUID, published bool, accessToken string) *db_models.Content {
	return &db_models.Content{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		OwnerID:     ownerID,
		Title:       "Ten Lessons From The Attached PDF",
		Published:   published,
		AccessToken: accessToken,
	}
}

func TestResolveAccess_OwnerAlwaysGranted(t *testing.T) {
	svc := NewAccessService()
	owner := uuid.New()

	cases := []struct {
		name      string
		published bool
		token     string
	}{
		{"unpublished no token", false, ""},
		{"unpublished wrong token", false, "wrong"},
		{"published wrong token", true, "wrong"},
		{"published valid token", true, "secret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := testContent(owner, tc.published, "secret")
			decision := svc.ResolveAccess(content, owner.String(), tc.token)
			assert.True(t, decision.Granted)
			assert.Equal(t, ReasonOwnerAccess, decision.Reason)
		})
	}
}

func TestResolveAccess_UnpublishedDeniesNonOwners(t *testing.T) {
	svc := NewAccessService()
	content := testContent(uuid.New(), false, "secret")

	for _, token := range []string{"", "secret", "wrong"} {
		decision := svc.ResolveAccess(content, uuid.New().String(), token)
		assert.False(t, decision.Granted)
		assert.Equal(t, ReasonNotPublished, decision.Reason, "token %q", token)
	}

	// anonymous caller too
	decision := svc.ResolveAccess(content, "", "secret")
	assert.False(t, decision.Granted)
	assert.Equal(t, ReasonNotPublished, decision.Reason)
}

func TestResolveAccess_MissingTokenHitsPaywall(t *testing.T) {
	svc := NewAccessService()
	content := testContent(uuid.New(), true, "secret")

	decision := svc.ResolveAccess(content, "", "")
	assert.False(t, decision.Granted)
	assert.Equal(t, ReasonPaywallRequired, decision.Reason)
}

func TestResolveAccess_ValidTokenGrants(t *testing.T) {
	svc := NewAccessService()
	content := testContent(uuid.New(), true, "secret")

	decision := svc.ResolveAccess(content, uuid.New().String(), "secret")
	assert.True(t, decision.Granted)
	assert.Equal(t, ReasonTokenValid, decision.Reason)
}

func TestResolveAccess_WrongTokenDenied(t *testing.T) {
	svc := NewAccessService()
	content := testContent(uuid.New(), true, "secret")

	decision := svc.ResolveAccess(content, "", "not-the-secret")
	assert.False(t, decision.Granted)
	assert.Equal(t, ReasonInvalidToken, decision.Reason)
}

func TestResolveAccess_ContentWithoutIssuedTokenNeverMatches(t *testing.T) {
	svc := NewAccessService()
	content := testContent(uuid.New(), true, "")

	decision := svc.ResolveAccess(content, "", "anything")
	assert.False(t, decision.Granted)
	assert.Equal(t, ReasonInvalidToken, decision.Reason)
}
