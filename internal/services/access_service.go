package services

import (
	"crypto/subtle"

	"papermint/internal/models/db_models"
)

type AccessReason string

const (
	ReasonOwnerAccess     AccessReason = "owner_access"
	ReasonTokenValid      AccessReason = "token_valid"
	ReasonNotPublished    AccessReason = "not_published"
	ReasonPaywallRequired AccessReason = "paywall_required"
	ReasonInvalidToken    AccessReason = "invalid_token"
)

type AccessDecision struct {
	Granted bool
	Reason  AccessReason
}

type AccessServiceInterface interface {
	ResolveAccess(content *db_models.Content, requesterID string, presentedToken string) AccessDecision
}

// AccessService is the single gate every content-serving path goes through.
// It is a pure decision over supplied state: no I/O, no clock, and
// deliberately no dependency on the subscription ledger. Platform
// subscription gates creators; the per-content token gates consumers.
type AccessService struct{}

func NewAccessService() AccessServiceInterface {
	return &AccessService{}
}

// ResolveAccess applies the rules in fixed order: owner, published flag,
// token presence, token match. Unpublished content answers NotPublished to
// non-owners, which callers map to a 404 so existence is not leaked.
func (a *AccessService) ResolveAccess(content *db_models.Content, requesterID string, presentedToken string) AccessDecision {
	if requesterID != "" && requesterID == content.OwnerID.String() {
		return AccessDecision{Granted: true, Reason: ReasonOwnerAccess}
	}

	if !content.Published {
		return AccessDecision{Granted: false, Reason: ReasonNotPublished}
	}

	if presentedToken == "" {
		return AccessDecision{Granted: false, Reason: ReasonPaywallRequired}
	}

	if content.AccessToken != "" &&
		subtle.ConstantTimeCompare([]byte(presentedToken), []byte(content.AccessToken)) == 1 {
		return AccessDecision{Granted: true, Reason: ReasonTokenValid}
	}

	return AccessDecision{Granted: false, Reason: ReasonInvalidToken}
}
