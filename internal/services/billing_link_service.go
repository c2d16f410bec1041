package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"papermint/internal/repositories"
	"papermint/pkg/utils"
)

// BillingLinkServiceInterface connects a creator's account to the billing
// provider via the standard authorize/callback OAuth dance. The state
// parameter is the authenticated user's id; a mismatch on callback aborts
// before any token exchange.
type BillingLinkServiceInterface interface {
	AuthorizeURL(accountID string) string
	HandleCallback(ctx context.Context, accountID string, state string, code string) error
}

type BillingLinkService struct {
	accountRepo repositories.AccountRepository
	oauthConfig *oauth2.Config
}

func NewBillingLinkService(accountRepo repositories.AccountRepository, oauthConfig *oauth2.Config) BillingLinkServiceInterface {
	return &BillingLinkService{
		accountRepo: accountRepo,
		oauthConfig: oauthConfig,
	}
}

func (s *BillingLinkService) AuthorizeURL(accountID string) string {
	return s.oauthConfig.AuthCodeURL(accountID)
}

// HandleCallback verifies state, exchanges the code, and stores the connected
// customer id. Exchange failures leave the account's billing fields
// untouched; there is no such thing as a partially linked account.
func (s *BillingLinkService) HandleCallback(ctx context.Context, accountID string, state string, code string) error {
	if state == "" || state != accountID {
		return utils.ErrOAuthStateMismatch
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.Printf("billing oauth exchange failed for account %s: %v", accountID, err)
		return utils.ErrOAuthExchangeFailed
	}

	// The provider returns the connected customer id alongside the token.
	customerID, _ := token.Extra("customer_id").(string)
	if customerID == "" {
		return utils.ErrOAuthExchangeFailed
	}

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if err := s.accountRepo.UpdateBillingCustomer(ctx, accountUUID, customerID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
