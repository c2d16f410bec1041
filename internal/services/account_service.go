package services

import (
	"context"

	"papermint/internal/models/db_models"
	"papermint/internal/models/request_models"
	"papermint/internal/models/response_models"
	"papermint/internal/repositories"
	"papermint/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Profile(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
	SubscriptionStatus(ctx context.Context, accountID string) (*response_models.SubscriptionStatusResponse, error)
}

type AccountService struct {
	accountRepo    repositories.AccountRepository
	billingService BillingServiceInterface
}

func NewAccountService(accountRepo repositories.AccountRepository, billingService BillingServiceInterface) AccountServiceInterface {
	return &AccountService{
		accountRepo:    accountRepo,
		billingService: billingService,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Profile(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
	}, nil
}

// SubscriptionStatus exposes the ledger snapshot plus the two derived flags.
// IsExpired drives a dashboard warning; it is not an access decision.
func (a *AccountService) SubscriptionStatus(ctx context.Context, accountID string) (*response_models.SubscriptionStatusResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	response := &response_models.SubscriptionStatusResponse{
		Status:    string(account.SubscriptionStatus),
		PlanType:  string(account.PlanType),
		IsActive:  a.billingService.IsActive(account),
		IsExpired: a.billingService.IsExpired(account),
	}

	if account.SubscriptionEndsAt != nil {
		response.EndsAt = utils.FormatRFC3339(utils.FromUnixSeconds(*account.SubscriptionEndsAt))
	}

	return response, nil
}
