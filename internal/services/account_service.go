package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"marketplace/internal/models"
	"marketplace/internal/validator"
)

// AccountService covers registration, login and the guardian/dependent
// workflow.
type AccountService struct {
	accounts AccountStore
	now      func() time.Time
}

func NewAccountService(accounts AccountStore) *AccountService {
	return &AccountService{accounts: accounts, now: time.Now}
}

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Age      int
	// GuardianEmail is required when Age < 18 and must belong to an
	// existing adult account.
	GuardianEmail string
}

// Register creates an adult account, or a child account pending guardian
// approval when the age is under 18. The guardian is notified through their
// inbox.
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (models.Account, error) {
	if err := validator.ValidateName(req.Name); err != nil {
		return models.Account{}, err
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		return models.Account{}, err
	}
	if err := validator.ValidatePassword(req.Password); err != nil {
		return models.Account{}, err
	}
	if err := validator.ValidateAge(req.Age); err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Age:       req.Age,
		Kind:      models.KindAdult,
		Library:   make(map[string]models.OwnedGame),
		Unlocked:  make(map[string]map[string]bool),
		CreatedAt: s.now(),
	}

	var guardian models.Account
	if req.Age < 18 {
		found, err := s.accounts.FindByIdentifier(ctx, req.GuardianEmail)
		if err != nil || found.Kind != models.KindAdult {
			return models.Account{}, ErrGuardianNotAdult
		}
		guardian = found
		account.Kind = models.KindChild
		account.GuardianEmail = guardian.Email
		account.Approval = models.ApprovalPending
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return models.Account{}, err
	}
	if account.Kind == models.KindChild {
		message := fmt.Sprintf("System: user %q (%d years old) requested approval as your dependent.", account.Name, account.Age)
		if err := s.Notify(ctx, guardian.Name, message); err != nil {
			return models.Account{}, err
		}
	}
	return account, nil
}

// Authenticate resolves the account by name or email and compares the
// password in plain text; credentials are held in memory only.
func (s *AccountService) Authenticate(ctx context.Context, identifier, password string) (models.Account, error) {
	account, err := s.accounts.FindByIdentifier(ctx, identifier)
	if err != nil {
		return models.Account{}, ErrInvalidCredentials
	}
	if account.Password != password {
		return models.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

func (s *AccountService) Get(ctx context.Context, name string) (models.Account, error) {
	return s.accounts.Get(ctx, name)
}

// PendingDependents lists child accounts awaiting approval by the guardian.
func (s *AccountService) PendingDependents(ctx context.Context, guardianName string) ([]models.Account, error) {
	guardian, err := s.accounts.Get(ctx, guardianName)
	if err != nil {
		return nil, err
	}
	all, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	var pending []models.Account
	for _, account := range all {
		if account.Kind == models.KindChild &&
			account.GuardianEmail == guardian.Email &&
			account.Approval == models.ApprovalPending {
			pending = append(pending, account)
		}
	}
	return pending, nil
}

// ApproveDependent flips a pending dependent to approved and assigns both
// purchase permission flags in the same step, so no purchase attempt can
// observe approval without the flags.
func (s *AccountService) ApproveDependent(ctx context.Context, guardianName, dependentName string, canBuyItems, canBuyGames bool) error {
	guardian, err := s.accounts.Get(ctx, guardianName)
	if err != nil {
		return err
	}
	dependent, err := s.accounts.Get(ctx, dependentName)
	if err != nil {
		return err
	}
	if dependent.Kind != models.KindChild || dependent.GuardianEmail != guardian.Email {
		return ErrNotDependent
	}
	dependent.Approval = models.ApprovalApproved
	dependent.CanBuyItems = canBuyItems
	dependent.CanBuyGames = canBuyGames
	return s.accounts.Save(ctx, dependent)
}

// SetPlatformPreference sets or clears (empty string) the preferred
// platform. Only the fixed platform set is accepted.
func (s *AccountService) SetPlatformPreference(ctx context.Context, name, platform string) error {
	account, err := s.accounts.Get(ctx, name)
	if err != nil {
		return err
	}
	if platform == "" {
		account.Platform = ""
		return s.accounts.Save(ctx, account)
	}
	candidate := models.Platform(platform)
	if !models.AllowedPlatforms[candidate] {
		return ErrInvalidPlatform
	}
	account.Platform = candidate
	return s.accounts.Save(ctx, account)
}

// UpdatePreferences replaces the genre preference list from a
// comma-separated string.
func (s *AccountService) UpdatePreferences(ctx context.Context, name, raw string) ([]string, error) {
	account, err := s.accounts.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	var preferences []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			preferences = append(preferences, trimmed)
		}
	}
	account.Preferences = preferences
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}
	return preferences, nil
}

// Notify appends a message to the account's inbox.
func (s *AccountService) Notify(ctx context.Context, name, message string) error {
	account, err := s.accounts.Get(ctx, name)
	if err != nil {
		return err
	}
	account.Inbox = append(account.Inbox, message)
	return s.accounts.Save(ctx, account)
}

func (s *AccountService) Inbox(ctx context.Context, name string) ([]string, error) {
	account, err := s.accounts.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return account.Inbox, nil
}
