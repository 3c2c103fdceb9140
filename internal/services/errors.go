package services

import (
	"errors"

	"marketplace/internal/ledger"
	"marketplace/internal/money"
	"marketplace/internal/store"
	"marketplace/internal/validator"
)

var (
	ErrInvalidCredentials   = errors.New("invalid name or password")
	ErrGuardianNotAdult     = errors.New("guardian must be an existing adult account")
	ErrNotDependent         = errors.New("account is not a dependent of this guardian")
	ErrAlreadyOwned         = errors.New("game already owned")
	ErrNotOwned             = errors.New("game not owned")
	ErrItemNotFound         = errors.New("item not found")
	ErrIncompatiblePlatform = errors.New("game does not support the preferred platform")
	ErrInvalidPlatform      = errors.New("invalid platform")
	ErrApprovalRequired     = errors.New("account is pending guardian approval")
	ErrPermissionDenied     = errors.New("purchase permission not granted")
	ErrNotAdmin             = errors.New("admin account required")
	ErrInvalidGameKind      = errors.New("game kind must be online or offline")
	ErrInvalidPrice         = errors.New("price must not be negative")
	ErrEmptyProblem         = errors.New("ticket problem must not be empty")
	ErrEmptyVersion         = errors.New("patch version must not be empty")
	ErrEmptyAchievement     = errors.New("achievement code must not be empty")
	ErrForumUnavailable     = errors.New("forum is only available on online games")
	ErrAlreadyQueued        = errors.New("player is already in the queue")
)

// Kind buckets an operation failure for presentation. Every error raised by
// the services falls into one of the first three buckets.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindBusinessRule
	KindNotFound
)

var validationErrs = []error{
	validator.ErrInvalidEmail,
	validator.ErrInvalidName,
	validator.ErrInvalidPassword,
	validator.ErrInvalidAge,
	money.ErrInvalidAmount,
	money.ErrTooManyDecimals,
	ledger.ErrInvalidAmount,
	ErrInvalidPlatform,
	ErrInvalidGameKind,
	ErrInvalidPrice,
	ErrEmptyProblem,
	ErrEmptyVersion,
	ErrEmptyAchievement,
}

var notFoundErrs = []error{
	store.ErrAccountNotFound,
	store.ErrGameNotFound,
	ErrItemNotFound,
}

var businessRuleErrs = []error{
	ledger.ErrInsufficientFunds,
	store.ErrAccountExists,
	store.ErrGameExists,
	ErrInvalidCredentials,
	ErrGuardianNotAdult,
	ErrNotDependent,
	ErrAlreadyOwned,
	ErrNotOwned,
	ErrIncompatiblePlatform,
	ErrApprovalRequired,
	ErrPermissionDenied,
	ErrNotAdmin,
	ErrForumUnavailable,
	ErrAlreadyQueued,
}

func Classify(err error) Kind {
	for _, target := range validationErrs {
		if errors.Is(err, target) {
			return KindValidation
		}
	}
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return KindNotFound
		}
	}
	for _, target := range businessRuleErrs {
		if errors.Is(err, target) {
			return KindBusinessRule
		}
	}
	return KindUnknown
}
