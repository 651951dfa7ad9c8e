// Package app provides the core business logic for the community rewards service.
// It implements the coin award engine on top of the storage layer: policy-driven
// awards, ad-hoc earn and deduct operations, user authentication, and account
// information retrieval. Scratch-card orchestration and the monthly reward job
// live in their own files of this package.
package app

import (
	"context"
	"errors"

	"rewards_service/internal/models"
	"rewards_service/internal/pkg/auth"
	"rewards_service/internal/pkg/logger"
	"rewards_service/internal/storage"
)

// Predefined errors for invalid requests and expected business conditions.
var (
	// ErrMissingUsernameOrPassword indicates that either the username or password is not provided.
	ErrMissingUsernameOrPassword = errors.New("app: missing username or password")
	// ErrInvalidGameResult indicates a game result with an unknown duration bucket or negative metrics.
	ErrInvalidGameResult = errors.New("app: invalid game result")
	// ErrNoActiveCollection indicates that no sticker collection is currently active.
	ErrNoActiveCollection = errors.New("app: no active sticker collection")
	// ErrBonusAlreadyPurchased indicates that the user already bought a bonus card today.
	ErrBonusAlreadyPurchased = errors.New("app: bonus card already purchased today")
)

// App encapsulates the application logic and dependencies required to process requests.
// It interacts with the storage layer and uses a logger for error and activity logging.
type App struct {
	db            storage.Storage // Database storage layer for persistent data operations.
	bonusCardCost int             // Coin cost of one purchased bonus scratch card.
	log           *logger.Logger  // Logger for logging application events and errors.
}

// NewApp creates and returns a new instance of App with the provided storage,
// bonus-card cost, and logger dependencies.
func NewApp(db storage.Storage, bonusCardCost int, log *logger.Logger) *App {
	return &App{db: db, bonusCardCost: bonusCardCost, log: log}
}

// ProcessAuth handles user authentication by verifying credentials and generating a token.
// If the user does not exist, it creates a new user and pays the welcome bonus policy.
func (app *App) ProcessAuth(ctx context.Context, req models.AuthRequest) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", ErrMissingUsernameOrPassword
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
	}

	user, err := app.db.CheckUser(ctx, user)
	if err != nil {
		return "", err
	}

	if user.ID == 0 {
		user, err = app.db.CreateUser(ctx, user)
		if err != nil {
			return "", err
		}

		// The welcome bonus is a regular policy award; a failure here must
		// not block the registration itself.
		if _, err := app.AwardByPolicy(ctx, user.ID, "welcome_bonus", "Welcome bonus"); err != nil {
			app.log.Sugar().Errorf("Failed to pay welcome bonus to user %d: %s", user.ID, err)
		}
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return "", err
	}

	return token, nil
}

// AwardByPolicy pays the user the coin amount configured for the reward key.
// A missing, inactive, or zero-amount policy is a silent no-op returning zero
// coins awarded, not an error.
func (app *App) AwardByPolicy(ctx context.Context, userID int32, rewardKey, description string) (int, error) {
	policy, err := app.db.GetPolicy(ctx, rewardKey)
	if err != nil {
		return 0, err
	}
	if policy == nil || !policy.Active || policy.Amount <= 0 {
		return 0, nil
	}

	if err := app.db.Credit(ctx, userID, policy.Amount, models.TransactionEarned, description, nil); err != nil {
		return 0, err
	}

	return policy.Amount, nil
}

// EarnCoins credits the user an ad-hoc positive amount with a ledger record.
func (app *App) EarnCoins(ctx context.Context, userID int32, amount int, description string) error {
	return app.db.Credit(ctx, userID, amount, models.TransactionEarned, description, nil)
}

// SpendCoins deducts an ad-hoc amount from the user's balance. The deduction
// fails with storage.ErrInsufficientFunds and performs no mutation when the
// balance does not cover the amount.
func (app *App) SpendCoins(ctx context.Context, userID int32, amount int, description string, relatedItem *int64) error {
	return app.db.Debit(ctx, userID, amount, models.TransactionSpent, description, relatedItem)
}

// ProcessInfo retrieves detailed information about a user's account.
// It queries the storage layer for the coin balance, sticker inventory,
// ledger history, and recent notifications.
func (app *App) ProcessInfo(ctx context.Context, userID int32) (*models.InfoResponse, error) {
	infoResponse, err := app.db.GetInfo(ctx, userID)
	if err != nil {
		return nil, err
	}

	return infoResponse, nil
}

// ProcessGameResult records a time-trial run and pays the play policy.
// It returns the number of coins awarded for the run.
func (app *App) ProcessGameResult(ctx context.Context, userID int32, req models.GameResultRequest) (int, error) {
	if !validDuration(req.Duration) || req.LevelsCompleted < 0 || req.Score < 0 {
		return 0, ErrInvalidGameResult
	}

	if err := app.db.RecordGameResult(ctx, userID, req); err != nil {
		return 0, err
	}

	return app.AwardByPolicy(ctx, userID, "time_trial_play", "Time trial played")
}

func validDuration(duration int) bool {
	for _, d := range gameDurations {
		if duration == d {
			return true
		}
	}
	return false
}
