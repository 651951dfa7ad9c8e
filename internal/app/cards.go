package app

import (
	"context"
	"time"

	"rewards_service/internal/models"
)

// ProcessDailyCard returns the user's scratch card for the current day,
// issuing it lazily against the active collection. The card expires at the
// end of the calendar day (UTC).
func (app *App) ProcessDailyCard(ctx context.Context, userID int32, now time.Time) (*models.ScratchCard, error) {
	day := startOfDay(now)

	card, err := app.db.TodayCard(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if card != nil {
		return card, nil
	}

	collectionID, err := app.db.ActiveCollection(ctx)
	if err != nil {
		return nil, err
	}
	if collectionID == 0 {
		return nil, ErrNoActiveCollection
	}

	card, err = app.db.CreateCard(ctx, userID, collectionID, day, false, day.AddDate(0, 0, 1))
	if err != nil {
		// A concurrent request may have issued the card first; the partial
		// unique index on (user, day) rejects the second insert.
		if existing, lookupErr := app.db.TodayCard(ctx, userID, day); lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}

	return card, nil
}

// ProcessScratch performs the scratch state transition for the card:
// a weighted sticker draw, inventory upsert, and collection completion check.
func (app *App) ProcessScratch(ctx context.Context, userID int32, cardID int64) (*models.ScratchResult, error) {
	return app.db.ScratchCard(ctx, userID, cardID, time.Now().UTC())
}

// ProcessBonusCard sells the user one additional scratch card for today,
// deducting the configured coin cost. At most one bonus card may be bought
// per day, and an active collection must exist.
func (app *App) ProcessBonusCard(ctx context.Context, userID int32, now time.Time) (*models.ScratchCard, error) {
	day := startOfDay(now)

	purchased, err := app.db.HasBonusCard(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if purchased {
		return nil, ErrBonusAlreadyPurchased
	}

	collectionID, err := app.db.ActiveCollection(ctx)
	if err != nil {
		return nil, err
	}
	if collectionID == 0 {
		return nil, ErrNoActiveCollection
	}

	if err = app.db.Debit(ctx, userID, app.bonusCardCost, models.TransactionPurchase, "Bonus scratch card", nil); err != nil {
		return nil, err
	}

	card, err := app.db.CreateCard(ctx, userID, collectionID, day, true, day.AddDate(0, 0, 1))
	if err != nil {
		// The purchase was already charged; refund so the failed issue
		// leaves the ledger consistent.
		if refundErr := app.EarnCoins(ctx, userID, app.bonusCardCost, "Bonus card refund"); refundErr != nil {
			app.log.Sugar().Errorf("Failed to refund bonus card for user %d: %s", userID, refundErr)
		}
		return nil, err
	}

	return card, nil
}

func startOfDay(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
