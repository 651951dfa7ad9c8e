package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"rewards_service/internal/models"
	"rewards_service/internal/storage"
)

// gameDurations are the time-trial duration buckets, in seconds. Each bucket
// has its own monthly leaderboard and payout scope.
var gameDurations = []int{60, 120, 300}

// leaderboardTopN limits how many participants per bucket are eligible for payouts.
const leaderboardTopN = 10

// rewardTiers is the cumulative tier ladder: a participant receives every
// tier whose rank threshold their rank satisfies.
var rewardTiers = []struct {
	rewardKey string
	maxRank   int
}{
	{"time_trial_top_3", 3},
	{"time_trial_top_5", 5},
	{"time_trial_top_10", 10},
}

// ProcessMonthlyRewards pays tiered leaderboard rewards for the previous
// calendar month across all duration buckets. The job is idempotent per
// (user, month, duration): participants with an existing award record are
// skipped, and the unique constraint on award records is the authoritative
// guard against overlapping runs. Failures are isolated per participant so
// one bad lookup never aborts the rest of the batch.
func (app *App) ProcessMonthlyRewards(ctx context.Context) (*models.RewardsSummary, error) {
	rewardMonth := previousMonth(time.Now().UTC())

	summary := &models.RewardsSummary{
		RewardMonth: rewardMonth,
		Results:     make([]models.DurationSummary, 0, len(gameDurations)),
	}

	for _, duration := range gameDurations {
		entries, err := app.db.GetLeaderboard(ctx, duration, rewardMonth, leaderboardTopN)
		if err != nil {
			app.log.Sugar().Errorf("Failed to load %ds leaderboard for %s: %s", duration, rewardMonth, err)
			summary.Results = append(summary.Results, models.DurationSummary{Duration: duration})
			continue
		}

		playersAwarded := 0
		scopeKey := strconv.Itoa(duration)

		for position, entry := range entries {
			rank := position + 1

			awarded, err := app.awardLeaderboardEntry(ctx, entry.UserID, rank, rewardMonth, scopeKey, duration)
			if err != nil {
				app.log.Sugar().Errorf("Failed to award user %d (rank %d, %ds): %s", entry.UserID, rank, duration, err)
				continue
			}
			if awarded > 0 {
				playersAwarded++
				summary.TotalAwarded += awarded
			}
		}

		summary.Results = append(summary.Results, models.DurationSummary{
			Duration:       duration,
			PlayersAwarded: playersAwarded,
		})
	}

	return summary, nil
}

// awardLeaderboardEntry pays one ranked participant every qualifying tier and
// records the award. Nothing paid means nothing recorded, so a later run may
// retry the participant.
func (app *App) awardLeaderboardEntry(ctx context.Context, userID int32, rank int, periodKey, scopeKey string, duration int) (int, error) {
	exists, err := app.db.AwardExists(ctx, userID, periodKey, scopeKey)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}

	totalAwarded := 0
	for _, tier := range rewardTiers {
		if rank > tier.maxRank {
			continue
		}

		description := fmt.Sprintf("Monthly time trial reward: rank %d (%ds)", rank, duration)
		awarded, err := app.AwardByPolicy(ctx, userID, tier.rewardKey, description)
		if err != nil {
			return totalAwarded, err
		}
		totalAwarded += awarded
	}

	if totalAwarded == 0 {
		return 0, nil
	}

	record := &models.AwardRecord{
		UserID:       userID,
		PeriodKey:    periodKey,
		ScopeKey:     scopeKey,
		Rank:         rank,
		CoinsAwarded: totalAwarded,
	}
	if err := app.db.InsertAwardRecord(ctx, record); err != nil {
		if errors.Is(err, storage.ErrAlreadyAwarded) {
			// An overlapping run recorded the payout first.
			app.log.Sugar().Warnf("Duplicate award record for user %d, period %s, scope %s", userID, periodKey, scopeKey)
			return totalAwarded, nil
		}
		return totalAwarded, err
	}

	return totalAwarded, nil
}

// previousMonth formats the month preceding now as YYYY-MM. It anchors on the
// first day of the current month to avoid end-of-month normalization skew.
func previousMonth(now time.Time) string {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, -1, 0).Format("2006-01")
}
