package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewards_service/internal/models"
	"rewards_service/internal/pkg/logger"
	"rewards_service/internal/storage/mocks"
)

func newTestApp(t *testing.T) (*App, *mocks.MockStorage) {
	t.Helper()

	l, err := logger.CreateLogger("info")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockDB := mocks.NewMockStorage(ctrl)

	return NewApp(mockDB, 100, l), mockDB
}

func activePolicies(mockDB *mocks.MockStorage) {
	amounts := map[string]int{
		"time_trial_top_3":  100,
		"time_trial_top_5":  50,
		"time_trial_top_10": 20,
	}
	for key, amount := range amounts {
		key, amount := key, amount
		mockDB.EXPECT().GetPolicy(gomock.Any(), key).
			Return(&models.AwardPolicy{RewardKey: key, Amount: amount, Active: true}, nil).AnyTimes()
	}
}

func rankedEntries(count int) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, models.LeaderboardEntry{
			UserID:          int32(i + 1),
			LevelsCompleted: 100 - i,
			Score:           1000 - i,
		})
	}
	return entries
}

func TestProcessMonthlyRewards_TierLadder(t *testing.T) {
	app, mockDB := newTestApp(t)
	ctx := context.Background()

	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 60, gomock.Any(), 10).Return(rankedEntries(8), nil)
	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 120, gomock.Any(), 10).Return([]models.LeaderboardEntry{}, nil)
	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 300, gomock.Any(), 10).Return([]models.LeaderboardEntry{}, nil)
	mockDB.EXPECT().AwardExists(gomock.Any(), gomock.Any(), gomock.Any(), "60").Return(false, nil).Times(8)
	activePolicies(mockDB)

	paid := map[int32]int{}
	mockDB.EXPECT().Credit(gomock.Any(), gomock.Any(), gomock.Any(), models.TransactionEarned, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, userID int32, amount int, _, _ string, _ *int64) error {
			paid[userID] += amount
			return nil
		}).AnyTimes()

	records := map[int32]*models.AwardRecord{}
	mockDB.EXPECT().InsertAwardRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.AwardRecord) error {
			records[record.UserID] = record
			return nil
		}).Times(8)

	summary, err := app.ProcessMonthlyRewards(ctx)
	require.NoError(t, err)

	// Cumulative ladder: top 3 get every tier, ranks 4-5 two tiers, ranks 6-10 one.
	expectedTotals := map[int32]int{
		1: 170, 2: 170, 3: 170,
		4: 70, 5: 70,
		6: 20, 7: 20, 8: 20,
	}
	assert.Equal(t, expectedTotals, paid)

	for userID, total := range expectedTotals {
		require.Contains(t, records, userID)
		assert.Equal(t, total, records[userID].CoinsAwarded)
		assert.Equal(t, int(userID), records[userID].Rank)
		assert.Equal(t, "60", records[userID].ScopeKey)
	}

	assert.Equal(t, 710, summary.TotalAwarded)
	assert.Equal(t, []models.DurationSummary{
		{Duration: 60, PlayersAwarded: 8},
		{Duration: 120, PlayersAwarded: 0},
		{Duration: 300, PlayersAwarded: 0},
	}, summary.Results)
}

func TestProcessMonthlyRewards_SecondRunAwardsNothing(t *testing.T) {
	app, mockDB := newTestApp(t)
	ctx := context.Background()

	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 60, gomock.Any(), 10).Return(rankedEntries(5), nil)
	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 120, gomock.Any(), 10).Return([]models.LeaderboardEntry{}, nil)
	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 300, gomock.Any(), 10).Return([]models.LeaderboardEntry{}, nil)

	// Every participant already holds an award record; no policy lookups,
	// credits, or record inserts may happen.
	mockDB.EXPECT().AwardExists(gomock.Any(), gomock.Any(), gomock.Any(), "60").Return(true, nil).Times(5)

	summary, err := app.ProcessMonthlyRewards(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalAwarded)
	assert.Equal(t, 0, summary.Results[0].PlayersAwarded)
}

func TestProcessMonthlyRewards_InactivePoliciesRecordNothing(t *testing.T) {
	app, mockDB := newTestApp(t)
	ctx := context.Background()

	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 60, gomock.Any(), 10).Return(rankedEntries(2), nil)
	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 120, gomock.Any(), 10).Return([]models.LeaderboardEntry{}, nil)
	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 300, gomock.Any(), 10).Return([]models.LeaderboardEntry{}, nil)
	mockDB.EXPECT().AwardExists(gomock.Any(), gomock.Any(), gomock.Any(), "60").Return(false, nil).Times(2)
	mockDB.EXPECT().GetPolicy(gomock.Any(), gomock.Any()).
		Return(&models.AwardPolicy{Amount: 100, Active: false}, nil).AnyTimes()

	// Nothing paid means nothing recorded, so a later run may retry.
	summary, err := app.ProcessMonthlyRewards(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalAwarded)
	assert.Equal(t, 0, summary.Results[0].PlayersAwarded)
}

func TestProcessMonthlyRewards_ParticipantFailureIsIsolated(t *testing.T) {
	app, mockDB := newTestApp(t)
	ctx := context.Background()

	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 60, gomock.Any(), 10).Return(rankedEntries(2), nil)
	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 120, gomock.Any(), 10).Return([]models.LeaderboardEntry{}, nil)
	mockDB.EXPECT().GetLeaderboard(gomock.Any(), 300, gomock.Any(), 10).Return([]models.LeaderboardEntry{}, nil)

	mockDB.EXPECT().AwardExists(gomock.Any(), int32(1), gomock.Any(), "60").Return(false, errors.New("lookup failed"))
	mockDB.EXPECT().AwardExists(gomock.Any(), int32(2), gomock.Any(), "60").Return(false, nil)
	activePolicies(mockDB)
	mockDB.EXPECT().Credit(gomock.Any(), int32(2), gomock.Any(), models.TransactionEarned, gomock.Any(), gomock.Nil()).
		Return(nil).Times(3)
	mockDB.EXPECT().InsertAwardRecord(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := app.ProcessMonthlyRewards(ctx)
	require.NoError(t, err)

	assert.Equal(t, 170, summary.TotalAwarded)
	assert.Equal(t, 1, summary.Results[0].PlayersAwarded)
}

func TestPreviousMonth(t *testing.T) {
	testCases := []struct {
		name     string
		now      time.Time
		expected string
	}{
		{
			name:     "mid month",
			now:      time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC),
			expected: "2025-05",
		},
		{
			name:     "end of long month after short month",
			now:      time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC),
			expected: "2025-02",
		},
		{
			name:     "january rolls into previous year",
			now:      time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024-12",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, previousMonth(tc.now))
		})
	}
}
