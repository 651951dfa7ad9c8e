package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewards_service/internal/app"
	"rewards_service/internal/config"
	"rewards_service/internal/models"
	"rewards_service/internal/pkg/auth"
	"rewards_service/internal/pkg/logger"
	"rewards_service/internal/storage"
	"rewards_service/internal/storage/mocks"
)

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockStorage) {
	t.Helper()

	l, err := logger.CreateLogger(config.LogLevel)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockDB := mocks.NewMockStorage(ctrl)

	appInstance := app.NewApp(mockDB, config.BonusCardCost, l)
	service := NewService(appInstance, config.ServerRunAddress, l)

	testServer := httptest.NewServer(service.NewRouter())
	t.Cleanup(testServer.Close)

	return testServer, mockDB
}

func testRequestWithAuth(t *testing.T, ts *httptest.Server, method, path string, requestBody []byte, token string) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewBuffer(requestBody))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestAuthHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	t.Run("Missing password", func(t *testing.T) {
		resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/auth",
			[]byte(`{"username": "newbie"}`), "")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"missing username or password\"}\n", body)
	})

	t.Run("Concurrent registration of the same username", func(t *testing.T) {
		mockDB.EXPECT().
			CheckUser(gomock.Any(), gomock.Any()).
			Return(&models.User{Username: "newbie", Password: "secret"}, nil)
		mockDB.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation})

		resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/auth",
			[]byte(`{"username": "newbie", "password": "secret"}`), "")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"user with provided name already exists\"}\n", body)
	})
}

func TestScratchHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	type expectedData struct {
		expectedContentType string
		expectedStatusCode  int
		expectedBody        string
	}

	scratchResult := &models.ScratchResult{
		Success:  true,
		Sticker:  models.Sticker{ID: 3, CollectionID: 2, Name: "Sunny", Rarity: "rare"},
		Quantity: 1,
	}
	scratchResultJSON, err := json.Marshal(scratchResult)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Invalid JSON",
			requestBody: []byte("some body"),
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"invalid character 's' looking for beginning of value\"}\n",
			},
		},
		{
			name:        "Card not found",
			requestBody: []byte(`{"card_id": 42}`),
			setupMock: func() {
				mockDB.EXPECT().
					ScratchCard(gomock.Any(), int32(1), int64(42), gomock.Any()).
					Return(nil, storage.ErrCardNotFound)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"not found\"}\n",
			},
		},
		{
			name:        "Already scratched",
			requestBody: []byte(`{"card_id": 42}`),
			setupMock: func() {
				mockDB.EXPECT().
					ScratchCard(gomock.Any(), int32(1), int64(42), gomock.Any()).
					Return(nil, storage.ErrAlreadyScratched)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"already scratched\"}\n",
			},
		},
		{
			name:        "Expired card",
			requestBody: []byte(`{"card_id": 42}`),
			setupMock: func() {
				mockDB.EXPECT().
					ScratchCard(gomock.Any(), int32(1), int64(42), gomock.Any()).
					Return(nil, storage.ErrCardExpired)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"expired\"}\n",
			},
		},
		{
			name:        "Empty collection",
			requestBody: []byte(`{"card_id": 42}`),
			setupMock: func() {
				mockDB.EXPECT().
					ScratchCard(gomock.Any(), int32(1), int64(42), gomock.Any()).
					Return(nil, storage.ErrNoStickers)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"no stickers available\"}\n",
			},
		},
		{
			name:        "Successful scratch",
			requestBody: []byte(`{"card_id": 42}`),
			setupMock: func() {
				mockDB.EXPECT().
					ScratchCard(gomock.Any(), int32(1), int64(42), gomock.Any()).
					Return(scratchResult, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
				expectedBody:        string(scratchResultJSON),
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.setupMock()
			resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/cards/scratch", testCase.requestBody, token)
			defer resp.Body.Close()
			assert.Equal(t, testCase.expected.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, testCase.expected.expectedContentType, resp.Header.Get("Content-Type"))
			assert.Equal(t, testCase.expected.expectedBody, body)
		})
	}
}

func TestScratchHandler_Unauthorized(t *testing.T) {
	testServer, _ := newTestServer(t)

	resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/cards/scratch", []byte(`{"card_id": 1}`), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "{\"errors\":\"missing auth header\"}\n", body)
}

func TestBonusCardHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	day := func() time.Time {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}()

	t.Run("Insufficient funds", func(t *testing.T) {
		mockDB.EXPECT().HasBonusCard(gomock.Any(), int32(1), day).Return(false, nil)
		mockDB.EXPECT().ActiveCollection(gomock.Any()).Return(int32(2), nil)
		mockDB.EXPECT().
			Debit(gomock.Any(), int32(1), config.BonusCardCost, models.TransactionPurchase, gomock.Any(), gomock.Nil()).
			Return(storage.ErrInsufficientFunds)

		resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/cards/bonus", nil, token)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"not enough coins\"}\n", body)
	})

	t.Run("Already purchased today", func(t *testing.T) {
		mockDB.EXPECT().HasBonusCard(gomock.Any(), int32(1), day).Return(true, nil)

		resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/cards/bonus", nil, token)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"bonus card already purchased today\"}\n", body)
	})
}

func TestGameResultHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	t.Run("Unknown duration bucket", func(t *testing.T) {
		resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/games/time-trial",
			[]byte(`{"duration": 45, "levels_completed": 2, "score": 10}`), token)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"invalid game result\"}\n", body)
	})

	t.Run("Valid run", func(t *testing.T) {
		mockDB.EXPECT().
			RecordGameResult(gomock.Any(), int32(1), models.GameResultRequest{Duration: 60, LevelsCompleted: 2, Score: 10}).
			Return(nil)
		mockDB.EXPECT().GetPolicy(gomock.Any(), "time_trial_play").
			Return(&models.AwardPolicy{RewardKey: "time_trial_play", Amount: 10, Active: true}, nil)
		mockDB.EXPECT().
			Credit(gomock.Any(), int32(1), 10, models.TransactionEarned, gomock.Any(), gomock.Nil()).
			Return(nil)

		resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/games/time-trial",
			[]byte(`{"duration": 60, "levels_completed": 2, "score": 10}`), token)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "{\"coinsAwarded\":10}", body)
	})
}

func TestMonthlyRewardsHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	for _, duration := range []int{60, 120, 300} {
		mockDB.EXPECT().
			GetLeaderboard(gomock.Any(), duration, gomock.Any(), 10).
			Return([]models.LeaderboardEntry{}, nil)
	}

	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	rewardMonth := firstOfMonth.AddDate(0, -1, 0).Format("2006-01")

	resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/jobs/monthly-rewards", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	expectedBody := fmt.Sprintf(
		"{\"rewardMonth\":%q,\"totalAwarded\":0,\"results\":[{\"duration\":60,\"playersAwarded\":0},{\"duration\":120,\"playersAwarded\":0},{\"duration\":300,\"playersAwarded\":0}]}",
		rewardMonth)
	assert.Equal(t, expectedBody, body)
}
