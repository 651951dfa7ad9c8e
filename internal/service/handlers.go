// Package service contains HTTP handler implementations for the rewards API endpoints.
// It orchestrates request parsing, calls the underlying business logic in the app package,
// handles errors (including database-specific errors), and writes appropriate HTTP responses.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"rewards_service/internal/app"
	"rewards_service/internal/models"
	"rewards_service/internal/pkg/auth"
	"rewards_service/internal/pkg/logger"
	"rewards_service/internal/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const requestTimeout = 10 * time.Second

// jobTimeout bounds the monthly reward job, which makes one round-trip per participant.
const jobTimeout = 5 * time.Minute

// handlers aggregates dependencies needed by HTTP handlers,
// including the application business logic and logger.
type handlers struct {
	app *app.App
	log *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided app and logger dependencies.
func newHandlers(app *app.App, l *logger.Logger) *handlers {
	return &handlers{app: app, log: l}
}

// authHandler handles user authentication requests.
// It reads the request body, unmarshals it into an AuthRequest,
// invokes the authentication process, and returns a JSON response with a token.
func (handlers *handlers) authHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var authRequest models.AuthRequest
	var authResponse models.AuthResponse

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &authRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	var pgError *pgconn.PgError
	authResponse.Token, err = handlers.app.ProcessAuth(ctx, authRequest)
	if err != nil {
		if ok := errors.As(err, &pgError); ok && pgError.Code == pgerrcode.UniqueViolation {
			writeErrorResponse(res, "user with provided name already exists", http.StatusUnauthorized)
			return
		}

		if errors.Is(err, app.ErrMissingUsernameOrPassword) {
			writeErrorResponse(res, "missing username or password", http.StatusBadRequest)
			return
		}

		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			writeErrorResponse(res, "incorrect password", http.StatusUnauthorized)
			return
		}
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, authResponse, http.StatusOK)
}

// infoHandler retrieves user account information.
// It extracts the user ID from the context, calls the business logic to obtain user info,
// and returns the information in JSON format.
func (handlers *handlers) infoHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := req.Context().Value(auth.ContextUserID).(int32)
	if !ok || userID == 0 {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	info, err := handlers.app.ProcessInfo(ctx, userID)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, info, http.StatusOK)
}

// todayCardHandler returns the authenticated user's scratch card for today,
// issuing one lazily when none exists yet.
func (handlers *handlers) todayCardHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := req.Context().Value(auth.ContextUserID).(int32)
	if !ok || userID == 0 {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	card, err := handlers.app.ProcessDailyCard(ctx, userID, time.Now())
	if err != nil {
		if errors.Is(err, app.ErrNoActiveCollection) {
			writeErrorResponse(res, "no stickers available", http.StatusBadRequest)
			return
		}

		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, card, http.StatusOK)
}

// scratchHandler processes a card-scratch request. Validation and state
// failures of the card state machine are expected conditions and map to
// HTTP 400 with a human-readable reason.
func (handlers *handlers) scratchHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := req.Context().Value(auth.ContextUserID).(int32)
	if !ok || userID == 0 {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var scratchRequest models.ScratchRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &scratchRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handlers.app.ProcessScratch(ctx, userID, scratchRequest.CardID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrCardNotFound):
			writeErrorResponse(res, "not found", http.StatusBadRequest)
		case errors.Is(err, storage.ErrAlreadyScratched):
			writeErrorResponse(res, "already scratched", http.StatusBadRequest)
		case errors.Is(err, storage.ErrCardExpired):
			writeErrorResponse(res, "expired", http.StatusBadRequest)
		case errors.Is(err, storage.ErrNoStickers):
			writeErrorResponse(res, "no stickers available", http.StatusBadRequest)
		default:
			writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSONResponse(res, result, http.StatusOK)
}

// bonusCardHandler sells the authenticated user one extra scratch card for
// today, charging the configured coin cost through the deduct path.
func (handlers *handlers) bonusCardHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := req.Context().Value(auth.ContextUserID).(int32)
	if !ok || userID == 0 {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	card, err := handlers.app.ProcessBonusCard(ctx, userID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, app.ErrBonusAlreadyPurchased):
			writeErrorResponse(res, "bonus card already purchased today", http.StatusBadRequest)
		case errors.Is(err, app.ErrNoActiveCollection):
			writeErrorResponse(res, "no stickers available", http.StatusBadRequest)
		case errors.Is(err, storage.ErrInsufficientFunds):
			writeErrorResponse(res, "not enough coins", http.StatusBadRequest)
		default:
			writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSONResponse(res, card, http.StatusOK)
}

// gameResultHandler records a submitted time-trial run and reports the coins
// awarded for playing.
func (handlers *handlers) gameResultHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := req.Context().Value(auth.ContextUserID).(int32)
	if !ok || userID == 0 {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var gameResult models.GameResultRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &gameResult); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	coinsAwarded, err := handlers.app.ProcessGameResult(ctx, userID, gameResult)
	if err != nil {
		if errors.Is(err, app.ErrInvalidGameResult) {
			writeErrorResponse(res, "invalid game result", http.StatusBadRequest)
			return
		}

		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, map[string]int{"coinsAwarded": coinsAwarded}, http.StatusOK)
}

// monthlyRewardsHandler triggers the monthly leaderboard payout job and
// returns its summary. The endpoint is invoked by an external scheduler and
// requires no request body.
func (handlers *handlers) monthlyRewardsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), jobTimeout)
	defer cancel()

	summary, err := handlers.app.ProcessMonthlyRewards(ctx)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, summary, http.StatusOK)
}

func writeJSONResponse(res http.ResponseWriter, payload any, statusCode int) {
	result, err := json.Marshal(payload)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	res.Write(result)
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
