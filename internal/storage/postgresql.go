// Package storage provides primitives for connecting to and interacting with data storage systems.
// It defines the Storage interface along with a PostgreSQL implementation that manages the coin
// ledger, award policies, idempotency records, sticker collections, scratch cards, and the
// leaderboard data backing the monthly reward job.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rewards_service/internal/models"
	"rewards_service/internal/pkg/draw"
	"rewards_service/internal/pkg/logger"
	"rewards_service/internal/pkg/security"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	createUserQuery = `INSERT INTO content.users (username, password_hash, coins) VALUES ($1, $2, $3) RETURNING id;`
	checkUserQuery  = `SELECT id, password_hash FROM content.users WHERE username = $1;`

	adjustCoinsQuery        = `UPDATE content.users SET coins = coins + $1, updated_at = NOW() WHERE id = $2 AND coins + $1 >= 0;`
	appendTransactionQuery  = `INSERT INTO content.coin_transactions (user_id, amount, type, description, related_item) VALUES ($1, $2, $3, $4, $5);`
	insertNotificationQuery = `INSERT INTO content.notifications (user_id, message) VALUES ($1, $2);`

	getPolicyQuery         = `SELECT amount, active FROM content.award_policies WHERE reward_key = $1;`
	awardExistsQuery       = `SELECT EXISTS (SELECT 1 FROM content.award_records WHERE user_id = $1 AND period_key = $2 AND scope_key = $3);`
	insertAwardRecordQuery = `INSERT INTO content.award_records (user_id, period_key, scope_key, rank, coins_awarded) VALUES ($1, $2, $3, $4, $5);`

	activeCollectionQuery   = `SELECT id FROM content.sticker_collections WHERE active = TRUE ORDER BY id LIMIT 1;`
	listActiveStickersQuery = `SELECT id, collection_id, name, rarity, drop_weight FROM content.stickers WHERE collection_id = $1 AND active = TRUE ORDER BY id;`

	getTodayCardQuery      = `SELECT id, user_id, collection_id, card_date, bonus, sticker_id, scratched_at, expires_at FROM content.scratch_cards WHERE user_id = $1 AND card_date = $2 AND NOT bonus;`
	hasBonusCardQuery      = `SELECT EXISTS (SELECT 1 FROM content.scratch_cards WHERE user_id = $1 AND card_date = $2 AND bonus);`
	createCardQuery        = `INSERT INTO content.scratch_cards (user_id, collection_id, card_date, bonus, expires_at) VALUES ($1, $2, $3, $4, $5) RETURNING id;`
	lockCardQuery          = `SELECT id, user_id, collection_id, card_date, bonus, sticker_id, scratched_at, expires_at FROM content.scratch_cards WHERE id = $1 AND user_id = $2 FOR UPDATE;`
	markCardScratchedQuery = `UPDATE content.scratch_cards SET sticker_id = $1, scratched_at = $2 WHERE id = $3;`

	upsertUserStickerQuery       = `INSERT INTO content.user_stickers (user_id, sticker_id, quantity, source) VALUES ($1, $2, 1, $3)
		ON CONFLICT (user_id, sticker_id) DO UPDATE SET quantity = content.user_stickers.quantity + 1, last_obtained_at = NOW()
		RETURNING quantity;`
	countOwnedInCollectionQuery  = `SELECT COUNT(*) FROM content.user_stickers us JOIN content.stickers s ON us.sticker_id = s.id WHERE us.user_id = $1 AND s.collection_id = $2 AND s.active = TRUE;`
	countActiveInCollectionQuery = `SELECT COUNT(*) FROM content.stickers WHERE collection_id = $1 AND active = TRUE;`

	recordGameResultQuery = `INSERT INTO content.game_results (user_id, duration, levels_completed, score) VALUES ($1, $2, $3, $4);`
	leaderboardQuery      = `SELECT user_id, levels_completed, score FROM (
		SELECT DISTINCT ON (user_id) user_id, levels_completed, score FROM content.game_results
		WHERE duration = $1 AND to_char(played_at AT TIME ZONE 'UTC', 'YYYY-MM') = $2
		ORDER BY user_id, levels_completed DESC, score DESC) best_runs
		ORDER BY levels_completed DESC, score DESC LIMIT $3;`

	getUserInfoQuery      = `SELECT username, coins FROM content.users WHERE id = $1;`
	getOwnedStickersQuery = `SELECT s.id, s.collection_id, s.name, s.rarity, us.quantity FROM content.user_stickers us JOIN content.stickers s ON us.sticker_id = s.id WHERE us.user_id = $1 ORDER BY s.collection_id, s.id;`
	getTransactionsQuery  = `SELECT amount, type, description, related_item, created_at FROM content.coin_transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT 50;`
	getNotificationsQuery = `SELECT message, created_at FROM content.notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT 20;`
)

// Expected storage-level conditions. They signal recoverable state, not
// infrastructure failure, and are mapped to client responses by the service layer.
var (
	ErrInsufficientFunds = errors.New("storage: insufficient funds")
	ErrCardNotFound      = errors.New("storage: card not found")
	ErrAlreadyScratched  = errors.New("storage: card already scratched")
	ErrCardExpired       = errors.New("storage: card expired")
	ErrNoStickers        = errors.New("storage: no stickers available")
	ErrAlreadyAwarded    = errors.New("storage: reward already granted")
)

// Storage defines the methods required for data storage operations.
type Storage interface {
	// Close closes the database connection.
	Close()

	// Authentication methods.
	CheckUser(ctx context.Context, user *models.User) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// Ledger operations. Credit and Debit mutate the balance, append the
	// transaction record, and emit the notification atomically.
	Credit(ctx context.Context, userID int32, amount int, txType, description string, relatedItem *int64) error
	Debit(ctx context.Context, userID int32, amount int, txType, description string, relatedItem *int64) error

	// Award policy and idempotency records.
	GetPolicy(ctx context.Context, rewardKey string) (*models.AwardPolicy, error)
	AwardExists(ctx context.Context, userID int32, periodKey, scopeKey string) (bool, error)
	InsertAwardRecord(ctx context.Context, record *models.AwardRecord) error

	// Scratch cards and sticker inventory.
	ActiveCollection(ctx context.Context) (int32, error)
	TodayCard(ctx context.Context, userID int32, day time.Time) (*models.ScratchCard, error)
	HasBonusCard(ctx context.Context, userID int32, day time.Time) (bool, error)
	CreateCard(ctx context.Context, userID, collectionID int32, day time.Time, bonus bool, expiresAt time.Time) (*models.ScratchCard, error)
	ScratchCard(ctx context.Context, userID int32, cardID int64, now time.Time) (*models.ScratchResult, error)

	// Leaderboard data.
	RecordGameResult(ctx context.Context, userID int32, result models.GameResultRequest) error
	GetLeaderboard(ctx context.Context, duration int, periodKey string, limit int) ([]models.LeaderboardEntry, error)

	// Aggregated account information.
	GetInfo(ctx context.Context, userID int32) (*models.InfoResponse, error)
}

// PostgreSQL implements the Storage interface using a PostgreSQL database.
type PostgreSQL struct {
	db       *sql.DB        // Connection to the database.
	selector *draw.Selector // Weighted sticker selector used inside the scratch transaction.
	log      *logger.Logger // Logger for recording events and errors.
}

// NewPostgreSQL creates a new PostgreSQL instance with the provided connection string,
// sticker selector, and logger. It opens the connection, pings the database to ensure
// connectivity, and applies pending schema migrations.
func NewPostgreSQL(configDBString string, selector *draw.Selector, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, selector: selector, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		return &PostgreSQL{db: db, selector: selector, log: l}, err
	}

	if err := runMigrations(db); err != nil {
		l.Sugar().Errorf("Failed to apply migrations: %s", err)
		return &PostgreSQL{db: db, selector: selector, log: l}, err
	}

	return &PostgreSQL{db: db, selector: selector, log: l}, nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// CheckUser verifies the user's credentials by retrieving the user's ID and encrypted password,
// then checking the provided password against the stored hash.
func (postgresql *PostgreSQL) CheckUser(ctx context.Context, user *models.User) (*models.User, error) {
	var encryptedPassword string

	err := postgresql.db.QueryRowContext(ctx, checkUserQuery, user.Username).Scan(&user.ID, &encryptedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return user, nil
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query checkUserQuery: %s", err)
		return user, err
	}

	err = security.CheckPassword(encryptedPassword, user.Password)
	if err != nil {
		postgresql.log.Sugar().Errorf(err.Error())
		return user, err
	}

	return user, nil
}

// CreateUser registers a new user by hashing the password and inserting the user into the database.
func (postgresql *PostgreSQL) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	encryptedPassword := security.HashPassword(user.Password)

	err := postgresql.db.QueryRowContext(ctx, createUserQuery, user.Username, encryptedPassword, user.Coins).Scan(&user.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createUserQuery: %s", err)
		return user, err
	}
	return user, err
}

// adjustCoins applies a signed delta to the user's balance as a single conditional
// update constrained to keep the balance non-negative. Zero affected rows on a
// negative delta means the balance would have gone below zero.
func (postgresql *PostgreSQL) adjustCoins(ctx context.Context, tx *sql.Tx, userID int32, delta int) error {
	result, err := tx.ExecContext(ctx, adjustCoinsQuery, delta, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query adjustCoinsQuery: %s", err)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in adjustCoinsQuery: %s", err)
		return err
	}
	if rows == 0 {
		if delta < 0 {
			return ErrInsufficientFunds
		}
		return sql.ErrNoRows
	}

	return nil
}

// appendLedger writes the transaction record and the user-facing notification
// inside the same database transaction as the balance mutation.
func (postgresql *PostgreSQL) appendLedger(ctx context.Context, tx *sql.Tx, userID int32, amount int, txType, description string, relatedItem *int64, message string) error {
	if _, err := tx.ExecContext(ctx, appendTransactionQuery, userID, amount, txType, description, relatedItem); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query appendTransactionQuery: %s", err)
		return err
	}

	if _, err := tx.ExecContext(ctx, insertNotificationQuery, userID, message); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query insertNotificationQuery: %s", err)
		return err
	}

	return nil
}

// Credit increases the user's balance by amount and appends a positive
// transaction record. The mutation and the record are committed together.
func (postgresql *PostgreSQL) Credit(ctx context.Context, userID int32, amount int, txType, description string, relatedItem *int64) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err = postgresql.adjustCoins(ctx, tx, userID, amount); err != nil {
		return err
	}

	message := description
	if message == "" {
		message = "Coins received"
	}
	if err = postgresql.appendLedger(ctx, tx, userID, amount, txType, description, relatedItem, message); err != nil {
		return err
	}

	return tx.Commit()
}

// Debit decreases the user's balance by amount and appends a negative
// transaction record. It fails with ErrInsufficientFunds without mutating
// anything when the balance does not cover the amount.
func (postgresql *PostgreSQL) Debit(ctx context.Context, userID int32, amount int, txType, description string, relatedItem *int64) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err = postgresql.adjustCoins(ctx, tx, userID, -amount); err != nil {
		return err
	}

	message := description
	if message == "" {
		message = "Coins spent"
	}
	if err = postgresql.appendLedger(ctx, tx, userID, -amount, txType, description, relatedItem, message); err != nil {
		return err
	}

	return tx.Commit()
}

// GetPolicy retrieves the award policy for a reward key.
// A missing policy is reported as a nil entry, not an error.
func (postgresql *PostgreSQL) GetPolicy(ctx context.Context, rewardKey string) (*models.AwardPolicy, error) {
	policy := &models.AwardPolicy{RewardKey: rewardKey}

	err := postgresql.db.QueryRowContext(ctx, getPolicyQuery, rewardKey).Scan(&policy.Amount, &policy.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getPolicyQuery: %s", err)
		return nil, err
	}

	return policy, nil
}

// AwardExists reports whether an award record already exists for the
// (user, period, scope) tuple.
func (postgresql *PostgreSQL) AwardExists(ctx context.Context, userID int32, periodKey, scopeKey string) (bool, error) {
	var exists bool

	err := postgresql.db.QueryRowContext(ctx, awardExistsQuery, userID, periodKey, scopeKey).Scan(&exists)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query awardExistsQuery: %s", err)
		return false, err
	}

	return exists, nil
}

// InsertAwardRecord creates the idempotency marker for a payout. A uniqueness
// violation on (user, period, scope) is the authoritative already-awarded
// signal and is reported as ErrAlreadyAwarded.
func (postgresql *PostgreSQL) InsertAwardRecord(ctx context.Context, record *models.AwardRecord) error {
	_, err := postgresql.db.ExecContext(ctx, insertAwardRecordQuery,
		record.UserID, record.PeriodKey, record.ScopeKey, record.Rank, record.CoinsAwarded)
	if err != nil {
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyAwarded
		}
		postgresql.log.Sugar().Errorf("Failed to execute a query insertAwardRecordQuery: %s", err)
		return err
	}

	return nil
}

// ActiveCollection returns the ID of the currently active sticker collection,
// or zero when no collection is active.
func (postgresql *PostgreSQL) ActiveCollection(ctx context.Context) (int32, error) {
	var collectionID int32

	err := postgresql.db.QueryRowContext(ctx, activeCollectionQuery).Scan(&collectionID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query activeCollectionQuery: %s", err)
		return 0, err
	}

	return collectionID, nil
}

// scanCard reads one scratch card row.
func scanCard(row *sql.Row) (*models.ScratchCard, error) {
	card := &models.ScratchCard{}
	err := row.Scan(&card.ID, &card.UserID, &card.CollectionID, &card.CardDate,
		&card.Bonus, &card.StickerID, &card.ScratchedAt, &card.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return card, nil
}

// TodayCard returns the user's non-bonus card for the given day, or nil when
// none has been issued yet.
func (postgresql *PostgreSQL) TodayCard(ctx context.Context, userID int32, day time.Time) (*models.ScratchCard, error) {
	card, err := scanCard(postgresql.db.QueryRowContext(ctx, getTodayCardQuery, userID, day))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getTodayCardQuery: %s", err)
		return nil, err
	}

	return card, nil
}

// HasBonusCard reports whether the user already purchased a bonus card for the given day.
func (postgresql *PostgreSQL) HasBonusCard(ctx context.Context, userID int32, day time.Time) (bool, error) {
	var exists bool

	err := postgresql.db.QueryRowContext(ctx, hasBonusCardQuery, userID, day).Scan(&exists)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query hasBonusCardQuery: %s", err)
		return false, err
	}

	return exists, nil
}

// CreateCard issues a new unscratched card for the user and day.
func (postgresql *PostgreSQL) CreateCard(ctx context.Context, userID, collectionID int32, day time.Time, bonus bool, expiresAt time.Time) (*models.ScratchCard, error) {
	card := &models.ScratchCard{
		UserID:       userID,
		CollectionID: collectionID,
		CardDate:     day,
		Bonus:        bonus,
		ExpiresAt:    expiresAt,
	}

	err := postgresql.db.QueryRowContext(ctx, createCardQuery, userID, collectionID, day, bonus, expiresAt).Scan(&card.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createCardQuery: %s", err)
		return nil, err
	}

	return card, nil
}

// listActiveStickers loads the active stickers of a collection within a transaction.
func (postgresql *PostgreSQL) listActiveStickers(ctx context.Context, tx *sql.Tx, collectionID int32) ([]models.Sticker, error) {
	rows, err := tx.QueryContext(ctx, listActiveStickersQuery, collectionID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listActiveStickersQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	const initialPoolCapacity = 16
	pool := make([]models.Sticker, 0, initialPoolCapacity)

	for rows.Next() {
		sticker := models.Sticker{}
		if err := rows.Scan(&sticker.ID, &sticker.CollectionID, &sticker.Name, &sticker.Rarity, &sticker.DropWeight); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan sticker in listActiveStickers method: %s", err)
			return nil, err
		}
		pool = append(pool, sticker)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in listActiveStickers method: %s", err)
		return pool, err
	}

	return pool, nil
}

// ScratchCard performs the scratch state transition for a card owned by the user.
// The card row is locked for the duration of the transaction, so concurrent
// scratch attempts serialize and the loser observes the scratched state.
// On success the drawn sticker is bound to the card, the user's inventory is
// upserted, and the collection completion state is recomputed.
func (postgresql *PostgreSQL) ScratchCard(ctx context.Context, userID int32, cardID int64, now time.Time) (*models.ScratchResult, error) {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	card, err := scanCard(tx.QueryRowContext(ctx, lockCardQuery, cardID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query lockCardQuery: %s", err)
		return nil, err
	}

	if card.ScratchedAt != nil {
		return nil, ErrAlreadyScratched
	}
	if !now.Before(card.ExpiresAt) {
		return nil, ErrCardExpired
	}

	pool, err := postgresql.listActiveStickers(ctx, tx, card.CollectionID)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoStickers
	}

	sticker, err := postgresql.selector.Pick(pool)
	if err != nil {
		return nil, ErrNoStickers
	}

	if _, err = tx.ExecContext(ctx, markCardScratchedQuery, sticker.ID, now, card.ID); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query markCardScratchedQuery: %s", err)
		return nil, err
	}

	source := "daily_card"
	if card.Bonus {
		source = "bonus_card"
	}

	var quantity int
	if err = tx.QueryRowContext(ctx, upsertUserStickerQuery, userID, sticker.ID, source).Scan(&quantity); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query upsertUserStickerQuery: %s", err)
		return nil, err
	}

	var owned, total int
	if err = tx.QueryRowContext(ctx, countOwnedInCollectionQuery, userID, card.CollectionID).Scan(&owned); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query countOwnedInCollectionQuery: %s", err)
		return nil, err
	}
	if err = tx.QueryRowContext(ctx, countActiveInCollectionQuery, card.CollectionID).Scan(&total); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query countActiveInCollectionQuery: %s", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return &models.ScratchResult{
		Success:     true,
		Sticker:     sticker,
		IsDuplicate: quantity > 1,
		Quantity:    quantity,
		IsComplete:  total > 0 && owned == total,
	}, nil
}

// RecordGameResult stores one submitted time-trial run.
func (postgresql *PostgreSQL) RecordGameResult(ctx context.Context, userID int32, result models.GameResultRequest) error {
	_, err := postgresql.db.ExecContext(ctx, recordGameResultQuery, userID, result.Duration, result.LevelsCompleted, result.Score)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query recordGameResultQuery: %s", err)
		return err
	}

	return nil
}

// GetLeaderboard ranks participants of one duration bucket for a calendar
// month. Each participant is represented by their single best run, ordered
// by levels completed descending with score as tie-breaker.
func (postgresql *PostgreSQL) GetLeaderboard(ctx context.Context, duration int, periodKey string, limit int) ([]models.LeaderboardEntry, error) {
	rows, err := postgresql.db.QueryContext(ctx, leaderboardQuery, duration, periodKey, limit)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query leaderboardQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.LeaderboardEntry, 0, limit)
	for rows.Next() {
		entry := models.LeaderboardEntry{}
		if err := rows.Scan(&entry.UserID, &entry.LevelsCompleted, &entry.Score); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan leaderboard entry in GetLeaderboard method: %s", err)
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in GetLeaderboard method: %s", err)
		return entries, err
	}

	return entries, nil
}

// GetInfo aggregates complete information about a user, including coin balance,
// sticker inventory, ledger history, and recent notifications.
// It uses a transaction to combine data from multiple queries and returns an InfoResponse.
func (postgresql *PostgreSQL) GetInfo(ctx context.Context, userID int32) (*models.InfoResponse, error) {
	infoResponse := &models.InfoResponse{}

	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return infoResponse, err
	}
	defer tx.Rollback()

	var username string
	if err = tx.QueryRowContext(ctx, getUserInfoQuery, userID).Scan(&username, &infoResponse.Coins); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getUserInfoQuery: %s", err)
		return infoResponse, err
	}

	stickers, err := postgresql.getOwnedStickers(ctx, tx, userID)
	if err != nil {
		return infoResponse, err
	}

	transactions, err := postgresql.getTransactions(ctx, tx, userID)
	if err != nil {
		return infoResponse, err
	}

	notifications, err := postgresql.getNotifications(ctx, tx, userID)
	if err != nil {
		return infoResponse, err
	}

	infoResponse.Stickers = stickers
	infoResponse.Transactions = transactions
	infoResponse.Notifications = notifications

	if err = tx.Commit(); err != nil {
		return infoResponse, err
	}

	return infoResponse, nil
}

func (postgresql *PostgreSQL) getOwnedStickers(ctx context.Context, tx *sql.Tx, userID int32) ([]models.OwnedSticker, error) {
	rows, err := tx.QueryContext(ctx, getOwnedStickersQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getOwnedStickersQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	const initialInventoryCapacity = 10
	inventory := make([]models.OwnedSticker, 0, initialInventoryCapacity)

	for rows.Next() {
		owned := models.OwnedSticker{}
		if err := rows.Scan(&owned.Sticker.ID, &owned.Sticker.CollectionID, &owned.Sticker.Name, &owned.Sticker.Rarity, &owned.Quantity); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan inventory entry in getOwnedStickers method: %s", err)
			return nil, err
		}
		inventory = append(inventory, owned)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in getOwnedStickers method: %s", err)
		return inventory, err
	}

	return inventory, nil
}

func (postgresql *PostgreSQL) getTransactions(ctx context.Context, tx *sql.Tx, userID int32) ([]models.Transaction, error) {
	rows, err := tx.QueryContext(ctx, getTransactionsQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getTransactionsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	const initialHistoryCapacity = 10
	history := make([]models.Transaction, 0, initialHistoryCapacity)

	for rows.Next() {
		transaction := models.Transaction{}
		if err := rows.Scan(&transaction.Amount, &transaction.Type, &transaction.Description, &transaction.RelatedItem, &transaction.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan ledger entry in getTransactions method: %s", err)
			return nil, err
		}
		history = append(history, transaction)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in getTransactions method: %s", err)
		return history, err
	}

	return history, nil
}

func (postgresql *PostgreSQL) getNotifications(ctx context.Context, tx *sql.Tx, userID int32) ([]models.Notification, error) {
	rows, err := tx.QueryContext(ctx, getNotificationsQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getNotificationsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	const initialNotificationCapacity = 10
	notifications := make([]models.Notification, 0, initialNotificationCapacity)

	for rows.Next() {
		notification := models.Notification{}
		if err := rows.Scan(&notification.Message, &notification.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan notification in getNotifications method: %s", err)
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in getNotifications method: %s", err)
		return notifications, err
	}

	return notifications, nil
}
