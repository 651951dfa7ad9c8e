// Package models defines the data structures used throughout the application.
// It includes request and response payloads for authentication, the coin
// ledger, scratch cards, sticker inventory, game results, and the monthly
// reward job summary.
package models

import "time"

// Transaction type values recorded in the coin ledger.
const (
	TransactionEarned   = "earned"
	TransactionSpent    = "spent"
	TransactionPurchase = "purchase"
)

// AuthRequest represents the authentication request payload.
// It contains the username and password provided by the user.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents the authentication response payload.
// It contains the generated token upon successful authentication.
type AuthResponse struct {
	Token string `json:"token"`
}

// ErrorResponse represents a generic error response payload.
// It contains a string describing the encountered error.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// User represents a user in the system.
// It holds the user's identifier, credentials, and current coin balance.
type User struct {
	ID       int32
	Username string
	Password string
	Coins    int
}

// Transaction is one immutable entry of the coin ledger. Amount is signed:
// positive for coins earned, negative for coins spent.
type Transaction struct {
	Amount      int       `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	RelatedItem *int64    `json:"relatedItem,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AwardPolicy maps a reward key to a coin amount and an active flag.
// Policies are maintained by administrators and read by the award engine.
type AwardPolicy struct {
	RewardKey string
	Amount    int
	Active    bool
}

// AwardRecord marks a payout of (user, period, scope) and doubles as the
// idempotency guard: its existence blocks a repeat award.
type AwardRecord struct {
	UserID       int32
	PeriodKey    string
	ScopeKey     string
	Rank         int
	CoinsAwarded int
}

// Sticker is one collectible reward unit of a collection.
// DropWeight is a positive weight used for proportional random selection.
type Sticker struct {
	ID           int32   `json:"id"`
	CollectionID int32   `json:"collectionId"`
	Name         string  `json:"name"`
	Rarity       string  `json:"rarity"`
	DropWeight   float64 `json:"-"`
}

// OwnedSticker is an entry in a user's sticker inventory.
type OwnedSticker struct {
	Sticker  Sticker `json:"sticker"`
	Quantity int     `json:"quantity"`
}

// ScratchCard is a daily (or purchased bonus) chance to draw one sticker.
type ScratchCard struct {
	ID           int64      `json:"id"`
	UserID       int32      `json:"-"`
	CollectionID int32      `json:"collectionId"`
	CardDate     time.Time  `json:"cardDate"`
	Bonus        bool       `json:"bonus"`
	StickerID    *int32     `json:"stickerId,omitempty"`
	ScratchedAt  *time.Time `json:"scratchedAt,omitempty"`
	ExpiresAt    time.Time  `json:"expiresAt"`
}

// ScratchRequest represents the card-scratch request payload.
type ScratchRequest struct {
	CardID int64 `json:"card_id"`
}

// ScratchResult represents the outcome of a successful scratch.
type ScratchResult struct {
	Success     bool    `json:"success"`
	Sticker     Sticker `json:"sticker"`
	IsDuplicate bool    `json:"isDuplicate"`
	Quantity    int     `json:"quantity"`
	IsComplete  bool    `json:"isComplete"`
}

// GameResultRequest represents a submitted time-trial run.
type GameResultRequest struct {
	Duration        int `json:"duration"`
	LevelsCompleted int `json:"levels_completed"`
	Score           int `json:"score"`
}

// LeaderboardEntry is one ranked participant of a monthly leaderboard.
type LeaderboardEntry struct {
	UserID          int32
	LevelsCompleted int
	Score           int
}

// Notification is a user-facing message emitted when coins are
// gained or spent.
type Notification struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InfoResponse represents the response payload for the /api/info endpoint.
// It contains the user's coin balance, sticker inventory, ledger history,
// and recent notifications.
type InfoResponse struct {
	Coins         int            `json:"coins"`
	Stickers      []OwnedSticker `json:"stickers"`
	Transactions  []Transaction  `json:"transactions"`
	Notifications []Notification `json:"notifications"`
}

// DurationSummary reports how many players were paid for one
// game-duration bucket of the monthly reward job.
type DurationSummary struct {
	Duration       int `json:"duration"`
	PlayersAwarded int `json:"playersAwarded"`
}

// RewardsSummary is the monthly reward job response payload.
type RewardsSummary struct {
	RewardMonth  string            `json:"rewardMonth"`
	TotalAwarded int               `json:"totalAwarded"`
	Results      []DurationSummary `json:"results"`
}
