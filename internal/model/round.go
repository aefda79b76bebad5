package model

import "time"

// GameRound - запись сыгранного раунда для истории и сверки
type GameRound struct {
	ID        int
	UserID    int
	Game      string
	Stake     int
	Payout    int
	Outcome   string
	CreatedAt time.Time
}
