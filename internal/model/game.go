package model

import (
	"time"

	"campus_market/internal/game/bingo"
)

// Имена игр для записи раундов и статистики
const (
	GameDice  = "dice"
	GameBingo = "bingo"
	GameWheel = "wheel"
)

// LedgerEscrow - тип записи леджера для залога под покупку
const LedgerEscrow = "escrow"

// EscrowHold - результат заморозки залога
type EscrowHold struct {
	Amount  int
	Deposit int
	Balance int
}

type DicePlay struct {
	Stake int
}

type DicePlayResult struct {
	PlayerHand     [5]int
	AIHand         [5]int
	PlayerRank     string
	AIRank         string
	PlayerTiebreak []int
	AITiebreak     []int
	Outcome        string
	Payout         int
	Balance        int
}

type DicePracticeResult struct {
	Hand     [5]int
	Rank     string
	Tiebreak []int
	Score    int
}

type BingoStart struct {
	Stake int
}

// BingoSession - активный раунд бинго пользователя.
// Живет в памяти до выплаты или закрытия
type BingoSession struct {
	UserID    int
	Stake     int
	Card      bingo.Card
	CallSeq   []string
	Called    int
	StartedAt time.Time
}

type BingoStartResult struct {
	Card    bingo.Card
	Stake   int
	Balance int
}

type BingoCallResult struct {
	Phrase    string
	Called    int
	Remaining int
}

type BingoMarkResult struct {
	Card    bingo.Card
	Pattern string
}

type BingoClaimResult struct {
	Pattern string
	Payout  int
	Balance int
}

type BingoPracticeResult struct {
	Pattern string
	Points  int
}

type WheelSpin struct {
	Stake int
}

type WheelSpinResult struct {
	Index      int
	Multiplier int
	Win        bool
	Payout     int
	Balance    int
}
