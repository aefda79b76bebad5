package dice

type PlayRequest struct {
	Stake int `json:"stake"` // Ставка (положительное целое)
}

type PlayResponse struct {
	PlayerHand     [5]int `json:"player_hand"`     // Кубики игрока
	AIHand         [5]int `json:"ai_hand"`         // Кубики бота
	PlayerRank     string `json:"player_rank"`     // Комбинация игрока
	AIRank         string `json:"ai_rank"`         // Комбинация бота
	PlayerTiebreak []int  `json:"player_tiebreak"` // Тайбрейк игрока
	AITiebreak     []int  `json:"ai_tiebreak"`     // Тайбрейк бота
	Outcome        string `json:"outcome"`         // player / ai / tie
	Payout         int    `json:"payout"`          // Выплата
	Balance        int    `json:"balance"`         // Баланс после
}

type PracticeRequest struct {
	Dice []int `json:"dice"` // Ровно 5 значений в [1,6]
}

type PracticeResponse struct {
	Hand     [5]int `json:"hand"`     // Рука
	Rank     string `json:"rank"`     // Комбинация
	Tiebreak []int  `json:"tiebreak"` // Тайбрейк
	Score    int    `json:"score"`    // Очки тренировочного режима
}
