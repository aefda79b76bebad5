package stats

type GameStats struct {
	Game        string  `json:"game"`         // Имя игры
	Rounds      int     `json:"rounds"`       // Сыграно раундов
	TotalStaked int     `json:"total_staked"` // Сумма ставок
	TotalPaid   int     `json:"total_paid"`   // Сумма выплат
	RTP         float64 `json:"rtp"`          // Наблюдаемый возврат, %
}

type StatsResponse struct {
	Games []GameStats `json:"games"` // Агрегаты по играм
}
