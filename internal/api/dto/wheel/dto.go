package wheel

type SpinRequest struct {
	Stake int `json:"stake"` // Ставка (положительное целое)
}

type SpinResponse struct {
	Index      int  `json:"index"`      // Индекс выпавшего сегмента
	Multiplier int  `json:"multiplier"` // Множитель сегмента
	Win        bool `json:"win"`        // x1 выигрышем не считается
	Payout     int  `json:"payout"`     // Выплата
	Balance    int  `json:"balance"`    // Баланс после
}

type Segment struct {
	Index      int `json:"index"`      // Позиция на круге
	Multiplier int `json:"multiplier"` // Множитель
}

type SegmentsResponse struct {
	Segments []Segment `json:"segments"` // Раскладка колеса для отрисовки
}
