package bingo

type StartRequest struct {
	Stake int `json:"stake"` // Ставка (положительное целое)
}

type Cell struct {
	Phrase    string `json:"phrase"`     // Фраза клетки, пусто для центра
	Marked    bool   `json:"marked"`     // Отмечена ли
	FreeSpace bool   `json:"free_space"` // Центральная бесплатная клетка
}

type StartResponse struct {
	Card    [5][5]Cell `json:"card"`    // Карточка 5x5
	Stake   int        `json:"stake"`   // Принятая ставка
	Balance int        `json:"balance"` // Баланс после списания
}

type CallResponse struct {
	Phrase    string `json:"phrase"`    // Открытая фраза
	Called    int    `json:"called"`    // Сколько уже открыто
	Remaining int    `json:"remaining"` // Сколько осталось
}

type MarkRequest struct {
	Phrase string `json:"phrase"` // Фраза для отметки
}

type MarkResponse struct {
	Card    [5][5]Cell `json:"card"`    // Карточка после отметки
	Pattern string     `json:"pattern"` // Лучшая достигнутая конфигурация
}

type PracticeRequest struct {
	Marks [5][5]bool `json:"marks"` // Расстановка отметок 5x5
}

type PracticeResponse struct {
	Pattern string `json:"pattern"` // Лучшая конфигурация расстановки
	Points  int    `json:"points"`  // Очки тренировочного режима
}

type ClaimResponse struct {
	Pattern string `json:"pattern"` // Конфигурация на момент закрытия
	Payout  int    `json:"payout"`  // Выплата
	Balance int    `json:"balance"` // Баланс после
}
