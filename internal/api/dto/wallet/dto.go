package wallet

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма пополнения
}

type WithdrawRequest struct {
	Amount int `json:"amount"` // Сумма вывода
}

type HoldRequest struct {
	Amount int `json:"amount"` // Сумма сделки, залог считается от нее
}

type HoldResponse struct {
	Amount  int `json:"amount"`  // Сумма сделки
	Deposit int `json:"deposit"` // Замороженный залог, 5% с округлением
	Balance int `json:"balance"` // Баланс после заморозки
}

type BalanceResponse struct {
	Balance int `json:"balance"` // Текущий баланс
}

type Round struct {
	ID        int    `json:"id"`         // ID раунда
	Game      string `json:"game"`       // dice / bingo / wheel
	Stake     int    `json:"stake"`      // Ставка
	Payout    int    `json:"payout"`     // Выплата
	Outcome   string `json:"outcome"`    // Исход
	CreatedAt string `json:"created_at"` // Время раунда, RFC3339
}

type HistoryResponse struct {
	Rounds []Round `json:"rounds"` // Последние раунды, новые первыми
}
