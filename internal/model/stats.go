package model

// GameStats - агрегаты по игре с момента старта процесса
type GameStats struct {
	Game        string
	Rounds      int
	TotalStaked int
	TotalPaid   int
	RTP         float64
}
