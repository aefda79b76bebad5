package auth

type RegisterRequest struct {
	Name     string `json:"name"`     // Имя пользователя
	Email    string `json:"email"`    // Почта кампуса
	Password string `json:"password"` // Пароль
}

type LoginRequest struct {
	Email    string `json:"email"`    // Почта кампуса
	Password string `json:"password"` // Пароль
}
