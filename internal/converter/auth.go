package converter

import (
	dto "campus_market/internal/api/dto/auth"
	"campus_market/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
}

func LoginRequestToUserModel(req *dto.LoginRequest) *model.User {
	return &model.User{
		Email:    req.Email,
		Password: req.Password,
	}
}
