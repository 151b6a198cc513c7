package dto

type RegisterRequestDTO struct {
	Name     string `json:"name" example:"Anna"`
	Position string `json:"position" example:"waiter"`
}

type RegisterResponseDTO struct {
	EmployeeID int    `json:"employee_id" example:"1"`
	Code       string `json:"code" example:"042"`
}

type LoginRequestDTO struct {
	EmployeeID int    `json:"employee_id" example:"1"`
	Code       string `json:"code" example:"042"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}

type EmployeeResponseDTO struct {
	ID       int    `json:"id" example:"1"`
	Name     string `json:"name" example:"Anna"`
	Position string `json:"position" example:"waiter"`
}
