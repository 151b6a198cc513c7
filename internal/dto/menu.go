package dto

type DishRequestDTO struct {
	Name      string  `json:"name" example:"Borscht"`
	Cost      float64 `json:"cost" example:"450"`
	PrimeCost float64 `json:"prime_cost" example:"180"`
}

type DishResponseDTO struct {
	ID        int     `json:"id" example:"7"`
	Name      string  `json:"name" example:"Borscht"`
	Cost      float64 `json:"cost" example:"450"`
	PrimeCost float64 `json:"prime_cost" example:"180"`
}

type DishCostRequestDTO struct {
	Cost float64 `json:"cost" example:"500"`
}
