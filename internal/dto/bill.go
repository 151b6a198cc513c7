package dto

type BillCreateRequestDTO struct {
	TableNumber string `json:"table_number" example:"table_3"`
	GuestNumber int16  `json:"guest_number" example:"2"`
	Birthday    bool   `json:"birthday" example:"false"`
}

type BillCreateResponseDTO struct {
	BillID      int `json:"bill_id" example:"9"`
	BonusPoints int `json:"bonus_points" example:"40"`
}

type BillResponseDTO struct {
	ID          int     `json:"id" example:"9"`
	Sum         float64 `json:"sum" example:"12000"`
	GuestNumber int16   `json:"guest_number" example:"2"`
	Status      string  `json:"status" example:"open"`
	Time        string  `json:"time" example:"2024-11-02T20:10:00+03:00"`
	BonusPoints int     `json:"bonus_points" example:"40"`
}

type BillPayResponseDTO struct {
	BillID int  `json:"bill_id" example:"9"`
	Paid   bool `json:"paid" example:"true"`
}
