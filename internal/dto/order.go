package dto

type OrderCreateRequestDTO struct {
	TableNumber string `json:"table_number" example:"table_3"`
	DishID      int    `json:"dish_id" example:"7"`
	GuestNumber int16  `json:"guest_number" example:"2"`
}

type OrderResponseDTO struct {
	ID             int    `json:"id" example:"15"`
	JournalEntryID int    `json:"journal_entry_id" example:"42"`
	DishID         int    `json:"dish_id" example:"7"`
	GuestNumber    int16  `json:"guest_number" example:"2"`
	Status         string `json:"status" example:"accepted"`
	Time           string `json:"time" example:"2024-11-02T18:35:00+03:00"`
}

type OrderStatusRequestDTO struct {
	Status string `json:"status" example:"cooked"`
}

type OrderModifyRequestDTO struct {
	GuestNumber int16 `json:"guest_number" example:"3"`
}
