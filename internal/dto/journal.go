package dto

type JournalRecordRequestDTO struct {
	EmployeeID  int    `json:"employee_id" example:"1"`
	TableNumber string `json:"table_number" example:"table_3"`
	TableStatus string `json:"table_status" example:"occupied"`
}

type JournalEntryResponseDTO struct {
	ID          int    `json:"id" example:"42"`
	TableNumber string `json:"table_number" example:"table_3"`
	TableStatus string `json:"table_status" example:"occupied"`
	EmployeeID  int    `json:"employee_id" example:"1"`
	Time        string `json:"time" example:"2024-11-02T18:30:00+03:00"`
}

type ReassignRequestDTO struct {
	EmployeeID  int    `json:"employee_id" example:"2"`
	TableNumber string `json:"table_number" example:"table_3"`
}
