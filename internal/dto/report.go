package dto

type MainReportResponseDTO struct {
	OrdersSum           float64 `json:"orders_sum" example:"54000"`
	PrimeCostSum        float64 `json:"prime_cost_sum" example:"21000"`
	Earnings            float64 `json:"earnings" example:"33000"`
	OrdersAmount        int     `json:"orders_amount" example:"36"`
	PaidOrdersAmount    int     `json:"paid_orders_amount" example:"30"`
	NotPaidOrdersAmount int     `json:"not_paid_orders_amount" example:"6"`
}

type EmployeeReportResponseDTO struct {
	OrdersAmount int      `json:"orders_amount" example:"12"`
	OrdersSum    float64  `json:"orders_sum" example:"18000"`
	TableAmount  int      `json:"table_amount" example:"4"`
	Rating       float64  `json:"rating" example:"4.5"`
	Comments     []string `json:"comments,omitempty"`
}
