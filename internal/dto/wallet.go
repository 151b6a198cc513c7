package dto

type WalletBalanceResponseDTO struct {
	Balance float64 `json:"balance" example:"150.5"`
}

type WalletWithdrawRequestDTO struct {
	Amount float64 `json:"amount" example:"100"`
}
