package response

import (
	"hotel-kiosk/internal/usecase/commands"
	"hotel-kiosk/internal/usecase/queries"
)

type LoyaltyHistoryResponse struct {
	LoyaltyNumber string                           `json:"loyalty_number"`
	Transactions  []queries.LoyaltyTransactionView `json:"transactions"`
}

func FromLoyaltyHistory(number string, items []queries.LoyaltyTransactionView) *LoyaltyHistoryResponse {
	if items == nil {
		items = []queries.LoyaltyTransactionView{}
	}
	return &LoyaltyHistoryResponse{LoyaltyNumber: number, Transactions: items}
}

type RedemptionResponse struct {
	PointsRedeemed int64                       `json:"points_redeemed"`
	Account        *queries.LoyaltyAccountView `json:"account"`
}

func FromRedeemResult(r *commands.RedeemResult) *RedemptionResponse {
	return &RedemptionResponse{PointsRedeemed: r.PointsRedeemed, Account: r.Account}
}
