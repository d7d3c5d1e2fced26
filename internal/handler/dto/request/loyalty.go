package request

import "strings"

type EnrollRequest struct {
	GuestRequest
}

type AdjustPointsRequest struct {
	Points int64  `json:"points" binding:"required,ne=0"`
	Reason string `json:"reason" binding:"required,max=200"`
}

func (r AdjustPointsRequest) TrimmedReason() string {
	return strings.TrimSpace(r.Reason)
}

type RedeemPointsRequest struct {
	Points int64 `json:"points" binding:"required,min=1"`
}
