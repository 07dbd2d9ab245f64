package handler

import (
	"time"

	"github.com/advance-ledger/internal/api/service"
	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/domain/settlement"
)

// CreateBillRequest represents a request to record an advanced payment.
// Amounts cross the wire as decimal strings and are parsed exactly.
type CreateBillRequest struct {
	Title       string `json:"title" binding:"required"`
	AmountTotal string `json:"amount_total" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=work personal"`
	Remark      string `json:"remark,omitempty"`
}

// UpdateBillRequest represents a request to edit a bill
type UpdateBillRequest struct {
	Title       string `json:"title" binding:"required"`
	AmountTotal string `json:"amount_total" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=work personal"`
}

// CreateFundingRequest represents a request to record received money
type CreateFundingRequest struct {
	AmountTotal  string `json:"amount_total" binding:"required"`
	Source       string `json:"source" binding:"required,oneof=salary reimbursement other"`
	Period       string `json:"period,omitempty"`
	Remark       string `json:"remark,omitempty"`
	ReceivedDate string `json:"received_date,omitempty"` // RFC 3339; defaults to now
}

// ApplySettlementRequest represents a request to apply funds to a bill
type ApplySettlementRequest struct {
	BillID    int64  `json:"bill_id" binding:"required,gt=0"`
	FundingID int64  `json:"funding_id" binding:"required,gt=0"`
	Amount    string `json:"amount" binding:"required"`
}

// ListParams represents pagination parameters for list endpoints
type ListParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListBillsParams adds the unsettled-only filter for settlement workflows
type ListBillsParams struct {
	ListParams
	UnsettledOnly bool `form:"unsettled_only,default=false"`
}

// ListFundingParams adds the available-only filter for choosing a funding source
type ListFundingParams struct {
	ListParams
	AvailableOnly bool `form:"available_only,default=false"`
}

// BillResponse represents a bill in API responses
type BillResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	AmountTotal   string `json:"amount_total"`
	AmountSettled string `json:"amount_settled"`
	RemainingDebt string `json:"remaining_debt"`
	Status        string `json:"status"`
	Remark        string `json:"remark,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// FundingResponse represents a funding record in API responses
type FundingResponse struct {
	ID           int64  `json:"id"`
	AmountTotal  string `json:"amount_total"`
	AmountUnused string `json:"amount_unused"`
	Source       string `json:"source"`
	Period       string `json:"period,omitempty"`
	Remark       string `json:"remark,omitempty"`
	ReceivedDate string `json:"received_date"`
	CreatedAt    string `json:"created_at"`
}

// SettlementResponse represents a settlement record in API responses
type SettlementResponse struct {
	ID        int64  `json:"id"`
	BillID    int64  `json:"bill_id"`
	FundingID int64  `json:"funding_id"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// SettlementResultResponse carries the three entities touched by one settlement
type SettlementResultResponse struct {
	Bill          BillResponse       `json:"bill"`
	FundingRecord FundingResponse    `json:"funding_record"`
	Settlement    SettlementResponse `json:"settlement"`
}

func mapBillToResponse(b *bill.Bill) BillResponse {
	return BillResponse{
		ID:            b.ID,
		Title:         b.Title,
		Category:      string(b.Category),
		AmountTotal:   b.AmountTotal.String(),
		AmountSettled: b.AmountSettled.String(),
		RemainingDebt: b.RemainingDebt().String(),
		Status:        string(b.Status),
		Remark:        b.Remark,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

func mapFundingToResponse(r *funding.Record) FundingResponse {
	return FundingResponse{
		ID:           r.ID,
		AmountTotal:  r.AmountTotal.String(),
		AmountUnused: r.AmountUnused.String(),
		Source:       string(r.Source),
		Period:       r.Period,
		Remark:       r.Remark,
		ReceivedDate: r.ReceivedDate.Format(time.RFC3339),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func mapSettlementToResponse(s *settlement.Settlement) SettlementResponse {
	return SettlementResponse{
		ID:        s.ID,
		BillID:    s.BillID,
		FundingID: s.FundingID,
		Amount:    s.Amount.String(),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func mapSettlementResultToResponse(res *service.SettlementResult) SettlementResultResponse {
	return SettlementResultResponse{
		Bill:          mapBillToResponse(res.Bill),
		FundingRecord: mapFundingToResponse(res.Funding),
		Settlement:    mapSettlementToResponse(res.Settlement),
	}
}
