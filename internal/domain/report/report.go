// Package report computes the dashboard figures from the full entity set.
// The computation is pure: it takes bills, funding records and the loop
// classification, and produces exact decimal sums with no side effects.
package report

import (
	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Loop state labels surfaced on the dashboard
const (
	BusinessStateAwaiting  = "awaiting reimbursement"
	BusinessStateBalanced  = "balanced"
	PersonalStateSaving    = "accumulating"
	PersonalStateOverspent = "overspent"
)

// Suggested actions, emitted in loop-check order: personal first, then business
const (
	SuggestionSettlePersonal = "apply personal-income cash to personal bills"
	SuggestionSettleBusiness = "apply reimbursement cash to business bills"
)

// BusinessLoop summarizes the reimbursable side of the ledger
type BusinessLoop struct {
	TotalLent       decimal.Decimal `json:"total_lent"`
	TotalReimbursed decimal.Decimal `json:"total_reimbursed"`
	CurrentDebt     decimal.Decimal `json:"current_debt"`
	State           string          `json:"state"`
}

// PersonalLoop summarizes the personal income and spending side
type PersonalLoop struct {
	GrossIncome      decimal.Decimal `json:"gross_income"`
	PersonalSpending decimal.Decimal `json:"personal_spending"`
	NetSavings       decimal.Decimal `json:"net_savings"`
	State            string          `json:"state"`
}

// LoopSplit partitions a total between the personal and business loops
type LoopSplit struct {
	Personal decimal.Decimal `json:"personal"`
	Business decimal.Decimal `json:"business"`
}

// Summary is the full dashboard aggregation result
type Summary struct {
	Business          BusinessLoop    `json:"business_loop"`
	Personal          PersonalLoop    `json:"personal_loop"`
	OutstandingTotal  decimal.Decimal `json:"outstanding_total"`
	OutstandingByLoop LoopSplit       `json:"outstanding_by_loop"`
	UnallocatedTotal  decimal.Decimal `json:"unallocated_total"`
	UnallocatedByLoop LoopSplit       `json:"unallocated_by_loop"`
	TotalAssets       decimal.Decimal `json:"total_assets"`
	Suggestions       []string        `json:"suggestions"`
}

// Build computes the dashboard summary. An empty entity set yields all-zero
// sums, never an error.
func Build(bills []*bill.Bill, records []*funding.Record, cls shared.Classification) Summary {
	var (
		businessLent     = decimal.Zero
		personalSpending = decimal.Zero
		reimbursed       = decimal.Zero
		grossIncome      = decimal.Zero
		outstandingTotal = decimal.Zero
		unallocatedTotal = decimal.Zero
		outstanding      = LoopSplit{Personal: decimal.Zero, Business: decimal.Zero}
		unallocated      = LoopSplit{Personal: decimal.Zero, Business: decimal.Zero}
	)

	for _, b := range bills {
		if cls.IsBusinessCategory(b.Category) {
			businessLent = businessLent.Add(b.AmountTotal)
		}
		if cls.IsPersonalCategory(b.Category) {
			personalSpending = personalSpending.Add(b.AmountTotal)
		}

		remaining := b.RemainingDebt()
		if !remaining.IsPositive() {
			continue
		}
		outstandingTotal = outstandingTotal.Add(remaining)
		if cls.IsBusinessCategory(b.Category) {
			outstanding.Business = outstanding.Business.Add(remaining)
		}
		if cls.IsPersonalCategory(b.Category) {
			outstanding.Personal = outstanding.Personal.Add(remaining)
		}
	}

	for _, r := range records {
		unallocatedTotal = unallocatedTotal.Add(r.AmountUnused)
		if cls.IsReimbursementSource(r.Source) {
			reimbursed = reimbursed.Add(r.AmountTotal)
			unallocated.Business = unallocated.Business.Add(r.AmountUnused)
		}
		if cls.IsPersonalIncomeSource(r.Source) {
			grossIncome = grossIncome.Add(r.AmountTotal)
			unallocated.Personal = unallocated.Personal.Add(r.AmountUnused)
		}
	}

	businessDebt := businessLent.Sub(reimbursed)
	netSavings := grossIncome.Sub(personalSpending)

	summary := Summary{
		Business: BusinessLoop{
			TotalLent:       businessLent,
			TotalReimbursed: reimbursed,
			CurrentDebt:     businessDebt,
			State:           BusinessStateBalanced,
		},
		Personal: PersonalLoop{
			GrossIncome:      grossIncome,
			PersonalSpending: personalSpending,
			NetSavings:       netSavings,
			State:            PersonalStateOverspent,
		},
		OutstandingTotal:  outstandingTotal,
		OutstandingByLoop: outstanding,
		UnallocatedTotal:  unallocatedTotal,
		UnallocatedByLoop: unallocated,
		TotalAssets:       outstandingTotal.Add(unallocatedTotal),
		Suggestions:       []string{},
	}

	if businessDebt.IsPositive() {
		summary.Business.State = BusinessStateAwaiting
	}
	if netSavings.IsPositive() {
		summary.Personal.State = PersonalStateSaving
	}

	if outstanding.Personal.IsPositive() && unallocated.Personal.IsPositive() {
		summary.Suggestions = append(summary.Suggestions, SuggestionSettlePersonal)
	}
	if outstanding.Business.IsPositive() && unallocated.Business.IsPositive() {
		summary.Suggestions = append(summary.Suggestions, SuggestionSettleBusiness)
	}

	return summary
}
