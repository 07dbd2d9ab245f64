package report

import (
	"testing"

	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newBill(category shared.Category, total, settled string) *bill.Bill {
	b := &bill.Bill{
		Category:      category,
		AmountTotal:   dec(total),
		AmountSettled: dec(settled),
	}
	b.Status = bill.DeriveStatus(b.AmountTotal, b.AmountSettled)
	return b
}

func newRecord(source shared.Source, total, unused string) *funding.Record {
	return &funding.Record{
		Source:       source,
		AmountTotal:  dec(total),
		AmountUnused: dec(unused),
	}
}

func TestBuild_EmptyLedger(t *testing.T) {
	summary := Build(nil, nil, shared.DefaultClassification())

	assert.True(t, summary.Business.TotalLent.IsZero())
	assert.True(t, summary.Business.CurrentDebt.IsZero())
	assert.True(t, summary.Personal.NetSavings.IsZero())
	assert.True(t, summary.OutstandingTotal.IsZero())
	assert.True(t, summary.UnallocatedTotal.IsZero())
	assert.True(t, summary.TotalAssets.IsZero())
	assert.Equal(t, BusinessStateBalanced, summary.Business.State)
	assert.Equal(t, PersonalStateOverspent, summary.Personal.State)
	assert.Empty(t, summary.Suggestions)
	assert.NotNil(t, summary.Suggestions, "suggestions should be an empty list, not null")
}

func TestBuild_BusinessLoop(t *testing.T) {
	cls := shared.DefaultClassification()

	t.Run("PartialReimbursement", func(t *testing.T) {
		// A 100 advance with 60 reimbursed and fully applied
		bills := []*bill.Bill{newBill(shared.CategoryWork, "100", "60")}
		records := []*funding.Record{newRecord(shared.SourceReimbursement, "60", "0")}

		summary := Build(bills, records, cls)

		assert.True(t, summary.Business.TotalLent.Equal(dec("100")))
		assert.True(t, summary.Business.TotalReimbursed.Equal(dec("60")))
		assert.True(t, summary.Business.CurrentDebt.Equal(dec("40")))
		assert.Equal(t, BusinessStateAwaiting, summary.Business.State)
		assert.True(t, summary.OutstandingTotal.Equal(dec("40")))
		assert.True(t, summary.OutstandingByLoop.Business.Equal(dec("40")))
		assert.True(t, summary.OutstandingByLoop.Personal.IsZero())
	})

	t.Run("LoopBalanced", func(t *testing.T) {
		bills := []*bill.Bill{newBill(shared.CategoryWork, "100", "100")}
		records := []*funding.Record{
			newRecord(shared.SourceReimbursement, "60", "0"),
			newRecord(shared.SourceReimbursement, "40", "0"),
		}

		summary := Build(bills, records, cls)

		assert.True(t, summary.Business.CurrentDebt.IsZero())
		assert.Equal(t, BusinessStateBalanced, summary.Business.State)
		assert.True(t, summary.OutstandingTotal.IsZero())
	})
}

func TestBuild_PersonalLoop(t *testing.T) {
	cls := shared.DefaultClassification()

	t.Run("NetSavings", func(t *testing.T) {
		bills := []*bill.Bill{newBill(shared.CategoryPersonal, "1200", "0")}
		records := []*funding.Record{
			newRecord(shared.SourceSalary, "5000", "5000"),
			newRecord(shared.SourceOther, "300", "300"),
		}

		summary := Build(bills, records, cls)

		assert.True(t, summary.Personal.GrossIncome.Equal(dec("5300")))
		assert.True(t, summary.Personal.PersonalSpending.Equal(dec("1200")))
		assert.True(t, summary.Personal.NetSavings.Equal(dec("4100")))
		assert.Equal(t, PersonalStateSaving, summary.Personal.State)
	})

	t.Run("Overspent", func(t *testing.T) {
		bills := []*bill.Bill{newBill(shared.CategoryPersonal, "900", "0")}
		records := []*funding.Record{newRecord(shared.SourceSalary, "500", "500")}

		summary := Build(bills, records, cls)

		assert.True(t, summary.Personal.NetSavings.Equal(dec("-400")))
		assert.Equal(t, PersonalStateOverspent, summary.Personal.State)
	})
}

func TestBuild_UnallocatedPartition(t *testing.T) {
	records := []*funding.Record{
		newRecord(shared.SourceSalary, "5000", "2000"),
		newRecord(shared.SourceOther, "100", "100"),
		newRecord(shared.SourceReimbursement, "400", "150"),
	}

	summary := Build(nil, records, shared.DefaultClassification())

	assert.True(t, summary.UnallocatedTotal.Equal(dec("2250")))
	assert.True(t, summary.UnallocatedByLoop.Personal.Equal(dec("2100")))
	assert.True(t, summary.UnallocatedByLoop.Business.Equal(dec("150")))
	assert.True(t, summary.TotalAssets.Equal(dec("2250")))
}

func TestBuild_Suggestions(t *testing.T) {
	cls := shared.DefaultClassification()

	t.Run("BothLoopsActionable", func(t *testing.T) {
		bills := []*bill.Bill{
			newBill(shared.CategoryPersonal, "100", "0"),
			newBill(shared.CategoryWork, "200", "0"),
		}
		records := []*funding.Record{
			newRecord(shared.SourceSalary, "500", "500"),
			newRecord(shared.SourceReimbursement, "200", "200"),
		}

		summary := Build(bills, records, cls)

		// Deterministic loop-check order: personal first, then business
		require.Len(t, summary.Suggestions, 2)
		assert.Equal(t, SuggestionSettlePersonal, summary.Suggestions[0])
		assert.Equal(t, SuggestionSettleBusiness, summary.Suggestions[1])
	})

	t.Run("NoCashNoSuggestion", func(t *testing.T) {
		bills := []*bill.Bill{newBill(shared.CategoryWork, "200", "0")}
		records := []*funding.Record{newRecord(shared.SourceReimbursement, "200", "0")}

		summary := Build(bills, records, cls)

		assert.Empty(t, summary.Suggestions)
	})

	t.Run("NoDebtNoSuggestion", func(t *testing.T) {
		records := []*funding.Record{newRecord(shared.SourceSalary, "500", "500")}

		summary := Build(nil, records, cls)

		assert.Empty(t, summary.Suggestions)
	})
}

func TestBuild_CustomClassification(t *testing.T) {
	// Partition sets are configuration: a deployment may count "other"
	// income toward the business loop instead.
	cls := shared.Classification{
		PersonalCategories:    []shared.Category{shared.CategoryPersonal},
		BusinessCategories:    []shared.Category{shared.CategoryWork},
		PersonalIncomeSources: []shared.Source{shared.SourceSalary},
		ReimbursementSources:  []shared.Source{shared.SourceReimbursement, shared.SourceOther},
	}

	records := []*funding.Record{
		newRecord(shared.SourceOther, "100", "100"),
		newRecord(shared.SourceSalary, "200", "200"),
	}

	summary := Build(nil, records, cls)

	assert.True(t, summary.Business.TotalReimbursed.Equal(dec("100")))
	assert.True(t, summary.Personal.GrossIncome.Equal(dec("200")))
	assert.True(t, summary.UnallocatedByLoop.Business.Equal(dec("100")))
	assert.True(t, summary.UnallocatedByLoop.Personal.Equal(dec("200")))
}
