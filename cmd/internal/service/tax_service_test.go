package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

func newTaxFixture(t *testing.T) (*TaxService, *entity.Company, *fakeTaxRepo) {
	t.Helper()

	company := &entity.Company{ID: 10, Name: "Acme", NameInKhmer: "Acme KH"}
	taxRepo := newFakeTaxRepo()
	companyRepo := newFakeCompanyRepo(company)

	return NewTaxService(taxRepo, companyRepo, newTestValidator()), company, taxRepo
}

func monthPayload(year, month int, revenue int64) contract.MonthlyTaxPayload {
	return contract.MonthlyTaxPayload{
		Year:    year,
		Month:   month,
		Revenue: decimal.NewFromInt(revenue),
	}
}

func periods(entries []*entity.MonthlyTax) [][2]int {
	out := make([][2]int, len(entries))
	for i, e := range entries {
		out[i] = [2]int{e.Year, e.Month}
	}
	return out
}

func TestUpsertMonthCreatesLedgerOnFirstUse(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	require.Nil(t, company.TaxHistoryID)

	history, apierr := svc.UpsertMonth(&contract.UpsertMonthRequest{
		CompanyID: company.ID,
		Entry:     monthPayload(2024, 5, 1000),
	})
	require.Nil(t, apierr)

	require.NotNil(t, company.TaxHistoryID)
	assert.Equal(t, history.ID, *company.TaxHistoryID)
	require.Len(t, history.TaxPerMonths, 1)
	assert.Equal(t, 2024, history.TaxPerMonths[0].Year)
	assert.Equal(t, 5, history.TaxPerMonths[0].Month)
}

func TestUpsertMonthReplacesSamePeriod(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	_, apierr := svc.UpsertMonth(&contract.UpsertMonthRequest{
		CompanyID: company.ID,
		Entry:     monthPayload(2024, 5, 1000),
	})
	require.Nil(t, apierr)

	history, apierr := svc.UpsertMonth(&contract.UpsertMonthRequest{
		CompanyID: company.ID,
		Entry:     monthPayload(2024, 5, 2500),
	})
	require.Nil(t, apierr)

	require.Len(t, history.TaxPerMonths, 1)
	assert.True(t, history.TaxPerMonths[0].Revenue.Equal(decimal.NewFromInt(2500)))
}

func TestUpsertMonthKeepsSequenceOrdered(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	// Months arrive out of order across two years.
	inputs := []contract.MonthlyTaxPayload{
		monthPayload(2024, 3, 1),
		monthPayload(2023, 12, 2),
		monthPayload(2024, 1, 3),
		monthPayload(2023, 6, 4),
	}

	var history *entity.TaxHistory
	for _, in := range inputs {
		var apierr apierror.ErrorResponse
		history, apierr = svc.UpsertMonth(&contract.UpsertMonthRequest{
			CompanyID: company.ID,
			Entry:     in,
		})
		require.Nil(t, apierr)
	}

	assert.Equal(t, [][2]int{{2023, 6}, {2023, 12}, {2024, 1}, {2024, 3}}, periods(history.TaxPerMonths))
}

// A report for month 3 followed by one for month 1 of the same year
// must order month 1 first while both remain present.
func TestUpsertMonthLaterEarlierMonthSortsFirst(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	_, apierr := svc.UpsertMonth(&contract.UpsertMonthRequest{
		CompanyID: company.ID,
		Entry:     monthPayload(2024, 3, 300),
	})
	require.Nil(t, apierr)

	history, apierr := svc.UpsertMonth(&contract.UpsertMonthRequest{
		CompanyID: company.ID,
		Entry:     monthPayload(2024, 1, 100),
	})
	require.Nil(t, apierr)

	assert.Equal(t, [][2]int{{2024, 1}, {2024, 3}}, periods(history.TaxPerMonths))
}

func TestUpsertMonthIsIdempotent(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	for i := 0; i < 3; i++ {
		history, apierr := svc.UpsertMonth(&contract.UpsertMonthRequest{
			CompanyID: company.ID,
			Entry:     monthPayload(2024, 7, 900),
		})
		require.Nil(t, apierr)
		require.Len(t, history.TaxPerMonths, 1)
	}
}

func TestUpsertMonthUnknownCompany(t *testing.T) {
	svc, _, _ := newTaxFixture(t)

	_, apierr := svc.UpsertMonth(&contract.UpsertMonthRequest{
		CompanyID: 999,
		Entry:     monthPayload(2024, 1, 1),
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}

func TestUpsertMonthRejectsBadPeriod(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	_, apierr := svc.UpsertMonth(&contract.UpsertMonthRequest{
		CompanyID: company.ID,
		Entry:     monthPayload(2024, 13, 1),
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 422, apierr.Code())
}

func TestRemoveMonthDeletesMatch(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	for _, in := range []contract.MonthlyTaxPayload{
		monthPayload(2024, 1, 1),
		monthPayload(2024, 2, 2),
		monthPayload(2024, 3, 3),
	} {
		_, apierr := svc.UpsertMonth(&contract.UpsertMonthRequest{CompanyID: company.ID, Entry: in})
		require.Nil(t, apierr)
	}

	history, apierr := svc.RemoveMonth(*company.TaxHistoryID, 2024, 2)
	require.Nil(t, apierr)

	assert.Equal(t, [][2]int{{2024, 1}, {2024, 3}}, periods(history.TaxPerMonths))
}

func TestRemoveMonthAbsentPeriodIsNoop(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	_, apierr := svc.UpsertMonth(&contract.UpsertMonthRequest{
		CompanyID: company.ID,
		Entry:     monthPayload(2024, 1, 1),
	})
	require.Nil(t, apierr)

	history, apierr := svc.RemoveMonth(*company.TaxHistoryID, 2030, 12)
	require.Nil(t, apierr)
	assert.Len(t, history.TaxPerMonths, 1)
}

func TestRemoveMonthUnknownLedger(t *testing.T) {
	svc, _, _ := newTaxFixture(t)

	_, apierr := svc.RemoveMonth(404, 2024, 1)
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}

func TestReplaceYearsSwapsWholeSequence(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	_, apierr := svc.ReplaceYears(&contract.ReplaceYearsRequest{
		CompanyID: company.ID,
		Entries: []contract.YearlyTaxPayload{
			{Year: 2022, Revenue: decimal.NewFromInt(10)},
			{Year: 2021, Revenue: decimal.NewFromInt(20)},
		},
	})
	require.Nil(t, apierr)

	history, apierr := svc.ReplaceYears(&contract.ReplaceYearsRequest{
		CompanyID: company.ID,
		Entries: []contract.YearlyTaxPayload{
			{Year: 2024, Revenue: decimal.NewFromInt(30)},
		},
	})
	require.Nil(t, apierr)

	require.Len(t, history.TaxPerYears, 1)
	assert.Equal(t, 2024, history.TaxPerYears[0].Year)
}

func TestReplaceYearsSortsAscending(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	history, apierr := svc.ReplaceYears(&contract.ReplaceYearsRequest{
		CompanyID: company.ID,
		Entries: []contract.YearlyTaxPayload{
			{Year: 2024},
			{Year: 2020},
			{Year: 2022},
		},
	})
	require.Nil(t, apierr)

	years := make([]int, len(history.TaxPerYears))
	for i, y := range history.TaxPerYears {
		years[i] = y.Year
	}
	assert.Equal(t, []int{2020, 2022, 2024}, years)
}

func TestCreateTaxHistoryLinksCompany(t *testing.T) {
	svc, company, _ := newTaxFixture(t)

	history, apierr := svc.CreateTaxHistory(&contract.CreateTaxHistoryRequest{
		CompanyID: company.ID,
		TaxPerMonths: []contract.MonthlyTaxPayload{
			monthPayload(2024, 2, 2),
			monthPayload(2024, 1, 1),
		},
		TaxPerYears: []contract.YearlyTaxPayload{{Year: 2023}},
	})
	require.Nil(t, apierr)

	require.NotNil(t, company.TaxHistoryID)
	assert.Equal(t, history.ID, *company.TaxHistoryID)
	assert.Equal(t, [][2]int{{2024, 1}, {2024, 2}}, periods(history.TaxPerMonths))
}

func TestUpdateTaxHistoryReplacesOnlyPresentSequences(t *testing.T) {
	svc, company, taxRepo := newTaxFixture(t)

	history, apierr := svc.CreateTaxHistory(&contract.CreateTaxHistoryRequest{
		CompanyID:    company.ID,
		TaxPerMonths: []contract.MonthlyTaxPayload{monthPayload(2024, 1, 1)},
		TaxPerYears:  []contract.YearlyTaxPayload{{Year: 2023}},
	})
	require.Nil(t, apierr)

	updated, apierr := svc.UpdateTaxHistory(history.ID, &contract.UpdateTaxHistoryRequest{
		TaxPerMonths: []contract.MonthlyTaxPayload{
			monthPayload(2024, 6, 6),
			monthPayload(2024, 5, 5),
		},
	})
	require.Nil(t, apierr)

	assert.Equal(t, [][2]int{{2024, 5}, {2024, 6}}, periods(updated.TaxPerMonths))
	// Yearly sequence untouched.
	require.Len(t, updated.TaxPerYears, 1)
	assert.Equal(t, 2023, updated.TaxPerYears[0].Year)

	stored, _ := taxRepo.FindByID(history.ID)
	assert.Len(t, stored.TaxPerMonths, 2)
}

func TestGetTaxHistoryNotFound(t *testing.T) {
	svc, _, _ := newTaxFixture(t)

	_, apierr := svc.GetTaxHistory(123)
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}
