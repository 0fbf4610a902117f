package service

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/uid"
)

type TaxHistoryRepository interface {
	FindActiveByID(id int64) (*entity.TaxHistory, error)
	FindByID(id int64) (*entity.TaxHistory, error)
	Save(history *entity.TaxHistory) error
	ReplaceMonths(historyID int64, entries []*entity.MonthlyTax) error
	ReplaceYears(historyID int64, entries []*entity.YearlyTax) error
	DeleteMonth(entry *entity.MonthlyTax) error
}

// TaxService owns the per-company ledger of monthly and yearly tax
// figures. Monthly entries are unique by their (year, month) period key
// and both sequences stay sorted ascending after every mutation.
type TaxService struct {
	TaxRepo     TaxHistoryRepository
	CompanyRepo CompanyRepository
	Validate    *validator.Validate
}

func NewTaxService(taxRepo TaxHistoryRepository, companyRepo CompanyRepository, validate *validator.Validate) *TaxService {
	return &TaxService{
		TaxRepo:     taxRepo,
		CompanyRepo: companyRepo,
		Validate:    validate,
	}
}

func (t *TaxService) GetTaxHistory(id int64) (*entity.TaxHistory, apierror.ErrorResponse) {
	history, err := t.TaxRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch tax history %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if history == nil {
		return nil, apierror.TaxHistoryNotFoundError
	}
	return history, nil
}

// CreateTaxHistory stores a fresh ledger for a company and links it.
func (t *TaxService) CreateTaxHistory(req *contract.CreateTaxHistoryRequest) (*entity.TaxHistory, apierror.ErrorResponse) {
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, apierr := t.fetchActiveCompany(req.CompanyID)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	history := &entity.TaxHistory{
		ID:        uid.Generate(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	history.TaxPerMonths = sortedMonths(toMonthlyEntries(history.ID, req.TaxPerMonths))
	history.TaxPerYears = sortedYears(toYearlyEntries(history.ID, req.TaxPerYears))

	if apierr := t.persistHistory(history); apierr != nil {
		return nil, apierr
	}

	company.TaxHistoryID = &history.ID
	company.UpdatedAt = now
	if err := t.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to link tax history to company %d: %v", company.ID, err)
		return nil, apierror.NewInternal(err)
	}
	return history, nil
}

// UpdateTaxHistory replaces whichever sequences the request carries.
func (t *TaxService) UpdateTaxHistory(id int64, req *contract.UpdateTaxHistoryRequest) (*entity.TaxHistory, apierror.ErrorResponse) {
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	history, err := t.TaxRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch tax history %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if history == nil {
		return nil, apierror.InvalidInputError
	}

	if req.TaxPerMonths != nil {
		history.TaxPerMonths = sortedMonths(toMonthlyEntries(history.ID, req.TaxPerMonths))
		if err := t.TaxRepo.ReplaceMonths(history.ID, history.TaxPerMonths); err != nil {
			log.Errorf("failed to replace monthly entries of %d: %v", history.ID, err)
			return nil, apierror.NewInternal(err)
		}
	}

	if req.TaxPerYears != nil {
		history.TaxPerYears = sortedYears(toYearlyEntries(history.ID, req.TaxPerYears))
		if err := t.TaxRepo.ReplaceYears(history.ID, history.TaxPerYears); err != nil {
			log.Errorf("failed to replace yearly entries of %d: %v", history.ID, err)
			return nil, apierror.NewInternal(err)
		}
	}

	history.UpdatedAt = utils.NowUTC()
	if err := t.TaxRepo.Save(history); err != nil {
		log.Errorf("failed to update tax history %d: %v", history.ID, err)
		return nil, apierror.NewInternal(err)
	}
	return history, nil
}

// UpsertMonth records one month's figures for a company. A ledger is
// created and linked on first use. Any existing entry for the same
// (year, month) is replaced; afterwards exactly one entry exists for
// that period and the sequence is fully ordered.
func (t *TaxService) UpsertMonth(req *contract.UpsertMonthRequest) (*entity.TaxHistory, apierror.ErrorResponse) {
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, apierr := t.fetchActiveCompany(req.CompanyID)
	if apierr != nil {
		return nil, apierr
	}

	history, apierr := t.fetchOrCreateHistory(company)
	if apierr != nil {
		return nil, apierr
	}

	entry := toMonthlyEntry(history.ID, req.Entry)
	history.TaxPerMonths = upsertMonthEntry(history.TaxPerMonths, entry)

	if err := t.TaxRepo.ReplaceMonths(history.ID, history.TaxPerMonths); err != nil {
		log.Errorf("failed to upsert month %d/%d for company %d: %v",
			req.Entry.Year, req.Entry.Month, company.ID, err)
		return nil, apierror.NewInternal(err)
	}

	history.UpdatedAt = utils.NowUTC()
	if err := t.TaxRepo.Save(history); err != nil {
		log.Errorf("failed to touch tax history %d: %v", history.ID, err)
		return nil, apierror.NewInternal(err)
	}
	return history, nil
}

// ReplaceYears swaps a company's entire yearly sequence for the
// supplied batch, sorted ascending by year.
func (t *TaxService) ReplaceYears(req *contract.ReplaceYearsRequest) (*entity.TaxHistory, apierror.ErrorResponse) {
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, apierr := t.fetchActiveCompany(req.CompanyID)
	if apierr != nil {
		return nil, apierr
	}

	history, apierr := t.fetchOrCreateHistory(company)
	if apierr != nil {
		return nil, apierr
	}

	history.TaxPerYears = sortedYears(toYearlyEntries(history.ID, req.Entries))
	if err := t.TaxRepo.ReplaceYears(history.ID, history.TaxPerYears); err != nil {
		log.Errorf("failed to replace yearly entries for company %d: %v", company.ID, err)
		return nil, apierror.NewInternal(err)
	}

	history.UpdatedAt = utils.NowUTC()
	if err := t.TaxRepo.Save(history); err != nil {
		log.Errorf("failed to touch tax history %d: %v", history.ID, err)
		return nil, apierror.NewInternal(err)
	}
	return history, nil
}

// RemoveMonth hard-deletes the entry matching the period key. Removing
// a missing period is a no-op; removal keeps the remaining sequence
// ordered so no resort happens.
func (t *TaxService) RemoveMonth(historyID int64, year, month int) (*entity.TaxHistory, apierror.ErrorResponse) {
	history, err := t.TaxRepo.FindActiveByID(historyID)
	if err != nil {
		log.Errorf("failed to fetch tax history %d: %v", historyID, err)
		return nil, apierror.NewInternal(err)
	}

	if history == nil {
		return nil, apierror.TaxHistoryNotFoundError
	}

	remaining, removed := removeMonthEntry(history.TaxPerMonths, year, month)
	if removed == nil {
		return history, nil
	}

	if err := t.TaxRepo.DeleteMonth(removed); err != nil {
		log.Errorf("failed to remove month %d/%d from history %d: %v", year, month, historyID, err)
		return nil, apierror.NewInternal(err)
	}

	history.TaxPerMonths = remaining
	history.UpdatedAt = utils.NowUTC()
	if err := t.TaxRepo.Save(history); err != nil {
		log.Errorf("failed to touch tax history %d: %v", historyID, err)
		return nil, apierror.NewInternal(err)
	}
	return history, nil
}

func (t *TaxService) fetchActiveCompany(companyID int64) (*entity.Company, apierror.ErrorResponse) {
	company, err := t.CompanyRepo.FindActiveByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", companyID, err)
		return nil, apierror.NewInternal(err)
	}

	if company == nil {
		return nil, apierror.CompanyNotFoundError
	}
	return company, nil
}

func (t *TaxService) fetchOrCreateHistory(company *entity.Company) (*entity.TaxHistory, apierror.ErrorResponse) {
	if company.TaxHistoryID != nil {
		history, err := t.TaxRepo.FindActiveByID(*company.TaxHistoryID)
		if err != nil {
			log.Errorf("failed to fetch tax history %d: %v", *company.TaxHistoryID, err)
			return nil, apierror.NewInternal(err)
		}
		if history != nil {
			return history, nil
		}
	}

	now := utils.NowUTC()
	history := &entity.TaxHistory{
		ID:        uid.Generate(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if apierr := t.persistHistory(history); apierr != nil {
		return nil, apierr
	}

	company.TaxHistoryID = &history.ID
	company.UpdatedAt = now
	if err := t.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to link tax history to company %d: %v", company.ID, err)
		return nil, apierror.NewInternal(err)
	}
	return history, nil
}

func (t *TaxService) persistHistory(history *entity.TaxHistory) apierror.ErrorResponse {
	if err := t.TaxRepo.Save(history); err != nil {
		log.Errorf("failed to save tax history: %v", err)
		return apierror.NewInternal(err)
	}

	if len(history.TaxPerMonths) > 0 {
		if err := t.TaxRepo.ReplaceMonths(history.ID, history.TaxPerMonths); err != nil {
			log.Errorf("failed to save monthly entries: %v", err)
			return apierror.NewInternal(err)
		}
	}

	if len(history.TaxPerYears) > 0 {
		if err := t.TaxRepo.ReplaceYears(history.ID, history.TaxPerYears); err != nil {
			log.Errorf("failed to save yearly entries: %v", err)
			return apierror.NewInternal(err)
		}
	}
	return nil
}

// upsertMonthEntry drops any entry sharing the new entry's period key,
// appends the new one and restores ascending (year, month) order.
// The sort is stable: entries for distinct periods keep their relative
// input order.
func upsertMonthEntry(entries []*entity.MonthlyTax, entry *entity.MonthlyTax) []*entity.MonthlyTax {
	kept := entries[:0]
	for _, e := range entries {
		if !e.SamePeriod(entry.Year, entry.Month) {
			kept = append(kept, e)
		}
	}
	return sortedMonths(append(kept, entry))
}

// removeMonthEntry removes the first entry matching the period key,
// returning the remaining sequence and the removed entry (nil when the
// period was absent). Order is preserved, so no resort is needed.
func removeMonthEntry(entries []*entity.MonthlyTax, year, month int) ([]*entity.MonthlyTax, *entity.MonthlyTax) {
	for i, e := range entries {
		if e.SamePeriod(year, month) {
			return append(entries[:i], entries[i+1:]...), e
		}
	}
	return entries, nil
}

func sortedMonths(entries []*entity.MonthlyTax) []*entity.MonthlyTax {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Year != entries[j].Year {
			return entries[i].Year < entries[j].Year
		}
		return entries[i].Month < entries[j].Month
	})
	return entries
}

func sortedYears(entries []*entity.YearlyTax) []*entity.YearlyTax {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Year < entries[j].Year
	})
	return entries
}

func toMonthlyEntry(historyID int64, p contract.MonthlyTaxPayload) *entity.MonthlyTax {
	return &entity.MonthlyTax{
		ID:           uid.Generate(),
		TaxHistoryID: historyID,
		Year:         p.Year,
		Month:        p.Month,
		Revenue:      p.Revenue,
		Spending:     p.Spending,
		PaidAmount:   p.PaidAmount,
		Notes:        p.Notes,
	}
}

func toMonthlyEntries(historyID int64, payloads []contract.MonthlyTaxPayload) []*entity.MonthlyTax {
	entries := make([]*entity.MonthlyTax, len(payloads))
	for i, p := range payloads {
		entries[i] = toMonthlyEntry(historyID, p)
	}
	return entries
}

func toYearlyEntries(historyID int64, payloads []contract.YearlyTaxPayload) []*entity.YearlyTax {
	entries := make([]*entity.YearlyTax, len(payloads))
	for i, p := range payloads {
		entries[i] = &entity.YearlyTax{
			ID:           uid.Generate(),
			TaxHistoryID: historyID,
			Year:         p.Year,
			Revenue:      p.Revenue,
			Spending:     p.Spending,
			PaidAmount:   p.PaidAmount,
			Notes:        p.Notes,
		}
	}
	return entries
}
