package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

func newCompanyFixture(t *testing.T) (*CompanyService, *fakeCompanyRepo) {
	t.Helper()

	repo := newFakeCompanyRepo()
	return NewCompanyService(repo, newTestValidator()), repo
}

func TestCreateCompany(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	company, apierr := svc.CreateCompany(&contract.CreateCompanyRequest{
		Name:        "Acme",
		NameInKhmer: "Acme KH",
		Description: "imports",
	})
	require.Nil(t, apierr)

	assert.NotZero(t, company.ID)
	assert.Equal(t, "Acme", company.Name)
	assert.False(t, company.Deleted)
}

func TestCreateCompanyTrimsInput(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	company, apierr := svc.CreateCompany(&contract.CreateCompanyRequest{
		Name:        "  Acme  ",
		NameInKhmer: "Acme KH",
	})
	require.Nil(t, apierr)
	assert.Equal(t, "Acme", company.Name)
}

func TestCreateCompanyNameConflict(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	_, apierr := svc.CreateCompany(&contract.CreateCompanyRequest{Name: "Acme", NameInKhmer: "KH"})
	require.Nil(t, apierr)

	_, apierr = svc.CreateCompany(&contract.CreateCompanyRequest{Name: "Acme", NameInKhmer: "KH2"})
	assert.Equal(t, apierror.NameInUseError, apierr)
}

// A tombstoned company frees its name for reuse.
func TestCreateCompanyNameReusableAfterDelete(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	company, apierr := svc.CreateCompany(&contract.CreateCompanyRequest{Name: "Acme", NameInKhmer: "KH"})
	require.Nil(t, apierr)
	require.Nil(t, svc.DeleteCompany(company.ID))

	_, apierr = svc.CreateCompany(&contract.CreateCompanyRequest{Name: "Acme", NameInKhmer: "KH"})
	assert.Nil(t, apierr)
}

func TestDeleteCompanyHidesFromReads(t *testing.T) {
	svc, repo := newCompanyFixture(t)

	company, apierr := svc.CreateCompany(&contract.CreateCompanyRequest{Name: "Acme", NameInKhmer: "KH"})
	require.Nil(t, apierr)

	require.Nil(t, svc.DeleteCompany(company.ID))

	_, apierr = svc.GetCompany(company.ID)
	assert.Equal(t, apierror.CompanyNotFoundError, apierr)

	companies, apierr := svc.GetCompanies()
	require.Nil(t, apierr)
	assert.Empty(t, companies)

	// Still present as a row.
	raw, err := repo.FindByID(company.ID)
	require.NoError(t, err)
	assert.True(t, raw.Deleted)
}

func TestDeleteCompanyTwice(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	company, apierr := svc.CreateCompany(&contract.CreateCompanyRequest{Name: "Acme", NameInKhmer: "KH"})
	require.Nil(t, apierr)

	require.Nil(t, svc.DeleteCompany(company.ID))
	assert.Equal(t, apierror.CompanyNotFoundError, svc.DeleteCompany(company.ID))
}

func TestUpdateCompanyPatchesPresentFields(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	company, apierr := svc.CreateCompany(&contract.CreateCompanyRequest{
		Name:        "Acme",
		NameInKhmer: "KH",
		Description: "old",
	})
	require.Nil(t, apierr)

	newDesc := "new description"
	updated, apierr := svc.UpdateCompany(company.ID, &contract.UpdateCompanyRequest{Description: &newDesc})
	require.Nil(t, apierr)

	assert.Equal(t, "new description", updated.Description)
	assert.Equal(t, "Acme", updated.Name)
}

func TestUpdateCompanyUnknownID(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	name := "whatever"
	_, apierr := svc.UpdateCompany(404, &contract.UpdateCompanyRequest{Name: &name})
	assert.Equal(t, apierror.CompanyNotFoundError, apierr)
}
