package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

func newDocFixture(t *testing.T) (*DocService, *entity.Company, *fakeDocRepo) {
	t.Helper()

	company := &entity.Company{ID: 40, Name: "Acme", NameInKhmer: "Acme KH"}
	docRepo := newFakeDocRepo()
	companyRepo := newFakeCompanyRepo(company)

	svc := NewDocService(docRepo, companyRepo, &fakeStorage{}, newTestValidator())
	return svc, company, docRepo
}

func TestSaveDocCreatesAndLinks(t *testing.T) {
	svc, company, _ := newDocFixture(t)

	patent := "https://bucket.example.com/docs/patent.pdf"
	doc, apierr := svc.SaveDoc(&contract.SaveDocRequest{
		CompanyID: company.ID,
		Patent:    &patent,
	})
	require.Nil(t, apierr)

	require.NotNil(t, company.DocID)
	assert.Equal(t, doc.ID, *company.DocID)
	assert.Equal(t, patent, doc.Patent)
}

func TestSaveDocPatchesExisting(t *testing.T) {
	svc, company, _ := newDocFixture(t)

	patent := "https://bucket.example.com/docs/patent.pdf"
	doc, apierr := svc.SaveDoc(&contract.SaveDocRequest{
		CompanyID: company.ID,
		Patent:    &patent,
	})
	require.Nil(t, apierr)

	gdt := "https://bucket.example.com/docs/gdt.pdf"
	patched, apierr := svc.SaveDoc(&contract.SaveDocRequest{
		DocID:     &doc.ID,
		CompanyID: company.ID,
		GdtCard:   &gdt,
	})
	require.Nil(t, apierr)

	assert.Equal(t, doc.ID, patched.ID)
	assert.Equal(t, gdt, patched.GdtCard)
	// Fields absent from the patch stay put.
	assert.Equal(t, patent, patched.Patent)
}

func TestDeleteDocTombstones(t *testing.T) {
	svc, company, docRepo := newDocFixture(t)

	patent := "https://bucket.example.com/docs/patent.pdf"
	doc, apierr := svc.SaveDoc(&contract.SaveDocRequest{
		CompanyID: company.ID,
		Patent:    &patent,
	})
	require.Nil(t, apierr)

	require.Nil(t, svc.DeleteDoc(doc.ID))

	// The row itself still exists.
	raw, err := docRepo.FindByID(doc.ID)
	require.NoError(t, err)
	assert.True(t, raw.Deleted)
}

func TestDeleteDocUnknownID(t *testing.T) {
	svc, _, _ := newDocFixture(t)

	assert.Equal(t, apierror.DocNotFoundError, svc.DeleteDoc(404))
}

func TestDeleteDocTwice(t *testing.T) {
	svc, company, _ := newDocFixture(t)

	patent := "https://bucket.example.com/docs/patent.pdf"
	doc, apierr := svc.SaveDoc(&contract.SaveDocRequest{
		CompanyID: company.ID,
		Patent:    &patent,
	})
	require.Nil(t, apierr)

	require.Nil(t, svc.DeleteDoc(doc.ID))
	assert.Equal(t, apierror.DocNotFoundError, svc.DeleteDoc(doc.ID))
}
