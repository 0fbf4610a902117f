package service

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/infrastructure/aws/storage"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/uid"
)

type DocRepository interface {
	FindActiveByID(id int64) (*entity.Doc, error)
	FindByID(id int64) (*entity.Doc, error)
	Save(doc *entity.Doc) error
	ReplaceOthers(docID int64, others []*entity.OtherDocument) error
}

// DocService keeps the certificate-scan records. Files themselves live
// in the storage bucket; entities only hold their URLs.
type DocService struct {
	DocRepo     DocRepository
	CompanyRepo CompanyRepository
	Storage     storage.S3Client
	Validate    *validator.Validate
}

func NewDocService(docRepo DocRepository, companyRepo CompanyRepository, s3 storage.S3Client, validate *validator.Validate) *DocService {
	return &DocService{
		DocRepo:     docRepo,
		CompanyRepo: companyRepo,
		Storage:     s3,
		Validate:    validate,
	}
}

func (d *DocService) GetDoc(id int64) (*entity.Doc, apierror.ErrorResponse) {
	doc, err := d.DocRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch doc %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if doc == nil {
		return nil, apierror.InvalidInputError
	}
	return doc, nil
}

// SaveDoc creates the company's document record, or patches the one
// named by docId when present.
func (d *DocService) SaveDoc(req *contract.SaveDocRequest) (*entity.Doc, apierror.ErrorResponse) {
	if valerr := d.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, err := d.CompanyRepo.FindActiveByID(req.CompanyID)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", req.CompanyID, err)
		return nil, apierror.NewInternal(err)
	}

	if company == nil {
		return nil, apierror.InvalidInputError
	}

	if req.DocID != nil {
		return d.patchDoc(*req.DocID, req)
	}

	now := utils.NowUTC()
	doc := &entity.Doc{
		ID:              uid.Generate(),
		MocCertificate:  deref(req.MocCertificate),
		BusinessExtract: deref(req.BusinessExtract),
		VatCertificate:  deref(req.VatCertificate),
		Patent:          deref(req.Patent),
		GdtCard:         deref(req.GdtCard),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := d.DocRepo.Save(doc); err != nil {
		log.Errorf("failed to create doc: %v", err)
		return nil, apierror.NewInternal(err)
	}

	if len(req.Others) > 0 {
		doc.Others = toOtherDocuments(doc.ID, req.Others)
		if err := d.DocRepo.ReplaceOthers(doc.ID, doc.Others); err != nil {
			log.Errorf("failed to save other documents of doc %d: %v", doc.ID, err)
			return nil, apierror.NewInternal(err)
		}
	}

	company.DocID = &doc.ID
	company.UpdatedAt = now
	if err := d.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to link doc to company %d: %v", company.ID, err)
		return nil, apierror.NewInternal(err)
	}
	return doc, nil
}

// UploadDocFile pushes a certificate scan to the bucket and returns the
// URL to store on the Doc record.
func (d *DocService) UploadDocFile(fileHeader *multipart.FileHeader) (*contract.UploadDocResponse, apierror.ErrorResponse) {
	if fileHeader.Size > contract.MaxDocFileSizeBytes {
		return nil, apierror.NewSimple(400, "File exceeds the %d byte limit", contract.MaxDocFileSizeBytes)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if !validDocExt(ext) {
		return nil, apierror.NewSimple(400, "Invalid file extension: %q", ext)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open upload: %v", err)
		return nil, apierror.NewInternal(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read upload: %v", err)
		return nil, apierror.NewInternal(err)
	}

	filename := uuid.NewString() + "." + ext
	url, err := d.Storage.UploadFile(data, filename)
	if err != nil {
		log.Errorf("failed to upload file: %v", err)
		return nil, apierror.NewInternal(err)
	}
	return &contract.UploadDocResponse{DocURL: url}, nil
}

func (d *DocService) DeleteDoc(id int64) apierror.ErrorResponse {
	doc, err := d.DocRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch doc %d: %v", id, err)
		return apierror.NewInternal(err)
	}

	if doc == nil {
		return apierror.DocNotFoundError
	}

	doc.Deleted = true
	doc.UpdatedAt = utils.NowUTC()
	if err := d.DocRepo.Save(doc); err != nil {
		log.Errorf("failed to delete doc %d: %v", id, err)
		return apierror.NewInternal(err)
	}
	return nil
}

func (d *DocService) patchDoc(docID int64, req *contract.SaveDocRequest) (*entity.Doc, apierror.ErrorResponse) {
	doc, err := d.DocRepo.FindByID(docID)
	if err != nil {
		log.Errorf("failed to fetch doc %d: %v", docID, err)
		return nil, apierror.NewInternal(err)
	}

	if doc == nil {
		return nil, apierror.InvalidInputError
	}

	dirty := false
	dirty = apply(req.MocCertificate, &doc.MocCertificate) || dirty
	dirty = apply(req.BusinessExtract, &doc.BusinessExtract) || dirty
	dirty = apply(req.VatCertificate, &doc.VatCertificate) || dirty
	dirty = apply(req.Patent, &doc.Patent) || dirty
	dirty = apply(req.GdtCard, &doc.GdtCard) || dirty

	if req.Others != nil {
		doc.Others = toOtherDocuments(doc.ID, req.Others)
		if err := d.DocRepo.ReplaceOthers(doc.ID, doc.Others); err != nil {
			log.Errorf("failed to replace other documents of doc %d: %v", doc.ID, err)
			return nil, apierror.NewInternal(err)
		}
		dirty = true
	}

	if dirty {
		doc.UpdatedAt = utils.NowUTC()
		if err := d.DocRepo.Save(doc); err != nil {
			log.Errorf("failed to update doc %d: %v", docID, err)
			return nil, apierror.NewInternal(err)
		}
	}
	return doc, nil
}

func toOtherDocuments(docID int64, payloads []contract.OtherDocumentPayload) []*entity.OtherDocument {
	others := make([]*entity.OtherDocument, len(payloads))
	for i, p := range payloads {
		others[i] = &entity.OtherDocument{
			ID:           uid.Generate(),
			DocID:        docID,
			DocURL:       p.DocURL,
			Title:        p.Title,
			TitleInKhmer: p.TitleInKhmer,
		}
	}
	return others
}

func validDocExt(ext string) bool {
	for _, v := range contract.ValidDocFileTypes {
		if v == ext {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
