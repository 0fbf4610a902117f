package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

type DocService interface {
	GetDoc(id int64) (*entity.Doc, apierror.ErrorResponse)
	SaveDoc(req *contract.SaveDocRequest) (*entity.Doc, apierror.ErrorResponse)
	UploadDocFile(fileHeader *multipart.FileHeader) (*contract.UploadDocResponse, apierror.ErrorResponse)
	DeleteDoc(id int64) apierror.ErrorResponse
}

type DefaultDocRoute struct {
	DocService DocService
}

func NewDocRoute(docService DocService) *DefaultDocRoute {
	return &DefaultDocRoute{DocService: docService}
}

func (r *DefaultDocRoute) GetDoc(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	doc, apierr := r.DocService.GetDoc(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "doc": doc})
}

// SaveDoc creates a document record, or patches the one named by docId
// when the payload carries it.
func (r *DefaultDocRoute) SaveDoc(c echo.Context) error {
	var req contract.SaveDocRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	doc, apierr := r.DocService.SaveDoc(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "doc": doc})
}

func (r *DefaultDocRoute) DeleteDoc(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	if apierr := r.DocService.DeleteDoc(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Doc deleted"})
}

func (r *DefaultDocRoute) UploadDocFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MissingDocFileError)
	}

	resp, apierr := r.DocService.UploadDocFile(fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "docUrl": resp.DocURL})
}
