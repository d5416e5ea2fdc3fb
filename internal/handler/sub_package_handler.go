package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"
	"tour-catalog/internal/service"
	"tour-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// Multipart field names.
const (
	fieldMainImage     = "mainImage"
	fieldGalleryImages = "galleryImages"
	fieldReplaceImage  = "imageUrl"
)

// maxImageBytes bounds a single uploaded image.
const maxImageBytes = 10 << 20

// SubPackageHandler handles HTTP requests for sub-package operations.
type SubPackageHandler struct {
	service service.SubPackageServicer
}

// NewSubPackageHandler creates a new SubPackageHandler.
func NewSubPackageHandler(service service.SubPackageServicer) *SubPackageHandler {
	return &SubPackageHandler{service: service}
}

// CreateSubPackage godoc
// @Summary      Create sub-package
// @Description  Create a sub-package under a package or another sub-package. The main image is required.
// @Tags         subpackages
// @Accept       multipart/form-data
// @Produce      json
// @Param        packageId       formData  string  true   "Parent package or sub-package ID"
// @Param        name            formData  string  false  "Name"
// @Param        description     formData  string  false  "Description"
// @Param        price           formData  number  false  "Price"
// @Param        duration        formData  string  false  "Duration"
// @Param        isDealOfTheDay  formData  bool    false  "Deal of the day flag"
// @Param        introduction    formData  string  false  "Introduction"
// @Param        tourPlan        formData  string  false  "Tour plan"
// @Param        includeExclude  formData  string  false  "Inclusions and exclusions"
// @Param        pricingDetails  formData  string  false  "JSON array of pricing rows"
// @Param        mainImage       formData  file    true   "Main image"
// @Param        galleryImages   formData  file    false  "Gallery images (up to 10)"
// @Success      201  {object}  models.SubPackage
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /subpackages [post]
func (h *SubPackageHandler) CreateSubPackage(c *gin.Context) {
	req, files, ok := bindSubPackage(c, fieldMainImage)
	if !ok {
		return
	}

	sp, err := h.service.CreateSubPackage(c.Request.Context(), req, files)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Raw(c, http.StatusCreated, sp)
}

// GetSubPackagesByPackage godoc
// @Summary      List direct children
// @Description  List the sub-packages whose parent is the given package or sub-package
// @Tags         subpackages
// @Produce      json
// @Param        packageId  path      string  true  "Parent ID"
// @Success      200        {array}   models.SubPackage
// @Failure      500        {object}  response.Response
// @Router       /subpackages/package/{packageId} [get]
func (h *SubPackageHandler) GetSubPackagesByPackage(c *gin.Context) {
	sps, err := h.service.ListByParent(c.Request.Context(), c.Param("packageId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Raw(c, http.StatusOK, sps)
}

// GetSubPackage godoc
// @Summary      Get sub-package
// @Tags         subpackages
// @Produce      json
// @Param        subPackageId  path      string  true  "Sub-package ID"
// @Success      200           {object}  models.SubPackage
// @Failure      404           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Router       /subpackages/{subPackageId} [get]
func (h *SubPackageHandler) GetSubPackage(c *gin.Context) {
	sp, err := h.service.GetSubPackage(c.Request.Context(), c.Param("subPackageId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Raw(c, http.StatusOK, sp)
}

// GetAllSubPackages godoc
// @Summary      List all sub-packages
// @Tags         subpackages
// @Produce      json
// @Success      200  {array}   models.SubPackage
// @Failure      500  {object}  response.Response
// @Router       /subpackages [get]
func (h *SubPackageHandler) GetAllSubPackages(c *gin.Context) {
	sps, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Raw(c, http.StatusOK, sps)
}

// UpdateSubPackage godoc
// @Summary      Update sub-package
// @Description  Replace provided fields. Gallery images and pricing rows are appended. Accepts multipart or JSON.
// @Tags         subpackages
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        subPackageId    path      string  true   "Sub-package ID"
// @Param        name            formData  string  false  "Name"
// @Param        description     formData  string  false  "Description"
// @Param        price           formData  number  false  "Price"
// @Param        isDealOfTheDay  formData  bool    false  "Deal of the day flag"
// @Param        pricingDetails  formData  string  false  "JSON array of pricing rows to append"
// @Param        imageUrl        formData  file    false  "Replacement main image"
// @Param        galleryImages   formData  file    false  "Gallery images to append (up to 10)"
// @Success      200             {object}  response.Response{data=models.SubPackage}
// @Failure      400             {object}  response.Response
// @Failure      404             {object}  response.Response
// @Failure      500             {object}  response.Response
// @Security     BearerAuth
// @Router       /subpackages/{subPackageId} [put]
func (h *SubPackageHandler) UpdateSubPackage(c *gin.Context) {
	req, files, ok := bindSubPackage(c, fieldReplaceImage)
	if !ok {
		return
	}

	sp, err := h.service.UpdateSubPackage(c.Request.Context(), c.Param("subPackageId"), req, files)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, sp)
}

// DeleteSubPackage godoc
// @Summary      Delete sub-package
// @Description  Delete a single sub-package. Children and parent references are not touched.
// @Tags         subpackages
// @Produce      json
// @Param        subPackageId  path      string  true  "Sub-package ID"
// @Success      200           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Security     BearerAuth
// @Router       /subpackages/{subPackageId} [delete]
func (h *SubPackageHandler) DeleteSubPackage(c *gin.Context) {
	if err := h.service.DeleteSubPackage(c.Request.Context(), c.Param("subPackageId")); err != nil {
		respondError(c, err)
		return
	}

	statusOK(c, "Subpackage deleted successfully")
}

// DeleteGalleryImage godoc
// @Summary      Delete gallery image
// @Tags         subpackages
// @Produce      json
// @Param        subPackageId  path      string  true  "Sub-package ID"
// @Param        imageId       path      string  true  "Gallery image ID"
// @Success      200           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Security     BearerAuth
// @Router       /subpackages/{subPackageId}/gallery/{imageId} [delete]
func (h *SubPackageHandler) DeleteGalleryImage(c *gin.Context) {
	err := h.service.DeleteGalleryImage(c.Request.Context(), c.Param("subPackageId"), c.Param("imageId"))
	if err != nil {
		respondError(c, err)
		return
	}

	statusOK(c, "Image deleted successfully")
}

// GetDealOfTheDay godoc
// @Summary      Deals of the day
// @Description  List sub-packages flagged as deal of the day. Returns 404 when there are none.
// @Tags         subpackages
// @Produce      json
// @Success      200  {array}   models.SubPackage
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /subpackages/deal-of-the-day [get]
func (h *SubPackageHandler) GetDealOfTheDay(c *gin.Context) {
	deals, err := h.service.GetDealsOfTheDay(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Raw(c, http.StatusOK, deals)
}

// GetLatestTourPackages godoc
// @Summary      Latest tour packages
// @Description  Newest sub-packages first. An empty list is a success.
// @Tags         subpackages
// @Produce      json
// @Param        limit  query     int  false  "Number of items (1-20, default 4)"
// @Success      200    {object}  response.Response{data=[]models.SubPackage}
// @Failure      500    {object}  response.Response
// @Router       /subpackages/latest [get]
func (h *SubPackageHandler) GetLatestTourPackages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultLatestLimit)))

	sps, err := h.service.GetLatest(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Latest tour packages retrieved successfully", sps)
}

// bindSubPackage reads the body fields and uploaded images of a create or
// update request. It writes the error response itself and reports false on failure.
func bindSubPackage(c *gin.Context, mainField string) (*models.SubPackageRequest, service.SubPackageFiles, bool) {
	var req models.SubPackageRequest
	var files service.SubPackageFiles

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				response.BadRequest(c, err.Error())
				return nil, files, false
			}
		}
		return &req, files, true
	}

	if err := c.ShouldBind(&req); err != nil {
		if errors.Is(err, apperrors.ErrInvalidPricingDetails) {
			response.BadRequest(c, apperrors.ErrInvalidPricingDetails.Error())
			return nil, files, false
		}
		response.BadRequest(c, err.Error())
		return nil, files, false
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, err.Error())
		return nil, files, false
	}
	req.GalleryImages.Set = len(form.File[fieldGalleryImages]) > 0 || len(form.Value[fieldGalleryImages]) > 0

	if headers := form.File[mainField]; len(headers) > 0 {
		upload, err := readUpload(headers[0])
		if err != nil {
			response.BadRequest(c, err.Error())
			return nil, files, false
		}
		files.MainImage = &upload
	}

	gallery := form.File[fieldGalleryImages]
	if len(gallery) > service.MaxGalleryUploads {
		response.BadRequest(c, fmt.Sprintf("at most %d gallery images can be uploaded at once", service.MaxGalleryUploads))
		return nil, files, false
	}
	for _, header := range gallery {
		upload, err := readUpload(header)
		if err != nil {
			response.BadRequest(c, err.Error())
			return nil, files, false
		}
		files.GalleryImages = append(files.GalleryImages, upload)
	}

	return &req, files, true
}

func readUpload(header *multipart.FileHeader) (models.Upload, error) {
	if header.Size > maxImageBytes {
		return models.Upload{}, fmt.Errorf("%w: %s is larger than %d bytes", apperrors.ErrInvalidImage, header.Filename, maxImageBytes)
	}

	f, err := header.Open()
	if err != nil {
		return models.Upload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return models.Upload{}, err
	}

	return models.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
