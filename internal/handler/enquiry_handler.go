package handler

import (
	"tour-catalog/internal/models"
	"tour-catalog/internal/service"
	"tour-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// EnquiryHandler handles the public contact and enquiry forms.
type EnquiryHandler struct {
	service service.EnquiryServicer
}

// NewEnquiryHandler creates a new EnquiryHandler.
func NewEnquiryHandler(service service.EnquiryServicer) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

// Contact godoc
// @Summary      Contact form
// @Description  Store a message from the contact page and notify the site inbox
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateEnquiryRequest  true  "Contact details"
// @Success      201      {object}  response.Response{data=models.Enquiry}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *EnquiryHandler) Contact(c *gin.Context) {
	h.create(c, models.SourceContact)
}

// CreateEnquiry godoc
// @Summary      Tour enquiry
// @Description  Store an enquiry, optionally about a specific sub-package
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateEnquiryRequest  true  "Enquiry details"
// @Success      201      {object}  response.Response{data=models.Enquiry}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /enquiries [post]
func (h *EnquiryHandler) CreateEnquiry(c *gin.Context) {
	h.create(c, models.SourceEnquiry)
}

func (h *EnquiryHandler) create(c *gin.Context, source string) {
	var req models.CreateEnquiryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	enquiry, err := h.service.CreateEnquiry(c.Request.Context(), source, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, enquiry)
}

// ListEnquiries godoc
// @Summary      List enquiries
// @Description  List contact messages and enquiries, newest first
// @Tags         enquiries
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Enquiry}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /enquiries [get]
func (h *EnquiryHandler) ListEnquiries(c *gin.Context) {
	enquiries, err := h.service.ListEnquiries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, enquiries)
}

// DeleteEnquiry godoc
// @Summary      Delete enquiry
// @Tags         enquiries
// @Produce      json
// @Param        id   path      string  true  "Enquiry ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /enquiries/{id} [delete]
func (h *EnquiryHandler) DeleteEnquiry(c *gin.Context) {
	if err := h.service.DeleteEnquiry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	statusOK(c, "Enquiry deleted successfully")
}
