package handler

import (
	"tour-catalog/internal/models"
	"tour-catalog/internal/service"
	"tour-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// PackageHandler handles HTTP requests for top-level package operations.
type PackageHandler struct {
	service service.PackageServicer
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(service service.PackageServicer) *PackageHandler {
	return &PackageHandler{service: service}
}

// CreatePackage godoc
// @Summary      Create package
// @Description  Create a top-level tour category
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreatePackageRequest  true  "Package details"
// @Success      201      {object}  response.Response{data=models.Package}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req models.CreatePackageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pkg, err := h.service.CreatePackage(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, pkg)
}

// ListPackages godoc
// @Summary      List packages
// @Tags         packages
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Package}
// @Failure      500  {object}  response.Response
// @Router       /packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.service.ListPackages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, pkgs)
}

// GetPackage godoc
// @Summary      Get package
// @Tags         packages
// @Produce      json
// @Param        id   path      string  true  "Package ID"
// @Success      200  {object}  response.Response{data=models.Package}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /packages/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.service.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, pkg)
}

// UpdatePackage godoc
// @Summary      Update package
// @Description  Replace the provided non-empty fields
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Package ID"
// @Param        request  body      models.UpdatePackageRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Package}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /packages/{id} [put]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	var req models.UpdatePackageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pkg, err := h.service.UpdatePackage(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, pkg)
}

// DeletePackage godoc
// @Summary      Delete package
// @Description  Delete a package. Its sub-packages are left in place.
// @Tags         packages
// @Produce      json
// @Param        id   path      string  true  "Package ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	if err := h.service.DeletePackage(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	statusOK(c, "Package deleted successfully")
}
