package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopway/shopway/domain"
	"github.com/shopway/shopway/internal/rest/request"
)

type BrandHandler struct {
	Service domain.BrandUsecase
}

func NewBrandHandler(svc domain.BrandUsecase) *BrandHandler {
	return &BrandHandler{
		Service: svc,
	}
}

func (h *BrandHandler) FetchAll(c *gin.Context) {
	brands, err := h.Service.FetchAll(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": brands})
}

func (h *BrandHandler) GetBySlug(c *gin.Context) {
	brand, err := h.Service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) Store(c *gin.Context) {
	var req request.Brand
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &brand); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, brand)
}

func (h *BrandHandler) Update(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	var req request.Brand
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand := req.ToDomain()
	brand.ID = int64(idP)
	if err := h.Service.Update(c.Request.Context(), &brand); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
