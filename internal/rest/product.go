package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shopway/shopway/domain"
	"github.com/shopway/shopway/internal/rest/request"
	"github.com/shopway/shopway/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageNum = 1
	DefaultLimit   = 10
	LimitMax       = 100
)

// ProductHandler represent the httphandler for product
type ProductHandler struct {
	Service domain.ProductUsecase
}

func NewProductHandler(svc domain.ProductUsecase) *ProductHandler {
	return &ProductHandler{
		Service: svc,
	}
}

// parsePage reads page/limit query params with teacher defaults.
func parsePage(c *gin.Context) domain.PageQuery {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = DefaultPageNum
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit < 1 || limit > LimitMax {
		limit = DefaultLimit
	}
	return domain.PageQuery{Page: page, Limit: limit}
}

// Search will fetch the products based on given filter params
func (h *ProductHandler) Search(c *gin.Context) {
	var filter domain.ProductFilter
	filter.Search = c.Query("search")
	filter.CategoryID, _ = strconv.ParseInt(c.Query("category_id"), 10, 64)
	filter.BrandID, _ = strconv.ParseInt(c.Query("brand_id"), 10, 64)
	filter.MinPrice, _ = strconv.ParseFloat(c.Query("min_price"), 64)
	filter.MaxPrice, _ = strconv.ParseFloat(c.Query("max_price"), 64)

	ctx := c.Request.Context()
	products, info, err := h.Service.Search(ctx, filter, parsePage(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Product, len(products))
	for i := range products {
		res[i] = response.NewProductFromDomain(&products[i])
	}
	c.JSON(http.StatusOK, gin.H{"data": res, "meta": info})
}

// GetByID will get product by given id
func (h *ProductHandler) GetByID(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}
	id := int64(idP)
	ctx := c.Request.Context()

	product, err := h.Service.GetByID(ctx, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewProductFromDomain(&product))
}

// Store will store the product by given request body
func (h *ProductHandler) Store(c *gin.Context) {
	var req request.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := req.ToDomain()
	ctx := c.Request.Context()
	if err := h.Service.Store(ctx, &product); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewProductFromDomain(&product))
}

// Update will modify the product by given request body
func (h *ProductHandler) Update(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	var req request.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := req.ToDomain()
	product.ID = int64(idP)

	ctx := c.Request.Context()
	if err := h.Service.Update(ctx, &product); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewProductFromDomain(&product))
}

// Delete will soft-delete the product by given param
func (h *ProductHandler) Delete(c *gin.Context) {
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

// AdjustStock applies a stock delta to the product
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	var req request.StockAdjustment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Service.AdjustStock(c.Request.Context(), int64(idP), req.Delta)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewProductFromDomain(&product))
}

// getStatusCode will get the http code of a usecase error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput, domain.ErrMaxReplyDepth:
		return http.StatusBadRequest
	case domain.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
