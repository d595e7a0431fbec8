package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopway/shopway/domain"
	"github.com/shopway/shopway/internal/rest/request"
	"github.com/shopway/shopway/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// currentUserID reads the authenticated caller set by the auth middleware.
func currentUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	return userID.(int64), true
}

func pagedComments(comments []*domain.Comment, info domain.PageInfo) gin.H {
	res := make([]*response.Comment, len(comments))
	for i := range comments {
		res[i] = response.NewCommentFromDomain(comments[i])
	}
	return gin.H{"data": res, "meta": info}
}

// ListByProduct will fetch top-level comments of a product, or direct
// replies of parent_id when given
func (h *CommentHandler) ListByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	var parentID *int64
	if p := c.Query("parent_id"); p != "" {
		pid, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
		parentID = &pid
	}

	ctx := c.Request.Context()
	comments, info, err := h.Service.ListByProduct(ctx, productID, parentID, parsePage(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, pagedComments(comments, info))
}

// ListMine will fetch the authenticated caller's own comments
func (h *CommentHandler) ListMine(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comments, info, err := h.Service.ListByUser(ctx, uid, parsePage(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, pagedComments(comments, info))
}

// GetByID will get a single comment with author/product/parent summaries
func (h *CommentHandler) GetByID(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.GetByID(ctx, int64(idP))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

// ListReplies will fetch the direct replies of a comment, oldest first
func (h *CommentHandler) ListReplies(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	ctx := c.Request.Context()
	comments, info, err := h.Service.ListReplies(ctx, int64(idP), parsePage(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, pagedComments(comments, info))
}

// Create will store a new comment or reply
func (h *CommentHandler) Create(c *gin.Context) {
	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	comment := req.ToDomain()
	comment.UserID = uid

	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment created successfully", "comment": response.NewCommentFromDomain(&comment)})
}

// Update will modify the caller's own comment content
func (h *CommentHandler) Update(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	var req request.UpdateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Update(ctx, int64(idP), uid, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

// Delete will soft-delete the caller's own comment
func (h *CommentHandler) Delete(c *gin.Context) {
	h.delete(c, false)
}

// AdminDelete will soft-delete any comment, bypassing the ownership check
func (h *CommentHandler) AdminDelete(c *gin.Context) {
	h.delete(c, true)
}

func (h *CommentHandler) delete(c *gin.Context, asAdmin bool) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, int64(idP), uid, asAdmin); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// AdminListAll will fetch comments across products with optional filters
func (h *CommentHandler) AdminListAll(c *gin.Context) {
	var productID int64
	if p := c.Query("product_id"); p != "" {
		pid, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
		productID = pid
	}

	ctx := c.Request.Context()
	comments, info, err := h.Service.ListAll(ctx, productID, c.Query("search"), parsePage(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, pagedComments(comments, info))
}

// AdminGroupByProduct reports live top-level comment counts per product
func (h *CommentHandler) AdminGroupByProduct(c *gin.Context) {
	res, err := h.Service.GroupByProduct(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

// AdminProductsByCategory reports commented products within a category
func (h *CommentHandler) AdminProductsByCategory(c *gin.Context) {
	slug := c.Param("categorySlug")

	res, err := h.Service.ProductsWithCommentsByCategory(c.Request.Context(), slug)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

// AdminReply creates a reply to the target comment as the admin user
func (h *CommentHandler) AdminReply(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	var req request.AdminReply
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.AdminReply(ctx, int64(idP), uid, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Reply created successfully", "comment": response.NewCommentFromDomain(comment)})
}
