package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopway/shopway/domain"
)

type NotificationHandler struct {
	Service domain.NotificationUsecase
}

func NewNotificationHandler(svc domain.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		Service: svc,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	notifs, info, err := h.Service.FetchByUser(ctx, uid, parsePage(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": notifs, "meta": info})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
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
	if err := h.Service.MarkRead(ctx, int64(idP), uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
