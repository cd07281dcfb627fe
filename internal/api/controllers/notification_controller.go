package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopora/internal/services"
	"shopora/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

func (n *NotificationController) List(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	notifications, err := n.notificationService.List(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notifications, "")
}

func (n *NotificationController) ListUnread(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	notifications, err := n.notificationService.ListUnread(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notifications, "")
}

func (n *NotificationController) UnreadCount(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	count, err := n.notificationService.UnreadCount(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"count": count}, "")
}

func (n *NotificationController) MarkRead(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid notification id")
		return
	}

	if err := n.notificationService.MarkRead(c.Request.Context(), tenantID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Notification marked as read")
}

func (n *NotificationController) MarkAllRead(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	if err := n.notificationService.MarkAllRead(c.Request.Context(), tenantID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "All notifications marked as read")
}

func (n *NotificationController) Delete(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid notification id")
		return
	}

	if err := n.notificationService.Delete(c.Request.Context(), tenantID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Notification deleted")
}
