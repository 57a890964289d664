package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/internal/app/service"
	"github.com/ikkim/gonggu-backend/internal/middleware"
)

type GroupController struct {
	groupService service.GroupService
}

func NewGroupController(groupService service.GroupService) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

type UpdateTrackingRequest struct {
	TrackingStatus model.TrackingStatus `json:"tracking_status" binding:"required"`
}

type UpdateGroupStatusRequest struct {
	Status model.GroupStatus `json:"status" binding:"required"`
}

// ListGroups returns active groups, or all groups with include_archived=true.
// status=<group status> narrows the list
// GET /api/v1/groups
func (ctrl *GroupController) ListGroups(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	includeArchived := c.Query("include_archived") == "true"
	status := model.GroupStatus(c.Query("status"))
	groups, err := ctrl.groupService.ListGroups(includeArchived, status)
	if err != nil {
		respondServiceError(c, err, "list groups")
		return
	}

	log.Debug("Groups fetched", map[string]interface{}{
		"count":            len(groups),
		"include_archived": includeArchived,
		"status":           status,
	})
	c.JSON(http.StatusOK, gin.H{
		"groups": groups,
		"count":  len(groups),
	})
}

// GetGroup returns one group with its items
// GET /api/v1/groups/:id
func (ctrl *GroupController) GetGroup(c *gin.Context) {
	group, err := ctrl.groupService.GetGroup(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get group")
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// CreateGroup creates a group in the forming state
// POST /api/v1/groups
func (ctrl *GroupController) CreateGroup(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.CreateGroupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c, err)
		return
	}

	group, err := ctrl.groupService.CreateGroup(req)
	if err != nil {
		respondServiceError(c, err, "create group")
		return
	}

	log.Info("Group created", map[string]interface{}{
		"group_id": group.ID,
	})
	c.JSON(http.StatusCreated, gin.H{"group": group})
}

// UpdateSettings changes rate, shipping, freight inputs or the billing phase
// PATCH /api/v1/groups/:id/settings
func (ctrl *GroupController) UpdateSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	groupID := c.Param("id")

	var req service.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c, err)
		return
	}

	group, err := ctrl.groupService.UpdateSettings(groupID, req)
	if err != nil {
		respondServiceError(c, err, "update group settings")
		return
	}

	log.Info("Group settings updated", map[string]interface{}{
		"group_id":       groupID,
		"payment_status": group.PaymentStatus,
	})
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// UpdateTracking moves the group along its shipping checkpoints
// PATCH /api/v1/groups/:id/tracking
func (ctrl *GroupController) UpdateTracking(c *gin.Context) {
	var req UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c, err)
		return
	}

	group, err := ctrl.groupService.AdvanceTracking(c.Param("id"), req.TrackingStatus)
	if err != nil {
		respondServiceError(c, err, "update group tracking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// UpdateStatus changes the group lifecycle status
// PATCH /api/v1/groups/:id/status
func (ctrl *GroupController) UpdateStatus(c *gin.Context) {
	var req UpdateGroupStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c, err)
		return
	}

	group, err := ctrl.groupService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err, "update group status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}
