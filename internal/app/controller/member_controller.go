package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/gonggu-backend/internal/app/service"
	"github.com/ikkim/gonggu-backend/internal/middleware"
)

type MemberController struct {
	memberService     service.MemberService
	settlementService service.SettlementService
}

func NewMemberController(memberService service.MemberService, settlementService service.SettlementService) *MemberController {
	return &MemberController{
		memberService:     memberService,
		settlementService: settlementService,
	}
}

type UpdateMembershipRequest struct {
	IsMember     *bool      `json:"is_member" binding:"required"`
	MemberExpiry *time.Time `json:"member_expiry"`
}

// ListMembers returns every member
// GET /api/v1/members
func (ctrl *MemberController) ListMembers(c *gin.Context) {
	members, err := ctrl.memberService.ListMembers()
	if err != nil {
		respondServiceError(c, err, "list members")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"count":   len(members),
	})
}

// UpdateMembership sets the monthly subscription flag
// PUT /api/v1/members/:id/membership
func (ctrl *MemberController) UpdateMembership(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	memberID := c.Param("id")

	var req UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c, err)
		return
	}

	member, err := ctrl.memberService.SetMembership(memberID, *req.IsMember, req.MemberExpiry)
	if err != nil {
		respondServiceError(c, err, "update membership")
		return
	}

	log.Info("Membership updated", map[string]interface{}{
		"member_id": memberID,
		"is_member": member.IsMember,
	})
	c.JSON(http.StatusOK, gin.H{"member": member})
}

// GetBilling returns what the member currently owes across groups, misc charges and membership
// GET /api/v1/members/:id/billing
func (ctrl *MemberController) GetBilling(c *gin.Context) {
	bill, err := ctrl.settlementService.MemberBill(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get member billing")
		return
	}
	c.JSON(http.StatusOK, gin.H{"billing": bill})
}
