package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/gonggu-backend/internal/app/service"
	"github.com/ikkim/gonggu-backend/internal/middleware"
)

type MiscChargeController struct {
	chargeService service.MiscChargeService
}

func NewMiscChargeController(chargeService service.MiscChargeService) *MiscChargeController {
	return &MiscChargeController{
		chargeService: chargeService,
	}
}

// ListCharges returns misc charges, optionally for one member
// GET /api/v1/misc-charges?member_id=
func (ctrl *MiscChargeController) ListCharges(c *gin.Context) {
	charges, err := ctrl.chargeService.ListCharges(c.Query("member_id"))
	if err != nil {
		respondServiceError(c, err, "list misc charges")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"misc_charges": charges,
		"count":        len(charges),
	})
}

// CreateCharge bills an ad-hoc amount to a member
// POST /api/v1/misc-charges
func (ctrl *MiscChargeController) CreateCharge(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.CreateMiscChargeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c, err)
		return
	}

	charge, err := ctrl.chargeService.CreateCharge(req)
	if err != nil {
		respondServiceError(c, err, "create misc charge")
		return
	}

	log.Info("Misc charge created", map[string]interface{}{
		"charge_id": charge.ID,
		"member_id": charge.MemberID,
	})
	c.JSON(http.StatusCreated, gin.H{"misc_charge": charge})
}

// MarkPaid settles a misc charge
// PATCH /api/v1/misc-charges/:id/paid
func (ctrl *MiscChargeController) MarkPaid(c *gin.Context) {
	charge, err := ctrl.chargeService.MarkPaid(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "mark misc charge paid")
		return
	}
	c.JSON(http.StatusOK, gin.H{"misc_charge": charge})
}
