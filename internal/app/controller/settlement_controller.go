package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/gonggu-backend/internal/app/service"
	apperrors "github.com/ikkim/gonggu-backend/internal/errors"
	"github.com/ikkim/gonggu-backend/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SettlementController struct {
	settlementService service.SettlementService
}

func NewSettlementController(settlementService service.SettlementService) *SettlementController {
	return &SettlementController{
		settlementService: settlementService,
	}
}

// GetGroupSettlement returns per-member figures and the freight summary of a group
// GET /api/v1/groups/:id/settlement
func (ctrl *SettlementController) GetGroupSettlement(c *gin.Context) {
	report, err := ctrl.settlementService.GroupSettlement(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get group settlement")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settlement": report})
}

// ExportGroupSettlement downloads the settlement workbook
// GET /api/v1/groups/:id/export
func (ctrl *SettlementController) ExportGroupSettlement(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	groupID := c.Param("id")

	buf, filename, err := ctrl.settlementService.ExportGroup(groupID)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			respondServiceError(c, err, "export group settlement")
			return
		}
		log.Error("Failed to export settlement", err, map[string]interface{}{
			"group_id": groupID,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.InternalExportFailed, "정산표 생성에 실패했습니다")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
