// Package export renders settlement figures as xlsx workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/ikkim/gonggu-backend/internal/settlement"
	"github.com/xuri/excelize/v2"
)

const (
	LinesSheet   = "주문 내역"
	SummarySheet = "정산 요약"
)

var (
	lineHeaders = []interface{}{
		"회원", "상품", "옵션", "단가(엔)", "수량", "소계(엔)", "배송비(엔)", "합계", "국제 배송비",
	}
	summaryHeaders = []interface{}{
		"회원", "수량", "소계(엔)", "배송비(엔)", "상품 대금", "국제 배송비", "청구액",
	}
)

// Settlement is everything one group's workbook shows.
type Settlement struct {
	GroupTitle string
	Rows       []settlement.ExportRow
	Summaries  []settlement.MemberSummary
	Freight    settlement.FreightSummary
}

// Filename is the download name for a group's workbook.
func Filename(groupID string) string {
	return fmt.Sprintf("settlement_%s.xlsx", groupID)
}

// WriteSettlement writes the workbook to w.
func WriteSettlement(w io.Writer, s Settlement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), LinesSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	summaryIdx, err := f.NewSheet(SummarySheet)
	if err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeLines(f, s.Rows, bold); err != nil {
		return err
	}
	if err := writeSummary(f, s, bold); err != nil {
		return err
	}
	f.SetActiveSheet(summaryIdx)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeLines(f *excelize.File, rows []settlement.ExportRow, headerStyle int) error {
	if err := writeRow(f, LinesSheet, 1, lineHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(LinesSheet, "A1", "I1", headerStyle); err != nil {
		return err
	}
	for i, r := range rows {
		values := []interface{}{
			r.MemberName, r.ItemName, r.ItemSpec, r.UnitPrice, r.Quantity,
			r.SubtotalJPY, r.ShippingJPY, r.Total, r.Freight,
		}
		if err := writeRow(f, LinesSheet, i+2, values); err != nil {
			return err
		}
	}
	return f.SetColWidth(LinesSheet, "A", "C", 20)
}

func writeSummary(f *excelize.File, s Settlement, headerStyle int) error {
	if err := writeRow(f, SummarySheet, 1, []interface{}{s.GroupTitle}); err != nil {
		return err
	}
	if err := writeRow(f, SummarySheet, 2, summaryHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "G2", headerStyle); err != nil {
		return err
	}

	row := 3
	for _, m := range s.Summaries {
		values := []interface{}{
			m.MemberName, m.Units, m.SubtotalJPY, m.ShippingJPY, m.Merchandise, m.Freight, m.Total,
		}
		if err := writeRow(f, SummarySheet, row, values); err != nil {
			return err
		}
		row++
	}

	// freight block below the member table
	row++
	freight := [][]interface{}{
		{"상품 무게(kg)", s.Freight.ProductWeightKg},
		{"박스 무게(kg)", s.Freight.BoxWeightKg},
		{"청구 무게(kg)", s.Freight.BillingWeightKg},
		{"예상 운임", s.Freight.CourierEstimate},
		{"박스 비용/개", s.Freight.BoxCostPerUnit},
		{"최소 요금/인", s.Freight.MinChargePerPerson},
		{"국제 배송비 합계", s.Freight.BilledTotal},
	}
	for _, values := range freight {
		if err := writeRow(f, SummarySheet, row, values); err != nil {
			return err
		}
		row++
	}
	return f.SetColWidth(SummarySheet, "A", "A", 20)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
