package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportService renders the filtered dashboard table as an xlsx workbook.
type ExportService struct {
	dashboard *DashboardService
}

func NewExportService(dashboard *DashboardService) *ExportService {
	return &ExportService{dashboard: dashboard}
}

var exportHeaders = []string{
	"Đơn vị", "Trưởng đơn vị", "Doanh thu", "Chi phí", "Lợi nhuận", "Cam kết", "Thời gian gửi",
}

// Export builds a workbook with one row per filtered submission plus a
// statistics footer. Caller owns closing the file.
func (s *ExportService) Export(ctx context.Context, unit string) (*excelize.File, error) {
	subs, err := s.dashboard.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	filtered := Filter(subs, unit)
	stats := Aggregate(filtered)

	f := excelize.NewFile()
	const sheet = "Sheet1"

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, sub := range filtered {
		rowIdx := i + 2
		commitment := "Chưa cam kết"
		if sub.Commitment {
			commitment = "Đã cam kết"
		}
		values := []interface{}{
			sub.UnitName,
			sub.UnitLeader,
			sub.FinancialForecast.Revenue,
			sub.FinancialForecast.Costs,
			sub.FinancialForecast.Profit,
			commitment,
			sub.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
			f.SetCellValue(sheet, cell, v)
		}
	}

	footer := len(filtered) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", footer), fmt.Sprintf("Tổng số đơn vị: %d", stats.TotalUnits))
	f.SetCellValue(sheet, fmt.Sprintf("A%d", footer+1), fmt.Sprintf("Đơn vị đã cam kết: %d (%.0f%%)", stats.CommittedUnits, stats.CommittedPct))
	f.SetCellValue(sheet, fmt.Sprintf("A%d", footer+2), fmt.Sprintf("Tổng doanh thu dự kiến: %.0f", stats.TotalRevenue))

	return f, nil
}
