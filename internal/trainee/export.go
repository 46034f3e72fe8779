package trainee

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// formatDateJa renders a date the way the exports expect (2026/1/9 style,
// no zero padding).
func formatDateJa(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

var csvHeaders = []string{
	"実習生ID", "姓", "名", "姓（カナ）", "名（カナ）", "国籍",
	"パスポート番号", "ビザ種類", "ビザ有効期限", "入国日", "出国予定日",
	"部署", "役職", "電話番号", "メールアドレス", "住所",
	"緊急連絡先", "緊急連絡先電話", "登録日", "更新日",
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func csvRow(t *Trainee) []string {
	created := t.CreatedAt
	updated := t.UpdatedAt
	return []string{
		t.Code,
		t.LastName,
		t.FirstName,
		orEmpty(t.LastNameKana),
		orEmpty(t.FirstNameKana),
		t.Nationality,
		t.PassportNumber,
		t.VisaType,
		formatDateJa(t.VisaExpiryDate),
		formatDateJa(t.EntryDate),
		formatDateJa(t.DepartureDate),
		t.Department,
		orEmpty(t.Position),
		orEmpty(t.PhoneNumber),
		orEmpty(t.Email),
		orEmpty(t.Address),
		orEmpty(t.EmergencyContact),
		orEmpty(t.EmergencyPhone),
		formatDateJa(&created),
		formatDateJa(&updated),
	}
}

// WriteCSV streams the trainee roster as UTF-8 CSV with a BOM so that
// Excel on Japanese Windows opens it correctly.
func WriteCSV(w io.Writer, trainees []*Trainee) error {
	if _, err := w.Write([]byte("\ufeff")); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	for _, t := range trainees {
		if err := cw.Write(csvRow(t)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var excelHeaders = []string{
	"実習生ID", "姓", "名", "姓（カナ）", "名（カナ）", "国籍",
	"パスポート番号", "ビザ種類", "ビザ有効期限", "入国日", "出国予定日",
	"部署", "役職", "電話番号", "メールアドレス", "住所", "社宅住所",
	"緊急連絡先", "緊急連絡先電話", "監理団体", "家賃", "管理会社",
	"入寮日", "期", "登録日", "更新日",
}

var excelColumnWidths = []float64{
	12, 10, 10, 12, 12, 10, 15, 12, 12, 12, 12, 15, 10, 15, 20, 30, 30,
	15, 15, 15, 10, 15, 12, 10, 12, 12,
}

func excelRow(t *Trainee) []interface{} {
	created := t.CreatedAt
	updated := t.UpdatedAt

	rent := ""
	if t.MonthlyRent != nil {
		rent = strconv.Itoa(*t.MonthlyRent)
	}

	return []interface{}{
		t.Code,
		t.LastName,
		t.FirstName,
		orEmpty(t.LastNameKana),
		orEmpty(t.FirstNameKana),
		t.Nationality,
		t.PassportNumber,
		t.VisaType,
		formatDateJa(t.VisaExpiryDate),
		formatDateJa(t.EntryDate),
		formatDateJa(t.DepartureDate),
		t.Department,
		orEmpty(t.Position),
		orEmpty(t.PhoneNumber),
		orEmpty(t.Email),
		orEmpty(t.Address),
		orEmpty(t.ResidenceAddress),
		orEmpty(t.EmergencyContact),
		orEmpty(t.EmergencyPhone),
		orEmpty(t.SupervisingOrganization),
		rent,
		orEmpty(t.ManagementCompany),
		formatDateJa(t.MoveInDate),
		orEmpty(t.BatchPeriod),
		formatDateJa(&created),
		formatDateJa(&updated),
	}
}

// BuildWorkbook renders the trainee roster as an Excel workbook
func BuildWorkbook(trainees []*Trainee) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	for i, h := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, t := range trainees {
		for colIdx, v := range excelRow(t) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	for i, width := range excelColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}

	return f, nil
}
