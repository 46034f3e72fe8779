package trainee

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string { return &s }

func sampleTrainee() *Trainee {
	expiry := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	entry := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	return &Trainee{
		ID:             uuid.New(),
		Code:           "T-001",
		FirstName:      "タオ",
		LastName:       "グエン",
		LastNameKana:   strPtr("グエン"),
		Nationality:    "ベトナム",
		PassportNumber: "N1234567",
		VisaType:       "技能実習1号",
		VisaExpiryDate: &expiry,
		EntryDate:      &entry,
		Department:     "製造部",
		IsActive:       true,
		CreatedAt:      time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*Trainee{sampleTrainee()}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\ufeff"), "BOM for Excel on Japanese Windows")

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\ufeff"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, csvHeaders, records[0])

	row := records[1]
	assert.Equal(t, "T-001", row[0])
	assert.Equal(t, "グエン", row[1])
	assert.Equal(t, "タオ", row[2])
	assert.Equal(t, "ベトナム", row[5])
	assert.Equal(t, "2026/9/5", row[8], "ja-JP short date, no zero padding")
	assert.Equal(t, "2024/4/1", row[9])
	assert.Equal(t, "", row[10], "nil dates render empty")
}

func TestWriteCSVEmptyRoster(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\ufeff"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "headers only")
}

func TestBuildWorkbook(t *testing.T) {
	f, err := BuildWorkbook([]*Trainee{sampleTrainee()})
	require.NoError(t, err)

	got, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "実習生ID", got)

	got, err = f.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "T-001", got)

	got, err = f.GetCellValue("Sheet1", "I2")
	require.NoError(t, err)
	assert.Equal(t, "2026/9/5", got)

	lastCol, err := excelize.ColumnNumberToName(len(excelHeaders))
	require.NoError(t, err)
	got, err = f.GetCellValue("Sheet1", lastCol+"1")
	require.NoError(t, err)
	assert.Equal(t, "更新日", got)
}

func TestFormatDateJaNil(t *testing.T) {
	assert.Equal(t, "", formatDateJa(nil))
}
