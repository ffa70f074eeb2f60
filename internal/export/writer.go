package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"scholarlink/internal/domain"
)

// Format is a student export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet that holds students in XLSX exports.
const SheetName = "Students"

// BOM is the UTF-8 byte order mark written before CSV output for Excel on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row shared by both formats.
var columns = []string{
	"ID",
	"Full Name",
	"Email",
	"Phone",
	"Course",
	"Family Income",
	"Location",
	"Percentage",
	"Category",
	"Age",
	"Verified",
	"Documents",
	"Registered At",
}

// ParseFormat maps a query value to a Format. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", domain.ErrUnsupportedExport
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName returns the attachment name for the format.
func (f Format) FileName() string {
	return "students." + string(f)
}

// WriteStudents writes students to w in the given format.
func WriteStudents(w io.Writer, f Format, students []domain.Student) error {
	switch f {
	case FormatCSV:
		return writeCSV(w, students)
	case FormatXLSX:
		return writeXLSX(w, students)
	default:
		return domain.ErrUnsupportedExport
	}
}

func writeCSV(w io.Writer, students []domain.Student) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := range students {
		if err := cw.Write(studentToRow(&students[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, students []domain.Student) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range students {
		s := &students[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			s.ID.String(),
			s.FullName,
			s.Email,
			s.Phone,
			s.Course,
			s.Income,
			s.Location,
			s.Percentage,
			s.Category,
			s.Age,
			s.IsVerified,
			len(s.Documents),
			formatTime(s.CreatedAt),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func studentToRow(s *domain.Student) []string {
	return []string{
		s.ID.String(),
		s.FullName,
		s.Email,
		s.Phone,
		s.Course,
		formatFloat(s.Income),
		s.Location,
		formatFloat(s.Percentage),
		s.Category,
		strconv.Itoa(s.Age),
		strconv.FormatBool(s.IsVerified),
		strconv.Itoa(len(s.Documents)),
		formatTime(s.CreatedAt),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
