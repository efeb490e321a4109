package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/employee"
)

// ExportService renders attendance records into spreadsheet reports.
type ExportService interface {
	// AttendanceReport builds an XLSX workbook covering an inclusive date
	// range and returns it with a suggested file name.
	AttendanceReport(ctx context.Context, startDate, endDate string) (*excelize.File, string, error)
}

type ExportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewExportService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository) ExportService {
	return &ExportServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
	}
}

const sheetName = "Attendance"

var reportHeader = []interface{}{
	"Date", "Employee Name", "Department", "Clock In", "Clock Out", "Hours Worked", "Status", "Notes",
}

// AttendanceReport implements ExportService.
func (s *ExportServiceImpl) AttendanceReport(ctx context.Context, startDate, endDate string) (*excelize.File, string, error) {
	records, err := s.AttendanceRepository.QueryByRange(ctx, startDate, endDate)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query attendance records: %w", err)
	}

	directory, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list employees: %w", err)
	}
	byID := make(map[string]employee.Employee, len(directory))
	for _, e := range directory {
		byID[e.ID] = e
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &reportHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", fmt.Errorf("failed to compute cell name: %w", err)
		}
		row := reportRow(record, byID)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write report row: %w", err)
		}
	}

	fileName := reportFileName(startDate, endDate)
	return f, fileName, nil
}

func reportRow(record attendance.Attendance, byID map[string]employee.Employee) []interface{} {
	name := "Unknown"
	department := "Unknown"
	if e, ok := byID[record.UserID]; ok {
		name = e.FullName()
		department = e.Department
	}

	clockOut := "N/A"
	if record.ClockOut != nil {
		clockOut = record.ClockOut.UTC().Format("15:04:05")
	}

	var hours interface{} = "N/A"
	if record.TotalHours != nil {
		hours = *record.TotalHours
	}

	notes := ""
	if record.Notes != nil {
		notes = *record.Notes
	}

	return []interface{}{
		record.Date,
		name,
		department,
		record.ClockIn.UTC().Format("15:04:05"),
		clockOut,
		hours,
		strings.ToUpper(strings.ReplaceAll(record.Status, "_", " ")),
		notes,
	}
}

func reportFileName(startDate, endDate string) string {
	switch {
	case startDate == "" && endDate == "":
		return fmt.Sprintf("Attendance_Report_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	case startDate == "":
		return fmt.Sprintf("Attendance_Report_until_%s.xlsx", endDate)
	case endDate == "":
		return fmt.Sprintf("Attendance_Report_from_%s.xlsx", startDate)
	default:
		return fmt.Sprintf("Attendance_Report_%s_%s.xlsx", startDate, endDate)
	}
}
