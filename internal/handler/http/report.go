package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/report"
	"github.com/timetrack-hq/timetrack-backend-go/internal/handler/http/response"
	"github.com/timetrack-hq/timetrack-backend-go/internal/service/export"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	Weekdays(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	exportService export.ExportService
}

func NewReportHandler(reportService report.ReportService, exportService export.ExportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		exportService: exportService,
	}
}

// Summary implements ReportHandler.
func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	req := report.SummaryRequest{
		UserID:    r.URL.Query().Get("user_id"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.GetUserSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Departments implements ReportHandler.
func (h *reportHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetDepartmentStats(r.Context(),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Weekdays implements ReportHandler.
func (h *reportHandlerImpl) Weekdays(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetWeekdayStats(r.Context(),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Weekly implements ReportHandler.
func (h *reportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		response.BadRequest(w, "user_id is required", nil)
		return
	}

	weeks := 0
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "weeks must be a number", nil)
			return
		}
		weeks = parsed
	}

	result, err := h.reportService.GetWeeklyAttendance(r.Context(), userID, weeks)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	f, fileName, err := h.exportService.AttendanceReport(r.Context(),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)

	if err := f.Write(w); err != nil {
		// Headers are already out, all we can do is log.
		slog.Error("Export write error", "error", err)
	}
}
