package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jonathan/hireflow/internal/export"
	"github.com/jonathan/hireflow/internal/types"
)

// ---------------------------------------------------------------------
// Analytics Handlers
// ---------------------------------------------------------------------

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// analyticsFilters parses the shared analytics query, writing a 400 on failure.
func (s *Server) analyticsFilters(w http.ResponseWriter, r *http.Request) (types.AnalyticsFilters, bool) {
	filters, err := parseAnalyticsFilters(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return filters, false
	}
	return filters, true
}

func (s *Server) handleHiringMetrics(w http.ResponseWriter, r *http.Request) {
	filters, ok := s.analyticsFilters(w, r)
	if !ok {
		return
	}
	metrics, err := s.svc.GetHiringMetrics(r.Context(), filters)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (s *Server) handleTimeSeries(w http.ResponseWriter, r *http.Request) {
	filters, ok := s.analyticsFilters(w, r)
	if !ok {
		return
	}
	points, err := s.svc.GetTimeSeriesData(r.Context(), filters)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleDepartmentMetrics(w http.ResponseWriter, r *http.Request) {
	filters, ok := s.analyticsFilters(w, r)
	if !ok {
		return
	}
	departments, err := s.svc.GetDepartmentMetrics(r.Context(), filters)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, departments)
}

func (s *Server) handleRecruitmentEfficiency(w http.ResponseWriter, r *http.Request) {
	filters, ok := s.analyticsFilters(w, r)
	if !ok {
		return
	}
	efficiency, err := s.svc.GetRecruitmentEfficiency(r.Context(), filters)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, efficiency)
}

func (s *Server) handleExportWorkbook(w http.ResponseWriter, r *http.Request) {
	filters, ok := s.analyticsFilters(w, r)
	if !ok {
		return
	}

	report, err := s.svc.GetAnalyticsReport(r.Context(), filters)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := export.Workbook(report)
	if err != nil {
		s.fail(w, r, fmt.Errorf("failed to render workbook: %w", err))
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="hiring-report.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Warn("[http] failed to write workbook")
	}
}
