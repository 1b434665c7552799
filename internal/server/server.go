// Package server serves the time-price-tag web form and its calculation API.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/timepricetag/time-price-tag/internal/calc"
	"github.com/timepricetag/time-price-tag/pkg/constants"
	"github.com/timepricetag/time-price-tag/pkg/format"
	"github.com/timepricetag/time-price-tag/pkg/mathutil"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// calculation API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Calculation API endpoint backing the web form
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Liveness probe
	mux.HandleFunc("/healthz", h.handleHealth)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type calculateResponse struct {
	Kind       string         `json:"kind"`
	HourlyRate float64        `json:"hourlyRate"`
	OneTime    *oneTimeCost   `json:"oneTime,omitempty"`
	Recurring  *recurringCost `json:"recurring,omitempty"`
	Display    displayText    `json:"display"`
	Duration   string         `json:"duration"`
}

type oneTimeCost struct {
	Hours float64 `json:"hours"`
	Days  float64 `json:"days"`
}

type recurringCost struct {
	MonthlyHours float64 `json:"monthlyHours"`
	MonthlyDays  float64 `json:"monthlyDays"`
	YearlyHours  float64 `json:"yearlyHours"`
	YearlyDays   float64 `json:"yearlyDays"`
}

type displayText struct {
	HourlyRate string `json:"hourlyRate"`
	Headline   string `json:"headline"`
	ApproxTime string `json:"approxTime"`
	Yearly     string `json:"yearly,omitempty"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	in := calc.Input{
		YearlyIncome: coerceString(payload["yearlyIncome"]),
		DailyHours:   coerceString(payload["dailyHours"]),
		ItemPrice:    coerceString(payload["itemPrice"]),
		Recurring:    coerceBool(payload["recurring"]),
	}

	result, msg := calc.Evaluate(in)
	if msg != "" {
		h.respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	elapsed := time.Since(start)
	response := buildResponse(result, elapsed)

	if h.logger != nil {
		h.logger.Info("time cost computed",
			zap.String("op", "server.handleCalculate"),
			zap.String("kind", response.Kind),
			zap.Duration("duration", elapsed),
		)
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func buildResponse(result calc.Result, elapsed time.Duration) calculateResponse {
	rate := mathutil.RoundRate(result.HourlyRate)

	response := calculateResponse{
		Kind:       result.Kind.String(),
		HourlyRate: rate,
		Duration:   elapsed.String(),
	}
	response.Display.HourlyRate = format.Currency(rate) + " per hour"

	switch result.Kind {
	case calc.KindRecurring:
		monthlyHours := mathutil.RoundHours(result.Recurring.MonthlyHours)
		monthlyDays := mathutil.RoundHours(result.Recurring.MonthlyDays)
		yearlyHours := mathutil.RoundHours(result.Recurring.YearlyHours)
		yearlyDays := mathutil.RoundHours(result.Recurring.YearlyDays)
		response.Recurring = &recurringCost{
			MonthlyHours: monthlyHours,
			MonthlyDays:  monthlyDays,
			YearlyHours:  yearlyHours,
			YearlyDays:   yearlyDays,
		}
		response.Display.Headline = format.TimeCost(monthlyHours, monthlyDays) + " every month"
		response.Display.ApproxTime = format.Hours(monthlyHours) + " per month"
		response.Display.Yearly = format.TimeCost(yearlyHours, yearlyDays) + " every year"
	default:
		hours := mathutil.RoundHours(result.OneTime.Hours)
		days := mathutil.RoundHours(result.OneTime.Days)
		response.OneTime = &oneTimeCost{Hours: hours, Days: days}
		response.Display.Headline = format.TimeCost(hours, days)
		response.Display.ApproxTime = format.Hours(hours)
	}

	return response
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	if h.logger != nil {
		h.logger.Error("calculation request failed",
			zap.String("op", "server.handleCalculate"),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// coerceString normalizes JSON form values into the raw strings the validator
// consumes; the web form submits strings but API clients may send numbers.
func coerceString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprintf("%v", value)
}

func coerceBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return false
		}
		if parsed, err := strconv.ParseBool(trimmed); err == nil {
			return parsed
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case json.Number:
		if parsed, err := strconv.ParseFloat(v.String(), 64); err == nil {
			return parsed != 0
		}
	}
	return false
}
