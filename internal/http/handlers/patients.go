package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/brsaude/patient-intake/internal/observability/metrics"
	"github.com/brsaude/patient-intake/internal/patients"
	"github.com/brsaude/patient-intake/internal/storage"
	"github.com/brsaude/patient-intake/pkg/logging"
)

// PatientsHandler serves the form write path, the form read path, and
// the administrative CSV export.
type PatientsHandler struct {
	repo    storage.Repository
	logger  *logging.Logger
	metrics *metrics.IntakeMetrics

	// mu serializes the load-mutate-save cycle within this process.
	// Concurrent writers in other processes against the same backend
	// still race (last save wins); see the Repository contract.
	mu sync.Mutex
}

// NewPatientsHandler creates a handler over the given repository.
// metrics may be nil.
func NewPatientsHandler(repo storage.Repository, logger *logging.Logger, m *metrics.IntakeMetrics) *PatientsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &PatientsHandler{repo: repo, logger: logger, metrics: m}
}

type submitResponse struct {
	OK     bool            `json:"ok"`
	Action patients.Action `json:"action"`
	Row    int             `json:"row"`
}

type listResponse struct {
	OK       bool               `json:"ok"`
	Patients []patients.Patient `json:"patients"`
}

// Submit handles POST /api/patients: normalize, upsert, persist.
func (h *PatientsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req patients.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	rec, err := patients.Normalize(req)
	if err != nil {
		// Validation failures are the caller's problem, not a server
		// fault; they are counted but not logged as errors.
		h.metrics.ObserveSubmission("", "rejected")
		status := http.StatusInternalServerError
		if patients.IsValidationError(err) {
			status = http.StatusBadRequest
		}
		jsonError(w, err.Error(), status)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set, err := h.timedLoad(r)
	if err != nil {
		h.storageError(w, err, "load patients")
		return
	}

	out := patients.Upsert(&set, rec)

	start := time.Now()
	if err := h.repo.Save(r.Context(), set); err != nil {
		h.storageError(w, err, "save patients")
		return
	}
	h.metrics.ObserveStorageLatency("save", time.Since(start).Seconds())

	h.logger.Info("patient upserted",
		"action", out.Action,
		"row", out.Row,
		"has_national_id", rec.NationalID != "",
	)
	h.metrics.ObserveSubmission(string(out.Action), "ok")
	writeJSON(w, http.StatusOK, submitResponse{OK: true, Action: out.Action, Row: out.Row})
}

// List handles GET /api/patients: the full record set as JSON.
func (h *PatientsHandler) List(w http.ResponseWriter, r *http.Request) {
	set, err := h.timedLoad(r)
	if err != nil {
		h.storageError(w, err, "load patients")
		return
	}
	writeJSON(w, http.StatusOK, listResponse{OK: true, Patients: set})
}

// ExportCSV handles GET /api/patients/export: the record set rendered
// as a CSV attachment.
func (h *PatientsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	set, err := h.timedLoad(r)
	if err != nil {
		h.storageError(w, err, "load patients")
		return
	}

	h.metrics.ObserveExport()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="patients.csv"`)
	_, _ = w.Write([]byte(patients.ToCSV(set)))
}

func (h *PatientsHandler) timedLoad(r *http.Request) ([]patients.Patient, error) {
	start := time.Now()
	set, err := h.repo.Load(r.Context())
	if err != nil {
		return nil, err
	}
	h.metrics.ObserveStorageLatency("load", time.Since(start).Seconds())
	if set == nil {
		set = []patients.Patient{}
	}
	return set, nil
}

func (h *PatientsHandler) storageError(w http.ResponseWriter, err error, op string) {
	h.logger.Error("storage failure", "op", op, "error", err)
	var cfgErr *storage.ConfigError
	if errors.As(err, &cfgErr) {
		jsonError(w, cfgErr.Error(), http.StatusInternalServerError)
		return
	}
	jsonError(w, "storage unavailable", http.StatusInternalServerError)
}
