package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/app"
	"github.com/2beens/fittrack/internal/backup"
	"github.com/2beens/fittrack/internal/history"
	"github.com/2beens/fittrack/internal/settings"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=api_test

// MaxImportSize caps the size of an uploaded backup file.
const MaxImportSize = 10 << 20

type fitTracker interface {
	Dashboard(ctx context.Context) app.Dashboard
	Calendar(ctx context.Context, year, month int) (app.CalendarView, error)
	History(ctx context.Context, filter history.Filter) (app.HistoryView, error)
	Workouts(ctx context.Context) []app.WorkoutView
	LogWorkout(ctx context.Context, params workouts.LogParams) (app.WorkoutView, error)
	DeleteWorkout(ctx context.Context, id string) bool
	LogOptions(ctx context.Context) app.LogOptions
	Settings(ctx context.Context) app.SettingsView
	AddGymSplit(ctx context.Context, name string) (app.SettingsView, error)
	RemoveGymSplit(ctx context.Context, index int) (app.SettingsView, error)
	AddCustomActivity(ctx context.Context, name string) (app.SettingsView, error)
	RemoveCustomActivity(ctx context.Context, index int) (app.SettingsView, error)
	Export(ctx context.Context) ([]byte, string, error)
	Import(ctx context.Context, data []byte) (app.ImportResult, error)
	ClearAll(ctx context.Context)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type RemoveWorkoutResponse struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

type RemoveSettingResponse struct {
	Removed  bool             `json:"removed"`
	Settings app.SettingsView `json:"settings"`
}

type ClearResponse struct {
	Cleared bool `json:"cleared"`
}

type NameRequest struct {
	Name string `json:"name"`
}

type Handler struct {
	app fitTracker
}

func NewHandler(app fitTracker) *Handler {
	return &Handler{
		app: app,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	r.HandleFunc("/calendar/{year}/{month}", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("calendar")
	r.HandleFunc("/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("history")

	r.HandleFunc("/workouts", handler.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", handler.HandleLogWorkout).Methods("POST", "OPTIONS").Name("log-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/log/options", handler.HandleLogOptions).Methods("GET", "OPTIONS").Name("log-options")

	r.HandleFunc("/settings", handler.HandleSettings).Methods("GET", "OPTIONS").Name("settings")
	r.HandleFunc("/settings/splits", handler.HandleAddGymSplit).Methods("POST", "OPTIONS").Name("add-split")
	r.HandleFunc("/settings/splits/{index}", handler.HandleRemoveGymSplit).Methods("DELETE", "OPTIONS").Name("remove-split")
	r.HandleFunc("/settings/activities", handler.HandleAddCustomActivity).Methods("POST", "OPTIONS").Name("add-activity")
	r.HandleFunc("/settings/activities/{index}", handler.HandleRemoveCustomActivity).Methods("DELETE", "OPTIONS").Name("remove-activity")

	r.HandleFunc("/backup/export", handler.HandleExport).Methods("GET", "OPTIONS").Name("export")
	r.HandleFunc("/backup/import", handler.HandleImport).Methods("POST", "OPTIONS").Name("import")
	r.HandleFunc("/data", handler.HandleClearAll).Methods("DELETE", "OPTIONS").Name("clear-all")
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard")
	defer span.End()

	pkg.WriteJSON(w, handler.app.Dashboard(ctx), http.StatusOK)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar")
	defer span.End()

	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		writeError(w, "error, year NaN", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		writeError(w, "error, month NaN", http.StatusBadRequest)
		return
	}

	cal, err := handler.app.Calendar(ctx, year, month)
	if err != nil {
		handleAppError(w, "get calendar", err)
		return
	}
	pkg.WriteJSON(w, cal, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history")
	defer span.End()

	query := r.URL.Query()
	filter := history.Filter{
		Time: history.TimeFilter(strings.ToLower(query.Get("time"))),
		Type: query.Get("type"),
	}

	view, err := handler.app.History(ctx, filter)
	if err != nil {
		handleAppError(w, "query history", err)
		return
	}
	pkg.WriteJSON(w, view, http.StatusOK)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	pkg.WriteJSON(w, handler.app.Workouts(ctx), http.StatusOK)
}

func (handler *Handler) HandleLogWorkout(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.log")
	defer span.End()

	var params workouts.LogParams
	if !decodeJSONBody(w, r, &params) {
		return
	}

	logged, err := handler.app.LogWorkout(ctx, params)
	if err != nil {
		handleAppError(w, "log workout", err)
		return
	}

	log.Debugf("new workout logged: %s", logged.Workout)
	pkg.WriteJSON(w, logged, http.StatusCreated)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, "error, id empty", http.StatusBadRequest)
		return
	}

	removed := handler.app.DeleteWorkout(ctx, id)
	pkg.WriteJSON(w, RemoveWorkoutResponse{ID: id, Removed: removed}, http.StatusOK)
}

func (handler *Handler) HandleLogOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.log_options")
	defer span.End()

	pkg.WriteJSON(w, handler.app.LogOptions(ctx), http.StatusOK)
}

func (handler *Handler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings")
	defer span.End()

	pkg.WriteJSON(w, handler.app.Settings(ctx), http.StatusOK)
}

func (handler *Handler) HandleAddGymSplit(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.add_split")
	defer span.End()

	var req NameRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	view, err := handler.app.AddGymSplit(ctx, req.Name)
	if err != nil {
		handleAppError(w, "add gym split", err)
		return
	}
	pkg.WriteJSON(w, view, http.StatusCreated)
}

func (handler *Handler) HandleRemoveGymSplit(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.remove_split")
	defer span.End()

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, "error, index NaN", http.StatusBadRequest)
		return
	}

	view, err := handler.app.RemoveGymSplit(ctx, index)
	handler.writeRemoveSettingResponse(ctx, w, "remove gym split", view, err)
}

func (handler *Handler) HandleAddCustomActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.add_activity")
	defer span.End()

	var req NameRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	view, err := handler.app.AddCustomActivity(ctx, req.Name)
	if err != nil {
		handleAppError(w, "add custom activity", err)
		return
	}
	pkg.WriteJSON(w, view, http.StatusCreated)
}

func (handler *Handler) HandleRemoveCustomActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.remove_activity")
	defer span.End()

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, "error, index NaN", http.StatusBadRequest)
		return
	}

	view, err := handler.app.RemoveCustomActivity(ctx, index)
	handler.writeRemoveSettingResponse(ctx, w, "remove custom activity", view, err)
}

// writeRemoveSettingResponse treats a stale index as a no-op, not a failure.
func (handler *Handler) writeRemoveSettingResponse(
	ctx context.Context,
	w http.ResponseWriter,
	op string,
	view app.SettingsView,
	err error,
) {
	switch {
	case err == nil:
		pkg.WriteJSON(w, RemoveSettingResponse{Removed: true, Settings: view}, http.StatusOK)
	case errors.Is(err, settings.ErrIndexOutOfRange):
		log.Debugf("%s: %s", op, err)
		pkg.WriteJSON(w, RemoveSettingResponse{Removed: false, Settings: handler.app.Settings(ctx)}, http.StatusOK)
	default:
		handleAppError(w, op, err)
	}
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.backup.export")
	defer span.End()

	data, fileName, err := handler.app.Export(ctx)
	if err != nil {
		handleAppError(w, "export", err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	pkg.WriteResponseBytesOK(w, backup.ContentType, data)
}

func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.backup.import")
	defer span.End()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxImportSize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, "error, backup file too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Errorf("import, read body: %s", err)
		writeError(w, "error, failed to read backup file", http.StatusBadRequest)
		return
	}

	res, err := handler.app.Import(ctx, data)
	if err != nil {
		handleAppError(w, "import", err)
		return
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (handler *Handler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clear_all")
	defer span.End()

	handler.app.ClearAll(ctx)
	pkg.WriteJSON(w, ClearResponse{Cleared: true}, http.StatusOK)
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		writeError(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("unmarshal json body: %s", err)
		writeError(w, "error, invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}

func isValidationError(err error) bool {
	for _, target := range []error{
		workouts.ErrMissingType,
		workouts.ErrMissingSplit,
		workouts.ErrInvalidDate,
		settings.ErrEmptyName,
		settings.ErrDuplicate,
		settings.ErrIndexOutOfRange,
		history.ErrInvalidTimeFilter,
		backup.ErrMalformedImport,
		app.ErrInvalidMonth,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func handleAppError(w http.ResponseWriter, op string, err error) {
	if isValidationError(err) {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("%s: %s", op, err)
	writeError(w, "error, "+op+" failed", http.StatusInternalServerError)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	pkg.WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}
