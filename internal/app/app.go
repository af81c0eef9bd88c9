// Package app owns the workout and settings stores and turns them into
// view-models. Every operation runs under one lock, so each
// read-modify-persist cycle is atomic and reads see the latest write.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/activity"
	"github.com/2beens/fittrack/internal/backup"
	"github.com/2beens/fittrack/internal/dateutil"
	"github.com/2beens/fittrack/internal/history"
	"github.com/2beens/fittrack/internal/settings"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/storage"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workouts"
)

// RecentLimit is the number of workouts shown on the dashboard.
const RecentLimit = 5

var ErrInvalidMonth = errors.New("invalid month")

type App struct {
	mutex          sync.Mutex
	clock          dateutil.Clock
	workouts       *workouts.Store
	settings       *settings.Store
	metricsManager *metrics.Manager
}

// New loads both collections from adapter. Missing or corrupt documents
// start from the defaults.
func New(
	ctx context.Context,
	adapter storage.Adapter,
	clock dateutil.Clock,
	metricsManager *metrics.Manager,
) *App {
	if clock == nil {
		clock = dateutil.SystemClock{}
	}
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}

	a := &App{
		clock:          clock,
		workouts:       workouts.LoadStore(ctx, adapter),
		settings:       settings.LoadStore(ctx, adapter),
		metricsManager: metricsManager,
	}
	a.metricsManager.GaugeWorkouts.Set(float64(a.workouts.Len()))

	log.Debugf("app: loaded %d workouts", a.workouts.Len())
	return a
}

func (a *App) today() time.Time {
	return dateutil.Today(a.clock)
}

func (a *App) LogWorkout(ctx context.Context, params workouts.LogParams) (_ WorkoutView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "app.workouts.log")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	w, err := workouts.New(params, a.clock)
	if err != nil {
		return WorkoutView{}, err
	}
	span.SetAttributes(attribute.String("workout.type", w.Type))

	a.workouts.Add(ctx, w)
	a.metricsManager.CounterWorkoutsLogged.WithLabelValues(w.Type).Inc()
	a.metricsManager.GaugeWorkouts.Set(float64(a.workouts.Len()))

	log.Debugf("app: logged workout %s", w)
	return newWorkoutView(w, a.today()), nil
}

// DeleteWorkout reports whether a workout with id existed.
func (a *App) DeleteWorkout(ctx context.Context, id string) bool {
	ctx, span := tracing.GlobalTracer.Start(ctx, "app.workouts.delete")
	defer span.End()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	removed := a.workouts.Remove(ctx, id)
	span.SetAttributes(attribute.Bool("workout.removed", removed))
	if removed {
		a.metricsManager.CounterWorkoutsDeleted.Inc()
		a.metricsManager.GaugeWorkouts.Set(float64(a.workouts.Len()))
	}
	return removed
}

// Workouts lists every workout, most recent first.
func (a *App) Workouts(ctx context.Context) []WorkoutView {
	_, span := tracing.GlobalTracer.Start(ctx, "app.workouts.list")
	defer span.End()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	ws := a.workouts.List()
	return newWorkoutViews(stats.Recent(ws, len(ws)), a.today())
}

func (a *App) Dashboard(ctx context.Context) Dashboard {
	_, span := tracing.GlobalTracer.Start(ctx, "app.dashboard")
	defer span.End()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	ws := a.workouts.List()
	today := a.today()

	breakdown := stats.TypeBreakdown(ws)
	breakdownViews := make([]BreakdownView, 0, len(breakdown))
	for _, row := range breakdown {
		breakdownViews = append(breakdownViews, BreakdownView{
			BreakdownRow: row,
			Activity:     activity.Lookup(row.Type).Meta,
		})
	}

	return Dashboard{
		Today:     dateutil.Format(today),
		Summary:   stats.Summarize(ws, today),
		WeekStrip: stats.WeekStrip(ws, today),
		Calendar:  calendarView(ws, today.Year(), today.Month(), today),
		Breakdown: breakdownViews,
		Recent:    newWorkoutViews(stats.Recent(ws, RecentLimit), today),
	}
}

// Calendar renders the month grid for year / month (1-12).
func (a *App) Calendar(ctx context.Context, year, month int) (_ CalendarView, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "app.calendar")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if month < 1 || month > 12 {
		return CalendarView{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if year < 1 || year > 9999 {
		return CalendarView{}, fmt.Errorf("%w: year %d", ErrInvalidMonth, year)
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	return calendarView(a.workouts.List(), year, time.Month(month), a.today()), nil
}

func calendarView(ws []workouts.Workout, year int, month time.Month, today time.Time) CalendarView {
	days := stats.CalendarMonth(ws, year, month, today)

	legendTypes := stats.LegendTypes(days)
	legend := make([]LegendItem, 0, len(legendTypes))
	for _, t := range legendTypes {
		legend = append(legend, LegendItem{
			Type:     t,
			Activity: activity.Lookup(t).Meta,
		})
	}

	prevYear, prevMonth := dateutil.ShiftMonth(year, month, -1)
	nextYear, nextMonth := dateutil.ShiftMonth(year, month, 1)

	return CalendarView{
		Year:   year,
		Month:  int(month),
		Title:  dateutil.MonthTitle(year, month),
		Days:   days,
		Legend: legend,
		Prev:   MonthRef{Year: prevYear, Month: int(prevMonth)},
		Next:   MonthRef{Year: nextYear, Month: int(nextMonth)},
	}
}

func (a *App) History(ctx context.Context, filter history.Filter) (_ HistoryView, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "app.history")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	today := a.today()
	res, err := history.Query(a.workouts.List(), a.settings.Get(), filter, today)
	if err != nil {
		return HistoryView{}, err
	}

	groups := make([]HistoryGroup, 0, len(res.Groups))
	for _, g := range res.Groups {
		groups = append(groups, HistoryGroup{
			Label:    g.Label,
			Date:     g.Date,
			Workouts: newWorkoutViews(g.Workouts, today),
		})
	}

	typeOptions := make([]TypeOption, 0, len(res.TypeOptions))
	for _, t := range res.TypeOptions {
		label := "All"
		if t != history.TypeAll {
			label = activity.Lookup(t).Label
		}
		typeOptions = append(typeOptions, TypeOption{ID: t, Label: label})
	}

	view := HistoryView{
		Time:          string(filter.Time),
		Type:          filter.Type,
		Groups:        groups,
		TotalSessions: res.TotalSessions,
		UniqueDays:    res.UniqueDays,
		TypeOptions:   typeOptions,
	}
	if view.Time == "" {
		view.Time = history.TimeAll.String()
	}
	if view.Type == "" {
		view.Type = history.TypeAll
	}
	return view, nil
}

func (a *App) LogOptions(ctx context.Context) LogOptions {
	_, span := tracing.GlobalTracer.Start(ctx, "app.log_options")
	defer span.End()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	s := a.settings.Get()
	catalog := s.Catalog()
	options := make([]ActivityOption, 0, len(catalog))
	for _, id := range catalog {
		options = append(options, newActivityOption(id))
	}

	return LogOptions{
		Today:      dateutil.Format(a.today()),
		Activities: options,
		GymSplits:  s.GymSplits,
	}
}

func (a *App) Settings(ctx context.Context) SettingsView {
	_, span := tracing.GlobalTracer.Start(ctx, "app.settings")
	defer span.End()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.settingsView()
}

func (a *App) settingsView() SettingsView {
	s := a.settings.Get()

	splits := make([]IndexedSplit, 0, len(s.GymSplits))
	for i, name := range s.GymSplits {
		splits = append(splits, IndexedSplit{Index: i, Name: name})
	}

	builtins := make([]ActivityOption, 0, len(s.Activities)+1)
	builtins = append(builtins, newActivityOption(activity.Gym))
	for _, id := range s.Activities {
		builtins = append(builtins, newActivityOption(id))
	}

	custom := make([]IndexedActivity, 0, len(s.CustomActivities))
	for i, id := range s.CustomActivities {
		custom = append(custom, IndexedActivity{Index: i, ActivityOption: newActivityOption(id)})
	}

	return SettingsView{
		GymSplits:         splits,
		BuiltinActivities: builtins,
		CustomActivities:  custom,
		TotalWorkouts:     a.workouts.Len(),
	}
}

func (a *App) AddGymSplit(ctx context.Context, name string) (_ SettingsView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "app.settings.add_split")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if err := a.settings.AddGymSplit(ctx, name); err != nil {
		return SettingsView{}, err
	}
	return a.settingsView(), nil
}

func (a *App) RemoveGymSplit(ctx context.Context, index int) (_ SettingsView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "app.settings.remove_split")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if err := a.settings.RemoveGymSplit(ctx, index); err != nil {
		return SettingsView{}, err
	}
	return a.settingsView(), nil
}

func (a *App) AddCustomActivity(ctx context.Context, name string) (_ SettingsView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "app.settings.add_activity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if _, err := a.settings.AddCustomActivity(ctx, name); err != nil {
		return SettingsView{}, err
	}
	return a.settingsView(), nil
}

func (a *App) RemoveCustomActivity(ctx context.Context, index int) (_ SettingsView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "app.settings.remove_activity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if err := a.settings.RemoveCustomActivity(ctx, index); err != nil {
		return SettingsView{}, err
	}
	return a.settingsView(), nil
}

// Export returns the backup document and its suggested file name.
func (a *App) Export(ctx context.Context) (_ []byte, fileName string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "app.backup.export")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	data, err := backup.Export(backup.Snapshot{
		Workouts: a.workouts.List(),
		Settings: a.settings.Get(),
	})
	if err != nil {
		return nil, "", err
	}
	return data, backup.FileName(a.today()), nil
}

// Import replaces the workouts and / or settings present in data. A file
// that fails to parse or validate changes nothing.
func (a *App) Import(ctx context.Context, data []byte) (_ ImportResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "app.backup.import")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	imp, err := backup.Parse(data)
	if err != nil {
		a.metricsManager.CounterImports.WithLabelValues("rejected").Inc()
		return ImportResult{}, err
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	var res ImportResult
	if imp.HasWorkouts() {
		a.workouts.ReplaceAll(ctx, imp.Workouts)
		a.metricsManager.GaugeWorkouts.Set(float64(a.workouts.Len()))
		res.WorkoutsReplaced = true
	}
	if imp.HasSettings() {
		a.settings.ReplaceAll(ctx, *imp.Settings)
		res.SettingsReplaced = true
	}
	res.WorkoutsCount = a.workouts.Len()

	a.metricsManager.CounterImports.WithLabelValues("ok").Inc()
	log.Infof("app: import done, workouts replaced: %t, settings replaced: %t", res.WorkoutsReplaced, res.SettingsReplaced)
	return res, nil
}

// ClearAll drops every workout and resets the settings to defaults.
func (a *App) ClearAll(ctx context.Context) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "app.clear")
	defer span.End()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.workouts.ReplaceAll(ctx, nil)
	a.settings.ReplaceAll(ctx, settings.Partial{})
	a.metricsManager.GaugeWorkouts.Set(0)
	log.Warnln("app: all data cleared")
}
