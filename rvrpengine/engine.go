package rvrpengine

import (
	"time"

	"github.com/DmitryPl/rvrp-go/rvrpconstruct"
	"github.com/DmitryPl/rvrp-go/rvrpeval"
	"github.com/DmitryPl/rvrp-go/rvrpimprove"
	"github.com/DmitryPl/rvrp-go/rvrplog"
	"github.com/DmitryPl/rvrp-go/rvrpmatrix"
	"github.com/DmitryPl/rvrp-go/rvrpmetrics"
	"github.com/DmitryPl/rvrp-go/rvrpmodel"
	"github.com/google/uuid"
)

// Engine is the facade over one Tour: construction, insertion, and
// ruin-and-recreate improvement, all consulting the same Problem.
type Engine struct {
	Tour     *rvrpmodel.Tour
	Problem  *rvrpeval.Problem
	Improver *rvrpimprove.Improver
	Logger   *rvrplog.Logger
	Metrics  *rvrpmetrics.Collector

	routeIDs map[*rvrpmodel.Route]uuid.UUID
}

// NewEngine builds an Engine over one empty Route per courier. seed
// seeds the improver's deterministic RNG (0 selects rvrpruin's default
// seed); a nil logger/metrics collector is replaced with a no-op
// implementation.
func NewEngine(
	storages []*rvrpmodel.Storage,
	couriers []*rvrpmodel.Courier,
	matrices map[string]*rvrpmatrix.Matrix,
	startTime int64,
	circleTrack bool,
	ignorePriority bool,
	seed int64,
	logger *rvrplog.Logger,
	metrics *rvrpmetrics.Collector,
) *Engine {
	if logger == nil {
		logger = rvrplog.Noop()
	}
	if metrics == nil {
		metrics = rvrpmetrics.NewNoop()
	}

	tour := rvrpmodel.NewTour(storages, couriers, startTime, circleTrack)
	problem := rvrpeval.NewProblem(matrices)

	routeIDs := make(map[*rvrpmodel.Route]uuid.UUID, len(tour.Routes))
	for _, route := range tour.Routes {
		routeIDs[route] = uuid.New()
	}

	return &Engine{
		Tour:     tour,
		Problem:  problem,
		Improver: rvrpimprove.NewImprover(problem, ignorePriority, seed, logger, metrics),
		Logger:   logger,
		Metrics:  metrics,
		routeIDs: routeIDs,
	}
}

// RouteID returns the correlation UUID assigned to route at
// construction, and whether route belongs to this Engine's Tour.
func (e *Engine) RouteID(route *rvrpmodel.Route) (uuid.UUID, bool) {
	id, ok := e.routeIDs[route]
	return id, ok
}

// BuildTour greedily constructs every Route's Tracks from scratch.
func (e *Engine) BuildTour() error {
	builder := rvrpconstruct.NewBuilder(e.Problem)
	if err := builder.BuildTour(e.Tour); err != nil {
		e.Logger.Error("build tour failed", "err", err)
		return err
	}
	e.Logger.Info("tour built", "assigned", e.Tour.AssignedJobs(), "unassigned", e.Tour.UnassignedJobs())
	e.Metrics.SetTourJobCounts(e.Tour.AssignedJobs(), e.Tour.UnassignedJobs())
	return nil
}

// Improve runs ruin-and-recreate improvement over the current Tour.
// See rvrpimprove.Improver.Improve for parameter semantics.
func (e *Engine) Improve(workTime time.Duration, maxFails, phases int, postThreeOpt, postCross bool) {
	e.Improver.Improve(e.Tour, workTime, maxFails, phases, postThreeOpt, postCross)
}

// AddJob makes job available for insertion at storage, and resets the
// improver's phase flags and tabu set since the job set changed out
// from under any in-progress improvement.
func (e *Engine) AddJob(job *rvrpmodel.Job, storage *rvrpmodel.Storage) {
	e.Improver.SetZeros(e.Tour)
	found := e.findStorage(storage)
	if found == nil {
		return
	}
	found.ReturnUnassigned(job)
}

// AddJobs adds every job to storage.
func (e *Engine) AddJobs(jobs []*rvrpmodel.Job, storage *rvrpmodel.Storage) {
	for _, job := range jobs {
		e.AddJob(job, storage)
	}
}

// RemoveJob drops job from storage's unassigned list, or from
// whichever Track currently carries it, re-evaluating that Track's
// Route. It resets the improver's phase flags and tabu set.
func (e *Engine) RemoveJob(job *rvrpmodel.Job, storage *rvrpmodel.Storage) {
	e.Improver.SetZeros(e.Tour)
	found := e.findStorage(storage)
	if found == nil {
		return
	}
	if found.RemoveUnassigned(job) {
		return
	}

	for _, route := range e.Tour.Routes {
		for _, track := range route.Tracks {
			idx := track.IndexOf(job)
			if idx == -1 {
				continue
			}
			track.Jobs = append(track.Jobs[:idx], track.Jobs[idx+1:]...)
			if newState, err := e.Problem.Evaluate(route); err == nil {
				route.State = newState
			}
			return
		}
	}
}

// RemoveJobs removes every job from storage.
func (e *Engine) RemoveJobs(jobs []*rvrpmodel.Job, storage *rvrpmodel.Storage) {
	for _, job := range jobs {
		e.RemoveJob(job, storage)
	}
}

// AssignedJobs counts Jobs currently assigned across the Tour.
func (e *Engine) AssignedJobs() int {
	return e.Tour.AssignedJobs()
}

// UnassignedJobs counts Jobs still sitting in any Storage's unassigned list.
func (e *Engine) UnassignedJobs() int {
	return e.Tour.UnassignedJobs()
}

// GetState returns the sum of every Route's cached State.
func (e *Engine) GetState() rvrpmodel.State {
	return e.Tour.State()
}

func (e *Engine) findStorage(storage *rvrpmodel.Storage) *rvrpmodel.Storage {
	for _, s := range e.Tour.Storages {
		if s == storage || s.Name == storage.Name {
			return s
		}
	}
	return nil
}
