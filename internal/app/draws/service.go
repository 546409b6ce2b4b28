// Package draws assigns drawing numbers to teams within a category.
package draws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/preston-bernstein/badminton-draw-service/internal/domain/draws"
	"github.com/preston-bernstein/badminton-draw-service/internal/domain/teams"
	"github.com/preston-bernstein/badminton-draw-service/internal/logging"
	"github.com/preston-bernstein/badminton-draw-service/internal/metrics"
	"github.com/preston-bernstein/badminton-draw-service/internal/store"
)

var (
	// ErrTeamNotEligible means the team is unknown, outside the category, or already drawn.
	ErrTeamNotEligible = errors.New("team is not eligible for a drawing number")
	// ErrNumbersExhausted means every sampled number was taken. Free numbers may remain,
	// so callers should offer a retry.
	ErrNumbersExhausted = errors.New("numbers exhausted, retry")
)

// Store defines the reads and inserts the draw needs from persistence.
type Store interface {
	ListTeams(ctx context.Context) ([]teams.Team, error)
	ListAssignments(ctx context.Context) ([]draws.Assignment, error)
	AssignmentsByNumber(ctx context.Context, number int) ([]draws.Assignment, error)
	InsertAssignment(ctx context.Context, a draws.Assignment) error
}

// IntnFunc returns a uniform integer in [0, n).
type IntnFunc func(n int) int

// Service coordinates draw operations using a Store.
type Service struct {
	store   Store
	intn    IntnFunc
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		intn:    rand.Intn,
		logger:  logger,
		metrics: recorder,
	}
}

// WithRand replaces the random source; used by tests for deterministic draws.
func (s *Service) WithRand(intn IntnFunc) *Service {
	if intn != nil {
		s.intn = intn
	}
	return s
}

// Categories returns the distinct categories present in the team list.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	all, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, t := range all {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	sort.Strings(out)
	return out, nil
}

// EligibleTeams returns the teams of category that do not hold a number yet.
func (s *Service) EligibleTeams(ctx context.Context, category string) ([]teams.Team, error) {
	all, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	assigned, err := s.assignedTeamIDs(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]teams.Team, 0)
	for _, t := range teams.InCategory(all, category) {
		if _, ok := assigned[t.ID]; !ok {
			out = append(out, t)
		}
	}
	teams.SortByName(out)
	return out, nil
}

// Results lists the assignments of category ordered by number.
func (s *Service) Results(ctx context.Context, category string) ([]draws.Result, error) {
	all, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	assignments, err := s.store.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	idx := teams.ByID(all)
	out := make([]draws.Result, 0)
	for _, a := range assignments {
		t, ok := idx[a.TeamID]
		if !ok || t.Category != category {
			continue
		}
		out = append(out, draws.Result{TeamID: t.ID, TeamName: t.Name, Category: t.Category, Number: a.Number})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// Assign draws a number in [1, N] for the team, N being the team count of category,
// and persists it. Numbers are sampled with replacement at most N times; a number is
// free when no team of the same category holds it. The check and the insert are not
// atomic, so concurrent draws can still collide.
func (s *Service) Assign(ctx context.Context, category, teamID string) (draws.Result, error) {
	logger := logging.FromContext(ctx, s.logger)

	all, err := s.store.ListTeams(ctx)
	if err != nil {
		s.metrics.RecordDraw(category, metrics.OutcomeStoreFailed, 0)
		return draws.Result{}, fmt.Errorf("list teams: %w", err)
	}
	assigned, err := s.assignedTeamIDs(ctx)
	if err != nil {
		s.metrics.RecordDraw(category, metrics.OutcomeStoreFailed, 0)
		return draws.Result{}, err
	}

	idx := teams.ByID(all)
	team, ok := idx[teamID]
	if _, taken := assigned[teamID]; !ok || taken || team.Category != category {
		s.metrics.RecordDraw(category, metrics.OutcomeIneligible, 0)
		return draws.Result{}, ErrTeamNotEligible
	}

	maxNumber := len(teams.InCategory(all, category))
	number, attempts, err := s.sample(ctx, category, maxNumber, idx)
	if err != nil {
		outcome := metrics.OutcomeStoreFailed
		if errors.Is(err, ErrNumbersExhausted) {
			outcome = metrics.OutcomeExhausted
		}
		s.metrics.RecordDraw(category, outcome, attempts)
		logging.Warn(logger, "draw failed",
			logging.FieldCategory, category,
			logging.FieldTeamID, teamID,
			logging.FieldAttempts, attempts,
			"error", err,
		)
		return draws.Result{}, err
	}

	if err := s.store.InsertAssignment(ctx, draws.Assignment{TeamID: teamID, Number: number}); err != nil {
		if errors.Is(err, store.ErrDuplicateAssignment) {
			s.metrics.RecordDraw(category, metrics.OutcomeIneligible, attempts)
			return draws.Result{}, ErrTeamNotEligible
		}
		s.metrics.RecordDraw(category, metrics.OutcomeStoreFailed, attempts)
		return draws.Result{}, fmt.Errorf("save assignment: %w", err)
	}

	s.metrics.RecordDraw(category, metrics.OutcomeAssigned, attempts)
	logging.Info(logger, "drawing number assigned",
		logging.FieldCategory, category,
		logging.FieldTeamID, teamID,
		logging.FieldNumber, number,
		logging.FieldAttempts, attempts,
	)
	return draws.Result{TeamID: team.ID, TeamName: team.Name, Category: team.Category, Number: number}, nil
}

func (s *Service) sample(ctx context.Context, category string, maxNumber int, idx map[string]teams.Team) (int, int, error) {
	for attempt := 1; attempt <= maxNumber; attempt++ {
		candidate := s.intn(maxNumber) + 1

		holders, err := s.store.AssignmentsByNumber(ctx, candidate)
		if err != nil {
			return 0, attempt, fmt.Errorf("check number %d: %w", candidate, err)
		}
		if !heldInCategory(holders, idx, category) {
			return candidate, attempt, nil
		}
		logging.Debug(logging.FromContext(ctx, s.logger), "number taken, resampling",
			logging.FieldCategory, category,
			logging.FieldNumber, candidate,
			logging.FieldAttempts, attempt,
		)
	}
	return 0, maxNumber, ErrNumbersExhausted
}

func heldInCategory(holders []draws.Assignment, idx map[string]teams.Team, category string) bool {
	for _, h := range holders {
		if t, ok := idx[h.TeamID]; ok && t.Category == category {
			return true
		}
	}
	return false
}

func (s *Service) assignedTeamIDs(ctx context.Context) (map[string]struct{}, error) {
	assignments, err := s.store.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	out := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		out[a.TeamID] = struct{}{}
	}
	return out, nil
}
