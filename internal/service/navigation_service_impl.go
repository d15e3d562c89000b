package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rncourse/internal/contract"
	"github.com/alexanderramin/rncourse/internal/curriculum"
	"github.com/alexanderramin/rncourse/internal/domain"
)

type navigationService struct {
	observer UseCaseObserver
}

func NewNavigationService(observers ...UseCaseObserver) NavigationService {
	return &navigationService{observer: useCaseObserverOrNoop(observers)}
}

func (s *navigationService) Resolve(ctx context.Context, path string) (page *contract.SessionPage, err error) {
	defer s.observe(ctx, "resolve", time.Now(), map[string]any{"path": path}, &err)

	id, ok := curriculum.ResolvePath(path)
	if !ok {
		return nil, fmt.Errorf("resolving %q: %w", path, domain.ErrRouteNotFound)
	}
	return buildPage(id), nil
}

func (s *navigationService) Page(ctx context.Context, id domain.SessionID) (page *contract.SessionPage, err error) {
	defer s.observe(ctx, "page", time.Now(), map[string]any{"session": id.String()}, &err)

	if !curriculum.IsValidSession(id.Day, id.Session) {
		return nil, fmt.Errorf("day %d session %d: %w", id.Day, id.Session, domain.ErrRouteNotFound)
	}
	return buildPage(id), nil
}

func (s *navigationService) Step(ctx context.Context, id domain.SessionID, dir contract.Direction) (page *contract.SessionPage, err error) {
	fields := map[string]any{"session": id.String(), "direction": dir.String()}
	defer s.observe(ctx, "step", time.Now(), fields, &err)

	step := curriculum.NextSession
	if dir == contract.Backward {
		step = curriculum.PreviousSession
	}
	target, ok := step(id.Day, id.Session)
	if !ok {
		return nil, fmt.Errorf("no %s step from %s: %w", dir, id, domain.ErrRouteNotFound)
	}
	fields["target"] = target.String()
	return buildPage(target), nil
}

func (s *navigationService) Outline(ctx context.Context) []contract.DayOutline {
	defer s.observe(ctx, "outline", time.Now(), nil, nil)

	days := curriculum.Days()
	out := make([]contract.DayOutline, 0, len(days))
	for _, d := range days {
		group := contract.DayOutline{Day: d.Number, Title: d.Title}
		for _, e := range d.Entries {
			group.Entries = append(group.Entries, contract.SessionLink{ID: e.ID, Path: e.Path, Title: e.Title})
		}
		out = append(out, group)
	}
	return out
}

func (s *navigationService) Routes(ctx context.Context) []string {
	fields := map[string]any{}
	defer s.observe(ctx, "routes", time.Now(), fields, nil)

	routes := curriculum.AllValidRoutes()
	fields["count"] = len(routes)
	return routes
}

func (s *navigationService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func buildPage(id domain.SessionID) *contract.SessionPage {
	page := &contract.SessionPage{
		ID:           id,
		Path:         curriculum.SessionPath(id.Day, id.Session),
		Title:        curriculum.SessionTitle(id.Day, id.Session),
		DayTitle:     curriculum.DayTitle(id.Day),
		SessionLabel: curriculum.SessionLabel(id.Day, id.Session),
		IsChallenge:  id.IsChallenge(),
	}
	if page.IsChallenge {
		page.Solution, _ = curriculum.ChallengeSolution(id.Day)
	}
	if prev, ok := curriculum.PreviousSession(id.Day, id.Session); ok {
		page.Previous = link(prev)
	}
	if next, ok := curriculum.NextSession(id.Day, id.Session); ok {
		page.Next = link(next)
	}
	return page
}

func link(id domain.SessionID) *contract.SessionLink {
	return &contract.SessionLink{
		ID:    id,
		Path:  curriculum.SessionPath(id.Day, id.Session),
		Title: curriculum.SessionTitle(id.Day, id.Session),
	}
}
