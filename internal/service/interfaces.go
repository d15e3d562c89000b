package service

import (
	"context"

	"github.com/alexanderramin/rncourse/internal/contract"
	"github.com/alexanderramin/rncourse/internal/domain"
)

type NavigationService interface {
	Resolve(ctx context.Context, path string) (*contract.SessionPage, error)
	Page(ctx context.Context, id domain.SessionID) (*contract.SessionPage, error)
	Step(ctx context.Context, id domain.SessionID, dir contract.Direction) (*contract.SessionPage, error)
	Outline(ctx context.Context) []contract.DayOutline
	Routes(ctx context.Context) []string
}
