package app

import (
	"context"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// ComputeRolloutPlanUseCase derives a group's plan without persisting it.
type ComputeRolloutPlanUseCase interface {
	ComputeRolloutPlan(ctx context.Context, groupID string, startDate time.Time) (*domain.RolloutPlan, error)
}

type GenerateSessionsUseCase interface {
	GenerateSessions(ctx context.Context, req GenerateSessionsRequest) (*GenerateSessionsResponse, error)
}

type ProgressSnapshotUseCase interface {
	GetProgressSnapshot(ctx context.Context, studentID string, asOf *time.Time) (*domain.ProgressSnapshot, error)
}
