package app

import (
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

type GroupProgressResponse struct {
	GroupID   string
	AsOf      time.Time
	Snapshots []domain.ProgressSnapshot
	Counts    map[domain.Classification]int
}
