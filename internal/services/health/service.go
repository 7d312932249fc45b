package health

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

const (
	// ServiceName identifies this service in health and info payloads
	ServiceName = "Medical AI Service"
	// Version is the reported service version
	Version = "1.0.0"
)

// Prober is the reachability capability used to probe the remote model
type Prober interface {
	CheckReachable(ctx context.Context) bool
}

// Status reports process liveness and remote reachability
type Status struct {
	Status          string `json:"status"`
	Service         string `json:"service"`
	Version         string `json:"version"`
	GradioSpace     string `json:"gradio_space"`
	RemoteReachable bool   `json:"remote_reachable"`
	Timestamp       string `json:"timestamp"`
}

type Service struct {
	mu     sync.RWMutex
	prober Prober
	space  string
}

func NewService(prober Prober, space string) *Service {
	return &Service{
		mu:     sync.RWMutex{},
		prober: prober,
		space:  space,
	}
}

// CheckHealth probes the remote model and reports a status record. It never
// returns an error; an unreachable remote degrades the status instead.
func (s *Service) CheckHealth(ctx context.Context) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reachable := s.prober != nil && s.prober.CheckReachable(ctx)

	status := StatusHealthy
	if !reachable {
		status = StatusDegraded
		log.Warn().Str("space", s.space).Msg("Remote model unreachable - reporting degraded")
	}

	return Status{
		Status:          status,
		Service:         ServiceName,
		Version:         Version,
		GradioSpace:     s.space,
		RemoteReachable: reachable,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
}
