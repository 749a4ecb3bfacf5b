package limits

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/domain"
)

// MemoryService is an in-memory Service for tests and local runs
// without a database. Same semantics as the Postgres backend, minus
// cross-process safety.
type MemoryService struct {
	config Config
	tiers  TierSource
	now    func() time.Time

	mu   sync.Mutex
	used map[string]int
}

// NewMemoryService creates a new in-memory daily limit service
func NewMemoryService(config Config, tiers TierSource) *MemoryService {
	return &MemoryService{
		config: config,
		tiers:  tiers,
		now:    time.Now,
		used:   make(map[string]int),
	}
}

func (m *MemoryService) key(userID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("%s|%s", userID, day.Format("2006-01-02"))
}

// Status returns attempts used today and the allowance
func (m *MemoryService) Status(ctx context.Context, userID uuid.UUID) (int, int, error) {
	tier, err := m.tiers.GetTier(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf(ErrMsgGetTierFailed, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.used[m.key(userID, dayOf(m.now()))], m.config.AllowanceFor(tier), nil
}

// ConsumeAttempt reserves one attempt and executes fn, rolling the
// reservation back if fn fails
func (m *MemoryService) ConsumeAttempt(ctx context.Context, userID uuid.UUID, fn func() error) error {
	if m.config.DevMode {
		return fn()
	}

	tier, err := m.tiers.GetTier(ctx, userID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetTierFailed, err)
	}
	allowed := m.config.AllowanceFor(tier)
	key := m.key(userID, dayOf(m.now()))

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.used[key] >= allowed {
		return domain.ErrNoAttemptsRemaining
	}
	m.used[key]++

	if err := fn(); err != nil {
		m.used[key]--
		return err
	}
	return nil
}
