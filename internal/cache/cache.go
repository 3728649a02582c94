// Package cache stores the last generated insights per client.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"
)

// Store persists insight cache entries keyed by client id. Get returns nil for a missing entry.
type Store interface {
	Get(ctx context.Context, clientID string) (*models.CacheEntry, error)
	Put(ctx context.Context, entry *models.CacheEntry) error
	Delete(ctx context.Context, clientID string) error
	ListClientIDs(ctx context.Context) ([]string, error)
}

// InsightRepository is the subset of the repository backing the SQL store
type InsightRepository interface {
	GetInsights(ctx context.Context, clientID string) (*models.CacheEntry, error)
	UpsertInsights(ctx context.Context, entry *models.CacheEntry) error
	DeleteInsights(ctx context.Context, clientID string) error
	ListInsightClientIDs(ctx context.Context) ([]string, error)
}

// SQLStore adapts the repository's ai_insights table to Store
type SQLStore struct {
	repo InsightRepository
}

// NewSQLStore wraps the repository
func NewSQLStore(repo InsightRepository) *SQLStore {
	return &SQLStore{repo: repo}
}

func (s *SQLStore) Get(ctx context.Context, clientID string) (*models.CacheEntry, error) {
	return s.repo.GetInsights(ctx, clientID)
}

func (s *SQLStore) Put(ctx context.Context, entry *models.CacheEntry) error {
	return s.repo.UpsertInsights(ctx, entry)
}

func (s *SQLStore) Delete(ctx context.Context, clientID string) error {
	return s.repo.DeleteInsights(ctx, clientID)
}

func (s *SQLStore) ListClientIDs(ctx context.Context) ([]string, error) {
	return s.repo.ListInsightClientIDs(ctx)
}

// Layered keeps recently used entries in memory in front of a durable store
type Layered struct {
	hot     *ristretto.Cache
	backing Store
	ttl     time.Duration
	log     *logrus.Logger
}

// NewLayered creates a read-through, write-through cache over backing
func NewLayered(backing Store, ttl time.Duration, log *logrus.Logger) (*Layered, error) {
	hot, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1e4,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create hot cache: %w", err)
	}
	return &Layered{hot: hot, backing: backing, ttl: ttl, log: log}, nil
}

func (l *Layered) Get(ctx context.Context, clientID string) (*models.CacheEntry, error) {
	if v, ok := l.hot.Get(clientID); ok {
		entry := v.(models.CacheEntry)
		return cloneEntry(&entry), nil
	}

	entry, err := l.backing.Get(ctx, clientID)
	if err != nil || entry == nil {
		return entry, err
	}
	l.remember(entry)
	return entry, nil
}

func (l *Layered) Put(ctx context.Context, entry *models.CacheEntry) error {
	if err := l.backing.Put(ctx, entry); err != nil {
		l.hot.Del(entry.ClientID)
		return err
	}
	l.remember(entry)
	return nil
}

func (l *Layered) Delete(ctx context.Context, clientID string) error {
	l.hot.Del(clientID)
	return l.backing.Delete(ctx, clientID)
}

func (l *Layered) ListClientIDs(ctx context.Context) ([]string, error) {
	return l.backing.ListClientIDs(ctx)
}

// remember stores a copy so callers cannot mutate the cached value
func (l *Layered) remember(entry *models.CacheEntry) {
	if !l.hot.SetWithTTL(entry.ClientID, *cloneEntry(entry), 1, l.ttl) {
		l.log.Debugf("Hot cache dropped entry for client %s", entry.ClientID)
	}
	l.hot.Wait()
}

// cloneEntry copies the insight slices, categories included
func cloneEntry(entry *models.CacheEntry) *models.CacheEntry {
	cp := *entry
	if entry.Insights != nil {
		cp.Insights = make([]models.Insight, len(entry.Insights))
		for i, in := range entry.Insights {
			if in.Categories != nil {
				in.Categories = append([]string(nil), in.Categories...)
			}
			cp.Insights[i] = in
		}
	}
	return &cp
}

// Close releases the hot cache
func (l *Layered) Close() {
	l.hot.Close()
}
