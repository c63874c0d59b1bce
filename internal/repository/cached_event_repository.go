package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/pkg/redis"
)

const (
	// Cache key prefixes
	eventDetailKeyPrefix = "event:detail:"
	eventListKeyPrefix   = "event:list:"

	// Default TTL for event caches
	eventCacheTTL = 5 * time.Minute
)

// CachedEventRepository wraps EventRepository with Redis caching
type CachedEventRepository struct {
	repo  EventRepository
	cache *redis.Client
}

// NewCachedEventRepository creates a new CachedEventRepository
func NewCachedEventRepository(repo EventRepository, cache *redis.Client) *CachedEventRepository {
	return &CachedEventRepository{
		repo:  repo,
		cache: cache,
	}
}

// Create creates a new event and invalidates list caches
func (r *CachedEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if err := r.repo.Create(ctx, event); err != nil {
		return err
	}
	r.invalidateListCaches(ctx)
	return nil
}

// GetByID retrieves an event by ID with caching
func (r *CachedEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	cacheKey := eventDetailKeyPrefix + id
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var event domain.Event
		if err := json.Unmarshal([]byte(cached), &event); err == nil {
			return &event, nil
		}
	}

	event, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	r.cacheEvent(ctx, cacheKey, event)

	return event, nil
}

// GetByIDs retrieves events by their IDs (bypass cache)
func (r *CachedEventRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	return r.repo.GetByIDs(ctx, ids)
}

// List lists events with filters and pagination (cached only for simple queries)
func (r *CachedEventRepository) List(ctx context.Context, filter *EventFilter, limit, offset int) ([]*domain.Event, int, error) {
	// Only cache queries without per-user or search filters
	if filter == nil || (filter.OrganizerID == "" && filter.Search == "") {
		status, category := "", ""
		if filter != nil {
			status = filter.Status
			category = filter.Category
		}
		cacheKey := fmt.Sprintf("%s%s:%s:%d:%d", eventListKeyPrefix, status, category, limit, offset)
		cached, err := r.cache.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var result cachedEventList
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result.Events, result.Total, nil
			}
		}

		events, total, err := r.repo.List(ctx, filter, limit, offset)
		if err != nil {
			return nil, 0, err
		}

		r.cacheEventList(ctx, cacheKey, events, total)

		return events, total, nil
	}

	return r.repo.List(ctx, filter, limit, offset)
}

// Update updates an event and invalidates caches
func (r *CachedEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if err := r.repo.Update(ctx, event); err != nil {
		return err
	}
	r.invalidateEventCaches(ctx, event.ID)
	return nil
}

// Delete soft deletes an event and invalidates caches
func (r *CachedEventRepository) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidateEventCaches(ctx, id)
	return nil
}

// Count returns the total number of events (bypass cache)
func (r *CachedEventRepository) Count(ctx context.Context) (int64, error) {
	return r.repo.Count(ctx)
}

// --- Helper functions ---

type cachedEventList struct {
	Events []*domain.Event `json:"events"`
	Total  int             `json:"total"`
}

func (r *CachedEventRepository) cacheEvent(ctx context.Context, key string, event *domain.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	r.cache.Set(ctx, key, string(data), eventCacheTTL)
}

func (r *CachedEventRepository) cacheEventList(ctx context.Context, key string, events []*domain.Event, total int) {
	data, err := json.Marshal(cachedEventList{Events: events, Total: total})
	if err != nil {
		return
	}
	r.cache.Set(ctx, key, string(data), eventCacheTTL)
}

func (r *CachedEventRepository) invalidateEventCaches(ctx context.Context, id string) {
	r.cache.Del(ctx, eventDetailKeyPrefix+id)
	r.invalidateListCaches(ctx)
}

func (r *CachedEventRepository) invalidateListCaches(ctx context.Context) {
	// List cache keys are bounded by status, category and pagination, so a
	// short TTL plus prefix scan keeps invalidation simple
	keys, err := r.cache.Keys(ctx, eventListKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	r.cache.Del(ctx, keys...)
}
