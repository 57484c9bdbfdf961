package redis

import (
	"context"
	"time"
)

// GPACache implements enrollment.GPACache using the generic Redis Cache.
type GPACache struct {
	cache *Cache
}

// NewGPACache creates a new GPACache.
func NewGPACache(cache *Cache) *GPACache {
	return &GPACache{cache: cache}
}

// cachedGPA is the stored representation of a GPA value.
type cachedGPA struct {
	GPA        float64   `json:"gpa"`
	ComputedAt time.Time `json:"computed_at"`
}

// GetGPA gets a cached GPA. Returns ErrCacheMiss when absent.
func (g *GPACache) GetGPA(ctx context.Context, studentID string) (float64, error) {
	var v cachedGPA
	if err := g.cache.Get(ctx, GPAKey(studentID), &v); err != nil {
		return 0, err
	}
	return v.GPA, nil
}

// SetGPA caches a computed GPA with the given TTL.
func (g *GPACache) SetGPA(ctx context.Context, studentID string, gpa float64, ttl time.Duration) error {
	v := cachedGPA{
		GPA:        gpa,
		ComputedAt: time.Now().UTC(),
	}
	return g.cache.Set(ctx, GPAKey(studentID), v, ttl)
}

// Invalidate drops the cached GPA for a student.
func (g *GPACache) Invalidate(ctx context.Context, studentID string) error {
	return g.cache.Delete(ctx, GPAKey(studentID))
}
