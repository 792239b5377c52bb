package directory

import (
	"context"
	"time"

	"github.com/atinyakov/staffdeck/internal/models"
)

// staleTime is how long a fetched collection is served without refetching.
const staleTime = 5 * time.Minute

// Cache memoizes the employee collection between fetches. A failed refresh
// surfaces the error and keeps no partial state.
type Cache struct {
	client *Client
	limit  int
	now    func() time.Time

	employees []models.Employee
	fetchedAt time.Time
}

// NewCache wraps client with a stale-time cache over List(limit).
func NewCache(client *Client, limit int) *Cache {
	return &Cache{client: client, limit: limit, now: time.Now}
}

// Employees returns the cached collection, refetching when nothing is
// cached or the cached value went stale.
func (c *Cache) Employees(ctx context.Context) ([]models.Employee, error) {
	if c.employees != nil && c.now().Sub(c.fetchedAt) < staleTime {
		return c.employees, nil
	}
	list, err := c.client.List(ctx, c.limit)
	if err != nil {
		return nil, err
	}
	c.employees = list
	c.fetchedAt = c.now()
	return list, nil
}

// Invalidate drops the cached collection so the next read refetches.
// Called after a successful employee creation.
func (c *Cache) Invalidate() {
	c.employees = nil
	c.fetchedAt = time.Time{}
}
