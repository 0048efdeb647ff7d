package repository

import (
	"sync"
	"time"
)

// collection is an id-keyed in-memory table. Ids start at 1, are never reused
// and rows are listed in insertion order.
type collection[T any] struct {
	mu     sync.RWMutex
	rows   map[int]T
	order  []int
	nextID int
	last   time.Time
	clock  func() time.Time
}

func newCollection[T any](clock func() time.Time) *collection[T] {
	return &collection[T]{
		rows:   map[int]T{},
		nextID: 1,
		clock:  clock,
	}
}

func (c *collection[T]) get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	row, ok := c.rows[id]

	return row, ok
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows := make([]T, 0, len(c.order))
	for _, id := range c.order {
		rows = append(rows, c.rows[id])
	}

	return rows
}

// insert assigns the next id and a creation time that never goes backwards,
// then stores whatever build returns.
func (c *collection[T]) insert(build func(id int, createdAt time.Time) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	now := c.clock()
	if now.Before(c.last) {
		now = c.last
	}

	c.last = now

	row := build(id, now)
	c.rows[id] = row
	c.order = append(c.order, id)

	return row
}

func (c *collection[T]) seed(rows []T, setID func(row *T, id int)) {
	for _, row := range rows {
		c.insert(func(id int, _ time.Time) T {
			setID(&row, id)

			return row
		})
	}
}
