package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/domain/transaction"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"
)

// maxJitter spreads expirations of keys written at the same time
const maxJitter = 30 * time.Second

type cachedBookRepository struct {
	next   books.BookRepository
	store  Store
	ttl    time.Duration
	cb     *gobreaker.CircuitBreaker
	sf     singleflight.Group
	logger logger.Logger
}

// NewCachedBookRepository decorates next with cache-aside reads for GetByID.
// Store failures and an open breaker fall back to next.
func NewCachedBookRepository(next books.BookRepository, store Store, ttl time.Duration, log logger.Logger) books.BookRepository {
	st := gobreaker.Settings{
		Name:        "BookCacheBreaker",
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn(fmt.Sprintf("circuit breaker %s changed from %s to %s", name, from, to))
		},
	}

	return &cachedBookRepository{
		next:   next,
		store:  store,
		ttl:    ttl,
		cb:     gobreaker.NewCircuitBreaker(st),
		logger: log,
	}
}

func bookKey(bookID int64) string {
	return fmt.Sprintf("book:%d", bookID)
}

func (c *cachedBookRepository) GetByID(ctx context.Context, bookID int64) (*books.Book, error) {
	key := bookKey(bookID)

	val, err := c.cb.Execute(func() (interface{}, error) {
		v, found, err := c.store.Get(ctx, key)
		if err != nil || !found {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		c.logger.Warn(fmt.Sprintf("cache read for %s failed, using database: %v", key, err))
	} else if val != nil {
		var book books.Book
		if err := json.Unmarshal([]byte(val.(string)), &book); err == nil {
			return &book, nil
		}
		c.logger.Error(fmt.Sprintf("failed to decode cached %s: %v", key, err))
	}

	result, err, shared := c.sf.Do(key, func() (interface{}, error) {
		book, err := c.next.GetByID(ctx, bookID)
		if err != nil {
			return nil, err
		}
		c.write(ctx, key, book)
		return book, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("shared database load for ", key)
	}

	book := *result.(*books.Book)
	return &book, nil
}

func (c *cachedBookRepository) write(ctx context.Context, key string, book *books.Book) {
	data, err := json.Marshal(book)
	if err != nil {
		c.logger.Error(fmt.Sprintf("failed to encode %s: %v", key, err))
		return
	}
	ttl := c.ttl + time.Duration(rand.Int63n(int64(maxJitter)))
	_, err = c.cb.Execute(func() (interface{}, error) {
		return nil, c.store.Set(ctx, key, string(data), ttl)
	})
	if err != nil {
		c.logger.Warn(fmt.Sprintf("failed to write cache for %s: %v", key, err))
	}
}

// invalidate evicts the entry after the transaction carried by ctx commits.
func (c *cachedBookRepository) invalidate(ctx context.Context, bookID int64) {
	transaction.AfterCommit(ctx, func() {
		c.evict(context.WithoutCancel(ctx), bookID)
	})
}

func (c *cachedBookRepository) evict(ctx context.Context, bookID int64) {
	key := bookKey(bookID)
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.store.Delete(ctx, key)
	})
	if err != nil {
		c.logger.Warn(fmt.Sprintf("failed to invalidate %s: %v", key, err))
	}
}

func (c *cachedBookRepository) Update(ctx context.Context, book *books.Book) error {
	if err := c.next.Update(ctx, book); err != nil {
		return err
	}
	c.invalidate(ctx, book.ID)
	return nil
}

func (c *cachedBookRepository) DeleteByID(ctx context.Context, bookID int64) error {
	if err := c.next.DeleteByID(ctx, bookID); err != nil {
		return err
	}
	c.invalidate(ctx, bookID)
	return nil
}

func (c *cachedBookRepository) Create(ctx context.Context, book *books.Book) error {
	return c.next.Create(ctx, book)
}

func (c *cachedBookRepository) List(ctx context.Context, query *books.BookQuery) ([]*books.Book, error) {
	return c.next.List(ctx, query)
}

func (c *cachedBookRepository) FindByName(ctx context.Context, name string) (*books.Book, error) {
	return c.next.FindByName(ctx, name)
}

func (c *cachedBookRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	return c.next.CountByAuthor(ctx, authorID)
}
