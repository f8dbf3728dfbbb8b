package drawing

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const drawBucketName = "drawings"

// ErrNotCached indicates no drawing is stored for the requested date
var ErrNotCached = errors.New("drawing not cached")

// Cache stores fetched drawings so repeat runs against the same date don't hit
// the website again. Only drawings are cached; ticket results never are.
type Cache interface {
	// Get retrieves the cached drawing for a date key
	Get(date string) (*DrawResult, error)

	// Put stores a drawing under a date key
	Put(date string, d *DrawResult) error

	// Close closes the cache
	Close() error
}

// BoltCache implements Cache using a bbolt file
type BoltCache struct {
	db *bbolt.DB
}

// NewBoltCache opens (or creates) a bbolt-backed drawing cache
func NewBoltCache(path string) (*BoltCache, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(drawBucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache bucket: %w", err)
	}

	return &BoltCache{db: db}, nil
}

// Get retrieves the cached drawing for a date key
func (c *BoltCache) Get(date string) (*DrawResult, error) {
	var result *DrawResult
	err := c.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(drawBucketName))
		data := bucket.Get([]byte(date))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotCached, date)
		}
		return json.Unmarshal(data, &result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Put stores a drawing under a date key
func (c *BoltCache) Put(date string, d *DrawResult) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(drawBucketName))
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("marshaling drawing: %w", err)
		}
		return bucket.Put([]byte(date), data)
	})
}

// Close closes the cache file
func (c *BoltCache) Close() error {
	return c.db.Close()
}
