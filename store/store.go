// Package store persists the timer state and the history of completed
// sessions in a Bolt database
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomodoro/internal/apperr"
	"github.com/ayoisaiah/pomodoro/internal/timeutil"
)

const (
	stateBucket   = "state"
	sessionBucket = "sessions"
)

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is pomodoro already running? Only one instance can own the timer at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open database at %s",
	}
)

// IsLocked reports whether err means the database is held by another
// process.
func IsLocked(err error) bool {
	return errors.Is(err, errAlreadyRunning)
}

// Values is the flat key/value representation of persisted fields. Each
// value is JSON encoded.
type Values map[string]json.RawMessage

// KV is the key/value persistence used by the timer engine. Load returns only
// the keys that have been saved; Save writes the provided keys and leaves
// the others untouched.
type KV interface {
	Load(ctx context.Context) (Values, error)
	Save(ctx context.Context, vals Values) error
}

// SessionRecord is a phase whose countdown ran to completion.
type SessionRecord struct {
	CompletedAt time.Time `json:"completed_at"`
	Phase       string    `json:"phase"`
	Session     int       `json:"session"`
	Minutes     int       `json:"minutes"`
}

// History stores completed sessions.
type History interface {
	AppendSession(ctx context.Context, rec SessionRecord) error
	// Sessions returns the records completed within [since, until] in
	// chronological order. A zero until means no upper bound.
	Sessions(ctx context.Context, since, until time.Time) ([]SessionRecord, error)
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// Load reads every persisted timer key.
func (c *Client) Load(ctx context.Context) (Values, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vals := make(Values)

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).ForEach(func(k, v []byte) error {
			// bolt values are only valid for the life of the transaction
			vals[string(k)] = bytes.Clone(v)

			return nil
		})
	})

	return vals, err
}

// Save writes the provided keys in a single transaction.
func (c *Client) Save(ctx context.Context, vals Values) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(stateBucket))

		for k, v := range vals {
			if err := b.Put([]byte(k), v); err != nil {
				return err
			}
		}

		return nil
	})
}

// AppendSession stores a completed session keyed by its completion time.
func (c *Client) AppendSession(ctx context.Context, rec SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put(
			timeutil.ToKey(rec.CompletedAt),
			value,
		)
	})
}

// Sessions returns the completed sessions within the given bounds.
func (c *Client) Sessions(
	ctx context.Context,
	since, until time.Time,
) ([]SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []SessionRecord

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		lower := timeutil.ToKey(since)

		var upper []byte
		if !until.IsZero() {
			upper = timeutil.ToKey(until)
		}

		for k, v := cur.Seek(lower); k != nil; k, v = cur.Next() {
			if upper != nil && bytes.Compare(k, upper) > 0 {
				break
			}

			var rec SessionRecord

			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}

			records = append(records, rec)
		}

		return nil
	})

	return records, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// the file lock is held by another process until Timeout expires
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, errOpenDB.Fmt(pathToDB).Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{stateBucket, sessionBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Client{
		db,
	}, nil
}
