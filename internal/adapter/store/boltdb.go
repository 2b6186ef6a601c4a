package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"csmap/internal/domain"
)

var (
	bucketFiles = []byte("files")
	bucketStats = []byte("stats")
	keyStats    = []byte("corpus_stats")
)

// BoltStore persists file outlines in a bbolt database, keyed by
// absolute file path.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketFiles, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) PutOutline(outline domain.FileOutline) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(outline)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketFiles).Put([]byte(outline.Path), data)
	})
}

func (s *BoltStore) GetOutline(path string) (domain.FileOutline, error) {
	var outline domain.FileOutline
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFiles).Get([]byte(path))
		if data == nil {
			return fmt.Errorf("outline not found: %s", path)
		}
		return json.Unmarshal(data, &outline)
	})
	return outline, err
}

func (s *BoltStore) DeleteOutline(path string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).Delete([]byte(path))
	})
}

func (s *BoltStore) ListOutlines() ([]domain.FileOutline, error) {
	var outlines []domain.FileOutline
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).ForEach(func(k, v []byte) error {
			var outline domain.FileOutline
			if err := json.Unmarshal(v, &outline); err != nil {
				return fmt.Errorf("corrupt outline for %s: %w", k, err)
			}
			outlines = append(outlines, outline)
			return nil
		})
	})
	return outlines, err
}

func (s *BoltStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (s *BoltStore) UpdateStats(stats domain.Stats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

// Clear drops and recreates every bucket.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketFiles, bucketStats} {
			if err := tx.DeleteBucket(b); err != nil && err != bbolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
