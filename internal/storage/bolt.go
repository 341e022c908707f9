package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// BoltFile is the database filename inside the data directory.
	BoltFile = "focustasks.db"

	// boltBucket holds one key per slot.
	boltBucket = "slots"

	// boltOpenTimeout bounds the wait for the file lock held by another process.
	boltOpenTimeout = time.Second
)

// BoltSlot stores the slot value under its name in an embedded bbolt database.
type BoltSlot struct {
	db   *bolt.DB
	name string
}

// OpenBoltSlot opens (or creates) <dir>/focustasks.db.
func OpenBoltSlot(dir, name string) (*BoltSlot, error) {
	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := bolt.Open(filepath.Join(dir, BoltFile), 0600, &bolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}
	return &BoltSlot{db: db, name: name}, nil
}

func (s *BoltSlot) Name() string { return s.name }

func (s *BoltSlot) Read() ([]byte, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(boltBucket))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(s.name))
		if v == nil {
			return nil
		}
		// v is only valid for the life of the transaction.
		data = append([]byte{}, v...)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("read slot %s: %w", s.name, err)
	}
	return data, data != nil, nil
}

func (s *BoltSlot) Write(data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(s.name), data)
	})
	if err != nil {
		return fmt.Errorf("write slot %s: %w", s.name, err)
	}
	return nil
}

func (s *BoltSlot) Close() error {
	return s.db.Close()
}
