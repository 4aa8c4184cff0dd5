package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/relayworks/actuator-agent/internal/entities"
)

const (
	sinkName = "journal"
)

var (
	keyPrefix = []byte("event:")
)

// Service keeps a bounded journal of notification events for the /events view.
// It journals notifications only; actuator state is never restored from disk.
type Service struct {
	db             *badger.DB
	retentionLimit int
}

func NewService(db *badger.DB, retentionLimit int) *Service {
	return &Service{
		db:             db,
		retentionLimit: retentionLimit,
	}
}

func (s *Service) Append(event entities.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("Append: %w", err)
	}

	key := fmt.Sprintf("%s%020d", keyPrefix, event.Timestamp.UnixNano())
	if err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), body)
	}); err != nil {
		return fmt.Errorf("Append: %w", err)
	}

	if err = s.trim(); err != nil {
		return fmt.Errorf("Append: %w", err)
	}

	return nil
}

// Recent returns up to limit events, newest first.
func (s *Service) Recent(limit int) (events []entities.NotificationEvent, err error) {
	if err = s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true

		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, keyPrefix...), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(keyPrefix) && len(events) < limit; it.Next() {
			var event entities.NotificationEvent
			if valErr := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &event)
			}); valErr != nil {
				return valErr
			}

			events = append(events, event)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("Recent: %w", err)
	}

	return events, nil
}

// trim deletes the oldest entries above the retention limit.
func (s *Service) trim() error {
	return s.db.Update(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false

		it := txn.NewIterator(options)

		var keys [][]byte
		for it.Seek(keyPrefix); it.ValidForPrefix(keyPrefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		if len(keys) <= s.retentionLimit {
			return nil
		}

		for _, key := range keys[:len(keys)-s.retentionLimit] {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *Service) Name() string {
	return sinkName
}

func (s *Service) Deliver(_ context.Context, event entities.NotificationEvent) error {
	if err := s.Append(event); err != nil {
		return fmt.Errorf("Deliver: %w", err)
	}

	return nil
}
