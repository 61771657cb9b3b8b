package repositories

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"potluck/domain"
)

const itemKeyPrefix = "item:"

type BadgerBackend struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerBackend(db *badger.DB, log *slog.Logger) BadgerBackend {
	return BadgerBackend{db: db, log: log}
}

func itemKey(id string) []byte {
	return []byte(itemKeyPrefix + id)
}

// LoadAll scans every document under the item prefix.
func (b BadgerBackend) LoadAll(_ context.Context) ([]domain.Item, error) {
	var items []domain.Item
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(itemKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var item domain.Item
				if err := json.Unmarshal(value, &item); err != nil {
					return err
				}
				items = append(items, item)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Flush reconciles the collection with the in-memory state inside a single
// transaction: upsert every item, then delete every stored document whose
// id is no longer present. Partial reconciliation never persists.
func (b BadgerBackend) Flush(_ context.Context, items []domain.Item) error {
	return b.db.Update(func(txn *badger.Txn) error {
		var stored []string
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		prefix := []byte(itemKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			stored = append(stored, strings.TrimPrefix(key, itemKeyPrefix))
		}
		it.Close()

		wanted := lo.Map(items, func(item domain.Item, _ int) string { return item.ID })
		for _, id := range lo.Without(stored, wanted...) {
			if err := txn.Delete(itemKey(id)); err != nil {
				return err
			}
		}
		for _, item := range items {
			bytes, err := json.Marshal(item)
			if err != nil {
				return err
			}
			if err := txn.Set(itemKey(item.ID), bytes); err != nil {
				return err
			}
		}
		return nil
	})
}
