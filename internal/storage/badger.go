package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"digital-menu/internal/domain"
)

var feedbackKey = []byte("feedbacks")

// FeedbackDB keeps the feedback log in a local embedded BadgerDB: the whole
// array lives under one key and is rewritten on every append, mirroring a
// localStorage-style key-value store. A single writer per session is assumed.
type FeedbackDB struct {
	DB *badger.DB
}

func NewFeedbackDB(db *badger.DB) *FeedbackDB {
	return &FeedbackDB{DB: db}
}

func (f *FeedbackDB) Read(_ context.Context) ([]domain.OrderFeedback, error) {
	var records []domain.OrderFeedback
	err := f.DB.View(func(txn *badger.Txn) error {
		item, err := txn.Get(feedbackKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &records)
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (f *FeedbackDB) Write(_ context.Context, records []domain.OrderFeedback) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return f.DB.Update(func(txn *badger.Txn) error {
		return txn.Set(feedbackKey, data)
	})
}
