package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophdraw/internal/client/storage"
	"github.com/iudanet/gophdraw/internal/models"
)

// seqKey big-endian seq: курсор bbolt обходит ключи в порядке seq
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// roomBucket возвращает bucket комнаты, создавая его при create
func roomBucket(tx *bbolt.Tx, room string, create bool) (*bbolt.Bucket, error) {
	root := tx.Bucket(bucketOperations)
	if root == nil {
		return nil, fmt.Errorf("operations bucket not found")
	}
	if !create {
		return root.Bucket([]byte(room)), nil
	}
	return root.CreateBucketIfNotExists([]byte(room))
}

func putOperation(b *bbolt.Bucket, op *models.Operation) error {
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}
	return b.Put(seqKey(op.Seq), data)
}

// ReplaceLog перезаписывает лог комнаты
func (s *Storage) ReplaceLog(ctx context.Context, room string, ops []*models.Operation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketOperations)
		if err := root.DeleteBucket([]byte(room)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("failed to drop room bucket: %w", err)
		}

		b, err := roomBucket(tx, room, true)
		if err != nil {
			return err
		}
		for _, op := range ops {
			if err := putOperation(b, op); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace log: %w", err)
	}

	return nil
}

// PutOperation сохраняет операцию под ее seq. Redo приходит с тем же seq и перезаписывает запись.
func (s *Storage) PutOperation(ctx context.Context, room string, op *models.Operation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := roomBucket(tx, room, true)
		if err != nil {
			return err
		}
		return putOperation(b, op)
	})
	if err != nil {
		return fmt.Errorf("failed to save operation: %w", err)
	}

	return nil
}

// DeleteOperation удаляет операцию по id. Отсутствующая операция не ошибка.
func (s *Storage) DeleteOperation(ctx context.Context, room, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := roomBucket(tx, room, false)
		if err != nil || b == nil {
			return err
		}

		c := b.Cursor()
		// Undo снимает последние операции, поэтому идем с конца
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var op models.Operation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			if op.ID == id {
				return c.Delete()
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}

	return nil
}

// ClearLog удаляет все операции комнаты
func (s *Storage) ClearLog(ctx context.Context, room string) error {
	return s.ReplaceLog(ctx, room, nil)
}

// GetLog возвращает лог комнаты по возрастанию seq
func (s *Storage) GetLog(ctx context.Context, room string) ([]*models.Operation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	ops := make([]*models.Operation, 0)

	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := roomBucket(tx, room, false)
		if err != nil || b == nil {
			return err
		}

		return b.ForEach(func(k, v []byte) error {
			var op models.Operation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	return ops, nil
}
