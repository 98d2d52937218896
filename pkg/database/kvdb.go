package database

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/codes"

	"table_reservations/pkg/models"
)

const bucketReservations = "reservations"

// BoltStore keeps reservations as JSON values in a bbolt bucket keyed by
// the big-endian bucket sequence.
type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	return &BoltStore{db: db}, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketReservations))
		return err
	})
}

func (s *BoltStore) CreateReservation(ctx context.Context, reservation *models.Reservation) (uint, error) {
	_, span := tracer.Start(ctx, "BoltStore.CreateReservation")
	defer span.End()

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketReservations))
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		reservation.ID = uint(seq)
		if reservation.CreatedAt.IsZero() {
			reservation.CreatedAt = time.Now().UTC()
		}

		j, err := json.Marshal(reservation)
		if err != nil {
			return err
		}
		return bucket.Put(itob(seq), j)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		reservation.ID = 0
		return 0, err
	}
	return reservation.ID, nil
}

func (s *BoltStore) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	_, span := tracer.Start(ctx, "BoltStore.ListReservations")
	defer span.End()

	reservations := make([]models.Reservation, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketReservations)).ForEach(func(_, v []byte) error {
			var r models.Reservation
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			reservations = append(reservations, r)
			return nil
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	sort.SliceStable(reservations, func(i, j int) bool {
		a, b := reservations[i], reservations[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return reservations, nil
}

func (s *BoltStore) DeleteReservation(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "BoltStore.DeleteReservation")
	defer span.End()

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketReservations))
		key := itob(uint64(id))
		if bucket.Get(key) == nil {
			return ErrNotFound
		}
		return bucket.Delete(key)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s *BoltStore) Ping(context.Context) error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(bucketReservations)) == nil {
			return errors.New("reservations bucket is missing")
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
