package trips

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"wanderwise/internal/identity"
	"wanderwise/internal/models"
)

// Repository is durable CRUD of saved trips, scoped per identity. Two
// different identities never observe each other's records.
type Repository interface {
	// ListTrips returns the identity's saved trips in insertion order. An
	// identity with no saved trips gets an empty slice, not an error.
	ListTrips(ctx context.Context, ident *identity.Identity) ([]models.TripRecord, error)

	// InsertTrip writes the record and returns it with StorageRef set.
	InsertTrip(ctx context.Context, ident *identity.Identity, rec models.TripRecord) (models.TripRecord, error)

	// DeleteTrip removes the record the store assigned this reference to.
	DeleteTrip(ctx context.Context, ident *identity.Identity, storageRef string) error
}

// PGRepository stores each trip as a JSON document row keyed by the owner's
// user id; the row id is the storage reference handed back to callers.
type PGRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPGRepository creates a Postgres-backed trip repository
func NewPGRepository(db *pgxpool.Pool, logger *zap.Logger) *PGRepository {
	return &PGRepository{db: db, logger: logger}
}

// ListTrips returns all saved trips for the identity
func (r *PGRepository) ListTrips(ctx context.Context, ident *identity.Identity) ([]models.TripRecord, error) {
	if ident == nil {
		return nil, ErrNotAuthenticated
	}

	rows, err := r.db.Query(ctx,
		"SELECT id, doc FROM user_trips WHERE user_id = $1 ORDER BY created_at",
		ident.UserID)
	if err != nil {
		return nil, persistenceErr("list trips", err)
	}
	defer rows.Close()

	trips := []models.TripRecord{}
	for rows.Next() {
		var rowID uuid.UUID
		var doc []byte
		if err := rows.Scan(&rowID, &doc); err != nil {
			return nil, persistenceErr("scan trip row", err)
		}

		rec, err := decodeTripDoc(doc)
		if err != nil {
			return nil, persistenceErr("decode trip document", err)
		}
		rec.StorageRef = rowID.String()
		trips = append(trips, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("list trips", err)
	}

	return trips, nil
}

// InsertTrip writes the record under the identity's collection
func (r *PGRepository) InsertTrip(ctx context.Context, ident *identity.Identity, rec models.TripRecord) (models.TripRecord, error) {
	if ident == nil {
		return models.TripRecord{}, ErrNotAuthenticated
	}

	doc, err := encodeTripDoc(rec)
	if err != nil {
		return models.TripRecord{}, persistenceErr("encode trip document", err)
	}

	rowID := uuid.New()
	now := time.Now()
	_, err = r.db.Exec(ctx,
		`INSERT INTO user_trips (id, user_id, doc, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		rowID, ident.UserID, doc, now, now)
	if err != nil {
		return models.TripRecord{}, persistenceErr("insert trip", err)
	}

	rec.StorageRef = rowID.String()
	r.logger.Info("trip persisted",
		zap.String("user_id", ident.UserID.String()),
		zap.String("storage_ref", rec.StorageRef),
		zap.String("destination", rec.Destination))
	return rec, nil
}

// DeleteTrip removes a stored record by its storage reference
func (r *PGRepository) DeleteTrip(ctx context.Context, ident *identity.Identity, storageRef string) error {
	if ident == nil {
		return ErrNotAuthenticated
	}

	rowID, err := uuid.Parse(storageRef)
	if err != nil {
		return ErrNotFound
	}

	tag, err := r.db.Exec(ctx,
		"DELETE FROM user_trips WHERE id = $1 AND user_id = $2",
		rowID, ident.UserID)
	if err != nil {
		return persistenceErr("delete trip", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.logger.Info("trip deleted",
		zap.String("user_id", ident.UserID.String()),
		zap.String("storage_ref", storageRef))
	return nil
}

// encodeTripDoc serializes a record for storage. The storage reference is the
// row id, never part of the document itself.
func encodeTripDoc(rec models.TripRecord) ([]byte, error) {
	rec.StorageRef = ""
	doc, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal trip: %w", err)
	}
	return doc, nil
}

func decodeTripDoc(doc []byte) (models.TripRecord, error) {
	var rec models.TripRecord
	if err := json.Unmarshal(doc, &rec); err != nil {
		return models.TripRecord{}, fmt.Errorf("unmarshal trip: %w", err)
	}
	return NormalizeRecord(rec), nil
}
