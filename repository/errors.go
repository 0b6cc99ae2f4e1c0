package repository

import (
	"errors"

	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicate marks a unique-constraint violation on the live
// AddClient/AddVehicle path. The batch seeding path swallows the same
// violation instead of returning it; only interactive adds surface it,
// so the handler can answer with a conflict rather than a generic
// failure.
var ErrDuplicate = errors.New("already exists")

const pqUniqueViolation = "23505"

func isDuplicateKey(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return mongo.IsDuplicateKeyError(err)
}
