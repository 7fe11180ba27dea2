// Package identity translates between the external string form of a task
// identifier and the store-native representation. Each store backend owns the
// codec matching its native id type; everything above the repository layer
// speaks the external string form only.
package identity

import (
	"errors"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID reports an external identifier that cannot possibly name a
// record in the active store. Callers treat it as not-found rather than
// letting a malformed id reach the driver.
var ErrInvalidID = errors.New("invalid identifier")

// ObjectIDCodec maps MongoDB ObjectIDs to their 24-character hex form.
type ObjectIDCodec struct{}

func (ObjectIDCodec) ToExternal(id primitive.ObjectID) string {
	return id.Hex()
}

func (ObjectIDCodec) ToInternal(external string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(external)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, external)
	}
	return oid, nil
}

// SerialCodec maps Postgres bigserial ids to decimal strings.
type SerialCodec struct{}

func (SerialCodec) ToExternal(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (SerialCodec) ToInternal(external string) (int64, error) {
	n, err := strconv.ParseInt(external, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, external)
	}
	return n, nil
}
