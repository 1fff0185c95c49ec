package application

import (
	"errors"

	"github.com/wanderstay/wanderstay/internal/domain/entity"
)

// ErrForbidden is returned when an actor tries to mutate a resource they do
// not own.
var ErrForbidden = errors.New("forbidden")

// CanModifyPlace is the single authorization predicate for listing mutation:
// only the recorded owner may change a place.
func CanModifyPlace(actorID string, p *entity.Place) bool {
	return actorID != "" && actorID == p.OwnerID
}
