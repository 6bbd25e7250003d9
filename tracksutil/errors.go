package tracksutil

import (
	"fmt"

	"github.com/sfmkit/trackgo/model"
)

// ObservationCountError indicates a two-view conversion invoked on a track
// whose observation count is not exactly two. A count of zero means the
// track id is absent from the table.
type ObservationCountError struct {
	TrackID model.TrackID
	Count   int
}

func (e *ObservationCountError) Error() string {
	return fmt.Sprintf("track %d: expected exactly 2 observations, got %d", e.TrackID, e.Count)
}
