package trackgo_test

import (
	"fmt"

	"github.com/sfmkit/trackgo"
	"github.com/sfmkit/trackgo/model"
	"github.com/sfmkit/trackgo/tracksutil"
)

func Example() {
	// Feature 0 is matched across views 1-2 and 2-3; feature 1 only
	// across views 1-2.
	matches := model.PairwiseMatches{
		{I: 1, J: 2}: {model.DescriberSIFT: {{I: 0, J: 0}, {I: 1, J: 1}}},
		{I: 2, J: 3}: {model.DescriberSIFT: {{I: 0, J: 0}}},
	}

	b := trackgo.NewBuilder()
	b.Build(matches)
	b.Filter(true, 2, true)

	tracks := b.Tracks()
	fmt.Println("tracks:", len(tracks))

	perView := tracksutil.ComputeTracksPerView(tracks)
	common := tracksutil.CommonTracksInViewsFast(tracks, perView, []model.ViewID{1, 2, 3})
	fmt.Println("spanning all three views:", len(common))

	// Output:
	// tracks: 2
	// spanning all three views: 1
}
