package cli

import (
	"testing"

	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDenseRanks(t *testing.T) {
	Convey("Given one comparison row", t, func() {
		cells := []roster.CompareCell{
			{Player: "Ann", Min: 3, Max: 4},
			{Player: "Bob", Min: 4, Max: 4},
			{Player: "Cal", Min: 5, Max: 5},
			{Player: "Dan", Min: 3, Max: 4},
			{Player: "Eve", Min: 1, Max: 2},
			{Player: "Fay"},
		}

		Convey("Then ranks are dense with a single value ahead of a range", func() {
			So(denseRanks(cells), ShouldResemble, []int{3, 2, 1, 3, 4, 5})
		})

		Convey("Then tiers follow the rank and unrated cells fall to the last tier", func() {
			ranks := denseRanks(cells)
			tiers := make([]int, len(cells))
			for i, c := range cells {
				tiers[i] = tierOf(ranks[i], c)
			}
			So(tiers, ShouldResemble, []int{tierThird, tierSecond, tierFirst, tierThird, tierRest, tierRest})
		})
	})

	Convey("Given a row where nobody is rated", t, func() {
		cells := []roster.CompareCell{{Player: "Ann"}, {Player: "Bob"}}
		ranks := denseRanks(cells)
		So(ranks, ShouldResemble, []int{1, 1})
		So(tierOf(ranks[0], cells[0]), ShouldEqual, tierRest)
	})

	Convey("Given an empty row", t, func() {
		So(denseRanks(nil), ShouldBeEmpty)
	})
}

func TestStars(t *testing.T) {
	Convey("Given ceilings across the scale", t, func() {
		So(stars(rating.Rating{}), ShouldEqual, "☆☆☆☆☆")
		So(stars(rating.Rating{Min: 2, Max: 3.5}), ShouldEqual, "★★★★☆")
		So(stars(rating.Rating{Min: 2, Max: 2.5}), ShouldEqual, "★★☆☆☆")
		So(stars(rating.Rating{Min: 5, Max: 5}), ShouldEqual, "★★★★★")
	})
}
