package roster_test

import (
	"errors"
	"testing"

	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func seed(c *roster.Catalog, name string, role rating.Role, lo, hi float64) {
	if _, err := c.SubmitVote(name, role, lo, hi, "seed"); err != nil {
		panic(err)
	}
}

func TestCatalog_TopNForRole(t *testing.T) {
	Convey("Given players rated at striker", t, func() {
		c := roster.NewCatalog()
		seed(c, "zed", rating.ST, 3, 4)
		seed(c, "amy", rating.ST, 2, 4)
		seed(c, "bob", rating.ST, 4, 5)
		seed(c, "cal", rating.ST, 0, 0)
		seed(c, "dan", rating.CM, 5, 5)

		Convey("When asking for the top three", func() {
			top, err := c.TopNForRole(rating.ST, 3)

			Convey("Then only rated players appear, by ceiling then name", func() {
				So(err, ShouldBeNil)
				So(top, ShouldHaveLength, 3)
				So(top[0].Name, ShouldEqual, "Bob")
				So(top[0].Rank, ShouldEqual, 1)
				So(top[1].Name, ShouldEqual, "Amy")
				So(top[2].Name, ShouldEqual, "Zed")
				So(top[1].Rank, ShouldEqual, 2)
				So(top[2].Rank, ShouldEqual, 2)
			})
		})

		Convey("When asking for every rated player", func() {
			top, err := c.TopNForRole(rating.ST, 0)
			So(err, ShouldBeNil)
			So(top, ShouldHaveLength, 3)
		})

		Convey("When the role is invalid", func() {
			_, err := c.TopNForRole(rating.Role("SS"), 3)
			So(errors.Is(err, rating.ErrInvalidRole), ShouldBeTrue)
		})
	})
}

func TestCatalog_CoverageGaps(t *testing.T) {
	Convey("Given an empty roster", t, func() {
		c := roster.NewCatalog()

		Convey("Then every role is a gap", func() {
			gaps := c.CoverageGaps(0)
			So(gaps, ShouldHaveLength, 12)
			So(gaps[0].Rated(), ShouldEqual, 0)
		})
	})

	Convey("Given a roster with mixed coverage", t, func() {
		c := roster.NewCatalog()
		for _, role := range rating.Roles() {
			seed(c, "ace", role, 4, 4)
		}
		seed(c, "bob", rating.GK, 1, 1)   // GK mean 2.5
		seed(c, "cat", rating.ST, 2, 2)   // ST mean 3.0
		seed(c, "dan", rating.CB, 0, 0.5) // CB mean 2.25

		gaps := c.CoverageGaps(roster.DefaultGapThreshold)

		Convey("Then only roles with a mean below the threshold are listed", func() {
			So(gaps, ShouldHaveLength, 2)
			So(gaps[0].Role, ShouldEqual, rating.GK)
			So(gaps[0].Ratings, ShouldResemble, []float64{4, 1})
			So(gaps[0].Mean, ShouldEqual, 2.5)
			So(gaps[1].Role, ShouldEqual, rating.CB)
		})

		Convey("Then no listed role has a mean at or above the threshold", func() {
			for _, g := range gaps {
				So(g.Rated() == 0 || g.Mean < roster.DefaultGapThreshold, ShouldBeTrue)
			}
		})
	})
}

func TestCatalog_Compare(t *testing.T) {
	Convey("Given two rated players", t, func() {
		c := roster.NewCatalog()
		seed(c, "ann", rating.CM, 4, 4)
		seed(c, "bob", rating.CM, 3, 4.5)

		Convey("When comparing at one role", func() {
			rows, err := c.Compare([]string{"ann", "bob", "ghost", "ANN"}, rating.CM)

			Convey("Then each known player gets one cell with raw and display values", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Cells, ShouldHaveLength, 2)
				So(rows[0].Cells[0], ShouldResemble, roster.CompareCell{Player: "Ann", Min: 4, Max: 4, Display: "4.0"})
				So(rows[0].Cells[1].Display, ShouldEqual, "3.0-4.5")
			})
		})

		Convey("When comparing across every role", func() {
			rows, err := c.Compare([]string{"ann", "bob"}, "")
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 12)
			So(rows[0].Cells[0].Display, ShouldEqual, "0.0")
		})

		Convey("When the role is invalid", func() {
			_, err := c.Compare([]string{"ann"}, rating.Role("QB"))
			So(errors.Is(err, rating.ErrInvalidRole), ShouldBeTrue)
		})
	})
}
