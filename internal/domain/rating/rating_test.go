package rating_test

import (
	"errors"
	"testing"

	"github.com/okian/lineup/internal/domain/rating"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseRole(t *testing.T) {
	Convey("Given role input from a collaborator", t, func() {
		Convey("When the role is known in any case", func() {
			r, err := rating.ParseRole(" cdm ")

			Convey("Then it should resolve to the canonical role", func() {
				So(err, ShouldBeNil)
				So(r, ShouldEqual, rating.CDM)
			})
		})

		Convey("When the role is unknown", func() {
			_, err := rating.ParseRole("SW")

			Convey("Then it should fail with ErrInvalidRole", func() {
				So(errors.Is(err, rating.ErrInvalidRole), ShouldBeTrue)
			})
		})

		Convey("Then the role set should hold twelve roles starting with the keeper", func() {
			roles := rating.Roles()
			So(roles, ShouldHaveLength, 12)
			So(roles[0], ShouldEqual, rating.GK)
			So(roles[11], ShouldEqual, rating.ST)
		})
	})
}

func TestParseRange(t *testing.T) {
	Convey("Given rating input strings", t, func() {
		Convey("When a single number is given", func() {
			lo, hi, err := rating.ParseRange("3")
			So(err, ShouldBeNil)
			So(lo, ShouldEqual, 3.0)
			So(hi, ShouldEqual, 3.0)
		})

		Convey("When a range is given", func() {
			lo, hi, err := rating.ParseRange("2.5-4")
			So(err, ShouldBeNil)
			So(lo, ShouldEqual, 2.5)
			So(hi, ShouldEqual, 4.0)
		})

		Convey("When the range is inverted or out of bounds", func() {
			for _, in := range []string{"4-2", "6", "-1", "x", "1-x"} {
				_, _, err := rating.ParseRange(in)
				So(errors.Is(err, rating.ErrInvalidRange), ShouldBeTrue)
			}
		})
	})
}

func TestLedgerSubmit(t *testing.T) {
	Convey("Given an empty ledger", t, func() {
		l := rating.NewLedger()

		Convey("Then every role should be unrated", func() {
			for _, r := range rating.Roles() {
				So(l.Rating(r), ShouldResemble, rating.Rating{})
				So(l.Rating(r).Rated(), ShouldBeFalse)
			}
		})

		Convey("When two voters rate the same role", func() {
			So(l.Submit(rating.CM, rating.Vote{Voter: "Ann", Min: 3, Max: 4}), ShouldBeNil)
			So(l.Submit(rating.CM, rating.Vote{Voter: "Bob", Min: 4, Max: 5}), ShouldBeNil)

			Convey("Then the rating should be the mean of both votes", func() {
				So(l.Rating(rating.CM), ShouldResemble, rating.Rating{Min: 3.5, Max: 4.5})
				So(l.VoteCount(rating.CM), ShouldEqual, 2)
			})

			Convey("And a resubmission replaces the voter's prior vote", func() {
				So(l.Submit(rating.CM, rating.Vote{Voter: "Ann", Min: 1, Max: 1}), ShouldBeNil)
				So(l.VoteCount(rating.CM), ShouldEqual, 2)
				So(l.Rating(rating.CM), ShouldResemble, rating.Rating{Min: 2.5, Max: 3})

				v, ok := l.VoteBy(rating.CM, "Ann")
				So(ok, ShouldBeTrue)
				So(v.Min, ShouldEqual, 1.0)
			})
		})

		Convey("When one voter votes twice", func() {
			So(l.Submit(rating.ST, rating.Vote{Voter: "Ann", Min: 2, Max: 5}), ShouldBeNil)
			So(l.Submit(rating.ST, rating.Vote{Voter: "Ann", Min: 4, Max: 4}), ShouldBeNil)

			Convey("Then the rating equals the second vote alone", func() {
				So(l.Rating(rating.ST), ShouldResemble, rating.Rating{Min: 4, Max: 4})
			})
		})

		Convey("When the mean needs rounding", func() {
			So(l.Submit(rating.LB, rating.Vote{Voter: "A", Min: 1, Max: 2}), ShouldBeNil)
			So(l.Submit(rating.LB, rating.Vote{Voter: "B", Min: 1, Max: 2}), ShouldBeNil)
			So(l.Submit(rating.LB, rating.Vote{Voter: "C", Min: 2, Max: 2}), ShouldBeNil)

			Convey("Then it should be kept to one decimal", func() {
				So(l.Rating(rating.LB).Min, ShouldEqual, 1.3)
				So(l.Rating(rating.LB).Max, ShouldEqual, 2.0)
			})
		})

		Convey("When the mean falls on a decimal boundary", func() {
			So(l.Submit(rating.CM, rating.Vote{Voter: "A", Min: 2, Max: 3.5}), ShouldBeNil)
			So(l.Submit(rating.CM, rating.Vote{Voter: "B", Min: 2.9, Max: 3.6}), ShouldBeNil)

			Convey("Then it should round the mean itself, not the mean scaled by ten", func() {
				So(l.Rating(rating.CM), ShouldResemble, rating.Rating{Min: 2.5, Max: 3.5})
			})
		})

		Convey("When a vote is rejected", func() {
			So(l.Submit(rating.GK, rating.Vote{Voter: "Ann", Min: 3, Max: 3}), ShouldBeNil)
			before := l.Votes(rating.GK)

			errRole := l.Submit(rating.Role("SW"), rating.Vote{Voter: "Ann", Min: 1, Max: 1})
			errRange := l.Submit(rating.GK, rating.Vote{Voter: "Ann", Min: 4, Max: 2})
			errVoter := l.Submit(rating.GK, rating.Vote{Voter: " ", Min: 1, Max: 2})

			Convey("Then it should fail without mutating the ledger", func() {
				So(errors.Is(errRole, rating.ErrInvalidRole), ShouldBeTrue)
				So(errors.Is(errRange, rating.ErrInvalidRange), ShouldBeTrue)
				So(errVoter, ShouldEqual, rating.ErrMissingVoter)
				So(l.Votes(rating.GK), ShouldResemble, before)
				So(l.Rating(rating.GK), ShouldResemble, rating.Rating{Min: 3, Max: 3})
			})
		})
	})
}

func TestLedgerInvariant(t *testing.T) {
	Convey("Given arbitrary valid vote sequences", t, func() {
		l := rating.NewLedger()
		votes := []rating.Vote{
			{Voter: "a", Min: 0, Max: 5}, {Voter: "b", Min: 4.5, Max: 4.5},
			{Voter: "c", Min: 1.1, Max: 1.2}, {Voter: "a", Min: 2.2, Max: 2.3},
			{Voter: "d", Min: 3.3, Max: 4.9}, {Voter: "e", Min: 0, Max: 0},
		}

		Convey("Then min should never exceed max", func() {
			for _, v := range votes {
				So(l.Submit(rating.RW, v), ShouldBeNil)
				r := l.Rating(rating.RW)
				So(r.Min, ShouldBeLessThanOrEqualTo, r.Max)
			}
		})
	})
}

func TestRatingString(t *testing.T) {
	Convey("Given aggregate ratings", t, func() {
		So(rating.Rating{Min: 4, Max: 4}.String(), ShouldEqual, "4.0")
		So(rating.Rating{Min: 3, Max: 4.5}.String(), ShouldEqual, "3.0-4.5")
		So(rating.Rating{}.String(), ShouldEqual, "0.0")
	})
}

func TestLedgerClone(t *testing.T) {
	Convey("Given a ledger with votes", t, func() {
		l := rating.NewLedger()
		So(l.Submit(rating.CB, rating.Vote{Voter: "a", Min: 2, Max: 3}), ShouldBeNil)

		Convey("When cloned and the original changes", func() {
			c := l.Clone()
			So(l.Submit(rating.CB, rating.Vote{Voter: "b", Min: 5, Max: 5}), ShouldBeNil)

			Convey("Then the clone should be unaffected", func() {
				So(c.VoteCount(rating.CB), ShouldEqual, 1)
				So(c.Rating(rating.CB), ShouldResemble, rating.Rating{Min: 2, Max: 3})
			})
		})
	})
}
