package formation

import "github.com/okian/lineup/internal/domain/rating"

// Built-in formation names.
const (
	Attacking433 = "4-3-3 attacking"
	Defending433 = "4-3-3 defending"
	F4312        = "4-3-1-2"
	F4231        = "4-2-3-1"
	F5212        = "5-2-1-2"
)

func builtins() []Schema {
	return []Schema{
		{Name: Attacking433, Slots: []Slot{
			{"ST", rating.ST, 3, 35},
			{"LW", rating.LW, 3, 15},
			{"RW", rating.RW, 3, 55},
			{"CAM", rating.CAM, 7, 35},
			{"LCM", rating.CM, 11, 20},
			{"RCM", rating.CM, 11, 50},
			{"LB", rating.LB, 18, 10},
			{"LCB", rating.CB, 18, 28},
			{"RCB", rating.CB, 18, 42},
			{"RB", rating.RB, 18, 65},
			{"GK", rating.GK, 23, 36},
		}},
		{Name: Defending433, Slots: []Slot{
			{"ST", rating.ST, 3, 35},
			{"LW", rating.LW, 3, 15},
			{"RW", rating.RW, 3, 55},
			{"LCM", rating.CM, 9, 20},
			{"RCM", rating.CM, 9, 50},
			{"CDM", rating.CDM, 11, 35},
			{"LB", rating.LB, 18, 10},
			{"LCB", rating.CB, 18, 28},
			{"RCB", rating.CB, 18, 42},
			{"RB", rating.RB, 18, 65},
			{"GK", rating.GK, 23, 36},
		}},
		{Name: F4312, Slots: []Slot{
			{"ST1", rating.ST, 3, 25},
			{"ST2", rating.ST, 3, 45},
			{"CAM", rating.CAM, 7, 35},
			{"LCM", rating.CM, 11, 20},
			{"CM", rating.CM, 11, 35},
			{"RCM", rating.CM, 11, 50},
			{"LB", rating.LB, 18, 10},
			{"LCB", rating.CB, 18, 28},
			{"RCB", rating.CB, 18, 42},
			{"RB", rating.RB, 18, 65},
			{"GK", rating.GK, 23, 36},
		}},
		{Name: F4231, Slots: []Slot{
			{"ST", rating.ST, 3, 35},
			{"LAM", rating.CAM, 7, 15},
			{"CAM", rating.CAM, 7, 35},
			{"RAM", rating.CAM, 7, 55},
			{"CDM1", rating.CDM, 11, 25},
			{"CDM2", rating.CDM, 11, 45},
			{"LB", rating.LB, 18, 10},
			{"LCB", rating.CB, 18, 28},
			{"RCB", rating.CB, 18, 42},
			{"RB", rating.RB, 18, 65},
			{"GK", rating.GK, 23, 36},
		}},
		{Name: F5212, Slots: []Slot{
			{"ST1", rating.ST, 3, 25},
			{"ST2", rating.ST, 3, 45},
			{"CAM", rating.CAM, 7, 35},
			{"CM1", rating.CM, 11, 25},
			{"CM2", rating.CM, 11, 45},
			{"LWB", rating.LB, 18, 8},
			{"LCB", rating.CB, 18, 25},
			{"RCB", rating.CB, 18, 35},
			{"CB3", rating.CB, 18, 45},
			{"RWB", rating.RB, 18, 65},
			{"GK", rating.GK, 23, 36},
		}},
	}
}
