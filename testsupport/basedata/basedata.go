package basedata

import (
	"time"

	"github.com/mpapenbr/paceviz/pkg/model"
)

func TestTime() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-04-28T11:10:12Z")
	return t
}

// FixedClock returns a clock always reporting TestTime
func FixedClock() func() time.Time {
	return func() time.Time { return TestTime() }
}

func SampleMine() model.UserRecordSet {
	return model.UserRecordSet{
		"1500":  "4:45.00",
		"5000":  "18:30",
		"10000": "38:10.5",
		"42195": "3:05:00",
	}
}

func SampleRival() model.UserRecordSet {
	return model.UserRecordSet{
		"5000":    "17:55",
		"10000":   "37:20",
		"21097.5": "1:21:30",
		"3000":    "10:40",
	}
}

// SamplePoint is a hand computed plot point: 1000m in 3:20
func SamplePoint(cat model.Category) model.PlotPoint {
	return model.PlotPoint{
		RawRecord:       model.RawRecord{Distance: 1000, Name: "Sample", Year: 2024, Time: "3:20"},
		TimeSeconds:     200,
		Pace:            200,
		LogDistance:     3,
		DisplayDistance: "1000m",
		Category:        cat,
	}
}
