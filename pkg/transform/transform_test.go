//nolint:funlen // ok for tests
package transform

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/testsupport/basedata"
)

func TestReference(t *testing.T) {
	got := Reference(model.WorldRecords.Male, model.CategoryMale)
	require.Len(t, got, len(model.WorldRecords.Male))
	for i, p := range got {
		r := model.WorldRecords.Male[i]
		assert.Equal(t, r, p.RawRecord)
		assert.Equal(t, model.CategoryMale, p.Category)
		assert.Equal(t, p.TimeSeconds/(p.Distance/1000), p.Pace)
		assert.Equal(t, math.Log10(p.Distance), p.LogDistance)
		assert.Equal(t, model.DistanceLabels[p.Distance], p.DisplayDistance)
		if i > 0 {
			assert.Greater(t, p.LogDistance, got[i-1].LogDistance)
		}
	}
	assert.InDelta(t, 7235.0, got[9].TimeSeconds, 1e-9)
	assert.Equal(t, "Full", got[9].DisplayDistance)
}

func TestReference_SpeedFactor(t *testing.T) {
	base := Reference(model.WorldRecords.Female, model.CategoryFemale)
	slow := Reference(model.WorldRecords.Female, model.CategoryFemale, WithSpeedFactor(50))
	require.Len(t, slow, len(base))
	for i := range base {
		assert.Equal(t, 2*base[i].TimeSeconds, slow[i].TimeSeconds)
		assert.Equal(t, 2*base[i].Pace, slow[i].Pace)
		assert.Equal(t, base[i].LogDistance, slow[i].LogDistance)
	}
}

func TestReference_InvalidSpeedFactorFallsBack(t *testing.T) {
	base := Reference(model.WorldRecords.Male, model.CategoryMale)
	for _, f := range []float64{0, -5, 120, math.NaN()} {
		got := Reference(model.WorldRecords.Male, model.CategoryMale, WithSpeedFactor(f))
		if diff := cmp.Diff(base, got); diff != "" {
			t.Errorf("factor %v: mismatch (-want +got):\n%s", f, diff)
		}
	}
}

func TestReference_SpeedFactorIgnoredForUserCategories(t *testing.T) {
	records := []model.RawRecord{{Distance: 1000, Name: "Me", Year: 2024, Time: "3:20"}}
	got := Reference(records, model.CategoryMine, WithSpeedFactor(50))
	require.Len(t, got, 1)
	assert.Equal(t, 200.0, got[0].TimeSeconds)
	assert.Equal(t, 200.0, got[0].Pace)
}

func TestReference_DropsInvalid(t *testing.T) {
	records := []model.RawRecord{
		{Distance: 100, Name: "ok", Time: "10.00"},
		{Distance: 200, Name: "bad time", Time: "x:y"},
		{Distance: 0, Name: "zero distance", Time: "20.00"},
		{Distance: -400, Name: "negative distance", Time: "50.00"},
		{Distance: 400, Name: "zero time", Time: "0"},
		{Distance: 3000, Name: "unmapped", Time: "7:20.67"},
	}
	got := Reference(records, model.CategoryMale)
	require.Len(t, got, 2)
	assert.Equal(t, "ok", got[0].Name)
	assert.Equal(t, "unmapped", got[1].Name)
	assert.Equal(t, "3000m", got[1].DisplayDistance)
}

func TestUserSet(t *testing.T) {
	clock := basedata.FixedClock()
	tests := []struct {
		name  string
		set   model.UserRecordSet
		opts  []Option
		want  []model.PlotPoint
		check func(t *testing.T, got []model.PlotPoint)
	}{
		{
			name: "descending distance",
			set:  model.UserRecordSet{"1500": "3:50.00", "100": "10.00"},
			opts: []Option{WithClock(clock)},
			want: []model.PlotPoint{
				{
					RawRecord:       model.RawRecord{Distance: 1500, Name: "Me", Year: 2024, Time: "3:50.00"},
					TimeSeconds:     230,
					Pace:            230 / 1.5,
					LogDistance:     math.Log10(1500),
					DisplayDistance: "1500m",
					Category:        model.CategoryMine,
				},
				{
					RawRecord:       model.RawRecord{Distance: 100, Name: "Me", Year: 2024, Time: "10.00"},
					TimeSeconds:     10,
					Pace:            100,
					LogDistance:     math.Log10(100),
					DisplayDistance: "100m",
					Category:        model.CategoryMine,
				},
			},
		},
		{
			name: "blank entries are absent",
			set:  model.UserRecordSet{"100": "", "200": "  "},
			want: []model.PlotPoint{},
		},
		{
			name: "invalid entries are dropped",
			set: model.UserRecordSet{
				"100": "abc", "abc": "10.00", "-200": "25.00", "0": "1:00", "400": "55.00",
			},
			opts: []Option{WithClock(clock)},
			check: func(t *testing.T, got []model.PlotPoint) {
				t.Helper()
				require.Len(t, got, 1)
				assert.Equal(t, 400.0, got[0].Distance)
			},
		},
		{
			name: "rival category",
			set:  model.UserRecordSet{"21097.5": "1:29:59", "42195": "3:05:00"},
			opts: []Option{WithCategory(model.CategoryRival), WithClock(clock)},
			check: func(t *testing.T, got []model.PlotPoint) {
				t.Helper()
				require.Len(t, got, 2)
				assert.Equal(t, "Full", got[0].DisplayDistance)
				assert.Equal(t, "Half", got[1].DisplayDistance)
				for _, p := range got {
					assert.Equal(t, model.CategoryRival, p.Category)
					assert.Equal(t, 2024, p.Year)
				}
			},
		},
		{
			name: "speed factor not applied",
			set:  model.UserRecordSet{"1000": "3:20"},
			opts: []Option{WithSpeedFactor(50), WithClock(clock)},
			check: func(t *testing.T, got []model.PlotPoint) {
				t.Helper()
				require.Len(t, got, 1)
				assert.Equal(t, 200.0, got[0].Pace)
			},
		},
		{
			name: "reference category falls back to mine",
			set:  model.UserRecordSet{"1000": "3:20"},
			opts: []Option{WithCategory(model.CategoryMale), WithClock(clock)},
			check: func(t *testing.T, got []model.PlotPoint) {
				t.Helper()
				require.Len(t, got, 1)
				assert.Equal(t, model.CategoryMine, got[0].Category)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserSet(tt.set, "Me", tt.opts...)
			if tt.check != nil {
				tt.check(t, got)
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UserSet() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUserSet_Deterministic(t *testing.T) {
	set := model.UserRecordSet{"5000": "20:00", "5000.0": "19:30", "800": "2:10"}
	first := UserSet(set, "Me", WithClock(basedata.FixedClock()))
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, UserSet(set, "Me", WithClock(basedata.FixedClock()))); diff != "" {
			t.Fatalf("non deterministic output: %s", diff)
		}
	}
}

func TestUserSet_DefaultClock(t *testing.T) {
	got := UserSet(model.UserRecordSet{"100": "12.00"}, "Me")
	require.Len(t, got, 1)
	assert.Equal(t, time.Now().Year(), got[0].Year)
}
