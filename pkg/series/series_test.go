//nolint:funlen // ok for tests
package series

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/transform"
	"github.com/mpapenbr/paceviz/testsupport/basedata"
)

func TestCompose(t *testing.T) {
	male := transform.Reference(model.WorldRecords.Male, model.CategoryMale)
	female := transform.Reference(model.WorldRecords.Female, model.CategoryFemale)
	mine := transform.UserSet(basedata.SampleMine(), "Me",
		transform.WithClock(basedata.FixedClock()))
	single := transform.UserSet(model.UserRecordSet{"5000": "17:00"}, "Rival",
		transform.WithCategory(model.CategoryRival), transform.WithClock(basedata.FixedClock()))

	tests := []struct {
		name    string
		inputs  []Input
		wantIDs []string
		check   func(t *testing.T, got []Series)
	}{
		{
			name:    "nothing",
			inputs:  nil,
			wantIDs: []string{},
		},
		{
			name: "all visible keeps order",
			inputs: []Input{
				NewInput(model.CategoryMale, male, true),
				NewInput(model.CategoryFemale, female, true),
				NewInput(model.CategoryMine, mine, true),
			},
			wantIDs: []string{"Men WRs", "Women WRs", "My PBs"},
			check: func(t *testing.T, got []Series) {
				t.Helper()
				assert.Equal(t, ColorMale, got[0].Color)
				assert.Len(t, got[0].Points, 10)
				assert.True(t, got[2].HasFitLine())
			},
		},
		{
			name: "hidden and empty skipped",
			inputs: []Input{
				NewInput(model.CategoryMale, male, false),
				NewInput(model.CategoryFemale, nil, true),
				NewInput(model.CategoryMine, mine, true),
			},
			wantIDs: []string{"My PBs"},
		},
		{
			name: "single point has no fit line",
			inputs: []Input{
				NewInput(model.CategoryRival, single, true),
			},
			wantIDs: []string{"Rival PBs"},
			check: func(t *testing.T, got []Series) {
				t.Helper()
				assert.False(t, got[0].HasFitLine())
				assert.Empty(t, got[0].FitLine)
			},
		},
		{
			name: "custom label and color",
			inputs: []Input{
				{Label: "Club", Color: "#000000", Points: mine, Visible: true},
			},
			wantIDs: []string{"Club"},
			check: func(t *testing.T, got []Series) {
				t.Helper()
				assert.Equal(t, "#000000", got[0].Color)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.inputs...)
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			if diff := cmp.Diff(tt.wantIDs, ids); diff != "" {
				t.Errorf("Compose() ids mismatch (-want +got):\n%s", diff)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestFitLine(t *testing.T) {
	mine := transform.UserSet(basedata.SampleMine(), "Me",
		transform.WithClock(basedata.FixedClock()))
	require.Len(t, mine, 4)
	// user sets come in descending distance
	assert.Equal(t, 42195.0, mine[0].Distance)

	fit := FitLine(mine)
	require.Len(t, fit, 4)
	for i := 1; i < len(fit); i++ {
		assert.Less(t, fit[i-1].LogDistance, fit[i].LogDistance)
	}
	// input untouched
	assert.Equal(t, 42195.0, mine[0].Distance)
	assert.Empty(t, FitLine(nil))
}

func TestAllPoints(t *testing.T) {
	male := transform.Reference(model.WorldRecords.Male, model.CategoryMale)
	mine := transform.UserSet(basedata.SampleMine(), "Me",
		transform.WithClock(basedata.FixedClock()))
	got := AllPoints(Compose(
		NewInput(model.CategoryMale, male, true),
		NewInput(model.CategoryMine, mine, true)))
	assert.Len(t, got, len(male)+len(mine))
}
