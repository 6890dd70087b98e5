//nolint:funlen // ok for tests
package axis

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/transform"
)

func withPaces(paces ...float64) []model.PlotPoint {
	ret := make([]model.PlotPoint, 0, len(paces))
	for _, p := range paces {
		ret = append(ret, model.PlotPoint{Pace: p})
	}
	return ret
}

func TestYTicks(t *testing.T) {
	tests := []struct {
		name   string
		points []model.PlotPoint
		want   []float64
	}{
		{
			name:   "empty",
			points: nil,
			want:   []float64{90, 120, 150, 180, 210, 240, 270, 300},
		},
		{
			name:   "spread",
			points: withPaces(145, 302),
			want:   []float64{120, 150, 180, 210, 240, 270, 300, 330},
		},
		{
			name:   "single exact multiple",
			points: withPaces(180),
			want:   []float64{180},
		},
		{
			name:   "identical values",
			points: withPaces(200, 200, 200),
			want:   []float64{180, 210},
		},
		{
			name:   "invalid paces ignored",
			points: withPaces(math.NaN(), 95, math.Inf(1), 0),
			want:   []float64{90, 120},
		},
		{
			name:   "only invalid paces",
			points: withPaces(math.NaN()),
			want:   []float64{90, 120, 150, 180, 210, 240, 270, 300},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YTicks(tt.points)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("YTicks() mismatch (-want +got):\n%s", diff)
			}
			for i := 1; i < len(got); i++ {
				assert.Equal(t, YStep, got[i]-got[i-1])
			}
		})
	}
}

func TestYTicks_WorldRecords(t *testing.T) {
	points := append(
		transform.Reference(model.WorldRecords.Male, model.CategoryMale),
		transform.Reference(model.WorldRecords.Female, model.CategoryFemale)...)
	ticks := YTicks(points)
	// fastest is the men's 100m (95.8s/km), slowest the women's marathon (184.8s/km)
	assert.Equal(t, []float64{90, 120, 150, 180, 210}, ticks)
	lower, upper := YDomain(points)
	assert.Equal(t, 90.0, lower)
	assert.Equal(t, 210.0, upper)
}

func TestYTicks_WideRange(t *testing.T) {
	tests := []struct {
		name     string
		points   []model.PlotPoint
		wantStep float64
	}{
		{name: "at limit", points: withPaces(90, 90+YStep*(MaxYTicks-1)), wantStep: YStep},
		{name: "just above limit", points: withPaces(90, 90+YStep*MaxYTicks), wantStep: 2 * YStep},
		{name: "absurd user time", points: withPaces(95.8, 3.6e15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YTicks(tt.points)
			assert.LessOrEqual(t, len(got), MaxYTicks)
			assert.Equal(t, 90.0, got[0])
			assert.GreaterOrEqual(t, got[len(got)-1], tt.points[1].Pace)
			step := got[1] - got[0]
			assert.Zero(t, math.Mod(step, YStep))
			if tt.wantStep > 0 {
				assert.Equal(t, tt.wantStep, step)
			}
		})
	}
}

func TestYDomain_Empty(t *testing.T) {
	lower, upper := YDomain(nil)
	assert.Equal(t, 90.0, lower)
	assert.Equal(t, 300.0, upper)
}

func TestYTickLabels(t *testing.T) {
	got := YTickLabels([]float64{90, 120, 330})
	want := []Tick{{Value: 90, Label: "1:30"}, {Value: 120, Label: "2:00"}, {Value: 330, Label: "5:30"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YTickLabels() mismatch (-want +got):\n%s", diff)
	}
}

func TestXTicks(t *testing.T) {
	points := []model.PlotPoint{
		{LogDistance: math.Log10(42195)},
		{LogDistance: math.Log10(100)},
		{LogDistance: math.Log10(42195)},
		{LogDistance: math.Log10(3000)},
	}
	got := XTicks(points)
	labels := make([]string, 0, len(got))
	for _, tk := range got {
		labels = append(labels, tk.Label)
	}
	assert.Equal(t, []string{"100m", "3000m", "Full"}, labels)
	assert.Empty(t, XTicks(nil))
}

func TestXDomain(t *testing.T) {
	_, _, ok := XDomain(nil)
	assert.False(t, ok)

	lower, upper, ok := XDomain([]model.PlotPoint{{LogDistance: 2}, {LogDistance: 3.5}})
	assert.True(t, ok)
	assert.InDelta(t, 1.9, lower, 1e-12)
	assert.InDelta(t, 3.6, upper, 1e-12)
}
