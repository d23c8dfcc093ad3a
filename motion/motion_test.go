package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
)

func testPlatform() citydata.MovingPlatform {
	return citydata.MovingPlatform{
		Name:  "P1",
		Start: citydata.Vec3{0, 10, -20},
		End:   citydata.Vec3{8, 10, -28},
	}
}

func assertVec(t *testing.T, want, got citydata.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "axis %d", i)
	}
}

func TestSampleIncludesEndpoints(t *testing.T) {
	cfg := config.Default().Platform
	samples := Sample(testPlatform(), cfg)

	require.Len(t, samples, 41)
	assertVec(t, testPlatform().Start, samples[0])
	assertVec(t, testPlatform().End, samples[len(samples)-1])
	assertVec(t, citydata.Vec3{4, 10, -24}, samples[20])
}

func TestSampleIsLinear(t *testing.T) {
	cfg := config.Default().Platform
	samples := Sample(testPlatform(), cfg)

	for i := 1; i < len(samples); i++ {
		assert.InDelta(t, 0.2, samples[i].X()-samples[i-1].X(), 1e-4)
		assert.InDelta(t, -0.2, samples[i].Z()-samples[i-1].Z(), 1e-4)
	}
}

func TestSampleWithZeroRate(t *testing.T) {
	cfg := config.Default().Platform
	cfg.SampleRate = 0

	samples := Sample(testPlatform(), cfg)
	require.Len(t, samples, 2)
	assertVec(t, testPlatform().End, samples[1])
}

func TestPathAt(t *testing.T) {
	cfg := config.Default().Platform
	path := NewPath(testPlatform(), cfg)
	assert.InDelta(t, 9.0, path.Cycle(), 1e-6)

	tests := []struct {
		name    string
		elapsed float32
		want    citydata.Vec3
	}{
		{"holding at start", 0.25, citydata.Vec3{0, 10, -20}},
		{"halfway out", 2.5, citydata.Vec3{4, 10, -24}},
		{"holding at end", 4.75, citydata.Vec3{8, 10, -28}},
		{"quarter way back", 6, citydata.Vec3{6, 10, -26}},
		{"next cycle", 11.5, citydata.Vec3{4, 10, -24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, path.At(tt.elapsed))
		})
	}
}
