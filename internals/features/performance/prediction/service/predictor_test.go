// file: internals/features/performance/prediction/service/predictor_test.go
package service

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testArtifact has an identity scaler and a regression head of
// forecast = 2*prior_average - 40, which makes out-of-range outputs
// easy to provoke from in-range inputs.
const testArtifact = `{
  "version": 1,
  "features": ["prior_average", "attendance", "participation"],
  "scaler": {"mean": [0, 0, 0], "std": [1, 1, 1]},
  "regression": {"weights": [2, 0, 0], "intercept": -40},
  "classifier": {
    "labels": ["Low", "Medium", "High"],
    "weights": [[-0.05, -0.01, 0], [0, 0, 0], [0.05, 0.01, 0]],
    "intercepts": [0, 0.1, 0]
  }
}`

func newTestPredictor(t *testing.T, artifact string) *Predictor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))
	p := New(path)
	require.NoError(t, p.Reload())
	require.True(t, p.Loaded())
	return p
}

func TestPredictClampsForecastToGradingScale(t *testing.T) {
	p := newTestPredictor(t, testArtifact)

	high, err := p.Predict(Input{PriorAverage: 95, Attendance: 90, Participation: 70})
	require.NoError(t, err)
	assert.Equal(t, 100.0, high.Forecast, "2*95-40=150 must clamp to 100")

	low, err := p.Predict(Input{PriorAverage: 10, Attendance: 90, Participation: 70})
	require.NoError(t, err)
	assert.Equal(t, 0.0, low.Forecast, "2*10-40=-20 must clamp to 0")
}

func TestRiskScoring(t *testing.T) {
	cases := []struct {
		name       string
		forecast   float64
		attendance float64
		prior      float64
		points     int
		level      string
	}{
		{"all weak signals", 35, 60, 45, 7, "critical"},
		{"borderline forecast only", 65, 90, 75, 1, "medium"},
		{"two weak one borderline", 55, 80, 65, 4, "high"},
		{"healthy student", 85, 95, 90, 0, "low"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			points := riskPoints(tc.forecast, tc.attendance, tc.prior)
			assert.Equal(t, tc.points, points)
			assert.Equal(t, tc.level, riskLevel(points))
		})
	}
}

func TestPredictProbabilities(t *testing.T) {
	p := newTestPredictor(t, testArtifact)

	pred, err := p.Predict(Input{PriorAverage: 60, Attendance: 75, Participation: 55})
	require.NoError(t, err)

	var sum float64
	var max float64
	for _, prob := range pred.Probabilities {
		sum += prob
		if prob > max {
			max = prob
		}
	}
	assert.InDelta(t, 1.0, sum, 0.001, "softmax probabilities must sum to 1")
	assert.Equal(t, max, pred.Confidence, "confidence is the winning probability")
	assert.Contains(t, pred.Probabilities, pred.Category)
}

func TestPredictAcceptsBoundaryValues(t *testing.T) {
	p := newTestPredictor(t, testArtifact)

	_, err := p.Predict(Input{PriorAverage: 100, Attendance: 100, Participation: 0})
	assert.NoError(t, err)
}

func TestPredictRejectsOutOfRangeAttendance(t *testing.T) {
	p := newTestPredictor(t, testArtifact)

	_, err := p.Predict(Input{PriorAverage: 80, Attendance: 101, Participation: 70})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "attendance", verr.Field)
}

func TestPredictIsIdempotent(t *testing.T) {
	p := newTestPredictor(t, testArtifact)
	in := Input{PriorAverage: 72, Attendance: 88, Participation: 65}

	first, err := p.Predict(in)
	require.NoError(t, err)
	second, err := p.Predict(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPredictWithoutLoadedModel(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "missing.json"))
	_, err := p.Predict(Input{PriorAverage: 80, Attendance: 90, Participation: 70})
	assert.ErrorIs(t, err, ErrModelNotLoaded)
}

func TestReloadDuringConcurrentPredicts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(testArtifact), 0o644))
	p := New(path)
	require.NoError(t, p.Reload())

	in := Input{PriorAverage: 72, Attendance: 88, Participation: 65}
	stop := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if _, err := p.Predict(in); err != nil {
					t.Errorf("predict during reload: %v", err)
					return
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		require.NoError(t, p.Reload())
	}

	close(stop)
	wg.Wait()
}

func TestReloadRejectsBrokenArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"features": ["a"], "scaler": {"mean": [], "std": []}}`), 0o644))

	p := New(path)
	assert.Error(t, p.Reload())
	assert.False(t, p.Loaded())
}

func TestRecommendationsForStrugglingStudent(t *testing.T) {
	p := newTestPredictor(t, testArtifact)

	pred, err := p.Predict(Input{PriorAverage: 40, Attendance: 65, Participation: 50})
	require.NoError(t, err)

	assert.Equal(t, "critical", pred.RiskLevel)
	// every band fires in pairs here, so the cap has to bind
	assert.Len(t, pred.Recommendations, 6)
	assert.Contains(t, pred.Recommendations, "🏫 Improve class attendance (current: 65.0%)")
}

func TestRecommendationsNeverEmpty(t *testing.T) {
	p := newTestPredictor(t, testArtifact)

	// healthy student: no weak band fires, only the general band
	pred, err := p.Predict(Input{PriorAverage: 90, Attendance: 95, Participation: 85})
	require.NoError(t, err)

	assert.NotEmpty(t, pred.Recommendations)
	assert.Contains(t, pred.Recommendations, "✅ Keep up the current good performance")
	assert.LessOrEqual(t, len(pred.Recommendations), 6)
}
