// file: internals/features/performance/aggregate/service/aggregator_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	types []TypeInfo
}

func (f *fakeCatalog) ListTypes(ctx context.Context) ([]TypeInfo, error) {
	return f.types, nil
}

type fakeWeights struct {
	policy map[uuid.UUID]float64
}

func (f *fakeWeights) GetPolicy(ctx context.Context, teacherID, subjectID, cycleID uuid.UUID) (map[uuid.UUID]float64, error) {
	return f.policy, nil
}

type fakeScores struct {
	values map[uuid.UUID][]float64
}

func (f *fakeScores) ListValues(ctx context.Context, studentID, subjectID, periodID, typeID uuid.UUID) ([]float64, error) {
	return f.values[typeID], nil
}

var (
	examsType      = TypeInfo{ID: uuid.New(), Name: "Exams"}
	homeworkType   = TypeInfo{ID: uuid.New(), Name: "Homework"}
	quizzesType    = TypeInfo{ID: uuid.New(), Name: "Quizzes"}
	attendanceType = TypeInfo{ID: uuid.New(), Name: "Attendance", IsAttendance: true}
)

func newAggregator(catalog []TypeInfo, policy map[uuid.UUID]float64, values map[uuid.UUID][]float64) *Aggregator {
	return NewAggregator(
		&fakeCatalog{types: catalog},
		&fakeWeights{policy: policy},
		&fakeScores{values: values},
	)
}

func compute(t *testing.T, a *Aggregator) Result {
	t.Helper()
	res, err := a.Compute(context.Background(), uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)
	return res
}

func TestComputeWeightedFinal(t *testing.T) {
	a := newAggregator(
		[]TypeInfo{examsType, homeworkType},
		map[uuid.UUID]float64{examsType.ID: 30, homeworkType.ID: 20},
		map[uuid.UUID][]float64{
			examsType.ID:    {80, 90},
			homeworkType.ID: {70, 80, 90},
		},
	)

	res := compute(t, a)

	// exams avg 85 * 0.30 = 25.5; homework avg 80 * 0.20 = 16
	assert.Equal(t, 41.5, res.Final)
	assert.Equal(t, 50.0, res.WeightTotal)
	require.Len(t, res.Breakdown, 2)
	assert.Equal(t, "Exams", res.Breakdown[0].TypeName)
	assert.Equal(t, 25.5, res.Breakdown[0].Contribution)
	assert.Equal(t, 2, res.Breakdown[0].Count)
	assert.Equal(t, "Homework", res.Breakdown[1].TypeName)
	assert.Equal(t, 16.0, res.Breakdown[1].Contribution)
}

func TestComputeAttendanceRate(t *testing.T) {
	a := newAggregator(
		[]TypeInfo{attendanceType},
		map[uuid.UUID]float64{attendanceType.ID: 100},
		map[uuid.UUID][]float64{
			attendanceType.ID: {1, 0, 1, 1},
		},
	)

	res := compute(t, a)

	// 3 of 4 present → 75% presence rate at full weight
	assert.Equal(t, 75.0, res.Final)
	require.Len(t, res.Breakdown, 1)
	assert.Equal(t, 75.0, res.Breakdown[0].Average)
}

func TestComputeSkipsTypesWithoutWeightOrRecords(t *testing.T) {
	a := newAggregator(
		[]TypeInfo{examsType, homeworkType, quizzesType},
		map[uuid.UUID]float64{
			examsType.ID:   50,
			quizzesType.ID: 10, // weighted but never recorded
		},
		map[uuid.UUID][]float64{
			examsType.ID:    {100},
			homeworkType.ID: {100}, // recorded but no weight row
		},
	)

	res := compute(t, a)

	require.Len(t, res.Breakdown, 1)
	assert.Equal(t, examsType.ID, res.Breakdown[0].TypeID)
	assert.Equal(t, 50.0, res.Final)
	assert.Equal(t, 50.0, res.WeightTotal)
}

func TestComputeZeroWeightStillAppears(t *testing.T) {
	// a stored weight of 0 is not the same as an absent policy row: the
	// type contributes nothing but remains visible in the breakdown
	a := newAggregator(
		[]TypeInfo{examsType},
		map[uuid.UUID]float64{examsType.ID: 0},
		map[uuid.UUID][]float64{examsType.ID: {90, 95}},
	)

	res := compute(t, a)

	require.Len(t, res.Breakdown, 1)
	assert.Equal(t, 0.0, res.Breakdown[0].Contribution)
	assert.Equal(t, 92.5, res.Breakdown[0].Average)
	assert.Equal(t, 0.0, res.Final)
}

func TestComputeNoDataIsZeroNotError(t *testing.T) {
	a := newAggregator(
		[]TypeInfo{examsType, homeworkType},
		map[uuid.UUID]float64{examsType.ID: 60, homeworkType.ID: 40},
		map[uuid.UUID][]float64{},
	)

	res := compute(t, a)

	assert.Equal(t, 0.0, res.Final)
	assert.Empty(t, res.Breakdown)
	assert.Equal(t, 0.0, res.WeightTotal)
}

func TestComputeNoNormalizationByWeightTotal(t *testing.T) {
	// partial policies top out below 100 on purpose
	a := newAggregator(
		[]TypeInfo{examsType},
		map[uuid.UUID]float64{examsType.ID: 40},
		map[uuid.UUID][]float64{examsType.ID: {100, 100}},
	)

	res := compute(t, a)

	assert.Equal(t, 40.0, res.Final)
	assert.Equal(t, 40.0, res.WeightTotal)

	// two perfect types at 40 each stay at 80, never rescaled to 100
	a = newAggregator(
		[]TypeInfo{examsType, homeworkType},
		map[uuid.UUID]float64{examsType.ID: 40, homeworkType.ID: 40},
		map[uuid.UUID][]float64{
			examsType.ID:    {100, 100},
			homeworkType.ID: {100},
		},
	)

	res = compute(t, a)

	assert.Equal(t, 80.0, res.Final)
	assert.Equal(t, 80.0, res.WeightTotal)
}

func TestComputeIsDeterministic(t *testing.T) {
	a := newAggregator(
		[]TypeInfo{examsType, homeworkType, attendanceType},
		map[uuid.UUID]float64{
			examsType.ID:      30,
			homeworkType.ID:   20,
			attendanceType.ID: 5,
		},
		map[uuid.UUID][]float64{
			examsType.ID:      {71.5, 88.25},
			homeworkType.ID:   {64},
			attendanceType.ID: {1, 1, 0},
		},
	)

	first := compute(t, a)
	second := compute(t, a)

	assert.Equal(t, first, second)
}

func TestComputeRounding(t *testing.T) {
	a := newAggregator(
		[]TypeInfo{examsType},
		map[uuid.UUID]float64{examsType.ID: 33},
		map[uuid.UUID][]float64{examsType.ID: {77, 78, 80}},
	)

	res := compute(t, a)

	// avg 78.333... * 0.33 = 25.85
	assert.Equal(t, 25.85, res.Final)
}
