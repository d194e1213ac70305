// file: internals/features/performance/aggregate/service/aggregator.go
package service

import (
	"context"
	"math"

	"github.com/google/uuid"
)

/* ============================================
   Source interfaces
============================================ */

// TypeInfo is one catalog entry as the aggregator sees it.
type TypeInfo struct {
	ID           uuid.UUID
	Name         string
	IsAttendance bool
}

// TypeCatalog lists the evaluation-type catalog in its stable order
// (creation order), which fixes the breakdown order.
type TypeCatalog interface {
	ListTypes(ctx context.Context) ([]TypeInfo, error)
}

// WeightSource resolves the weight policy of a (teacher, subject,
// cycle) triple: evaluation type → percentage. Types absent from the
// map are excluded from aggregation entirely.
type WeightSource interface {
	GetPolicy(ctx context.Context, teacherID, subjectID, cycleID uuid.UUID) (map[uuid.UUID]float64, error)
}

// ScoreSource returns the recorded values of one evaluation type for a
// student in a subject and period, oldest first.
type ScoreSource interface {
	ListValues(ctx context.Context, studentID, subjectID, periodID, typeID uuid.UUID) ([]float64, error)
}

/* ============================================
   Result types
============================================ */

// BreakdownEntry is the contribution of one evaluation type.
type BreakdownEntry struct {
	TypeID       uuid.UUID `json:"type_id"`
	TypeName     string    `json:"type_name"`
	Weight       float64   `json:"weight"`
	Average      float64   `json:"average"`
	Count        int       `json:"count"`
	Contribution float64   `json:"contribution"`
}

// Result is one aggregation outcome. A student with no usable records
// gets Final 0 with an empty breakdown; that is a valid state, not an
// error.
type Result struct {
	Final       float64          `json:"final"`
	WeightTotal float64          `json:"weight_total"`
	Breakdown   []BreakdownEntry `json:"breakdown"`
}

/* ============================================
   Aggregator
============================================ */

// Aggregator computes weighted final grades. For every type in the
// catalog: skip when the policy has no weight for it OR no records
// exist; otherwise average the records (attendance types score the
// presence rate instead) and add average*weight/100 to the final. The
// final is rounded to two decimals and is NOT normalized by the sum of
// weights, so a policy covering 50% tops out at 50.
type Aggregator struct {
	Types   TypeCatalog
	Weights WeightSource
	Scores  ScoreSource
}

func NewAggregator(types TypeCatalog, weights WeightSource, scores ScoreSource) *Aggregator {
	return &Aggregator{Types: types, Weights: weights, Scores: scores}
}

func (a *Aggregator) Compute(ctx context.Context, studentID, subjectID, periodID, teacherID, cycleID uuid.UUID) (Result, error) {
	catalog, err := a.Types.ListTypes(ctx)
	if err != nil {
		return Result{}, err
	}

	policy, err := a.Weights.GetPolicy(ctx, teacherID, subjectID, cycleID)
	if err != nil {
		return Result{}, err
	}

	res := Result{Breakdown: []BreakdownEntry{}}
	var sum float64

	for _, t := range catalog {
		weight, ok := policy[t.ID]
		if !ok {
			// no policy row: the type does not participate. A stored
			// weight of 0 still produces a breakdown entry.
			continue
		}

		values, err := a.Scores.ListValues(ctx, studentID, subjectID, periodID, t.ID)
		if err != nil {
			return Result{}, err
		}
		if len(values) == 0 {
			continue
		}

		var avg float64
		if t.IsAttendance {
			present := 0
			for _, v := range values {
				if v >= 1 {
					present++
				}
			}
			avg = 100 * float64(present) / float64(len(values))
		} else {
			var total float64
			for _, v := range values {
				total += v
			}
			avg = total / float64(len(values))
		}

		contribution := avg * weight / 100
		sum += contribution
		res.WeightTotal += weight
		res.Breakdown = append(res.Breakdown, BreakdownEntry{
			TypeID:       t.ID,
			TypeName:     t.Name,
			Weight:       weight,
			Average:      round2(avg),
			Count:        len(values),
			Contribution: round2(contribution),
		})
	}

	res.Final = round2(sum)
	return res, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
