// file: internals/features/performance/prediction/service/predictor.go
package service

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"sync/atomic"

	"github.com/bytedance/sonic"
)

// ErrModelNotLoaded is returned while no artifact has been loaded yet;
// controllers translate it to 503.
var ErrModelNotLoaded = errors.New("prediction model not loaded")

// ValidationError marks a rejected input feature.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

/* ============================================
   Model artifact
============================================ */

// artifact is the serialized model: a standard scaler, a linear
// regression head for the numeric forecast and a softmax classifier for
// the category. Feature order is fixed by the artifact.
type artifact struct {
	Version  int      `json:"version"`
	Features []string `json:"features"`
	Scaler   struct {
		Mean []float64 `json:"mean"`
		Std  []float64 `json:"std"`
	} `json:"scaler"`
	Regression struct {
		Weights   []float64 `json:"weights"`
		Intercept float64   `json:"intercept"`
	} `json:"regression"`
	Classifier struct {
		Labels     []string    `json:"labels"`
		Weights    [][]float64 `json:"weights"`
		Intercepts []float64   `json:"intercepts"`
	} `json:"classifier"`
}

func (a *artifact) validate() error {
	n := len(a.Features)
	if n == 0 {
		return errors.New("artifact has no features")
	}
	if len(a.Scaler.Mean) != n || len(a.Scaler.Std) != n {
		return errors.New("scaler dimensions do not match features")
	}
	if len(a.Regression.Weights) != n {
		return errors.New("regression dimensions do not match features")
	}
	if len(a.Classifier.Labels) == 0 ||
		len(a.Classifier.Weights) != len(a.Classifier.Labels) ||
		len(a.Classifier.Intercepts) != len(a.Classifier.Labels) {
		return errors.New("classifier dimensions do not match labels")
	}
	for _, row := range a.Classifier.Weights {
		if len(row) != n {
			return errors.New("classifier weight row does not match features")
		}
	}
	return nil
}

/* ============================================
   Input / output
============================================ */

// Input carries the model features. The three core features are
// required and must sit in [0, 100]; anything else the artifact knows
// about defaults to 0 when absent.
type Input struct {
	PriorAverage  float64
	Attendance    float64
	Participation float64
	Extra         map[string]float64
}

func (in *Input) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"prior_average", in.PriorAverage},
		{"attendance", in.Attendance},
		{"participation", in.Participation},
	}
	for _, ch := range checks {
		if ch.value < 0 || ch.value > 100 {
			return &ValidationError{Field: ch.field, Message: "must be between 0 and 100"}
		}
	}
	return nil
}

func (in *Input) feature(name string) float64 {
	switch name {
	case "prior_average":
		return in.PriorAverage
	case "attendance":
		return in.Attendance
	case "participation":
		return in.Participation
	default:
		return in.Extra[name]
	}
}

// Prediction is one forecast with its risk assessment.
type Prediction struct {
	Forecast        float64            `json:"forecast"`
	Category        string             `json:"category"`
	Confidence      float64            `json:"confidence"`
	Probabilities   map[string]float64 `json:"probabilities"`
	RiskLevel       string             `json:"risk_level"`
	RiskPoints      int                `json:"risk_points"`
	Recommendations []string           `json:"recommendations"`
}

/* ============================================
   Predictor
============================================ */

// Predictor holds the live artifact behind an atomic pointer: Predict
// reads lock-free, Reload swaps the whole model in one store. The zero
// state (nothing loaded) answers every call with ErrModelNotLoaded.
type Predictor struct {
	path     string
	current  atomic.Pointer[artifact]
	reloadMu sync.Mutex
}

func New(path string) *Predictor {
	return &Predictor{path: path}
}

// Loaded reports whether an artifact is available.
func (p *Predictor) Loaded() bool {
	return p.current.Load() != nil
}

// Path returns the artifact location on disk.
func (p *Predictor) Path() string {
	return p.path
}

// Reload reads the artifact from disk and swaps it in atomically.
// Concurrent reloads are serialized; in-flight predictions keep using
// the artifact they already grabbed.
func (p *Predictor) Reload() error {
	p.reloadMu.Lock()
	defer p.reloadMu.Unlock()

	raw, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("read model artifact: %w", err)
	}

	var a artifact
	if err := sonic.Unmarshal(raw, &a); err != nil {
		return fmt.Errorf("decode model artifact: %w", err)
	}
	if err := a.validate(); err != nil {
		return fmt.Errorf("invalid model artifact: %w", err)
	}

	p.current.Store(&a)
	return nil
}

// Predict runs the full pipeline: validate, scale, regress (clamped to
// the grading scale), classify, then derive risk and recommendations.
func (p *Predictor) Predict(in Input) (Prediction, error) {
	a := p.current.Load()
	if a == nil {
		return Prediction{}, ErrModelNotLoaded
	}
	if err := in.Validate(); err != nil {
		return Prediction{}, err
	}

	// scale features in artifact order
	scaled := make([]float64, len(a.Features))
	for i, name := range a.Features {
		std := a.Scaler.Std[i]
		if std == 0 {
			std = 1
		}
		scaled[i] = (in.feature(name) - a.Scaler.Mean[i]) / std
	}

	// regression head → forecast, clamped to the grading scale
	forecast := a.Regression.Intercept
	for i, w := range a.Regression.Weights {
		forecast += w * scaled[i]
	}
	forecast = clamp(forecast, 0, 100)
	forecast = math.Round(forecast*100) / 100

	// classifier head → softmax probabilities
	logits := make([]float64, len(a.Classifier.Labels))
	for j := range a.Classifier.Labels {
		z := a.Classifier.Intercepts[j]
		for i, w := range a.Classifier.Weights[j] {
			z += w * scaled[i]
		}
		logits[j] = z
	}
	probs := softmax(logits)

	best := 0
	probabilities := make(map[string]float64, len(probs))
	for j, label := range a.Classifier.Labels {
		probabilities[label] = math.Round(probs[j]*10000) / 10000
		if probs[j] > probs[best] {
			best = j
		}
	}
	category := a.Classifier.Labels[best]

	points := riskPoints(forecast, in.Attendance, in.PriorAverage)

	return Prediction{
		Forecast:        forecast,
		Category:        category,
		Confidence:      math.Round(probs[best]*10000) / 10000,
		Probabilities:   probabilities,
		RiskLevel:       riskLevel(points),
		RiskPoints:      points,
		Recommendations: recommendations(forecast, in, category),
	}, nil
}

/* ============================================
   Risk & recommendations
============================================ */

func riskPoints(forecast, attendance, prior float64) int {
	points := 0
	switch {
	case forecast < 40:
		points += 3
	case forecast < 60:
		points += 2
	case forecast < 70:
		points++
	}
	switch {
	case attendance < 70:
		points += 2
	case attendance < 85:
		points++
	}
	switch {
	case prior < 50:
		points += 2
	case prior < 70:
		points++
	}
	return points
}

func riskLevel(points int) string {
	switch {
	case points >= 5:
		return "critical"
	case points >= 3:
		return "high"
	case points >= 1:
		return "medium"
	default:
		return "low"
	}
}

// recommendations emits a pair of advice strings per triggered band.
// The general forecast band always fires, so the list is never empty;
// the cap keeps the worst case at six entries.
func recommendations(forecast float64, in Input, category string) []string {
	recs := make([]string, 0, 6)

	switch {
	case forecast < 50:
		recs = append(recs,
			"🚨 Needs immediate attention and academic support",
			"📚 Schedule urgent tutoring sessions")
	case forecast < 70:
		recs = append(recs,
			"⚠️ Needs reinforcement in some areas",
			"📖 Consider extra support in specific subjects")
	default:
		recs = append(recs,
			"✅ Keep up the current good performance",
			"🎯 Consider additional academic challenges")
	}

	if in.PriorAverage < 60 {
		recs = append(recs,
			"📝 Strengthen study techniques and comprehension",
			"🔍 Review past evaluation corrections")
	}
	if in.Attendance < 80 {
		recs = append(recs,
			fmt.Sprintf("🏫 Improve class attendance (current: %.1f%%)", in.Attendance),
			"📞 Contact parents or guardians about attendance")
	}
	if in.Participation < 60 {
		recs = append(recs,
			"🗣️ Encourage more participation in class",
			"🤝 Build a more participative classroom environment")
	}

	switch category {
	case "High":
		recs = append(recs,
			"🌟 Consider student leadership activities",
			"🏆 Opportunities for academic recognition")
	case "Low":
		recs = append(recs,
			"💪 Personalized academic improvement plan",
			"👪 Involve the family more in the process")
	}

	if len(recs) > 6 {
		recs = recs[:6]
	}
	return recs
}

/* ============================================
   Math helpers
============================================ */

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, z := range logits[1:] {
		if z > max {
			max = z
		}
	}
	var sum float64
	out := make([]float64, len(logits))
	for i, z := range logits {
		out[i] = math.Exp(z - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
