// Package bandit provides per-arm reward statistics with Thompson-sampling
// and UCB selection machinery. It is a standalone utility: nothing else in
// this core consumes it yet, and no integration is invented here.
package bandit

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// betaFloor keeps the Beta shape parameters strictly positive.
const betaFloor = 1e-6

// ArmStats accumulates reward statistics for one bandit arm. Alpha and
// Beta are the Beta-distribution shape parameters of the reward posterior
// and are never allowed to reach zero or below.
type ArmStats struct {
	N           int
	TotalReward float64
	Alpha       float64
	Beta        float64
}

// NewArmStats returns an arm with a uniform Beta(1, 1) prior.
func NewArmStats() *ArmStats {
	return &ArmStats{Alpha: 1, Beta: 1}
}

// Update records one pull. The reward is clamped to [0, 1] for the Beta
// posterior update; the raw value still accumulates in TotalReward.
func (a *ArmStats) Update(reward float64) {
	a.N++
	a.TotalReward += reward

	clamped := reward
	if clamped < 0 {
		clamped = 0
	} else if clamped > 1 {
		clamped = 1
	}
	a.Alpha = math.Max(a.Alpha+clamped, betaFloor)
	a.Beta = math.Max(a.Beta+1-clamped, betaFloor)
}

// MeanReward returns the empirical mean reward, 0 before the first pull.
func (a *ArmStats) MeanReward() float64 {
	if a.N == 0 {
		return 0
	}
	return a.TotalReward / float64(a.N)
}

// ThompsonSample draws from the arm's Beta posterior. A nil src uses the
// global source.
func (a *ArmStats) ThompsonSample(src rand.Source) float64 {
	dist := distuv.Beta{
		Alpha: math.Max(a.Alpha, betaFloor),
		Beta:  math.Max(a.Beta, betaFloor),
		Src:   src,
	}
	return dist.Rand()
}

// UCB returns the upper-confidence-bound score given the total pull count
// across all arms. An unpulled arm scores +Inf so it is tried first.
func (a *ArmStats) UCB(totalPulls int) float64 {
	if a.N == 0 {
		return math.Inf(1)
	}
	if totalPulls < 1 {
		totalPulls = 1
	}
	return a.MeanReward() + math.Sqrt(2*math.Log(float64(totalPulls))/float64(a.N))
}
