// Package automation runs scripted campaigns: YAML-defined sequences
// of bed integrations and Monte Carlo feed-variability studies.
package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/shift-lab/shiftsim/internal/experiment"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Campaign is a scripted sequence of bed integrations.
type Campaign struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []CampaignStep `yaml:"steps"`
}

// CampaignStep is one bed integration within a campaign.
type CampaignStep struct {
	Reactor    string             `yaml:"reactor"`
	Integrator string             `yaml:"integrator"`
	WMax       float64            `yaml:"w_max"`
	Points     int                `yaml:"points"`
	Inlet      []float64          `yaml:"inlet"`
	Params     map[string]float64 `yaml:"params"`
}

// LoadCampaign reads a campaign definition from a YAML file.
func LoadCampaign(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var campaign Campaign
	if err := yaml.Unmarshal(data, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// StepResult pairs a campaign step with its bed integration result.
type StepResult struct {
	Step   CampaignStep
	Result *dynamo.Result
}

// RunCampaign executes every step in order. The first failing step
// aborts the campaign; completed results are still returned.
func RunCampaign(ctx context.Context, campaign *Campaign, registry *experiment.Registry) ([]StepResult, error) {
	results := make([]StepResult, 0, len(campaign.Steps))

	for i, step := range campaign.Steps {
		log.WithFields(log.Fields{
			"step":    i + 1,
			"of":      len(campaign.Steps),
			"reactor": step.Reactor,
		}).Info("campaign step")

		exp, err := setupStep(step, registry)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Result: result})
	}

	return results, nil
}

func setupStep(step CampaignStep, registry *experiment.Registry) (*experiment.Experiment, error) {
	sys, err := registry.GetReactor(step.Reactor)
	if err != nil {
		return nil, err
	}
	integ, err := registry.GetIntegrator(step.Integrator)
	if err != nil {
		return nil, err
	}

	exp := experiment.New(experiment.Config{
		Reactor:    step.Reactor,
		Integrator: step.Integrator,
		InitState:  step.Inlet,
		WMax:       step.WMax,
		Points:     step.Points,
		Params:     step.Params,
	})
	if err := exp.Setup(sys, integ, registry.DefaultMetrics(sys)); err != nil {
		return nil, err
	}
	return exp, nil
}

// MonteCarloConfig drives a feed-variability study: each trial
// perturbs every inlet flow by a uniform relative amount and
// integrates the full bed.
type MonteCarloConfig struct {
	Reactor      string
	Integrator   string
	BaseInlet    []float64
	Perturbation float64 // relative, 0.05 means +/-5%
	NumTrials    int
	WMax         float64
	Points       int
	Seed         int64
}

// MonteCarloResult holds one trial's perturbed feed and outcome.
type MonteCarloResult struct {
	TrialID    int
	Inlet      dynamo.State
	Outlet     dynamo.State
	Conversion float64
	Err        error
}

// RunMonteCarlo executes the trials sequentially with a deterministic
// stream when Seed is nonzero.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, registry *experiment.Registry) ([]MonteCarloResult, error) {
	if cfg.NumTrials <= 0 {
		return nil, fmt.Errorf("automation: trial count must be positive, got %d", cfg.NumTrials)
	}
	if cfg.Perturbation < 0 || cfg.Perturbation >= 1 {
		return nil, fmt.Errorf("automation: perturbation must be in [0, 1), got %f", cfg.Perturbation)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	results := make([]MonteCarloResult, 0, cfg.NumTrials)
	for trial := 0; trial < cfg.NumTrials; trial++ {
		inlet := make(dynamo.State, len(cfg.BaseInlet))
		for i, v := range cfg.BaseInlet {
			inlet[i] = v * (1 + (rng.Float64()-0.5)*2*cfg.Perturbation)
		}

		res := MonteCarloResult{TrialID: trial, Inlet: inlet.Clone()}

		exp, err := setupStep(CampaignStep{
			Reactor:    cfg.Reactor,
			Integrator: cfg.Integrator,
			WMax:       cfg.WMax,
			Points:     cfg.Points,
			Inlet:      inlet,
		}, registry)
		if err != nil {
			return nil, err
		}

		result, err := exp.Run(ctx)
		if err != nil {
			res.Err = err
		} else {
			res.Outlet = result.States[len(result.States)-1]
			res.Conversion = result.Metrics["conversion"]
		}
		results = append(results, res)
	}

	return results, nil
}

// MonteCarloStats summarizes conversion over the successful trials.
func MonteCarloStats(results []MonteCarloResult) (mean, min, max float64, failed int) {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		if n == 0 || r.Conversion < min {
			min = r.Conversion
		}
		if n == 0 || r.Conversion > max {
			max = r.Conversion
		}
		mean += r.Conversion
		n++
	}
	if n > 0 {
		mean /= float64(n)
	}
	return mean, min, max, failed
}
