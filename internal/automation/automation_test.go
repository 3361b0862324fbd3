package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shift-lab/shiftsim/internal/experiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const campaignYAML = `name: lts-bed-lengths
description: same feed over two bed depths
steps:
  - reactor: lts
    integrator: rk4
    w_max: 100
    points: 51
    inlet: [291.4, 5441.7, 1604.2, 5015.6]
  - reactor: lts
    integrator: rk4
    w_max: 400
    points: 101
    inlet: [291.4, 5441.7, 1604.2, 5015.6]
`

func TestLoadCampaign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	require.NoError(t, os.WriteFile(path, []byte(campaignYAML), 0644))

	campaign, err := LoadCampaign(path)
	require.NoError(t, err)

	assert.Equal(t, "lts-bed-lengths", campaign.Name)
	require.Len(t, campaign.Steps, 2)
	assert.Equal(t, "lts", campaign.Steps[0].Reactor)
	assert.Equal(t, 400.0, campaign.Steps[1].WMax)
}

func TestRunCampaign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	require.NoError(t, os.WriteFile(path, []byte(campaignYAML), 0644))

	campaign, err := LoadCampaign(path)
	require.NoError(t, err)

	registry := experiment.NewRegistry()
	results, err := RunCampaign(context.Background(), campaign, registry)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// A deeper bed converts more of the same feed.
	shallow := results[0].Result.Metrics["conversion"]
	deep := results[1].Result.Metrics["conversion"]
	assert.Greater(t, deep, shallow)
	assert.Greater(t, shallow, 0.0)
}

func TestRunCampaignUnknownReactor(t *testing.T) {
	campaign := &Campaign{Steps: []CampaignStep{{
		Reactor: "mts", Integrator: "rk4", WMax: 100, Points: 11,
		Inlet: []float64{291.4, 5441.7, 1604.2, 5015.6},
	}}}

	registry := experiment.NewRegistry()
	_, err := RunCampaign(context.Background(), campaign, registry)
	assert.Error(t, err)
}

func TestRunMonteCarloDeterministic(t *testing.T) {
	cfg := &MonteCarloConfig{
		Reactor:      "lts",
		Integrator:   "rk4",
		BaseInlet:    []float64{291.4, 5441.7, 1604.2, 5015.6},
		Perturbation: 0.05,
		NumTrials:    5,
		WMax:         100,
		Points:       26,
		Seed:         42,
	}

	registry := experiment.NewRegistry()
	first, err := RunMonteCarlo(context.Background(), cfg, registry)
	require.NoError(t, err)
	require.Len(t, first, 5)

	second, err := RunMonteCarlo(context.Background(), cfg, experiment.NewRegistry())
	require.NoError(t, err)

	for i := range first {
		require.NoError(t, first[i].Err)
		assert.Equal(t, first[i].Inlet, second[i].Inlet)
		assert.Equal(t, first[i].Conversion, second[i].Conversion)
	}

	mean, min, max, failed := MonteCarloStats(first)
	assert.Zero(t, failed)
	assert.GreaterOrEqual(t, max, mean)
	assert.LessOrEqual(t, min, mean)
	assert.Greater(t, min, 0.0)
}

func TestRunMonteCarloRejectsBadConfig(t *testing.T) {
	registry := experiment.NewRegistry()

	_, err := RunMonteCarlo(context.Background(), &MonteCarloConfig{NumTrials: 0}, registry)
	assert.Error(t, err)

	_, err = RunMonteCarlo(context.Background(), &MonteCarloConfig{NumTrials: 1, Perturbation: 1.5}, registry)
	assert.Error(t, err)
}
