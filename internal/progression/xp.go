package progression

import "mixlab/internal/scoring"

const baseExperience = 10

// ExperienceFor converts one completed experiment into an experience
// award. The result is floored at 1: effort always earns something, even
// for a disastrous combination.
func ExperienceFor(experiment Experiment) int {
	xp := baseExperience

	safety := meanScore(experiment.Results, func(r scoring.Result) int { return r.Safety })
	effectiveness := meanScore(experiment.Results, func(r scoring.Result) int { return r.Effectiveness })
	novelty := meanScore(experiment.Results, func(r scoring.Result) int { return r.Novelty })
	overall := meanScore(experiment.Results, func(r scoring.Result) int { return r.Overall })

	switch {
	case safety >= 90:
		xp += 20
	case safety >= 80:
		xp += 10
	}
	if safety < 50 {
		xp -= 20
		if safety < 30 {
			xp -= 15
		}
	}

	switch {
	case effectiveness >= 90:
		xp += 15
	case effectiveness >= 80:
		xp += 8
	}

	switch {
	case novelty >= 90:
		xp += 15
	case novelty >= 80:
		xp += 8
	}

	switch {
	case len(experiment.Consumables) >= 5:
		xp += 10
	case len(experiment.Consumables) >= 3:
		xp += 5
	}

	if experiment.Success {
		xp += 5
	}

	switch {
	case overall >= 90:
		xp += 25
	case overall >= 80:
		xp += 15
	case overall >= 70:
		xp += 10
	}

	if xp < 1 {
		return 1
	}
	return xp
}

func meanScore(results []scoring.Result, pick func(scoring.Result) int) float64 {
	if len(results) == 0 {
		return 0
	}
	total := 0
	for _, result := range results {
		total += pick(result)
	}
	return float64(total) / float64(len(results))
}
