package evaluation

import "sort"

// Accuracy computes the fraction of results where the predicted label equals
// the expected one. Returns 0.0 for an empty result set.
func Accuracy(results []EvalResult) float64 {
	if len(results) == 0 {
		return 0.0
	}

	correct := 0
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}

	return float64(correct) / float64(len(results))
}

// MeanConfidence computes the average confidence across results. Returns 0.0
// for an empty result set.
func MeanConfidence(results []EvalResult) float64 {
	if len(results) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, r := range results {
		sum += r.Confidence
	}

	return sum / float64(len(results))
}

// ConfusionCounts aggregates mispredictions into (expected, predicted) pairs,
// most frequent first. Correct results are excluded.
func ConfusionCounts(results []EvalResult) []Confusion {
	counts := make(map[[2]string]int)
	for _, r := range results {
		if r.Correct {
			continue
		}
		counts[[2]string{r.Expected, r.Predicted}]++
	}

	confusions := make([]Confusion, 0, len(counts))
	for pair, count := range counts {
		confusions = append(confusions, Confusion{
			Expected:  pair[0],
			Predicted: pair[1],
			Count:     count,
		})
	}

	sort.Slice(confusions, func(i, j int) bool {
		if confusions[i].Count != confusions[j].Count {
			return confusions[i].Count > confusions[j].Count
		}
		if confusions[i].Expected != confusions[j].Expected {
			return confusions[i].Expected < confusions[j].Expected
		}
		return confusions[i].Predicted < confusions[j].Predicted
	})

	return confusions
}
