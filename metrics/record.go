package metrics

import "time"

// RecordEvaluation records one single-pair evaluation. problemSet and terms
// are skipped when negative (not applicable to the algorithm).
func (r *Registry) RecordEvaluation(algorithm string, err error, duration time.Duration, problemSet, terms int) {
	r.EvaluationsTotal.WithLabelValues(algorithm, status(err)).Inc()
	r.EvaluationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	if problemSet >= 0 {
		r.ProblemSetSize.WithLabelValues(algorithm).Observe(float64(problemSet))
	}
	if terms >= 0 {
		r.TermsTotal.WithLabelValues(algorithm).Add(float64(terms))
	}
}

// RecordTopology records one all-pairs run.
func (r *Registry) RecordTopology(algorithm, mode string, err error, pairs int) {
	r.TopologyRuns.WithLabelValues(algorithm, mode, status(err)).Inc()
	r.TopologyPairs.Observe(float64(pairs))
}

func status(err error) string {
	if err != nil {
		return StatusError
	}

	return StatusOK
}
