package route

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// CompareAll runs all four algorithms on the same (source, target) pair,
// in the fixed order returned by Algorithms, and derives summary
// statistics over the runs that succeeded.
//
// A failure in one algorithm is recorded in Report.Failures and does not
// abort the remaining runs. When every algorithm fails the Report's
// AllFailed method reports true and Fastest/Shortest are nil. The only
// hard errors are the caller-misuse sentinels shared with Run.
func CompareAll(g *core.Graph, source, target string) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}

	report := &Report{}
	for _, algo := range Algorithms() {
		res, err := Run(g, source, target, algo)
		if err != nil {
			// Inputs were validated above; a hard error here is caller
			// misuse that applies to every remaining run as well.
			return nil, err
		}
		if res.Failed() {
			report.Failures = append(report.Failures, Failure{Algorithm: res.Algorithm, Err: res.Err})
			continue
		}
		report.Results = append(report.Results, res)
	}

	// Derived statistics over succeeded runs only. On ties the earlier
	// algorithm in run order wins, keeping reports deterministic apart
	// from timing.
	for i := range report.Results {
		r := &report.Results[i]
		if report.Fastest == nil || r.Elapsed < report.Fastest.Elapsed {
			report.Fastest = r
		}
		if report.Shortest == nil || r.Distance < report.Shortest.Distance {
			report.Shortest = r
		}
	}

	return report, nil
}
