package dagstats

import log "github.com/sirupsen/logrus"

// LogSummary emits one info-level line per dominator group, largest
// first. Purely diagnostic: nothing downstream reads this back.
func LogSummary(logger *log.Logger, clusterLabel string, report DominatorReport) {
	if len(report.Groups) == 0 {
		return
	}

	for _, g := range report.Groups {
		logger.WithFields(log.Fields{
			"cluster":    clusterLabel,
			"root":       g.Root,
			"node_count": g.NodeCount,
		}).Info("dag dominator subtree")
	}
}
