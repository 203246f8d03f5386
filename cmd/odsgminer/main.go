// Command odsgminer predicts protein complexes from a weighted
// protein-protein-interaction dataset by mining overlapping dense
// subgraphs out of per-cluster prefix DAGs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/im7mortal/kmutex"
	log "github.com/sirupsen/logrus"

	"github.com/bio-odsg/odsgminer/internal/complexset"
	"github.com/bio-odsg/odsgminer/internal/config"
	"github.com/bio-odsg/odsgminer/internal/dag"
	"github.com/bio-odsg/odsgminer/internal/dataset"
	"github.com/bio-odsg/odsgminer/internal/dsg"
	"github.com/bio-odsg/odsgminer/internal/ferrors"
	"github.com/bio-odsg/odsgminer/internal/logging"
	"github.com/bio-odsg/odsgminer/internal/miner"
	"github.com/bio-odsg/odsgminer/internal/partition"
	"github.com/bio-odsg/odsgminer/internal/ppigraph"
	"github.com/bio-odsg/odsgminer/internal/store"
)

// objectiveNames is the CLI's 0..7 numbering of objective functions, in
// that exact order: as-clique, legacy, max-intersection, wedge, wdegree,
// degree-wedge, fwedge, fwdegree.
var objectiveNames = []string{
	"as-clique", "legacy", "max-intersection",
	"wedge", "wdegree", "degree-wedge", "fwedge", "fwdegree",
}

func objectiveFromFlag(n int, edges *ppigraph.EdgeMap) (miner.Objective, error) {
	if n < 0 || n >= len(objectiveNames) {
		return nil, ferrors.New(ferrors.InvalidState, fmt.Sprintf("objective %d out of range 0..%d", n, len(objectiveNames)-1))
	}
	switch objectiveNames[n] {
	case "as-clique":
		return miner.AsClique{}, nil
	case "legacy":
		return miner.Legacy{}, nil
	case "max-intersection":
		return miner.MaxIntersection{}, nil
	case "wedge":
		return miner.SimpleEdgeDensity{Edges: edges}, nil
	case "wdegree":
		return miner.SimpleDegreeDensity{Edges: edges}, nil
	case "degree-wedge":
		return miner.DegreeAndEdge{}, nil
	case "fwedge":
		return miner.FullEdgeDensity{Edges: edges}, nil
	case "fwdegree":
		return miner.FullDegreeDensity{Edges: edges}, nil
	}
	panic("unreachable")
}

type cliFlags struct {
	datasetPath string
	mappingPath string
	outputPath  string

	weighted       bool
	partitioning   int
	outlinkSorting int
	objective      int
	cliquesOnly    bool

	overlapScore float64
	minSize      int
	minArcs      int

	workers int
}

func parseFlags() *cliFlags {
	f := &cliFlags{}
	flag.StringVar(&f.datasetPath, "dataset", "", "path to the dataset file (required)")
	flag.StringVar(&f.mappingPath, "mapping", "", "path to an optional protein name/id mapping file")
	flag.StringVar(&f.outputPath, "output", "", "output path for the predicted complexes (defaults to the run id under the configured storage backend)")
	flag.BoolVar(&f.weighted, "weighted", false, "treat the dataset's third column as an edge weight instead of ignoring it")
	flag.IntVar(&f.partitioning, "partitioning", 0, "graph partitioning scheme: 0=none, 1=initial-outlink, 2=signature")
	flag.IntVar(&f.outlinkSorting, "outlink-sorting", 1, "adjacency list sort order before mining: 0=by-id, 1=by-frequency")
	flag.IntVar(&f.objective, "objective", 0, "mining objective: 0=as-clique 1=legacy 2=max-intersection 3=wedge 4=wdegree 5=degree-wedge 6=fwedge 7=fwdegree")
	flag.BoolVar(&f.cliquesOnly, "cliques-only", false, "limit mining to dense subgraphs with maximal centers sets (forces objective 0)")
	flag.Float64Var(&f.overlapScore, "os", 0.2, "minimum overlap score for the downstream complex similarity filter")
	flag.IntVar(&f.minSize, "min-size", 3, "minimum predicted complex size")
	flag.IntVar(&f.minArcs, "min-arcs", 1, "minimum |sources|*|centers| for a dense subgraph to be kept")
	flag.IntVar(&f.workers, "workers", runtime.GOMAXPROCS(0), "number of clusters mined concurrently")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()

	logging.Setup(true, log.InfoLevel)
	runID := uuid.New().String()
	logger := log.WithField("run_id", runID)

	if f.datasetPath == "" {
		logger.Error("-dataset is required")
		os.Exit(1)
	}

	if err := run(f, runID, logger); err != nil {
		logger.WithError(err).Error("mining run failed")
		os.Exit(1)
	}
}

func run(f *cliFlags, runID string, logger *log.Entry) error {
	cfg := config.FromEnv()
	backend, err := newBackend(cfg)
	if err != nil {
		return fmt.Errorf("initialising storage backend: %w", err)
	}
	logger.WithField("backend", backend.Name()).Info("storage backend ready")

	mapping := dataset.NewMapping()
	if f.mappingPath != "" {
		mf, err := os.Open(f.mappingPath)
		if err != nil {
			return ferrors.Wrap(ferrors.IoError, "opening mapping file", err)
		}
		defer mf.Close()
		mapping, err = dataset.ReadMapping(mf)
		if err != nil {
			return err
		}
	}

	df, err := os.Open(f.datasetPath)
	if err != nil {
		return ferrors.Wrap(ferrors.IoError, "opening dataset file", err)
	}
	defer df.Close()

	ds, parseErrors, err := dataset.Read(df, mapping, f.weighted)
	if err != nil {
		return err
	}
	if !parseErrors.Empty() {
		for _, pe := range parseErrors.All() {
			logger.WithField("line", pe.Line).Warn(pe.Message)
		}
	}

	objective, err := objectiveFromFlag(f.objective, ds.Edges)
	if err != nil {
		return err
	}
	cliquesOnly := f.cliquesOnly
	if cliquesOnly {
		objective = miner.AsClique{}
	}

	graph := ppigraph.New(ds.Adjacency)
	order := ppigraph.ByID
	if f.outlinkSorting == 1 {
		order = ppigraph.ByFrequency
	}
	graph.MakeMineable(order, 0)
	if graph.Empty() {
		return ferrors.New(ferrors.InvalidState, "dataset produced an empty mineable graph")
	}

	if f.partitioning < 0 || f.partitioning > 2 {
		return ferrors.New(ferrors.InvalidState, fmt.Sprintf("partitioning %d out of range 0..2", f.partitioning))
	}
	partitioner := partition.New(graph, partition.Strategy(f.partitioning))

	var clusters []*partition.Cluster
	for {
		c := partitioner.Next(f.minArcs)
		if c == nil {
			break
		}
		clusters = append(clusters, c)
	}
	logger.WithField("clusters", len(clusters)).Info("partitioned dataset")

	results, err := mineClusters(clusters, ds.Edges, graph.IsSortedByVertex(), objective, cliquesOnly, f.minArcs, f.workers, logger)
	if err != nil {
		return err
	}

	complexSet := complexset.NewSet(complexset.MergeUnion, f.overlapScore)
	for _, dsgs := range results {
		for _, d := range dsgs.All() {
			c := complexset.FromDenseSubGraph(d, cliquesOnly)
			if c.Size() < f.minSize {
				continue
			}
			complexSet.Add(c)
		}
	}
	logger.WithField("complexes", complexSet.Len()).Info("predicted complexes")

	outputPath := f.outputPath
	if outputPath == "" {
		outputPath = runID + ".txt"
	}

	hash, size, err := backend.Persist(context.Background(), outputPath, func(w io.Writer) error {
		return complexset.Write(w, complexSet.Complexes(), mapping.Name)
	})
	if err != nil {
		return fmt.Errorf("persisting output: %w", err)
	}
	logger.WithFields(log.Fields{"path": outputPath, "hash": hash, "bytes": size}).Info("wrote predicted complexes")

	return nil
}

// mineClusters fans independent clusters out across a bounded worker
// pool. Each cluster gets its own PrefixDag, and a goroutine holds that
// DAG's keyed lock for the duration of Miner.Mine -- belt-and-suspenders
// today since each DAG is only ever handed to one goroutine, but the
// enforcement point if the fan-out is ever changed to retry a cluster.
func mineClusters(
	clusters []*partition.Cluster,
	edges *ppigraph.EdgeMap,
	sortedByVertex bool,
	objective miner.Objective,
	cliquesOnly bool,
	minArcs int,
	workers int,
	logger *log.Entry,
) ([]*dsg.MaximalSet, error) {
	if workers < 1 {
		workers = 1
	}

	m, err := miner.New(miner.DeepestParent{}, objective, cliquesOnly, minArcs)
	if err != nil {
		return nil, err
	}

	locks := kmutex.New()
	jobs := make(chan int)
	results := make([]*dsg.MaximalSet, len(clusters))
	errs := make([]error, len(clusters))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				key := fmt.Sprintf("cluster-%d", i)
				locks.Lock(key)
				results[i], errs[i] = mineCluster(m, clusters[i], edges, sortedByVertex, i, logger)
				locks.Unlock(key)
			}
		}()
	}
	for i := range clusters {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("mining cluster %d: %w", i, err)
		}
	}
	return results, nil
}

func mineCluster(m *miner.Miner, c *partition.Cluster, edges *ppigraph.EdgeMap, sortedByVertex bool, index int, logger *log.Entry) (*dsg.MaximalSet, error) {
	d := dag.Build(c, sortedByVertex, edges)
	dsgs, err := m.Mine(d)
	if err != nil {
		return nil, err
	}
	logger.WithFields(log.Fields{"cluster": index, "nodes": d.NodesCount(), "dsgs": dsgs.Len()}).Debug("mined cluster")
	return dsgs, nil
}

func newBackend(cfg config.StorageConfig) (store.Backend, error) {
	switch cfg.Backend {
	case config.S3:
		return store.NewS3Backend(context.Background(), cfg.S3Bucket, cfg.S3Region)
	case config.GCS:
		return store.NewGCSBackend(context.Background(), cfg.GCSBucket)
	default:
		return store.NewFSBackend(cfg.FSPath)
	}
}
