package log

// Standard attribute keys. Keys are dotted so log pipelines can group them.
const (
	// ModelNameKey identifies the model type, e.g. "LinearThresh".
	ModelNameKey = "model.name"
	// OperationKey names the operation, see the Operation* values.
	OperationKey = "ml.operation"
	// ComponentKey identifies the package or named logger.
	ComponentKey = "ml.component"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
)

// Performance and results.
const (
	DurationMsKey = "perf.duration_ms"
	PredsKey      = "preds.count"
	PositivesKey  = "preds.positives"
	CostKey       = "metrics.csc_cost"
	R2ScoreKey    = "metrics.r2_score"
)

// Configuration.
const (
	RowWiseKey           = "config.row_wise"
	ParallelThresholdKey = "config.parallel_threshold"
)

const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
)
