package jobs

// Defines constants for task types used in Asynq.

const (
	// TypeFeatureRun is the task type for an orchestrated feature run.
	TypeFeatureRun = "feature:run"
)
