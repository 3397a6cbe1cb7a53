package orchestrator

import "time"

// DefaultWorkflowTimeout bounds a whole auto-tag run when no timeout is configured.
const DefaultWorkflowTimeout = 5 * time.Minute
