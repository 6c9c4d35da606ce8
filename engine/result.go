package engine

import "github.com/google/uuid"

// NamingResult is the pipeline's output shape: the assembled
// name, the method used to build it, what was chosen as parent and
// principal group, the final locant assignment, a confidence score,
// the ids of every rule that actually ran, and the full trace.
type NamingResult struct {
	RequestID        uuid.UUID
	Name             string
	Method           string
	ParentStructure  string
	FunctionalGroups []string
	Locants          map[uint16]string
	Confidence       float64
	Rules            []string
	Trace            []TraceEntry
}
