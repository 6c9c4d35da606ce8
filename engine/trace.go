package engine

import (
	"time"

	"github.com/google/uuid"

	cmn "github.com/RxnWeaver/iupac/common"
)

// Conflict is recorded on a trace entry when a rule's precondition
// fails at the layer level (dependency) or its action raises
// (state_inconsistency).
type Conflict struct {
	RuleId string
	Type   cmn.ConflictType
	Message string
}

// TraceEntry is one line of the rule trace: a typed request (which
// rule, which layer) paired with a typed outcome (before/after
// snapshot, optional conflict), shaped after a typed
// request/response envelope minus the channel -- this is a record,
// not a live message.
type TraceEntry struct {
	RequestID   uuid.UUID
	RuleId      string
	RuleName    string
	BlueBookRef string
	Phase       cmn.Phase
	Timestamp   time.Time
	Description string
	Before      map[string]any
	After       map[string]any
	Conflict    *Conflict
}
