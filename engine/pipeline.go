package engine

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	cmn "github.com/RxnWeaver/iupac/common"
	"github.com/RxnWeaver/iupac/graph"
	"github.com/RxnWeaver/iupac/metrics"
	mol "github.com/RxnWeaver/iupac/molecule"
	"github.com/RxnWeaver/iupac/morpheme"
)

// layerDeps is the fixed inter-layer dependency graph: a layer whose
// dependencies have not all run is skipped, recorded as a
// ConflictDependency trace entry rather than attempted.
var layerDeps = map[cmn.Phase][]cmn.Phase{
	cmn.PhaseFunctionalGroups:   {cmn.PhaseAtomic},
	cmn.PhaseNomenclatureMethod: {cmn.PhaseFunctionalGroups},
	cmn.PhaseRingAnalysis:       {cmn.PhaseFunctionalGroups},
	cmn.PhaseParentSelection:    {cmn.PhaseNomenclatureMethod, cmn.PhaseRingAnalysis},
	cmn.PhaseChainAnalysis:      {cmn.PhaseFunctionalGroups, cmn.PhaseParentSelection},
	cmn.PhaseNumbering:          {cmn.PhaseParentSelection},
	cmn.PhaseNameAssembly:       {cmn.PhaseNumbering},
}

var layerOrder = []cmn.Phase{
	cmn.PhaseAtomic,
	cmn.PhaseFunctionalGroups,
	cmn.PhaseNomenclatureMethod,
	cmn.PhaseRingAnalysis,
	cmn.PhaseParentSelection,
	cmn.PhaseChainAnalysis,
	cmn.PhaseNumbering,
	cmn.PhaseNameAssembly,
}

// Pipeline drives one naming request through the eight fixed layers.
// It is safe for concurrent use: every Run call threads its own
// NamingContext and touches no shared mutable state.
type Pipeline struct {
	svc     *morpheme.Service
	log     *zap.Logger
	metrics metrics.Metrics
	layers  map[cmn.Phase][]Rule
}

// New builds a Pipeline with the default rule set (rules.go), wired
// to svc for morpheme lookups. The logger defaults to a no-op one;
// call SetLogger to attach a real zap logger. Metrics default to a
// no-op implementation; call SetMetrics to attach a Prometheus-backed
// one.
func New(svc *morpheme.Service) *Pipeline {
	p := &Pipeline{svc: svc, log: zap.NewNop(), metrics: metrics.NewNoop()}
	p.layers = defaultRules(svc)
	return p
}

func (p *Pipeline) SetLogger(l *zap.Logger) { p.log = l }

func (p *Pipeline) SetMetrics(m metrics.Metrics) { p.metrics = m }

// Run executes the full pipeline over m, ending in a NamingResult.
// Any panic escaping a layer (beyond what runRule already recovers
// from) is caught here and turned into the engine-level fallback
// name, confidence 0.
func (p *Pipeline) Run(m *mol.Molecule) (result *NamingResult) {
	ctx := newContext(m)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("naming pipeline panicked", zap.Any("recover", r))
			result = &NamingResult{
				RequestID:  ctx.RequestID,
				Name:       "Error: Unable to generate IUPAC name",
				Confidence: 0,
				Trace:      ctx.Trace,
			}
			p.metrics.RecordNaming(time.Since(start), 0, len(ctx.Trace), true)
		}
	}()

	graph.Analyze(m)

	for _, phase := range layerOrder {
		if deps, ok := layerDeps[phase]; ok {
			unmet := false
			for _, d := range deps {
				if !isDone(ctx, d) {
					unmet = true
					break
				}
			}
			if unmet {
				p.metrics.RecordLayerSkipped(phase.String())
				ctx = ctx.withTrace(TraceEntry{
					RequestID: ctx.RequestID,
					Phase:     phase,
					Timestamp: time.Now(),
					Before:    snapshot(ctx),
					After:     snapshot(ctx),
					Conflict:  &Conflict{Type: cmn.ConflictDependency, Message: fmt.Sprintf("layer %s: unmet dependency", phase)},
				})
				continue
			}
		}
		ctx = p.runLayer(ctx, phase)
		ctx = setDone(ctx, phase)
	}

	result = p.buildResult(ctx)
	p.metrics.RecordNaming(time.Since(start), len(result.Rules), conflictCount(ctx.Trace), result.Confidence == 0)
	return result
}

func conflictCount(trace []TraceEntry) int {
	n := 0
	for _, e := range trace {
		if e.Conflict != nil {
			n++
		}
	}
	return n
}

func (p *Pipeline) runLayer(ctx *NamingContext, phase cmn.Phase) *NamingContext {
	rules := append([]Rule(nil), p.layers[phase]...)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority > rules[j].Priority })
	for _, rule := range rules {
		ctx = p.runRule(ctx, phase, rule)
	}
	return ctx
}

// runRule applies one rule, converting a panicking or error-returning
// action into a state_inconsistency trace conflict and leaving the
// context as it was before the rule ran.
func (p *Pipeline) runRule(ctx *NamingContext, phase cmn.Phase, rule Rule) (result *NamingContext) {
	if rule.Condition != nil && !rule.Condition(ctx) {
		return ctx
	}
	before := snapshot(ctx)

	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("rule panicked", zap.String("rule", rule.Id), zap.Any("recover", r))
			result = ctx.withTrace(TraceEntry{
				RequestID:   ctx.RequestID,
				RuleId:      rule.Id,
				RuleName:    rule.Name,
				BlueBookRef: rule.BlueBookRef,
				Phase:       phase,
				Timestamp:   time.Now(),
				Before:      before,
				After:       before,
				Conflict:    &Conflict{RuleId: rule.Id, Type: cmn.ConflictStateInconsistency, Message: fmt.Sprintf("%v", r)},
			})
		}
	}()

	next, err := rule.Action(ctx)
	if err != nil {
		p.log.Warn("rule returned error", zap.String("rule", rule.Id), zap.Error(err))
		return ctx.withTrace(TraceEntry{
			RequestID:   ctx.RequestID,
			RuleId:      rule.Id,
			RuleName:    rule.Name,
			BlueBookRef: rule.BlueBookRef,
			Phase:       phase,
			Timestamp:   time.Now(),
			Before:      before,
			After:       before,
			Conflict:    &Conflict{RuleId: rule.Id, Type: cmn.ConflictStateInconsistency, Message: err.Error()},
		})
	}

	return next.withTrace(TraceEntry{
		RequestID:   next.RequestID,
		RuleId:      rule.Id,
		RuleName:    rule.Name,
		BlueBookRef: rule.BlueBookRef,
		Phase:       phase,
		Timestamp:   time.Now(),
		Before:      before,
		After:       snapshot(next),
	})
}

func (p *Pipeline) buildResult(ctx *NamingContext) *NamingResult {
	conflicts, rulesExecuted := 0, 0
	var ruleIds []string
	for _, e := range ctx.Trace {
		if e.Conflict != nil {
			conflicts++
		}
		if e.RuleId != "" {
			rulesExecuted++
			ruleIds = append(ruleIds, e.RuleId)
		}
	}

	confidence := cmn.ConfidenceMin
	if rulesExecuted > 0 {
		confidence += cmn.ConfidenceRulesExecuted
	}
	confidence -= float64(conflicts) * cmn.ConfidenceConflict
	if len(ctx.Groups) > 0 {
		confidence += cmn.ConfidenceFunctionalGroups
	}
	if ctx.ParentIsRing || len(ctx.ParentChainAtoms) > 0 {
		confidence += cmn.ConfidenceParentStructure
	}
	if confidence < cmn.ConfidenceMin {
		confidence = cmn.ConfidenceMin
	}
	if confidence > cmn.ConfidenceMax {
		confidence = cmn.ConfidenceMax
	}

	parentStructure := ""
	if ctx.ParentIsRing && ctx.RingName != nil {
		parentStructure = ctx.RingName.Base
	} else if len(ctx.ParentChainAtoms) > 0 {
		parentStructure = "chain"
	}

	var fgNames []string
	for _, g := range ctx.Groups {
		fgNames = append(fgNames, g.Pattern)
	}

	name := ctx.Name
	if name == "" {
		name = "Error: Unable to generate IUPAC name"
		confidence = 0
	}

	return &NamingResult{
		RequestID:        ctx.RequestID,
		Name:             name,
		Method:           ctx.Method.String(),
		ParentStructure:  parentStructure,
		FunctionalGroups: fgNames,
		Locants:          ctx.Locants,
		Confidence:       confidence,
		Rules:            ruleIds,
		Trace:            ctx.Trace,
	}
}
