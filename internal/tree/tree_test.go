package tree

import (
	"testing"

	"github.com/Sena-ops/thoughtscan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree() *Tree {
	return New(map[Branch]model.Severity{BranchDataFlow: model.SevHigh})
}

func TestNewCreatesRootAndBranches(t *testing.T) {
	tr := newTestTree()

	require.Equal(t, 5, tr.Len())
	root := tr.Node(tr.Root())
	assert.Equal(t, "SECURITY_ANALYSIS_ROOT", root.Type)
	assert.Len(t, root.Children, 4)
	assert.Equal(t, 0, tr.IssueCount())

	// Piso configurado só no ramo data-flow.
	assert.Equal(t, model.SevHigh, tr.Node(tr.BranchID(BranchDataFlow)).Severity)
	assert.Equal(t, model.SevInfo, tr.Node(tr.BranchID(BranchCodeExecution)).Severity)
}

func TestCompoundSeverityWithoutDeps(t *testing.T) {
	tr := newTestTree()
	id := tr.AddChild(tr.BranchID(BranchCodeExecution), Node{
		Type:     "X",
		Severity: model.SevMedium,
	})
	assert.Equal(t, model.SevMedium, tr.CompoundSeverity(id))
}

func TestCompoundSeverityNeverDecreasesAndCaps(t *testing.T) {
	tr := newTestTree()
	branch := tr.BranchID(BranchAsyncConcurrency)

	parent := tr.AddChild(branch, Node{Type: "P", Severity: model.SevMedium})
	dep := tr.AddChild(parent, Node{Type: "D", Severity: model.SevHigh})
	tr.At(parent).AddDependency(dep)

	// base MEDIUM(2) + floor(HIGH(3)/2) = 3 → HIGH
	got := tr.CompoundSeverity(parent)
	assert.Equal(t, model.SevHigh, got)
	assert.GreaterOrEqual(t, got.Weight(), tr.Node(parent).Severity.Weight())

	// Cadeia de dependências críticas nunca passa de CRITICAL.
	crit := tr.AddChild(parent, Node{Type: "C", Severity: model.SevCritical})
	tr.At(crit).AddDependency(dep)
	tr.At(parent).AddDependency(crit)
	assert.Equal(t, model.SevCritical, tr.CompoundSeverity(parent))
	assert.LessOrEqual(t, tr.CompoundSeverity(parent).Weight(), 4)
}

func TestCompoundSeverityMemoInvalidation(t *testing.T) {
	tr := newTestTree()
	branch := tr.BranchID(BranchCodeExecution)

	parent := tr.AddChild(branch, Node{Type: "P", Severity: model.SevLow})
	assert.Equal(t, model.SevLow, tr.CompoundSeverity(parent))

	// Nova dependência precisa invalidar o memo.
	dep := tr.AddChild(parent, Node{Type: "D", Severity: model.SevCritical})
	tr.At(parent).AddDependency(dep)
	// LOW(1) + floor(4/2) = 3 → HIGH
	assert.Equal(t, model.SevHigh, tr.CompoundSeverity(parent))
}

func TestCompoundSeverityDependencyCycle(t *testing.T) {
	tr := newTestTree()
	branch := tr.BranchID(BranchCodeExecution)

	a := tr.AddChild(branch, Node{Type: "A", Severity: model.SevMedium})
	b := tr.AddChild(branch, Node{Type: "B", Severity: model.SevMedium})
	tr.At(a).AddDependency(b)
	tr.At(b).AddDependency(a)

	// Ciclo malformado não pode travar; o corte usa a severidade base.
	got := tr.CompoundSeverity(a)
	assert.GreaterOrEqual(t, got.Weight(), model.SevMedium.Weight())
	assert.LessOrEqual(t, got.Weight(), 4)
}

func TestAllPathsOnePathPerLeaf(t *testing.T) {
	tr := newTestTree()

	// Árvore vazia: cada ramo é folha.
	require.Len(t, tr.AllPaths(), 4)

	// Fatores de ramificação mistos.
	ce := tr.BranchID(BranchCodeExecution)
	a := tr.AddChild(ce, Node{Type: "A"})
	tr.AddChild(a, Node{Type: "A1"})
	tr.AddChild(a, Node{Type: "A2"})
	tr.AddChild(ce, Node{Type: "B"})
	sm := tr.BranchID(BranchStateManagement)
	tr.AddChild(sm, Node{Type: "C"})

	// Folhas: A1, A2, B, C, async, data-flow = 6
	paths := tr.AllPaths()
	require.Len(t, paths, 6)
	for _, p := range paths {
		assert.Equal(t, tr.Root(), p[0])
		assert.Empty(t, tr.Node(p[len(p)-1]).Children)
	}
}

func TestCriticalPathsConfidenceFloor(t *testing.T) {
	tr := newTestTree()
	branch := tr.BranchID(BranchCodeExecution)

	low := tr.AddChild(branch, Node{
		Type:       "LOW_CONF",
		Severity:   model.SevCritical,
		Confidence: model.NewConfidence(0.5),
	})
	assert.Empty(t, tr.CriticalPaths(0.8), "crítico com confiança baixa não marca caminho")

	tr.AddChild(low, Node{
		Type:       "LEAF",
		Severity:   model.SevCritical,
		Confidence: model.NewConfidence(0.9),
	})
	paths := tr.CriticalPaths(0.8)
	require.Len(t, paths, 1)
}

func TestBranchOf(t *testing.T) {
	tr := newTestTree()
	df := tr.BranchID(BranchDataFlow)
	id := tr.AddChild(df, Node{Type: "X"})
	leaf := tr.AddChild(id, Node{Type: "Y"})

	assert.Equal(t, BranchDataFlow, tr.BranchOf(leaf))
	assert.Equal(t, Branch(""), tr.BranchOf(tr.Root()))
}

func TestFluentMutators(t *testing.T) {
	tr := newTestTree()
	id := tr.AddChild(tr.BranchID(BranchCodeExecution), Node{
		Type:       "X",
		Confidence: model.NewConfidence(0.9),
	})
	tr.At(id).
		SetReasoning("r").
		AddMitigation("m1").
		AddMitigation("m2").
		BumpConfidence(0.5)

	n := tr.Node(id)
	assert.Equal(t, "r", n.Reasoning)
	assert.Equal(t, []string{"m1", "m2"}, n.Mitigations)
	assert.Equal(t, model.Confidence(1), n.Confidence)
}
