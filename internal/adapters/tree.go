package adapters

import (
	"path/filepath"

	"github.com/Sena-ops/thoughtscan/internal/model"
	"github.com/Sena-ops/thoughtscan/internal/tree"
)

// FromTree achata os nós produzidos pelos analisadores em registros
// model.Finding para exportação json/sarif. Raiz e ramos fixos ficam de
// fora; a severidade exportada é a composta, calculada no momento do
// achatamento. A ordem segue a ordem de criação dos nós.
func FromTree(t *tree.Tree) []model.Finding {
	out := make([]model.Finding, 0, t.IssueCount())
	for id := tree.NodeID(1 + len(tree.Branches)); int(id) < t.Len(); id++ {
		n := t.Node(id)
		out = append(out, model.Finding{
			ToolName:   "thoughtscan",
			RuleID:     n.Type,
			Branch:     string(t.BranchOf(id)),
			Severity:   t.CompoundSeverity(id),
			Message:    n.Description,
			Evidence:   n.Evidence,
			Reasoning:  n.Reasoning,
			Confidence: n.Confidence,
			FilePath:   filepath.ToSlash(n.File),
		})
	}
	return out
}
