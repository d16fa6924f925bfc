package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Sena-ops/thoughtscan/internal/extract"
	"github.com/Sena-ops/thoughtscan/internal/model"
	"github.com/Sena-ops/thoughtscan/internal/tree"
)

// globalStatePollution detecta atribuição direta a window[...]. O lado
// direito é capturado para excluir limpeza deliberada (= null).
var globalStatePollution = Signature{
	Name:        "GLOBAL_STATE_POLLUTION",
	Pattern:     regexp.MustCompile(`window\s*\[[^\]]+\]\s*=\s*([^=;\n][^;\n]*)`),
	Severity:    model.SevHigh,
	Description: "Escrita direta em propriedade global de window",
}

// AnalyzeDataFlow cobre riscos de fluxo de dados via estado global.
func AnalyzeDataFlow(path, content string, ctx extract.Context, t *tree.Tree) []tree.NodeID {
	branch := t.BranchID(tree.BranchDataFlow)

	count := 0
	for _, m := range globalStatePollution.Pattern.FindAllStringSubmatch(content, -1) {
		if strings.TrimSpace(m[1]) == "null" {
			continue
		}
		count++
	}
	if count == 0 {
		return nil
	}

	id := t.AddChild(branch, tree.Node{
		Type:        globalStatePollution.Name,
		Description: globalStatePollution.Description,
		Severity:    globalStatePollution.Severity,
		Evidence:    fmt.Sprintf("%d escrita(s) em window[...]", count),
		Confidence:  model.NewConfidence(0.8),
		File:        path,
	})
	t.At(id).
		SetReasoning("Dados gravados direto em window vazam entre módulos sem contrato: qualquer script da página lê e sobrescreve o valor.").
		AddMitigation("Mover o dado para um store com acesso explícito ou para closure do módulo.")

	return []tree.NodeID{id}
}
