package analyzer

import (
	"fmt"
	"regexp"

	"github.com/Sena-ops/thoughtscan/internal/extract"
	"github.com/Sena-ops/thoughtscan/internal/model"
	"github.com/Sena-ops/thoughtscan/internal/tree"
)

// mutableStateExposure detecta getter que devolve diretamente uma referência
// de estado mutável (get foo() { return this.x } ou getFoo() { ... }).
var mutableStateExposure = Signature{
	Name:        "MUTABLE_STATE_EXPOSURE",
	Pattern:     regexp.MustCompile(`get(?:\s+[A-Za-z_$][\w$]*|[A-Z][\w$]*)\s*\(\s*\)\s*\{\s*return\s+this\.[\w$]+`),
	Severity:    model.SevHigh,
	Description: "Getter expõe referência direta a estado mutável",
}

// AnalyzeStateManagement cobre riscos de gerenciamento de estado.
func AnalyzeStateManagement(path, content string, ctx extract.Context, t *tree.Tree) []tree.NodeID {
	var created []tree.NodeID
	branch := t.BranchID(tree.BranchStateManagement)

	count := mutableStateExposure.Count(content)
	if count == 0 {
		return nil
	}

	id := t.AddChild(branch, tree.Node{
		Type:        mutableStateExposure.Name,
		Description: mutableStateExposure.Description,
		Severity:    mutableStateExposure.Severity,
		Evidence:    fmt.Sprintf("%d getter(s) retornando estado interno", count),
		Confidence:  model.NewConfidence(0.7),
		File:        path,
	})
	t.At(id).
		SetReasoning("Devolver a referência interna permite que o chamador mute o estado por fora dos setters, quebrando invariantes silenciosamente.").
		AddMitigation("Retornar cópia defensiva ou visão imutável do estado.")
	created = append(created, id)

	// Tokens de gerenciamento de estado no mesmo arquivo aumentam a certeza
	// de que o getter expõe estado de verdade, não um valor qualquer.
	if ctx.HasStateTokens() {
		t.At(id).BumpConfidence(0.15)
		child := t.AddChild(id, tree.Node{
			Type:        "STATE_CONTEXT_CORRELATION",
			Description: "Arquivo também manipula estado gerenciado",
			Severity:    model.SevInfo,
			Evidence:    fmt.Sprintf("%d token(s) de estado no arquivo", len(ctx.StateTokens)),
			Confidence:  model.NewConfidence(0.6),
			File:        path,
		})
		t.At(child).SetReasoning("A presença de useState/setState/dispatch indica que o estado exposto participa do ciclo de renderização ou de um store compartilhado.")
		created = append(created, child)
	}

	return created
}
