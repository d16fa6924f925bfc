package analyzer

import (
	"fmt"
	"regexp"

	"github.com/Sena-ops/thoughtscan/internal/extract"
	"github.com/Sena-ops/thoughtscan/internal/model"
	"github.com/Sena-ops/thoughtscan/internal/tree"
)

// randomControlFlow detecta Math.random() dentro de condicional ou
// comparação — fluxo de controle não determinístico.
var randomControlFlow = Signature{
	Name:        "RANDOM_CONTROL_FLOW",
	Pattern:     regexp.MustCompile(`if\s*\([^)]*Math\.random\(\)|Math\.random\(\)\s*(?:[<>]=?|[=!]==?)|(?:[<>]=?|[=!]==?)\s*Math\.random\(\)`),
	Severity:    model.SevCritical,
	Description: "Math.random() controlando fluxo de execução",
}

// AnalyzeCodeExecution cobre riscos de execução de código. Sem I/O: o
// conteúdo chega já lido.
func AnalyzeCodeExecution(path, content string, ctx extract.Context, t *tree.Tree) []tree.NodeID {
	var created []tree.NodeID
	branch := t.BranchID(tree.BranchCodeExecution)

	count := randomControlFlow.Count(content)
	if count == 0 {
		return nil
	}

	id := t.AddChild(branch, tree.Node{
		Type:        randomControlFlow.Name,
		Description: randomControlFlow.Description,
		Severity:    randomControlFlow.Severity,
		Evidence:    fmt.Sprintf("%d ocorrência(s) de Math.random() em condicional", count),
		Confidence:  model.NewConfidence(0.95),
		File:        path,
	})
	t.At(id).
		SetReasoning("Decisões de controle de fluxo baseadas em Math.random() tornam o comportamento não reproduzível e podem ser exploradas quando o resultado influencia caminhos sensíveis.").
		AddMitigation("Substituir por lógica determinística ou por fonte de aleatoriedade criptográfica com semente auditável.")
	created = append(created, id)

	if ctx.HasAsyncOps() {
		child := t.AddChild(id, tree.Node{
			Type:        "ASYNC_RANDOM_COMPOUND",
			Description: "Aleatoriedade combinada com operações assíncronas",
			Severity:    model.SevCritical,
			Evidence:    fmt.Sprintf("%d token(s) assíncrono(s) no mesmo arquivo", len(ctx.AsyncOps)),
			Confidence:  model.NewConfidence(0.9),
			File:        path,
		})
		t.At(child).SetReasoning("Fluxo aleatório somado a operações assíncronas produz corridas não reproduzíveis; o estado final depende do sorteio e do escalonamento.")
		t.At(id).AddDependency(child)
		created = append(created, child)
	}

	return created
}
