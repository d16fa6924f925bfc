package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Sena-ops/thoughtscan/internal/extract"
	"github.com/Sena-ops/thoughtscan/internal/model"
	"github.com/Sena-ops/thoughtscan/internal/tree"
)

// unawaitedAsync detecta atribuição de função async; o analisador confere
// depois se existe await subsequente no arquivo.
var unawaitedAsync = Signature{
	Name:        "UNAWAITED_ASYNC",
	Pattern:     regexp.MustCompile(`=\s*async\b`),
	Severity:    model.SevMedium,
	Description: "Atribuição async sem await subsequente",
}

// eventCascade detecta chamadas .publish( próximas demais: duas publicações
// a menos de publishProximity linhas uma da outra.
var eventCascade = Signature{
	Name:        "EVENT_CASCADE_RISK",
	Pattern:     regexp.MustCompile(`\.publish\(`),
	Severity:    model.SevCritical,
	Description: "Publicações de evento encadeadas em sequência curta",
}

const publishProximity = 10

var reAwait = regexp.MustCompile(`\bawait\b`)
var reCleanup = regexp.MustCompile(`removeEventListener|unsubscribe`)

// AnalyzeAsyncConcurrency cobre riscos de assincronia: atribuições async
// nunca aguardadas e cascatas de publicação de eventos.
func AnalyzeAsyncConcurrency(path, content string, ctx extract.Context, t *tree.Tree) []tree.NodeID {
	var created []tree.NodeID
	branch := t.BranchID(tree.BranchAsyncConcurrency)

	// Atribuições async sem await no restante do arquivo.
	unawaited := 0
	for _, loc := range unawaitedAsync.Locations(content) {
		if !reAwait.MatchString(content[loc[1]:]) {
			unawaited++
		}
	}
	if unawaited > 0 {
		id := t.AddChild(branch, tree.Node{
			Type:        unawaitedAsync.Name,
			Description: unawaitedAsync.Description,
			Severity:    unawaitedAsync.Severity,
			Evidence:    fmt.Sprintf("%d atribuição(ões) async sem await", unawaited),
			Confidence:  model.NewConfidence(0.65),
			File:        path,
		})
		t.At(id).
			SetReasoning("Uma função async atribuída e nunca aguardada devolve uma Promise solta: rejeições somem e a ordem de execução fica indefinida.").
			AddMitigation("Aguardar a Promise ou encadear .catch( explícito.")
		created = append(created, id)

		if !ctx.HasErrorHandling() {
			child := t.AddChild(id, tree.Node{
				Type:        "MISSING_ERROR_HANDLING",
				Description: "Arquivo sem nenhum tratamento de erro",
				Severity:    model.SevHigh,
				Evidence:    "nenhum token try/catch/throw/console.error encontrado",
				Confidence:  model.NewConfidence(0.75),
				File:        path,
			})
			t.At(child).SetReasoning("Sem try/catch nem .catch(, qualquer rejeição da Promise solta vira unhandled rejection e derruba o fluxo silenciosamente.")
			t.At(id).AddDependency(child)
			created = append(created, child)
		}
	}

	// Duas publicações a menos de publishProximity linhas indicam cascata.
	if lines := publishLines(content); len(lines) >= 2 {
		cascade := false
		var pair [2]int
		for i := 1; i < len(lines); i++ {
			if lines[i]-lines[i-1] <= publishProximity {
				cascade = true
				pair = [2]int{lines[i-1], lines[i]}
				break
			}
		}
		if cascade {
			id := t.AddChild(branch, tree.Node{
				Type:        eventCascade.Name,
				Description: eventCascade.Description,
				Severity:    eventCascade.Severity,
				Evidence:    fmt.Sprintf(".publish( nas linhas %d e %d", pair[0], pair[1]),
				Confidence:  model.NewConfidence(0.85),
				File:        path,
			})
			t.At(id).
				SetReasoning("Publicações consecutivas podem se retroalimentar via assinantes, gerando cascata de eventos difícil de interromper.").
				AddMitigation("Agrupar as publicações ou inserir deduplicação/debounce no barramento.")
			created = append(created, id)

			if !reCleanup.MatchString(content) {
				child := t.AddChild(id, tree.Node{
					Type:        "NO_EVENT_CLEANUP",
					Description: "Nenhuma remoção de listener/assinatura no arquivo",
					Severity:    model.SevMedium,
					Evidence:    "nenhum token removeEventListener/unsubscribe encontrado",
					Confidence:  model.NewConfidence(0.6),
					File:        path,
				})
				t.At(child).SetReasoning("Assinantes nunca removidos acumulam a cada montagem e amplificam a cascata a cada ciclo.")
				created = append(created, child)
			}
		}
	}

	return created
}

// publishLines retorna os números (1-based) das linhas com .publish(.
func publishLines(content string) []int {
	var lines []int
	for i, line := range strings.Split(content, "\n") {
		if eventCascade.Pattern.MatchString(line) {
			lines = append(lines, i+1)
		}
	}
	return lines
}
