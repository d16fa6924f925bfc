package analyzer

import (
	"fmt"

	"github.com/Sena-ops/thoughtscan/internal/extract"
	"github.com/Sena-ops/thoughtscan/internal/tree"
)

// Func é a forma comum de um analisador de categoria: recebe o arquivo já
// lido, o contexto extraído e a árvore compartilhada; devolve os nós criados.
type Func func(path, content string, ctx extract.Context, t *tree.Tree) []tree.NodeID

type entry struct {
	Name string
	Fn   Func
}

// A ordem do registro é fixa para manter determinísticos os caminhos
// relatados entre execuções.
var analyzers = []entry{
	{"code-execution", AnalyzeCodeExecution},
	{"state-management", AnalyzeStateManagement},
	{"async-concurrency", AnalyzeAsyncConcurrency},
	{"data-flow", AnalyzeDataFlow},
}

// Names lista os analisadores registrados na ordem de execução.
func Names() []string {
	out := make([]string, 0, len(analyzers))
	for _, a := range analyzers {
		out = append(out, a.Name)
	}
	return out
}

// Execute roda um analisador específico pelo nome.
func Execute(name, path, content string, t *tree.Tree) ([]tree.NodeID, error) {
	for _, a := range analyzers {
		if a.Name == name {
			return a.Fn(path, content, extract.FromSource(content), t), nil
		}
	}
	return nil, fmt.Errorf("analisador '%s' não suportado", name)
}

// AnalyzeFile extrai o contexto do arquivo e roda todos os analisadores na
// ordem registrada, devolvendo todos os nós criados.
func AnalyzeFile(path, content string, t *tree.Tree) []tree.NodeID {
	ctx := extract.FromSource(content)
	var created []tree.NodeID
	for _, a := range analyzers {
		created = append(created, a.Fn(path, content, ctx, t)...)
	}
	return created
}
