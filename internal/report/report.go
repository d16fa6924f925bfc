package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Sena-ops/thoughtscan/internal/model"
	"github.com/Sena-ops/thoughtscan/internal/tree"
	"github.com/fatih/color"
)

// Summary resume a execução para o cabeçalho do relatório.
type Summary struct {
	FilesAnalyzed int
	Elapsed       time.Duration
	Issues        int
	Suppressed    int // erros de filesystem suprimidos na varredura
	CriticalPaths int
}

var severityColors = map[model.Severity]*color.Color{
	model.SevCritical: color.New(color.FgRed, color.Bold),
	model.SevHigh:     color.New(color.FgRed),
	model.SevMedium:   color.New(color.FgYellow),
	model.SevLow:      color.New(color.FgCyan),
	model.SevInfo:     color.New(color.Faint),
}

func severityLabel(s model.Severity) string {
	c, ok := severityColors[s]
	if !ok {
		return string(s)
	}
	return c.Sprintf("[%s]", s)
}

// RenderSummary imprime o resumo da varredura.
func RenderSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "Arquivos analisados: %d | tempo: %dms | achados: %d\n",
		s.FilesAnalyzed, s.Elapsed.Milliseconds(), s.Issues)
	if s.Suppressed > 0 {
		color.New(color.FgYellow).Fprintf(w, "⚠ %d erro(s) de filesystem suprimido(s) durante a varredura\n", s.Suppressed)
	}
}

// RenderTree imprime a árvore de raciocínio completa, com rótulo colorido
// por severidade composta, evidência, explicação e confiança por nó.
func RenderTree(w io.Writer, t *tree.Tree) {
	renderNode(w, t, t.Root(), 0)
}

func renderNode(w io.Writer, t *tree.Tree, id tree.NodeID, depth int) {
	n := t.Node(id)
	indent := strings.Repeat("  ", depth)

	fmt.Fprintf(w, "%s%s %s", indent, severityLabel(t.CompoundSeverity(id)), n.Type)
	if n.Description != "" {
		fmt.Fprintf(w, ": %s", n.Description)
	}
	fmt.Fprintf(w, " (%d%%)\n", n.Confidence.Percent())

	if n.Evidence != "" {
		fmt.Fprintf(w, "%s  evidência: %s\n", indent, n.Evidence)
	}
	if n.Reasoning != "" {
		fmt.Fprintf(w, "%s  → %s\n", indent, n.Reasoning)
	}
	if n.File != "" {
		fmt.Fprintf(w, "%s  arquivo: %s\n", indent, n.File)
	}
	for _, m := range n.Mitigations {
		fmt.Fprintf(w, "%s  mitigação: %s\n", indent, m)
	}

	for _, child := range n.Children {
		renderNode(w, t, child, depth+1)
	}
}

// RenderCriticalPaths imprime cada caminho crítico como uma cadeia de
// raciocínio indentada, do ramo até a folha.
func RenderCriticalPaths(w io.Writer, t *tree.Tree, paths [][]tree.NodeID) {
	if len(paths) == 0 {
		return
	}
	color.New(color.FgRed, color.Bold).Fprintf(w, "\n🚨 %d caminho(s) crítico(s) detectado(s):\n", len(paths))
	for i, path := range paths {
		fmt.Fprintf(w, "\nCaminho crítico #%d:\n", i+1)
		for depth, id := range path {
			if id == t.Root() {
				continue
			}
			n := t.Node(id)
			indent := strings.Repeat("  ", depth-1)
			fmt.Fprintf(w, "%s%s %s (%d%%)\n", indent, severityLabel(t.CompoundSeverity(id)), n.Type, n.Confidence.Percent())
			if n.Reasoning != "" {
				fmt.Fprintf(w, "%s  → %s\n", indent, n.Reasoning)
			}
		}
	}
}

// RenderVerdict imprime a linha final de aprovação/reprovação.
func RenderVerdict(w io.Writer, s Summary) {
	switch {
	case s.CriticalPaths > 0:
		color.New(color.FgRed, color.Bold).Fprintf(w, "\n❌ Reprovado: %d caminho(s) crítico(s)\n", s.CriticalPaths)
	case s.Issues > 0:
		color.New(color.FgYellow).Fprintf(w, "\n⚠ Aprovado com %d achado(s) não crítico(s)\n", s.Issues)
	default:
		color.New(color.FgGreen).Fprintf(w, "\n✅ Nenhum risco encontrado\n")
	}
}
