package sarif

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sena-ops/thoughtscan/internal/model"
)

func TestExport(t *testing.T) {
	findings := []model.Finding{
		{
			RuleID:   "RANDOM_CONTROL_FLOW",
			Severity: model.SevCritical,
			Message:  "Math.random() controlando fluxo",
			Evidence: "2 ocorrência(s)",
			FilePath: "./src/roll.js",
		},
		{
			RuleID:   "STATE_CONTEXT_CORRELATION",
			Severity: model.SevInfo,
			Message:  "correlação de estado",
			FilePath: "",
		},
	}

	outDir := t.TempDir()
	outPath, err := Export(findings, outDir, "thoughtscan-results", "thoughtscan", "0.1.0")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if filepath.Base(outPath) != "thoughtscan-results.sarif" {
		t.Errorf("nome do arquivo: obtido %s", outPath)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var log Log
	if err := json.Unmarshal(data, &log); err != nil {
		t.Fatalf("sarif inválido: %v", err)
	}

	if log.Version != "2.1.0" {
		t.Errorf("versão: esperado 2.1.0, obtido %s", log.Version)
	}
	if len(log.Runs) != 1 || len(log.Runs[0].Results) != 2 {
		t.Fatalf("esperado 1 run com 2 results, obtido %+v", log.Runs)
	}

	first := log.Runs[0].Results[0]
	if first.Level != "error" {
		t.Errorf("level de CRITICAL: esperado error, obtido %s", first.Level)
	}
	if first.Locations[0].PhysicalLocation.ArtifactLocation.URI != "src/roll.js" {
		t.Errorf("uri normalizada: obtido %s", first.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	}
	if first.Message.Text != "Math.random() controlando fluxo (2 ocorrência(s))" {
		t.Errorf("mensagem com evidência: obtido %q", first.Message.Text)
	}

	second := log.Runs[0].Results[1]
	if second.Level != "note" {
		t.Errorf("level de INFO: esperado note, obtido %s", second.Level)
	}
	if second.Locations[0].PhysicalLocation.ArtifactLocation.URI != "UNKNOWN" {
		t.Errorf("uri vazia deve virar UNKNOWN, obtido %s", second.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	}
}

func TestSortFindings(t *testing.T) {
	fs := []model.Finding{
		{FilePath: "b.js", RuleID: "Z"},
		{FilePath: "a.js", RuleID: "B"},
		{FilePath: "a.js", RuleID: "A"},
	}
	SortFindings(fs)

	if fs[0].FilePath != "a.js" || fs[0].RuleID != "A" {
		t.Errorf("ordenação: obtido %+v", fs)
	}
	if fs[2].FilePath != "b.js" {
		t.Errorf("ordenação: obtido %+v", fs)
	}
}

func TestSevToLevel(t *testing.T) {
	tests := []struct {
		sev  model.Severity
		want string
	}{
		{model.SevCritical, "error"},
		{model.SevHigh, "error"},
		{model.SevMedium, "warning"},
		{model.SevLow, "note"},
		{model.SevInfo, "note"},
	}
	for _, tt := range tests {
		if got := sevToLevel(tt.sev); got != tt.want {
			t.Errorf("%s: esperado %s, obtido %s", tt.sev, tt.want, got)
		}
	}
}
