package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Sena-ops/thoughtscan/internal/adapters"
	"github.com/Sena-ops/thoughtscan/internal/analyzer"
	"github.com/Sena-ops/thoughtscan/internal/config"
	"github.com/Sena-ops/thoughtscan/internal/logging"
	"github.com/Sena-ops/thoughtscan/internal/model"
	"github.com/Sena-ops/thoughtscan/internal/parser"
	"github.com/Sena-ops/thoughtscan/internal/report"
	"github.com/Sena-ops/thoughtscan/internal/sarif"
	"github.com/Sena-ops/thoughtscan/internal/tree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const toolVersion = "0.1.0"

var configPath string
var outputFormat string
var debugMode bool

var logger *zap.SugaredLogger

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Varre os diretórios configurados e monta a árvore de raciocínio de riscos",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		defer logging.Logger.Sync()
		logger = logging.Logger

		cfg, err := config.Load(configPath)
		if err != nil {
			logger.Errorw("Erro ao carregar configuração", "erro", err)
			os.Exit(1)
		}

		start := time.Now()
		logger.Infof("Varrendo diretórios: %s", strings.Join(cfg.Scan.Roots, ", "))
		logger.Debugf("Analisadores registrados: %s", strings.Join(analyzer.Names(), ", "))

		result := parser.DetectSourceFiles(cfg.Scan.Roots, parser.Bounds{
			MaxDepth:   cfg.Scan.MaxDepth,
			MaxFiles:   cfg.Scan.MaxFiles,
			Extensions: cfg.Scan.Extensions,
		})

		floors := make(map[tree.Branch]model.Severity, len(cfg.Analysis.BranchFloors))
		for name, sev := range cfg.Analysis.BranchFloors {
			floors[tree.Branch(name)] = sev
		}
		t := tree.New(floors)

		suppressed := result.Suppressed
		for _, f := range result.Files {
			analyzeOne(f.Path, t, &suppressed)
		}

		critical := t.CriticalPaths(cfg.Analysis.ConfidenceFloor)
		summary := report.Summary{
			FilesAnalyzed: len(result.Files),
			Elapsed:       time.Since(start),
			Issues:        t.IssueCount(),
			Suppressed:    suppressed,
			CriticalPaths: len(critical),
		}

		switch strings.ToLower(outputFormat) {
		case "json":
			findings := adapters.FromTree(t)
			sarif.SortFindings(findings)
			encoded, err := json.MarshalIndent(findings, "", "  ")
			if err != nil {
				logger.Errorw("Erro ao gerar JSON", "erro", err)
				os.Exit(1)
			}
			fmt.Println(string(encoded))

		case "sarif":
			findings := adapters.FromTree(t)
			sarif.SortFindings(findings)
			outPath, err := sarif.Export(findings, ".thoughtscan", "thoughtscan-results", "thoughtscan", toolVersion)
			if err != nil {
				logger.Errorw("Erro ao gerar SARIF", "erro", err)
				os.Exit(1)
			}
			logger.Infow("Resultado salvo com sucesso", "arquivo", outPath)

		default:
			report.RenderSummary(os.Stdout, summary)
			fmt.Println()
			report.RenderTree(os.Stdout, t)
			report.RenderCriticalPaths(os.Stdout, t, critical)
			report.RenderVerdict(os.Stdout, summary)
		}

		if len(critical) > 0 {
			os.Exit(1)
		}
	},
}

// analyzeOne roda todos os analisadores sobre um arquivo. Um panic durante a
// análise de um arquivo é recuperado aqui: loga, conta como suprimido e a
// execução segue para os demais arquivos.
func analyzeOne(path string, t *tree.Tree, suppressed *int) {
	defer func() {
		if r := recover(); r != nil {
			*suppressed++
			logger.Warnw("Análise falhou, pulando arquivo", "arquivo", path, "motivo", r)
		}
	}()

	content, err := os.ReadFile(path)
	if err != nil {
		*suppressed++
		logger.Debugw("Arquivo ilegível, pulando", "arquivo", path, "erro", err)
		return
	}
	analyzer.AnalyzeFile(path, string(content), t)
}

func init() {
	scanCmd.Flags().StringVarP(&configPath, "config", "c", "", "Arquivo de configuração YAML (default: embutido)")
	scanCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Formato da saída (json, sarif)")
	scanCmd.Flags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
	rootCmd.AddCommand(scanCmd)

	// Invocação sem subcomando equivale a `thoughtscan scan` com defaults.
	rootCmd.Args = cobra.NoArgs
	rootCmd.Run = scanCmd.Run
}
