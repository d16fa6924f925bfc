package config

import (
	"fmt"
	"os"

	"github.com/Sena-ops/thoughtscan/internal/model"
	"gopkg.in/yaml.v3"
)

// Config reúne toda a configuração do thoughtscan.
type Config struct {
	Scan     ScanConfig     `yaml:"scan"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// ScanConfig controla a varredura de diretórios.
type ScanConfig struct {
	Roots      []string `yaml:"roots"`      // diretórios raiz varridos a partir do cwd
	MaxDepth   int      `yaml:"max_depth"`  // profundidade máxima de recursão
	MaxFiles   int      `yaml:"max_files"`  // total máximo de arquivos coletados
	Extensions []string `yaml:"extensions"` // allow-list de extensões
}

// AnalysisConfig controla a árvore de raciocínio e a detecção de caminhos críticos.
type AnalysisConfig struct {
	// ConfidenceFloor é a confiança mínima para um nó CRITICAL marcar o
	// caminho como crítico.
	ConfidenceFloor float64 `yaml:"confidence_floor"`
	// BranchFloors define o piso de severidade de cada ramo fixo. O piso do
	// ramo data-flow é HIGH por política (ferramenta só de análise), não por
	// exigência estrutural — por isso é configurável.
	BranchFloors map[string]model.Severity `yaml:"branch_floors"`
}

// Defaults retorna a configuração usada quando nenhum arquivo é informado.
func Defaults() Config {
	return Config{
		Scan: ScanConfig{
			Roots:      []string{"src", "assets/js", "scripts"},
			MaxDepth:   10,
			MaxFiles:   100,
			Extensions: []string{".js", ".jsx", ".ts", ".tsx"},
		},
		Analysis: AnalysisConfig{
			ConfidenceFloor: 0.8,
			BranchFloors: map[string]model.Severity{
				"code-execution":    model.SevInfo,
				"state-management":  model.SevInfo,
				"async-concurrency": model.SevInfo,
				"data-flow":         model.SevHigh,
			},
		},
	}
}

// Load lê o arquivo YAML indicado por cima dos defaults. Campos ausentes
// mantêm o valor default; um path vazio retorna só os defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("ler configuração: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("interpretar configuração: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Scan.MaxDepth <= 0 {
		return fmt.Errorf("scan.max_depth deve ser positivo (recebido %d)", c.Scan.MaxDepth)
	}
	if c.Scan.MaxFiles <= 0 {
		return fmt.Errorf("scan.max_files deve ser positivo (recebido %d)", c.Scan.MaxFiles)
	}
	if c.Analysis.ConfidenceFloor < 0 || c.Analysis.ConfidenceFloor > 1 {
		return fmt.Errorf("analysis.confidence_floor deve estar em [0,1] (recebido %v)", c.Analysis.ConfidenceFloor)
	}
	return nil
}
