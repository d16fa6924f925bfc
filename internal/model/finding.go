package model

type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevHigh     Severity = "HIGH"
	SevMedium   Severity = "MEDIUM"
	SevLow      Severity = "LOW"
	SevInfo     Severity = "INFO"
)

// Weight mapeia a severidade para o peso ordinal usado no cálculo composto
// (INFO=0 ... CRITICAL=4). Valores desconhecidos contam como INFO.
func (s Severity) Weight() int {
	switch s {
	case SevCritical:
		return 4
	case SevHigh:
		return 3
	case SevMedium:
		return 2
	case SevLow:
		return 1
	default:
		return 0
	}
}

// FromWeight faz o caminho inverso de Weight, saturando em CRITICAL.
func FromWeight(w int) Severity {
	switch {
	case w >= 4:
		return SevCritical
	case w == 3:
		return SevHigh
	case w == 2:
		return SevMedium
	case w == 1:
		return SevLow
	default:
		return SevInfo
	}
}

// MaxSeverity retorna a mais grave entre as duas.
func MaxSeverity(a, b Severity) Severity {
	if b.Weight() > a.Weight() {
		return b
	}
	return a
}

// Finding é o registro plano usado nas saídas json/sarif. A árvore de
// raciocínio é a representação nativa; Finding existe só para exportação.
type Finding struct {
	ToolName   string     `json:"tool"`                // sempre "thoughtscan"
	RuleID     string     `json:"ruleId"`              // tipo do nó, ex: "RANDOM_CONTROL_FLOW"
	Branch     string     `json:"branch"`              // ramo da árvore que originou o achado
	Severity   Severity   `json:"severity"`            // severidade composta no momento da exportação
	Message    string     `json:"message"`             // descrição curta
	Evidence   string     `json:"evidence,omitempty"`  // contagem/local do match
	Reasoning  string     `json:"reasoning,omitempty"` // explicação fixa do analisador
	Confidence Confidence `json:"confidence"`          // certeza heurística [0,1]
	FilePath   string     `json:"filePath"`            // caminho relativo/normalizado
}
