package analyzer

import (
	"regexp"

	"github.com/Sena-ops/thoughtscan/internal/model"
)

// Signature é o ponto de extensão dos analisadores: uma heurística nomeada
// com padrão compilado, severidade base e descrição. Novas heurísticas
// entram como novas assinaturas, sem tocar na montagem da árvore.
type Signature struct {
	Name        string
	Pattern     *regexp.Regexp
	Severity    model.Severity
	Description string
}

// Count retorna quantas vezes o padrão aparece no conteúdo.
func (s Signature) Count(content string) int {
	return len(s.Pattern.FindAllStringIndex(content, -1))
}

// Locations retorna os offsets [início,fim) de cada match no conteúdo.
func (s Signature) Locations(content string) [][]int {
	return s.Pattern.FindAllStringIndex(content, -1)
}
