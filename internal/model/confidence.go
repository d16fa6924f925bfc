package model

// Confidence representa certeza heurística como intervalo unitário [0,1].
// Toda aritmética satura nos limites, então nenhum caminho de código consegue
// produzir um valor fora do intervalo.
type Confidence float64

// NewConfidence grampeia v para dentro de [0,1].
func NewConfidence(v float64) Confidence {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return Confidence(v)
}

// Bump soma delta saturando nos limites. Aceita delta negativo.
func (c Confidence) Bump(delta float64) Confidence {
	return NewConfidence(float64(c) + delta)
}

// AtLeast informa se a confiança atinge o piso dado.
func (c Confidence) AtLeast(floor float64) bool {
	return float64(c) >= floor
}

// Percent retorna a confiança como inteiro 0..100 para exibição.
func (c Confidence) Percent() int {
	return int(float64(c)*100 + 0.5)
}
