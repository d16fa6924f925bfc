package tree

import (
	"github.com/Sena-ops/thoughtscan/internal/model"
)

// NodeID indexa um nó dentro da arena da árvore. Filhos e dependências são
// guardados como ids, nunca como ponteiros — a relação de posse fica na
// árvore e referências cruzadas não criam ciclos acidentais.
type NodeID int

// Branch identifica um dos quatro ramos fixos sob a raiz.
type Branch string

const (
	BranchCodeExecution    Branch = "code-execution"
	BranchStateManagement  Branch = "state-management"
	BranchAsyncConcurrency Branch = "async-concurrency"
	BranchDataFlow         Branch = "data-flow"
)

// Branches lista os ramos na ordem fixa de criação (e de relatório).
var Branches = []Branch{
	BranchCodeExecution,
	BranchStateManagement,
	BranchAsyncConcurrency,
	BranchDataFlow,
}

// Node é um achado ou agrupamento na árvore de raciocínio.
type Node struct {
	Type        string
	Description string
	Severity    model.Severity
	Evidence    string
	Confidence  model.Confidence
	Reasoning   string
	Mitigations []string
	File        string

	Children []NodeID
	Deps     []NodeID // referências fracas, só para severidade composta
	Parent   NodeID   // -1 na raiz
}

// Tree é a arena que possui todos os nós. A raiz tem id 0 e é criada junto
// com os quatro ramos; a árvore vive por uma única execução.
type Tree struct {
	nodes    []Node
	branches map[Branch]NodeID
	memo     map[NodeID]model.Severity
}

// New cria a árvore com a raiz SECURITY_ANALYSIS_ROOT e os quatro ramos.
// floors define o piso de severidade de cada ramo; ramos ausentes ficam em
// INFO.
func New(floors map[Branch]model.Severity) *Tree {
	t := &Tree{
		branches: make(map[Branch]NodeID, len(Branches)),
		memo:     make(map[NodeID]model.Severity),
	}
	t.nodes = append(t.nodes, Node{
		Type:        "SECURITY_ANALYSIS_ROOT",
		Description: "Análise de segurança do código-fonte",
		Severity:    model.SevInfo,
		Confidence:  model.NewConfidence(1.0),
		Parent:      -1,
	})

	descriptions := map[Branch]string{
		BranchCodeExecution:    "Riscos de execução de código",
		BranchStateManagement:  "Riscos de gerenciamento de estado",
		BranchAsyncConcurrency: "Riscos de assincronia e concorrência",
		BranchDataFlow:         "Riscos de fluxo de dados",
	}
	for _, b := range Branches {
		floor := model.SevInfo
		if s, ok := floors[b]; ok {
			floor = s
		}
		id := t.AddChild(0, Node{
			Type:        branchType(b),
			Description: descriptions[b],
			Severity:    floor,
			Confidence:  model.NewConfidence(1.0),
		})
		t.branches[b] = id
	}
	return t
}

func branchType(b Branch) string {
	switch b {
	case BranchCodeExecution:
		return "CODE_EXECUTION_ANALYSIS"
	case BranchStateManagement:
		return "STATE_MANAGEMENT_ANALYSIS"
	case BranchAsyncConcurrency:
		return "ASYNC_CONCURRENCY_ANALYSIS"
	default:
		return "DATA_FLOW_ANALYSIS"
	}
}

// Root retorna o id da raiz.
func (t *Tree) Root() NodeID { return 0 }

// BranchID retorna o id do ramo fixo pedido.
func (t *Tree) BranchID(b Branch) NodeID { return t.branches[b] }

// Node dá acesso de leitura ao nó. O ponteiro é válido até o próximo
// AddChild (a arena pode realocar).
func (t *Tree) Node(id NodeID) *Node { return &t.nodes[id] }

// Len retorna o total de nós na arena, raiz e ramos incluídos.
func (t *Tree) Len() int { return len(t.nodes) }

// IssueCount conta os nós produzidos por analisadores (tudo que não é raiz
// nem ramo fixo).
func (t *Tree) IssueCount() int { return len(t.nodes) - 1 - len(Branches) }

// AddChild anexa node como filho de parent e retorna o id criado. A relação
// de filhos é uma árvore estrita: cada nó entra na arena uma única vez.
func (t *Tree) AddChild(parent NodeID, node Node) NodeID {
	node.Parent = parent
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node)
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

// Handle permite mutação fluente de um nó já inserido.
type Handle struct {
	t  *Tree
	id NodeID
}

// At retorna um handle fluente para o nó.
func (t *Tree) At(id NodeID) Handle { return Handle{t: t, id: id} }

// ID retorna o id do nó apontado pelo handle.
func (h Handle) ID() NodeID { return h.id }

// AddDependency registra uma referência fraca a dep e invalida o memo de
// severidade composta da árvore inteira.
func (h Handle) AddDependency(dep NodeID) Handle {
	h.t.nodes[h.id].Deps = append(h.t.nodes[h.id].Deps, dep)
	h.t.memo = make(map[NodeID]model.Severity)
	return h
}

// AddMitigation acrescenta uma sugestão de remediação.
func (h Handle) AddMitigation(text string) Handle {
	h.t.nodes[h.id].Mitigations = append(h.t.nodes[h.id].Mitigations, text)
	return h
}

// SetReasoning define a explicação do nó.
func (h Handle) SetReasoning(text string) Handle {
	h.t.nodes[h.id].Reasoning = text
	return h
}

// BumpConfidence ajusta a confiança do nó saturando em [0,1].
func (h Handle) BumpConfidence(delta float64) Handle {
	n := &h.t.nodes[h.id]
	n.Confidence = n.Confidence.Bump(delta)
	return h
}

// CompoundSeverity calcula a severidade composta do nó: a base quando não há
// dependências; caso contrário min(base + floor(maxDep/2), CRITICAL), onde
// maxDep é o maior peso composto entre as dependências. O resultado é
// memoizado até a próxima AddDependency.
func (t *Tree) CompoundSeverity(id NodeID) model.Severity {
	return t.compound(id, make(map[NodeID]bool))
}

func (t *Tree) compound(id NodeID, inProgress map[NodeID]bool) model.Severity {
	if s, ok := t.memo[id]; ok {
		return s
	}
	n := &t.nodes[id]
	if len(n.Deps) == 0 {
		t.memo[id] = n.Severity
		return n.Severity
	}
	if inProgress[id] {
		// Ciclo malformado entre dependências: corta usando a base, sem
		// memoizar o valor parcial.
		return n.Severity
	}
	inProgress[id] = true
	depWeight := 0
	for _, dep := range n.Deps {
		if w := t.compound(dep, inProgress).Weight(); w > depWeight {
			depWeight = w
		}
	}
	delete(inProgress, id)

	weight := n.Severity.Weight() + depWeight/2
	if weight > model.SevCritical.Weight() {
		weight = model.SevCritical.Weight()
	}
	s := model.FromWeight(weight)
	t.memo[id] = s
	return s
}

// AllPaths enumera todos os caminhos raiz→folha em profundidade, um caminho
// por folha. Um nó sem filhos é folha (a raiz vazia conta como folha).
func (t *Tree) AllPaths() [][]NodeID {
	var paths [][]NodeID
	var walk func(id NodeID, current []NodeID)
	walk = func(id NodeID, current []NodeID) {
		current = append(current, id)
		if len(t.nodes[id].Children) == 0 {
			path := make([]NodeID, len(current))
			copy(path, current)
			paths = append(paths, path)
			return
		}
		for _, child := range t.nodes[id].Children {
			walk(child, current)
		}
	}
	walk(t.Root(), nil)
	return paths
}

// CriticalPaths filtra AllPaths mantendo os caminhos em que algum nó atinge
// severidade composta CRITICAL com confiança no mínimo confidenceFloor.
func (t *Tree) CriticalPaths(confidenceFloor float64) [][]NodeID {
	var critical [][]NodeID
	for _, path := range t.AllPaths() {
		for _, id := range path {
			n := t.Node(id)
			if t.CompoundSeverity(id) == model.SevCritical && n.Confidence.AtLeast(confidenceFloor) {
				critical = append(critical, path)
				break
			}
		}
	}
	return critical
}

// BranchOf sobe pelos pais até achar o ramo fixo que contém o nó. Retorna
// "" para a raiz.
func (t *Tree) BranchOf(id NodeID) Branch {
	for id > 0 {
		parent := t.nodes[id].Parent
		if parent == 0 {
			for b, bid := range t.branches {
				if bid == id {
					return b
				}
			}
		}
		id = parent
	}
	return ""
}
