package extract

import (
	"regexp"
)

// Context é o registro léxico entregue aos analisadores: tokens grosseiros
// extraídos por regex, sem parsing nem noção de escopo. Falsos positivos
// (um "catch" dentro de string, por exemplo) são limitação aceita.
type Context struct {
	Imports     []string // imports e requires
	Functions   []string // declarações de função e arrow functions
	Hooks       []string // identificadores estilo hook (useAlgo)
	AsyncOps    []string // async/await/.then/Promise/timers
	StateTokens []string // useState/setState/dispatch/store/global
	ErrorTokens []string // try/catch/throw/Error(/console.error
}

var (
	reImports = regexp.MustCompile(`(?m)^\s*(?:import\s+[^\n]+|(?:const|let|var)\s+[\w$]+\s*=\s*require\([^)]*\))`)
	reFuncs   = regexp.MustCompile(`function\s+[A-Za-z_$][\w$]*|(?:const|let|var)\s+[A-Za-z_$][\w$]*\s*=\s*(?:async\s+)?(?:function\b|\([^)]*\)\s*=>|[A-Za-z_$][\w$]*\s*=>)`)
	reHooks   = regexp.MustCompile(`\buse[A-Z][\w$]*`)
	reAsync   = regexp.MustCompile(`async\s+function|\bawait\b|\.then\(|\.catch\(|Promise\.|setTimeout\(|setInterval\(`)
	reState   = regexp.MustCompile(`\buseState\b|\buseReducer\b|\bsetState\b|\bdispatch\b|\bwindow\.[\w$]+|\bglobalThis\b|\bstore\.[\w$]+`)
	reErrors  = regexp.MustCompile(`\btry\b|\bcatch\b|\bthrow\b|\bError\(|console\.error`)
)

// FromSource extrai o contexto léxico do texto cru do arquivo.
func FromSource(content string) Context {
	return Context{
		Imports:     reImports.FindAllString(content, -1),
		Functions:   reFuncs.FindAllString(content, -1),
		Hooks:       reHooks.FindAllString(content, -1),
		AsyncOps:    reAsync.FindAllString(content, -1),
		StateTokens: reState.FindAllString(content, -1),
		ErrorTokens: reErrors.FindAllString(content, -1),
	}
}

// HasAsyncOps informa se o arquivo tem alguma operação assíncrona.
func (c Context) HasAsyncOps() bool { return len(c.AsyncOps) > 0 }

// HasStateTokens informa se o arquivo toca gerenciamento de estado.
func (c Context) HasStateTokens() bool { return len(c.StateTokens) > 0 }

// HasErrorHandling informa se o arquivo tem algum token de tratamento de erro.
func (c Context) HasErrorHandling() bool { return len(c.ErrorTokens) > 0 }
