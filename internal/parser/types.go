package parser

type SourceType string

const (
	JavaScript SourceType = "javascript"
	JSX        SourceType = "jsx"
	TypeScript SourceType = "typescript"
	TSX        SourceType = "tsx"
)

type SourceFile struct {
	Type SourceType
	Path string
}

// Result agrega a varredura: arquivos elegíveis encontrados e a contagem de
// erros de filesystem suprimidos (diretório ausente, permissão negada). A
// varredura continua nesses casos, mas o total fica visível no relatório.
type Result struct {
	Files      []SourceFile
	Suppressed int
}
