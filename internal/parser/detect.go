package parser

import (
	"os"
	"path/filepath"
	"strings"
)

// Bounds limita a varredura recursiva.
type Bounds struct {
	MaxDepth   int
	MaxFiles   int
	Extensions []string
}

// DetectSourceFiles varre as raízes em ordem, coletando arquivos cuja
// extensão está na allow-list. node_modules e diretórios ocultos são
// pulados; a coleta para cedo ao atingir MaxFiles. Erros de filesystem são
// contados e a varredura segue nas raízes restantes.
func DetectSourceFiles(roots []string, bounds Bounds) Result {
	var res Result
	for _, root := range roots {
		if len(res.Files) >= bounds.MaxFiles {
			break
		}
		walk(root, 0, bounds, &res)
	}
	return res
}

func walk(dir string, depth int, bounds Bounds, res *Result) {
	if depth > bounds.MaxDepth || len(res.Files) >= bounds.MaxFiles {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		res.Suppressed++
		return
	}

	for _, entry := range entries {
		if len(res.Files) >= bounds.MaxFiles {
			return
		}
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if name == "node_modules" || strings.HasPrefix(name, ".") {
				continue
			}
			walk(path, depth+1, bounds, res)
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if !allowed(ext, bounds.Extensions) {
			continue
		}
		res.Files = append(res.Files, SourceFile{
			Type: typeForExt(ext),
			Path: path,
		})
	}
}

func allowed(ext string, extensions []string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func typeForExt(ext string) SourceType {
	switch ext {
	case ".jsx":
		return JSX
	case ".ts":
		return TypeScript
	case ".tsx":
		return TSX
	default:
		return JavaScript
	}
}
