package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulesPrefix = "mindmate/internal/modules/"

var layers = []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"}

// walkImports calls check for every module import of every non-test file under root.
func walkImports(t *testing.T, root string, check func(file, importPath string)) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if strings.HasPrefix(importPath, modulesPrefix) {
				check(filepath.ToSlash(path), importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
}

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "modules"), func(file, importPath string) {
		module, layer := moduleName(file), detectLayer(file)
		if module == "" || layer == "" {
			return
		}
		if violatesLayerRule(module, layer, importPath) {
			t.Errorf("forbidden import in %s (%s): %s", file, layer, importPath)
		}
	})
}

func TestPlatformStaysModuleFree(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "platform"), func(file, importPath string) {
		t.Errorf("platform package %s imports module %s", file, importPath)
	})
}

// The dashboard talks to modules only through their CLI handlers, so it may
// name their dto types and nothing else.
func TestUIImportsOnlyDTOs(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "ui"), func(file, importPath string) {
		if !isDTO(importPath) {
			t.Errorf("ui package %s imports %s", file, importPath)
		}
	})
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range layers {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func isPortIn(path string) bool {
	return strings.Contains(path, "/port/in/") || strings.HasSuffix(path, "/port/in")
}

func isDTO(path string) bool {
	return strings.Contains(path, "/dto/") || strings.HasSuffix(path, "/dto")
}

func isDomain(path string) bool {
	return strings.Contains(path, "/domain/") || strings.HasSuffix(path, "/domain")
}

func hasSegment(path, segment string) bool {
	return strings.Contains(path+"/", "/"+segment+"/")
}

// violatesLayerRule: across modules only domain, port/in and dto are visible;
// within a module inbound adapters see ports and dtos, and inner layers never
// reach outward.
func violatesLayerRule(module, layer, importPath string) bool {
	sameModule := strings.HasPrefix(importPath, modulesPrefix+module+"/")
	if !sameModule {
		return !isPortIn(importPath) && !isDTO(importPath) && !isDomain(importPath)
	}

	switch layer {
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return hasSegment(importPath, "adapter")
	case "service":
		return hasSegment(importPath, "adapter") || hasSegment(importPath, "usecase")
	case "domain", "dto", "port/in", "port/out":
		return hasSegment(importPath, "adapter") || hasSegment(importPath, "usecase") || hasSegment(importPath, "service")
	default:
		return false
	}
}
