// Command boundaries enforces the layering rules between bounded contexts.
//
//	go run ./scripts/boundaries
//
// Contexts never import one another; cross-context wiring lives in
// internal/app. Inside a context, domain imports only domain and application
// stays clear of adapters and runtime infrastructure.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type violation struct {
	File   string
	Line   int
	Import string
	Rule   string
}

// layerRule limits what one layer of a context may import from the module.
type layerRule struct {
	name            string
	allowedSubpaths []string
	forbidAdapters  bool
}

var layerRules = map[string]layerRule{
	"domain": {
		name:            "domain",
		allowedSubpaths: []string{"domain"},
		forbidAdapters:  true,
	},
	"application": {
		name:            "application",
		allowedSubpaths: []string{"application", "domain", "ports"},
		forbidAdapters:  true,
	},
	"ports": {
		name:            "ports",
		allowedSubpaths: []string{"domain"},
		forbidAdapters:  true,
	},
}

func main() {
	modulePath, err := readModulePath("go.mod")
	if err != nil {
		fmt.Fprintf(os.Stderr, "read go.mod: %v\n", err)
		os.Exit(2)
	}

	violations := collectViolations("contexts", modulePath)
	if len(violations) == 0 {
		fmt.Println("boundary checks passed")
		return
	}

	fmt.Println("boundary violations found:")
	for _, v := range violations {
		fmt.Printf("- %s:%d imports %q (%s)\n", v.File, v.Line, v.Import, v.Rule)
	}
	os.Exit(1)
}

func readModulePath(goModPath string) (string, error) {
	file, err := os.Open(goModPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "module "); ok {
			return strings.Trim(strings.TrimSpace(rest), `"`), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.New("module directive not found")
}

// collectViolations walks contexts/<group>/<service>/<layer>/... under root.
func collectViolations(root string, modulePath string) []violation {
	var violations []violation

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) < 3 {
			return nil
		}

		servicePrefix := fmt.Sprintf("%s/contexts/%s/%s", modulePath, parts[0], parts[1])
		layer := ""
		if len(parts) > 3 {
			layer = parts[2]
		}
		display := filepath.ToSlash(path)
		violations = append(violations, validateFile(path, display, layer, modulePath, servicePrefix)...)
		return nil
	})

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].File != violations[j].File {
			return violations[i].File < violations[j].File
		}
		if violations[i].Line != violations[j].Line {
			return violations[i].Line < violations[j].Line
		}
		return violations[i].Import < violations[j].Import
	})
	return violations
}

func validateFile(path string, display string, layer string, modulePath string, servicePrefix string) []violation {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return []violation{{File: display, Line: 1, Rule: "file must parse"}}
	}

	var violations []violation
	add := func(line int, importPath string, rule string) {
		violations = append(violations, violation{File: display, Line: line, Import: importPath, Rule: rule})
	}

	rule, layered := layerRules[layer]
	for _, imp := range file.Imports {
		importPath := strings.Trim(imp.Path.Value, `"`)
		line := fset.Position(imp.Pos()).Line

		if hasPrefix(importPath, modulePath+"/contexts") && !hasPrefix(importPath, servicePrefix) {
			add(line, importPath, "cross-context imports are forbidden")
			continue
		}
		if hasPrefix(importPath, modulePath+"/internal") {
			add(line, importPath, "contexts must not import runtime infrastructure")
			continue
		}
		if !layered || !hasPrefix(importPath, servicePrefix) {
			continue
		}

		if rule.forbidAdapters && strings.Contains(importPath, "/adapters/") {
			add(line, importPath, rule.name+" must not import adapters")
			continue
		}
		if !isAllowed(importPath, servicePrefix, rule.allowedSubpaths) {
			add(line, importPath, rule.name+" import is outside explicit allowlist")
		}
	}
	return violations
}

func hasPrefix(path string, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func isAllowed(importPath string, servicePrefix string, subpaths []string) bool {
	for _, sub := range subpaths {
		if hasPrefix(importPath, servicePrefix+"/"+sub) {
			return true
		}
	}
	return false
}
