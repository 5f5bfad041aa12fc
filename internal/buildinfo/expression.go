package buildinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/expr-lang/expr"

	"bddreport/internal/env"
)

// evaluate runs a sysinfo expression. The environment exposes every
// property as env["key"], plus property(key), goos and goarch.
func evaluate(expression string, vars env.Variables) (string, error) {
	snapshot := env.Snapshot(vars)
	environment := map[string]any{
		"env": snapshot,
		"property": func(key string) string {
			return snapshot[key]
		},
		"goos":   runtime.GOOS,
		"goarch": runtime.GOARCH,
	}
	program, err := expr.Compile(strings.TrimSpace(expression), expr.Env(environment), expr.AllowUndefinedVariables())
	if err != nil {
		return "", fmt.Errorf("compile %q: %w", expression, err)
	}
	result, err := expr.Run(program, environment)
	if err != nil {
		return "", fmt.Errorf("evaluate %q: %w", expression, err)
	}
	if result == nil {
		return "", fmt.Errorf("evaluate %q: no value", expression)
	}
	if value, ok := result.(string); ok {
		return value, nil
	}
	return fmt.Sprintf("%v", result), nil
}
