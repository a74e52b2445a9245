package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minic-lang/minic/frontend"
)

type TestCmd struct {
	Path string `help:"Path to the directory containing suite.toml." short:"p" default:"."`
}

func (t *TestCmd) Run() error {
	absPath, err := filepath.Abs(t.Path)
	if err != nil {
		return err
	}

	manifest, err := os.ReadFile(filepath.Join(absPath, "suite.toml"))
	if err != nil {
		return err
	}
	suite, err := frontend.HandleSuiteToml(string(manifest))
	if err != nil {
		return err
	}

	failed := 0
	for _, tc := range suite.Cases {
		file := filepath.Join(absPath, tc.File)
		code, err := os.ReadFile(file)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", tc.Name, err)
			failed++
			continue
		}

		result := frontend.Analyze(tc.File, string(code))
		got := outcome(result)
		switch {
		case got != tc.Expect:
			fmt.Printf("FAIL %s: expected %s, got %s\n", tc.Name, tc.Expect, got)
			failed++
		case tc.Expect == "semantic-errors" && tc.Errors > 0 && len(result.SemErrs) != tc.Errors:
			fmt.Printf("FAIL %s: expected %d semantic errors, got %d\n", tc.Name, tc.Errors, len(result.SemErrs))
			failed++
		default:
			fmt.Printf("PASS %s\n", tc.Name)
		}
	}

	fmt.Printf("%s: %d/%d passed\n", suite.Name, len(suite.Cases)-failed, len(suite.Cases))
	if failed > 0 {
		return fmt.Errorf("%d case(s) failed", failed)
	}
	return nil
}

func outcome(r frontend.Result) string {
	switch {
	case r.LexErr != nil:
		return "lex-error"
	case r.SynErr != nil:
		return "syntax-error"
	case len(r.SemErrs) > 0:
		return "semantic-errors"
	default:
		return "ok"
	}
}
