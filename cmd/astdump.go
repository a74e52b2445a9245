package main

import (
	"fmt"
	"os"

	"github.com/minic-lang/minic/frontend"
)

type AstCmd struct {
	File string `arg:"" required:"" help:"Path to the source file." type:"existingfile"`
}

func (a *AstCmd) Run() error {
	code, err := os.ReadFile(a.File)
	if err != nil {
		return err
	}

	result := frontend.Analyze(a.File, string(code))
	switch {
	case result.LexErr != nil:
		return fmt.Errorf("%s: %s", result.LexErr.Span.String(), result.LexErr.Msg)
	case result.SynErr != nil:
		return fmt.Errorf("%s: %s", result.SynErr.Span.String(), result.SynErr.Msg)
	}

	// Semantic errors do not prevent printing; the tree exists either way.
	fmt.Print(frontend.Print(result.TU))
	return nil
}
