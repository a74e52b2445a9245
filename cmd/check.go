package main

import (
	"fmt"
	"os"

	"github.com/minic-lang/minic/frontend"
)

type CheckCmd struct {
	File string `arg:"" required:"" help:"Path to the source file." type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	code, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	result := frontend.Analyze(c.File, string(code))
	if result.Ok() {
		fmt.Println("ok")
		return nil
	}

	switch {
	case result.LexErr != nil:
		e := result.LexErr
		fmt.Printf("%s:%s: error: %s\n", e.Span.Source, e.Span.String(), e.Msg)
	case result.SynErr != nil:
		e := result.SynErr
		fmt.Printf("%s:%s: error: %s\n", e.Span.Source, e.Span.String(), e.Msg)
	default:
		for _, e := range result.SemErrs {
			fmt.Printf("%s:%s: error: %s\n", e.Span.Source, e.Span.String(), e.Error())
		}
	}
	return fmt.Errorf("%d error(s)", len(result.Diagnostics()))
}
