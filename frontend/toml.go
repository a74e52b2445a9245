package frontend

import (
	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// SuiteToml is a batch-check manifest: a list of source files together
// with the outcome each one is expected to produce.
type SuiteToml struct {
	Name  string      `toml:"name" validate:"required"`
	Cases []SuiteCase `toml:"cases" validate:"required,min=1,dive"`
}

type SuiteCase struct {
	Name   string `toml:"name" validate:"required"`
	File   string `toml:"file" validate:"required"`
	Expect string `toml:"expect" validate:"required,oneof=ok lex-error syntax-error semantic-errors"`
	// Errors is the expected number of semantic errors; zero means any
	// non-empty count is accepted.
	Errors int `toml:"errors" validate:"gte=0"`
}

func HandleSuiteToml(tomlContent string) (SuiteToml, error) {
	var st SuiteToml
	_, err := toml.Decode(tomlContent, &st)
	if err != nil {
		return st, err
	}
	validate := validator.New()
	if err := validate.Struct(st); err != nil {
		return st, err
	}
	return st, nil
}
