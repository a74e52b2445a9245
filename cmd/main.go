package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("minic"),
		kong.Description("MiniC front-end CLI"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Check   CheckCmd   `cmd:"" help:"Analyze a source file and report diagnostics." aliases:"analyze"`
	Ast     AstCmd     `cmd:"" help:"Print the canonical rendering of a source file."`
	Test    TestCmd    `cmd:"" help:"Run a suite.toml manifest of expected outcomes."`
	New     NewCmd     `cmd:"" help:"Create a new project."`
	Version VersionCmd `cmd:"" help:"Show version."`
}
