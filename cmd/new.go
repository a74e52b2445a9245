package main

import (
	"os"
	"path/filepath"
)

type NewCmd struct {
	Name string `arg:"" required:"" help:"Name of the new project."`
}

func (n *NewCmd) Run() error {
	projectDir := n.Name
	if err := os.MkdirAll(filepath.Join(projectDir, "src"), 0755); err != nil {
		return err
	}

	// src/main.mc
	mainContent := "int main() {\n    return 0;\n}\n"
	if err := os.WriteFile(filepath.Join(projectDir, "src", "main.mc"), []byte(mainContent), 0644); err != nil {
		return err
	}

	// suite.toml
	tomlContent := "name = \"" + n.Name + "\"\n\n[[cases]]\nname = \"main\"\nfile = \"src/main.mc\"\nexpect = \"ok\"\n"
	if err := os.WriteFile(filepath.Join(projectDir, "suite.toml"), []byte(tomlContent), 0644); err != nil {
		return err
	}

	return nil
}
