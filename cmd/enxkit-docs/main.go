// enxkit-docs writes the man page and shell completion scripts used by
// release packaging.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/wiloon/enxkit/cmd/enxkit"
	"github.com/wiloon/enxkit/internal/version"
)

// shells maps a completion target to its output file name
var shells = []struct {
	name string
	file string
}{
	{"bash", "enxkit.bash"},
	{"zsh", "_enxkit"},
	{"fish", "enxkit.fish"},
	{"powershell", "enxkit.ps1"},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}

	if err := generate(enxkit.NewRootCmd(), os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// generate writes man/enxkit.1 and completions/<file> below dir
func generate(rootCmd *cobra.Command, dir string) error {
	manDir := filepath.Join(dir, "man")
	compDir := filepath.Join(dir, "completions")
	for _, d := range []string{manDir, compDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}

	header := &doc.GenManHeader{
		Title:   "ENXKIT",
		Section: "1",
		Source:  "enxkit " + version.Version,
		Manual:  "enxkit manual",
	}
	man, err := os.Create(filepath.Join(manDir, "enxkit.1"))
	if err != nil {
		return err
	}
	if err := doc.GenMan(rootCmd, header, man); err != nil {
		_ = man.Close()
		return fmt.Errorf("man page: %w", err)
	}
	if err := man.Close(); err != nil {
		return err
	}

	for _, sh := range shells {
		if err := writeCompletion(rootCmd, sh.name, filepath.Join(compDir, sh.file)); err != nil {
			return fmt.Errorf("%s completion: %w", sh.name, err)
		}
	}
	return nil
}

func writeCompletion(rootCmd *cobra.Command, shell, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(f, true)
	case "zsh":
		return rootCmd.GenZshCompletion(f)
	case "fish":
		return rootCmd.GenFishCompletion(f, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(f)
	}
	return fmt.Errorf("unknown shell %q", shell)
}
