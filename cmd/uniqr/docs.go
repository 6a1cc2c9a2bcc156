package uniqr

import (
	"io"

	"github.com/arthur-debert/uniqr/internal/version"
	"github.com/arthur-debert/uniqr/pkg/errors"
	"github.com/spf13/cobra/doc"
)

// Shells lists the shells GenCompletion supports
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenManPage writes the uniqr(1) man page in troff format to w
func GenManPage(w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "UNIQR",
		Section: "1",
		Source:  "uniqr " + version.Version,
		Manual:  "uniqr manual",
	}
	return errors.Wrap(doc.GenMan(NewRootCmd(), header, w), errors.ErrWrite, "failed to generate man page")
}

// GenCompletion writes the completion script for shell to w
func GenCompletion(w io.Writer, shell string) error {
	rootCmd := NewRootCmd()

	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(w)
	case "fish":
		err = rootCmd.GenFishCompletion(w, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell %q (supported: bash, zsh, fish, powershell)", shell)
	}
	return errors.Wrapf(err, errors.ErrWrite, "failed to generate %s completion", shell)
}
