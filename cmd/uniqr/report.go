package uniqr

import (
	"fmt"
	"os"

	"github.com/arthur-debert/uniqr/pkg/errors"
	"github.com/arthur-debert/uniqr/pkg/ui/styles"
	"github.com/rs/zerolog/log"
)

// ReportError prints err to out in the Error style and returns the exit
// code the process should end with. Usage and configuration errors get a
// pointer to --help.
func ReportError(out *os.File, err error) int {
	if err == nil {
		return 0
	}

	code := errors.GetErrorCode(err)
	log.Debug().
		Err(err).
		Str("code", string(code)).
		Interface("details", errors.GetErrorDetails(err)).
		Msg("Command failed")

	styler := styles.New(out)
	fmt.Fprintln(out, styler.Render("Error", MsgErrPrefix+err.Error()))

	switch code {
	case errors.ErrInvalidInput, errors.ErrConfigLoad, errors.ErrConfigParse, errors.ErrConfigValid:
		fmt.Fprintln(out, styler.Render("Hint", MsgHintUsage))
	}

	return 1
}
