package dircolors

import (
	"os"

	"github.com/arthur-debert/dircolors/pkg/style"
	"github.com/spf13/cobra"
)

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(style.TemplateFuncs(os.Stdout))
}
