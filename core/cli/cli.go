package cli

import (
	cliContext "github.com/mudler/echoscribe/core/cli/context"
)

var CLI struct {
	cliContext.Context `embed:""`

	Run RunCMD `cmd:"" help:"Run the EchoScribe API server, this is the default command if no other command is specified. Run 'echoscribe run --help' for more information" default:"withargs"`
}
