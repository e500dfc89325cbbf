package internal

import "fmt"

var (
	Version = "0.1.0"
	Commit  = "dev"
)

func PrintableVersion() string {
	return fmt.Sprintf("EchoScribe %s (%s)", Version, Commit)
}
