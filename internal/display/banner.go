package display

import (
	"fmt"
	"os"

	"github.com/backmassage/ledgermatch/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, ` _              _                                  _       _
| |    ___  __| | __ _  ___ _ __ _ __ ___   __ _| |_ ___| |__
| |   / _ \/ _`+"`"+` |/ _`+"`"+` |/ _ \ '__| '_ `+"`"+` _ \ / _`+"`"+` | __/ __| '_ \
| |__|  __/ (_| | (_| |  __/ |  | | | | | | (_| | || (__| | | |
|_____\___|\__,_|\__, |\___|_|  |_| |_| |_|\__,_|\__\___|_| |_|
                 |___/
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
