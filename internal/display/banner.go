package display

import (
	"fmt"
	"io"

	"github.com/backmassage/cardslug/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	if term.Magenta != "" {
		fmt.Fprint(w, term.Magenta)
	}
	fmt.Fprint(w, `                      _     _
  ___ __ _ _ __ __| |___| |_   _  __ _
 / __/ _`+"`"+` | '__/ _`+"`"+` / __| | | | |/ _`+"`"+` |
| (_| (_| | | | (_| \__ \ | |_| | (_| |
 \___\__,_|_|  \__,_|___/_|\__,_|\__, |
                                 |___/
`)
	if term.Magenta != "" {
		fmt.Fprintln(w, term.NC)
	}
}
