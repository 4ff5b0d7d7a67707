package cli

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/pomotree/internal/theme"
)

//go:embed banner.txt
var banner string

func printBanner(w io.Writer) {
	text := strings.TrimRight(banner, "\n")
	if style := theme.Default().Banner; style != nil {
		text = style.Render(text)
	}
	fmt.Fprintln(w, text)
}
