package cli

import (
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-isatty"
)

const highlightStyle = "deskfolio"

func init() {
	styles.Register(chroma.MustNewStyle(highlightStyle, chroma.StyleEntries{
		chroma.Text:          "#cdd6f4",
		chroma.Error:         "#f38ba8",
		chroma.Comment:       "#6c7086 italic",
		chroma.Keyword:       "#cba6f7",
		chroma.Operator:      "#89dceb",
		chroma.Punctuation:   "#9399b2",
		chroma.Name:          "#cdd6f4",
		chroma.NameAttribute: "#89b4fa",
		chroma.NameTag:       "#f9e2af bold",
		chroma.Literal:       "#cdd6f4",
		chroma.LiteralNumber: "#fab387",
		chroma.LiteralString: "#a6e3a1",
		chroma.Background:    "",
	}))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeTOML writes src to w, highlighted when w is a terminal.
func writeTOML(w io.Writer, src string) error {
	if isTerminal(w) {
		if err := quick.Highlight(w, src, "toml", "terminal256", highlightStyle); err == nil {
			return nil
		}
	}
	_, err := io.WriteString(w, src)
	return err
}
