package cli

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/sparklet/windot/internal/picker"
)

// Clipboard modes accepted by pick --clipboard.
const (
	ClipboardAuto  = "auto"
	ClipboardOSC52 = "osc52"
	ClipboardNone  = "none"
)

// osc52Clipboard asks the terminal emulator to set the system clipboard
// with an OSC 52 escape sequence.
type osc52Clipboard struct {
	w io.Writer
}

func (c osc52Clipboard) SetText(text string) error {
	_, err := fmt.Fprintf(c.w, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

type noClipboard struct{}

func (noClipboard) SetText(string) error { return nil }

// newClipboard selects the sink for mode. Auto uses OSC 52 only when out is
// a terminal; escape sequences in a pipe would corrupt the output.
func newClipboard(mode string, out io.Writer) (picker.Clipboard, string, error) {
	switch mode {
	case ClipboardAuto:
		if isTerminal(out) {
			return osc52Clipboard{w: out}, ClipboardOSC52, nil
		}
		return noClipboard{}, ClipboardNone, nil
	case ClipboardOSC52:
		return osc52Clipboard{w: out}, ClipboardOSC52, nil
	case ClipboardNone:
		return noClipboard{}, ClipboardNone, nil
	}
	return nil, "", fmt.Errorf("invalid clipboard %q: must be one of auto, osc52, none", mode)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
