package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/a-gargiulo/McKenna/doc"
	"github.com/a-gargiulo/McKenna/encode"
)

// Logf writes a diagnostic line to stderr. Node arguments render in
// wire form rather than as raw struct dumps.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*doc.Node)
		if !ok {
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
			args[i] = fmt.Sprintf("[raw node] %v", x)
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
