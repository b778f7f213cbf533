package encode

import (
	"bytes"
	"strings"

	"github.com/a-gargiulo/McKenna/doc"
)

func MustString(node *doc.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
