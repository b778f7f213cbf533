package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-gargiulo/McKenna/doc"
	"github.com/a-gargiulo/McKenna/format"
	"github.com/a-gargiulo/McKenna/token"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	w      io.Writer
	format format.Format
	wire   bool
	indent int
	Color  func(t doc.Type, a ColorAttr, s string) string
	err    error
}

func Encode(node *doc.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{w: w, indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = noColor
	}
	if es.format.IsYAML() {
		return es.encodeYAML(node)
	}
	es.encode(node, 0)
	if es.err == nil {
		es.write("\n")
	}
	return es.err
}

func noColor(_ doc.Type, _ ColorAttr, s string) string { return s }

func (es *EncState) write(s string) {
	if es.err != nil {
		return
	}
	_, es.err = io.WriteString(es.w, s)
}

func (es *EncState) encode(y *doc.Node, depth int) {
	switch y.Type {
	case doc.NullType:
		es.write(es.Color(y.Type, ValueColor, "null"))
	case doc.BoolType:
		es.write(es.Color(y.Type, ValueColor, strconv.FormatBool(y.Bool)))
	case doc.NumberType:
		es.write(es.Color(y.Type, ValueColor, numberLiteral(y)))
	case doc.StringType:
		es.write(es.Color(y.Type, ValueColor, token.Quote(y.String)))
	case doc.ArrayType:
		es.encodeArr(y, depth)
	case doc.ObjectType:
		es.encodeObj(y, depth)
	default:
		if es.err == nil {
			es.err = fmt.Errorf("cannot encode node type %s", y.Type)
		}
	}
}

func (es *EncState) encodeArr(y *doc.Node, depth int) {
	sep := es.Color(y.Type, SepColor, ",")
	es.write(es.Color(y.Type, SepColor, "["))
	for i, v := range y.Values {
		if i > 0 {
			es.write(sep)
		}
		es.nl(depth + 1)
		es.encode(v, depth+1)
	}
	if len(y.Values) > 0 {
		es.nl(depth)
	}
	es.write(es.Color(y.Type, SepColor, "]"))
}

func (es *EncState) encodeObj(y *doc.Node, depth int) {
	sep := es.Color(y.Type, SepColor, ",")
	col := es.Color(y.Type, SepColor, ":")
	if !es.wire {
		col += " "
	}
	es.write(es.Color(y.Type, SepColor, "{"))
	for i := range y.Fields {
		if i > 0 {
			es.write(sep)
		}
		es.nl(depth + 1)
		es.write(es.Color(y.Type, FieldColor, token.Quote(y.Fields[i].String)))
		es.write(col)
		es.encode(y.Values[i], depth+1)
	}
	if len(y.Fields) > 0 {
		es.nl(depth)
	}
	es.write(es.Color(y.Type, SepColor, "}"))
}

func (es *EncState) nl(depth int) {
	if es.wire {
		return
	}
	es.write("\n")
	es.write(strings.Repeat(" ", es.indent*depth))
}

func numberLiteral(y *doc.Node) string {
	if y.Number != "" {
		return y.Number
	}
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	}
	return "0"
}

func (es *EncState) encodeYAML(y *doc.Node) error {
	d, err := yaml.Marshal(toYAML(y))
	if err != nil {
		return err
	}
	_, err = es.w.Write(d)
	return err
}

// toYAML mirrors doc.ToAny but keeps object field order via
// yaml.MapSlice.
func toYAML(y *doc.Node) any {
	switch y.Type {
	case doc.ObjectType:
		ms := make(yaml.MapSlice, len(y.Fields))
		for i := range y.Fields {
			ms[i] = yaml.MapItem{
				Key:   y.Fields[i].String,
				Value: toYAML(y.Values[i]),
			}
		}
		return ms
	case doc.ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = toYAML(v)
		}
		return res
	default:
		return doc.ToAny(y)
	}
}
