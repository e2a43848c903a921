package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jtree/encode"
	"github.com/signadot/jtree/ir"
)

var out io.Writer = os.Stderr

// JSON formats its node as compact JSON with %s or %v.
type JSON struct{ *ir.Node }

func (y JSON) String() string {
	return render(y.Node)
}

// Logf writes to stderr. Wrap nodes in JSON to log their value.
func Logf(msg string, args ...any) {
	fmt.Fprintf(out, msg, args...)
}

func render(x *ir.Node) string {
	if x == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", *x)
	}
	return buf.String()
}
