package example

import (
	"fmt"
	"strings"

	"github.com/DOIDFoundation/rpcdoc/diag"
	"github.com/DOIDFoundation/rpcdoc/types"
)

// DefaultEndpoint is where the curl requests of the examples are sent.
const DefaultEndpoint = "localhost:8545"

// Block renders the `#### Example` section of method name. It returns an
// empty string, and reports an error, when neither the request nor the
// response resolves.
func Block(name string, m *types.Method, endpoint string, d *diag.Reporter) string {
	if m.Deprecated {
		return ""
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	postfix := ""
	if m.Subdoc != "" {
		postfix = fmt.Sprintf(" (%s)", m.Subdoc)
	}

	req, hasReq := NewRequest(name, m.Params)
	res, hasRes := NewResponse(m.Returns)

	if !hasReq && !hasRes {
		d.Errorf(name, "%s has no examples%s", name, postfix)
		return ""
	}

	var examples []string
	if hasReq {
		compact, err := req.Compact()
		if err != nil {
			d.Errorf(name, "%s request example: %v%s", name, err, postfix)
		} else {
			examples = append(examples, fmt.Sprintf("Request\n```bash\ncurl --data '%s' -H \"Content-Type: application/json\" -X POST %s\n```", compact, endpoint))
		}
	} else {
		d.Warnf(name, "%s has a response example but not a request example%s", name, postfix)
	}

	if hasRes {
		examples = append(examples, fmt.Sprintf("Response\n```js\n%s\n```", res.Pretty()))
	} else if m.Returns != nil && m.Returns.TextOnly() {
		d.Infof(name, "%s has a request example and only text description for response%s", name, postfix)
	} else {
		d.Warnf(name, "%s has a request example but not a response example%s", name, postfix)
	}

	if len(examples) == 0 {
		return ""
	}
	return "\n\n#### Example\n\n" + strings.Join(examples, "\n\n")
}
