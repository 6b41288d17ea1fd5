package catalog

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Request is a compiled HTTP exchange, ready for the executor. Path is the
// interpolated path template, Query the encoded query string without the
// leading "?" (empty when no query parameter was bound), Body the JSON body
// or nil when the operation sends none.
type Request struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

// URL returns the path plus query suffix. An empty query contributes no "?".
func (r *Request) URL() string {
	if r.Query == "" {
		return r.Path
	}
	return r.Path + "?" + r.Query
}

// Compile turns a bound argument set into a concrete request. It is pure:
// compiling the same arguments twice yields byte-identical output.
//
// Path placeholders are substituted verbatim (transport-level escaping is the
// executor's concern). Query parameters are rendered in declaration order.
// Bodies are assembled field-by-field under the presence rule, then create
// defaults are filled in for keys the caller omitted, and finally the action
// discriminator is set for action-style operations.
func (op *Operation) Compile(args Arguments) *Request {
	req := &Request{
		Method: op.Method,
		Path:   op.Path,
	}

	for _, p := range op.PathParams {
		req.Path = strings.Replace(req.Path, "{"+p.Name+"}", argString(args[p.Name]), 1)
	}

	var q strings.Builder
	for _, p := range op.QueryParams {
		v, ok := args[p.Name]
		if !ok {
			continue
		}
		if q.Len() > 0 {
			q.WriteByte('&')
		}
		q.WriteString(url.QueryEscape(p.Name))
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(argString(v)))
	}
	req.Query = q.String()

	if op.HasBody() {
		body := make(map[string]any)
		for _, p := range op.BodyParams {
			if v, ok := args[p.Name]; ok {
				body[p.Name] = v
			}
		}
		for k, v := range op.BodyDefaults {
			if _, ok := body[k]; !ok {
				body[k] = v
			}
		}
		if op.Action != "" {
			body["action"] = op.Action
		}
		req.Body = body
	}

	return req
}

// argString renders an argument value for a path segment or query value.
// JSON numbers arrive as float64; integral values are rendered without a
// decimal point so an offset of 10 becomes "10", not "10.000000".
func argString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprintf("%v", t)
	}
}
