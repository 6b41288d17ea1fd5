// Package catalog holds the declarative tool catalogue for the UniFi Network
// Integration API and the generic interpreter that turns a tool invocation
// into a concrete HTTP request.
//
// Every tool is one row in the table: a method, a path template and the
// parameters it accepts. One binder and one compiler interpret the table;
// there are no per-tool code paths.
package catalog

// Param describes a single parameter accepted by an operation.
type Param struct {
	Name        string
	Type        string // "string", "integer", "number", "boolean", "array", "object"
	Description string
	Required    bool
	Enum        []string       // allowed values, advertised in the schema but not enforced locally
	Items       map[string]any // item shape for array params
}

// Operation is one row of the catalogue table. Path placeholders like
// {siteId} are substituted verbatim from the bound arguments; PathParams,
// QueryParams and BodyParams are disjoint and together form the operation's
// full parameter spec.
type Operation struct {
	Name        string
	Description string
	Method      string // GET, POST, PUT or DELETE
	Path        string // template relative to the integration API root

	PathParams  []Param // always required, rendered into Path
	QueryParams []Param // rendered into the query string in declared order
	BodyParams  []Param // rendered into the JSON body, presence-gated

	// BodyDefaults are server-understood defaults injected into create
	// bodies when the caller omits the key. Update operations never set
	// this: every field in an update body is an explicit change.
	BodyDefaults map[string]any

	// Action is the discriminator for POST .../actions operations
	// (e.g. "RESTART"). When set, the compiled body always carries
	// {"action": Action} alongside any bound body fields.
	Action string
}

// Params returns the full parameter spec in declaration order: path, then
// query, then body.
func (op *Operation) Params() []Param {
	out := make([]Param, 0, len(op.PathParams)+len(op.QueryParams)+len(op.BodyParams))
	out = append(out, op.PathParams...)
	out = append(out, op.QueryParams...)
	out = append(out, op.BodyParams...)
	return out
}

// HasBody reports whether the compiled request carries a JSON body. Only
// POST and PUT operations that declare a body shape do; everything else
// (including all DELETEs) sends none.
func (op *Operation) HasBody() bool {
	if op.Method != "POST" && op.Method != "PUT" {
		return false
	}
	return len(op.BodyParams) > 0 || len(op.BodyDefaults) > 0 || op.Action != ""
}
