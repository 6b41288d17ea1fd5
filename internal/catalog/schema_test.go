package catalog

import (
	"encoding/json"
	"testing"
)

func TestInputSchemaShape(t *testing.T) {
	op := mustLookup(t, "unifi_create_acl_rule")
	schema := op.InputSchema()

	if schema["type"] != "object" {
		t.Errorf("schema type = %v", schema["type"])
	}

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatal("properties missing")
	}

	action, ok := props["action"].(map[string]any)
	if !ok {
		t.Fatal("action property missing")
	}
	enum, ok := action["enum"].([]string)
	if !ok || len(enum) != 2 {
		t.Errorf("action enum = %v", action["enum"])
	}

	required, ok := schema["required"].([]string)
	if !ok {
		t.Fatal("required list missing")
	}
	want := map[string]bool{"siteId": true, "name": true, "action": true}
	if len(required) != len(want) {
		t.Errorf("required = %v", required)
	}
	for _, r := range required {
		if !want[r] {
			t.Errorf("unexpected required field %s", r)
		}
	}
}

func TestInputSchemaNoRequiredWhenNoneRequired(t *testing.T) {
	op := mustLookup(t, "unifi_list_sites")
	schema := op.InputSchema()
	if _, ok := schema["required"]; ok {
		t.Error("list sites should have no required fields")
	}
}

func TestInputSchemaArrayItems(t *testing.T) {
	op := mustLookup(t, "unifi_create_wlan")
	schema := op.InputSchema()
	props := schema["properties"].(map[string]any)
	bands := props["bands"].(map[string]any)

	items, ok := bands["items"].(map[string]any)
	if !ok {
		t.Fatal("bands items missing")
	}
	if items["type"] != "string" {
		t.Errorf("bands item type = %v", items["type"])
	}
}

// Every schema in the catalogue must serialize cleanly: the server marshals
// them once at startup for tools/list.
func TestAllSchemasMarshal(t *testing.T) {
	for _, op := range Operations() {
		if _, err := json.Marshal(op.InputSchema()); err != nil {
			t.Errorf("%s: schema does not marshal: %v", op.Name, err)
		}
	}
}
