package catalog

// Shared parameter constructors. The catalogue repeats the same shapes across
// every resource family, so the table builds them from a few helpers instead
// of open-coding each map.

func pathID(name, desc string) Param {
	return Param{Name: name, Type: "string", Description: desc, Required: true}
}

func str(name, desc string) Param {
	return Param{Name: name, Type: "string", Description: desc}
}

func reqStr(name, desc string) Param {
	return Param{Name: name, Type: "string", Description: desc, Required: true}
}

func integer(name, desc string) Param {
	return Param{Name: name, Type: "integer", Description: desc}
}

func boolean(name, desc string) Param {
	return Param{Name: name, Type: "boolean", Description: desc}
}

func strArray(name, desc string) Param {
	return Param{Name: name, Type: "array", Description: desc, Items: map[string]any{"type": "string"}}
}

// listQuery is the standard pagination/filter trio for list endpoints.
// The filter value is an opaque expression evaluated by the API; it is never
// parsed locally.
func listQuery() []Param {
	return []Param{
		integer("offset", "Number of records to skip"),
		integer("limit", "Maximum number of records to return"),
		str("filter", "Filter expression evaluated by the API (e.g. name.eq('IoT'))"),
	}
}

func site() Param {
	return pathID("siteId", "Site identifier")
}

// operations is the full tool catalogue, one row per tool. Order is the
// order tools are advertised to clients.
var operations = []Operation{
	{
		Name:        "unifi_get_application_info",
		Description: "Get UniFi Network application version and build information",
		Method:      "GET",
		Path:        "/v1/info",
	},
	{
		Name:        "unifi_list_sites",
		Description: "List sites managed by this UniFi Network application",
		Method:      "GET",
		Path:        "/v1/sites",
		QueryParams: listQuery(),
	},

	// Devices
	{
		Name:        "unifi_list_devices",
		Description: "List adopted devices on a site",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/devices",
		PathParams:  []Param{site()},
		QueryParams: listQuery(),
	},
	{
		Name:        "unifi_get_device",
		Description: "Get detailed information about a device",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/devices/{deviceId}",
		PathParams:  []Param{site(), pathID("deviceId", "Device identifier")},
	},
	{
		Name:        "unifi_get_device_statistics",
		Description: "Get the latest statistics snapshot for a device",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/devices/{deviceId}/statistics/latest",
		PathParams:  []Param{site(), pathID("deviceId", "Device identifier")},
	},
	{
		Name:        "unifi_restart_device",
		Description: "Restart a device",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/devices/{deviceId}/actions",
		PathParams:  []Param{site(), pathID("deviceId", "Device identifier")},
		Action:      "RESTART",
	},
	{
		Name:        "unifi_adopt_device",
		Description: "Adopt a pending device onto a site",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/devices/{deviceId}/actions",
		PathParams:  []Param{site(), pathID("deviceId", "Device identifier")},
		Action:      "ADOPT",
	},
	{
		Name:        "unifi_locate_device",
		Description: "Toggle the locate LED on a device",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/devices/{deviceId}/actions",
		PathParams:  []Param{site(), pathID("deviceId", "Device identifier")},
		BodyParams:  []Param{boolean("enabled", "Turn the locate LED on (true) or off (false)")},
		Action:      "LOCATE",
	},
	{
		Name:        "unifi_power_cycle_port",
		Description: "Power-cycle a PoE port on a device",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/devices/{deviceId}/interfaces/ports/{portIdx}/actions",
		PathParams: []Param{
			site(),
			pathID("deviceId", "Device identifier"),
			{Name: "portIdx", Type: "integer", Description: "Port index on the device", Required: true},
		},
		Action: "POWER_CYCLE",
	},

	// Clients
	{
		Name:        "unifi_list_clients",
		Description: "List clients connected to a site",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/clients",
		PathParams:  []Param{site()},
		QueryParams: listQuery(),
	},
	{
		Name:        "unifi_get_client",
		Description: "Get detailed information about a connected client",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/clients/{clientId}",
		PathParams:  []Param{site(), pathID("clientId", "Client identifier")},
	},
	{
		Name:        "unifi_authorize_client_guest",
		Description: "Authorize a client for guest network access, optionally with time, data and rate limits",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/clients/{clientId}/actions",
		PathParams:  []Param{site(), pathID("clientId", "Client identifier")},
		BodyParams: []Param{
			integer("timeLimitMinutes", "Authorization duration in minutes"),
			integer("dataUsageLimitMBytes", "Data usage cap in megabytes"),
			integer("rxRateLimitKbps", "Download rate limit in kbps"),
			integer("txRateLimitKbps", "Upload rate limit in kbps"),
		},
		Action: "AUTHORIZE_GUEST_ACCESS",
	},

	// Networks
	{
		Name:        "unifi_list_networks",
		Description: "List networks configured on a site",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/networks",
		PathParams:  []Param{site()},
		QueryParams: listQuery(),
	},
	{
		Name:        "unifi_get_network",
		Description: "Get a network's configuration",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/networks/{networkId}",
		PathParams:  []Param{site(), pathID("networkId", "Network identifier")},
	},
	{
		Name:        "unifi_create_network",
		Description: "Create a network on a site",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/networks",
		PathParams:  []Param{site()},
		BodyParams: []Param{
			reqStr("name", "Network name"),
			integer("vlanId", "VLAN identifier"),
			str("subnet", "Subnet in CIDR notation (e.g. 10.0.20.0/24)"),
			str("gatewayIp", "Gateway IP address"),
			boolean("dhcpEnabled", "Enable the built-in DHCP server"),
			str("dhcpRangeStart", "First address of the DHCP pool"),
			str("dhcpRangeStop", "Last address of the DHCP pool"),
		},
		BodyDefaults: map[string]any{"type": "CORPORATE"},
	},
	{
		Name:        "unifi_update_network",
		Description: "Update a network. Only the fields provided are changed; omitted fields are left as-is",
		Method:      "PUT",
		Path:        "/v1/sites/{siteId}/networks/{networkId}",
		PathParams:  []Param{site(), pathID("networkId", "Network identifier")},
		BodyParams: []Param{
			str("name", "Network name"),
			integer("vlanId", "VLAN identifier"),
			str("subnet", "Subnet in CIDR notation"),
			str("gatewayIp", "Gateway IP address"),
			boolean("dhcpEnabled", "Enable the built-in DHCP server"),
			str("dhcpRangeStart", "First address of the DHCP pool"),
			str("dhcpRangeStop", "Last address of the DHCP pool"),
		},
	},
	{
		Name:        "unifi_delete_network",
		Description: "Delete a network from a site",
		Method:      "DELETE",
		Path:        "/v1/sites/{siteId}/networks/{networkId}",
		PathParams:  []Param{site(), pathID("networkId", "Network identifier")},
	},

	// WiFi
	{
		Name:        "unifi_list_wlans",
		Description: "List WiFi networks (WLANs) on a site",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/wlans",
		PathParams:  []Param{site()},
		QueryParams: listQuery(),
	},
	{
		Name:        "unifi_get_wlan",
		Description: "Get a WiFi network's configuration",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/wlans/{wlanId}",
		PathParams:  []Param{site(), pathID("wlanId", "WLAN identifier")},
	},
	{
		Name:        "unifi_create_wlan",
		Description: "Create a WiFi network on a site",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/wlans",
		PathParams:  []Param{site()},
		BodyParams: []Param{
			reqStr("name", "SSID"),
			reqStr("networkId", "Network the WLAN is bridged to"),
			str("passphrase", "WPA passphrase; omit for an open network"),
			boolean("enabled", "Broadcast the SSID"),
			boolean("hideSsid", "Hide the SSID from broadcast"),
			{
				Name: "bands", Type: "array",
				Description: "Radio bands to broadcast on",
				Items:       map[string]any{"type": "string", "enum": []string{"2.4GHz", "5GHz", "6GHz"}},
			},
		},
		BodyDefaults: map[string]any{"type": "STANDARD"},
	},
	{
		Name:        "unifi_update_wlan",
		Description: "Update a WiFi network. Only the fields provided are changed",
		Method:      "PUT",
		Path:        "/v1/sites/{siteId}/wlans/{wlanId}",
		PathParams:  []Param{site(), pathID("wlanId", "WLAN identifier")},
		BodyParams: []Param{
			str("name", "SSID"),
			str("networkId", "Network the WLAN is bridged to"),
			str("passphrase", "WPA passphrase"),
			boolean("enabled", "Broadcast the SSID"),
			boolean("hideSsid", "Hide the SSID from broadcast"),
			{
				Name: "bands", Type: "array",
				Description: "Radio bands to broadcast on",
				Items:       map[string]any{"type": "string", "enum": []string{"2.4GHz", "5GHz", "6GHz"}},
			},
		},
	},
	{
		Name:        "unifi_delete_wlan",
		Description: "Delete a WiFi network from a site",
		Method:      "DELETE",
		Path:        "/v1/sites/{siteId}/wlans/{wlanId}",
		PathParams:  []Param{site(), pathID("wlanId", "WLAN identifier")},
	},

	// Hotspot vouchers
	{
		Name:        "unifi_list_vouchers",
		Description: "List hotspot vouchers on a site",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/hotspot/vouchers",
		PathParams:  []Param{site()},
		QueryParams: listQuery(),
	},
	{
		Name:        "unifi_get_voucher",
		Description: "Get a hotspot voucher",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/hotspot/vouchers/{voucherId}",
		PathParams:  []Param{site(), pathID("voucherId", "Voucher identifier")},
	},
	{
		Name:        "unifi_generate_vouchers",
		Description: "Generate one or more hotspot vouchers",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/hotspot/vouchers",
		PathParams:  []Param{site()},
		BodyParams: []Param{
			reqStr("name", "Voucher note/name"),
			{Name: "timeLimitMinutes", Type: "integer", Description: "Validity period in minutes", Required: true},
			integer("count", "Number of vouchers to generate (default 1)"),
			integer("dataUsageLimitMBytes", "Data usage cap per voucher in megabytes"),
			integer("rxRateLimitKbps", "Download rate limit in kbps"),
			integer("txRateLimitKbps", "Upload rate limit in kbps"),
			integer("guestLimit", "Number of guests that may share one voucher"),
		},
		BodyDefaults: map[string]any{"count": 1},
	},
	{
		Name:        "unifi_delete_voucher",
		Description: "Delete a hotspot voucher",
		Method:      "DELETE",
		Path:        "/v1/sites/{siteId}/hotspot/vouchers/{voucherId}",
		PathParams:  []Param{site(), pathID("voucherId", "Voucher identifier")},
	},
	{
		Name:        "unifi_bulk_delete_vouchers",
		Description: "Delete all vouchers matching a filter expression",
		Method:      "DELETE",
		Path:        "/v1/sites/{siteId}/hotspot/vouchers",
		PathParams:  []Param{site()},
		QueryParams: []Param{
			{
				Name: "filter", Type: "string", Required: true,
				Description: "Filter expression selecting the vouchers to delete (e.g. expired.eq(true))",
			},
		},
	},

	// Firewall zones
	{
		Name:        "unifi_list_firewall_zones",
		Description: "List firewall zones on a site",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/firewall/zones",
		PathParams:  []Param{site()},
		QueryParams: listQuery(),
	},
	{
		Name:        "unifi_get_firewall_zone",
		Description: "Get a firewall zone",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/firewall/zones/{zoneId}",
		PathParams:  []Param{site(), pathID("zoneId", "Firewall zone identifier")},
	},
	{
		Name:        "unifi_create_firewall_zone",
		Description: "Create a firewall zone grouping one or more networks",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/firewall/zones",
		PathParams:  []Param{site()},
		BodyParams: []Param{
			reqStr("name", "Zone name"),
			strArray("networkIds", "Networks belonging to the zone"),
		},
	},
	{
		Name:        "unifi_update_firewall_zone",
		Description: "Update a firewall zone. Only the fields provided are changed",
		Method:      "PUT",
		Path:        "/v1/sites/{siteId}/firewall/zones/{zoneId}",
		PathParams:  []Param{site(), pathID("zoneId", "Firewall zone identifier")},
		BodyParams: []Param{
			str("name", "Zone name"),
			strArray("networkIds", "Networks belonging to the zone"),
		},
	},
	{
		Name:        "unifi_delete_firewall_zone",
		Description: "Delete a firewall zone",
		Method:      "DELETE",
		Path:        "/v1/sites/{siteId}/firewall/zones/{zoneId}",
		PathParams:  []Param{site(), pathID("zoneId", "Firewall zone identifier")},
	},

	// ACL rules. Note the single-segment camel-case path: this family uses a
	// different convention than firewall/zones in the upstream API.
	{
		Name:        "unifi_list_acl_rules",
		Description: "List ACL firewall rules on a site",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/aclRules",
		PathParams:  []Param{site()},
		QueryParams: listQuery(),
	},
	{
		Name:        "unifi_get_acl_rule",
		Description: "Get an ACL firewall rule",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/aclRules/{ruleId}",
		PathParams:  []Param{site(), pathID("ruleId", "ACL rule identifier")},
	},
	{
		Name:        "unifi_create_acl_rule",
		Description: "Create an ACL firewall rule",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/aclRules",
		PathParams:  []Param{site()},
		BodyParams: []Param{
			reqStr("name", "Rule name"),
			{Name: "action", Type: "string", Description: "What the rule does to matching traffic", Required: true, Enum: []string{"ALLOW", "BLOCK"}},
			integer("index", "Rule priority; lower values are evaluated first"),
			boolean("enabled", "Whether the rule is active"),
			str("sourceZoneId", "Source firewall zone"),
			str("destinationZoneId", "Destination firewall zone"),
			str("protocol", "Protocol to match (e.g. tcp, udp, all)"),
			str("description", "Free-form rule description"),
		},
		BodyDefaults: map[string]any{"enabled": true},
	},
	{
		Name:        "unifi_update_acl_rule",
		Description: "Update an ACL firewall rule. Only the fields provided are changed",
		Method:      "PUT",
		Path:        "/v1/sites/{siteId}/aclRules/{ruleId}",
		PathParams:  []Param{site(), pathID("ruleId", "ACL rule identifier")},
		BodyParams: []Param{
			str("name", "Rule name"),
			{Name: "action", Type: "string", Description: "What the rule does to matching traffic", Enum: []string{"ALLOW", "BLOCK"}},
			integer("index", "Rule priority; lower values are evaluated first"),
			boolean("enabled", "Whether the rule is active"),
			str("sourceZoneId", "Source firewall zone"),
			str("destinationZoneId", "Destination firewall zone"),
			str("protocol", "Protocol to match (e.g. tcp, udp, all)"),
			str("description", "Free-form rule description"),
		},
	},
	{
		Name:        "unifi_delete_acl_rule",
		Description: "Delete an ACL firewall rule",
		Method:      "DELETE",
		Path:        "/v1/sites/{siteId}/aclRules/{ruleId}",
		PathParams:  []Param{site(), pathID("ruleId", "ACL rule identifier")},
	},

	// Traffic matching lists
	{
		Name:        "unifi_list_traffic_matching_lists",
		Description: "List traffic matching lists on a site",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/trafficMatchingLists",
		PathParams:  []Param{site()},
		QueryParams: listQuery(),
	},
	{
		Name:        "unifi_get_traffic_matching_list",
		Description: "Get a traffic matching list",
		Method:      "GET",
		Path:        "/v1/sites/{siteId}/trafficMatchingLists/{listId}",
		PathParams:  []Param{site(), pathID("listId", "Traffic matching list identifier")},
	},
	{
		Name:        "unifi_create_traffic_matching_list",
		Description: "Create a traffic matching list for use in ACL rules",
		Method:      "POST",
		Path:        "/v1/sites/{siteId}/trafficMatchingLists",
		PathParams:  []Param{site()},
		BodyParams: []Param{
			reqStr("name", "List name"),
			{Name: "type", Type: "string", Description: "What the list entries are", Required: true, Enum: []string{"ADDRESS", "PORT", "DOMAIN", "APPLICATION"}},
			strArray("items", "List entries (addresses, ports, domains or application ids)"),
			str("description", "Free-form list description"),
		},
	},
	{
		Name:        "unifi_update_traffic_matching_list",
		Description: "Update a traffic matching list. Only the fields provided are changed",
		Method:      "PUT",
		Path:        "/v1/sites/{siteId}/trafficMatchingLists/{listId}",
		PathParams:  []Param{site(), pathID("listId", "Traffic matching list identifier")},
		BodyParams: []Param{
			str("name", "List name"),
			{Name: "type", Type: "string", Description: "What the list entries are", Enum: []string{"ADDRESS", "PORT", "DOMAIN", "APPLICATION"}},
			strArray("items", "List entries"),
			str("description", "Free-form list description"),
		},
	},
	{
		Name:        "unifi_delete_traffic_matching_list",
		Description: "Delete a traffic matching list",
		Method:      "DELETE",
		Path:        "/v1/sites/{siteId}/trafficMatchingLists/{listId}",
		PathParams:  []Param{site(), pathID("listId", "Traffic matching list identifier")},
	},
}

var byName = func() map[string]*Operation {
	m := make(map[string]*Operation, len(operations))
	for i := range operations {
		m[operations[i].Name] = &operations[i]
	}
	return m
}()

// Lookup returns the operation registered under name.
func Lookup(name string) (*Operation, bool) {
	op, ok := byName[name]
	return op, ok
}

// Operations returns the full catalogue in registration order. The returned
// slice and its contents are read-only.
func Operations() []*Operation {
	out := make([]*Operation, 0, len(operations))
	for i := range operations {
		out = append(out, &operations[i])
	}
	return out
}

// Count returns the number of registered operations.
func Count() int {
	return len(operations)
}
