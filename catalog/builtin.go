package catalog

import (
	"github.com/crateful/wirecat/codec"
	"github.com/crateful/wirecat/ir"
)

// crud is the common policy: everything permitted, by id or by name.
func crud() map[Verb]Selectors {
	return map[Verb]Selectors{
		VerbFetch:  SelectAny,
		VerbCreate: SelectID,
		VerbUpdate: SelectAny,
		VerbDelete: SelectAny,
	}
}

// readOnly permits fetch only.
func readOnly() map[Verb]Selectors {
	return map[Verb]Selectors{
		VerbFetch: SelectAny,
	}
}

// Builtin returns the catalog's builtin entity type table.
func Builtin() *Types {
	ts := NewTypes()
	for _, t := range builtinTypes() {
		if err := ts.Register(t); err != nil {
			panic(err)
		}
	}
	return ts
}

func builtinTypes() []*EntityType {
	return []*EntityType{
		{
			Name:     "buildings",
			Singular: "building",
			Plural:   "buildings",
			Ops:      crud(),
		},
		{
			Name:     "categories",
			Singular: "category",
			Plural:   "categories",
			Ops:      crud(),
		},
		{
			Name:     "departments",
			Singular: "department",
			Plural:   "departments",
			Ops:      crud(),
		},
		{
			Name:     "sites",
			Singular: "site",
			Plural:   "sites",
			Ops:      crud(),
		},
		{
			Name:     "scripts",
			Singular: "script",
			Plural:   "scripts",
			Ops:      crud(),
		},
		{
			Name:     "computers",
			Singular: "computer",
			Plural:   "computers",
			NamePath: "general/name",
			Ops:      crud(),
			Hints: codec.Subtree(map[string]*codec.Hint{
				"computer": codec.Subtree(map[string]*codec.Hint{
					"hardware": codec.Subtree(map[string]*codec.Hint{
						"storage": codec.ListHint(),
					}),
					"extension_attributes": codec.ListHint(),
				}),
			}),
			Stub: func() *ir.Node {
				body := ir.Object()
				general := ir.Object()
				general.SetField("name", ir.FromString(randomToken()))
				body.SetField("general", general)
				res := ir.Object()
				res.SetField("computer", body)
				return res
			},
		},
		{
			Name:     "computer_groups",
			Singular: "computer_group",
			Plural:   "computer_groups",
			Ops:      crud(),
			Stub: func() *ir.Node {
				return stubBody("computer_group",
					"is_smart", "true",
					"name", randomToken(),
				)
			},
		},
		{
			Name:     "dock_items",
			Singular: "dock_item",
			Plural:   "dock_items",
			Ops:      crud(),
			Stub: func() *ir.Node {
				return stubBody("dock_item",
					"name", randomToken(),
					"path", "/",
					"type", "Folder",
				)
			},
		},
		{
			Name:     "network_segments",
			Singular: "network_segment",
			Plural:   "network_segments",
			Ops:      crud(),
			Stub: func() *ir.Node {
				return stubBody("network_segment",
					"name", randomToken(),
					"starting_address", "10.0.0.1",
					"ending_address", "10.0.0.255",
				)
			},
		},
		{
			Name:     "ibeacons",
			Singular: "ibeacon",
			Plural:   "ibeacons",
			Ops:      crud(),
			Stub: func() *ir.Node {
				return stubBody("ibeacon",
					"name", randomToken(),
					"uuid", randomUUID(),
				)
			},
		},
		{
			Name:     "packages",
			Singular: "package",
			Plural:   "packages",
			Ops:      crud(),
			Stub: func() *ir.Node {
				name := randomToken()
				return stubBody("package",
					"filename", name,
					"name", name,
				)
			},
		},
		{
			Name:     "mac_applications",
			Singular: "mac_application",
			Plural:   "mac_applications",
			NamePath: "general/name",
			Ops:      crud(),
			Stub: func() *ir.Node {
				body := ir.Object()
				general := ir.Object()
				general.SetField("name", ir.FromString(randomToken()))
				general.SetField("version", ir.FromString(randomSemver()))
				general.SetField("bundle_id", ir.FromString("edu.utah"))
				general.SetField("url", ir.FromString("https://apps.apple.com/us/app/fake-data/id123456789"))
				body.SetField("general", general)
				res := ir.Object()
				res.SetField("mac_application", body)
				return res
			},
		},
		{
			Name:     "mobile_device_applications",
			Singular: "mobile_device_application",
			Plural:   "mobile_device_applications",
			NamePath: "general/name",
			Ops:      crud(),
			Stub: func() *ir.Node {
				body := ir.Object()
				general := ir.Object()
				general.SetField("name", ir.FromString(randomToken()))
				general.SetField("version", ir.FromString(randomSemver()))
				general.SetField("bundle_id", ir.FromString("utah.edu"))
				general.SetField("os_type", ir.FromString("iOS"))
				body.SetField("general", general)
				res := ir.Object()
				res.SetField("mobile_device_application", body)
				return res
			},
		},
		{
			Name:     "policies",
			Singular: "policy",
			Plural:   "policies",
			NamePath: "general/name",
			Ops:      crud(),
		},
		{
			Name:     "mobile_devices",
			Singular: "mobile_device",
			Plural:   "mobile_devices",
			NamePath: "general/name",
			Ops:      crud(),
			Stub: func() *ir.Node {
				body := ir.Object()
				general := ir.Object()
				general.SetField("name", ir.FromString(randomToken()))
				general.SetField("udid", ir.FromString(randomUUID()))
				general.SetField("serial_number", ir.FromString(randomSerial()))
				body.SetField("general", general)
				res := ir.Object()
				res.SetField("mobile_device", body)
				return res
			},
		},
		{
			Name:     "distribution_points",
			Singular: "distribution_point",
			Plural:   "distribution_points",
			Ops: map[Verb]Selectors{
				VerbFetch:  SelectAny,
				VerbUpdate: SelectAny,
				VerbDelete: SelectAny,
			},
			Stub: func() *ir.Node {
				return stubBody("distribution_point",
					"name", randomToken(),
					"share_name", randomToken(),
					"read_only_username", randomToken(),
					"read_only_password_sha256", "********************",
					"read_write_username", randomToken(),
					"read_write_password_sha256", "********************",
				)
			},
		},
		{
			Name:     "patch_policies",
			Singular: "patch_policy",
			Plural:   "patch_policies",
			NamePath: "general/name",
			Ops: map[Verb]Selectors{
				VerbFetch:  SelectID,
				VerbCreate: SelectID,
				VerbUpdate: SelectID,
				VerbDelete: SelectID,
			},
			Stub: func() *ir.Node {
				res := stubBody("patch_policy",
					"software_title_configuration_id", "1",
				)
				general := ir.Object()
				general.SetField("name", ir.FromString(randomToken()))
				res.Get("patch_policy").SetField("general", general)
				return res
			},
		},
		{
			Name:     "patch_software_titles",
			Singular: "patch_software_title",
			Plural:   "patch_software_titles",
			Ops: map[Verb]Selectors{
				VerbFetch:  SelectID,
				VerbCreate: SelectID,
				VerbUpdate: SelectID,
				VerbDelete: SelectID,
			},
			Hints: codec.Subtree(map[string]*codec.Hint{
				"patch_software_title": codec.Subtree(map[string]*codec.Hint{
					"versions": codec.Subtree(map[string]*codec.Hint{
						"version": codec.ListHint(),
					}),
				}),
			}),
			Stub: func() *ir.Node {
				return stubBody("patch_software_title",
					"name_id", "0C6",
					"source_id", "1",
				)
			},
		},
		{
			Name:     "computer_reports",
			Singular: "computer_report",
			Plural:   "computer_reports",
			Ops:      readOnly(),
		},
	}
}
