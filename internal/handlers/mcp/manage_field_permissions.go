// internal/handlers/mcp/manage_field_permissions.go
// MCP Tool: salesforce_manage_field_permissions - FLS per profile

package mcp

import (
	"fmt"
	"strings"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func ManageFieldPermissionsTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_manage_field_permissions",
		Description: "View, grant or revoke field-level security on a field, per profile (FieldPermissions rows).",
		Args: []mcp.ArgSpec{
			{Name: "operation", Kind: mcp.KindString, Required: true, Description: "One of: view, grant, revoke"},
			{Name: "objectName", Kind: mcp.KindString, Required: true, Description: "API name of the object"},
			{Name: "fieldName", Kind: mcp.KindString, Required: true, Description: "Full field API name, e.g. MyField__c"},
			{Name: "profileNames", Kind: mcp.KindArray, Description: "Profiles to grant/revoke; view ignores it"},
		},
		Handler: manageFieldPermissionsHandler,
	}
}

func manageFieldPermissionsHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	operation := argString(args, "operation")
	objectName := argString(args, "objectName")
	fieldKey := objectName + "." + argString(args, "fieldName")

	switch operation {
	case "view":
		qr, err := s.Query(fmt.Sprintf(
			"SELECT Id, ParentId, Parent.Profile.Name, PermissionsRead, PermissionsEdit "+
				"FROM FieldPermissions WHERE SobjectType = '%s' AND Field = '%s'",
			escapeSOQL(objectName), escapeSOQL(fieldKey)))
		if err != nil {
			return nil, fmt.Errorf("query field permissions failed: %w", err)
		}
		return marshalText(map[string]any{
			"field":       fieldKey,
			"totalSize":   qr.TotalSize,
			"permissions": qr.Records,
		})

	case "grant", "revoke":
		profiles := argStringSlice(args, "profileNames")
		if len(profiles) == 0 {
			return nil, fmt.Errorf("profileNames is required for %s", operation)
		}
		parentIDs, err := permissionSetIDs(s, profiles)
		if err != nil {
			return nil, err
		}

		results := []map[string]any{}
		for profile, parentID := range parentIDs {
			var outcome map[string]any
			if operation == "grant" {
				created := s.SObject("FieldPermissions").
					Set("ParentId", parentID).
					Set("SobjectType", objectName).
					Set("Field", fieldKey).
					Set("PermissionsRead", true).
					Set("PermissionsEdit", true).
					Create()
				outcome = map[string]any{"profile": profile, "granted": created != nil}
			} else {
				qr, qErr := s.Query(fmt.Sprintf(
					"SELECT Id FROM FieldPermissions WHERE ParentId = '%s' AND Field = '%s'",
					escapeSOQL(parentID), escapeSOQL(fieldKey)))
				if qErr != nil {
					outcome = map[string]any{"profile": profile, "revoked": false, "error": qErr.Error()}
				} else {
					revoked := 0
					for _, rec := range qr.Records {
						if s.SObject("FieldPermissions").Delete(rec.StringField("Id")) == nil {
							revoked++
						}
					}
					outcome = map[string]any{"profile": profile, "revoked": revoked > 0}
				}
			}
			results = append(results, outcome)
		}
		return marshalText(map[string]any{
			"operation": operation,
			"field":     fieldKey,
			"results":   results,
		})
	}
	return nil, fmt.Errorf("unsupported operation %q (want view|grant|revoke)", operation)
}

// permissionSetIDs map profile name -> PermissionSet Id (parent FieldPermissions).
func permissionSetIDs(s *salesforce.Session, profiles []string) (map[string]string, error) {
	quoted := make([]string, 0, len(profiles))
	for _, p := range profiles {
		quoted = append(quoted, "'"+escapeSOQL(p)+"'")
	}
	qr, err := s.Query(fmt.Sprintf(
		"SELECT Id, Profile.Name FROM PermissionSet WHERE IsOwnedByProfile = true AND Profile.Name IN (%s)",
		strings.Join(quoted, ", ")))
	if err != nil {
		return nil, fmt.Errorf("resolve profiles failed: %w", err)
	}
	out := map[string]string{}
	for _, rec := range qr.Records {
		name := ""
		if prof, ok := rec["Profile"].(map[string]any); ok {
			name, _ = prof["Name"].(string)
		}
		if name != "" {
			out[name] = rec.StringField("Id")
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no matching profiles found: %s", strings.Join(profiles, ", "))
	}
	return out, nil
}
