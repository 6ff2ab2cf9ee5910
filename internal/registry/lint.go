// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Severity grades a lint finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a problem found in a registry. Issues never prevent loading.
type Issue struct {
	Severity Severity `json:"severity"`
	Kind     string   `json:"kind"`
	Index    int      `json:"index"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s[%d].%s: %s", i.Severity, i.Kind, i.Index, i.Field, i.Message)
}

// Lint reports empty keys, keys shadowed by an earlier entity, and uuids that
// are not canonical UUIDs.
func (r *Registry) Lint() []Issue {
	var issues []Issue
	issues = append(issues, lintEntities(KindAssistant, r.Assistants())...)
	issues = append(issues, lintEntities(KindSkill, r.Skills())...)
	return issues
}

func lintEntities(kind Kind, entities []Entity) []Issue {
	var issues []Issue
	fold := cases.Fold()
	// folded key -> index of the entity that owns it
	seen := make(map[string]int)

	for i, e := range entities {
		fields := []struct {
			name  string
			value string
		}{
			{"shortcut", e.Shortcut},
			{"name", e.Name},
			{"uuid", e.UUID},
		}

		for _, f := range fields {
			if f.value == "" {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Kind:     kind.String(),
					Index:    i,
					Field:    f.name,
					Message:  "empty",
				})
				continue
			}
			key := fold.String(f.value)
			if owner, ok := seen[key]; ok && owner != i {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Kind:     kind.String(),
					Index:    i,
					Field:    f.name,
					Message:  fmt.Sprintf("%q is shadowed by %s[%d]", f.value, kind, owner),
				})
				continue
			}
			seen[key] = i
		}

		if e.UUID != "" && !e.HasCanonicalUUID() {
			issues = append(issues, Issue{
				Severity: SeverityInfo,
				Kind:     kind.String(),
				Index:    i,
				Field:    "uuid",
				Message:  fmt.Sprintf("%q is not a canonical UUID and is passed through verbatim", e.UUID),
			})
		}
	}
	return issues
}
