// Package validate runs the ordered rule pipeline over a draft
// configuration. Rules are evaluated in declaration order and the first
// failure is the one reported; nothing downstream sees a config that did
// not pass every rule.
package validate

import (
	"fmt"

	"modelgen/internal/config"
	"modelgen/internal/registry"
)

// Error is a field-level or cross-field rule violation.
type Error struct {
	Rule    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Rule is one validation step. Rules do not touch anything outside the
// draft; the single sanctioned mutation is the documented annotated ⇒
// field-constraints implication.
type Rule struct {
	Name  string
	Check func(d *config.Draft) *Error
}

// Rules is the pipeline, field-level rules first, cross-field rules after.
var Rules = []Rule{
	{Name: "complete-catalogue", Check: checkCompleteCatalogue},
	{Name: "openapi-scopes-members", Check: checkOpenAPIScopeMembers},
	{Name: "annotated-implies-constraints", Check: applyAnnotatedImplication},
	{Name: "generic-containers-target", Check: checkGenericContainersTarget},
}

// Run evaluates the pipeline, fail-fast. On success the draft is fit to
// freeze; on failure no resolved config may be handed downstream.
func Run(d *config.Draft) error {
	for _, rule := range Rules {
		if err := rule.Check(d); err != nil {
			err.Rule = rule.Name
			return err
		}
	}
	return nil
}

// checkCompleteCatalogue guards the merger contract: every declared option
// has exactly one resolved entry.
func checkCompleteCatalogue(d *config.Draft) *Error {
	for _, opt := range registry.All() {
		if d.Value(opt.Name) == nil {
			return &Error{Message: fmt.Sprintf("option %s was not resolved", opt.Name)}
		}
	}
	return nil
}

// checkOpenAPIScopeMembers rejects scope names outside the declared
// member set. The list kind carries members the coercer does not check.
func checkOpenAPIScopeMembers(d *config.Draft) *Error {
	opt, err := registry.Describe(registry.OpenAPIScopes)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	for _, scope := range d.Strings(registry.OpenAPIScopes) {
		if !contains(opt.Enum, scope) {
			return &Error{Message: fmt.Sprintf(
				"invalid openapi scope %q: must be one of %v", scope, opt.Enum)}
		}
	}
	return nil
}

func contains(members []string, value string) bool {
	for _, m := range members {
		if m == value {
			return true
		}
	}
	return false
}

// applyAnnotatedImplication force-enables field_constraints when
// use_annotated is set. The implication is one-directional and wins over an
// explicitly supplied false.
func applyAnnotatedImplication(d *config.Draft) *Error {
	if d.Bool(registry.UseAnnotated) && !d.Bool(registry.FieldConstraints) {
		d.Set(registry.FieldConstraints, true, d.Source(registry.UseAnnotated))
	}
	return nil
}

// checkGenericContainersTarget rejects generic container types for the
// oldest supported target version.
func checkGenericContainersTarget(d *config.Draft) *Error {
	if d.Bool(registry.UseGenericContainerTypes) &&
		d.String(registry.TargetVersion) == registry.LegacyTargetVersion {
		return &Error{Message: fmt.Sprintf(
			"--use-generic-container-types cannot be used with --target-version %s: the version will not be supported in a future release",
			registry.LegacyTargetVersion)}
	}
	return nil
}
