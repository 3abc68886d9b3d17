// Package recipe loads the catalog of step definitions that anvil commands
// are built from. The catalog is YAML: a list of required tools and named
// recipes, each a label, a failure message and a list of actions whose
// strings are Go templates over scaffold.Data. The built-in catalog is
// embedded; a user file can replace individual recipes by name. Both are
// validated against an embedded JSON Schema before use.
package recipe
