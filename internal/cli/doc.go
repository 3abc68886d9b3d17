// Package cli defines the Cobra command tree for the anvil CLI. Each file
// in this package registers one top-level command (fabricate, construct,
// doctor, etc.) with the root command. Commands parse flags into a
// project.Invocation and hand it to runInvocation; the step logic lives in
// internal/project, internal/recipe and internal/plan.
package cli
