// Package scaffold renders the static files anvil writes into generated
// projects (Vite and Tailwind configuration, stylesheets, the Next.js +
// Express package manifest and server). Bodies are embedded text/templates
// evaluated against a Data value derived from the project name and language.
package scaffold
