// Package template defines the renderer-agnostic template engine contract
// shared by the document renderers, plus adapters that satisfy it.
package template
