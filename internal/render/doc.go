// Package render applies resolved box styles to concrete outputs.
//
// Three targets are supported:
//
//   - HTML: a nested div tree passed through a bluemonday policy.
//   - Apply: merge declarations into elements of an existing goquery document.
//   - Terminal: an approximation of the box model drawn with lipgloss.
//
// None of the renderers change what the resolver produced; they only decide
// how a list of declarations lands on their medium.
package render
