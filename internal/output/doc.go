// Package output renders batch results.
//
// Three formats are supported:
//
//   - text: the decoded string, one per line
//   - pretty: the raw input and the decoded text with terminal styling
//   - json: one JSON object per line
//
// Writers buffer their output; call Flush when done.
package output
