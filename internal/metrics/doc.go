// Package metrics records stage, command and run observations.
//
// The Prometheus implementation registers its collectors on a private
// registry which the CLI writes to a file in text exposition format after the
// run, for pickup by a node-exporter textfile collector.
package metrics
