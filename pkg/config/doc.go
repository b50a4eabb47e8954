// Package config loads oaklog layouts from TOML or YAML files and the
// environment, and builds loggers from them.
//
// Sources are merged in order: the embedded defaults, the layout file, then
// OAKLOG_* environment variables:
//
//	items = ["time", "severity", "text"]
//	severity = "WARNING"
//	color = "#c06000"
//
//	[[sinks]]
//	output = "stdout"
//	color = "auto"
//
//	[[sinks]]
//	output = "/var/log/app.log"
//	separator = " | "
//	separate_items = true
package config
