// Package rvrpconfig loads solver tuning knobs from a YAML/JSON file
// via spf13/viper, grounded on niceyeti-tabular's
// tabular/reinforcement/learning.go FromYaml. It is driver-side
// plumbing only: rvrpengine, rvrpimprove, and every other core package
// take plain Go values and never import this package.
package rvrpconfig
