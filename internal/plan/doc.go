// Package plan executes an ordered list of Steps, one at a time, stopping at
// the first failure. A Step is a labelled group of Actions (run a command
// line, write a file, create a directory); the Sequencer does not care which
// kind of Action a Step holds, it only reports progress and short-circuits.
package plan
