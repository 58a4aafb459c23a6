// Package generator drives a single widgetgen run through its stages:
// detect, prompt, write, install and end. Every stage either lets the run
// proceed or ends it with an explicit Outcome.
package generator
