// Package widget holds the domain types shared by every generator stage: the
// state detected in an existing project, the answers collected from the user,
// and the merged Spec that drives rendering.
package widget
