// Package prompt builds the ordered question sets shown to the user and asks
// them on a line-oriented terminal. Question sets differ for a brand-new
// project and for an upgrade of an existing one; building them touches no
// files.
package prompt
