// Package scaffold lays down the boilerplate tree of a new widget project.
// Each embedded file is copied verbatim, copied with its placeholder tokens
// substituted, or rendered as a Go template, and files whose path contains
// the WidgetName sentinel are renamed after the widget.
package scaffold
