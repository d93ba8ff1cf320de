// Package spaces provides the spaces shipped with geonym.
//
// Each space is a [geonym.Space]: a Generate and Render pair with a fixed
// descriptor. Use [RegisterAll] to add every space to a registry in the
// order they appear in the navigation.
package spaces
