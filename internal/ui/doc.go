// Package ui draws the HUD panel and the board overlay of the GUI build. Its
// implementation requires the ebiten build tag.
package ui
