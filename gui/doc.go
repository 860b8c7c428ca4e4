// Package gui shows a grid in an ebiten window and forwards mouse and
// keyboard gestures to a sim.Scheduler. Build with the 'ebiten' tag.
//
// Controls: click toggles a cell, dragging paints cells alive, Space starts
// and stops, N steps once, R randomizes, C clears, Q or Esc quits.
package gui
