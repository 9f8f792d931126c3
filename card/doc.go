// Package card holds the composition and rendering protocol shared by the
// card families in this module.
//
// Every builder owns an ordered Data mapping and exposes it only through
// AsData, which returns a snapshot. Parents store the snapshots of their
// children at the time they are added, so a parent never observes later
// changes to a child. A Root owns the payload of a whole card and renders it
// as a plain map, as JSON passed through an Encoder with the card's language
// code, or as an HTML script block.
package card
