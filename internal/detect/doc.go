package detect

// Package detect decides whether a PNG image carries transparency. It looks at
// the tRNS chunk, palette entries in use and the alpha channel extrema of the
// decoded pixels.
