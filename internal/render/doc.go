// Package render lays out the traffic-light figure.
//
// A Figure is composed of three panels: the study-by-domain grid, the
// per-domain stacked distribution bars and the legend. Layout is computed
// once by Compose; Draw replays it onto any gonum/plot canvas, so every
// export backend sees identical geometry. All text uses one bold sans face.
package render
