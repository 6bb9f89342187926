/*
Package spline is the math engine of an interactive editor for
piecewise-cubic Bézier splines.

A Spline owns an ordered sequence of control points. Position i is a knot if
i mod 3 = 0, a leading control point ("lead handle") if i mod 3 = 1 and a
trailing control point ("trail handle") if i mod 3 = 2. Every four
consecutive points starting at a knot form a Span, a cubic Bézier segment.
Consecutive spans share their boundary knot.

The spline is treated as a function of x: PositionAtX, VelocityAtX and
AccelAtX find the span whose x-domain contains the query and invert the
span's x-polynomial by Newton's method. Spans are expected to be monotonic
in x; the editing operations keep handles between their bounding knots to
help with that, but it is not enforced.

Edits keep the curve consistent: dragging a knot translates its adjacent
handles along, dragging a handle mirrors the opposite handle through a
continuous knot (first-derivative continuity), knots keep a minimum
distance to each other, and handles never cross their knots in x.

A Spline is not safe for concurrent use. Edits touch several neighbouring
points which have to change as one unit, so callers needing concurrency
must guard a spline as a whole.

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline
