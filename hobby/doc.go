/*
Package hobby places Bézier control points for a sequence of knots, using
John Hobby's spline interpolation algorithm. The spline editor uses it to
give freshly created or "smoothed" splines pleasant default handles, which
users then refine by dragging.

The primary source of information for "Hobby-splines" is:

	Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
	Computer Science Dept. Stanford University
	Report No. STAN-CS-85-1047, Jan 1985
	http://i.stanford.edu/pub/cstr/reports/cs/tr/85/1047/CS-TR-85-1047.pdf

The practical algorithm is explained in

	Computers & Typesetting, Vol. B & D.
	http://www-cs-faculty.stanford.edu/~knuth/abcde.html

Only open paths are supported, with a curl of 1 at both ends and a uniform
tension for every join. That is all a function-like spline (a curve queried
by x) needs.

# Usage

	handles, err := hobby.FindControls(knots, 1.0)

handles[i] holds the two control points between knots[i] and knots[i+1].

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hobby
