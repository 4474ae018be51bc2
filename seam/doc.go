// Package seam implements content-aware image narrowing by seam carving.
//
// Each iteration removes one column:
//  1. project the working color image to greyscale luma
//  2. compute its energy with the Sobel edge filter
//  3. accumulate minimum path costs row by row (CumulativeEnergy)
//  4. backtrack the cheapest top-to-bottom seam (MinimumSeam)
//  5. drop the seam's pixels (RemoveSeam)
//
// Carve repeats this ncols times on a private copy and never modifies its
// input.
package seam
