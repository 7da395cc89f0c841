// Package knn implements a k-nearest-neighbor classifier over fixed-length
// feature vectors, plus evaluation helpers for reporting accuracy on a
// held-out set.
//
// The classifier is brute-force: Fit stores the training matrix and Predict
// scans it for the k nearest rows by squared Euclidean distance. For the
// sample counts this pipeline produces (thousands of short binary vectors)
// a linear scan is well within interactive latency and keeps the model
// exact rather than approximate.
package knn
