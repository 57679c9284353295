// Package features computes descriptive statistics of LP instances and
// holds the reference datasets searches start from.
//
// CoeffFeatures and SolutionFeatures are instance.Calculator values, so they
// plug directly into instance.Calculate and neighbour.Annotated. Metric turns
// any calculator key into a search objective.
package features
