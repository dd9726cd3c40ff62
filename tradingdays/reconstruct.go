// SPDX-License-Identifier: MIT

package tradingdays

import (
	"fmt"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/matrix"
)

// Reconstruct recovers raw-mode columns (groups 1..k−1, then the reference
// group) from contrast columns and the reference-group sums. A nil weights
// slice selects DefaultWeights.
// Errors: ErrInvalidClustering, ErrInvalidWeights, matrix.ErrDimensionMismatch.
func Reconstruct(contrast matrix.Matrix, reference []float64, clustering daycount.Clustering, weights []float64) (*matrix.Dense, error) {
	if clustering.IsZero() {
		return nil, fmt.Errorf("Reconstruct: %w", ErrInvalidClustering)
	}
	if weights == nil {
		weights = DefaultWeights(clustering)
	}
	k := clustering.Len()
	if len(weights) != k-1 {
		return nil, fmt.Errorf("Reconstruct: %w", ErrInvalidWeights)
	}
	if err := matrix.ValidateShape(contrast, len(reference), k-1); err != nil {
		return nil, fmt.Errorf("Reconstruct: %w", err)
	}

	out, err := matrix.NewDense(len(reference), k)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: %w", err)
	}
	for i, ref := range reference {
		row, _ := out.Row(i)
		for j := 0; j < k-1; j++ {
			v, err := contrast.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Reconstruct: %w", err)
			}
			row[j] = v + weights[j]*ref
		}
		row[k-1] = ref
	}

	return out, nil
}
