// SPDX-License-Identifier: MIT

package tradingdays

import "errors"

var (
	// ErrInvalidWeights indicates contrast weights whose count differs from k−1.
	ErrInvalidWeights = errors.New("tradingdays: weights must have one entry per non-reference group")

	// ErrInvalidClustering indicates the zero Clustering was supplied.
	ErrInvalidClustering = errors.New("tradingdays: invalid clustering")
)
