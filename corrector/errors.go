// SPDX-License-Identifier: MIT

package corrector

import "errors"

// ErrNilCorrector indicates a nil operand in a composite.
var ErrNilCorrector = errors.New("corrector: nil corrector")
