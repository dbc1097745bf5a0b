// SPDX-License-Identifier: MIT

package field

import "errors"

// ErrLengthMismatch is returned when the solution and output lengths differ.
var ErrLengthMismatch = errors.New("field: length mismatch")
