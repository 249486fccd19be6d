// SPDX-License-Identifier: MIT

package tensor

import "errors"

var (
	// ErrShape indicates data whose length is not 2^legs.
	ErrShape = errors.New("tensor: data length does not match legs")

	// ErrUnknownLeg indicates a leg label missing from the tensor.
	ErrUnknownLeg = errors.New("tensor: unknown leg")
)
