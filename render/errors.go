// SPDX-License-Identifier: MIT

package render

import "errors"

// ErrInvalidSize indicates a framebuffer width or height below 1.
var ErrInvalidSize = errors.New("render: invalid framebuffer size")
