// SPDX-License-Identifier: EPL-2.0

package wavsift

import "errors"

var (
	ErrInputMissing = errors.New("input directory does not exist")
	ErrInputNotDir  = errors.New("input path is not a directory")
)
