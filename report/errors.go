// SPDX-License-Identifier: MIT
package report

import "fmt"

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
