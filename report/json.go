// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/assignment/hungarian"
)

// WriteJSON writes res as indented JSON followed by a newline.
// Direction is encoded through its TextMarshaler ("min"/"max").
func WriteJSON(w io.Writer, res hungarian.MatchingResult) error {
	if res.Pairs == nil {
		res.Pairs = []hungarian.MatchingPair{}
	}
	b, err := sonic.ConfigStd.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)

	return err
}
