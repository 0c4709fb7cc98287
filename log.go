// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cubebuddies

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// PrintHeader writes a generated header to w, highlighted as C++ unless NO_COLOR is set
func PrintHeader(logger *log.Logger, w io.Writer, header string) {
	if termenv.EnvNoColor() {
		fmt.Fprint(w, header)
		return
	}

	style := "tokyonight-day"
	if lipgloss.HasDarkBackground() {
		style = "tokyonight-moon"
	}

	var buf strings.Builder
	if err := quick.Highlight(&buf, header, "cpp", "terminal256", style); err != nil {
		logger.Debugf("failed to highlight: %v", err)
		fmt.Fprint(w, header)
		return
	}

	fmt.Fprint(w, buf.String())
}
