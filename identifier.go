// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cubebuddies

import "strings"

// Identifier builds the enum identifier for a field value
//
// Identifier("view", "closeup") == "VIEW_CLOSEUP"
func Identifier(field, value string) string {
	return strings.ToUpper(field) + "_" + strings.ToUpper(value)
}

// BuddyIdentifier builds the BuddyId identifier for a buddy name
func BuddyIdentifier(name string) string {
	return "BUDDY_" + strings.ToUpper(name)
}

// EscapeText replaces every newline with a backslash-n sequence
//
// Backslashes and quotes are left alone, the text is emitted as written.
func EscapeText(text string) string {
	return strings.ReplaceAll(text, "\n", `\n`)
}

// unescapeText reverses EscapeText
//
// Text that already held a backslash followed by n does not survive the round trip, it comes back as a newline.
func unescapeText(text string) string {
	return strings.ReplaceAll(text, `\n`, "\n")
}

func boolLiteral(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
