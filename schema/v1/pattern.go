// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package v1

import "regexp"

// BuddyNamePattern is a regular expression for buddy names
//
// Names end up inside BUDDY_<NAME> identifiers so they must be valid identifier fragments
var BuddyNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
