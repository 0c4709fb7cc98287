// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package schema provides the versioning and error types shared by every puzzle document schema
package schema

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// Versioned is a tiny struct used to grab the schema version for a puzzle document
type Versioned struct {
	// Version is the document schema that this document follows
	//
	// Any integral number is accepted, so `1` and `1.0` resolve to the same version
	Version any `json:"version"`
}

// Int returns the document version as an integer
func (v Versioned) Int() (int, error) {
	switch val := v.Version.(type) {
	case nil:
		return 0, fmt.Errorf("version is not set")
	case bool, string:
		return 0, fmt.Errorf("version %#v is not an integer", val)
	case float32:
		if float64(val) != math.Trunc(float64(val)) {
			return 0, fmt.Errorf("version %v is not an integer", val)
		}
	case float64:
		if val != math.Trunc(val) {
			return 0, fmt.Errorf("version %v is not an integer", val)
		}
	}

	n, err := cast.ToIntE(v.Version)
	if err != nil {
		return 0, fmt.Errorf("version %v is not an integer", v.Version)
	}
	return n, nil
}
