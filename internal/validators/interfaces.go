// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user directory inputs before they reach a
// service's write path.
//
// A Validator accepts the request value and, optionally, the names of the
// fields to check. With no field names every rule for the type applies.
package validators

import "context"

// Validator validates obj, restricted to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
