// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of course sheets and their
// attachments.
//
// The same rules guard both directions of the record store: a working copy
// is validated before it is written, and a decoded record is validated
// before it is handed back to the editor. A record that fails the second
// check is treated as corrupted.
package validators

import "context"

// Validator checks obj and reports the first violated rule. When fields are
// given, only the rules for those field names run (see the Field*
// constants); otherwise every rule runs.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
