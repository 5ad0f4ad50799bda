// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	slotsTable         = "slots"
	slotKeyColumn      = "slot_key"
	payloadColumn      = "payload"
	updatedAtColumn    = "updated_at"
	upsertSlotConflict = "ON CONFLICT (slot_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at"
)

func buildSelectSlotQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(payloadColumn).
		From(slotsTable).
		Where(sq.Eq{slotKeyColumn: key}).
		ToSql()
}

func buildUpsertSlotQuery(b sq.StatementBuilderType, key string, value []byte, now time.Time) (string, []any, error) {
	return b.Insert(slotsTable).
		Columns(slotKeyColumn, payloadColumn, updatedAtColumn).
		Values(key, string(value), now).
		Suffix(upsertSlotConflict).
		ToSql()
}

func buildDeleteSlotQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(slotsTable).
		Where(sq.Eq{slotKeyColumn: key}).
		ToSql()
}
