// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-course-sheet/internal/logger"
	"github.com/MKhiriev/go-course-sheet/internal/media"
	"github.com/MKhiriev/go-course-sheet/internal/mock"
	"github.com/MKhiriev/go-course-sheet/internal/store"
	"github.com/MKhiriev/go-course-sheet/internal/utils"
	"github.com/MKhiriev/go-course-sheet/internal/validators"
	"github.com/MKhiriev/go-course-sheet/models"
)

const testSlotKey = "mma-course-sheet"

func sequentialIDs(prefix string) utils.IDGenerator {
	n := 0
	return utils.IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	})
}

// newTestSheetSvc builds the service stack used by the editor on top of slot.
func newTestSheetSvc(t *testing.T, slot store.SlotStorage) CourseSheetService {
	t.Helper()
	validator := validators.NewCourseSheetValidator()
	svc := NewCourseSheetService(slot, testSlotKey, validator, sequentialIDs("sheet"), logger.Nop())
	return NewCourseSheetValidationService(validator, logger.Nop()).Wrap(svc)
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func fullSheet() models.CourseSheet {
	striking := models.Striking
	return models.CourseSheet{
		Date:       day(2026, time.March, 14),
		Discipline: &striking,
		WarmUp:     models.StringPtr("- Shadow boxing 3 rounds"),
		Techniques: models.StringPtr("- Jab\n- Cross"),
		Notes:      models.StringPtr("Bonne séance"),
		Media: []models.Attachment{
			{
				ID:      "att-1",
				Type:    models.Image,
				DataURL: media.EncodeDataURL("image/png", []byte{0x89, 'P', 'N', 'G'}),
				Name:    "garde.png",
				Size:    4,
			},
			media.NewYouTubeAttachment(media.YouTubeRef{
				ID:           "dQw4w9WgXcQ",
				EmbedURL:     media.YouTubeEmbedURL("dQw4w9WgXcQ"),
				ThumbnailURL: media.YouTubeThumbnailURL("dQw4w9WgXcQ"),
			}, "att-2"),
		},
	}
}

// ── Save / Load ──────────────────────────────────────────────────────────────

func TestCourseSheetService_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestSheetSvc(t, store.NewMemorySlotStorage(0))

	saved, err := svc.Save(ctx, fullSheet())
	require.NoError(t, err)
	assert.Equal(t, "sheet-1", saved.ID)

	loaded, ok := svc.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, saved, loaded)
	require.NotNil(t, loaded.Date)
	assert.True(t, models.SameDay(day(2026, time.March, 14), loaded.Date))
	require.Len(t, loaded.Media, 2)
	assert.Equal(t, models.YouTube, loaded.Media[1].Type)
	assert.Zero(t, loaded.Media[1].Size)
}

func TestCourseSheetService_Save_KeepsExistingID(t *testing.T) {
	ctx := context.Background()
	svc := newTestSheetSvc(t, store.NewMemorySlotStorage(0))

	sheet := fullSheet()
	sheet.ID = "existing"

	saved, err := svc.Save(ctx, sheet)
	require.NoError(t, err)
	assert.Equal(t, "existing", saved.ID)
}

func TestCourseSheetService_Save_NormalizesEmptyStrings(t *testing.T) {
	ctx := context.Background()
	svc := newTestSheetSvc(t, store.NewMemorySlotStorage(0))

	empty := ""
	saved, err := svc.Save(ctx, models.CourseSheet{WarmUp: &empty, Notes: models.StringPtr("x")})
	require.NoError(t, err)

	loaded, ok := svc.Load(ctx)
	require.True(t, ok)
	assert.Nil(t, loaded.WarmUp)
	assert.Equal(t, saved, loaded)
}

func TestCourseSheetService_Load_NeverWritten(t *testing.T) {
	svc := newTestSheetSvc(t, store.NewMemorySlotStorage(0))

	sheet, ok := svc.Load(context.Background())

	assert.False(t, ok)
	assert.Equal(t, models.CourseSheet{}, sheet)
}

func TestCourseSheetService_Delete_ThenLoadReportsNoRecord(t *testing.T) {
	ctx := context.Background()
	svc := newTestSheetSvc(t, store.NewMemorySlotStorage(0))

	_, err := svc.Save(ctx, fullSheet())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx))

	_, ok := svc.Load(ctx)
	assert.False(t, ok)

	again, err := svc.Save(ctx, fullSheet())
	require.NoError(t, err)
	assert.Equal(t, "sheet-2", again.ID, "a sheet created after delete gets a new id")
}

func TestCourseSheetService_Delete_EmptySlot(t *testing.T) {
	svc := newTestSheetSvc(t, store.NewMemorySlotStorage(0))

	assert.NoError(t, svc.Delete(context.Background()))
}

func TestCourseSheetService_Save_QuotaExceededKeepsPriorRecord(t *testing.T) {
	ctx := context.Background()
	svc := newTestSheetSvc(t, store.NewMemorySlotStorage(1024))

	first, err := svc.Save(ctx, models.CourseSheet{Notes: models.StringPtr("court")})
	require.NoError(t, err)

	big := first
	big.Notes = models.StringPtr(strings.Repeat("a", 4096))
	_, err = svc.Save(ctx, big)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrQuotaExceeded))

	loaded, ok := svc.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, first, loaded)
}

func TestCourseSheetService_Save_InvalidSheetNeverReachesStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := mock.NewMockSlotStorage(ctrl)
	svc := newTestSheetSvc(t, slot)

	unknown := models.Discipline("Karaté")
	_, err := svc.Save(context.Background(), models.CourseSheet{Discipline: &unknown})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCourseSheet))
	assert.True(t, errors.Is(err, validators.ErrInvalidDiscipline))
}

func TestCourseSheetService_Save_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := mock.NewMockSlotStorage(ctrl)
	svc := newTestSheetSvc(t, slot)
	ctx := context.Background()

	slot.EXPECT().Put(ctx, testSlotKey, gomock.Any()).Return(store.ErrStorageUnavailable)

	_, err := svc.Save(ctx, fullSheet())
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrStorageUnavailable))
	assert.Contains(t, err.Error(), "save course sheet")
}

func TestCourseSheetService_Load_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := mock.NewMockSlotStorage(ctrl)
	svc := newTestSheetSvc(t, slot)
	ctx := context.Background()

	slot.EXPECT().Get(ctx, testSlotKey).Return(nil, store.ErrStorageUnavailable)

	_, ok := svc.Load(ctx)
	assert.False(t, ok)
}

func TestCourseSheetService_Delete_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := mock.NewMockSlotStorage(ctrl)
	svc := newTestSheetSvc(t, slot)
	ctx := context.Background()

	slot.EXPECT().Delete(ctx, testSlotKey).Return(store.ErrStorageUnavailable)

	err := svc.Delete(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrStorageUnavailable))
}

func TestCourseSheetService_Delete_NotFoundIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := mock.NewMockSlotStorage(ctrl)
	svc := newTestSheetSvc(t, slot)
	ctx := context.Background()

	slot.EXPECT().Delete(ctx, testSlotKey).Return(store.ErrSlotNotFound)

	assert.NoError(t, svc.Delete(ctx))
}

// ── corrupted payloads ───────────────────────────────────────────────────────

func TestCourseSheetService_Load_CorruptedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "{not json"},
		{name: "json array", payload: `[1,2,3]`},
		{name: "date is a number", payload: `{"id":"a","date":42}`},
		{name: "date is not a date", payload: `{"id":"a","date":"hier"}`},
		{name: "notes is an object", payload: `{"id":"a","notes":{"x":1}}`},
		{name: "missing id", payload: `{"notes":"x"}`},
		{name: "unknown discipline", payload: `{"id":"a","discipline":"Judo"}`},
		{name: "unknown attachment type", payload: `{"id":"a","media":[{"id":"m","type":"audio","dataUrl":"data:audio/mp3;base64,AA==","name":"a","size":1}]}`},
		{name: "duplicate attachment ids", payload: `{"id":"a","media":[` +
			`{"id":"m","type":"youtube","dataUrl":"t","youtubeUrl":"e","name":"a","size":0},` +
			`{"id":"m","type":"youtube","dataUrl":"t","youtubeUrl":"e","name":"b","size":0}]}`},
		{name: "youtube with size", payload: `{"id":"a","media":[{"id":"m","type":"youtube","dataUrl":"t","youtubeUrl":"e","name":"a","size":3}]}`},
		{name: "inline payload not a data url", payload: `{"id":"a","media":[{"id":"m","type":"image","dataUrl":"http://x/y.png","name":"a","size":1}]}`},
		{name: "size is a string", payload: `{"id":"a","media":[{"id":"m","type":"image","dataUrl":"data:image/png;base64,AA==","name":"a","size":"1"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			slot := store.NewMemorySlotStorage(0)
			require.NoError(t, slot.Put(ctx, testSlotKey, []byte(tt.payload)))

			_, ok := newTestSheetSvc(t, slot).Load(ctx)
			assert.False(t, ok)
		})
	}
}

func TestCourseSheetService_Load_ToleratesUnknownFields(t *testing.T) {
	ctx := context.Background()
	slot := store.NewMemorySlotStorage(0)
	require.NoError(t, slot.Put(ctx, testSlotKey, []byte(`{"id":"a","notes":"x","theme":"dark"}`)))

	sheet, ok := newTestSheetSvc(t, slot).Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "a", sheet.ID)
	assert.Equal(t, "x", models.Deref(sheet.Notes))
}
