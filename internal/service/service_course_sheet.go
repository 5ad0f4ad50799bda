package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-sheet/internal/logger"
	"github.com/MKhiriev/go-course-sheet/internal/store"
	"github.com/MKhiriev/go-course-sheet/internal/utils"
	"github.com/MKhiriev/go-course-sheet/internal/validators"
	"github.com/MKhiriev/go-course-sheet/models"
)

type courseSheetService struct {
	slot      store.SlotStorage
	slotKey   string
	validator validators.Validator
	ids       utils.IDGenerator

	logger *logger.Logger
}

// NewCourseSheetService returns a CourseSheetService keeping its record in
// slot under slotKey. Stored payloads are checked with validator on load.
func NewCourseSheetService(slot store.SlotStorage, slotKey string, validator validators.Validator, ids utils.IDGenerator, logger *logger.Logger) CourseSheetService {
	return &courseSheetService{
		slot:      slot,
		slotKey:   slotKey,
		validator: validator,
		ids:       ids,
		logger:    logger,
	}
}

func (s *courseSheetService) Save(ctx context.Context, sheet models.CourseSheet) (models.CourseSheet, error) {
	record := sheet.Normalize()
	if record.ID == "" {
		record.ID = s.ids.Generate()
	}

	payload, err := encodeCourseSheet(record)
	if err != nil {
		s.logger.Err(err).Str("func", "*courseSheetService.Save").Str("id", record.ID).Msg("error encoding course sheet")
		return models.CourseSheet{}, err
	}

	if err = s.slot.Put(ctx, s.slotKey, payload); err != nil {
		s.logger.Err(err).Str("func", "*courseSheetService.Save").Str("id", record.ID).Msg("error writing course sheet")
		return models.CourseSheet{}, fmt.Errorf("save course sheet: %w", err)
	}

	s.logger.Debug().Str("func", "*courseSheetService.Save").
		Str("id", record.ID).
		Int("media", len(record.Media)).
		Int("bytes", len(payload)).
		Msg("course sheet saved")

	return record, nil
}

func (s *courseSheetService) Load(ctx context.Context) (models.CourseSheet, bool) {
	payload, err := s.slot.Get(ctx, s.slotKey)
	if errors.Is(err, store.ErrSlotNotFound) {
		return models.CourseSheet{}, false
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*courseSheetService.Load").Msg("error reading course sheet")
		return models.CourseSheet{}, false
	}

	sheet, err := decodeCourseSheet(payload)
	if err != nil {
		s.logger.Err(err).Str("func", "*courseSheetService.Load").Msg("error decoding course sheet")
		return models.CourseSheet{}, false
	}

	if err = s.validator.Validate(ctx, sheet); err != nil {
		s.logger.Err(fmt.Errorf("%w: %w", ErrCorruptedRecord, err)).
			Str("func", "*courseSheetService.Load").
			Msg("stored course sheet rejected")
		return models.CourseSheet{}, false
	}

	return sheet, true
}

func (s *courseSheetService) Delete(ctx context.Context) error {
	err := s.slot.Delete(ctx, s.slotKey)
	if err != nil && !errors.Is(err, store.ErrSlotNotFound) {
		s.logger.Err(err).Str("func", "*courseSheetService.Delete").Msg("error deleting course sheet")
		return fmt.Errorf("delete course sheet: %w", err)
	}
	return nil
}
