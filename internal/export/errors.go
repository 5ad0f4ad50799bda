package export

import "errors"

var (
	ErrRenderingSheet = errors.New("failed to render course sheet")
	ErrWritingExport  = errors.New("failed to write export file")
)
