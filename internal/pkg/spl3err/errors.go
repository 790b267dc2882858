package spl3err

import (
	"fmt"
)

const (
	CodeReferenceFeedEmpty = "REFERENCE_FEED_EMPTY"
	CodeFeedUnavailable    = "FEED_UNAVAILABLE"
	CodeAssetNotFound      = "ASSET_NOT_FOUND"
	CodeRatingIncomplete   = "RATING_INCOMPLETE"
	CodeInvalidLayout      = "INVALID_LAYOUT"
	CodeInvalidConfig      = "INVALID_CONFIG"
)

var (
	// ErrReferenceFeedEmpty is returned when the always-on reference feed has
	// no entries and slot boundaries cannot be established. It is the only
	// condition that aborts a run.
	ErrReferenceFeedEmpty = New(CodeReferenceFeedEmpty, "reference feed returned no entries: cannot build the timeline")

	// ErrFeedUnavailable is returned when a feed cannot be fetched or decoded.
	ErrFeedUnavailable = New(CodeFeedUnavailable, "feed unavailable")

	// ErrAssetNotFound is returned when an image asset cannot be resolved.
	ErrAssetNotFound = New(CodeAssetNotFound, "asset not found")

	// ErrRatingIncomplete is returned when a loadout is short or a weapon has
	// no rating.
	ErrRatingIncomplete = New(CodeRatingIncomplete, "loadout cannot be rated from incomplete data")

	// ErrInvalidLayout is returned when a layout descriptor fails validation.
	ErrInvalidLayout = New(CodeInvalidLayout, "invalid layout descriptor")

	// ErrInvalidConfig is returned when configuration values are inconsistent.
	ErrInvalidConfig = New(CodeInvalidConfig, "invalid configuration")
)

type Extras map[string]any

type BoardError struct {
	Code    string
	Message string
	Extras  *Extras
}

func New(code string, message string) *BoardError {
	return &BoardError{
		Code:    code,
		Message: message,
	}
}

func (e BoardError) Msg(format string, parts ...any) *BoardError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e BoardError) WithExtras(extras Extras) *BoardError {
	e.Extras = &extras
	return &e
}

func (e *BoardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches errors by code so that derived errors created with Msg or
// WithExtras still match their sentinel.
func (e *BoardError) Is(target error) bool {
	t, ok := target.(*BoardError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
