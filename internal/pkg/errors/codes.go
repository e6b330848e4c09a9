package errors

import "net/http"

var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		"INVALID_ID",
		"Invalid identifier",
		http.StatusBadRequest,
	)

	ErrInvalidRequestBody = New(
		"INVALID_REQUEST_BODY",
		"Malformed request body",
		http.StatusBadRequest,
	)

	ErrDocumentNotFound = New(
		"DOCUMENT_NOT_FOUND",
		"Document not found",
		http.StatusNotFound,
	)

	ErrTwinCityNotFound = New(
		"TWIN_CITY_NOT_FOUND",
		"Twin city pair not found",
		http.StatusNotFound,
	)

	ErrIndicatorNotFound = New(
		"INDICATOR_NOT_FOUND",
		"Indicator not found",
		http.StatusNotFound,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrGalleryNotFound = New(
		"GALLERY_NOT_FOUND",
		"Gallery not found",
		http.StatusNotFound,
	)

	ErrCollaborationNotFound = New(
		"COLLABORATION_NOT_FOUND",
		"Collaboration not found",
		http.StatusNotFound,
	)

	ErrFileNotFound = New(
		"FILE_NOT_FOUND",
		"Stored file not found",
		http.StatusNotFound,
	)

	ErrNoStoredFile = New(
		"NO_STORED_FILE",
		"External documents have no stored file to download",
		http.StatusBadRequest,
	)

	ErrTwinCityInUse = New(
		"TWIN_CITY_IN_USE",
		"Twin city pair is still referenced by documents or indicators",
		http.StatusConflict,
	)

	ErrLocationInUse = New(
		"LOCATION_IN_USE",
		"Location is still referenced by galleries or documents",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrStorageError = New(
		"STORAGE_ERROR",
		"File storage operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
