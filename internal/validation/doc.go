// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is built lazily and shared; it caches struct
metadata, so repeated validation of the same request type is cheap.

Features:
  - Field names reported by their `query` or `json` tag
  - notblank for free-text inputs such as movie titles
  - Errors convert to the API's VALIDATION_ERROR envelope with ToAPIError

Example usage:

	type ContentRequest struct {
	    Title string `query:"title" validate:"required,notblank,max=500"`
	    K     int    `query:"k" validate:"min=0,max=100"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
	    return
	}
*/
package validation
