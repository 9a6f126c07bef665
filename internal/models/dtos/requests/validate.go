// Package requests holds the JSON payloads accepted by the write endpoints.
// Create payloads validate with struct tags and convert to entity models;
// update payloads are merge patches whose absent fields stay untouched.
package requests

import "github.com/go-playground/validator/v10"

// Validate is the shared validator instance used by the handlers.
var Validate = validator.New()
