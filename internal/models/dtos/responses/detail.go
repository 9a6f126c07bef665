// Package responses holds the JSON payloads the API writes back. Successful
// reads return entity models directly; errors and confirmations use the
// detail envelope the frontend already consumes.
package responses

// Detail is the single-message payload used for errors and delete
// confirmations, e.g. {"detail": "Empresa no encontrada"}.
type Detail struct {
	Detail string `json:"detail"`
}

// Welcome is the GET / payload.
type Welcome struct {
	Mensaje string `json:"mensaje"`
}
