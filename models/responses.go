package models

import "encoding/json"

// Envelope is the wrapper every backend response uses. Code 0 means
// success; any other value is an application error, whatever the HTTP
// status was.
type Envelope[T any] struct {
	// Code is the application status code.
	Code int `json:"code"`

	// Message is a human readable status description.
	Message string `json:"message"`

	// Data is the operation payload; it is null for commands.
	Data T `json:"data"`
}

// OK reports whether the envelope carries a successful result.
func (e Envelope[T]) OK() bool {
	return e.Code == 0
}

// RawEnvelope is an envelope whose payload is decoded later by the caller.
type RawEnvelope = Envelope[json.RawMessage]

// Health is the payload of GET /api/health.
type Health struct {
	Status    string    `json:"status"`
	Timestamp Timestamp `json:"timestamp"`
	Version   string    `json:"version"`
}

// Healthy reports whether the backend described itself as healthy.
func (h Health) Healthy() bool {
	return h.Status == "healthy"
}

// ServiceInfo is the payload of GET /, the backend banner.
type ServiceInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Status  string `json:"status"`
}
