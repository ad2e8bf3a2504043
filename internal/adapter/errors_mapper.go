package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// rawEnvelope decodes a response envelope. Code is a pointer so a body
// without a code member can be told apart from a successful envelope.
type rawEnvelope struct {
	Code    *int            `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(body []byte) (rawEnvelope, bool) {
	var env rawEnvelope
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return env, false
	}
	if err := json.Unmarshal(trimmed, &env); err != nil || env.Code == nil {
		return rawEnvelope{}, false
	}
	return env, true
}

// mapTransportError classifies a failure that produced no response.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &APIError{Kind: KindTimeout, Code: UnknownCode, Message: "request timed out", err: err}
	}
	if errors.Is(err, context.Canceled) {
		return &APIError{Kind: KindNetwork, Code: UnknownCode, Message: "request canceled", err: err}
	}

	return &APIError{Kind: KindNetwork, Code: UnknownCode, Message: err.Error(), err: err}
}

// mapResponse returns the envelope data of a successful response or the
// classified error. A successful body that is not an envelope is returned
// whole when it is JSON, and as nil otherwise.
func mapResponse(resp *resty.Response) (json.RawMessage, error) {
	status := resp.StatusCode()
	body := resp.Body()
	env, hasEnvelope := decodeEnvelope(body)

	if status == http.StatusUnauthorized {
		return nil, newStatusError(KindAuth, status, body, env, hasEnvelope)
	}
	if status < http.StatusOK || status >= http.StatusBadRequest {
		return nil, newStatusError(KindHTTP, status, body, env, hasEnvelope)
	}

	if !hasEnvelope {
		trimmed := bytes.TrimSpace(body)
		if len(trimmed) == 0 || !json.Valid(trimmed) {
			return nil, nil
		}
		return trimmed, nil
	}

	if *env.Code != 0 {
		message := env.Message
		if message == "" {
			message = fmt.Sprintf("application error %d", *env.Code)
		}
		return nil, &APIError{Kind: KindApplication, Code: *env.Code, Message: message, Status: status}
	}

	return env.Data, nil
}

func newStatusError(kind Kind, status int, body []byte, env rawEnvelope, hasEnvelope bool) *APIError {
	apiErr := &APIError{
		Kind:   kind,
		Code:   status,
		Status: status,
		Body:   string(bytes.TrimSpace(body)),
	}

	switch {
	case hasEnvelope:
		if *env.Code != 0 {
			apiErr.Code = *env.Code
		}
		apiErr.Message = env.Message
	case apiErr.Body != "":
		apiErr.Message = apiErr.Body
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}

// decodeData decodes envelope data into T. Empty or null data yields the
// zero value.
func decodeData[T any](data json.RawMessage) (T, error) {
	var out T
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return out, &APIError{
			Kind:    KindApplication,
			Code:    UnknownCode,
			Message: fmt.Sprintf("%s: %v", ErrDecodingResponse, err),
			err:     errors.Join(ErrDecodingResponse, err),
		}
	}
	return out, nil
}
