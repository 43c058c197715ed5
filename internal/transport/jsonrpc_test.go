package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type codedErr struct {
	code    string
	message string
	hint    string
}

func (c codedErr) Error() string { return c.code + ": " + c.message }
func (c codedErr) CodeValue() string { return c.code }
func (c codedErr) MessageValue() string { return c.message }
func (c codedErr) RecoveryHintValue() string { return c.hint }

func TestParseRequest(t *testing.T) {
	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"test","params":{"a":1},"id":1}`)
	req, err := ParseRequest(body)
	require.NoError(t, err)
	require.Equal(t, "2.0", req.JSONRPC)
	require.Equal(t, "test", req.Method)
	require.Equal(t, json.RawMessage(`{"a":1}`), req.Params)
}

func TestParseRequest_Invalid(t *testing.T) {
	body := bytes.NewBufferString(`{"jsonrpc":"2.0","id":1}`)
	_, err := ParseRequest(body)
	require.Error(t, err)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 1, ErrInvalidParams, "bad params", nil)

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), `"error"`)
}

func TestWriteHandlerError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "method not found", err: codedErr{code: "METHOD_NOT_FOUND", message: "nope"}, code: ErrMethodNotFound},
		{name: "coded", err: codedErr{code: "INVALID_MONTH", message: "bad month"}, code: ErrInvalidParams},
		{name: "plain", err: errors.New("boom"), code: ErrInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteHandlerError(rec, 7, tc.err)

			var resp Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.NotNil(t, resp.Error)
			require.Equal(t, tc.code, resp.Error.Code)
		})
	}
}
