package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,nohtml"`
	Email    string `json:"email" validate:"required,email"`
	UserType string `json:"user_type" validate:"required,user_type"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	tests := []struct {
		name    string
		req     signupRequest
		wantErr string
	}{
		{
			name: "valid buyer",
			req:  signupRequest{Username: "alice", Email: "alice@example.com", UserType: "buyer"},
		},
		{
			name:    "missing email",
			req:     signupRequest{Username: "alice", UserType: "seller"},
			wantErr: "email is required",
		},
		{
			name:    "admin is not self registrable",
			req:     signupRequest{Username: "alice", Email: "alice@example.com", UserType: "admin"},
			wantErr: "user_type must be buyer or seller",
		},
		{
			name:    "html in username",
			req:     signupRequest{Username: "<b>al</b>", Email: "alice@example.com", UserType: "buyer"},
			wantErr: "username must not contain HTML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.req)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
