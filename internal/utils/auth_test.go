package utils

import (
	"context"
	"errors"
	"testing"
	pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
	"github.com/langfu/langfu-backend/internal/types"
)

func TestInputValidationMissingFieldsAreInvalidArgument(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
	}{
		{"login missing email", func() error {
			return InputValidation(ctx, "login", nil, nil, nil, "", "pw")
		}},
		{"login missing password", func() error {
			return InputValidation(ctx, "login", nil, nil, nil, "a@example.com", "")
		}},
		{"registration missing email", func() error {
			return InputValidation(ctx, "registration", nil, nil, &types.User{Password: "pw"}, "", "")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if err == nil {
				t.Fatalf("expected a validation error")
			}
			if !errors.Is(err, pkgerrors.ErrInvalidArgument) {
				t.Fatalf("error %v must carry ErrInvalidArgument", err)
			}
		})
	}
}
