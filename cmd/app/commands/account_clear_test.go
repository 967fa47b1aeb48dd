package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	accountMocks "github.com/allisson/azurecli/internal/account/usecase/mocks"
)

func TestRunAccountClear(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("success", func(t *testing.T) {
		mockUseCase := &accountMocks.MockCredentialUseCase{}
		mockUseCase.On("Clear", ctx).Return(nil).Once()

		var out bytes.Buffer
		err := RunAccountClear(ctx, mockUseCase, logger, &out)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Account credentials removed")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("error", func(t *testing.T) {
		clearErr := errors.New("permission denied")
		mockUseCase := &accountMocks.MockCredentialUseCase{}
		mockUseCase.On("Clear", ctx).Return(clearErr)

		err := RunAccountClear(ctx, mockUseCase, logger, &bytes.Buffer{})

		require.ErrorIs(t, err, clearErr)
	})
}
