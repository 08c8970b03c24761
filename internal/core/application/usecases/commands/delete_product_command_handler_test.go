package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"storeadmin/internal/core/application/usecases/commands"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/notification"
	"storeadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteProductCommand(t *testing.T) {
	cmd, err := commands.NewDeleteProductCommand(kernel.MustNewID("6"))
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewDeleteProductCommand(kernel.ID{})
	require.Error(t, err)

	var zero commands.DeleteProductCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrDeleteProductCommandIsNotConstructed)
}

func TestDeleteProductCommandHandler_Handle(t *testing.T) {
	productID := kernel.MustNewID("6")

	setup := func(deleteErr error) (*MockProductUoWFactory, *MockProductUoW, *MockProductRepository, *MockNotifier) {
		repo := new(MockProductRepository)
		uow := new(MockProductUoW)
		factory := new(MockProductUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("ProductRepository").Return(repo).Once()
		repo.On("Delete", mock.Anything, productID).Return(deleteErr).Once()
		if deleteErr == nil {
			uow.On("Commit", mock.Anything).Return(nil).Once()
		}
		uow.On("Rollback", mock.Anything).Return(nil).Maybe()

		return factory, uow, repo, new(MockNotifier)
	}

	t.Run("should delete and notify success", func(t *testing.T) {
		factory, uow, repo, notifier := setup(nil)
		notifier.On("Notify", mock.Anything, ofKind(notification.Success)).Once()
		summary := new(MockSummaryInvalidator)
		summary.On("Invalidate", mock.Anything).Return(nil).Once()
		handler := commands.NewDeleteProductCommandHandler(factory, notifier, summary, slog.New(slog.DiscardHandler))
		cmd, _ := commands.NewDeleteProductCommand(productID)

		err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		factory.AssertExpectations(t)
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
		summary.AssertExpectations(t)
	})

	t.Run("should notify failure on store error", func(t *testing.T) {
		storeErr := errors.New("foreign key violation")
		factory, uow, repo, notifier := setup(storeErr)
		notifier.On("Notify", mock.Anything, ofKind(notification.Failure)).Once()
		summary := new(MockSummaryInvalidator)
		handler := commands.NewDeleteProductCommandHandler(factory, notifier, summary, slog.New(slog.DiscardHandler))
		cmd, _ := commands.NewDeleteProductCommand(productID)

		err := handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, storeErr)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		repo.AssertExpectations(t)
		notifier.AssertNumberOfCalls(t, "Notify", 1)
		summary.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("should return not found without notification", func(t *testing.T) {
		factory, _, _, notifier := setup(errs.NewObjectNotFoundError("productId", productID))
		summary := new(MockSummaryInvalidator)
		handler := commands.NewDeleteProductCommandHandler(factory, notifier, summary, slog.New(slog.DiscardHandler))
		cmd, _ := commands.NewDeleteProductCommand(productID)

		err := handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Empty(t, notifier.Calls)
		assert.Empty(t, summary.Calls)
	})
}
