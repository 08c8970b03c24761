package commands_test

import (
	"testing"
	"time"

	"storeadmin/internal/core/application/usecases/commands"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/notification"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

func (f *gatewayFixture) expectTransactions(n int) {
	f.factory.On("Create").Return(f.uow).Times(n)
	f.uow.On("Begin", mock.Anything).Return(nil).Times(n)
	f.uow.On("OrderRepository").Return(f.repo).Times(n)
	f.uow.On("Commit", mock.Anything).Return(nil).Times(n)
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	f.notifier.On("Notify", mock.Anything, ofKind(notification.Success)).Times(n)
	f.publisher.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(nil).Times(n)
}

func (f *gatewayFixture) handleAsync(t *testing.T, id string, status order.Status) <-chan error {
	t.Helper()
	cmd, err := commands.NewChangeOrderStatusCommand(kernel.MustNewID(id), status)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := f.handler.Handle(t.Context(), cmd)
		done <- err
	}()
	return done
}

func waitFor(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for the handler")
	}
}

func TestChangeOrderStatusCommandHandler_SameOrderIsSerialized(t *testing.T) {
	f := newGatewayFixture()
	id := kernel.MustNewID("ORD-2023-004")
	entered := make(chan order.Status, 2)
	release := make(chan struct{})

	f.expectTransactions(2)
	f.repo.On("UpdateStatus", mock.Anything, id, order.Shipped, int64(0)).
		Run(func(mock.Arguments) {
			entered <- order.Shipped
			<-release
		}).
		Return(nil).Once()
	f.repo.On("UpdateStatus", mock.Anything, id, order.Delivered, int64(1)).
		Run(func(mock.Arguments) { entered <- order.Delivered }).
		Return(nil).Once()

	first := f.handleAsync(t, "ORD-2023-004", order.Shipped)
	require.Equal(t, order.Shipped, <-entered)

	second := f.handleAsync(t, "ORD-2023-004", order.Delivered)
	assert.Never(t, func() bool { return len(entered) > 0 }, 100*time.Millisecond, 10*time.Millisecond,
		"second change reached the store while the first was still in flight")

	close(release)
	waitFor(t, first)
	waitFor(t, second)
	assert.Equal(t, order.Delivered, <-entered)

	stored, _ := f.orders.Get(id)
	assert.Equal(t, order.Delivered, stored.Status())
	assert.Equal(t, int64(2), stored.Version())
	f.assertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_DifferentOrdersRunConcurrently(t *testing.T) {
	f := newGatewayFixture()
	release := make(chan struct{})
	entered := make(chan struct{})

	f.expectTransactions(2)
	f.repo.On("UpdateStatus", mock.Anything, kernel.MustNewID("ORD-2023-004"), order.Shipped, int64(0)).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(nil).Once()
	f.repo.On("UpdateStatus", mock.Anything, kernel.MustNewID("ORD-2023-002"), order.Shipped, int64(0)).
		Return(nil).Once()

	blocked := f.handleAsync(t, "ORD-2023-004", order.Shipped)
	<-entered

	waitFor(t, f.handleAsync(t, "ORD-2023-002", order.Shipped))
	other, _ := f.orders.Get(kernel.MustNewID("ORD-2023-002"))
	assert.Equal(t, order.Shipped, other.Status())

	close(release)
	waitFor(t, blocked)
	f.assertExpectations(t)
}

func TestRefreshOrdersCommandHandler_ConcurrentStatusChange(t *testing.T) {
	t.Run("should not revert a change committed while the snapshot was being read", func(t *testing.T) {
		f := newGatewayFixture()
		id := kernel.MustNewID("ORD-2023-004")
		snapshotRead := make(chan struct{})
		release := make(chan struct{})

		store := new(MockOrderRepository)
		store.On("GetAll", mock.Anything).
			Run(func(mock.Arguments) {
				close(snapshotRead)
				<-release
			}).
			Return(seed.Orders(), nil).Once()
		refresh := commands.NewRefreshOrdersCommandHandler(store, f.orders)

		refreshed := make(chan error, 1)
		go func() {
			_, err := refresh.Handle(t.Context(), commands.NewRefreshOrdersCommand())
			refreshed <- err
		}()
		<-snapshotRead

		f.expectTransactions(2)
		f.repo.On("UpdateStatus", mock.Anything, id, order.Shipped, int64(0)).Return(nil).Once()
		waitFor(t, f.handleAsync(t, "ORD-2023-004", order.Shipped))

		close(release)
		waitFor(t, refreshed)

		stored, ok := f.orders.Get(id)
		require.True(t, ok)
		assert.Equal(t, order.Shipped, stored.Status())
		assert.Equal(t, int64(1), stored.Version())

		f.repo.On("UpdateStatus", mock.Anything, id, order.Delivered, int64(1)).Return(nil).Once()
		waitFor(t, f.handleAsync(t, "ORD-2023-004", order.Delivered))

		stored, _ = f.orders.Get(id)
		assert.Equal(t, order.Delivered, stored.Status())
		f.assertExpectations(t)
		store.AssertExpectations(t)
	})
}
