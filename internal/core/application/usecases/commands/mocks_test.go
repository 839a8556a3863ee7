package commands_test

import (
	"context"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *catalog.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*catalog.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *catalog.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *catalog.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*catalog.MenuItem)
	return item, args.Error(1)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, line *cart.Line) (*cart.Line, error) {
	args := m.Called(ctx, line)
	l, _ := args.Get(0).(*cart.Line)
	return l, args.Error(1)
}

func (m *MockCartRepository) List(ctx context.Context, userID kernel.UUID) ([]*cart.Line, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]*cart.Line)
	return lines, args.Error(1)
}

func (m *MockCartRepository) ListForUpdate(ctx context.Context, userID kernel.UUID) ([]*cart.Line, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]*cart.Line)
	return lines, args.Error(1)
}

func (m *MockCartRepository) Remove(ctx context.Context, userID kernel.UUID, menuItemIDs []kernel.UUID) error {
	return m.Called(ctx, userID, menuItemIDs).Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) UpdateRoles(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, events ...kernel.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

func (m *MockOutboxRepository) ListUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockMenuItemCache struct{ mock.Mock }

func (m *MockMenuItemCache) Invalidate(ctx context.Context, id kernel.UUID) {
	m.Called(ctx, id)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	return m.Called().Get(0).(ports.CategoryRepository)
}

func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository {
	return m.Called().Get(0).(ports.MenuItemRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	return m.Called().Get(0).(commands.CartUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}

var (
	customer = user.NewCaller(kernel.NewUUID(), user.RoleCustomer)
	crew     = user.NewCaller(kernel.NewUUID(), user.RoleDeliveryCrew)
	manager  = user.NewCaller(kernel.NewUUID(), user.RoleManager)
)

func mustPrice(s string) kernel.Money {
	p, err := kernel.PriceFromString(s)
	if err != nil {
		panic(err)
	}
	return p
}

func mustMenuItem(price string) *catalog.MenuItem {
	item, err := catalog.NewMenuItem(kernel.NewUUID(), "Greek salad", mustPrice(price), false, kernel.NewUUID())
	if err != nil {
		panic(err)
	}
	return item
}

func mustLine(owner kernel.UUID, qty int, price string) *cart.Line {
	l, err := cart.NewLine(owner, kernel.NewUUID(), qty, mustPrice(price))
	if err != nil {
		panic(err)
	}
	return l
}

func mustOrder(owner kernel.UUID) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), 2, mustPrice("6.50"))
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), owner, []order.Item{item}, time.Now())
	if err != nil {
		panic(err)
	}
	o.ClearDomainEvents()
	return o
}
