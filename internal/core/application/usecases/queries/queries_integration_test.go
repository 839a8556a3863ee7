package queries_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/pgtest"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	pg *pgtest.Database

	customer user.Caller
	other    user.Caller
	crew     user.Caller
	manager  user.Caller

	mains    *catalog.Category
	desserts *catalog.Category
	salad    *catalog.MenuItem
	pasta    *catalog.MenuItem
	tiramisu *catalog.MenuItem
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Truncate())

	suite.customer = suite.seedUser("customer", user.RoleCustomer)
	suite.other = suite.seedUser("other", user.RoleCustomer)
	suite.crew = suite.seedUser("crew", user.RoleDeliveryCrew)
	suite.manager = suite.seedUser("manager", user.RoleManager)

	categories := catalogrepo.NewGormCategoryRepository(suite.pg.DB)
	items := catalogrepo.NewGormMenuItemRepository(suite.pg.DB)

	var err error
	suite.mains, err = catalog.NewCategory(kernel.NewUUID(), "mains", "Mains")
	suite.Require().NoError(err)
	suite.desserts, err = catalog.NewCategory(kernel.NewUUID(), "desserts", "Desserts")
	suite.Require().NoError(err)
	suite.Require().NoError(categories.Add(ctx, suite.mains))
	suite.Require().NoError(categories.Add(ctx, suite.desserts))

	suite.salad = suite.newItem("Greek Salad", "6.50", true, suite.mains)
	suite.pasta = suite.newItem("Pasta 100%", "12.00", false, suite.mains)
	suite.tiramisu = suite.newItem("Tiramisu", "4.00", false, suite.desserts)
	for _, item := range []*catalog.MenuItem{suite.salad, suite.pasta, suite.tiramisu} {
		suite.Require().NoError(items.Add(ctx, item))
	}
}

func (suite *QueriesIntegrationTestSuite) seedUser(name string, roles ...user.Role) user.Caller {
	id := kernel.NewUUID()
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	suite.Require().NoError(suite.pg.SeedUser(id.Bytes(), name, names...))
	return user.NewCaller(id, roles...)
}

func (suite *QueriesIntegrationTestSuite) newItem(title, price string, featured bool, c *catalog.Category) *catalog.MenuItem {
	p, err := kernel.PriceFromString(price)
	suite.Require().NoError(err)
	item, err := catalog.NewMenuItem(kernel.NewUUID(), title, p, featured, c.ID())
	suite.Require().NoError(err)
	return item
}

func (suite *QueriesIntegrationTestSuite) addToCart(owner user.Caller, item *catalog.MenuItem, qty int) {
	line, err := cart.NewLine(owner.ID, item.ID(), qty, item.Price())
	suite.Require().NoError(err)
	_, err = cartrepo.NewGormCartRepository(suite.pg.DB).Add(context.Background(), line)
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) placeOrder(owner user.Caller, at time.Time, items ...*catalog.MenuItem) *order.Order {
	snapshot := make([]order.Item, 0, len(items))
	for _, item := range items {
		it, err := order.NewItem(item.ID(), 2, item.Price())
		suite.Require().NoError(err)
		snapshot = append(snapshot, it)
	}
	o, err := order.NewOrder(kernel.NewUUID(), owner.ID, snapshot, at)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.pg.DB, noopTracker{}).Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) assign(o *order.Order, crew user.Caller) {
	suite.Require().NoError(o.AssignCrew(crew.ID))
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.pg.DB, noopTracker{}).Update(context.Background(), o))
}

func (suite *QueriesIntegrationTestSuite) TestListCategories() {
	q, err := queries.NewListCategoriesQuery(suite.customer)
	suite.Require().NoError(err)

	got, err := queries.NewListCategoriesQueryHandler(suite.pg.DB).Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("Desserts", got[0].Title)
	suite.Equal("mains", got[1].Slug)
}

func (suite *QueriesIntegrationTestSuite) TestListMenuItems_Filters() {
	ctx := context.Background()
	h := queries.NewListMenuItemsQueryHandler(suite.pg.DB)

	list := func(f queries.MenuItemFilters) []string {
		q, err := queries.NewListMenuItemsQuery(suite.crew, f)
		suite.Require().NoError(err)
		items, err := h.Handle(ctx, q)
		suite.Require().NoError(err)
		titles := make([]string, 0, len(items))
		for _, it := range items {
			titles = append(titles, it.Title)
		}
		return titles
	}

	suite.Equal([]string{"Greek Salad", "Pasta 100%", "Tiramisu"}, list(queries.MenuItemFilters{}))

	title := "SALAD"
	suite.Equal([]string{"Greek Salad"}, list(queries.MenuItemFilters{Title: &title}))

	percent := "%"
	suite.Equal([]string{"Pasta 100%"}, list(queries.MenuItemFilters{Title: &percent}))

	ceiling, err := kernel.MoneyFromString("6.50")
	suite.Require().NoError(err)
	suite.Equal([]string{"Greek Salad", "Tiramisu"}, list(queries.MenuItemFilters{PriceCeiling: &ceiling}))

	category := "Mains"
	featured := false
	suite.Equal([]string{"Pasta 100%"}, list(queries.MenuItemFilters{Category: &category, Featured: &featured}))
}

type countingCache struct {
	mu    sync.Mutex
	items map[kernel.UUID]queries.MenuItemView
	sets  int
}

func (c *countingCache) Get(_ context.Context, id kernel.UUID) (queries.MenuItemView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[id]
	return v, ok
}

func (c *countingCache) Set(_ context.Context, v queries.MenuItemView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[v.ID] = v
	c.sets++
}

func (suite *QueriesIntegrationTestSuite) TestGetMenuItem_CacheAside() {
	ctx := context.Background()
	cache := &countingCache{items: map[kernel.UUID]queries.MenuItemView{}}
	h := queries.NewGetMenuItemQueryHandler(suite.pg.DB, cache)

	q, err := queries.NewGetMenuItemQuery(suite.customer, suite.salad.ID())
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	var failures atomic.Int32
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := h.Handle(ctx, q)
			if err != nil || v.Title != "Greek Salad" {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()
	suite.Zero(failures.Load())
	suite.LessOrEqual(cache.sets, 8)
	suite.GreaterOrEqual(cache.sets, 1)

	suite.Require().NoError(suite.pg.DB.Exec("UPDATE menu_items SET title = 'Changed' WHERE id = ?", suite.salad.ID().Bytes()).Error)
	v, err := h.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Equal("Greek Salad", v.Title, "served from cache")
	suite.Equal("Mains", v.Category.Title)
	suite.Equal("6.50", v.Price.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetMenuItem_SharedLoadOutlivesCallerContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q, err := queries.NewGetMenuItemQuery(suite.customer, suite.tiramisu.ID())
	suite.Require().NoError(err)

	v, err := queries.NewGetMenuItemQueryHandler(suite.pg.DB, nil).Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Equal("Tiramisu", v.Title)
}

func (suite *QueriesIntegrationTestSuite) TestGetMenuItem_NotFound() {
	q, _ := queries.NewGetMenuItemQuery(suite.customer, kernel.NewUUID())
	_, err := queries.NewGetMenuItemQueryHandler(suite.pg.DB, nil).Handle(context.Background(), q)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListCartItems() {
	suite.addToCart(suite.customer, suite.salad, 2)
	suite.addToCart(suite.customer, suite.tiramisu, 1)
	suite.addToCart(suite.other, suite.pasta, 5)

	q, err := queries.NewListCartItemsQuery(suite.customer)
	suite.Require().NoError(err)
	resp, err := queries.NewListCartItemsQueryHandler(suite.pg.DB).Handle(context.Background(), q)
	suite.Require().NoError(err)

	suite.Require().Len(resp.Items, 2)
	suite.Equal("Greek Salad", resp.Items[0].Title)
	suite.Equal("13.00", resp.Items[0].LineTotal.String())
	suite.Equal("17.00", resp.Total.String())
}

func (suite *QueriesIntegrationTestSuite) TestListCartItems_EmptyCart() {
	q, _ := queries.NewListCartItemsQuery(suite.other)
	resp, err := queries.NewListCartItemsQueryHandler(suite.pg.DB).Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Empty(resp.Items)
	suite.True(resp.Total.IsZero())
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Visibility() {
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	mine := suite.placeOrder(suite.customer, day, suite.salad)
	assigned := suite.placeOrder(suite.other, day.Add(time.Hour), suite.pasta, suite.tiramisu)
	suite.placeOrder(suite.other, day.AddDate(0, 0, 1), suite.tiramisu)
	suite.assign(assigned, suite.crew)

	h := queries.NewListOrdersQueryHandler(suite.pg.DB)
	list := func(c user.Caller, f queries.OrderFilters) []queries.OrderView {
		q, err := queries.NewListOrdersQuery(c, f)
		suite.Require().NoError(err)
		orders, err := h.Handle(ctx, q)
		suite.Require().NoError(err)
		return orders
	}

	own := list(suite.customer, queries.OrderFilters{UserID: &suite.other.ID})
	suite.Require().Len(own, 1, "customer filters are ignored")
	suite.Equal(mine.ID(), own[0].ID)
	suite.Equal("customer", own[0].Username)
	suite.Require().Len(own[0].Items, 1)
	suite.Equal("Greek Salad", own[0].Items[0].Title)
	suite.Equal("13.00", own[0].Total.String())

	crewView := list(suite.crew, queries.OrderFilters{})
	suite.Require().Len(crewView, 1)
	suite.Equal(assigned.ID(), crewView[0].ID)
	suite.Require().NotNil(crewView[0].DeliveryCrewID)
	suite.Equal(suite.crew.ID, *crewView[0].DeliveryCrewID)
	suite.Len(crewView[0].Items, 2)

	all := list(suite.manager, queries.OrderFilters{})
	suite.Require().Len(all, 3)
	suite.True(all[0].PlacedAt.After(all[1].PlacedAt), "newest first")
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_ManagerFilters() {
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)

	a := suite.placeOrder(suite.customer, day, suite.salad)
	b := suite.placeOrder(suite.other, day.Add(time.Hour), suite.pasta)
	suite.assign(b, suite.crew)
	suite.Require().NoError(b.SetStatus(order.Delivered))
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.pg.DB, noopTracker{}).Update(ctx, b))

	h := queries.NewListOrdersQueryHandler(suite.pg.DB)
	ids := func(f queries.OrderFilters) []kernel.UUID {
		q, err := queries.NewListOrdersQuery(suite.manager, f)
		suite.Require().NoError(err)
		orders, err := h.Handle(ctx, q)
		suite.Require().NoError(err)
		out := make([]kernel.UUID, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.ID)
		}
		return out
	}

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	suite.Equal([]kernel.UUID{a.ID()}, ids(queries.OrderFilters{Date: &date}))

	delivered := true
	suite.Equal([]kernel.UUID{b.ID()}, ids(queries.OrderFilters{Delivered: &delivered}))

	ceiling, _ := kernel.MoneyFromString("13.00")
	suite.Equal([]kernel.UUID{a.ID()}, ids(queries.OrderFilters{TotalCeiling: &ceiling}))

	suite.Equal([]kernel.UUID{b.ID()}, ids(queries.OrderFilters{CrewID: &suite.crew.ID}))
	suite.Equal([]kernel.UUID{a.ID()}, ids(queries.OrderFilters{UserID: &suite.customer.ID}))

	notDelivered := false
	suite.Empty(ids(queries.OrderFilters{UserID: &suite.other.ID, Delivered: &notDelivered}))
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_ManagerFiltersIntersect() {
	ctx := context.Background()
	day := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)

	// totals: 13.00, 24.00, 8.00
	cheapSameDay := suite.placeOrder(suite.customer, day, suite.salad)
	suite.placeOrder(suite.customer, day.Add(2*time.Hour), suite.pasta)
	suite.placeOrder(suite.other, day.AddDate(0, 0, 1), suite.tiramisu)

	h := queries.NewListOrdersQueryHandler(suite.pg.DB)
	ids := func(f queries.OrderFilters) []kernel.UUID {
		q, err := queries.NewListOrdersQuery(suite.manager, f)
		suite.Require().NoError(err)
		orders, err := h.Handle(ctx, q)
		suite.Require().NoError(err)
		out := make([]kernel.UUID, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.ID)
		}
		return out
	}

	date := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	ceiling, err := kernel.MoneyFromString("13.00")
	suite.Require().NoError(err)

	suite.Len(ids(queries.OrderFilters{Date: &date}), 2)
	suite.Len(ids(queries.OrderFilters{TotalCeiling: &ceiling}), 2)
	suite.Equal([]kernel.UUID{cheapSameDay.ID()}, ids(queries.OrderFilters{Date: &date, TotalCeiling: &ceiling}))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder() {
	ctx := context.Background()
	o := suite.placeOrder(suite.customer, time.Now(), suite.salad)
	h := queries.NewGetOrderQueryHandler(suite.pg.DB)

	q, _ := queries.NewGetOrderQuery(suite.crew, o.ID())
	_, err := h.Handle(ctx, q)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "unassigned order is invisible to crew")

	suite.assign(o, suite.crew)
	view, err := h.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Equal(o.ID(), view.ID)

	q, _ = queries.NewGetOrderQuery(suite.manager, o.ID())
	_, err = h.Handle(ctx, q)
	suite.Require().NoError(err)

	q, _ = queries.NewGetOrderQuery(suite.customer, o.ID())
	_, err = h.Handle(ctx, q)
	suite.Require().ErrorIs(err, errs.ErrAccessDenied)

	q, _ = queries.NewGetOrderQuery(suite.manager, kernel.NewUUID())
	_, err = h.Handle(ctx, q)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListRoleMembers() {
	h := queries.NewListRoleMembersQueryHandler(suite.pg.DB)

	q, err := queries.NewListRoleMembersQuery(suite.manager, user.RoleCustomer)
	suite.Require().NoError(err)
	members, err := h.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(members, 2)
	suite.Equal("customer", members[0].Username)
	suite.Equal("other", members[1].Username)

	q, _ = queries.NewListRoleMembersQuery(suite.crew, user.RoleDeliveryCrew)
	_, err = h.Handle(context.Background(), q)
	suite.Require().ErrorIs(err, errs.ErrAccessDenied)
}

func (suite *QueriesIntegrationTestSuite) TestGetCaller() {
	h := queries.NewGetCallerQueryHandler(suite.pg.DB)

	both := suite.seedUser("both", user.RoleDeliveryCrew, user.RoleManager)
	q, err := queries.NewGetCallerQuery(both.ID)
	suite.Require().NoError(err)
	resp, err := h.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Equal("both", resp.Username)
	suite.Equal(both, resp.Caller)

	nobody := suite.seedUser("nobody")
	q, _ = queries.NewGetCallerQuery(nobody.ID)
	resp, err = h.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.True(resp.Caller.Roles.IsEmpty())

	q, _ = queries.NewGetCallerQuery(kernel.NewUUID())
	_, err = h.Handle(context.Background(), q)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
