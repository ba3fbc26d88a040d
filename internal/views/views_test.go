package views

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/events"
	"digitalcafe/cafectl/internal/forms"
	"digitalcafe/cafectl/internal/model"
	"digitalcafe/cafectl/internal/session"
)

type countingHandler struct {
	inner http.Handler
	hits  atomic.Int32
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.hits.Add(1)
	h.inner.ServeHTTP(w, r)
}

// newTestView wires a view against a fake API, signed in with the given
// role. An empty role means signed out.
func newTestView(t *testing.T, handler http.Handler, role string) (*View, *countingHandler, *bytes.Buffer, *events.Bus) {
	t.Helper()

	counter := &countingHandler{inner: handler}
	ts := httptest.NewServer(counter)
	t.Cleanup(ts.Close)

	sess := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if role != "" {
		require.NoError(t, sess.Set("tok-test", &model.User{ID: 1, Name: "Test", Email: "test@example.com", RoleType: role}))
	}
	bus := events.NewBus()
	client := api.NewClient(api.Config{BaseURL: ts.URL}, sess, bus)

	out := &bytes.Buffer{}
	return New(client, sess, bus, out), counter, out, bus
}

func TestRoleGuard_RedirectsWithoutFetching(t *testing.T) {
	// Every page-specific fetch would bump the counter; none may happen.
	cases := []struct {
		name string
		role string
		page func(*View, context.Context) error
	}{
		{"customer on admin cafes", "customer", func(v *View, ctx context.Context) error { return v.AdminCafes(ctx) }},
		{"chef on admin dashboard", "chef", func(v *View, ctx context.Context) error { return v.Dashboard(ctx, "", "") }},
		{"waiter on owner menu", "waiter", func(v *View, ctx context.Context) error { return v.OwnerMenu(ctx) }},
		{"customer on chef queue", "customer", func(v *View, ctx context.Context) error { return v.ChefQueue(ctx) }},
		{"chef on waiter board", "chef", func(v *View, ctx context.Context) error { return v.WaiterBoard(ctx) }},
		{"admin on owner tables", "admin", func(v *View, ctx context.Context) error { return v.OwnerTables(ctx) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, counter, _, _ := newTestView(t, chi.NewRouter(), tc.role)
			err := tc.page(v, context.Background())
			assert.ErrorIs(t, err, ErrForbidden)
			assert.Equal(t, int32(0), counter.hits.Load())
		})
	}
}

func TestSignedOut_NoFetch(t *testing.T) {
	v, counter, _, _ := newTestView(t, chi.NewRouter(), "")
	err := v.MyOrders(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.Equal(t, int32(0), counter.hits.Load())
}

func TestAddMenuItem_InvalidPriceIsRejectedBeforeNetwork(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/cafeowners/menu", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(model.MenuItem{ID: 5, Name: "Espresso"})
	})
	v, counter, _, _ := newTestView(t, r, "cafeowner")

	err := v.AddMenuItem(context.Background(), forms.MenuItem{Name: "Espresso", Price: 0, Category: "beverage"})
	assert.Error(t, err)
	assert.Equal(t, int32(0), counter.hits.Load())

	err = v.AddMenuItem(context.Background(), forms.MenuItem{Name: "Espresso", Price: -1, Category: "beverage"})
	assert.Error(t, err)
	assert.Equal(t, int32(0), counter.hits.Load())

	// Valid form results in exactly one create call
	err = v.AddMenuItem(context.Background(), forms.MenuItem{Name: "Espresso", Price: 2.5, Category: "beverage", Available: true})
	assert.NoError(t, err)
	assert.Equal(t, int32(1), counter.hits.Load())
}

func TestPlaceOrder_ZeroItemsRejectedBeforeNetwork(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/orders", func(w http.ResponseWriter, req *http.Request) {
		var body api.OrderRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		// Only the nonzero line survives
		if assert.Len(t, body.Items, 1) {
			assert.Equal(t, 11, body.Items[0].MenuItemID)
			assert.Equal(t, 2, body.Items[0].Quantity)
		}
		json.NewEncoder(w).Encode(model.Order{ID: 31, Status: model.StatusPlaced, TotalAmount: 9})
	})
	v, counter, _, bus := newTestView(t, r, "customer")

	allZero := forms.Order{
		CafeID:  1,
		TableID: 2,
		Items:   []forms.OrderLine{{MenuItemID: 10, Quantity: 0}, {MenuItemID: 11, Quantity: 0}},
	}
	err := v.PlaceOrder(context.Background(), allZero)
	assert.EqualError(t, err, "add at least one item")
	assert.Equal(t, int32(0), counter.hits.Load())

	refreshes := 0
	bus.Subscribe(events.TopicOrders, func(events.Topic) { refreshes++ })

	withItems := allZero
	withItems.Items = []forms.OrderLine{{MenuItemID: 10, Quantity: 0}, {MenuItemID: 11, Quantity: 2}}
	err = v.PlaceOrder(context.Background(), withItems)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), counter.hits.Load())
	assert.Equal(t, 1, refreshes)
}

// fakeTables is a minimal stateful tables backend for the owner scenario.
type fakeTables struct {
	mu     sync.Mutex
	nextID int
	tables []model.Table
}

func (f *fakeTables) router() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/cafeowners/tables", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		list := model.TableList{Tables: f.tables, TotalCount: len(f.tables)}
		for _, table := range f.tables {
			if table.Status == model.TableAvailable {
				list.AvailableCount++
			} else {
				list.BookedCount++
			}
		}
		json.NewEncoder(w).Encode(list)
	})
	r.Post("/api/cafeowners/tables", func(w http.ResponseWriter, req *http.Request) {
		var body api.TableRequest
		json.NewDecoder(req.Body).Decode(&body)
		f.mu.Lock()
		f.nextID++
		table := model.Table{ID: f.nextID, TableNumber: body.TableNumber, Capacity: body.Capacity, Status: body.Status}
		f.tables = append(f.tables, table)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(table)
	})
	r.Patch("/api/cafeowners/tables/{id}/status", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))
		var body map[string]string
		json.NewDecoder(req.Body).Decode(&body)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.tables {
			if f.tables[i].ID == id {
				f.tables[i].Status = model.TableStatus(body["status"])
				json.NewEncoder(w).Encode(f.tables[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	return r
}

func TestOwnerTables_AddThenBookScenario(t *testing.T) {
	fake := &fakeTables{nextID: 1, tables: []model.Table{
		{ID: 1, TableNumber: "T1", Capacity: 2, Status: model.TableAvailable},
	}}
	v, _, out, _ := newTestView(t, fake.router(), "cafeowner")
	ctx := context.Background()

	// Add T10: list grows by one, new row is available
	require.NoError(t, v.AddTable(ctx, forms.Table{TableNumber: "T10", Capacity: 4, Status: "available"}))

	out.Reset()
	require.NoError(t, v.OwnerTables(ctx))
	assert.Contains(t, out.String(), "2 total, 2 available, 0 booked")
	assert.Contains(t, out.String(), "T10")

	// Book it: counts shift on the next fetch
	require.NoError(t, v.ChangeTableStatus(ctx, 2, "booked"))

	out.Reset()
	require.NoError(t, v.OwnerTables(ctx))
	assert.Contains(t, out.String(), "2 total, 1 available, 1 booked")
}

func TestChangeTableStatus_RejectsUnknownStatus(t *testing.T) {
	v, counter, _, _ := newTestView(t, chi.NewRouter(), "cafeowner")
	err := v.ChangeTableStatus(context.Background(), 1, "reserved")
	assert.Error(t, err)
	assert.Equal(t, int32(0), counter.hits.Load())
}

func TestProtectedFetch_SessionExpiry(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/chef/orders", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	v, _, _, bus := newTestView(t, r, "chef")

	signals := 0
	bus.Subscribe(events.TopicSession, func(events.Topic) { signals++ })

	err := v.ChefQueue(context.Background())
	assert.ErrorIs(t, err, api.ErrSessionExpired)
	assert.Equal(t, 1, signals)
	assert.False(t, v.session.IsLoggedIn())
}

func TestChefSetStatus_GuardsTransition(t *testing.T) {
	var patches atomic.Int32
	r := chi.NewRouter()
	r.Get("/api/chef/orders", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode([]model.Order{
			{ID: 5, Status: model.StatusReady},
			{ID: 6, Status: model.StatusPlaced},
		})
	})
	r.Patch("/api/chef/orders/{id}/status", func(w http.ResponseWriter, req *http.Request) {
		patches.Add(1)
		json.NewEncoder(w).Encode(model.Order{ID: 6, Status: model.StatusReady})
	})
	v, _, _, bus := newTestView(t, r, "chef")

	refreshes := 0
	bus.Subscribe(events.TopicOrders, func(events.Topic) { refreshes++ })

	// Backward move is refused without touching the server
	err := v.ChefSetStatus(context.Background(), 5, model.StatusPreparing)
	assert.Error(t, err)
	assert.Equal(t, int32(0), patches.Load())

	// Skipping preparing is allowed for a chef
	err = v.ChefSetStatus(context.Background(), 6, model.StatusReady)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), patches.Load())
	assert.Equal(t, 1, refreshes)
}

func TestWaiterServe_OnlyReadyOrders(t *testing.T) {
	var patches atomic.Int32
	r := chi.NewRouter()
	r.Get("/api/waiter/orders", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode([]model.Order{
			{ID: 8, Status: model.StatusServed},
			{ID: 9, Status: model.StatusReady},
		})
	})
	r.Patch("/api/waiter/orders/{id}/status", func(w http.ResponseWriter, req *http.Request) {
		patches.Add(1)
		json.NewEncoder(w).Encode(model.Order{ID: 9, Status: model.StatusServed})
	})
	v, _, _, _ := newTestView(t, r, "waiter")

	// An already-served order cannot be replayed
	err := v.WaiterServe(context.Background(), 8)
	assert.Error(t, err)
	assert.Equal(t, int32(0), patches.Load())

	err = v.WaiterServe(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), patches.Load())
}

func TestMenuFor_RoleSets(t *testing.T) {
	commands := func(role model.Role) []string {
		var out []string
		for _, entry := range MenuFor(role) {
			out = append(out, entry.Command)
		}
		return out
	}

	assert.Equal(t, []string{"admin cafes", "admin owners", "admin dashboard"}, commands(model.RoleAdmin))
	assert.Equal(t, []string{"owner staff", "owner menu", "owner tables", "owner bookings", "owner orders"}, commands(model.RoleCafeOwner))
	assert.Equal(t, []string{"chef orders"}, commands(model.RoleChef))
	assert.Equal(t, []string{"waiter orders"}, commands(model.RoleWaiter))
	assert.Equal(t, []string{"cafes", "bookings", "orders"}, commands(model.RoleCustomer))
}
