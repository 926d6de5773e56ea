// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/linwei/studymap/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/linwei/studymap/ent/diagnosisrun"
	"github.com/linwei/studymap/ent/llmrequestevent"
	"github.com/linwei/studymap/ent/practicesheet"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DiagnosisRun is the client for interacting with the DiagnosisRun builders.
	DiagnosisRun *DiagnosisRunClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PracticeSheet is the client for interacting with the PracticeSheet builders.
	PracticeSheet *PracticeSheetClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DiagnosisRun = NewDiagnosisRunClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PracticeSheet = NewPracticeSheetClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		DiagnosisRun:    NewDiagnosisRunClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PracticeSheet:   NewPracticeSheetClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		DiagnosisRun:    NewDiagnosisRunClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PracticeSheet:   NewPracticeSheetClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DiagnosisRun.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.DiagnosisRun.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.PracticeSheet.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DiagnosisRun.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.PracticeSheet.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DiagnosisRunMutation:
		return c.DiagnosisRun.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PracticeSheetMutation:
		return c.PracticeSheet.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DiagnosisRunClient is a client for the DiagnosisRun schema.
type DiagnosisRunClient struct {
	config
}

// NewDiagnosisRunClient returns a client for the DiagnosisRun from the given config.
func NewDiagnosisRunClient(c config) *DiagnosisRunClient {
	return &DiagnosisRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `diagnosisrun.Hooks(f(g(h())))`.
func (c *DiagnosisRunClient) Use(hooks ...Hook) {
	c.hooks.DiagnosisRun = append(c.hooks.DiagnosisRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `diagnosisrun.Intercept(f(g(h())))`.
func (c *DiagnosisRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.DiagnosisRun = append(c.inters.DiagnosisRun, interceptors...)
}

// Create returns a builder for creating a DiagnosisRun entity.
func (c *DiagnosisRunClient) Create() *DiagnosisRunCreate {
	mutation := newDiagnosisRunMutation(c.config, OpCreate)
	return &DiagnosisRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiagnosisRun entities.
func (c *DiagnosisRunClient) CreateBulk(builders ...*DiagnosisRunCreate) *DiagnosisRunCreateBulk {
	return &DiagnosisRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiagnosisRunClient) MapCreateBulk(slice any, setFunc func(*DiagnosisRunCreate, int)) *DiagnosisRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiagnosisRunCreateBulk{err: fmt.Errorf("calling to DiagnosisRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiagnosisRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiagnosisRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiagnosisRun.
func (c *DiagnosisRunClient) Update() *DiagnosisRunUpdate {
	mutation := newDiagnosisRunMutation(c.config, OpUpdate)
	return &DiagnosisRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiagnosisRunClient) UpdateOne(_m *DiagnosisRun) *DiagnosisRunUpdateOne {
	mutation := newDiagnosisRunMutation(c.config, OpUpdateOne, withDiagnosisRun(_m))
	return &DiagnosisRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiagnosisRunClient) UpdateOneID(id int) *DiagnosisRunUpdateOne {
	mutation := newDiagnosisRunMutation(c.config, OpUpdateOne, withDiagnosisRunID(id))
	return &DiagnosisRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiagnosisRun.
func (c *DiagnosisRunClient) Delete() *DiagnosisRunDelete {
	mutation := newDiagnosisRunMutation(c.config, OpDelete)
	return &DiagnosisRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiagnosisRunClient) DeleteOne(_m *DiagnosisRun) *DiagnosisRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiagnosisRunClient) DeleteOneID(id int) *DiagnosisRunDeleteOne {
	builder := c.Delete().Where(diagnosisrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiagnosisRunDeleteOne{builder}
}

// Query returns a query builder for DiagnosisRun.
func (c *DiagnosisRunClient) Query() *DiagnosisRunQuery {
	return &DiagnosisRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiagnosisRun},
		inters: c.Interceptors(),
	}
}

// Get returns a DiagnosisRun entity by its id.
func (c *DiagnosisRunClient) Get(ctx context.Context, id int) (*DiagnosisRun, error) {
	return c.Query().Where(diagnosisrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiagnosisRunClient) GetX(ctx context.Context, id int) *DiagnosisRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DiagnosisRunClient) Hooks() []Hook {
	return c.hooks.DiagnosisRun
}

// Interceptors returns the client interceptors.
func (c *DiagnosisRunClient) Interceptors() []Interceptor {
	return c.inters.DiagnosisRun
}

func (c *DiagnosisRunClient) mutate(ctx context.Context, m *DiagnosisRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiagnosisRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiagnosisRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiagnosisRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiagnosisRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DiagnosisRun mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PracticeSheetClient is a client for the PracticeSheet schema.
type PracticeSheetClient struct {
	config
}

// NewPracticeSheetClient returns a client for the PracticeSheet from the given config.
func NewPracticeSheetClient(c config) *PracticeSheetClient {
	return &PracticeSheetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practicesheet.Hooks(f(g(h())))`.
func (c *PracticeSheetClient) Use(hooks ...Hook) {
	c.hooks.PracticeSheet = append(c.hooks.PracticeSheet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practicesheet.Intercept(f(g(h())))`.
func (c *PracticeSheetClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeSheet = append(c.inters.PracticeSheet, interceptors...)
}

// Create returns a builder for creating a PracticeSheet entity.
func (c *PracticeSheetClient) Create() *PracticeSheetCreate {
	mutation := newPracticeSheetMutation(c.config, OpCreate)
	return &PracticeSheetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeSheet entities.
func (c *PracticeSheetClient) CreateBulk(builders ...*PracticeSheetCreate) *PracticeSheetCreateBulk {
	return &PracticeSheetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeSheetClient) MapCreateBulk(slice any, setFunc func(*PracticeSheetCreate, int)) *PracticeSheetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeSheetCreateBulk{err: fmt.Errorf("calling to PracticeSheetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeSheetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeSheetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeSheet.
func (c *PracticeSheetClient) Update() *PracticeSheetUpdate {
	mutation := newPracticeSheetMutation(c.config, OpUpdate)
	return &PracticeSheetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeSheetClient) UpdateOne(_m *PracticeSheet) *PracticeSheetUpdateOne {
	mutation := newPracticeSheetMutation(c.config, OpUpdateOne, withPracticeSheet(_m))
	return &PracticeSheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeSheetClient) UpdateOneID(id int) *PracticeSheetUpdateOne {
	mutation := newPracticeSheetMutation(c.config, OpUpdateOne, withPracticeSheetID(id))
	return &PracticeSheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeSheet.
func (c *PracticeSheetClient) Delete() *PracticeSheetDelete {
	mutation := newPracticeSheetMutation(c.config, OpDelete)
	return &PracticeSheetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeSheetClient) DeleteOne(_m *PracticeSheet) *PracticeSheetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeSheetClient) DeleteOneID(id int) *PracticeSheetDeleteOne {
	builder := c.Delete().Where(practicesheet.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeSheetDeleteOne{builder}
}

// Query returns a query builder for PracticeSheet.
func (c *PracticeSheetClient) Query() *PracticeSheetQuery {
	return &PracticeSheetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeSheet},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeSheet entity by its id.
func (c *PracticeSheetClient) Get(ctx context.Context, id int) (*PracticeSheet, error) {
	return c.Query().Where(practicesheet.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeSheetClient) GetX(ctx context.Context, id int) *PracticeSheet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeSheetClient) Hooks() []Hook {
	return c.hooks.PracticeSheet
}

// Interceptors returns the client interceptors.
func (c *PracticeSheetClient) Interceptors() []Interceptor {
	return c.inters.PracticeSheet
}

func (c *PracticeSheetClient) mutate(ctx context.Context, m *PracticeSheetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeSheetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeSheetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeSheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeSheetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeSheet mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DiagnosisRun, LLMRequestEvent, PracticeSheet []ent.Hook
	}
	inters struct {
		DiagnosisRun, LLMRequestEvent, PracticeSheet []ent.Interceptor
	}
)
