package helpers

import (
	"context"
	"fmt"
	"reflect"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/commands"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

// MockMediator is a test double for the Mediator interface.
// Commands that touch storage get canned responses so CLI tests run without a database.
type MockMediator struct {
	sendFunc func(ctx context.Context, request common.Request) (common.Response, error)
	callLog  []string // Track which requests were sent

	// Dangling is returned in every ImportCatalogResponse
	Dangling []production.DanglingReference
}

// NewMockMediator creates a new MockMediator
func NewMockMediator() *MockMediator {
	return &MockMediator{
		callLog: []string{},
	}
}

// Send implements the Mediator interface
func (m *MockMediator) Send(ctx context.Context, request common.Request) (common.Response, error) {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, request)
	}

	switch req := request.(type) {
	case *commands.ImportCatalogCommand:
		m.callLog = append(m.callLog, fmt.Sprintf("ImportCatalog:%s", req.Path))
		return &commands.ImportCatalogResponse{
			Items:      2,
			Facilities: 1,
			Recipes:    1,
			Materials:  1,
			Dangling:   append([]production.DanglingReference(nil), m.Dangling...),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported request type: %T", request)
	}
}

// SetSendFunc sets a custom function for Send calls
func (m *MockMediator) SetSendFunc(fn func(ctx context.Context, request common.Request) (common.Response, error)) {
	m.sendFunc = fn
}

// GetCallLog returns the list of requests that were sent
func (m *MockMediator) GetCallLog() []string {
	return append([]string{}, m.callLog...)
}

// HasImportCall checks if an import was sent for a specific dataset path
func (m *MockMediator) HasImportCall(path string) bool {
	for _, call := range m.callLog {
		if call == fmt.Sprintf("ImportCatalog:%s", path) {
			return true
		}
	}
	return false
}

// Register implements the Mediator interface (no-op for tests)
func (m *MockMediator) Register(requestType reflect.Type, handler common.RequestHandler) error {
	return nil
}

// Use implements the Mediator interface (no-op for tests)
func (m *MockMediator) Use(middleware common.Middleware) {}

var _ common.Mediator = (*MockMediator)(nil)
