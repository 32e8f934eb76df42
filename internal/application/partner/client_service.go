package partner

import (
	"context"

	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/avellanos/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
	orderRepo  trade.SalesOrderRepository
	txScope    TransactionScope
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository, orderRepo trade.SalesOrderRepository, txScope TransactionScope) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		orderRepo:  orderRepo,
		txScope:    txScope,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(req.Name, req.Country, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves a list of clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Country != "" {
		domainFilter.Filters["country"] = filter.Country
	}

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClientResponses(clients), total, nil
}

// Update updates a client
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	name := client.Name
	country := client.Country
	email := client.Email
	phone := client.Phone
	if req.Name != nil {
		name = *req.Name
	}
	if req.Country != nil {
		country = *req.Country
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Phone != nil {
		phone = *req.Phone
	}

	if err := client.Update(name, country, email, phone); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete deletes a client. A client with sales orders cannot be deleted.
// Quotations pointing at the client are kept and detached in the same
// transaction that removes the client.
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return err
	}

	orders, err := s.orderRepo.CountByClient(ctx, clientID)
	if err != nil {
		return err
	}
	if orders > 0 {
		return shared.NewDomainError("IN_USE", "Client with sales orders cannot be deleted")
	}

	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.QuotationRepo().DetachClient(ctx, clientID); err != nil {
			return err
		}
		return repos.ClientRepo().Delete(ctx, clientID)
	})
}
